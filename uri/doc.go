// Package uri provides a decomposed, round-trippable URL model.
//
// # Overview
//
// A [URL] keeps the scheme, user info, host and port ([Addr]), path [Segments],
// query [Params] and fragment as separate fields. The string form is computed on demand
// with [URL.String] and always reflects the current fields.
//
//	u, err := uri.Parse("http://example.com/zero/one/two?foo=bar")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	u.Segment("last")          // "two", true
//	u.GetParameter("foo")      // "bar", true
//	u.SetParameter("bar", "baz")
//	u.String()                 // "http://example.com/zero/one/two?foo=bar&bar=baz"
//
// URLs can also be built from any [value.Input]: strings, byte streams and objects
// implementing [fmt.Stringer] or [encoding.TextMarshaler]. Other inputs fail with
// a [*value.ConversionError].
//
// # Encoding
//
// Path segments and the fragment are stored exactly as they appeared in the input,
// stray "%" and unescaped characters included, and rendered verbatim.
// Only the host and port are validated on parse. [URL.DecodePath] and [URL.EncodePath] convert the segments explicitly.
// User info and query parameters are stored decoded and escaped on render.
// As a result parsing the string form of a parsed URL yields an equal URL.
//
// # Parameters
//
// [Params] preserves insertion order, a repeated key keeps its first position
// and takes the last value. [URL.SetParameterValue] stores arbitrary Go values,
// encoding lists, maps and structs with a [ParamCodec] ([JSONCodec] by default,
// [YAMLCodec] via [Options]).
//
// # Comparison
//
// [URL.Compare] orders two URLs by their serialized forms after decoding the paths,
// optionally tidying them ([URL.Tidy]), dropping the query and ignoring letter case.
//
// # Current request
//
// [Current] builds the URL of the request being served from a [RequestContext],
// see [HTTPRequestContext] and [EnvRequestContext]. The request query is included
// unless [CurrentOptions.NoQuery] is set.
//
// # Thread Safety
//
// URLs are not safe for concurrent modification. When sharing URLs across
// goroutines, either use synchronization or create copies using the Clone method.
package uri
