package errorutil

import "errors"

// IsGrammarErr returns true if the error is a grammar error,
// i.e. it reports malformed textual input.
func IsGrammarErr(err error) bool {
	var e interface{ Grammar() bool }
	return errors.As(err, &e) && e.Grammar()
}

// IsConversionErr returns true if the error reports a value that
// could not be converted to the requested type.
func IsConversionErr(err error) bool {
	var e interface{ Conversion() bool }
	return errors.As(err, &e) && e.Conversion()
}
