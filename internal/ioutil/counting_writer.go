// Package ioutil contains writer helpers used by rendering code.
package ioutil

import (
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter wraps an io.Writer, tracks the total number of bytes written
// and remembers the first write error. Once an error occurred all further writes are skipped,
// so RenderTo implementations can write unconditionally and check the error once at the end.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

// Write implements io.Writer.
func (cw *CountingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err := cw.w.Write(p)
	cw.track(n, err)
	return n, errtrace.Wrap(err)
}

// Print writes all parts in order.
func (cw *CountingWriter) Print(parts ...string) *CountingWriter {
	for _, s := range parts {
		if cw.err != nil {
			break
		}
		cw.track(io.WriteString(cw.w, s))
	}
	return cw
}

// PrintIf writes parts only when cond is true.
func (cw *CountingWriter) PrintIf(cond bool, parts ...string) *CountingWriter {
	if !cond {
		return cw
	}
	return cw.Print(parts...)
}

// Call executes a RenderTo-style function against the underlying writer.
func (cw *CountingWriter) Call(fn func(io.Writer) (int, error)) *CountingWriter {
	if cw.err != nil {
		return cw
	}
	cw.track(fn(cw.w))
	return cw
}

func (cw *CountingWriter) track(n int, err error) {
	cw.num += n
	if err != nil && cw.err == nil {
		cw.err = err
	}
}

// Result returns the total number of bytes written and the first error encountered.
func (cw *CountingWriter) Result() (int, error) {
	return cw.num, errtrace.Wrap(cw.err)
}

var cntWrtPool = &sync.Pool{
	New: func() any { return &CountingWriter{} },
}

// GetCountingWriter returns a pooled writer wrapping w, release it with [FreeCountingWriter].
func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

func FreeCountingWriter(cw *CountingWriter) {
	cw.w = nil
	cw.num = 0
	cw.err = nil
	cntWrtPool.Put(cw)
}
