// Package types contains common interfaces and value types shared by the gotypes packages.
package types

//go:generate go tool errtrace -w .

import "io"

// Renderer is an interface that is used to render a type to a string or a writer.
type Renderer interface {
	// Render renders the type to a string with the given options.
	Render(opts *RenderOptions) string
	// RenderTo renders the type to a writer with the given options.
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// RenderOptions is a struct that is used to pass options to rendering methods.
// Nil options render every component.
type RenderOptions struct {
	// NoQuery omits the query component.
	NoQuery bool `json:"no_query,omitempty" yaml:"no_query,omitempty"`
	// NoFragment omits the fragment component.
	NoFragment bool `json:"no_fragment,omitempty" yaml:"no_fragment,omitempty"`
}

func (o *RenderOptions) Query() bool { return o == nil || !o.NoQuery }

func (o *RenderOptions) Fragment() bool { return o == nil || !o.NoFragment }
