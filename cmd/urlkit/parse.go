package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/gotypes/internal/log"
	"github.com/ghettovoice/gotypes/uri"
	"github.com/ghettovoice/gotypes/value"
)

type paramView struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

type urlView struct {
	URL      string      `json:"url" yaml:"url"`
	Scheme   string      `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	User     string      `json:"user,omitempty" yaml:"user,omitempty"`
	Host     string      `json:"host,omitempty" yaml:"host,omitempty"`
	Port     *uint16     `json:"port,omitempty" yaml:"port,omitempty"`
	Path     []string    `json:"path,omitempty" yaml:"path,omitempty"`
	Query    []paramView `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment string      `json:"fragment,omitempty" yaml:"fragment,omitempty"`
	Full     bool        `json:"full" yaml:"full"`
	HTTPS    bool        `json:"https" yaml:"https"`
}

func newURLView(u *uri.URL) urlView {
	v := urlView{
		URL:      u.String(),
		Scheme:   u.Scheme,
		User:     u.User.Username(),
		Host:     u.Addr.Host(),
		Path:     u.Path.Clone(),
		Fragment: u.Fragment,
		Full:     u.IsFullURL(),
		HTTPS:    u.IsHTTPS(),
	}
	if port, ok := u.Addr.Port(); ok {
		v.Port = &port
	}
	v.Query = lo.Map(u.Query.Keys(), func(k string, _ int) paramView {
		val, _ := u.Query.Get(k)
		return paramView{k, val}
	})
	return v
}

func writeURL(w io.Writer, u *uri.URL, format string) error {
	switch format {
	case "text", "":
		_, err := fmt.Fprintln(w, u)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newURLView(u))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newURLView(u)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func parseURL(s string) (*uri.URL, error) {
	u, err := uri.Parse(s)
	if err != nil {
		return nil, err
	}
	log.Default().Debug("URL parsed", "input", s, "url", u)
	return u, nil
}

// readURL parses the argument, "-" reads the URL from r.
func readURL(arg string, r io.Reader) (*uri.URL, error) {
	if arg != "-" {
		return parseURL(arg)
	}
	u, err := uri.New(value.Stream{R: io.LimitReader(r, maxURLSize)})
	if err != nil {
		return nil, err
	}
	// a trailing newline is not part of the URL
	if err := u.Set(value.String(strings.TrimRight(u.Original(), "\r\n"))); err != nil {
		return nil, err
	}
	log.Default().Debug("URL read", "url", u)
	return u, nil
}

const maxURLSize = 64 << 10

func parseCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse <url|->",
		Short: "Decompose a URL into its components",
		Long:  `Decomposes a URL into its components, "-" reads the URL from standard input.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := readURL(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			return writeURL(cmd.OutOrStdout(), u, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func tidyCmd() *cobra.Command {
	var decode bool

	cmd := &cobra.Command{
		Use:   "tidy <url>",
		Short: "Replace special characters in path segments",
		Long: `Trims every path segment, replaces "&" with "and"
and collapses runs of other special characters into a single "_".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := parseURL(args[0])
			if err != nil {
				return err
			}
			if decode {
				u.DecodePath()
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u.Tidy())
			return err
		},
	}

	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "Percent-decode path segments before tidying")

	return cmd
}

func segmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "segment <url> <first|last|index>",
		Short: "Print a single path segment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := parseURL(args[0])
			if err != nil {
				return err
			}
			seg, ok := u.Segment(args[1])
			if !ok {
				return fmt.Errorf("segment %q not found", args[1])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), seg)
			return err
		},
	}
}
