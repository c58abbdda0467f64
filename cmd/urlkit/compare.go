package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/gotypes/uri"
)

func compareCmd() *cobra.Command {
	var opts uri.CompareOptions

	cmd := &cobra.Command{
		Use:   "compare <url> <other>",
		Short: "Compare two URLs",
		Long:  `Prints -1, 0 or 1 when the first URL orders before, equal to or after the second one.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseURL(args[0])
			if err != nil {
				return err
			}
			b, err := parseURL(args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.Compare(b, &opts))
			return err
		},
	}

	cmd.Flags().BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "Compare case-insensitively")
	cmd.Flags().BoolVarP(&opts.IncludeQuery, "include-query", "q", false, "Include query parameters")
	cmd.Flags().BoolVarP(&opts.IgnoreSpecialChars, "ignore-special", "s", false, "Tidy path segments before comparing")

	return cmd
}

func validateCmd() *cobra.Command {
	var fqdn bool

	cmd := &cobra.Command{
		Use:   "validate <url>",
		Short: "Check a URL for structural problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := parseURL(args[0])
			if err != nil {
				return err
			}
			if err := u.Validate(); err != nil {
				return err
			}
			if fqdn && !u.HostIsFQDN() {
				return fmt.Errorf("host %q is not a fully qualified domain name", u.Addr.Host())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return err
		},
	}

	cmd.Flags().BoolVar(&fqdn, "fqdn", false, "Require a fully qualified host name")

	return cmd
}
