package main

import (
	"github.com/spf13/cobra"

	"github.com/ghettovoice/gotypes/internal/log"
	"github.com/ghettovoice/gotypes/uri"
)

func currentCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	var (
		noQuery  bool
		keepPort bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Print the URL of the CGI request described by the environment",
		Long: `Reads HTTPS, HTTP_HOST, SERVER_PORT, REQUEST_URI, SCRIPT_NAME and QUERY_STRING.
Without HTTP_HOST the command is not serving a request and prints "/cli".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u := uri.Current(uri.EnvRequestContext(lookupEnv), &uri.CurrentOptions{
				NoQuery:         noQuery,
				KeepDefaultPort: keepPort,
				Logger:          log.Default(),
			})
			return writeURL(cmd.OutOrStdout(), u, output)
		},
	}

	cmd.Flags().BoolVar(&noQuery, "no-query", false, "Omit the request query")
	cmd.Flags().BoolVar(&keepPort, "keep-default-port", false, "Keep the port even if it is the scheme default")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}
