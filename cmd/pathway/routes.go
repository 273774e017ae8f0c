package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func routesCmd() *cobra.Command {
	var (
		routes string
		region string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Long: `Load the route table and print every registered route in
registration order, children flattened under their full prefix.

Examples:
  pathway routes --routes routes.yaml
  pathway routes --routes routes.yaml --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRouter(cmd.Context(), routes, region)
			if err != nil {
				return err
			}

			infos := r.Routes()
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKIND\tPATTERN\tPARENT")
			for _, ri := range infos {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", ri.Name, ri.Kind, ri.Pattern, ri.Parent)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&routes, "routes", "r", "routes.yaml", "Route definition file or s3:// URL")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "AWS region for s3:// sources")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the table as JSON")

	return cmd
}
