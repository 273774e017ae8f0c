package main

import (
	"sort"

	"github.com/spf13/cobra"
)

func matchCmd() *cobra.Command {
	var (
		routes string
		region string
	)

	cmd := &cobra.Command{
		Use:   "match <path>",
		Short: "Resolve a path against the route table",
		Long: `Resolve a request path against the route table and print the
matched route and its extracted parameters.

Routes are tried in the order the table declares them; the first
match wins. A path that matches nothing is reported, not failed.

Examples:
  pathway match /blog/python --routes routes.yaml
  pathway match /posts/42 --routes s3://configs/routes.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRouter(cmd.Context(), routes, region)
			if err != nil {
				return err
			}

			m, ok := r.Match(args[0])
			if !ok {
				warn("no route matches %s", args[0])
				return nil
			}

			success("matched route %q", m.Route.Name())
			names := make([]string, 0, len(m.Params))
			for name := range m.Params {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				info("%s = %s", name, m.Params[name])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&routes, "routes", "r", "routes.yaml", "Route definition file or s3:// URL")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "AWS region for s3:// sources")

	return cmd
}
