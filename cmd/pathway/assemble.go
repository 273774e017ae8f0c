package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathway-dev/pathway/internal/errors"
)

func assembleCmd() *cobra.Command {
	var (
		routes string
		region string
	)

	cmd := &cobra.Command{
		Use:   "assemble <name> [param=value...]",
		Short: "Build a path for a named route",
		Long: `Build a concrete path for a named route from parameter values.

Omitted parameters fall back to the route's defaults. An optional
group is emitted only when at least one of its parameters is
supplied.

Examples:
  pathway assemble categories --routes routes.yaml
  pathway assemble post post=python --routes routes.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			r, err := loadRouter(cmd.Context(), routes, region)
			if err != nil {
				return err
			}

			path, err := r.Assemble(args[0], params)
			if err != nil {
				return errors.FromRouting(err)
			}
			fmt.Println(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&routes, "routes", "r", "routes.yaml", "Route definition file or s3:// URL")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "AWS region for s3:// sources")

	return cmd
}
