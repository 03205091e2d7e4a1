package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-condform/pkg/schema"
)

func newSchemaCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the record shape as an OpenAPI schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := schema.OpenAPISchema()
			out := cmd.OutOrStdout()
			a.logger.Debug("schema export", zap.String("format", format))

			switch format {
			case "json":
				return writeJSON(out, doc)
			case "yaml":
				raw, err := json.Marshal(doc)
				if err != nil {
					return fmt.Errorf("condform: encode schema: %w", err)
				}
				var tree any
				if err := yaml.Unmarshal(raw, &tree); err != nil {
					return fmt.Errorf("condform: convert schema: %w", err)
				}
				data, err := yaml.Marshal(tree)
				if err != nil {
					return fmt.Errorf("condform: encode schema: %w", err)
				}
				_, err = out.Write(data)
				return err
			default:
				return fmt.Errorf("condform: unknown format %q", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}
