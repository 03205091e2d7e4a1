package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-condform/pkg/schema"
)

func newValidateCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Validate a JSON record; exits non-zero when invalid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			data, err := readInput(cmd.InOrStdin(), name)
			if err != nil {
				return err
			}
			result, err := schema.ValidateJSON(data)
			if err != nil {
				return err
			}
			a.logger.Debug("record validated", zap.String("source", name), zap.Int("issues", len(result.Issues)))

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				payload := map[string]any{"valid": result.Valid(), "issues": result.Issues}
				if result.Record != nil {
					payload["record"] = result.Record
				}
				if err := writeJSON(out, payload); err != nil {
					return err
				}
			case "text":
				if result.Valid() {
					fmt.Fprintln(out, "valid")
				}
				for _, issue := range result.Issues {
					fmt.Fprintf(out, "%s: %s\n", issue.Path, issue.Message)
				}
			default:
				return fmt.Errorf("condform: unknown format %q", format)
			}

			if !result.Valid() {
				return errInvalid
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")
	return cmd
}
