package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-condform/pkg/form"
	"github.com/goliatone/go-condform/pkg/renderers/html"
)

func newRenderCmd(a *app) *cobra.Command {
	var action string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the HTML form, optionally prefilled from a JSON record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui, err := a.uiDocument()
			if err != nil {
				return err
			}

			opts := []form.Option{form.WithLogger(a.logger.Named("form"))}
			if len(args) == 1 {
				data, err := readInput(cmd.InOrStdin(), args[0])
				if err != nil {
					return err
				}
				values, err := decodeValues(data, args[0])
				if err != nil {
					return err
				}
				opts = append(opts, form.WithInitialValues(values))
			}
			controller, err := form.New(opts...)
			if err != nil {
				return err
			}

			renderer, err := html.New(
				html.WithUISchema(ui),
				html.WithAction(action),
				html.WithLogger(a.logger.Named("html")),
			)
			if err != nil {
				return err
			}
			return renderer.Render(controller.Snapshot(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&action, "action", "", "form action URL")
	return cmd
}
