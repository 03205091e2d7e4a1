package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-condform/pkg/form"
	"github.com/goliatone/go-condform/pkg/renderers/tui"
)

func newFillCmd(a *app) *cobra.Command {
	var (
		prefill       string
		confirm       bool
		keepLanguages bool
	)

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill the form interactively and print the submitted record as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui, err := a.uiDocument()
			if err != nil {
				return err
			}

			opts := []form.Option{
				form.WithLogger(a.logger.Named("form")),
				form.WithSink(form.NewWriterSink(cmd.OutOrStdout())),
				form.WithLanguageResetOnWorkExperience(!keepLanguages),
			}
			if prefill != "" {
				data, err := readInput(cmd.InOrStdin(), prefill)
				if err != nil {
					return err
				}
				values, err := decodeValues(data, prefill)
				if err != nil {
					return err
				}
				opts = append(opts, form.WithInitialValues(values))
			}

			controller, err := form.New(opts...)
			if err != nil {
				return err
			}

			session := tui.New(
				tui.WithUISchema(ui),
				tui.WithLogger(a.logger.Named("tui")),
				tui.WithConfirmSubmit(confirm),
			)
			_, err = session.Run(cmd.Context(), controller)
			return err
		},
	}

	cmd.Flags().StringVar(&prefill, "prefill", "", "JSON file with initial values")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "ask before submitting")
	cmd.Flags().BoolVar(&keepLanguages, "keep-languages", false, "do not reset the languages list when work experience is switched on")
	return cmd
}
