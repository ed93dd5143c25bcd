package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newScriptCmd(flags *rootFlags) *cobra.Command {
	script := &cobra.Command{Use: "script", Short: "Content script commands"}

	script.AddCommand(&cobra.Command{
		Use:   "validate [dir]",
		Short: "Load and validate the dialog script and page content",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			local := *flags
			if len(args) == 1 {
				local.contentDir = args[0]
			}
			app, err := loadApp(cmd, &local)
			if err != nil {
				return err
			}
			ctx := context.Background()
			summary, err := app.DialogCLI.Summary(ctx)
			if err != nil {
				return fmt.Errorf("dialog: %w", err)
			}
			page, err := app.PageCLI.Content(ctx)
			if err != nil {
				return fmt.Errorf("page: %w", err)
			}
			stack, err := app.CardsCLI.Pose(ctx, 1, 1, 0)
			if err != nil {
				return fmt.Errorf("cards: %w", err)
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "dialog: %d root options, %d nodes, depth %d\n", summary.RootOptions, summary.Nodes, summary.Depth)
			_, _ = fmt.Fprintf(w, "page: %d sections, %d templates, %d hero actions\n", len(page.Sections), len(page.Templates.Items), len(page.Hero.Actions))
			_, _ = fmt.Fprintf(w, "cards: %d\n", len(stack.Cards))
			_, _ = fmt.Fprintln(w, "ok")
			return nil
		},
	})
	return script
}
