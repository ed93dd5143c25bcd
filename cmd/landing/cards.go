package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newCardsCmd(flags *rootFlags) *cobra.Command {
	cards := &cobra.Command{Use: "cards", Short: "Stacked card commands"}

	var offset, height float64
	var count int
	pose := &cobra.Command{
		Use:   "pose",
		Short: "Print the active index and every card's pose for a track offset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if height <= 0 {
				return fmt.Errorf("--height must be positive")
			}
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			out, err := app.CardsCLI.Pose(context.Background(), offset, height, count)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "active index: %d\n", out.ActiveIndex)
			for _, c := range out.Cards {
				_, _ = fmt.Fprintf(w, "%d  %-7s z=%d  %s  %s\n", c.Index, c.Kind, c.Z, c.Transform, c.Title)
			}
			return nil
		},
	}
	pose.Flags().Float64Var(&offset, "offset", 0, "track top relative to the viewport top, in px")
	pose.Flags().Float64Var(&height, "height", 800, "viewport height in px")
	pose.Flags().IntVar(&count, "count", 0, "number of cards (default: all)")

	cards.AddCommand(pose)
	return cards
}
