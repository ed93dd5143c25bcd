package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"landing/internal/ui/components"
	contactview "landing/internal/ui/views/contact"
)

func newSphereCmd(flags *rootFlags) *cobra.Command {
	sphere := &cobra.Command{Use: "sphere", Short: "Particle sphere commands"}

	var elapsed float64
	var width int
	frame := &cobra.Command{
		Use:   "frame",
		Short: "Print one frame of the particle sphere",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			cfg := app.Config
			ctx := context.Background()
			if _, err := app.ParticlesTUI.Initialize(ctx, cfg.ParticleCount, cfg.SphereRadius); err != nil {
				return err
			}
			out, err := app.ParticlesTUI.Frame(ctx, elapsed, width)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out.SurfacePx == 0 {
				_, _ = fmt.Fprintln(w, "viewport too narrow for the sphere")
				return nil
			}
			canvas := components.Canvas{CellW: cfg.CellWidthPx, CellH: cfg.CellHeightPx}
			_, _ = fmt.Fprintln(w, canvas.Render(out.SurfacePx, contactview.Dots(out.Points)))
			_, _ = fmt.Fprintf(w, "%d particles, surface %dpx, t=%gms\n", len(out.Points), out.SurfacePx, elapsed)
			return nil
		},
	}
	frame.Flags().Float64Var(&elapsed, "t", 0, "elapsed milliseconds since the animation started")
	frame.Flags().IntVar(&width, "width", 1280, "viewport width in px")

	sphere.AddCommand(frame)
	return sphere
}
