package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	dialogdto "landing/internal/modules/dialog/dto"
)

func newChatCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the template guide line by line",
		Long:  "Prints the bot's answers and the numbered options on offer. Type a number to choose, r to restart, q to quit.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			ctx := context.Background()
			state, err := app.DialogCLI.Open(ctx)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			out := termenv.NewOutput(w)
			printed := printTurns(w, out, state, 0)
			printOptions(w, out, state)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				switch line {
				case "":
					continue
				case "q", "quit":
					return nil
				case "r", "reset":
					state, err = app.DialogCLI.Reset(ctx)
					if err != nil {
						return err
					}
					printed = printTurns(w, out, state, 0)
					printOptions(w, out, state)
					continue
				}
				n, convErr := strconv.Atoi(line)
				if convErr != nil || n < 1 || n > len(state.Options) {
					_, _ = fmt.Fprintf(w, "choose 1-%d, r or q\n", len(state.Options))
					continue
				}
				state, err = app.DialogCLI.Choose(ctx, state.Options[n-1].ID)
				if err != nil {
					return err
				}
				printed = printTurns(w, out, state, printed)
				printOptions(w, out, state)
			}
			return scanner.Err()
		},
	}
}

// printTurns writes the transcript entries from index from on and returns
// the new transcript length.
func printTurns(w io.Writer, out *termenv.Output, state dialogdto.StateOutput, from int) int {
	for _, turn := range state.Transcript[min(from, len(state.Transcript)):] {
		if turn.Speaker == "user" {
			_, _ = fmt.Fprintln(w, out.String("> "+turn.Text).Foreground(out.Color("#a855f7")))
			continue
		}
		for _, b := range turn.Blocks {
			_, _ = fmt.Fprintln(w, out.String(b).Foreground(out.Color("#f3f4f6")))
		}
	}
	_, _ = fmt.Fprintln(w)
	return len(state.Transcript)
}

func printOptions(w io.Writer, out *termenv.Output, state dialogdto.StateOutput) {
	for i, o := range state.Options {
		_, _ = fmt.Fprintf(w, "  %s %s\n", out.String(strconv.Itoa(i+1)+".").Foreground(out.Color("#3b82f6")), o.Text)
	}
}
