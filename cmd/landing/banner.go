package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{" _                 _ _             ", "#3b82f6"},
	{"| | __ _ _ __   __| (_)_ __   __ _ ", "#6366f1"},
	{"| |/ _` | '_ \\ / _` | | '_ \\ / _` |", "#8b5cf6"},
	{"| | (_| | | | | (_| | | | | | (_| |", "#a855f7"},
	{"|_|\\__,_|_| |_|\\__,_|_|_| |_|\\__, |", "#c084fc"},
	{"                             |___/ ", "#e879f9"},
}

func printBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	_, _ = fmt.Fprintln(w)
	for _, l := range bannerLines {
		_, _ = fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	_, _ = fmt.Fprintln(w)
}
