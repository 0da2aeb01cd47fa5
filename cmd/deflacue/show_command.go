package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"deflacue/internal/cue"
	"deflacue/internal/splitter"
)

// newShowCommand parses a single cue sheet and prints its album record and
// track layout.
func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show SHEET",
		Short: "Parse one cue sheet and print its album and track layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.bootstrap()
			if err != nil {
				return err
			}

			sheet, err := cue.Load(args[0], ctx.encoding, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Performer: %s\n", sheet.Disc.Performer)
			fmt.Fprintf(out, "Album:     %s\n", sheet.Disc.Album)
			if sheet.Disc.Date != "" {
				fmt.Fprintf(out, "Date:      %s\n", sheet.Disc.Date)
			}
			fmt.Fprintf(out, "Genre:     %s\n", sheet.Disc.Genre)
			fmt.Fprintf(out, "File:      %s\n", sheet.Disc.File)
			fmt.Fprintln(out)

			rows := make([][]string, 0, len(sheet.Tracks))
			for _, track := range sheet.Tracks {
				end := "eof"
				if track.EndSample != nil {
					end = strconv.FormatInt(*track.EndSample, 10)
				}
				rows = append(rows, []string{
					strconv.Itoa(track.Number),
					track.Title,
					track.Index,
					strconv.FormatInt(track.StartSample, 10),
					end,
					splitter.TrackFileName(track.Number, len(sheet.Tracks), track.Title, cfg.Output.Extension),
				})
			}

			fmt.Fprintln(out, renderTable(
				[]string{"#", "Title", "Index", "Start", "End", "Filename"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
}
