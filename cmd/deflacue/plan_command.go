package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"deflacue/internal/cue"
	"deflacue/internal/splitter"
)

// newPlanCommand lists the cue sheets a split run would process, without
// touching the filesystem or the extraction tool.
func newPlanCommand(ctx *commandContext) *cobra.Command {
	var (
		recursive   bool
		destination string
	)

	cmd := &cobra.Command{
		Use:   "plan SOURCE",
		Short: "Preview which cue sheets a run would process and where output would go",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.bootstrap()
			if err != nil {
				return err
			}

			source, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve source path: %w", err)
			}
			groups, err := splitter.DiscoverSheets(source, recursive)
			if err != nil {
				return err
			}
			if len(groups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No cue sheets found.")
				return nil
			}

			var rows [][]string
			for _, group := range groups {
				target := splitter.TargetDir(group.Dir, destination, cfg.Output.DirLabel)
				for _, name := range group.Sheets {
					sheetPath := filepath.Join(group.Dir, name)
					sheet, err := cue.Load(sheetPath, ctx.encoding, logger)
					if err != nil {
						rows = append(rows, []string{sheetPath, "-", "-", "-", "error: " + err.Error()})
						continue
					}
					rows = append(rows, []string{
						sheetPath,
						sheet.Disc.Performer,
						sheet.Disc.Album,
						strconv.Itoa(len(sheet.Tracks)),
						splitter.BundleDir(target, sheet.Disc),
					})
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Sheet", "Performer", "Album", "Tracks", "Output"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Search for cue sheets in subdirectories of SOURCE")
	cmd.Flags().StringVarP(&destination, "destination", "d", "", "Destination path for output audio files")
	return cmd
}
