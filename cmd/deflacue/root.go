package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deflacue/internal/ledger"
	"deflacue/internal/splitter"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	var (
		recursive   bool
		destination string
		dryRun      bool
	)

	rootCmd := &cobra.Command{
		Use:   "deflacue [flags] SOURCE",
		Short: "Split cue sheet audio images into per-track files",
		Long: "deflacue parses Cue Sheet files found under SOURCE and splits the " +
			"referenced audio images into per-track files with embedded metadata, " +
			"using the SoX command-line tool.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.bootstrap()
			if err != nil {
				return err
			}

			var history *ledger.Store
			if !dryRun {
				history, err = ledger.Open(cfg.Paths.LedgerPath)
				if err != nil {
					return err
				}
				defer history.Close()
			}

			summary, err := splitter.New(cfg, logger, history).Run(cmd.Context(), splitter.Options{
				Source:      args[0],
				Destination: destination,
				Recursive:   recursive,
				Encoding:    ctx.encoding,
				DryRun:      dryRun,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"Processed %d sheet(s): %d done, %d skipped, %d failed; %d track(s) extracted, %d failed.\n",
				summary.Sheets, summary.Done, summary.Skipped, summary.Failed,
				summary.TracksExtracted, summary.TracksFailed)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&ctx.encoding, "encoding", "e", "", "Cue sheet text encoding (IANA name, e.g. windows-1251)")
	rootCmd.PersistentFlags().BoolVar(&ctx.debug, "debug", false, "Show debug messages while processing")

	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Search for cue sheets in subdirectories of SOURCE")
	rootCmd.Flags().StringVarP(&destination, "destination", "d", "", "Destination path for output audio files")
	rootCmd.Flags().BoolVar(&dryRun, "dry", false, "Perform a dry run with no changes to the filesystem")

	rootCmd.AddCommand(newPlanCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newDepsCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
