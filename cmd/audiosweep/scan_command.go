package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"audiosweep/internal/media/tracks"
)

func addFilterFlags(cmd *cobra.Command, opts *tracks.FilterOptions) {
	cmd.Flags().BoolVar(&opts.ExcludeSameLanguage, "exclude-same-language", false,
		"Hide files whose audio tracks all share one language")
	cmd.Flags().BoolVar(&opts.OnlySameLanguage, "only-same-language", false,
		"Show only files whose audio tracks all share one language")
	cmd.Flags().IntVar(&opts.MinTrackCount, "min-tracks", 0,
		"Hide files with fewer audio tracks than this")
	cmd.Flags().BoolVar(&opts.HideUnknownLanguage, "no-unknown", false,
		"Hide tracks with an unknown language")
	cmd.Flags().BoolVar(&opts.OnlyUnknownLanguage, "only-unknown", false,
		"Show only tracks with an unknown language")
	cmd.Flags().BoolVar(&opts.ForeignOnly, "foreign-only", false,
		"Show only files with no English audio track")
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	var filter tracks.FilterOptions
	var showErrors bool

	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Inventory audio tracks across a movie library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := filter.Validate(); err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			files, failures, err := probeLibrary(cmd.Context(), cfg, logger, args[0])
			if err != nil {
				return err
			}

			probed := len(files)
			files = filter.Apply(files)

			out := cmd.OutOrStdout()
			for _, file := range files {
				printFileInventory(out, file)
			}
			if showErrors {
				printProbeFailures(out, failures)
			}

			trackCount := 0
			for _, file := range files {
				trackCount += len(file.Tracks)
			}
			fmt.Fprintf(out, "%d file(s) probed, %d shown, %d track(s) listed, %d probe failure(s)\n",
				probed, len(files), trackCount, len(failures))
			return nil
		},
	}

	addFilterFlags(cmd, &filter)
	cmd.Flags().BoolVar(&showErrors, "show-errors", false,
		"List files that could not be probed instead of only counting them")
	return cmd
}
