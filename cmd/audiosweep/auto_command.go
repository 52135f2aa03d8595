package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"audiosweep/internal/identification"
	"audiosweep/internal/language"
	"audiosweep/internal/logging"
	"audiosweep/internal/media/tracks"
	"audiosweep/internal/plan"
)

func newAutoCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool
	var dryRun bool
	var wrongLanguage bool

	cmd := &cobra.Command{
		Use:   "auto <directory>",
		Short: "Delete every track that is not in the movie's original language",
		Long: `Resolves each movie's original language through TMDB using the
{imdb-ttNNN} or {tmdb-NNN} token in its file name, plans the deletion of all
other audio tracks, and asks for confirmation before rewriting anything.
Files without an identifier, failed lookups, and files where nothing would
survive are reported and left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.RequireTMDB(); err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			files, failures, err := probeLibrary(cmd.Context(), cfg, logger, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printProbeFailures(out, failures)
			if len(files) == 0 {
				fmt.Fprintln(out, "No files found")
				return nil
			}

			resolver, closeCache, err := newResolver(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			if closeCache != nil {
				defer func() { _ = closeCache() }()
			}

			resolutions := resolver.ResolveAll(cmd.Context(), files, cfg.Scan.Concurrency)
			if unidentified := identification.Unidentified(resolutions); len(unidentified) > 0 {
				fmt.Fprintf(out, "%d file(s) have no original language and were left alone:\n", len(unidentified))
				for _, path := range unidentified {
					fmt.Fprintf(out, "  %s\n", path)
				}
				fmt.Fprintln(out)
			}

			if wrongLanguage {
				printWrongLanguageReport(out, files, resolutions)
				return nil
			}

			var plans []*plan.Plan
			for i, file := range files {
				original := resolutions[i].Language
				if original == "" {
					continue
				}
				p, err := plan.Automatic(file, original)
				if err != nil {
					if errors.Is(err, plan.ErrNoKeepers) {
						fmt.Fprintf(out, "skipped %s: no track matches the original language (%s)\n",
							file.Path, original)
						logger.Warn("no keepers",
							logging.String(logging.FieldPath, file.Path),
							logging.String(logging.FieldLanguage, original))
						continue
					}
					return err
				}
				if !p.HasDeletions() {
					continue
				}
				plans = append(plans, p)
			}

			if len(plans) == 0 {
				fmt.Fprintln(out, "Nothing to delete")
				return nil
			}

			printPlanSummary(out, plans)
			if dryRun {
				fmt.Fprintln(out, "Dry run; no files were changed")
				return nil
			}
			if assumeYes {
				return executeDecision(cmd, ctx, args[0], plans, plan.Decision{ApproveAll: true})
			}

			in := bufio.NewScanner(cmd.InOrStdin())
			decision, err := askApproval(in, out, len(plans))
			if err != nil {
				return err
			}
			return executeDecision(cmd, ctx, args[0], plans, decision)
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Apply all plans without prompting")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Plan only; do not rewrite any file")
	cmd.Flags().BoolVar(&wrongLanguage, "wrong-language", false,
		"Report files with tracks not in the original language; delete nothing")
	return cmd
}

// printWrongLanguageReport lists every resolved file with at least one track
// whose language is not the movie's original language. Report only; no plans
// are built.
func printWrongLanguageReport(out io.Writer, files []tracks.FileTracks, resolutions []identification.Resolution) {
	reported := 0
	for i, file := range files {
		original := resolutions[i].Language
		if original == "" {
			continue
		}
		var mismatched []string
		for _, track := range file.Tracks {
			if !language.Equivalent(track.Language, original) {
				mismatched = append(mismatched, fmt.Sprintf("%d(%s)", track.Ordinal+1, track.Language))
			}
		}
		if len(mismatched) == 0 {
			continue
		}
		reported++
		fmt.Fprintf(out, "%s\n  original %s, mismatched: %s\n",
			file.Path, original, strings.Join(mismatched, ", "))
	}
	if reported == 0 {
		fmt.Fprintln(out, "No files with wrong-language tracks")
		return
	}
	fmt.Fprintf(out, "\n%d file(s) with wrong-language tracks\n", reported)
}
