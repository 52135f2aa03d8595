package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"audiosweep/internal/media/tracks"
	"audiosweep/internal/plan"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var filter tracks.FilterOptions

	cmd := &cobra.Command{
		Use:   "clean <directory>",
		Short: "Interactively pick and delete audio tracks",
		Long: `Walks every probed file, asks which audio tracks to delete, then shows
the combined plan for a final confirmation before any file is rewritten.`,
		Args: cobra.ExactArgs(1),
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
			files = filter.Apply(files)

			out := cmd.OutOrStdout()
			printProbeFailures(out, failures)
			if len(files) == 0 {
				fmt.Fprintln(out, "No files to clean")
				return nil
			}

			in := bufio.NewScanner(cmd.InOrStdin())
			var plans []*plan.Plan
			for _, file := range files {
				printFileInventory(out, file)
				answer, err := askTracks(in, out)
				if err != nil {
					return err
				}
				if answer.quit {
					break
				}
				if answer.skip {
					continue
				}
				p, err := plan.Manual(file, answer.selections)
				if err != nil {
					fmt.Fprintf(out, "  %v\n", err)
					continue
				}
				plans = append(plans, p)
			}

			if len(plans) == 0 {
				fmt.Fprintln(out, "Nothing selected")
				return nil
			}

			return confirmAndExecute(cmd, ctx, args[0], plans)
		},
	}

	addFilterFlags(cmd, &filter)
	return cmd
}

// confirmAndExecute shows the combined plan, asks for approval, and runs the
// approved plans under the library lock.
func confirmAndExecute(cmd *cobra.Command, ctx *commandContext, root string, plans []*plan.Plan) error {
	out := cmd.OutOrStdout()
	printPlanSummary(out, plans)

	in := bufio.NewScanner(cmd.InOrStdin())
	decision, err := askApproval(in, out, len(plans))
	if err != nil {
		return err
	}
	return executeDecision(cmd, ctx, root, plans, decision)
}

func executeDecision(cmd *cobra.Command, ctx *commandContext, root string, plans []*plan.Plan, decision plan.Decision) error {
	out := cmd.OutOrStdout()
	if err := plan.Apply(plans, decision); err != nil {
		return err
	}
	approved := plan.Approved(plans)
	if len(approved) == 0 {
		fmt.Fprintln(out, "Nothing approved; no files were changed")
		return nil
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	executor, err := newExecutor(cfg, ctx.ensureLogger())
	if err != nil {
		return err
	}

	lock, err := acquireLock(root)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	results := executor.ExecuteBatch(cmd.Context(), approved)
	printExecutionReport(out, results)
	return nil
}
