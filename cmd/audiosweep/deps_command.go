package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"audiosweep/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check that ffprobe and ffmpeg are available",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := deps.Check(cfg.Paths.FFmpegDir)
			rows := make([][]string, 0, len(results))
			missing := 0
			for _, tool := range results {
				detail := tool.Path
				if !tool.Available {
					missing++
					detail = tool.Detail
				}
				rows = append(rows, []string{tool.Name, yesNo(tool.Available), detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				renderTable([]string{"Tool", "Found", "Location"}, rows, nil))

			if missing > 0 {
				return fmt.Errorf("%d required tool(s) missing", missing)
			}
			return nil
		},
	}
}
