package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mediaprobe/internal/api"
	"mediaprobe/internal/deps"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether the extraction engine and its helpers are installed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			missing := deps.MissingRequired(statuses)

			if jsonOutput {
				if err := writeJSON(cmd, api.FromDependencyStatuses(statuses)); err != nil {
					return err
				}
			} else {
				rows := make([][]string, 0, len(statuses)+1)
				for _, status := range statuses {
					detail := status.Detail
					if status.Available && status.Name == "yt-dlp" {
						if version, err := deps.EngineVersion(cmd.Context(), status.Command); err == nil {
							detail = "version " + version
						}
					}
					rows = append(rows, []string{
						status.Name,
						status.Command,
						yesNo(status.Available),
						yesNo(status.Optional),
						detail,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Dependency", "Command", "Available", "Optional", "Detail"},
					rows,
					nil,
				))
			}

			if len(missing) > 0 {
				return errors.New("required dependency missing: " + missing[0].Name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
