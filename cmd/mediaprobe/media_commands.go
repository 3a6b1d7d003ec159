package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediaprobe/internal/api"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "info <url>",
		Short: "Show metadata and usable formats for a media URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := api.ValidateMediaURL(args[0])
			if err != nil {
				return err
			}
			return ctx.withService(cmd, func(svc *api.Service) error {
				info, err := svc.Info(cmd.Context(), target)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, info)
				}
				renderInfo(cmd.OutOrStdout(), info)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var (
		resolution string
		audio      bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <url>",
		Short: "Print the direct stream URL for a resolution or the audio track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := api.ValidateMediaURL(args[0])
			if err != nil {
				return err
			}
			return ctx.withService(cmd, func(svc *api.Service) error {
				out := cmd.OutOrStdout()
				if audio {
					resp, err := svc.AudioDownload(cmd.Context(), target)
					if err != nil {
						return err
					}
					if jsonOutput {
						return writeJSON(cmd, resp)
					}
					fmt.Fprintln(out, resp.DownloadURL)
					return nil
				}

				resp, err := svc.VideoDownload(cmd.Context(), target, resolution)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, resp)
				}
				fmt.Fprintf(out, "%s\t%s\n", resp.Resolution, resp.DownloadURL)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&resolution, "resolution", "r", api.DefaultResolution, "Highest resolution to accept, e.g. 720p")
	cmd.Flags().BoolVar(&audio, "audio", false, "Resolve the best audio stream instead of video")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newFormatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "formats <url>",
		Short: "List the largest file per resolution and audio-only formats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := api.ValidateMediaURL(args[0])
			if err != nil {
				return err
			}
			return ctx.withService(cmd, func(svc *api.Service) error {
				summary, err := svc.Formats(cmd.Context(), target)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, summary)
				}
				renderFormatSummary(cmd.OutOrStdout(), summary)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
