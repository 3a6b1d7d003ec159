package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"mediaprobe/internal/api"
)

const (
	ansiBold  = "\033[1m"
	ansiReset = "\033[0m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func heading(out io.Writer, title string) {
	if shouldColorize(out) {
		fmt.Fprintln(out, ansiBold+title+ansiReset)
		return
	}
	fmt.Fprintln(out, title)
}

func renderInfo(out io.Writer, info api.InfoResponse) {
	fields := [][2]string{
		{"Title", info.Title},
		{"Duration", orDash(info.Duration)},
		{"Thumbnail", orDash(info.Thumbnail)},
		{"Tags", orDash(strings.Join(info.Tags, ", "))},
		{"Resolutions", orDash(strings.Join(info.AvailableResolutions, ", "))},
	}
	for _, field := range fields {
		fmt.Fprintf(out, "%-12s %s\n", field[0]+":", field[1])
	}
	if len(info.Formats) == 0 {
		return
	}

	rows := make([][]string, 0, len(info.Formats))
	for _, f := range info.Formats {
		rows = append(rows, []string{
			deref(f.FormatID),
			deref(f.Ext),
			deref(f.Resolution),
			formatFPS(f.FPS),
			deref(f.VCodec),
			deref(f.ACodec),
			formatSize(f.FileSize),
		})
	}
	fmt.Fprintln(out)
	heading(out, "Formats")
	fmt.Fprintln(out, renderTable(
		[]string{"ID", "Ext", "Resolution", "FPS", "Video", "Audio", "Size"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft, alignRight},
	))
}

func renderFormatSummary(out io.Writer, summary api.FormatSummary) {
	fmt.Fprintf(out, "%-12s %s\n\n", "Title:", summary.Title)

	heading(out, "Video")
	if len(summary.Video) == 0 {
		fmt.Fprintln(out, "No sized video formats")
	} else {
		rows := make([][]string, 0, len(summary.Video))
		for _, v := range summary.Video {
			rows = append(rows, []string{
				v.Resolution,
				v.Ext,
				humanize.IBytes(uint64(v.SizeBytes)),
				yesNo(v.HasAudio),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Resolution", "Ext", "Size", "Audio"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
		))
	}

	fmt.Fprintln(out)
	heading(out, "Audio only")
	if len(summary.Audio) == 0 {
		fmt.Fprintln(out, "No sized audio-only formats")
		return
	}
	rows := make([][]string, 0, len(summary.Audio))
	for _, a := range summary.Audio {
		rows = append(rows, []string{a.Ext, humanize.IBytes(uint64(a.SizeBytes))})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Ext", "Size"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))
}

func formatSize(size *int64) string {
	if size == nil || *size <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(*size))
}

func formatFPS(fps *float64) string {
	if fps == nil {
		return "-"
	}
	return strconv.FormatFloat(*fps, 'f', -1, 64)
}

func deref(value *string) string {
	if value == nil || *value == "" {
		return "-"
	}
	return *value
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
