package selection

import (
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"mediaprobe/internal/media"
	"mediaprobe/internal/services"
)

// ResolutionHeight parses a label such as "720p" into a pixel height.
func ResolutionHeight(label string) (int, error) {
	digits, ok := strings.CutSuffix(label, "p")
	if !ok || digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, services.Wrap(services.ErrInvalidResolution, component, "parse",
			"use values like 720p, got "+strconv.Quote(label), nil)
	}
	value, err := strconv.Atoi(digits)
	if err != nil || value <= 0 {
		return 0, services.Wrap(services.ErrInvalidResolution, component, "parse",
			"use values like 720p, got "+strconv.Quote(label), err)
	}
	return value, nil
}

// EnumerateResolutions lists the distinct heights of the usable formats as
// labels, ascending.
func EnumerateResolutions(info *media.Info) []string {
	heights := lo.Uniq(lo.FilterMap(UsableFormats(info), func(f media.Format, _ int) (int, bool) {
		return f.Height.Get()
	}))
	slices.Sort(heights)
	return lo.Map(heights, func(h int, _ int) string {
		return media.HeightLabel(h)
	})
}
