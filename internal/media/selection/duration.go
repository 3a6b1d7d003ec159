package selection

import (
	"fmt"

	"github.com/samber/mo"
)

// SummarizeDuration renders seconds as MM:SS, or HH:MM:SS from one hour up.
// Absent, zero, and negative durations render as an empty string.
func SummarizeDuration(seconds mo.Option[int]) string {
	total, ok := seconds.Get()
	if !ok || total <= 0 {
		return ""
	}
	hours, rem := total/3600, total%3600
	mins, secs := rem/60, rem%60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, mins, secs)
	}
	return fmt.Sprintf("%02d:%02d", mins, secs)
}
