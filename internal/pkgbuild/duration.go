package pkgbuild

import (
	"fmt"
	"math"
	"time"
)

// formatDuration renders an elapsed time the way a person would say it,
// e.g. "1 min and 15.2 seconds".
func formatDuration(d time.Duration) string {
	total := d.Seconds()
	whole := int(total)

	hours := whole / 3600
	mins := (whole % 3600) / 60
	secs := float64(whole%60) + (total - float64(whole))

	hoursStr := fmt.Sprintf("%d %s", hours, pluralize("hour", float64(hours)))
	minsStr := fmt.Sprintf("%d %s", mins, pluralize("min", float64(mins)))

	var secsStr string
	if rounded := math.Round(secs*10) / 10; rounded == math.Trunc(rounded) {
		secsStr = fmt.Sprintf("%d %s", int(secs), pluralize("second", secs))
	} else {
		secsStr = fmt.Sprintf("%.1f %s", secs, pluralize("second", secs))
	}

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%s, %s, and %s", hoursStr, minsStr, secsStr)
	case hours > 0:
		return fmt.Sprintf("%s and %s", hoursStr, secsStr)
	case mins > 0:
		return fmt.Sprintf("%s and %s", minsStr, secsStr)
	default:
		return secsStr
	}
}

// pluralize appends "s" unless n is close enough to 1 to read as singular.
func pluralize(noun string, n float64) string {
	if n < 0.95 || n >= 1.05 {
		return noun + "s"
	}
	return noun
}
