// Package format holds display helpers for voucher fields: durations are
// reported by the controller in minutes and transfer counters in bytes.
package format

import (
	"fmt"
	"strconv"
)

// Duration renders a duration in minutes the way the voucher UI shows it,
// collapsing to the largest whole unit.
func Duration(minutes int64) string {
	switch {
	case minutes <= 0:
		return "0 minutes"
	case minutes < 60:
		return plural(minutes, "minute")
	case minutes < 24*60:
		if minutes%60 == 0 {
			return plural(minutes/60, "hour")
		}
		return plural(minutes/60, "hour") + " " + plural(minutes%60, "minute")
	default:
		days := minutes / (24 * 60)
		rest := minutes % (24 * 60)
		if rest == 0 {
			return plural(days, "day")
		}
		return plural(days, "day") + " " + plural(rest/60, "hour")
	}
}

// Bytes renders a byte count with a binary unit, one decimal place.
func Bytes(n int64) string {
	const unit = 1024
	if n < unit {
		return strconv.FormatInt(n, 10) + " B"
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// Megabytes renders a data quota given in megabytes.
func Megabytes(mb int64) string {
	if mb >= 1024 {
		return fmt.Sprintf("%.1f GB", float64(mb)/1024)
	}
	return strconv.FormatInt(mb, 10) + " MB"
}

func plural(n int64, unit string) string {
	s := strconv.FormatInt(n, 10) + " " + unit
	if n != 1 {
		s += "s"
	}
	return s
}
