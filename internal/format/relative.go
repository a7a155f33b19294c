package format

import (
	"fmt"
	"time"
)

// JustNow is the relative time for anything under a minute old
const JustNow = "Baru saja"

// FormatRelativeTime describes how long ago t was, relative to now:
// "Baru saja", "N menit lalu", "N jam lalu", "N hari lalu", and FormatDate(t)
// from seven days on. Times after now are treated as now.
func FormatRelativeTime(t, now time.Time) string {
	elapsed := now.Sub(t)
	if elapsed < 0 {
		elapsed = 0
	}

	minutes := int64(elapsed / time.Minute)
	hours := minutes / 60
	days := hours / 24

	switch {
	case minutes < 1:
		return JustNow
	case minutes < 60:
		return fmt.Sprintf("%d menit lalu", minutes)
	case hours < 24:
		return fmt.Sprintf("%d jam lalu", hours)
	case days < 7:
		return fmt.Sprintf("%d hari lalu", days)
	default:
		return FormatDate(t)
	}
}
