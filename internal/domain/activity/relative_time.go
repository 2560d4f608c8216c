package activity

import (
	"fmt"
	"time"
)

// RelativeTime formatea el tiempo transcurrido desde when en los buckets que
// usa el feed de actividad: "Just now" (<1m), minutos (<60m), horas (<1440m)
// y días en adelante, con singular/plural en inglés.
func RelativeTime(now, when time.Time) string {
	minutes := int(now.Sub(when).Minutes())
	if minutes < 1 {
		return "Just now"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d minute%s ago", minutes, plural(minutes))
	}
	if minutes < 1440 {
		hours := minutes / 60
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	}
	days := minutes / 1440
	return fmt.Sprintf("%d day%s ago", days, plural(days))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
