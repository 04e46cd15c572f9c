package format

import "fmt"

// HoursMinSec renders a number of seconds as HH:MM:SS. Hours are padded to
// two digits and may grow past 99; negative input gets a leading "-".
func HoursMinSec(seconds int64) string {
	sign := ""
	u := uint64(seconds)
	if seconds < 0 {
		sign = "-"
		u = uint64(-seconds)
	}

	return fmt.Sprintf("%s%02d:%02d:%02d", sign, u/3600, (u/60)%60, u%60)
}
