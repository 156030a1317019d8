package durations

import (
	"fmt"
	"math"
)

// FormatDuration renders seconds as "M:SS". Minutes are not padded and
// fractional seconds are truncated. The remainder is floored, so negative
// input keeps seconds in [0, 60): -5 renders as "-1:55".
func FormatDuration(seconds float64) string {
	minutes := int(math.Floor(seconds / 60))
	rem := math.Mod(seconds, 60)
	if rem < 0 {
		rem += 60
	}
	return fmt.Sprintf("%d:%02d", minutes, int(rem))
}
