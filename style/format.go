package style

import "strconv"

// ftoa formats a float32 with the minimal number of digits needed to
// round-trip, used by the String() methods in this package for debug output.
func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
