// Package format renders sizes for the prompt.
package format

import "fmt"

var units = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// Bytes converts n bytes into a human readable string using binary units,
// e.g. 1536 -> "1.50 KiB". EiB is the largest unit.
func Bytes(n uint64) string {
	c := float64(n)
	u := 0
	for c >= 1024 && u < len(units)-1 {
		c /= 1024
		u++
	}
	return fmt.Sprintf("%.2f %s", c, units[u])
}
