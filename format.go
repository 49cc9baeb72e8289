package memsize

import (
	"math"
	"strconv"
)

var unitSuffixes = [...]string{"B", "kB", "MB", "GB", "TB", "PB", "EB"}

// String renders the size in a human-readable form, scaling by powers of
// 1024 and printing at most two decimal places, so 1024 bytes render as
// "1 kB" and 1000000000 bytes as "953.67 MB". Sizes that are not a whole
// number of bytes render as fractional bytes.
func (s Size) String() string {
	return s.scale(1024)
}

// StringSI is like String but scales by powers of 1000, so 1000000000 bytes
// render as "1 GB".
func (s Size) StringSI() string {
	return s.scale(1000)
}

func (s Size) scale(base float64) string {
	v := float64(s) / float64(Byte)

	i := 0
	for v >= base && i < len(unitSuffixes)-1 {
		v /= base
		i++
	}

	v = math.Round(v*100) / 100

	return strconv.FormatFloat(v, 'f', -1, 64) + " " + unitSuffixes[i]
}
