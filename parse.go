package memsize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var suffixUnits = map[string]Size{
	"bit": Bit,
	"B":   Byte,
	"kB":  KB,
	"KB":  KB,
	"MB":  MB,
	"GB":  GB,
	"TB":  TB,
	"PB":  PB,
	"EB":  EB,
	"KiB": KiB,
	"MiB": MiB,
	"GiB": GiB,
	"TiB": TiB,
	"PiB": PiB,
	"EiB": EiB,
}

// Parse converts a string such as "300", "1024B", "1.5 GiB", or "12bit"
// into a Size. A bare number counts bytes. Fractional values round to the
// nearest bit. Parse fails with ErrSyntax on malformed input and with
// ErrOverflow when the value does not fit in 64 bits.
func Parse(str string) (Size, error) {
	str = strings.TrimSpace(str)

	cut := strings.LastIndexAny(str, "0123456789.") + 1
	if cut == 0 {
		return 0, fmt.Errorf("%q: %w", str, ErrSyntax)
	}

	num := str[:cut]
	unit := Byte
	if suffix := strings.TrimSpace(str[cut:]); suffix != "" {
		var ok bool
		unit, ok = suffixUnits[suffix]
		if !ok {
			return 0, fmt.Errorf("%q: unknown unit %q: %w", str, suffix, ErrSyntax)
		}
	}

	// Whole numbers parse exactly. Only fractional values go through
	// floating point.
	if n, err := strconv.ParseUint(num, 10, 64); err == nil {
		if n > uint64(maxSize/unit) {
			return 0, fmt.Errorf("%q: %w", str, ErrOverflow)
		}

		return Size(n) * unit, nil
	}

	f, err := strconv.ParseFloat(num, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("%q: %w", str, ErrSyntax)
	}

	bits := f * float64(unit)
	if bits >= float64(maxSize) {
		return 0, fmt.Errorf("%q: %w", str, ErrOverflow)
	}

	return Size(math.Round(bits)), nil
}

// MarshalText encodes the size exactly, as "<n>B" for whole-byte sizes and
// "<n>bit" otherwise.
func (s Size) MarshalText() ([]byte, error) {
	if s%Byte == 0 {
		return []byte(strconv.FormatUint(uint64(s/Byte), 10) + "B"), nil
	}

	return []byte(strconv.FormatUint(uint64(s), 10) + "bit"), nil
}

// UnmarshalText decodes any string accepted by Parse.
func (s *Size) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*s = v

	return nil
}
