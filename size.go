// Package memsize provides Size, a value type that represents a quantity of
// memory counted in bits. Sizes support checked arithmetic, total ordering,
// parsing, and human-readable formatting.
package memsize

import (
	"log"
	"math"
)

// A Size is an amount of memory, counted in bits. The zero value is an empty
// quantity. Sizes are plain values; operations return new Sizes and never
// modify their receiver.
type Size uint64

// Defines the units of memory size. Multiples with the i infix divide by
// 1024, the others by 1000.
const (
	Bit  Size = 1
	Byte      = 8 * Bit

	KB = 1000 * Byte
	MB = 1000 * KB
	GB = 1000 * MB
	TB = 1000 * GB
	PB = 1000 * TB
	EB = 1000 * PB

	KiB = 1024 * Byte
	MiB = 1024 * KiB
	GiB = 1024 * MiB
	TiB = 1024 * GiB
	PiB = 1024 * TiB
	EiB = 1024 * PiB
)

const maxSize Size = math.MaxUint64

// FromBytes returns the size of n bytes. It panics when n bytes cannot be
// counted in 64 bits.
func FromBytes(n uint64) Size {
	if n > uint64(maxSize/Byte) {
		log.Panicf("%d bytes do not fit in 64 bits", n)
	}

	return Size(n) * Byte
}

// FromBits returns the size of n bits.
func FromBits(n uint64) Size {
	return Size(n)
}

// FromBitsCeil returns the size of n bits rounded up to the next whole byte.
// It panics when the rounded-up size does not fit in 64 bits.
func FromBitsCeil(n uint64) Size {
	if n%uint64(Byte) == 0 {
		return Size(n)
	}

	bytes := n/uint64(Byte) + 1
	if bytes > uint64(maxSize/Byte) {
		log.Panicf("%d bits do not round up to a representable size", n)
	}

	return Size(bytes) * Byte
}

// Bits returns the number of bits in the size.
func (s Size) Bits() uint64 {
	return uint64(s)
}

// Bytes returns the number of bytes in the size. It panics when the size is
// not a whole number of bytes.
func (s Size) Bytes() uint64 {
	if s%Byte != 0 {
		log.Panicf("size of %d bits is not a whole number of bytes", uint64(s))
	}

	return uint64(s / Byte)
}

// BitsBytes splits the size into whole bytes and the remaining bits.
func (s Size) BitsBytes() (bits, bytes uint64) {
	return uint64(s % Byte), uint64(s / Byte)
}

// Add returns the sum of the two sizes. It fails with ErrOverflow when the
// sum exceeds 64 bits.
func (s Size) Add(o Size) (Size, error) {
	if o > maxSize-s {
		return 0, ErrOverflow
	}

	return s + o, nil
}

// Sub returns the difference of the two sizes. It fails with ErrUnderflow
// when o is larger than s.
func (s Size) Sub(o Size) (Size, error) {
	if o > s {
		return 0, ErrUnderflow
	}

	return s - o, nil
}

// Sum adds up the given sizes. Summing nothing yields the zero size.
// Overflow is reported the same way as in Add.
func Sum(sizes ...Size) (Size, error) {
	var total Size
	var err error

	for _, s := range sizes {
		total, err = total.Add(s)
		if err != nil {
			return 0, err
		}
	}

	return total, nil
}

// Min returns the smaller of the two sizes.
func Min(a, b Size) Size {
	if a < b {
		return a
	}

	return b
}

// Max returns the larger of the two sizes.
func Max(a, b Size) Size {
	if a > b {
		return a
	}

	return b
}

// Clamp limits the size to the inclusive range [lo, hi]. It panics when the
// bounds are inverted.
func (s Size) Clamp(lo, hi Size) Size {
	if lo > hi {
		log.Panicf("clamp bounds are inverted: %v > %v", lo, hi)
	}

	return Min(Max(s, lo), hi)
}

// AlignUp returns the smallest multiple of align that is not smaller than s.
// The zero size is aligned to everything and a zero alignment leaves s
// unchanged. It fails with ErrOverflow when rounding up exceeds 64 bits.
func (s Size) AlignUp(align Size) (Size, error) {
	if s == 0 || align == 0 {
		return s, nil
	}

	rem := s % align
	if rem == 0 {
		return s, nil
	}

	pad := align - rem
	if pad > maxSize-s {
		return 0, ErrOverflow
	}

	return s + pad, nil
}

// RoundUpByte rounds the size up to a whole number of bytes.
func (s Size) RoundUpByte() (Size, error) {
	return s.AlignUp(Byte)
}
