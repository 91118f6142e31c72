package hufftree

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Code represents a sequence of up to MaxCodeSize bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  Bit i of the sequence is
	// stored at bit position i%64 of Bits[i/64], so the least significant
	// bit of Bits[0] is the first bit.
	Bits [4]uint64
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("hufftree: code %q is longer than %d bits", str, MaxCodeSize)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("hufftree: invalid character %q in code %q", str[i], str)
		}
	}
	return hc, nil
}

// Append returns a copy of this Code with one more bit at the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(bit <= 1, "bit %d is neither 0 nor 1", bit)
	assert.Assertf(hc.Size < MaxCodeSize, "code already holds %d bits", hc.Size)
	i := uint(hc.Size)
	hc.Bits[i/64] |= uint64(bit) << (i % 64)
	hc.Size++
	return hc
}

// Bit returns the i'th bit of this Code.
func (hc Code) Bit(i int) uint {
	assert.Assertf(i >= 0 && i < int(hc.Size), "bit index %d out of range [0..%d)", i, hc.Size)
	return uint(hc.Bits[i/64]>>(uint(i)%64)) & 1
}

// HasPrefix returns true iff the first prefix.Size bits of this Code are
// equal to prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := 0; i < int(prefix.Size); i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// AppendText appends the bits of this Code to dst as ASCII '0' and '1'
// characters, first bit first.
func (hc Code) AppendText(dst []byte) []byte {
	for i := 0; i < int(hc.Size); i++ {
		dst = append(dst, byte('0'+hc.Bit(i)))
	}
	return dst
}

// Text returns the bits of this Code as a string of '0' and '1'.
func (hc Code) Text() string {
	return string(hc.AppendText(make([]byte, 0, hc.Size)))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	return strconv.Quote(hc.Text())
}

var _ fmt.Stringer = Code{}
