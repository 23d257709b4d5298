package table

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// WriteHex writes src as a brace-enclosed array literal of IEEE-754 bit
// patterns, perLine values per line, for pasting into precomputed tables.
func WriteHex(w io.Writer, src []float32, perLine int) error {
	s, err := FormatHex(src, perLine)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, s)
	return err
}

// FormatHex returns the array literal written by [WriteHex].
func FormatHex(src []float32, perLine int) (string, error) {
	if perLine <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPerLine, perLine)
	}

	var b strings.Builder
	b.Grow(len(src)*11 + 8)
	b.WriteByte('{')
	for i, v := range src {
		if i%perLine == 0 {
			b.WriteString("\n\t")
		}
		fmt.Fprintf(&b, "0x%08x", math.Float32bits(v))
		if i < len(src)-1 {
			b.WriteByte(',')
		}
	}
	b.WriteString("\n};")

	return b.String(), nil
}
