// Package window fills tables with analysis and synthesis windows.
//
// Every shape except Rectangle and Nyquist is even-symmetric about its
// midpoint. Only the first half is evaluated; the second half is a mirror
// copy, so dst[i] == dst[len(dst)-1-i] holds exactly.
package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavetable/dsp/core"
)

// Type identifies a window function.
type Type int

const (
	TypeBartlett Type = iota
	TypeBlackman
	TypeBlackmanHarris
	TypeHamming
	TypeHann
	TypeWelch
	TypeNyquist
	TypeRectangle
)

var typeNames = [...]string{
	TypeBartlett:       "Bartlett",
	TypeBlackman:       "Blackman",
	TypeBlackmanHarris: "BlackmanHarris",
	TypeHamming:        "Hamming",
	TypeHann:           "Hann",
	TypeWelch:          "Welch",
	TypeNyquist:        "Nyquist",
	TypeRectangle:      "Rectangle",
}

func (t Type) String() string {
	if t < TypeBartlett || t > TypeRectangle {
		return "Unknown"
	}

	return typeNames[t]
}

// Symmetric reports whether windows of type t are even-symmetric about
// their midpoint.
func (t Type) Symmetric() bool {
	return t != TypeNyquist && t != TypeRectangle
}

// Types returns all window types in declaration order.
func Types() []Type {
	return []Type{
		TypeBartlett, TypeBlackman, TypeBlackmanHarris, TypeHamming,
		TypeHann, TypeWelch, TypeNyquist, TypeRectangle,
	}
}

// ParseType maps a case-insensitive name such as "hann" or
// "blackman-harris" to its Type.
func ParseType(name string) (Type, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	for _, t := range Types() {
		if strings.ToLower(t.String()) == key {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Fill writes a window of type t into dst. Unknown types fall back to
// Rectangle.
func Fill[T core.Real](dst []T, t Type) {
	switch t {
	case TypeBartlett:
		Bartlett(dst)
	case TypeBlackman:
		Blackman(dst)
	case TypeBlackmanHarris:
		BlackmanHarris(dst)
	case TypeHamming:
		Hamming(dst)
	case TypeHann:
		Hann(dst)
	case TypeWelch:
		Welch(dst)
	case TypeNyquist:
		Nyquist(dst)
	default:
		Rectangle(dst)
	}
}

// Generate returns a new window of type t and the given length, or nil
// for length <= 0.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	Fill(out, t)

	return out
}

// Apply multiplies buf in place by a window of type t.
func Apply(t Type, buf []float64) {
	if len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, Generate(t, len(buf)))
}

// Bartlett fills dst with a triangle rising from 0 to 1 and back.
func Bartlett[T core.Real](dst []T) {
	symmetric(dst, 2, 0, bartlett)
}

// Blackman fills dst with a three-term Blackman window.
func Blackman[T core.Real](dst []T) {
	symmetric(dst, 2*math.Pi, 0, blackman)
}

// BlackmanHarris fills dst with a four-term Blackman-Harris window.
func BlackmanHarris[T core.Real](dst []T) {
	symmetric(dst, 2*math.Pi, 0, blackmanHarris)
}

// Hamming fills dst with a Hamming window.
func Hamming[T core.Real](dst []T) {
	symmetric(dst, 2*math.Pi, 0, hamming)
}

// Hann fills dst with a von Hann window.
func Hann[T core.Real](dst []T) {
	symmetric(dst, 2*math.Pi, 0, hann)
}

// Welch fills dst with the parabola 1 - x^2 over x in [-1, 1].
func Welch[T core.Real](dst []T) {
	symmetric(dst, 2, -1, welch)
}

// Rectangle fills dst with ones.
func Rectangle[T core.Real](dst []T) {
	for i := range dst {
		dst[i] = 1
	}
}

// Nyquist fills dst with +1, -1, +1, ...
func Nyquist[T core.Real](dst []T) {
	for i := range dst {
		dst[i] = T(1 - 2*(i&1))
	}
}

// symmetric evaluates eval at phs0 + i*period/(n-1) for the first half of
// dst and mirrors each value onto dst[n-1-i]. A single sample takes the
// value at the centre of the range.
func symmetric[T core.Real](dst []T, period, phs0 float64, eval func(float64) float64) {
	n := len(dst)
	switch n {
	case 0:
		return
	case 1:
		dst[0] = T(eval(phs0 + period/2))
		return
	}

	inc := period / float64(n-1)
	for i := 0; i < (n+1)>>1; i++ {
		v := T(eval(phs0 + float64(i)*inc))
		dst[i] = v
		dst[n-1-i] = v
	}
}
