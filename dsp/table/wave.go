package table

import (
	"fmt"
	"strings"
)

// Wave identifies a band-limited waveform family.
type Wave int

const (
	WaveImpulse Wave = iota
	WaveSaw
	WaveSquare
	WaveTriangle
)

var waveNames = [...]string{
	WaveImpulse:  "impulse",
	WaveSaw:      "saw",
	WaveSquare:   "square",
	WaveTriangle: "triangle",
}

func (w Wave) String() string {
	if !w.valid() {
		return "unknown"
	}

	return waveNames[w]
}

// Symmetry returns the redundancy relation used to complete w's tables.
func (w Wave) Symmetry() Symmetry {
	switch w {
	case WaveImpulse:
		return SymmetryDB
	case WaveSaw:
		return SymmetryDP
	default:
		return SymmetryDBQP
	}
}

// OddOnly reports whether w contains odd harmonics only.
func (w Wave) OddOnly() bool {
	return w == WaveSquare || w == WaveTriangle
}

func (w Wave) valid() bool {
	return w >= WaveImpulse && w <= WaveTriangle
}

// Waves returns all waveform families in declaration order.
func Waves() []Wave {
	return []Wave{WaveImpulse, WaveSaw, WaveSquare, WaveTriangle}
}

// ParseWave maps a name such as "saw" to its Wave.
func ParseWave(name string) (Wave, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, w := range Waves() {
		if w.String() == name {
			return w, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownWave, name)
}

// Symmetry classifies the redundancy within one period of a table.
type Symmetry int

const (
	// SymmetryDB reflects the first half about the half period:
	// t[n-i] = t[i].
	SymmetryDB Symmetry = iota
	// SymmetryDP point-reflects the first half about the half period:
	// t[n-i] = -t[i].
	SymmetryDP
	// SymmetryDBQP reflects the first quarter onto the second and negates
	// the first half into the second: t[n/2-i] = t[i], t[n/2+i] = -t[i].
	SymmetryDBQP
)

func (s Symmetry) String() string {
	switch s {
	case SymmetryDB:
		return "db"
	case SymmetryDP:
		return "dp"
	case SymmetryDBQP:
		return "dbqp"
	default:
		return "unknown"
	}
}
