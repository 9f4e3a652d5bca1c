// Package feature defines the capability set shared by all genomic features
// drawn on a track.
package feature

import (
	"errors"
	"image/color"
)

// ErrUnsupported is returned by capabilities a feature kind does not implement.
var ErrUnsupported = errors.New("not supported")

// Strand of a feature.
type Strand int

const (
	StrandNone Strand = iota
	StrandPositive
	StrandNegative
)

func (s Strand) String() string {
	switch s {
	case StrandPositive:
		return "+"
	case StrandNegative:
		return "-"
	default:
		return "NONE"
	}
}

// WindowFunction selects how values are aggregated over a display window.
type WindowFunction string

const (
	WindowNone   WindowFunction = "none"
	WindowMean   WindowFunction = "mean"
	WindowMedian WindowFunction = "median"
	WindowMin    WindowFunction = "min"
	WindowMax    WindowFunction = "max"
)

// AminoAcidSequence is the translated sequence of one exon.
type AminoAcidSequence struct {
	Strand   Strand
	Start    int
	Sequence string
}

// Feature is implemented by everything a track can render.
type Feature interface {
	// Type returns the feature kind, e.g. "mutation".
	Type() string

	Contig() string
	Chr() string
	Start() int
	End() int
	Strand() Strand

	Score() float32
	HasScore() bool

	Color() color.Color
	SetColor(c color.Color)

	Name() string
	Description() string

	// ValueString returns the popup text for the feature at the given
	// genomic position and screen x coordinate.
	ValueString(position float64, mouseX int, wf WindowFunction) string

	Overlaps(other Feature) bool

	// AminoAcidSequence and the coding bounds return an error wrapping
	// ErrUnsupported for feature kinds without a coding model.
	AminoAcidSequence(exon int) (AminoAcidSequence, error)
	CodingStart() (int, error)
	CodingEnd() (int, error)
}

// Unsupported returns an error wrapping ErrUnsupported for the named
// operation on the given feature kind.
func Unsupported(kind, op string) error {
	return &UnsupportedError{Kind: kind, Op: op}
}

// UnsupportedError reports a capability missing from a feature kind.
type UnsupportedError struct {
	Kind string
	Op   string
}

func (e *UnsupportedError) Error() string {
	return e.Kind + ": " + e.Op + ": " + ErrUnsupported.Error()
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}
