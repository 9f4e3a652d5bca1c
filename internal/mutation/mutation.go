// Package mutation models a single mutation call drawn on a mutation track.
//
// A Mutation is populated by its loader and then read by the renderer. The
// display name and allele identifier are derived on first read and kept;
// later setter calls do not invalidate them. A Mutation is not safe for
// concurrent use.
package mutation

import (
	"image/color"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/inodb/vibe-mutation/internal/colortable"
	"github.com/inodb/vibe-mutation/internal/feature"
	"github.com/inodb/vibe-mutation/internal/format"
	"github.com/inodb/vibe-mutation/internal/genome"
)

// FeatureType is the feature kind reported by Type.
const FeatureType = "mutation"

// ColorLookup resolves a mutation category to a display color.
type ColorLookup interface {
	Lookup(category string) drawing.Color
}

// AttributeFormatter renders annotation key/value pairs for popup text.
type AttributeFormatter interface {
	Format(attrs map[string]string, maxWidth int) string
}

// Mutation is one mutation call for one sample over [start, end).
type Mutation struct {
	sampleID     string
	chr          string
	start        int
	end          int
	mutationType string

	refAllele  string
	altAllele1 string
	altAllele2 string
	attributes map[string]string

	// Derived on first read. Empty means not yet computed.
	name     string
	alleleID string

	genome     genome.Provider
	colors     ColorLookup
	attrFormat AttributeFormatter
}

var _ feature.Feature = (*Mutation)(nil)

// Option configures the collaborators of a Mutation.
type Option func(*Mutation)

// WithGenome sets the provider queried for the active genome.
func WithGenome(p genome.Provider) Option {
	return func(m *Mutation) { m.genome = p }
}

// WithColors sets the table used to color the mutation.
func WithColors(c ColorLookup) Option {
	return func(m *Mutation) { m.colors = c }
}

// WithAttributeFormatter sets the formatter used for attributes in ValueString.
func WithAttributeFormatter(f AttributeFormatter) Option {
	return func(m *Mutation) { m.attrFormat = f }
}

// New creates a mutation for sampleID at chr:[start, end) with the given
// mutation type. Coordinates are 0-based.
func New(sampleID, chr string, start, end int, mutationType string, opts ...Option) *Mutation {
	m := &Mutation{
		sampleID:     sampleID,
		chr:          chr,
		start:        start,
		end:          end,
		mutationType: mutationType,
		genome:       genome.Default,
		colors:       colortable.Default,
		attrFormat:   format.AttributeFormatter{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewFromMutation creates a positional copy of src. Sample, location, type,
// display name and allele identifier are carried over; alleles and
// attributes are not. The copy therefore reports no allele identifier until
// its own reference allele is set.
func NewFromMutation(src *Mutation) *Mutation {
	return &Mutation{
		sampleID:     src.sampleID,
		chr:          src.chr,
		start:        src.start,
		end:          src.end,
		mutationType: src.mutationType,
		name:         src.Name(),
		alleleID:     src.AlleleID(),
		genome:       src.genome,
		colors:       src.colors,
		attrFormat:   src.attrFormat,
	}
}

// Copy is shorthand for NewFromMutation(m).
func (m *Mutation) Copy() *Mutation {
	return NewFromMutation(m)
}

func (m *Mutation) Type() string         { return FeatureType }
func (m *Mutation) SampleID() string     { return m.sampleID }
func (m *Mutation) MutationType() string { return m.mutationType }

func (m *Mutation) Chr() string    { return m.chr }
func (m *Mutation) Contig() string { return m.chr }
func (m *Mutation) Start() int     { return m.start }
func (m *Mutation) End() int       { return m.end }

// SetChr replaces the chromosome name, e.g. after alias normalisation.
func (m *Mutation) SetChr(chr string)  { m.chr = chr }
func (m *Mutation) SetStart(start int) { m.start = start }
func (m *Mutation) SetEnd(end int)     { m.end = end }

// SetName overrides the display name. An empty name restores derivation.
func (m *Mutation) SetName(name string) { m.name = name }

func (m *Mutation) RefAllele() string  { return m.refAllele }
func (m *Mutation) AltAllele1() string { return m.altAllele1 }
func (m *Mutation) AltAllele2() string { return m.altAllele2 }

func (m *Mutation) SetRefAllele(a string)  { m.refAllele = a }
func (m *Mutation) SetAltAllele1(a string) { m.altAllele1 = a }
func (m *Mutation) SetAltAllele2(a string) { m.altAllele2 = a }

func (m *Mutation) Attributes() map[string]string         { return m.attributes }
func (m *Mutation) SetAttributes(attrs map[string]string) { m.attributes = attrs }

// Color returns the current color for the mutation type. The table is
// consulted on every call so edits to the color scheme show immediately.
func (m *Mutation) Color() color.Color {
	return m.colors.Lookup(m.mutationType)
}

// SetColor does nothing: mutation colors always come from the color table.
func (m *Mutation) SetColor(color.Color) {}

func (m *Mutation) Strand() feature.Strand { return feature.StrandNone }
func (m *Mutation) Score() float32         { return 0 }
func (m *Mutation) HasScore() bool         { return false }

// Overlaps always reports false; mutations take no part in overlap queries.
func (m *Mutation) Overlaps(feature.Feature) bool { return false }

func (m *Mutation) AminoAcidSequence(int) (feature.AminoAcidSequence, error) {
	return feature.AminoAcidSequence{}, feature.Unsupported(FeatureType, "AminoAcidSequence")
}

func (m *Mutation) CodingStart() (int, error) {
	return 0, feature.Unsupported(FeatureType, "CodingStart")
}

func (m *Mutation) CodingEnd() (int, error) {
	return 0, feature.Unsupported(FeatureType, "CodingEnd")
}
