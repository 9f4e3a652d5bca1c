package colortable

import "github.com/wcharczuk/go-chart/v2/drawing"

// Mutation color scheme categories.
const (
	Indel               = "Indel"
	Missense            = "Missense"
	Nonsense            = "Nonsense"
	SpliceSite          = "Splice_site"
	Synonymous          = "Synonymous"
	TargetedRegion      = "Targeted_Region"
	Unknown             = "Unknown"
	Truncating          = "Truncating"
	NonCodingTranscript = "Non-coding_Transcript"
	OtherAAChanging     = "Other_AA_changing"
	OtherLikelyNeutral  = "Other_likely_neutral"
)

var schemeColors = map[string]drawing.Color{
	Indel:               {R: 0, G: 200, B: 0, A: 255},
	Missense:            {R: 170, G: 20, B: 240, A: 255},
	Nonsense:            {R: 50, G: 30, B: 75, A: 255},
	SpliceSite:          {R: 150, G: 0, B: 150, A: 255},
	Synonymous:          {R: 200, G: 170, B: 200, A: 255},
	TargetedRegion:      {R: 236, G: 155, B: 43, A: 255},
	Unknown:             {R: 0, G: 180, B: 225, A: 255},
	Truncating:          {R: 150, G: 0, B: 0, A: 255},
	NonCodingTranscript: {R: 0, G: 0, B: 150, A: 255},
	OtherAAChanging:     {R: 0, G: 150, B: 150, A: 255},
	OtherLikelyNeutral:  {R: 225, G: 180, B: 225, A: 255},
}

// MAF Variant_Classification values and the scheme category they are drawn with.
var classificationCategory = map[string]string{
	"Missense_Mutation":      Missense,
	"Nonsense_Mutation":      Nonsense,
	"Splice_Site":            SpliceSite,
	"Splice_Region":          SpliceSite,
	"Silent":                 Synonymous,
	"Frame_Shift_Del":        Indel,
	"Frame_Shift_Ins":        Indel,
	"In_Frame_Del":           Indel,
	"In_Frame_Ins":           Indel,
	"Nonstop_Mutation":       Truncating,
	"Translation_Start_Site": Truncating,
	"RNA":                    NonCodingTranscript,
	"Targeted_Region":        TargetedRegion,
}

// NewDefault creates a table seeded with the default mutation color scheme.
// Both the scheme categories and the MAF classifications are mapped.
func NewDefault() *Table {
	t := New()
	for k, c := range schemeColors {
		t.Set(k, c)
	}
	for k, cat := range classificationCategory {
		t.Set(k, schemeColors[cat])
	}
	return t
}

// Default is the process-wide mutation color table.
var Default = NewDefault()
