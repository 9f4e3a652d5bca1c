package mutation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inodb/vibe-mutation/internal/feature"
	"github.com/inodb/vibe-mutation/internal/genome"
)

const (
	mutationAssessorBase = "http://mutationassessor.org/r3/?cm=var&var="
	cravatBase           = "http://www.cravat.us/CRAVAT/variant.html?variant="

	// ValueAttributeWidth is the width attribute values are cut to in ValueString.
	ValueAttributeWidth = 100
)

// MutationAssessorURL returns the Mutation Assessor query URL for the active
// genome, or "" when the reference allele is unset.
func (m *Mutation) MutationAssessorURL() string {
	if m.refAllele == "" {
		return ""
	}
	return mutationAssessorBase + m.genome.GenomeID() + "," + m.AlleleID()
}

// CravatLink returns an HTML anchor to the CRAVAT variant page, e.g. for
// chr22_40418496_+_A_G. CRAVAT only serves GRCh38, so the link is "" for any
// other active genome and when the reference allele is unset.
func (m *Mutation) CravatLink() string {
	if !genome.IsBuild38(m.genome.GenomeID()) {
		return ""
	}
	if m.refAllele == "" {
		return ""
	}

	alt := m.altAllele()
	chr := m.chr
	if !strings.HasPrefix(chr, "chr") {
		chr = "chr" + chr
	}
	variant := strings.Join([]string{chr, strconv.Itoa(m.start + 1), "+", m.refAllele, alt}, "_")

	return fmt.Sprintf("<a target='_blank' href='%s%s'>Cravat %s->%s</a>",
		cravatBase, variant, m.refAllele, alt)
}

// ValueString returns the popup text: mutation type, attributes and any
// external links, one per line. The arguments are ignored. It is rebuilt on
// every call so a genome switch is reflected in the links.
func (m *Mutation) ValueString(position float64, mouseX int, wf feature.WindowFunction) string {
	var b strings.Builder
	b.WriteString("Type: ")
	b.WriteString(m.mutationType)

	if m.attributes != nil && m.attrFormat != nil {
		b.WriteString(m.attrFormat.Format(m.attributes, ValueAttributeWidth))
	}

	if url := m.MutationAssessorURL(); url != "" {
		b.WriteString(`<br/><a href="`)
		b.WriteString(url)
		b.WriteString(`">Mutation Assessor</a>`)
	}

	if link := m.CravatLink(); link != "" {
		b.WriteString("<br/>")
		b.WriteString(link)
	}
	return b.String()
}
