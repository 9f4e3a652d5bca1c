package mutation

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var positionPrinter = message.NewPrinter(language.English)

// Name returns the display name, e.g. "chr7:140,453,136 A>T". Positions are
// shown 1-based. The name is derived once and kept until SetName.
func (m *Mutation) Name() string {
	if m.name == "" {
		m.name = m.deriveName()
	}
	return m.name
}

func (m *Mutation) deriveName() string {
	var b strings.Builder
	b.WriteString(m.chr)
	b.WriteByte(':')
	b.WriteString(positionPrinter.Sprintf("%d", m.start+1))
	if m.end > m.start+1 {
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(m.end))
	}

	if m.refAllele != "" && m.altAllele1 != "" {
		if m.altAllele1 != m.refAllele {
			writeChange(&b, m.refAllele, m.altAllele1)
		}
		if m.altAllele2 != "" && m.altAllele2 != m.altAllele1 && m.altAllele2 != m.refAllele {
			writeChange(&b, m.refAllele, m.altAllele2)
		}
	}
	return b.String()
}

func writeChange(b *strings.Builder, ref, alt string) {
	b.WriteByte(' ')
	b.WriteString(ref)
	b.WriteByte('>')
	b.WriteString(alt)
}

// Description returns the display name and mutation type as HTML.
func (m *Mutation) Description() string {
	return m.Name() + "<br>" + m.mutationType
}

// AlleleID returns the "chrom,pos,ref,alt" identifier used by allele
// assessment services, with the chromosome stripped of its "chr" prefix and
// a 1-based position. It is empty while the reference allele is unset.
// Once derived it is kept even if alleles change.
func (m *Mutation) AlleleID() string {
	if m.refAllele == "" {
		return ""
	}
	if m.alleleID == "" {
		m.alleleID = strings.Join([]string{
			strings.TrimPrefix(m.chr, "chr"),
			strconv.Itoa(m.start + 1),
			m.refAllele,
			m.altAllele(),
		}, ",")
	}
	return m.alleleID
}

// altAllele returns the allele that differs from the reference: the second
// alternate when the first only repeats the reference.
func (m *Mutation) altAllele() string {
	if m.altAllele1 == m.refAllele {
		return m.altAllele2
	}
	return m.altAllele1
}
