// Package output provides mutation output formatters.
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/inodb/vibe-mutation/internal/colortable"
	"github.com/inodb/vibe-mutation/internal/mutation"
)

// TabWriter writes mutations in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Name",
			"Sample",
			"Location",
			"Mutation_Type",
			"Color",
			"Allele_ID",
			"MutationAssessor",
			"Cravat",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single mutation.
func (tw *TabWriter) Write(m *mutation.Mutation) error {
	location := m.Chr() + ":" + strconv.Itoa(m.Start()+1) + "-" + strconv.Itoa(m.End())

	color := "-"
	if c, ok := m.Color().(drawing.Color); ok && c.A > 0 {
		color = colortable.Hex(c)
	}

	values := []string{
		m.Name(),
		orDash(m.SampleID()),
		location,
		orDash(m.MutationType()),
		color,
		orDash(m.AlleleID()),
		orDash(m.MutationAssessorURL()),
		orDash(m.CravatLink()),
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
