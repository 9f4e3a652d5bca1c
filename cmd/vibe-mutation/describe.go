package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"go.uber.org/zap"

	"github.com/inodb/vibe-mutation/internal/colortable"
	"github.com/inodb/vibe-mutation/internal/feature"
	"github.com/inodb/vibe-mutation/internal/genome"
	"github.com/inodb/vibe-mutation/internal/mutation"
	"github.com/inodb/vibe-mutation/internal/output"
)

type describeOptions struct {
	sample       string
	chr          string
	start        int
	end          int
	mutationType string
	ref          string
	alt1         string
	alt2         string
	attrs        map[string]string
	genomeID     string
	format       string
}

func newDescribeCmd() *cobra.Command {
	var o describeOptions

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe a single mutation call",
		Long: `Build a mutation from flags and print its display name, description,
popup text, external links and color. Positions are 1-based as in MAF files.`,
		Example: `  vibe-mutation describe --chr chr7 --start 140453136 --type Missense_Mutation --ref A --alt1 T
  vibe-mutation describe --chr 12 --start 25245351 --type Missense_Mutation --ref C --alt1 A -f tab
  vibe-mutation describe --chr 17 --start 7577120 --end 7577125 --type Frame_Shift_Del --genome hg19`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd.OutOrStdout(), o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.sample, "sample", "", "Sample identifier")
	f.StringVar(&o.chr, "chr", "", "Chromosome")
	f.IntVar(&o.start, "start", 0, "1-based start position")
	f.IntVar(&o.end, "end", 0, "End position (default: start)")
	f.StringVar(&o.mutationType, "type", "", "Mutation type, e.g. Missense_Mutation")
	f.StringVar(&o.ref, "ref", "", "Reference allele")
	f.StringVar(&o.alt1, "alt1", "", "First alternate allele")
	f.StringVar(&o.alt2, "alt2", "", "Second alternate allele")
	f.StringToStringVar(&o.attrs, "attr", nil, "Annotation key=value pairs")
	f.StringVar(&o.genomeID, "genome", "", "Genome id (default: config 'genome')")
	f.StringVarP(&o.format, "output-format", "f", "text", "Output format: text, tab")

	_ = cmd.MarkFlagRequired("chr")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func runDescribe(w io.Writer, o describeOptions) error {
	if o.start < 1 {
		return fmt.Errorf("--start must be a 1-based position, got %d", o.start)
	}
	if o.end == 0 {
		o.end = o.start
	}
	if o.end < o.start-1 {
		return fmt.Errorf("--end %d is before --start %d", o.end, o.start)
	}

	gm := genome.FromConfig(viper.GetViper())
	gm.SetLogger(logger)
	if o.genomeID != "" {
		gm.SetGenomeID(o.genomeID)
	}

	m := mutation.New(o.sample, o.chr, o.start-1, o.end, o.mutationType,
		mutation.WithGenome(gm),
		mutation.WithColors(loadColorTable()))
	m.SetRefAllele(o.ref)
	m.SetAltAllele1(o.alt1)
	m.SetAltAllele2(o.alt2)
	if len(o.attrs) > 0 {
		m.SetAttributes(o.attrs)
	}

	logger.Debug("describing mutation",
		zap.String("genome", gm.GenomeID()),
		zap.String("chr", o.chr),
		zap.Int("start", o.start-1),
		zap.Int("end", o.end))

	switch o.format {
	case "text":
		return writeText(w, m)
	case "tab":
		tw := output.NewTabWriter(w)
		if err := tw.WriteHeader(); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		if err := tw.Write(m); err != nil {
			return fmt.Errorf("writing mutation: %w", err)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", o.format)
	}
}

func writeText(w io.Writer, m *mutation.Mutation) error {
	color := "-"
	if c, ok := m.Color().(drawing.Color); ok && c.A > 0 {
		color = colortable.Hex(c)
	}

	_, err := fmt.Fprintf(w, "Name:        %s\nDescription: %s\nAllele ID:   %s\nColor:       %s\nValue:       %s\n",
		m.Name(),
		m.Description(),
		dashIfEmpty(m.AlleleID()),
		color,
		m.ValueString(float64(m.Start()+1), 0, feature.WindowNone))
	return err
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
