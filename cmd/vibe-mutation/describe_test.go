package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	cfgFile = ""
	verbose = false
	t.Cleanup(viper.Reset)
}

func TestRunDescribe_Text(t *testing.T) {
	resetConfig(t)

	var buf bytes.Buffer
	err := runDescribe(&buf, describeOptions{
		sample:       "TCGA-01",
		chr:          "chr7",
		start:        101,
		mutationType: "Missense_Mutation",
		ref:          "A",
		alt1:         "G",
		alt2:         "G",
		genomeID:     "hg38",
		format:       "text",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Name:        chr7:101 A>G\n")
	assert.Contains(t, out, "Description: chr7:101 A>G<br>Missense_Mutation\n")
	assert.Contains(t, out, "Allele ID:   7,101,A,G\n")
	assert.Contains(t, out, "Color:       #aa14f0\n")
	assert.Contains(t, out, "var=hg38,7,101,A,G")
	assert.Contains(t, out, "variant=chr7_101_+_A_G")
}

func TestRunDescribe_GenomeFromConfig(t *testing.T) {
	resetConfig(t)
	viper.Set("genome", "hg19")

	var buf bytes.Buffer
	require.NoError(t, runDescribe(&buf, describeOptions{
		chr: "7", start: 101, end: 105, mutationType: "Frame_Shift_Del",
		ref: "ACGTA", alt1: "-", format: "text",
	}))

	out := buf.String()
	assert.Contains(t, out, "Name:        7:101-105 ACGTA>-\n")
	assert.Contains(t, out, "var=hg19,7,101,ACGTA,-")
	assert.NotContains(t, out, "Cravat")
}

func TestRunDescribe_Tab(t *testing.T) {
	resetConfig(t)

	var buf bytes.Buffer
	require.NoError(t, runDescribe(&buf, describeOptions{
		sample: "S1", chr: "chr1", start: 1000, mutationType: "Silent",
		genomeID: "hg38", format: "tab",
	}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "#Name\t"))
	assert.True(t, strings.HasPrefix(lines[1], "chr1:1,000\tS1\t"))
}

func TestRunDescribe_Errors(t *testing.T) {
	resetConfig(t)

	tests := []struct {
		name string
		opts describeOptions
	}{
		{"zero start", describeOptions{chr: "1", start: 0, format: "text"}},
		{"end before start", describeOptions{chr: "1", start: 100, end: 50, format: "text"}},
		{"bad format", describeOptions{chr: "1", start: 100, format: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Error(t, runDescribe(&buf, tt.opts))
		})
	}
}

func TestRootCmd_ConfigColors(t *testing.T) {
	resetConfig(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("genome: GRCh38\nmutation_colors:\n  Nonsense_Mutation: \"1,2,3\"\n"), 0644))

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--config", path, "describe",
		"--chr", "17", "--start", "7577120", "--type", "Nonsense_Mutation",
		"--ref", "C", "--alt1", "T"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Name:        17:7,577,120 C>T\n")
	assert.Contains(t, out, "Color:       #010203\n")
	assert.Contains(t, out, "var=GRCh38,17,7577120,C,T")
	assert.Contains(t, out, "variant=chr17_7577120_+_C_T")
}

func TestRootCmd_ConfigGet(t *testing.T) {
	resetConfig(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("genome: hg19\n"), 0644))

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--config", path, "config", "get", "genome"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "hg19\n", buf.String())
}

func TestColorsCmd(t *testing.T) {
	resetConfig(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mutation_colors:\n  Missense: \"#000000\"\n"), 0644))

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--config", path, "colors"})
	require.NoError(t, cmd.Execute())

	assert.Regexp(t, `(?m)^Missense\s+#000000$`, buf.String())
	assert.Regexp(t, `(?m)^Indel\s+#00c800$`, buf.String())
}

func TestConfigCmd_SetThenGet(t *testing.T) {
	resetConfig(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("genome: hg19\n"), 0644))

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--config", path, "config", "set", "genome", "GRCh38"})
	require.NoError(t, cmd.Execute())

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(written), "genome: GRCh38")

	cmd = newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--config", path, "config", "get", "missing_key"})
	assert.Error(t, cmd.Execute())
}
