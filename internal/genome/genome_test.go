package genome

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestIsBuild38(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"hg38", true},
		{"GRCh38", true},
		{"hg19", false},
		{"GRCh37", false},
		{"HG38", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBuild38(tt.id))
		})
	}
}

func TestManager_SetGenomeID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	m := NewManager("hg19")
	m.SetLogger(zap.New(core))
	assert.Equal(t, "hg19", m.GenomeID())

	m.SetGenomeID("hg38")
	assert.Equal(t, "hg38", m.GenomeID())

	// Setting the same genome again is not a switch.
	m.SetGenomeID("hg38")

	entries := logs.FilterMessage("genome changed").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "hg19", entries[0].ContextMap()["from"])
		assert.Equal(t, "hg38", entries[0].ContextMap()["to"])
	}
}

func TestFromConfig(t *testing.T) {
	v := viper.New()
	assert.Equal(t, DefaultGenomeID, FromConfig(v).GenomeID())

	v.Set("genome", "GRCh38")
	assert.Equal(t, "GRCh38", FromConfig(v).GenomeID())
}

func TestStatic(t *testing.T) {
	var p Provider = Static("mm10")
	assert.Equal(t, "mm10", p.GenomeID())
}

func TestManager_SetLoggerNil(t *testing.T) {
	m := NewManager("hg19")
	m.SetLogger(nil)

	assert.NotPanics(t, func() { m.SetGenomeID("hg38") })
	assert.Equal(t, "hg38", m.GenomeID())
}
