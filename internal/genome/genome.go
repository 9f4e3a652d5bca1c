// Package genome tracks the active reference genome.
package genome

import (
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Recognised identifiers for the GRCh38 build.
const (
	HG38   = "hg38"
	GRCh38 = "GRCh38"
)

// DefaultGenomeID is used when no genome has been configured.
const DefaultGenomeID = HG38

// Provider supplies the identifier of the currently loaded genome.
// Implementations must be cheap to call repeatedly.
type Provider interface {
	GenomeID() string
}

// IsBuild38 reports whether id names the GRCh38 build.
func IsBuild38(id string) bool {
	return id == HG38 || id == GRCh38
}

// Manager holds the active genome id. The zero value is not usable; use NewManager.
type Manager struct {
	mu       sync.RWMutex
	genomeID string
	logger   *zap.Logger
}

// Default is the process-wide genome manager.
var Default = NewManager(DefaultGenomeID)

// NewManager creates a manager with the given active genome.
func NewManager(genomeID string) *Manager {
	return &Manager{
		genomeID: genomeID,
		logger:   zap.NewNop(),
	}
}

// FromConfig creates a manager from the "genome" key of v.
func FromConfig(v *viper.Viper) *Manager {
	v.SetDefault("genome", DefaultGenomeID)
	return NewManager(v.GetString("genome"))
}

// SetLogger sets the logger used to report genome switches. A nil logger
// discards them.
func (m *Manager) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	m.logger = l
}

// GenomeID returns the active genome id.
func (m *Manager) GenomeID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.genomeID
}

// SetGenomeID switches the active genome.
func (m *Manager) SetGenomeID(id string) {
	m.mu.Lock()
	prev := m.genomeID
	m.genomeID = id
	m.mu.Unlock()

	if prev != id {
		m.logger.Debug("genome changed",
			zap.String("from", prev),
			zap.String("to", id))
	}
}

// Static is a Provider that always returns the same id.
type Static string

func (s Static) GenomeID() string { return string(s) }
