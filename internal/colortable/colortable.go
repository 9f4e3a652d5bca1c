// Package colortable maps mutation categories to display colors.
//
// Tables are shared and may be edited while tracks are being drawn, so
// consumers look colors up on every paint rather than caching them.
package colortable

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"go.uber.org/zap"
)

// ConfigKey is the viper key holding user color overrides.
const ConfigKey = "mutation_colors"

// Table maps category keys to colors. Keys match case-insensitively; the
// spelling first used for a key is the one Keys reports.
type Table struct {
	mu       sync.RWMutex
	colors   map[string]drawing.Color
	names    map[string]string
	fallback drawing.Color
}

// New creates an empty table whose fallback is fully transparent.
func New() *Table {
	return &Table{
		colors:   make(map[string]drawing.Color),
		names:    make(map[string]string),
		fallback: drawing.ColorTransparent,
	}
}

// Lookup returns the color for key, or the fallback color when key has no mapping.
func (t *Table) Lookup(key string) drawing.Color {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if c, ok := t.colors[strings.ToLower(key)]; ok {
		return c
	}
	return t.fallback
}

// Has reports whether key has an explicit mapping.
func (t *Table) Has(key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.colors[strings.ToLower(key)]
	return ok
}

// Set maps key to c.
func (t *Table) Set(key string, c drawing.Color) {
	lk := strings.ToLower(key)
	t.mu.Lock()
	t.colors[lk] = c
	if _, ok := t.names[lk]; !ok {
		t.names[lk] = key
	}
	t.mu.Unlock()
}

// Delete removes the mapping for key.
func (t *Table) Delete(key string) {
	lk := strings.ToLower(key)
	t.mu.Lock()
	delete(t.colors, lk)
	delete(t.names, lk)
	t.mu.Unlock()
}

// SetFallback sets the color returned for unmapped keys.
func (t *Table) SetFallback(c drawing.Color) {
	t.mu.Lock()
	t.fallback = c
	t.mu.Unlock()
}

// Keys returns the mapped keys in sorted order.
func (t *Table) Keys() []string {
	t.mu.RLock()
	keys := make([]string, 0, len(t.names))
	for _, k := range t.names {
		keys = append(keys, k)
	}
	t.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// ParseColor parses "#rrggbb", "rrggbb", "#rgb" or "r,g,b".
func ParseColor(s string) (drawing.Color, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		return parseRGB(s)
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 3 && len(hex) != 6 {
		return drawing.Color{}, fmt.Errorf("invalid color %q", s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return drawing.Color{}, fmt.Errorf("invalid color %q", s)
	}
	return drawing.ColorFromHex(hex), nil
}

func parseRGB(s string) (drawing.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return drawing.Color{}, fmt.Errorf("invalid color %q: expected r,g,b", s)
	}
	var rgb [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return drawing.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		rgb[i] = uint8(n)
	}
	return drawing.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}

// Hex formats c as "#rrggbb".
func Hex(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// LoadConfig overlays the entries under ConfigKey in v onto t and returns
// the number applied. Entries that fail to parse are logged and skipped.
// Viper lower-cases keys, which Table lookups tolerate.
func LoadConfig(v *viper.Viper, t *Table, logger *zap.Logger) int {
	if logger == nil {
		logger = zap.NewNop()
	}

	n := 0
	for key, value := range v.GetStringMapString(ConfigKey) {
		c, err := ParseColor(value)
		if err != nil {
			logger.Warn("ignoring mutation color",
				zap.String("category", key),
				zap.Error(err))
			continue
		}
		t.Set(key, c)
		n++
	}
	return n
}
