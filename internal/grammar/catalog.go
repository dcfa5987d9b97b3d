// Package grammar provides the immutable grammar pattern catalog and the
// heuristic surface detector that scans text for pattern occurrences.
package grammar

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
)

// LevelUnknown is returned by LevelOf for pattern keys absent from the
// catalog. The catalog never guesses a level for an unrecognized key.
const LevelUnknown = "unknown"

// Pattern is one grammar construction in the catalog: a stable key, its
// CEFR level, detection probes evaluated in order, and the keys of simpler
// constructions it subsumes when detected in the same text.
type Pattern struct {
	Key         string
	Level       domain.Level
	Description string
	Subsumes    []string

	probes []*regexp.Regexp
}

// patternDef is the source form of a catalog entry before probe compilation.
type patternDef struct {
	key         string
	level       domain.Level
	description string
	probes      []string
	subsumes    []string
}

// Catalog is the ordered, immutable table of grammar patterns. It is built
// once at startup and shared by reference; nothing mutates it at runtime.
type Catalog struct {
	ordered []Pattern
	byKey   map[string]int
	byLevel map[domain.Level][]string
	logger  *slog.Logger
}

// NewDefaultCatalog builds the catalog from the built-in pattern table.
// Probe expressions are compiled case-insensitively; a malformed probe is a
// programming error and fails construction.
func NewDefaultCatalog(logger *slog.Logger) (*Catalog, error) {
	return newCatalog(defaultPatterns(), logger)
}

func newCatalog(defs []patternDef, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Catalog{
		ordered: make([]Pattern, 0, len(defs)),
		byKey:   make(map[string]int, len(defs)),
		byLevel: make(map[domain.Level][]string),
		logger:  logger.With("component", "pattern_catalog"),
	}

	for _, def := range defs {
		if def.key == "" {
			return nil, fmt.Errorf("pattern with empty key: %w", domain.ErrValidation)
		}
		if !def.level.IsValid() {
			return nil, fmt.Errorf("pattern %q has invalid level %q: %w",
				def.key, def.level, domain.ErrValidation)
		}
		if _, dup := c.byKey[def.key]; dup {
			return nil, fmt.Errorf("duplicate pattern key %q: %w", def.key, domain.ErrValidation)
		}

		p := Pattern{
			Key:         def.key,
			Level:       def.level,
			Description: def.description,
			Subsumes:    def.subsumes,
			probes:      make([]*regexp.Regexp, 0, len(def.probes)),
		}
		for _, probe := range def.probes {
			re, err := regexp.Compile("(?i)" + probe)
			if err != nil {
				return nil, fmt.Errorf("pattern %q has malformed probe %q: %w", def.key, probe, err)
			}
			p.probes = append(p.probes, re)
		}

		c.byKey[def.key] = len(c.ordered)
		c.ordered = append(c.ordered, p)
		c.byLevel[def.level] = append(c.byLevel[def.level], def.key)
	}

	return c, nil
}

// LevelOf returns the CEFR level of a pattern key as a string, or the
// literal "unknown" if the key is absent. Unrecognized keys are logged as a
// data-quality warning, never assigned a guessed level.
func (c *Catalog) LevelOf(key string) string {
	idx, ok := c.byKey[key]
	if !ok {
		c.logger.Warn("pattern key not found in catalog, marking as unknown",
			"pattern_key", key)
		return LevelUnknown
	}
	return string(c.ordered[idx].Level)
}

// PatternsOf returns the ordered pattern keys belonging to a level.
func (c *Catalog) PatternsOf(level domain.Level) []string {
	keys := c.byLevel[level]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Lookup returns the catalog entry for a key.
func (c *Catalog) Lookup(key string) (Pattern, bool) {
	idx, ok := c.byKey[key]
	if !ok {
		return Pattern{}, false
	}
	return c.ordered[idx], true
}

// Ordered returns all patterns in declared priority order (most specific
// construction first). Callers must not mutate the returned slice.
func (c *Catalog) Ordered() []Pattern {
	return c.ordered
}

// Len returns the total number of patterns in the catalog.
func (c *Catalog) Len() int {
	return len(c.ordered)
}
