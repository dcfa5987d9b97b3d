package grammar

import (
	"errors"
	"log/slog"
)

// Detector scans text for grammar pattern occurrences using the catalog's
// ordered probes. It is a heuristic surface scanner, not a parser; false
// positives and negatives are expected and pinned by tests.
type Detector struct {
	catalog *Catalog
	logger  *slog.Logger
}

// NewDetector creates a Detector over the given catalog.
func NewDetector(catalog *Catalog, logger *slog.Logger) (*Detector, error) {
	if catalog == nil {
		return nil, errors.New("catalog cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Detector{
		catalog: catalog,
		logger:  logger.With("component", "pattern_detector"),
	}, nil
}

// Detect returns the ordered, de-duplicated list of pattern keys found in
// text. Patterns are evaluated in catalog priority order; within a pattern
// the probe list short-circuits on the first match, while scanning always
// continues across the remaining patterns. Matching is case-insensitive.
// A detected construction suppresses the simpler keys it subsumes, so a
// perfect-continuous clause is not also reported as a bare perfect.
// Identical input yields identical output.
func (d *Detector) Detect(text string) []string {
	if text == "" {
		return nil
	}

	detected := make([]string, 0, 8)
	seen := make(map[string]struct{})
	suppressed := make(map[string]struct{})

	for _, pattern := range d.catalog.Ordered() {
		for _, probe := range pattern.probes {
			if !probe.MatchString(text) {
				continue
			}
			if _, ok := seen[pattern.Key]; !ok {
				seen[pattern.Key] = struct{}{}
				detected = append(detected, pattern.Key)
				for _, sub := range pattern.Subsumes {
					suppressed[sub] = struct{}{}
				}
			}
			break
		}
	}

	if len(suppressed) == 0 {
		return detected
	}

	filtered := detected[:0]
	for _, key := range detected {
		if _, drop := suppressed[key]; drop {
			d.logger.Debug("suppressing subsumed pattern", "pattern_key", key)
			continue
		}
		filtered = append(filtered, key)
	}
	return filtered
}
