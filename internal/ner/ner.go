// Package ner defines the optional named-entity tagging capability used by
// text classification. The engine only depends on the capability contract;
// when no real tagger is configured the no-op implementation is selected and
// classification degrades to surface heuristics.
package ner

import "context"

// Label is a named-entity category.
type Label string

// Entity labels that mark a token as a proper noun for classification.
const (
	LabelPerson       Label = "PERSON"
	LabelGeopolitical Label = "GPE"
	LabelOrganization Label = "ORG"
	LabelLocation     Label = "LOC"
)

// Entity is one tagged span of input text.
type Entity struct {
	Text  string `json:"text"`
	Label Label  `json:"label"`
}

// Tagger tags entities in a piece of text. Implementations carry their own
// timeout and retry policy; the classifier treats any error as "no entities"
// and falls back to capitalization heuristics.
type Tagger interface {
	TagEntities(ctx context.Context, text string) ([]Entity, error)
}

// NoopTagger is the explicit "NER absent" implementation. It never reports
// entities and never fails.
type NoopTagger struct{}

// TagEntities implements Tagger.
func (NoopTagger) TagEntities(context.Context, string) ([]Entity, error) {
	return nil, nil
}

// IsProperNounLabel reports whether a label marks proper nouns.
func IsProperNounLabel(label Label) bool {
	switch label {
	case LabelPerson, LabelGeopolitical, LabelOrganization, LabelLocation:
		return true
	}
	return false
}
