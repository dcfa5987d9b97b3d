package adaptation

import (
	"fmt"
	"strings"
)

// levelDescriptions summarize what each CEFR level permits, for the
// rewriting prompt.
var levelDescriptions = map[string]string{
	"A1": "Very basic vocabulary, simple present tense, short sentences.",
	"A2": "Everyday vocabulary, simple past and future, basic connectors.",
	"B1": "Common abstract vocabulary, perfect tenses, first conditionals, simple passive.",
	"B2": "Broad vocabulary, full passive, reported speech, second conditionals.",
	"C1": "Advanced vocabulary, third conditionals, inversion, complex subordination.",
	"C2": "Near-native vocabulary and any grammatical construction.",
}

// BuildPrompt renders the rewrite directive as the instruction text sent to
// the rewriting collaborator.
func BuildPrompt(req RewriteRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert English teacher adapting a text for a language learner.\n\n")
	fmt.Fprintf(&b, "TASK: Rewrite the text below exactly at %s CEFR level.\n\n", req.TargetLevel)
	fmt.Fprintf(&b, "STUDENT PROFILE:\n")
	fmt.Fprintf(&b, "- Current level: %s\n", req.CurrentLevel)
	fmt.Fprintf(&b, "- Target level: %s (one level above current)\n", req.TargetLevel)
	if len(req.KnownWordsSample) > 0 {
		fmt.Fprintf(&b, "- Known words: %s\n", strings.Join(req.KnownWordsSample, ", "))
	}
	if len(req.KnownPatternsSample) > 0 {
		fmt.Fprintf(&b, "- Known grammar: %s\n", strings.Join(req.KnownPatternsSample, ", "))
	}
	if len(req.AvoidPatterns) > 0 {
		fmt.Fprintf(&b, "- Strictly avoid these patterns: %s\n", strings.Join(req.AvoidPatterns, ", "))
	}

	if desc, ok := levelDescriptions[string(req.TargetLevel)]; ok {
		fmt.Fprintf(&b, "\n%s LEVEL REQUIREMENTS: %s\n", req.TargetLevel, desc)
	}

	fmt.Fprintf(&b, "\nRULES:\n")
	fmt.Fprintf(&b, "1. Use vocabulary and grammar appropriate for %s level only.\n", req.TargetLevel)
	fmt.Fprintf(&b, "2. Preserve the original meaning and all key information.\n")
	fmt.Fprintf(&b, "3. Return only the adapted text, no commentary.\n")
	fmt.Fprintf(&b, "\nORIGINAL TEXT:\n%s\n", req.Text)

	return b.String()
}
