// Package gemini implements the text rewriting boundary using Google's
// Gemini API. It is the only package that talks to the LLM; the rest of
// the engine treats rewritten text as an opaque string.
package gemini
