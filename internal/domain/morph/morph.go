// Package morph derives English surface forms from canonical vocabulary
// entries. Variants are computed on read from the ledger's canonical words
// so a single status update covers all inflected forms; nothing here is
// ever persisted.
package morph

import "strings"

// InfinitivePrefix marks dictionary-style verb entries ("to speak").
const InfinitivePrefix = "to "

// Variants returns word plus its derived -ing, -ed/-d and plural/3rd-person
// forms, in deterministic order without duplicates. Entries written with the
// "to " infinitive prefix also contribute the bare verb and its forms.
//
// Words shorter than two characters are returned as-is. The function never
// fails; any internal fault degrades to returning just the input word.
func Variants(word string) (variants []string) {
	word = strings.ToLower(strings.TrimSpace(word))

	defer func() {
		if recover() != nil {
			variants = []string{word}
		}
	}()

	if len(word) < 2 {
		return []string{word}
	}

	seen := make(map[string]struct{})
	add := func(forms []string) {
		for _, f := range forms {
			if _, ok := seen[f]; !ok {
				seen[f] = struct{}{}
				variants = append(variants, f)
			}
		}
	}

	add(inflect(word))

	if strings.HasPrefix(word, InfinitivePrefix) && len(word) > len(InfinitivePrefix) {
		add(inflect(word[len(InfinitivePrefix):]))
	}

	return variants
}

// Expand computes the union of Variants over all words.
func Expand(words []string) map[string]struct{} {
	expanded := make(map[string]struct{}, len(words)*4)
	for _, w := range words {
		for _, v := range Variants(w) {
			expanded[v] = struct{}{}
		}
	}
	return expanded
}

// inflect generates the base forms for a single word: the word itself,
// -ing (dropping a trailing "e"), -ed (a bare "d" after "e") and the
// plural/3rd-person form (-es after sibilants and "o", -ies for
// consonant+y, -s otherwise).
func inflect(word string) []string {
	if len(word) < 2 {
		return []string{word}
	}

	forms := make([]string, 0, 4)
	forms = append(forms, word)

	if strings.HasSuffix(word, "e") && len(word) > 2 {
		forms = append(forms, word[:len(word)-1]+"ing", word+"d")
	} else {
		forms = append(forms, word+"ing", word+"ed")
	}

	switch {
	case hasAnySuffix(word, "s", "sh", "ch", "x", "z", "o"):
		forms = append(forms, word+"es")
	case strings.HasSuffix(word, "y") && len(word) > 2 && !isVowel(word[len(word)-2]):
		forms = append(forms, word[:len(word)-1]+"ies")
	default:
		forms = append(forms, word+"s")
	}

	return forms
}

// Roots returns the candidate base forms of an inflected token, most likely
// first: the token with a trailing "ing"/"ed"/"ies"/"es" stripped, with "y"
// restored for "ies" and a dropped "e" re-appended for "ing"/"ed"/"es".
// Callers check each candidate (and its "to "-prefixed form) against the
// known set. The token itself is not included.
func Roots(token string) []string {
	token = strings.ToLower(token)

	var roots []string
	for _, suffix := range []string{"ing", "ed", "ies", "es"} {
		if !strings.HasSuffix(token, suffix) || len(token) <= len(suffix) {
			continue
		}
		root := token[:len(token)-len(suffix)]
		switch suffix {
		case "ies":
			roots = append(roots, root+"y")
		case "es":
			roots = append(roots, root, root+"e")
		default: // ing, ed
			roots = append(roots, root, root+"e")
		}
	}
	return roots
}

func hasAnySuffix(word string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(word, s) {
			return true
		}
	}
	return false
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
