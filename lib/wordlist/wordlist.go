// Package wordlist provides wordlist loading and deterministic candidate
// expansion for dictionary attacks. Expansion order is part of the engine
// contract: for each base word the bare word comes first, then case variants,
// then leet substitution variants, then pattern-augmented forms of all of the
// above. The first match found wins, so this ordering governs tie-breaking and
// must stay reproducible.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"
)

const (
	scannerInitialBuffer = 64 * 1024
	scannerMaxBuffer     = 1024 * 1024
)

// leetSubstitutions is the fixed character substitution table applied by
// LeetVariants. The slice (not a map) keeps iteration order deterministic.
var leetSubstitutions = []struct{ from, to rune }{ //nolint:gochecknoglobals // Fixed substitution table
	{'a', '@'},
	{'s', '$'},
	{'o', '0'},
	{'i', '1'},
	{'e', '3'},
}

// patternSuffixes and patternPrefixes are the fixed augmentation lists applied
// by PatternVariants. The exact contents are a heuristic; only their order and
// determinism are contractual.
var patternSuffixes = []string{ //nolint:gochecknoglobals // Fixed augmentation table
	"123", "1", "12", "1234", "!", "!@#", "@123",
	"2023", "2024", "2025", "007", "69",
}

var patternPrefixes = []string{"123", "!", "@"} //nolint:gochecknoglobals // Fixed augmentation table

// Load reads a wordlist file into an ordered, deduplicated slice of trimmed
// words. Empty lines are skipped and insertion order is preserved, so the line
// order of the file governs candidate order.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open wordlist %q: %w", path, err)
	}

	defer func() {
		_ = file.Close()
	}()

	words := make([]string, 0, 256)
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, scannerInitialBuffer), scannerMaxBuffer)

	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}

		if _, ok := seen[word]; ok {
			continue
		}

		seen[word] = struct{}{}
		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("couldn't read wordlist %q: %w", path, err)
	}

	return words, nil
}

// CaseVariants returns the lowercase, uppercase, and title-case forms of word,
// in that order, excluding any form equal to the word itself.
func CaseVariants(word string) []string {
	variants := make([]string, 0, 3)

	for _, v := range []string{strings.ToLower(word), strings.ToUpper(word), titleCase(word)} {
		if v != word {
			variants = append(variants, v)
		}
	}

	return variants
}

// LeetVariants returns substitution variants of word: one variant per eligible
// character (all occurrences of that character substituted, one substitution
// active at a time), followed by the fully substituted form. The full power set
// is deliberately not generated to keep the space tractable.
func LeetVariants(word string) []string {
	lower := strings.ToLower(word)
	variants := make([]string, 0, len(leetSubstitutions)+1)

	for _, sub := range leetSubstitutions {
		if strings.ContainsRune(lower, sub.from) {
			variants = append(variants, strings.ReplaceAll(lower, string(sub.from), string(sub.to)))
		}
	}

	if len(variants) > 1 {
		all := lower
		for _, sub := range leetSubstitutions {
			all = strings.ReplaceAll(all, string(sub.from), string(sub.to))
		}

		variants = append(variants, all)
	}

	return variants
}

// PatternVariants returns word augmented with common numeric/symbol suffixes
// and prefixes, suffixes first.
func PatternVariants(word string) []string {
	variants := make([]string, 0, len(patternSuffixes)+len(patternPrefixes))

	for _, suffix := range patternSuffixes {
		variants = append(variants, word+suffix)
	}

	for _, prefix := range patternPrefixes {
		variants = append(variants, prefix+word)
	}

	return variants
}

// Expand produces the full deterministic candidate expansion of a single base
// word: the bare word, then case variants, then leet variants, then pattern
// augmentations of all of the above. Duplicates within one word's expansion are
// dropped, first occurrence wins.
func Expand(word string, useVariations, usePatterns bool) []string {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil
	}

	seen := make(map[string]struct{})
	out := make([]string, 0, 8)

	add := func(candidate string) {
		if _, ok := seen[candidate]; ok {
			return
		}

		seen[candidate] = struct{}{}
		out = append(out, candidate)
	}

	add(word)

	if useVariations {
		for _, v := range CaseVariants(word) {
			add(v)
		}

		for _, v := range LeetVariants(word) {
			add(v)
		}
	}

	if usePatterns {
		base := make([]string, len(out))
		copy(base, out)

		for _, b := range base {
			for _, v := range PatternVariants(b) {
				add(v)
			}
		}
	}

	return out
}

// titleCase uppercases the first rune of word and lowercases the rest.
func titleCase(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return word
	}

	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
