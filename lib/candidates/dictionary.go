package candidates

import (
	"math/big"

	"github.com/cracklab-io/attacksim/lib/wordlist"
)

// DictionaryOptions selects which expansions a dictionary source applies to
// each base word.
type DictionaryOptions struct {
	UseVariations bool // Case and leet substitution variants.
	UsePatterns   bool // Numeric/symbol suffix and prefix augmentation.
}

// Dictionary walks an ordered wordlist, expanding one base word at a time.
// Each word's full expansion is emitted before the next word is touched, so
// the position in the base list plus the position in the current expansion
// fully determine the sequence and pausing between pulls loses nothing.
type Dictionary struct {
	words   []string
	opts    DictionaryOptions
	wordIdx int
	pending []string
	pos     int
}

// NewDictionary creates a dictionary source over the given base words. The
// words are expected to already be trimmed and deduplicated (see
// wordlist.Load).
func NewDictionary(words []string, opts DictionaryOptions) *Dictionary {
	return &Dictionary{words: words, opts: opts}
}

// Next returns the next candidate, expanding base words lazily.
func (d *Dictionary) Next() (string, bool) {
	for d.pos >= len(d.pending) {
		if d.wordIdx >= len(d.words) {
			return "", false
		}

		d.pending = wordlist.Expand(d.words[d.wordIdx], d.opts.UseVariations, d.opts.UsePatterns)
		d.pos = 0
		d.wordIdx++
	}

	candidate := d.pending[d.pos]
	d.pos++

	return candidate, true
}

// SpaceSize returns the number of base words when no expansion is enabled.
// With expansions the total is only known by running the expansion, so nil is
// returned and percent-complete reporting is skipped.
func (d *Dictionary) SpaceSize() *big.Int {
	if d.opts.UseVariations || d.opts.UsePatterns {
		return nil
	}

	return big.NewInt(int64(len(d.words)))
}
