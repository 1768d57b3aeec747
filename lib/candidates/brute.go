package candidates

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"time"
)

// Character classes considered possible in brute-force candidates.
const (
	CharsetLower   = "abcdefghijklmnopqrstuvwxyz"
	CharsetUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetDigits  = "0123456789"
	CharsetSymbols = "!@#$%^&*()-_=+[]{}|;:'\",.<>?/`~"

	// CharsetAll is the full character set assumed when no target is available
	// to derive a narrower one.
	CharsetAll = CharsetLower + CharsetUpper + CharsetDigits + CharsetSymbols
)

// CharsetFor derives the brute-force charset from the character classes
// observed in the target password. Characters outside all four classes
// contribute nothing; a target made solely of such characters yields an empty
// charset and can never be matched.
func CharsetFor(target string) string {
	var sb strings.Builder

	for _, class := range []string{CharsetLower, CharsetUpper, CharsetDigits, CharsetSymbols} {
		if strings.ContainsAny(target, class) {
			sb.WriteString(class)
		}
	}

	return sb.String()
}

// Sequential enumerates every string over its charset in lexicographic order
// of increasing length, from length 1 up to maxLen. The enumeration treats the
// charset as a base-N numeral system, so coverage is complete and
// duplicate-free: any target drawn from the charset with length <= maxLen is
// guaranteed to be produced exactly once.
type Sequential struct {
	charset []byte
	maxLen  int
	length  int
	indices []int
	done    bool
}

// NewSequential creates a sequential brute-force source over charset for
// candidate lengths 1 through maxLen.
func NewSequential(charset string, maxLen int) (*Sequential, error) {
	if charset == "" {
		return nil, ErrEmptyCharset
	}

	if maxLen < 1 {
		return nil, fmt.Errorf("invalid max length %d", maxLen)
	}

	return &Sequential{
		charset: []byte(charset),
		maxLen:  maxLen,
		length:  1,
		indices: make([]int, 1),
	}, nil
}

// Next returns the next candidate in lexicographic order.
func (s *Sequential) Next() (string, bool) {
	if s.done {
		return "", false
	}

	buf := make([]byte, s.length)
	for i, idx := range s.indices {
		buf[i] = s.charset[idx]
	}

	s.advance()

	return string(buf), true
}

// advance increments the base-N odometer, growing the candidate length by one
// when the current length's space is exhausted.
func (s *Sequential) advance() {
	for pos := s.length - 1; pos >= 0; pos-- {
		s.indices[pos]++
		if s.indices[pos] < len(s.charset) {
			return
		}

		s.indices[pos] = 0
	}

	s.length++
	if s.length > s.maxLen {
		s.done = true

		return
	}

	s.indices = make([]int, s.length)
}

// SpaceSize returns the total number of candidates the source will produce:
// the sum of charset^L for L in 1..maxLen. Big-integer arithmetic keeps the
// result exact for realistic charsets and lengths.
func (s *Sequential) SpaceSize() *big.Int {
	total := new(big.Int)
	base := big.NewInt(int64(len(s.charset)))

	for length := 1; length <= s.maxLen; length++ {
		total.Add(total, new(big.Int).Exp(base, big.NewInt(int64(length)), nil))
	}

	return total
}

// Random draws independent uniform samples of a fixed length from its charset.
// The sequence is neither exhaustive nor duplicate-free; it exists to
// demonstrate the expected-case behavior of naive guessing. Because uniform
// sampling is not inherently bounded, the source carries a hard attempt cap
// and reports exhaustion once the cap is reached.
type Random struct {
	charset []byte
	length  int
	cap     uint64
	drawn   uint64
	rng     *rand.Rand
}

// NewRandom creates a random brute-force source producing samples of exactly
// length characters, bounded by cap draws.
func NewRandom(charset string, length int, cap uint64) (*Random, error) {
	return NewRandomSeeded(charset, length, cap, time.Now().UnixNano())
}

// NewRandomSeeded is NewRandom with an explicit seed for reproducible runs.
func NewRandomSeeded(charset string, length int, cap uint64, seed int64) (*Random, error) {
	if charset == "" {
		return nil, ErrEmptyCharset
	}

	if length < 1 {
		return nil, fmt.Errorf("invalid length %d", length)
	}

	if cap == 0 {
		return nil, fmt.Errorf("random source requires a nonzero attempt cap")
	}

	return &Random{
		charset: []byte(charset),
		length:  length,
		cap:     cap,
		rng:     rand.New(rand.NewSource(seed)), //nolint:gosec // Simulation does not need crypto randomness
	}, nil
}

// Next returns a fresh uniform sample, or false once the attempt cap is reached.
func (r *Random) Next() (string, bool) {
	if r.drawn >= r.cap {
		return "", false
	}

	r.drawn++

	buf := make([]byte, r.length)
	for i := range buf {
		buf[i] = r.charset[r.rng.Intn(len(r.charset))]
	}

	return string(buf), true
}

// SpaceSize returns the attempt cap. For a random source the cap, not the
// combinatorial space, bounds the run.
func (r *Random) SpaceSize() *big.Int {
	return new(big.Int).SetUint64(r.cap)
}
