// Package stats provides search-space arithmetic, duration estimation, and
// attempt-rate tracking for attack runs. Space sizes use big integers because
// even modest charset/length combinations overflow uint64.
package stats

import (
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerYear   = 31536000
)

// SpaceSize returns charsetSize^length, the number of fixed-length candidates
// over a charset.
func SpaceSize(charsetSize, length int) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(charsetSize)), big.NewInt(int64(length)), nil)
}

// SequentialSpaceSize returns the sum of charsetSize^L for L in 1..maxLen, the
// total candidates a variable-length sequential enumeration produces.
func SequentialSpaceSize(charsetSize, maxLen int) *big.Int {
	total := new(big.Int)

	for length := 1; length <= maxLen; length++ {
		total.Add(total, SpaceSize(charsetSize, length))
	}

	return total
}

// EstimateSeconds converts a search-space size into an expected worst-case
// duration at the given attempt rate. Big floats keep the estimate meaningful
// for spaces far beyond what any run could finish.
func EstimateSeconds(space *big.Int, attemptsPerSecond uint64) *big.Float {
	if attemptsPerSecond == 0 {
		return new(big.Float)
	}

	seconds := new(big.Float).SetInt(space)

	return seconds.Quo(seconds, new(big.Float).SetUint64(attemptsPerSecond))
}

// FormatSeconds renders an estimated duration at a human scale, picking the
// largest unit that keeps the number readable.
func FormatSeconds(seconds *big.Float) string {
	value, _ := seconds.Float64()

	switch {
	case value < secondsPerMinute:
		return fmt.Sprintf("%.2f seconds", value)
	case value < secondsPerHour:
		return fmt.Sprintf("%.2f minutes", value/secondsPerMinute)
	case value < secondsPerDay:
		return fmt.Sprintf("%.2f hours", value/secondsPerHour)
	case value < secondsPerYear:
		return fmt.Sprintf("%.2f days", value/secondsPerDay)
	default:
		years := new(big.Float).Quo(seconds, big.NewFloat(secondsPerYear))
		if y, _ := years.Float64(); y < 1e15 {
			return fmt.Sprintf("%s years", humanize.CommafWithDigits(y, 2))
		}

		return fmt.Sprintf("%s years", years.Text('e', 2))
	}
}

// Percent returns attempts as a percentage of the search space, or -1 when the
// space is unknown or empty.
func Percent(attempts uint64, space *big.Int) float64 {
	if space == nil || space.Sign() <= 0 {
		return -1
	}

	ratio := new(big.Float).Quo(
		new(big.Float).SetUint64(attempts),
		new(big.Float).SetInt(space),
	)

	percent, _ := new(big.Float).Mul(ratio, big.NewFloat(100)).Float64()

	return percent
}

// Tracker accumulates attempt counts and derives elapsed time and throughput
// for a single attack run. It is safe for concurrent use: the worker increments
// while observers read snapshots.
type Tracker struct {
	mu       sync.Mutex
	started  time.Time
	attempts uint64
}

// NewTracker returns a Tracker whose clock starts on the first Start call.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Start records the beginning of the run. Calling Start again resets nothing;
// only the first call sets the clock.
func (tr *Tracker) Start() {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if tr.started.IsZero() {
		tr.started = time.Now()
	}
}

// Increment adds one attempt and returns the new total.
func (tr *Tracker) Increment() uint64 {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	tr.attempts++

	return tr.attempts
}

// Attempts returns the current attempt count.
func (tr *Tracker) Attempts() uint64 {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	return tr.attempts
}

// Elapsed returns the wall time since Start, or zero if the run never started.
func (tr *Tracker) Elapsed() time.Duration {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if tr.started.IsZero() {
		return 0
	}

	return time.Since(tr.started)
}

// Throughput returns attempts per second over the run so far.
func (tr *Tracker) Throughput() float64 {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if tr.started.IsZero() {
		return 0
	}

	elapsed := time.Since(tr.started).Seconds()
	if elapsed <= 0 {
		return 0
	}

	return float64(tr.attempts) / elapsed
}
