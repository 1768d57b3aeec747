// Package candidates provides the candidate password generators used by the
// attack simulation engine. A Source produces a lazy, ordered sequence of
// candidate strings; attack workers pull candidates one at a time so that
// pause and resume never skip or repeat a position in the sequence.
package candidates

import (
	"errors"
	"math/big"
)

// Source is the candidate generation contract. Next returns the next candidate
// in the sequence and false once the sequence is exhausted. Sources are not
// rewindable: restarting an attack means constructing a new Source.
//
// Sources are pulled from a single goroutine and need no internal locking.
type Source interface {
	Next() (string, bool)
}

// SpaceSizer is implemented by sources whose total search space is known up
// front, enabling percent-complete reporting and time estimates.
type SpaceSizer interface {
	SpaceSize() *big.Int
}

// ErrEmptyCharset is returned when a brute-force source is constructed with no
// usable characters.
var ErrEmptyCharset = errors.New("empty charset")
