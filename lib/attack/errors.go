package attack

import "errors"

var (
	// ErrInvalidRequest is returned when an attack request fails validation
	// before any work is scheduled.
	ErrInvalidRequest = errors.New("invalid attack request")

	// ErrUnknownAttack is returned when the given attack ID is not registered.
	// Retired attacks (terminal and reaped) also report this.
	ErrUnknownAttack = errors.New("unknown attack")

	// ErrDictionaryUnavailable is returned when no wordlist could be resolved
	// or loaded for a dictionary attack.
	ErrDictionaryUnavailable = errors.New("dictionary unavailable")

	// ErrAttackAlreadyTerminal is returned for lifecycle operations on an
	// attack that already reached a terminal state but has not yet retired.
	ErrAttackAlreadyTerminal = errors.New("attack already terminal")
)
