package attack

import (
	"fmt"

	"github.com/cracklab-io/attacksim/lib/hashes"
)

// Mode selects the candidate generation strategy of an attack.
type Mode string

// Supported attack modes.
const (
	ModeBruteForce Mode = "brute-force"
	ModeDictionary Mode = "dictionary"
)

// Method selects how a brute-force attack walks the search space.
type Method string

// Brute-force methods.
const (
	MethodSequential Method = "sequential"
	MethodRandom     Method = "random"
)

// Request describes a single attack to start. Exactly one of the target fields
// is used per mode: brute-force demonstrations take the plaintext and hash it
// themselves, dictionary attacks take the digest to crack.
type Request struct {
	Mode Mode

	// TargetPlaintext is the password a brute-force run derives its charset
	// and target digest from.
	TargetPlaintext string

	// TargetHash is the hex digest a dictionary run tries to invert.
	TargetHash string

	// Algorithm is optional for dictionary runs; when empty it is detected
	// from the digest length. Brute-force runs default to MD5.
	Algorithm hashes.Algorithm

	// Dictionary inputs, in priority order: inline Words, then WordlistPath
	// (a local file or a remote URL), then the engine's default wordlist.
	Words        []string
	WordlistPath string

	UseVariations bool
	UsePatterns   bool

	// Brute-force inputs. MaxLength and RandomLength default to the plaintext
	// length; AttemptCap defaults to the engine-wide random cap. Seed is used
	// only when nonzero, for reproducible random runs.
	Method       Method
	MaxLength    int
	RandomLength int
	AttemptCap   uint64
	Seed         int64
}

// normalize fills mode-appropriate defaults and rejects malformed requests.
func (r *Request) normalize() error {
	switch r.Mode {
	case ModeBruteForce:
		return r.normalizeBruteForce()
	case ModeDictionary:
		return r.normalizeDictionary()
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidRequest, r.Mode)
	}
}

func (r *Request) normalizeBruteForce() error {
	if r.TargetPlaintext == "" {
		return fmt.Errorf("%w: brute-force requires a target plaintext", ErrInvalidRequest)
	}

	if r.Algorithm == "" {
		r.Algorithm = hashes.MD5
	}

	if !r.Algorithm.Valid() {
		return fmt.Errorf("%w: %q", hashes.ErrUnknownAlgorithm, r.Algorithm)
	}

	if r.Method == "" {
		r.Method = MethodSequential
	}

	if r.Method != MethodSequential && r.Method != MethodRandom {
		return fmt.Errorf("%w: unknown method %q", ErrInvalidRequest, r.Method)
	}

	if r.MaxLength == 0 {
		r.MaxLength = len(r.TargetPlaintext)
	}

	if r.RandomLength == 0 {
		r.RandomLength = len(r.TargetPlaintext)
	}

	return nil
}

func (r *Request) normalizeDictionary() error {
	if r.TargetHash == "" {
		return fmt.Errorf("%w: dictionary requires a target hash", ErrInvalidRequest)
	}

	if !hashes.ValidHex(r.TargetHash) {
		return fmt.Errorf("%w: target hash is not hex", ErrInvalidRequest)
	}

	if r.Algorithm != "" {
		if !r.Algorithm.Valid() {
			return fmt.Errorf("%w: %q", hashes.ErrUnknownAlgorithm, r.Algorithm)
		}

		if len(r.TargetHash) != r.Algorithm.HexLength() {
			return fmt.Errorf("%w: digest length %d does not match %s",
				ErrInvalidRequest, len(r.TargetHash), r.Algorithm)
		}

		return nil
	}

	algo, err := hashes.DetectAlgorithm(r.TargetHash)
	if err != nil {
		return err
	}

	r.Algorithm = algo

	return nil
}
