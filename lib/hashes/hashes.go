// Package hashes implements the hash oracle for the attack simulation engine.
// It computes and matches hex digests for a closed set of legacy algorithms and
// detects the algorithm of a digest from its length.
//
// No salting or key stretching is modeled. The engine deliberately mirrors
// unsalted single-round hashing because that is the weakness it exists to
// demonstrate.
package hashes

import (
	"crypto/md5"  //nolint:gosec // Weak hash is the subject of the simulation
	"crypto/sha1" //nolint:gosec // Weak hash is the subject of the simulation
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Algorithm identifies one of the supported digest algorithms.
type Algorithm string

// Supported algorithms.
const (
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
	SHA512 Algorithm = "sha512"
)

// Hex digest lengths for the supported algorithms. Each length is unique, so a
// digest's length fully determines its algorithm.
const (
	md5HexLen    = 32
	sha1HexLen   = 40
	sha256HexLen = 64
	sha512HexLen = 128
)

// ErrUnknownAlgorithm is returned when a digest length matches none of the
// supported algorithms, or when an algorithm name is not recognized.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	switch a {
	case MD5, SHA1, SHA256, SHA512:
		return true
	default:
		return false
	}
}

// HexLength returns the expected hex digest length for the algorithm, or 0 if
// the algorithm is not supported.
func (a Algorithm) HexLength() int {
	switch a {
	case MD5:
		return md5HexLen
	case SHA1:
		return sha1HexLen
	case SHA256:
		return sha256HexLen
	case SHA512:
		return sha512HexLen
	default:
		return 0
	}
}

// ParseAlgorithm maps a case-insensitive algorithm name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	algo := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if !algo.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return algo, nil
}

// Digest computes the lowercase hex digest of plaintext under the given algorithm.
// The computation is deterministic: the same plaintext and algorithm always yield
// the same digest.
func Digest(plaintext string, algo Algorithm) (string, error) {
	data := []byte(plaintext)

	switch algo {
	case MD5:
		sum := md5.Sum(data) //nolint:gosec // Weak hash is the subject of the simulation
		return hex.EncodeToString(sum[:]), nil
	case SHA1:
		sum := sha1.Sum(data) //nolint:gosec // Weak hash is the subject of the simulation
		return hex.EncodeToString(sum[:]), nil
	case SHA256:
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:]), nil
	case SHA512:
		sum := sha512.Sum512(data)
		return hex.EncodeToString(sum[:]), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

// DetectAlgorithm maps a hex digest to its algorithm by length.
// The four supported algorithms have pairwise distinct digest lengths
// (32/40/64/128 hex chars), so detection is unambiguous.
func DetectAlgorithm(hexDigest string) (Algorithm, error) {
	switch len(hexDigest) {
	case md5HexLen:
		return MD5, nil
	case sha1HexLen:
		return SHA1, nil
	case sha256HexLen:
		return SHA256, nil
	case sha512HexLen:
		return SHA512, nil
	default:
		return "", fmt.Errorf("%w: digest length %d", ErrUnknownAlgorithm, len(hexDigest))
	}
}

// ValidHex reports whether s consists solely of hex digits.
func ValidHex(s string) bool {
	_, err := hex.DecodeString(strings.ToLower(s))

	return err == nil
}

// Matches reports whether the digest of candidate under algo equals targetDigest.
// The comparison is case-insensitive on the hex encoding.
func Matches(candidate, targetDigest string, algo Algorithm) bool {
	digest, err := Digest(candidate, algo)
	if err != nil {
		return false
	}

	return strings.EqualFold(digest, targetDigest)
}
