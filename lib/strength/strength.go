// Package strength scores password strength on a 0-100 scale using length,
// character variety, and common-pattern penalties. The score is heuristic and
// meant for quick feedback alongside attack estimates, not as a substitute for
// a full entropy model.
package strength

import "regexp"

// Level buckets the numeric score into a coarse rating.
type Level string

const (
	LevelVeryWeak   Level = "Very Weak"
	LevelWeak       Level = "Weak"
	LevelModerate   Level = "Moderate"
	LevelStrong     Level = "Strong"
	LevelVeryStrong Level = "Very Strong"
)

// Score thresholds for the level buckets.
const (
	veryStrongThreshold = 80
	strongThreshold     = 60
	moderateThreshold   = 40
	weakThreshold       = 20
)

// Length tiers and their point awards.
const (
	longLength   = 12
	goodLength   = 8
	shortLength  = 6
	longPoints   = 25
	goodPoints   = 15
	shortPoints  = 10
	minimumScore = 5

	classPoints   = 15
	symbolPoints  = 20
	penaltyPoints = 10

	entropyBitsPerClass = 2.5
	maxScore            = 100
)

var (
	lowerPattern  = regexp.MustCompile(`[a-z]`)
	upperPattern  = regexp.MustCompile(`[A-Z]`)
	digitPattern  = regexp.MustCompile(`\d`)
	symbolPattern = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?` + "`~" + `]`)

	seqDigitsPattern  = regexp.MustCompile(`(012|123|234|345|456|567|678|789|890)`)
	seqLettersPattern = regexp.MustCompile(`(?i)(abc|bcd|cde|def|efg|fgh|ghi|hij|ijk|jkl|klm|lmn|mno|nop|pqr|qrs|rst|stu|tuv|uvw|vwx|wxy|xyz)`)
)

// Analysis is the full breakdown produced by Analyze.
type Analysis struct {
	Score          int      `json:"score"`
	Level          Level    `json:"level"`
	Length         int      `json:"length"`
	HasLowercase   bool     `json:"has_lowercase"`
	HasUppercase   bool     `json:"has_uppercase"`
	HasDigits      bool     `json:"has_digits"`
	HasSymbols     bool     `json:"has_symbols"`
	CommonPatterns []string `json:"common_patterns,omitempty"`
	EntropyBits    float64  `json:"entropy_bits"`
}

// Analyze scores a password and reports its composition and any common
// weakness patterns found.
func Analyze(password string) Analysis {
	a := Analysis{Length: len(password)}

	score := lengthPoints(len(password))

	if lowerPattern.MatchString(password) {
		a.HasLowercase = true
		score += classPoints
	}

	if upperPattern.MatchString(password) {
		a.HasUppercase = true
		score += classPoints
	}

	if digitPattern.MatchString(password) {
		a.HasDigits = true
		score += classPoints
	}

	if symbolPattern.MatchString(password) {
		a.HasSymbols = true
		score += symbolPoints
	}

	if hasRepeatRun(password) {
		a.CommonPatterns = append(a.CommonPatterns, "repeated characters")
		score -= penaltyPoints
	}

	if seqDigitsPattern.MatchString(password) {
		a.CommonPatterns = append(a.CommonPatterns, "sequential numbers")
		score -= penaltyPoints
	}

	if seqLettersPattern.MatchString(password) {
		a.CommonPatterns = append(a.CommonPatterns, "sequential letters")
		score -= penaltyPoints
	}

	variety := 0
	for _, present := range []bool{a.HasLowercase, a.HasUppercase, a.HasDigits, a.HasSymbols} {
		if present {
			variety++
		}
	}

	a.EntropyBits = float64(len(password)) * float64(variety) * entropyBitsPerClass

	if score < 0 {
		score = 0
	}

	if score > maxScore {
		score = maxScore
	}

	a.Score = score
	a.Level = levelFor(score)

	return a
}

// hasRepeatRun reports whether s contains three or more identical characters
// in a row. RE2 has no backreferences, so this is a plain scan.
func hasRepeatRun(s string) bool {
	run := 1

	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1] {
			run = 1

			continue
		}

		run++
		if run >= 3 {
			return true
		}
	}

	return false
}

func lengthPoints(length int) int {
	switch {
	case length >= longLength:
		return longPoints
	case length >= goodLength:
		return goodPoints
	case length >= shortLength:
		return shortPoints
	default:
		return minimumScore
	}
}

func levelFor(score int) Level {
	switch {
	case score >= veryStrongThreshold:
		return LevelVeryStrong
	case score >= strongThreshold:
		return LevelStrong
	case score >= moderateThreshold:
		return LevelModerate
	case score >= weakThreshold:
		return LevelWeak
	default:
		return LevelVeryWeak
	}
}
