package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeScoring(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		wantScore int
		wantLevel Level
	}{
		{name: "empty", password: "", wantScore: 5, wantLevel: LevelVeryWeak},
		{name: "short lowercase sequence", password: "abc", wantScore: 10, wantLevel: LevelVeryWeak},
		{name: "lowercase plus sequential digits", password: "password123", wantScore: 35, wantLevel: LevelWeak},
		{name: "repeated characters", password: "aaa111", wantScore: 30, wantLevel: LevelWeak},
		{name: "mixed classes", password: "Tr0ub4dor&3", wantScore: 80, wantLevel: LevelVeryStrong},
		{name: "long mixed without patterns", password: "Kx9#mQ2$vL8!pW4z", wantScore: 90, wantLevel: LevelVeryStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.password)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantLevel, got.Level)
		})
	}
}

func TestAnalyzeComposition(t *testing.T) {
	got := Analyze("aB3!")

	assert.True(t, got.HasLowercase)
	assert.True(t, got.HasUppercase)
	assert.True(t, got.HasDigits)
	assert.True(t, got.HasSymbols)
	assert.InDelta(t, 40.0, got.EntropyBits, 1e-9)
}

func TestAnalyzePatternDetection(t *testing.T) {
	assert.Contains(t, Analyze("helloooo").CommonPatterns, "repeated characters")
	assert.Contains(t, Analyze("pass789").CommonPatterns, "sequential numbers")
	assert.Contains(t, Analyze("XYZ42").CommonPatterns, "sequential letters")
	assert.Empty(t, Analyze("kq9w").CommonPatterns)
}

func TestRepeatedCharacterRuns(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "run of three", password: "aaa", want: true},
		{name: "run of three mid-word", password: "pabbbq", want: true},
		{name: "pairs only", password: "aabbcc", want: false},
		{name: "separated repeats", password: "abababa", want: false},
		{name: "run at end", password: "pass111", want: true},
		{name: "empty", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.password)
			if tt.want {
				assert.Contains(t, got.CommonPatterns, "repeated characters")
			} else {
				assert.NotContains(t, got.CommonPatterns, "repeated characters")
			}
		})
	}
}

func TestAnalyzeScoreClamped(t *testing.T) {
	got := Analyze("aaa123abc")
	assert.GreaterOrEqual(t, got.Score, 0)
	assert.LessOrEqual(t, got.Score, 100)
}
