// Package breach checks passwords against the Have I Been Pwned database
// using the k-anonymity range API: only the first five characters of the
// password's SHA-1 digest ever leave the process.
package breach

import (
	"bufio"
	"context"
	"crypto/sha1" //nolint:gosec // The HIBP range API is keyed on SHA-1
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultAPIURL is the HIBP range endpoint.
	DefaultAPIURL = "https://api.pwnedpasswords.com/range"

	userAgent      = "attacksim-educational-tool/1.0"
	requestTimeout = 10 * time.Second
	prefixLength   = 5
)

// RiskLevel buckets a breach count into a severity rating.
type RiskLevel string

const (
	RiskSafe     RiskLevel = "safe"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Breach count thresholds for the risk buckets.
const (
	lowThreshold      = 100
	mediumThreshold   = 1000
	criticalThreshold = 10000
)

// Result is the outcome of a breach check.
type Result struct {
	Breached bool      `json:"breached"`
	Count    int       `json:"count"`
	Risk     RiskLevel `json:"risk"`
}

// Checker queries the HIBP range API.
type Checker struct {
	client *http.Client
	apiURL string
}

// Option configures a Checker.
type Option func(*Checker)

// WithHTTPClient overrides the HTTP client, typically for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Checker) { c.client = client }
}

// WithAPIURL overrides the range API base URL.
func WithAPIURL(apiURL string) Option {
	return func(c *Checker) { c.apiURL = strings.TrimRight(apiURL, "/") }
}

// NewChecker creates a Checker with a timeout-bounded default client.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client: &http.Client{Timeout: requestTimeout},
		apiURL: DefaultAPIURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Check reports whether password appears in known breach corpora and how many
// times. The full password hash is never transmitted.
func (c *Checker) Check(ctx context.Context, password string) (Result, error) {
	sum := sha1.Sum([]byte(password)) //nolint:gosec // The HIBP range API is keyed on SHA-1
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	prefix := digest[:prefixLength]
	suffix := digest[prefixLength:]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/"+prefix, nil)
	if err != nil {
		return Result{}, fmt.Errorf("couldn't build breach request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("couldn't query breach API: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("breach API returned status %d", resp.StatusCode)
	}

	count, err := findSuffix(resp, suffix)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Breached: count > 0,
		Count:    count,
		Risk:     RiskFor(count),
	}, nil
}

// findSuffix scans the range response for the digest suffix. Each line is
// "SUFFIX:COUNT"; malformed lines are skipped.
func findSuffix(resp *http.Response, suffix string) (int, error) {
	scanner := bufio.NewScanner(resp.Body)

	for scanner.Scan() {
		line := scanner.Text()

		candidate, countStr, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		if !strings.EqualFold(strings.TrimSpace(candidate), suffix) {
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			continue
		}

		return count, nil
	}

	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("couldn't read breach response: %w", err)
	}

	return 0, nil
}

// RiskFor buckets a breach count into a RiskLevel.
func RiskFor(count int) RiskLevel {
	switch {
	case count == 0:
		return RiskSafe
	case count < lowThreshold:
		return RiskLow
	case count < mediumThreshold:
		return RiskMedium
	case count < criticalThreshold:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// Recommendation returns the advice matching a result's severity.
func Recommendation(result Result) string {
	switch result.Risk {
	case RiskSafe:
		return "This password appears safe, but still use a unique password for each account."
	case RiskLow:
		return "This password has appeared in a few breaches. Consider changing it."
	case RiskMedium:
		return "This password has been compromised multiple times. You should change it immediately."
	case RiskHigh:
		return "This password is highly compromised. Change it immediately and never reuse it."
	default:
		return "This password is massively compromised. Change it immediately on all accounts."
	}
}
