// Package enginestate provides common state and configuration structures used across the attack
// simulation engine.
package enginestate

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// State represents the configuration and runtime state of the engine.
var State = engineState{} //nolint:gochecknoglobals // Global engine state

// engineState holds the configuration settings of the attack simulation engine.
// All fields are set once during startup (config load) before any attack workers are
// started, so they are safe to read from any goroutine.
type engineState struct {
	DataPath                 string        // DataPath is the directory holding downloaded wordlists and other engine data.
	WordlistPath             string        // WordlistPath is the default wordlist used by dictionary attacks.
	AssumedAttemptsPerSecond float64       // AssumedAttemptsPerSecond is the rate used for pre-attack time estimates.
	ProgressInterval         time.Duration // ProgressInterval is the minimum wall-clock spacing between progress events.
	ProgressEveryAttempts    uint64        // ProgressEveryAttempts is the attempt-count spacing between progress events.
	RandomAttemptCap         uint64        // RandomAttemptCap bounds random brute-force attacks that carry no explicit cap.
	RecentWindow             int           // RecentWindow is how many recently tried candidates each attack retains.
	Debug                    bool          // Debug specifies whether the engine is running in debug mode.
	ExtraDebugging           bool          // ExtraDebugging enables per-event debug logging on the hot path.
}

// Logger is a shared logging instance configured to output logs at InfoLevel with timestamps to os.Stdout.
var Logger = log.NewWithOptions(os.Stdout, log.Options{ //nolint:gochecknoglobals // Global logger instance
	Level:           log.InfoLevel,
	ReportTimestamp: true,
})

// ErrorLogger is a logger instance for logging critical errors with detailed error information.
var ErrorLogger = Logger.With() //nolint:gochecknoglobals // Global error logger instance
