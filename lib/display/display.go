// Package display provides output and logging functions for the attack
// simulation engine.
package display

import (
	"fmt"
	"math/big"

	"github.com/dustin/go-humanize"

	"github.com/cracklab-io/attacksim/enginestate"
	"github.com/cracklab-io/attacksim/lib/attack"
	"github.com/cracklab-io/attacksim/lib/breach"
	"github.com/cracklab-io/attacksim/lib/progress"
	"github.com/cracklab-io/attacksim/lib/stats"
	"github.com/cracklab-io/attacksim/lib/strength"
)

// Startup logs an informational message indicating the engine is starting.
func Startup() {
	enginestate.Logger.Info("Starting attack simulation engine")
}

// ShuttingDown logs an informational message indicating the engine shutdown.
func ShuttingDown() {
	enginestate.Logger.Info("Shutting down attack simulation engine")
}

// AttackStarting logs the parameters of a new attack together with its search
// space and the expected worst-case duration at the assumed hash rate.
func AttackStarting(ctrl *attack.Controller, attemptsPerSecond float64) {
	space := ctrl.SpaceSize()
	if space == nil {
		enginestate.Logger.Info("Attack starting", "attack_id", ctrl.ID(),
			"algorithm", ctrl.Algorithm(), "search_space", "unknown")

		return
	}

	estimate := stats.FormatSeconds(stats.EstimateSeconds(space, uint64(attemptsPerSecond)))

	enginestate.Logger.Info("Attack starting",
		"attack_id", ctrl.ID(),
		"algorithm", ctrl.Algorithm(),
		"search_space", humanizeSpace(space),
		"worst_case", estimate,
	)
}

// Progress logs a progress event at the info level.
func Progress(event attack.ProgressEvent) {
	fields := []any{
		"attack_id", event.AttackID,
		"attempts", humanize.Comma(int64(event.Attempts)), //nolint:gosec // Attempt counts stay far below int64 range
		"last_candidate", event.LastCandidate,
	}

	if event.Percent >= 0 {
		fields = append(fields, "percent", progress.CalculatePercentage(event.Percent, 100))
	}

	enginestate.Logger.Info("Progress update", fields...)
}

// Terminal logs the terminal event of an attack, including throughput and the
// resource snapshot taken at completion.
func Terminal(event attack.TerminalEvent) {
	fields := []any{
		"attack_id", event.AttackID,
		"attempts", humanize.Comma(int64(event.Attempts)), //nolint:gosec // Attempt counts stay far below int64 range
		"elapsed", event.Elapsed,
		"throughput", humanize.SI(event.Throughput, "H/s"),
		"cpu_percent", fmt.Sprintf("%.1f", event.Resources.CPUPercent),
		"memory_used_mb", event.Resources.MemoryUsedMB,
	}

	switch event.Outcome {
	case attack.OutcomeFound:
		enginestate.Logger.Info("Password found", append([]any{"password", event.Password}, fields...)...)
	case attack.OutcomeExhausted:
		enginestate.Logger.Info("Search space exhausted without a match", fields...)
	case attack.OutcomeStopped:
		if event.Err != "" {
			enginestate.ErrorLogger.Error("Attack stopped by failure", append(fields, "error", event.Err)...)

			return
		}

		enginestate.Logger.Info("Attack stopped", fields...)
	}
}

// StrengthAnalysis logs the strength breakdown of a password.
func StrengthAnalysis(analysis strength.Analysis) {
	enginestate.Logger.Info("Password strength",
		"score", fmt.Sprintf("%d/100", analysis.Score),
		"level", analysis.Level,
		"length", analysis.Length,
		"entropy_bits", fmt.Sprintf("%.1f", analysis.EntropyBits),
	)

	if len(analysis.CommonPatterns) > 0 {
		enginestate.Logger.Warn("Common patterns detected", "patterns", analysis.CommonPatterns)
	}
}

// BreachResult logs the outcome of a breach database check.
func BreachResult(result breach.Result) {
	if result.Breached {
		enginestate.Logger.Warn("Password found in known data breaches",
			"count", humanize.Comma(int64(result.Count)),
			"risk", result.Risk,
		)
	} else {
		enginestate.Logger.Info("Password not found in known data breaches", "risk", result.Risk)
	}

	enginestate.Logger.Info("Recommendation", "advice", breach.Recommendation(result))
}

// humanizeSpace renders a search-space size compactly, falling back to
// scientific notation for spaces beyond int64.
func humanizeSpace(space *big.Int) string {
	if space.IsInt64() {
		return humanize.Comma(space.Int64())
	}

	return new(big.Float).SetInt(space).Text('e', 3)
}
