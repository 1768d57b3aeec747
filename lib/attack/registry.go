package attack

import (
	"fmt"
	"sync"
	"time"

	"github.com/duke-git/lancet/v2/random"

	"github.com/cracklab-io/attacksim/enginestate"
	"github.com/cracklab-io/attacksim/lib/candidates"
	"github.com/cracklab-io/attacksim/lib/downloader"
	"github.com/cracklab-io/attacksim/lib/hashes"
	"github.com/cracklab-io/attacksim/lib/wordlist"
)

// Settings carries the engine configuration the registry hands to each
// controller. Taking a struct instead of reading global state keeps the
// registry testable with arbitrary knobs.
type Settings struct {
	ProgressInterval time.Duration
	ProgressEvery    uint64
	RandomAttemptCap uint64
	RecentWindow     int
	DefaultWordlist  string
	DataDir          string
}

// Fallback knobs applied when Settings leaves them zero.
const (
	defaultProgressEvery    = 1000
	defaultProgressInterval = time.Second
	defaultRandomCap        = 1000000
	defaultRecentWindow     = 20
)

// SettingsFromState builds Settings from the loaded engine configuration.
func SettingsFromState() Settings {
	return Settings{
		ProgressInterval: enginestate.State.ProgressInterval,
		ProgressEvery:    enginestate.State.ProgressEveryAttempts,
		RandomAttemptCap: enginestate.State.RandomAttemptCap,
		RecentWindow:     enginestate.State.RecentWindow,
		DefaultWordlist:  enginestate.State.WordlistPath,
		DataDir:          enginestate.State.DataPath,
	}
}

// Registry owns the live attack controllers. Attacks self-retire: when a
// controller reaches a terminal state it removes itself from the registry
// before its Done channel closes, so lookups after Done report ErrUnknownAttack.
type Registry struct {
	mu       sync.Mutex
	settings Settings
	attacks  map[string]*Controller

	// fetch resolves a remote wordlist URL to a local path. Overridable in
	// tests to avoid network access.
	fetch func(url, destDir string) (string, error)
}

// NewRegistry creates an empty registry, filling fallback values for any
// unset settings.
func NewRegistry(settings Settings) *Registry {
	if settings.ProgressEvery == 0 {
		settings.ProgressEvery = defaultProgressEvery
	}

	if settings.ProgressInterval == 0 {
		settings.ProgressInterval = defaultProgressInterval
	}

	if settings.RandomAttemptCap == 0 {
		settings.RandomAttemptCap = defaultRandomCap
	}

	if settings.RecentWindow == 0 {
		settings.RecentWindow = defaultRecentWindow
	}

	return &Registry{
		settings: settings,
		attacks:  make(map[string]*Controller),
		fetch:    downloader.FetchWordlist,
	}
}

// StartAttack validates the request, builds its candidate source, registers a
// controller, and starts the worker goroutine. The returned controller is
// already running.
func (r *Registry) StartAttack(req Request) (*Controller, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}

	source, targetDigest, err := r.buildSource(&req)
	if err != nil {
		return nil, err
	}

	id, err := random.UUIdV4()
	if err != nil {
		return nil, fmt.Errorf("couldn't generate attack ID: %w", err)
	}

	ctrl := newController(id, req.Algorithm, targetDigest, source, controllerConfig{
		progressEvery:    r.settings.ProgressEvery,
		progressInterval: r.settings.ProgressInterval,
		recentWindow:     r.settings.RecentWindow,
		onRetire:         func() { r.remove(id) },
	})

	r.mu.Lock()
	r.attacks[id] = ctrl
	r.mu.Unlock()

	enginestate.Logger.Info("Attack started", "attack_id", id, "mode", req.Mode, "algorithm", req.Algorithm)
	ctrl.start()

	return ctrl, nil
}

func (r *Registry) buildSource(req *Request) (candidates.Source, string, error) {
	if req.Mode == ModeBruteForce {
		return r.buildBruteSource(req)
	}

	return r.buildDictionarySource(req)
}

func (r *Registry) buildBruteSource(req *Request) (candidates.Source, string, error) {
	targetDigest, err := hashes.Digest(req.TargetPlaintext, req.Algorithm)
	if err != nil {
		return nil, "", err
	}

	charset := candidates.CharsetFor(req.TargetPlaintext)
	if charset == "" {
		return nil, "", fmt.Errorf("%w: target contains no recognized character classes", ErrInvalidRequest)
	}

	if req.Method == MethodRandom {
		attemptCap := req.AttemptCap
		if attemptCap == 0 {
			attemptCap = r.settings.RandomAttemptCap
		}

		var (
			source *candidates.Random
			srcErr error
		)

		if req.Seed != 0 {
			source, srcErr = candidates.NewRandomSeeded(charset, req.RandomLength, attemptCap, req.Seed)
		} else {
			source, srcErr = candidates.NewRandom(charset, req.RandomLength, attemptCap)
		}

		if srcErr != nil {
			return nil, "", fmt.Errorf("%w: %s", ErrInvalidRequest, srcErr)
		}

		return source, targetDigest, nil
	}

	source, err := candidates.NewSequential(charset, req.MaxLength)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}

	return source, targetDigest, nil
}

func (r *Registry) buildDictionarySource(req *Request) (candidates.Source, string, error) {
	words, err := r.resolveWords(req)
	if err != nil {
		return nil, "", err
	}

	source := candidates.NewDictionary(words, candidates.DictionaryOptions{
		UseVariations: req.UseVariations,
		UsePatterns:   req.UsePatterns,
	})

	return source, req.TargetHash, nil
}

// resolveWords picks the wordlist in priority order: inline words, the
// requested path or URL, then the engine default.
func (r *Registry) resolveWords(req *Request) ([]string, error) {
	if len(req.Words) > 0 {
		return req.Words, nil
	}

	path := req.WordlistPath
	if path == "" {
		path = r.settings.DefaultWordlist
	}

	if path == "" {
		return nil, fmt.Errorf("%w: no wordlist configured", ErrDictionaryUnavailable)
	}

	if downloader.IsURL(path) {
		local, err := r.fetch(path, r.settings.DataDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrDictionaryUnavailable, err)
		}

		path = local
	}

	words, err := wordlist.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDictionaryUnavailable, err)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("%w: wordlist %q is empty", ErrDictionaryUnavailable, path)
	}

	return words, nil
}

// Get returns the controller for id, or ErrUnknownAttack if it was never
// registered or has already retired.
func (r *Registry) Get(id string) (*Controller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctrl, ok := r.attacks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAttack, id)
	}

	return ctrl, nil
}

// Pause suspends the identified attack.
func (r *Registry) Pause(id string) error {
	ctrl, err := r.Get(id)
	if err != nil {
		return err
	}

	return ctrl.Pause()
}

// Resume continues the identified attack.
func (r *Registry) Resume(id string) error {
	ctrl, err := r.Get(id)
	if err != nil {
		return err
	}

	return ctrl.Resume()
}

// Stop terminates the identified attack.
func (r *Registry) Stop(id string) error {
	ctrl, err := r.Get(id)
	if err != nil {
		return err
	}

	return ctrl.Stop()
}

// List returns snapshots of every live attack.
func (r *Registry) List() []Snapshot {
	r.mu.Lock()
	controllers := make([]*Controller, 0, len(r.attacks))

	for _, ctrl := range r.attacks {
		controllers = append(controllers, ctrl)
	}
	r.mu.Unlock()

	snapshots := make([]Snapshot, 0, len(controllers))
	for _, ctrl := range controllers {
		snapshots = append(snapshots, ctrl.Snapshot())
	}

	return snapshots
}

func (r *Registry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.attacks, id)
}
