package attack

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cracklab-io/attacksim/lib/hashes"
)

func TestStartAttackValidation(t *testing.T) {
	registry := testRegistry()

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "unknown mode",
			req:     Request{Mode: "rainbow-table"},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "brute force without plaintext",
			req:     Request{Mode: ModeBruteForce},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "brute force with unrecognized characters",
			req:     Request{Mode: ModeBruteForce, TargetPlaintext: "日本語"},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "brute force with unknown method",
			req:     Request{Mode: ModeBruteForce, TargetPlaintext: "abc", Method: "quantum"},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "dictionary without hash",
			req:     Request{Mode: ModeDictionary, Words: []string{"test"}},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "dictionary with non-hex hash",
			req:     Request{Mode: ModeDictionary, TargetHash: "zz" + testDigestMD5[2:], Words: []string{"test"}},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "dictionary with undetectable digest length",
			req:     Request{Mode: ModeDictionary, TargetHash: "abcdef", Words: []string{"test"}},
			wantErr: hashes.ErrUnknownAlgorithm,
		},
		{
			name: "dictionary with mismatched algorithm hint",
			req: Request{
				Mode:       ModeDictionary,
				TargetHash: testDigestMD5,
				Algorithm:  hashes.SHA256,
				Words:      []string{"test"},
			},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "dictionary without any wordlist",
			req:     Request{Mode: ModeDictionary, TargetHash: testDigestMD5},
			wantErr: ErrDictionaryUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := registry.StartAttack(tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStartAttackDetectsAlgorithm(t *testing.T) {
	registry := testRegistry()

	// sha256 of "test".
	const sha256Digest = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

	ctrl, err := registry.StartAttack(Request{
		Mode:       ModeDictionary,
		TargetHash: sha256Digest,
		Words:      []string{"test"},
	})
	require.NoError(t, err)
	assert.Equal(t, hashes.SHA256, ctrl.Algorithm())

	event := waitTerminal(t, ctrl)
	assert.Equal(t, OutcomeFound, event.Outcome)
}

func TestStartAttackLoadsWordlistFile(t *testing.T) {
	registry := testRegistry()

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\ntest\n"), 0o600))

	ctrl, err := registry.StartAttack(Request{
		Mode:         ModeDictionary,
		TargetHash:   testDigestMD5,
		WordlistPath: path,
	})
	require.NoError(t, err)

	event := waitTerminal(t, ctrl)
	assert.Equal(t, OutcomeFound, event.Outcome)
	assert.Equal(t, uint64(2), event.Attempts)
}

func TestStartAttackEmptyWordlist(t *testing.T) {
	registry := testRegistry()

	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0o600))

	_, err := registry.StartAttack(Request{
		Mode:         ModeDictionary,
		TargetHash:   testDigestMD5,
		WordlistPath: path,
	})
	require.ErrorIs(t, err, ErrDictionaryUnavailable)
}

func TestStartAttackFetchesRemoteWordlist(t *testing.T) {
	registry := testRegistry()

	local := filepath.Join(t.TempDir(), "remote.txt")
	require.NoError(t, os.WriteFile(local, []byte("test\n"), 0o600))

	var fetchedURL string

	registry.fetch = func(url, destDir string) (string, error) {
		fetchedURL = url

		return local, nil
	}

	ctrl, err := registry.StartAttack(Request{
		Mode:         ModeDictionary,
		TargetHash:   testDigestMD5,
		WordlistPath: "https://example.com/lists/remote.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/lists/remote.txt", fetchedURL)

	event := waitTerminal(t, ctrl)
	assert.Equal(t, OutcomeFound, event.Outcome)
}

func TestRegistryLookupAndRetirement(t *testing.T) {
	registry := testRegistry()

	ctrl, err := registry.StartAttack(Request{
		Mode:       ModeDictionary,
		TargetHash: testDigestMD5,
		Words:      []string{"test"},
	})
	require.NoError(t, err)

	waitTerminal(t, ctrl)
	<-ctrl.Done()

	// Terminal attacks retire from the registry before Done closes.
	_, err = registry.Get(ctrl.ID())
	require.ErrorIs(t, err, ErrUnknownAttack)
	require.ErrorIs(t, registry.Pause(ctrl.ID()), ErrUnknownAttack)
	require.ErrorIs(t, registry.Stop(ctrl.ID()), ErrUnknownAttack)
}

func TestRegistryLifecycleByID(t *testing.T) {
	registry := testRegistry()

	ctrl, err := registry.StartAttack(Request{
		Mode:            ModeBruteForce,
		TargetPlaintext: "zzzzzz",
		MaxLength:       6,
	})
	require.NoError(t, err)

	require.NoError(t, registry.Pause(ctrl.ID()))
	assert.Eventually(t, func() bool {
		return ctrl.Phase() == PhasePaused
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, registry.Resume(ctrl.ID()))
	require.NoError(t, registry.Stop(ctrl.ID()))
	waitTerminal(t, ctrl)
}

func TestRegistryList(t *testing.T) {
	registry := testRegistry()

	ctrl, err := registry.StartAttack(Request{
		Mode:            ModeBruteForce,
		TargetPlaintext: "zzzzzz",
		MaxLength:       6,
	})
	require.NoError(t, err)

	snapshots := registry.List()
	require.Len(t, snapshots, 1)
	assert.Equal(t, ctrl.ID(), snapshots[0].ID)

	require.NoError(t, registry.Stop(ctrl.ID()))
	<-ctrl.Done()

	assert.Empty(t, registry.List())
}

func TestUnknownAttackLookup(t *testing.T) {
	registry := testRegistry()

	_, err := registry.Get("no-such-id")
	require.ErrorIs(t, err, ErrUnknownAttack)
	require.ErrorIs(t, registry.Resume("no-such-id"), ErrUnknownAttack)
}
