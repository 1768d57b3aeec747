package downloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/duke-git/lancet/v2/cryptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "https", input: "https://example.com/words.txt", want: true},
		{name: "http", input: "http://example.com/words.txt", want: true},
		{name: "local path", input: "/var/lib/attacksim/words.txt", want: false},
		{name: "relative path", input: "words.txt", want: false},
		{name: "other scheme", input: "ftp://example.com/words.txt", want: false},
		{name: "scheme without host", input: "https://", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsURL(tt.input))
		})
	}
}

func TestFileExistsAndValid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("password\nletmein\n"), 0o600))

	checksum, err := cryptor.Md5File(path)
	require.NoError(t, err)

	assert.True(t, FileExistsAndValid(path, ""))
	assert.True(t, FileExistsAndValid(path, checksum))
	assert.False(t, FileExistsAndValid(filepath.Join(dir, "missing.txt"), ""))
}

func TestFileExistsAndValidRemovesMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale contents"), 0o600))

	assert.False(t, FileExistsAndValid(path, "00000000000000000000000000000000"))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "mismatched file should be removed")
}

func TestDownloadFileRejectsInvalidURL(t *testing.T) {
	err := DownloadFile("not-a-url", filepath.Join(t.TempDir(), "out.txt"), "")
	require.ErrorIs(t, err, ErrInvalidURL)
}

func TestDownloadFileSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cached\n"), 0o600))

	// No checksum and the file exists, so no network access happens.
	require.NoError(t, DownloadFile("https://example.invalid/words.txt", path, ""))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cached\n", string(data))
}

func TestFetchWordlistRejectsInvalidURL(t *testing.T) {
	_, err := FetchWordlist("/local/words.txt", t.TempDir())
	require.ErrorIs(t, err, ErrInvalidURL)
}

func TestFetchWordlistReusesLocalCopy(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rockyou.txt"), []byte("password\n"), 0o600))

	local, err := FetchWordlist("https://example.invalid/lists/rockyou.txt", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "rockyou.txt"), local)
}
