// Package downloader fetches remote wordlists into the engine's data
// directory, with MD5 checksum verification and re-download skipping.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/duke-git/lancet/v2/cryptor"
	"github.com/duke-git/lancet/v2/strutil"
	"github.com/hashicorp/go-getter"

	"github.com/cracklab-io/attacksim/enginestate"
	"github.com/cracklab-io/attacksim/lib/progress"
)

const (
	defaultUmask        = 0o022
	defaultWordlistName = "wordlist.txt"
	dataDirPermissions  = 0o700
)

// ErrInvalidURL is returned when a download source is not an absolute URL.
var ErrInvalidURL = errors.New("invalid URL")

// IsURL reports whether s parses as an absolute http or https URL.
func IsURL(s string) bool {
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}

	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// FetchWordlist downloads a wordlist URL into destDir, naming the local file
// after the URL path. An existing local copy is reused without re-downloading.
// It returns the local file path.
func FetchWordlist(fileURL, destDir string) (string, error) {
	if !IsURL(fileURL) {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, fileURL)
	}

	if err := os.MkdirAll(destDir, dataDirPermissions); err != nil {
		return "", fmt.Errorf("couldn't create data directory %q: %w", destDir, err)
	}

	parsed, _ := url.Parse(fileURL) //nolint:errcheck // Already validated by IsURL

	name := path.Base(parsed.Path)
	if name == "." || name == "/" || name == "" {
		name = defaultWordlistName
	}

	localPath := filepath.Join(destDir, name)

	if err := DownloadFile(fileURL, localPath, ""); err != nil {
		return "", err
	}

	return localPath, nil
}

// DownloadFile downloads a file from a URL to filePath with optional MD5
// checksum verification. If the file already exists and the checksum matches
// (or no checksum is given), the download is skipped.
func DownloadFile(fileURL, filePath, checksum string) error {
	if !IsURL(fileURL) {
		enginestate.ErrorLogger.Error("Invalid URL", "url", fileURL)

		return fmt.Errorf("%w: %q", ErrInvalidURL, fileURL)
	}

	if FileExistsAndValid(filePath, checksum) {
		enginestate.Logger.Info("Download already exists", "path", filePath)

		return nil
	}

	return downloadAndVerifyFile(fileURL, filePath, checksum)
}

// FileExistsAndValid checks if a file exists at the given path and, if a
// checksum is provided, verifies it. Files with mismatched checksums are
// removed so the next download starts clean.
func FileExistsAndValid(filePath, checksum string) bool {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return false
	}

	if strutil.IsBlank(checksum) {
		return true
	}

	fileChecksum, err := cryptor.Md5File(filePath)
	if err != nil {
		enginestate.ErrorLogger.Error("Error calculating file checksum", "path", filePath, "error", err)

		return false
	}

	if fileChecksum == checksum {
		return true
	}

	enginestate.Logger.Warn("Checksums do not match",
		"path", filePath,
		"expected", checksum,
		"actual", fileChecksum,
	)

	if err := os.Remove(filePath); err != nil {
		enginestate.ErrorLogger.Error("Error removing file with mismatched checksum", "path", filePath, "error", err)
	}

	return false
}

func downloadAndVerifyFile(fileURL, filePath, checksum string) error {
	if strutil.IsNotBlank(checksum) {
		var err error

		fileURL, err = appendChecksumToURL(fileURL, checksum)
		if err != nil {
			return err
		}
	}

	client := &getter.Client{
		Ctx:  context.Background(),
		Dst:  filePath,
		Src:  fileURL,
		Pwd:  filepath.Dir(filePath),
		Mode: getter.ClientModeFile,
	}

	_ = client.Configure( //nolint:errcheck // Client configuration errors are not critical
		getter.WithProgress(progress.DefaultTracker),
		getter.WithUmask(os.FileMode(defaultUmask)),
	)

	if err := client.Get(); err != nil {
		enginestate.Logger.Debug("Error downloading file", "error", err)

		return fmt.Errorf("couldn't download %q: %w", fileURL, err)
	}

	if strutil.IsNotBlank(checksum) && !FileExistsAndValid(filePath, checksum) {
		return errors.New("downloaded file checksum does not match")
	}

	return nil
}

// appendChecksumToURL adds the checksum query parameter go-getter uses for
// transfer verification.
func appendChecksumToURL(rawURL, checksum string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("couldn't parse URL %q: %w", rawURL, err)
	}

	q := u.Query()
	q.Set("checksum", "md5:"+checksum)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
