// Package progress provides progress display helpers: a go-getter tracker for
// downloads and percentage formatting for attack status output.
package progress

import (
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"
)

const percentageMultiplier = 100

// DefaultTracker is the download progress tracker wired into go-getter
// clients.
var DefaultTracker = &Tracker{} //nolint:gochecknoglobals // Shared download tracker

// Tracker renders a progress bar for each file a go-getter client transfers.
// It implements getter.ProgressTracker.
type Tracker struct{}

// TrackProgress wraps the download stream in a progress bar that finishes when
// the stream is closed.
func (t *Tracker) TrackProgress(src string, currentSize, totalSize int64, stream io.ReadCloser) io.ReadCloser {
	bar := pb.Full.Start64(totalSize)
	bar.Set(pb.Bytes, true)
	bar.SetCurrent(currentSize)
	bar.Set("prefix", fmt.Sprintf("%s: ", src))

	reader := bar.NewProxyReader(stream)

	return &trackedReader{reader: reader, stream: stream, bar: bar}
}

type trackedReader struct {
	reader io.Reader
	stream io.Closer
	bar    *pb.ProgressBar
}

func (r *trackedReader) Read(p []byte) (int, error) {
	return r.reader.Read(p)
}

func (r *trackedReader) Close() error {
	r.bar.Finish()

	return r.stream.Close()
}

// CalculatePercentage formats value as a percentage of total to two decimal
// places, returning "0.00%" when total is zero.
func CalculatePercentage(value, total float64) string {
	if total == 0 {
		return "0.00%"
	}

	return fmt.Sprintf("%.2f%%", (value/total)*percentageMultiplier)
}
