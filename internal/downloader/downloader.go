package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const chunkSize = 32 * 1024

// DownloadError reports a failed media transfer. Path may point at a
// partial file; nothing is cleaned up so the user can inspect or resume by
// hand.
type DownloadError struct {
	URL  string
	Path string
	Err  error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s to %s: %v", e.URL, e.Path, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// Downloader streams media files to disk chunk by chunk, feeding a Reporter
// as bytes arrive. One Downloader handles one transfer at a time.
type Downloader struct {
	fs       afero.Fs
	client   *http.Client
	log      *zap.Logger
	reporter Reporter
}

func New(fs afero.Fs, reporter Reporter, log *zap.Logger) *Downloader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if reporter == nil {
		reporter = NopReporter{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Downloader{
		fs: fs,
		// No client timeout: a full episode can take minutes on a slow
		// link. Cancellation comes from ctx.
		client:   &http.Client{},
		log:      log,
		reporter: reporter,
	}
}

// Download fetches url into dest. The returned session is never nil and
// carries the byte counts and final status even when err is non-nil. The
// parent directory of dest must already exist.
func (d *Downloader) Download(ctx context.Context, url, dest string) (*Session, error) {
	session := NewSession(url, dest)
	d.log.Debug("starting download",
		zap.String("session", session.ID),
		zap.String("url", url),
		zap.String("dest", dest))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		session.fail(err)
		return session, &DownloadError{URL: url, Path: dest, Err: err}
	}

	resp, err := d.client.Do(req)
	if err != nil {
		session.fail(err)
		return session, &DownloadError{URL: url, Path: dest, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := fmt.Errorf("unexpected status %s", resp.Status)
		session.fail(err)
		return session, &DownloadError{URL: url, Path: dest, Err: err}
	}

	out, err := d.fs.Create(dest)
	if err != nil {
		session.fail(err)
		return session, &DownloadError{URL: url, Path: dest, Err: err}
	}

	session.begin(resp.ContentLength)
	d.reporter.Start(resp.ContentLength)

	received, copyErr := d.copyChunks(out, resp.Body)
	session.Received = received

	closeErr := out.Close()
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		d.reporter.Abort()
		session.fail(copyErr)
		d.log.Debug("download failed",
			zap.String("session", session.ID),
			zap.Int64("received", session.Received),
			zap.Error(copyErr))
		return session, &DownloadError{URL: url, Path: dest, Err: copyErr}
	}

	d.reporter.Finish()
	session.complete()
	d.log.Debug("download complete",
		zap.String("session", session.ID),
		zap.Int64("bytes", session.Received),
		zap.Duration("took", session.FinishedAt.Sub(session.StartedAt)))
	return session, nil
}

// copyChunks is io.Copy with a fixed chunk size and a progress callback per
// chunk. It returns the bytes actually written, which on error is exactly
// the size of the partial file left behind.
func (d *Downloader) copyChunks(dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, chunkSize)
	var written int64
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			wn, writeErr := dst.Write(buf[:n])
			written += int64(wn)
			d.reporter.Advance(wn)
			if writeErr != nil {
				return written, writeErr
			}
			if wn < n {
				return written, io.ErrShortWrite
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}
