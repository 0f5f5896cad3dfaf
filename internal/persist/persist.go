// Package persist reads and atomically writes small documents on disk.
package persist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	maxRetries = 4
	baseDelay  = 10 * time.Millisecond
	dirMode    = 0o755
	fileMode   = 0o644
)

// ReadFile returns the contents of path.
// A missing file reads as empty.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	return data, nil
}

// WriteFile replaces the contents of path with data.
// Readers observe either the old or the new contents, never a mix.
// Missing parent directories are created.
// Transient failures are retried with a Fibonacci backoff.
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("could not create directory for %s: %w", path, err)
	}
	backoff := retry.WithMaxRetries(maxRetries, retry.NewFibonacci(baseDelay))
	return retry.Do(ctx, backoff, func(context.Context) error {
		err := replaceFile(path, data)
		if shouldRetry(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func replaceFile(path string, data []byte) (err error) {
	// The temporary file must share a filesystem with path for Rename.
	file, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file: %w", err)
	}
	tmpPath := file.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()
	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("could not write %s: %w", tmpPath, err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("could not sync %s: %w", tmpPath, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("could not close %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, fileMode); err != nil {
		return fmt.Errorf("could not set mode of %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("could not replace %s: %w", path, err)
	}
	return nil
}

// shouldRetry reports whether err may succeed on another attempt.
func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission),
		errors.Is(err, fs.ErrClosed),
		errors.Is(err, syscall.EROFS),
		errors.Is(err, syscall.ENOSPC),
		errors.Is(err, syscall.EISDIR),
		errors.Is(err, syscall.ENOTDIR):
		return false
	}
	return true
}
