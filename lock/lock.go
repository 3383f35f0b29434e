// Package lock guarantees a single xdna daemon per runtime directory
// with an flock(2) on a lock file that records the owner's pid.
package lock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// ErrHeld is returned by TryAcquire when another process holds the
// lock.
type ErrHeld struct {
	Path string
	PID  int
}

func (e ErrHeld) Error() string {
	if e.PID > 0 {
		return fmt.Sprintf("%s is held by pid %d", e.Path, e.PID)
	}
	return fmt.Sprintf("%s is held by another process", e.Path)
}

// Instance is a held instance lock. The zero value is not usable.
type Instance struct {
	f *os.File
}

// Path returns the lock file path.
func (l *Instance) Path() string { return l.f.Name() }

// Release drops the lock. It is safe to call on nil.
func (l *Instance) Release() error {
	if l == nil || l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}

// TryAcquire takes the lock at path without waiting.
func TryAcquire(path string) (*Instance, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		pid := readPID(f)
		f.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, ErrHeld{Path: path, PID: pid}
		}
		return nil, fmt.Errorf("flock %s: %w", path, err)
	}
	if err := writePID(f); err != nil {
		f.Close()
		return nil, err
	}
	return &Instance{f: f}, nil
}

// Acquire takes the lock at path, retrying with exponential backoff
// until it succeeds or ctx is done.
func Acquire(ctx context.Context, path string) (*Instance, error) {
	backoff := 25 * time.Millisecond
	const maxBackoff = 500 * time.Millisecond

	for {
		l, err := TryAcquire(path)
		if err == nil {
			return l, nil
		}
		var held ErrHeld
		if !errors.As(err, &held) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", held, ctx.Err())
		case <-time.After(backoff):
		}
		backoff = min(2*backoff, maxBackoff)
	}
}

// Run holds the lock at path for the duration of fn.
func Run(ctx context.Context, path string, fn func(context.Context) error) error {
	l, err := Acquire(ctx, path)
	if err != nil {
		return err
	}
	defer l.Release()
	return fn(ctx)
}

func writePID(f *os.File) error {
	if err := f.Truncate(0); err != nil {
		return fmt.Errorf("truncate lock file: %w", err)
	}
	if _, err := f.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0); err != nil {
		return fmt.Errorf("write lock file: %w", err)
	}
	return nil
}

func readPID(f *os.File) int {
	buf := make([]byte, 32)
	n, _ := f.ReadAt(buf, 0)
	pid, err := strconv.Atoi(strings.TrimSpace(string(buf[:n])))
	if err != nil {
		return 0
	}
	return pid
}
