package logtail

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Batch is what one Poll found.
type Batch struct {
	Lines []string
	// Reset means the file was truncated or replaced; everything shown so
	// far is stale and Lines start from the beginning of the new file.
	Reset bool
}

// Follower reads lines appended to a file since the last poll.
type Follower struct {
	path    string
	offset  int64
	partial string
	info    os.FileInfo
}

// NewFollower starts following path at offset, usually the offset returned
// by Tail.
func NewFollower(path string, offset int64) *Follower {
	f := &Follower{path: path, offset: offset}
	if info, err := os.Stat(path); err == nil {
		f.info = info
	}
	return f
}

// Path returns the followed file.
func (f *Follower) Path() string {
	return f.path
}

// Poll reads complete lines appended since the previous call. A trailing
// line without a newline is held back until it is finished.
func (f *Follower) Poll() (Batch, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Batch{}, fmt.Errorf("log source missing: %w", err)
		}
		return Batch{}, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return Batch{}, fmt.Errorf("stat log: %w", err)
	}

	var batch Batch
	if f.replaced(info) {
		f.offset = 0
		f.partial = ""
		batch.Reset = true
	}
	f.info = info

	if info.Size() == f.offset {
		return batch, nil
	}
	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return batch, fmt.Errorf("seek log: %w", err)
	}

	reader := bufio.NewReaderSize(file, 64*1024)
	for {
		chunk, readErr := reader.ReadString('\n')
		f.offset += int64(len(chunk))
		if strings.HasSuffix(chunk, "\n") {
			batch.Lines = append(batch.Lines, trimNewline(f.partial+chunk))
			f.partial = ""
		} else {
			f.partial += chunk
		}
		if readErr == io.EOF {
			return batch, nil
		}
		if readErr != nil {
			return batch, fmt.Errorf("read log: %w", readErr)
		}
	}
}

func (f *Follower) replaced(info os.FileInfo) bool {
	if info.Size() < f.offset {
		return true
	}
	return f.info != nil && !os.SameFile(f.info, info)
}

// Watch reports changes to the followed file on the returned channel until
// ctx is done. Events are coalesced: a pending wake-up absorbs later ones.
// The parent directory is watched so rotation is noticed.
func (f *Follower) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(f.path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(f.path), err)
	}

	target := filepath.Clean(f.path)
	wake := make(chan struct{}, 1)
	go func() {
		defer watcher.Close()
		defer close(wake)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				select {
				case wake <- struct{}{}:
				default:
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return wake, nil
}
