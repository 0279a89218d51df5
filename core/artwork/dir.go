package artwork

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"audiokit/logger"
)

// DirFetcher serves artwork bytes from a local directory, keeping read files
// in memory until the watcher sees them change on disk. Keys are paths
// relative to the base directory; escaping the directory is rejected.
type DirFetcher struct {
	base    string
	watcher *fsnotify.Watcher

	mu    sync.Mutex
	cache map[string][]byte
}

// NewDirFetcher starts a fetcher over base. The directory must exist. Close
// releases the watcher.
func NewDirFetcher(base string) (*DirFetcher, error) {
	info, err := os.Stat(base)
	if err != nil {
		return nil, fmt.Errorf("artwork dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("artwork dir: %s is not a directory", base)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("artwork dir watcher: %w", err)
	}

	// Keys may point into subdirectories and fsnotify watches are not
	// recursive, so every directory under base gets its own watch.
	err = filepath.WalkDir(base, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		return watcher.Add(path)
	})
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch artwork dir: %w", err)
	}

	d := &DirFetcher{
		base:    base,
		watcher: watcher,
		cache:   make(map[string][]byte),
	}
	go d.watch()

	return d, nil
}

// Fetch returns the bytes of the artwork file at the relative path key.
func (d *DirFetcher) Fetch(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel := filepath.Clean(key)
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) || filepath.IsAbs(rel) {
		return nil, fmt.Errorf("artwork path %q escapes the artwork directory", key)
	}

	d.mu.Lock()
	data, ok := d.cache[rel]
	d.mu.Unlock()
	if ok {
		return data, nil
	}

	data, err := os.ReadFile(filepath.Join(d.base, rel))
	if err != nil {
		return nil, fmt.Errorf("read artwork file: %w", err)
	}

	d.mu.Lock()
	d.cache[rel] = data
	d.mu.Unlock()

	return data, nil
}

// Close stops the directory watcher.
func (d *DirFetcher) Close() error {
	return d.watcher.Close()
}

func (d *DirFetcher) watch() {
	for {
		select {
		case event, ok := <-d.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create != 0 {
				// Directories created after startup need their own watch
				// before files inside them can invalidate.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := d.watcher.Add(event.Name); err != nil {
						logger.Warn("failed to watch new artwork subdirectory",
							logger.String("path", event.Name),
							logger.ErrorField(err))
					}
					continue
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				if rel, err := filepath.Rel(d.base, event.Name); err == nil {
					d.invalidate(rel)
				}
			}
		case err, ok := <-d.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("artwork dir watcher error", logger.ErrorField(err))
		}
	}
}

func (d *DirFetcher) invalidate(rel string) {
	d.mu.Lock()
	_, cached := d.cache[rel]
	delete(d.cache, rel)
	d.mu.Unlock()

	if cached {
		logger.Debug("artwork cache entry invalidated", logger.String("path", rel))
	}
}
