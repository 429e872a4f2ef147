package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/ports/driving"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/logger"
)

// OutputSuffix marks files written by the watcher.
const OutputSuffix = ".animated.glb"

// Result describes one processed avatar.
type Result struct {
	// Input is the avatar that triggered the merge.
	Input string

	// Output is the written file. Empty on failure.
	Output string

	// Report is the retarget report. Nil on failure.
	Report *domain.MergeReport

	// Err is set when the avatar could not be animated.
	Err error
}

// Watcher merges avatars appearing in a directory.
type Watcher struct {
	dir       string
	model     driving.ModelService
	animation domain.AssetRef

	// seen maps processed paths to the modification time they were processed at.
	seen map[string]time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithAnimation uses ref for every merge instead of a catalog pick.
func WithAnimation(ref domain.AssetRef) Option {
	return func(w *Watcher) {
		w.animation = ref
	}
}

// New creates a watcher for dir.
func New(dir string, model driving.ModelService, opts ...Option) *Watcher {
	w := &Watcher{
		dir:   dir,
		model: model,
		seen:  make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch starts watching the directory. Results are delivered on the
// returned channel, which is closed once ctx is done.
func (w *Watcher) Watch(ctx context.Context) (<-chan Result, error) {
	info, err := os.Stat(w.dir)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", w.dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, w.dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", w.dir, err)
	}

	results := make(chan Result)
	go func() {
		defer close(results)
		defer fsw.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				path, ok := w.handleFsEvent(event)
				if !ok {
					continue
				}
				result := w.Process(ctx, path)
				select {
				case results <- result:
				case <-ctx.Done():
					return
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("watch %s: %v", w.dir, err)
			}
		}
	}()

	logger.Info("watching %s", w.dir)
	return results, nil
}

// handleFsEvent returns the avatar path an event refers to, if it should be processed.
func (w *Watcher) handleFsEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}
	if !IsAvatarFile(event.Name) {
		return "", false
	}

	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return "", false
	}
	if last, ok := w.seen[event.Name]; ok && last.Equal(info.ModTime()) {
		return "", false
	}
	return event.Name, true
}

// Process merges the avatar at path and writes the result next to it.
func (w *Watcher) Process(ctx context.Context, path string) Result {
	result := Result{Input: path}
	if info, err := os.Stat(path); err == nil {
		w.seen[path] = info.ModTime()
	}

	merged, err := w.model.Merge(ctx, domain.MergeRequest{
		Avatar:    domain.LocalRef(path),
		Animation: w.animation,
	})
	if err != nil {
		// Partially copied files fail to parse; the next write event retries.
		logger.Warn("animate %s: %v", path, err)
		delete(w.seen, path)
		result.Err = err
		return result
	}

	out := OutputPath(path)
	if err := os.WriteFile(out, merged.Data, 0644); err != nil {
		result.Err = fmt.Errorf("writing %s: %w", out, err)
		return result
	}

	logger.Info("animated %s -> %s (%d channels)", path, out, merged.Report.ChannelsMatched)
	result.Output = out
	result.Report = &merged.Report
	return result
}

// IsAvatarFile reports whether path names a visible GLB that the watcher did not write.
func IsAvatarFile(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.HasSuffix(name, ".glb") && !strings.HasSuffix(name, OutputSuffix)
}

// OutputPath returns where the animated copy of path is written.
func OutputPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + OutputSuffix
}
