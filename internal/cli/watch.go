package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/cubetex/pkg/pipeline"
)

// watchDebounce is how long a spec must stay unchanged before it is
// re-rendered. Editors often write a file in several steps.
const watchDebounce = 150 * time.Millisecond

// watchRender renders inputs once and again every time one of them changes,
// until ctx is cancelled. Render failures are reported and the watch goes on.
func (c *CLI) watchRender(ctx context.Context, runner *pipeline.Runner, inputs []string, opts pipeline.Options, output string) error {
	logger := loggerFromContext(ctx)

	w, err := newFileWatcher(inputs, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	render := func() {
		if err := c.runRender(ctx, runner, inputs, opts, output); err != nil {
			c.ui().failure("%v", err)
		}
	}
	render()
	c.ui().info("Watching %d spec(s), press Ctrl+C to stop", len(inputs))

	return w.run(ctx, watchDebounce, func(changed []string) {
		logger.Debug("specs changed", "files", changed)
		render()
	})
}

// fileWatcher reports changes to a fixed set of files. It watches their
// parent directories so that files replaced by rename (as many editors save)
// stay tracked.
type fileWatcher struct {
	w       *fsnotify.Watcher
	targets map[string]string // absolute path -> path as given
	logger  *log.Logger
}

// newFileWatcher starts watching the directories of paths.
func newFileWatcher(paths []string, logger *log.Logger) (*fileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start watcher: %w", err)
	}
	fw := &fileWatcher{w: w, targets: make(map[string]string, len(paths)), logger: logger}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		fw.targets[abs] = p
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return fw, nil
}

// run delivers batches of changed paths to onChange until ctx is done.
// Changes are collected until no event arrived for the debounce interval.
func (fw *fileWatcher) run(ctx context.Context, debounce time.Duration, onChange func([]string)) error {
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	pending := make(map[string]bool)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fw.w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			name, ok := fw.targets[filepath.Clean(ev.Name)]
			if !ok {
				continue
			}
			pending[name] = true
			timer.Reset(debounce)

		case err, ok := <-fw.w.Errors:
			if !ok {
				return nil
			}
			fw.logger.Warn("watch error", "err", err)

		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for name := range pending {
				changed = append(changed, name)
			}
			slices.Sort(changed)
			clear(pending)
			onChange(changed)
		}
	}
}

// Close stops watching.
func (fw *fileWatcher) Close() error {
	return fw.w.Close()
}
