package watch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	holydiver "github.com/ndgigliotti/holy-diver"
)

// DefaultDebounce is the delay between the last filesystem event and the
// reload it triggers. Editors often produce bursts of writes; the debounce
// collapses each burst into one reload.
const DefaultDebounce = 200 * time.Millisecond

// Options holds configuration for a Watcher.
type Options struct {
	Debounce    time.Duration
	Logger      *slog.Logger
	LoadOptions []holydiver.Option
}

// Option defines a function type for configuring a Watcher.
type Option func(*Options)

// WithDebounce sets the debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(opts *Options) {
		opts.Debounce = d
	}
}

// WithLogger sets the logger used for reload failures and watcher errors.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithLoadOptions forwards construction options to each reload, e.g.
// defaults or required keys.
func WithLoadOptions(loadOpts ...holydiver.Option) Option {
	return func(opts *Options) {
		opts.LoadOptions = append(opts.LoadOptions, loadOpts...)
	}
}

// Watcher reloads a configuration file whenever it changes on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New starts watching path and calls onReload with the freshly loaded
// configuration after each change. The parent directory is watched rather
// than the file itself, so the watch survives the rename-and-replace
// strategy most editors use. A reload that fails to parse is logged and
// skipped; the previous configuration stays in effect with the caller.
func New(path string, onReload func(*holydiver.Config), opts ...Option) (*Watcher, error) {
	options := &Options{
		Debounce: DefaultDebounce,
		Logger:   slog.Default(),
	}
	for _, apply := range opts {
		apply(options)
	}

	cleanPath := filepath.Clean(path)
	dir := filepath.Dir(cleanPath)
	base := filepath.Base(cleanPath)

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("watching directory %q: %w", dir, err)
	}

	w := &Watcher{
		watcher: fsWatcher,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go w.run(cleanPath, base, onReload, options)

	return w, nil
}

func (w *Watcher) run(path, base string, onReload func(*holydiver.Config), options *Options) {
	defer close(w.doneCh)

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	resetTimer := func() {
		if timer == nil {
			timer = time.NewTimer(options.Debounce)
			timerC = timer.C
			return
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(options.Debounce)
		timerC = timer.C
	}
	reload := func() {
		cfg, err := holydiver.FromFile(path, options.LoadOptions...)
		if err != nil {
			options.Logger.Error("config reload failed", slog.String("path", path), slog.Any("error", err))
			return
		}
		onReload(cfg)
	}

	for {
		select {
		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-timerC:
			timerC = nil
			reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			options.Logger.Error("config watcher error", slog.Any("error", err))
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			resetTimer()
		}
	}
}

// Close stops the watcher and waits for the reload goroutine to exit.
func (w *Watcher) Close() error {
	close(w.stopCh)
	err := w.watcher.Close()
	<-w.doneCh
	return err
}
