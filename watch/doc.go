// Package watch reloads a configuration file when it changes on disk.
//
// A Watcher observes the file's parent directory through fsnotify,
// debounces event bursts, and delivers each successfully reloaded
// *holydiver.Config to a caller-supplied callback:
//
//	w, err := watch.New("config.yaml", func(cfg *holydiver.Config) {
//	    // swap in the new configuration
//	})
//	if err != nil {
//	    // handle error
//	}
//	defer w.Close()
//
// Reloads that fail to parse are logged and skipped, so a half-written
// file never replaces a working configuration.
package watch
