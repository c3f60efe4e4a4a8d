package kotoba

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// contentWatcher invalidates the post cache whenever a file under the
// content root changes, so edits show up without waiting out the TTL.
type contentWatcher struct {
	fsw *fsnotify.Watcher
}

func watchContent(root string, cache *PostCache, log zerolog.Logger) (*contentWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the root and every locale directory under it. fsnotify does
	// not recurse on its own.
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				log.Debug().Str("file", event.Name).Str("op", event.Op.String()).
					Msg("content changed, invalidating cache")
				cache.Invalidate()
				// New locale directories need their own watch.
				if event.Op.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						_ = fsw.Add(event.Name)
					}
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("content watcher error")
			}
		}
	}()

	return &contentWatcher{fsw: fsw}, nil
}

func (w *contentWatcher) Close() error {
	return w.fsw.Close()
}
