package settings

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultsSetter receives a freshly loaded defaults document.
type DefaultsSetter interface {
	SetDefaults(doc CompanySettings)
}

// WatchDefaults reloads the defaults file whenever it is written or replaced
// and hands valid documents to target. An invalid file is logged and the
// previous defaults stay in force. The watch stops when ctx is done.
func WatchDefaults(ctx context.Context, path string, target DefaultsSetter, logger *zap.Logger) error {
	log := logger.Named("settings.watch")
	path = filepath.Clean(path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// editors save by rename, so watch the directory and filter by name
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return err
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("defaults watcher error", zap.Error(err))
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				doc, err := LoadDefaults(path)
				if err != nil {
					log.Error("reload statutory defaults failed", zap.String("path", path), zap.Error(err))
					continue
				}
				target.SetDefaults(doc)
				log.Info("statutory defaults reloaded", zap.String("path", path))
			}
		}
	}()
	return nil
}
