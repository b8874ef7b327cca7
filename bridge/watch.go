package bridge

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/fen-lake/st2mqtt/config"
	"github.com/fen-lake/st2mqtt/log"
)

// watchConfig watches the config file for changes and applies interval
// and log level changes without a restart.
func (b *Bridge) watchConfig(ctx context.Context) {
	if b.configPath == "" {
		return
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.WarnError("Could not watch config", err)
		return
	}
	defer w.Close()

	// Watch the directory; editors replace files rather than writing
	// in place, which drops a watch on the file itself.
	if err := w.Add(filepath.Dir(b.configPath)); err != nil {
		log.WarnError("Could not watch config", err)
		return
	}

	name := filepath.Base(b.configPath)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != name {
				break
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				break
			}
			b.reloadConfig(ctx)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.WarnError("Config watch error", err)
		}
	}
}

func (b *Bridge) reloadConfig(ctx context.Context) {
	f, err := os.Open(b.configPath)
	if err != nil {
		log.WarnError("Could not reload config", err)
		return
	}
	defer f.Close()

	cfg, err := config.Read(f)
	if err != nil {
		log.WarnError("Could not reload config", err)
		return
	}

	log.Info("Config reloaded", "path", b.configPath)

	if cfg.Interval > 0 {
		select {
		case <-ctx.Done():
		case b.reload <- cfg.Interval:
		}
	}

	if err := cfg.Log.Apply(); err != nil {
		log.WarnError("Could not apply log config", err)
	}
}
