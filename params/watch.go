package params

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/chankun4766151-cpu/Web3-Portfolio/log"
)

// WatchConfig watch the config file and reload it on modification.
// Useful for long mining runs where log verbosity or miner parameters of
// subsequent runs are tuned while the process is alive.
func WatchConfig(configFile string, stopCh <-chan struct{}) {
	if configFile == "" {
		log.Warn("config file to watch is empty")
		return
	}

	watch, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error("fsnotify.NewWatcher failed", "err", err)
		return
	}

	// watch the directory, editors replace files instead of writing in place
	err = watch.Add(filepath.Dir(configFile))
	if err != nil {
		log.Error("watch.Add config dir failed", "err", err)
		return
	}

	go startWatcher(watch, configFile, stopCh)
}

func startWatcher(watch *fsnotify.Watcher, configFile string, stopCh <-chan struct{}) {
	log.Info("start fsnotify watch", "configFile", configFile)
	defer func() {
		log.Info("stop fsnotify watch")
		_ = watch.Close()
	}()

	ops := []fsnotify.Op{
		fsnotify.Create,
		fsnotify.Write,
	}

	for {
		select {
		case <-stopCh:
			return
		case ev, ok := <-watch.Events:
			if !ok {
				continue
			}
			log.Trace("fsnotify watch event", "event", ev)
			if filepath.Clean(ev.Name) != filepath.Clean(configFile) {
				continue
			}
			for _, op := range ops {
				if ev.Op&op == op {
					reloadWatchedConfig(configFile)
					break
				}
			}
		case werr, ok := <-watch.Errors:
			if !ok {
				continue
			}
			log.Warn("fsnotify watch error", "err", werr)
		}
	}
}

func reloadWatchedConfig(configFile string) {
	fileStat, _ := os.Stat(configFile)
	// ignore if file is not exist, or is directory, or is empty file
	if fileStat == nil || fileStat.IsDir() || fileStat.Size() == 0 {
		return
	}
	ReloadConfig(configFile)
	log.Info("reload config success", "configFile", configFile)
}
