package config

import (
	"tabpager/internal/log"
	"tabpager/internal/watch"
)

// Watch reloads path whenever it changes and hands the result to fn. fn runs
// on the watcher goroutine. The returned stop function ends the watch.
func Watch(path string, fn func(*Config, error)) (stop func(), err error) {
	w, err := watch.New()
	if err != nil {
		return nil, err
	}
	if err := w.AddFile(path); err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for mod := range w.FileChannel() {
			log.LogWithFields(log.F("file", mod.Path), log.F("op", mod.Op.String())).Debug("config changed")
			fn(LoadConfigFile(path))
		}
	}()

	return func() {
		w.Stop()
		<-done
	}, nil
}
