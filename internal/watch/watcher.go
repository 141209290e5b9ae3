// Package watch keeps a resolved type configuration current by watching
// the configuration document for changes.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"newelem/internal/content"
	"newelem/internal/log"
	"newelem/internal/resolve"

	"github.com/fsnotify/fsnotify"
)

// Reload is one successful re-resolution of the configuration document
type Reload struct {
	Configuration *resolve.TypeConfiguration
	Timestamp     time.Time
}

// Watcher monitors the configuration document using fsnotify and
// re-resolves it on every write. Failed parses or resolutions are logged
// and the previously delivered configuration stays current.
type Watcher struct {
	// Filesystem path of the watched configuration document
	documentPath string

	resolver  *resolve.Resolver
	requested string
	fallback  string

	// Channel delivering fresh configurations
	reloadChan chan Reload

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Write debounce interval
	debounce time.Duration

	// Lock for running state
	mutex sync.RWMutex

	// Whether the watcher is running
	running bool
}

// New creates a watcher over the configuration document at documentPath
func New(documentPath string, resolver *resolve.Resolver, requested, fallback string, debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		documentPath: documentPath,
		resolver:     resolver,
		requested:    requested,
		fallback:     fallback,
		reloadChan:   make(chan Reload, 1),
		stopChan:     make(chan struct{}),
		fsWatcher:    fsWatcher,
		debounce:     debounce,
	}, nil
}

// ReloadChannel returns the channel that delivers fresh configurations
func (w *Watcher) ReloadChannel() <-chan Reload {
	return w.reloadChan
}

// Start begins watching the document's directory. Watching the directory
// rather than the file keeps the watch alive across editors that replace
// the file on save.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mutex.Unlock()

	dir := filepath.Dir(w.documentPath)
	if err := w.fsWatcher.Add(dir); err != nil {
		w.mutex.Lock()
		w.running = false
		w.mutex.Unlock()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	// Create a new stop channel each time Start is called
	w.stopChan = make(chan struct{})

	go w.loop()
	log.LogWithFields(log.F("document", w.documentPath)).Info("Watching configuration document")
	return nil
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.documentPath) {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			// Debounce bursts of writes from a single save
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.reload()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("Watcher error")

		case <-w.stopChan:
			return
		}
	}
}

// reload re-parses and re-resolves the document, delivering the result on
// the reload channel. Errors keep the previous configuration current.
func (w *Watcher) reload() {
	doc, err := content.ParseFile(w.documentPath)
	if err != nil {
		log.LogWithFields(log.F("document", w.documentPath), log.F("error", err)).Error("Failed to parse configuration document")
		return
	}
	cfg, err := w.resolver.Resolve(doc, w.requested, w.fallback)
	if err != nil {
		log.LogWithFields(log.F("document", w.documentPath), log.F("error", err)).Error("Failed to resolve configuration document")
		return
	}

	reload := Reload{Configuration: cfg, Timestamp: time.Now()}
	select {
	case w.reloadChan <- reload:
	default:
		// Drop the stale pending reload and deliver the fresh one
		select {
		case <-w.reloadChan:
		default:
		}
		w.reloadChan <- reload
	}
	log.LogWithFields(log.F("types", cfg.Len())).Info("Configuration reloaded")
}

// Stop halts the watcher and releases the fsnotify resources
func (w *Watcher) Stop() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if !w.running {
		return nil
	}
	w.running = false
	close(w.stopChan)
	return w.fsWatcher.Close()
}

// Running reports whether the watcher is active
func (w *Watcher) Running() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
