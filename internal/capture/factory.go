package capture

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/infractura/screenshot-control/internal/logging"
)

// BackendConstructor constructs a Capturer given the config and logger.
type BackendConstructor func(cfg Config, logger logging.Logger) (Capturer, error)

var (
	mu       sync.RWMutex
	registry = map[string]BackendConstructor{}
)

// RegisterBackend registers a named backend constructor. Name is lower-cased
// internally. Calling RegisterBackend with the same name overwrites the
// previous constructor.
func RegisterBackend(name string, ctor BackendConstructor) {
	if name == "" || ctor == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(name)] = ctor
}

// NewCapturer constructs the configured capture backend. It returns an error
// if the named backend has not been registered.
func NewCapturer(cfg Config, logger logging.Logger) (Capturer, error) {
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if backend == "" {
		backend = BackendChromedp
	}

	mu.RLock()
	ctor, ok := registry[backend]
	mu.RUnlock()
	if !ok || ctor == nil {
		return nil, fmt.Errorf("capture backend %q not registered: available backends=%v", backend, ListBackends())
	}

	c, err := ctor(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to construct capture backend %q: %w", backend, err)
	}
	if c == nil {
		return nil, errors.New("capture backend constructor returned nil")
	}
	return c, nil
}

// ListBackends returns the sorted list of registered backend names.
func ListBackends() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
