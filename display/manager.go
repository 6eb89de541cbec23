package display

import (
	"errors"
	"fmt"
	"sync"

	"lcdgfx/internal/logging"
)

var ErrNoDisplay = errors.New("display: no such display")

// Manager is the registry of displays built at startup and passed to
// whatever needs to draw.
type Manager struct {
	mu       sync.Mutex
	displays []*Display
}

func NewManager() *Manager { return &Manager{} }

// Register adds d and returns its index.
func (m *Manager) Register(d *Display) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.displays = append(m.displays, d)
	w, h := d.Size()
	logging.L().Info("display registered", "index", len(m.displays)-1, "name", d.Name(), "width", w, "height", h)
	return len(m.displays) - 1
}

// Display returns display i.
func (m *Manager) Display(i int) (*Display, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i < 0 || i >= len(m.displays) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrNoDisplay, i, len(m.displays))
	}
	return m.displays[i], nil
}

// Len is the number of registered displays.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.displays)
}
