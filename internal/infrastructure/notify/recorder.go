package notify

import (
	"sync"

	"github.com/jhoicas/shop-crm/internal/application/ports"
)

// Recorder guarda las notificaciones en memoria (tests y modo silencioso).
type Recorder struct {
	mu    sync.Mutex
	items []ports.Notification
}

var _ ports.Notifier = (*Recorder)(nil)

func (r *Recorder) Notify(n ports.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All copia de las notificaciones recibidas, en orden.
func (r *Recorder) All() []ports.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ports.Notification(nil), r.items...)
}

// Last última notificación; ok=false si no hay ninguna.
func (r *Recorder) Last() (ports.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return ports.Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Reset descarta lo grabado.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}
