// Package notify implementa ports.Notifier.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/jhoicas/shop-crm/internal/application/ports"
	"github.com/jhoicas/shop-crm/pkg/logger"
)

// WriterNotifier imprime cada notificación como una línea legible y la registra
// en el logger estructurado.
type WriterNotifier struct {
	mu  sync.Mutex
	out io.Writer
	log *logger.Logger
}

var _ ports.Notifier = (*WriterNotifier)(nil)

// NewWriterNotifier construye el notifier. log puede ser nil.
func NewWriterNotifier(out io.Writer, log *logger.Logger) *WriterNotifier {
	if log == nil {
		log = logger.Nop()
	}
	return &WriterNotifier{out: out, log: log}
}

func (w *WriterNotifier) Notify(n ports.Notification) {
	w.mu.Lock()
	defer w.mu.Unlock()

	prefix := "✔"
	switch n.Variant {
	case ports.VariantError:
		prefix = "✖"
		w.log.Warn().Str("title", n.Title).Msg(n.Message)
	case ports.VariantInfo:
		prefix = "ℹ"
		w.log.Debug().Str("title", n.Title).Msg(n.Message)
	default:
		w.log.Debug().Str("title", n.Title).Msg(n.Message)
	}
	fmt.Fprintf(w.out, "%s %s: %s\n", prefix, n.Title, n.Message)
}
