package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/jhoicas/shop-crm/internal/application/ports"
)

// Navigator vista activa del CLI: el nombre del comando en ejecución.
// Forzar el login imprime la indicación para volver a iniciar sesión.
type Navigator struct {
	mu   sync.Mutex
	view string
	out  io.Writer
}

var _ ports.Navigator = (*Navigator)(nil)

// NewNavigator construye el navegador; out recibe la indicación de login.
func NewNavigator(out io.Writer) *Navigator {
	return &Navigator{out: out}
}

// SetView fija la vista activa.
func (n *Navigator) SetView(view string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.view = view
}

// CurrentView vista activa.
func (n *Navigator) CurrentView() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.view
}

// NavigateToLogin cambia a la vista de login.
func (n *Navigator) NavigateToLogin() {
	n.mu.Lock()
	n.view = ports.ViewLogin
	n.mu.Unlock()
	fmt.Fprintln(n.out, "Inicie sesión con: shopcrm login -email <email> -password <password>")
}
