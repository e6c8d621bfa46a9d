// Package fakeapi backend REST en memoria con Fiber para tests de casos de
// uso y del CLI. Reproduce el contrato HTTP del CRM: auth JWT, rutas
// /admin y /owner, 204 en borrados y borrado en cascada de tiendas.
package fakeapi

import (
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shop-crm/internal/application/dto"
	"github.com/jhoicas/shop-crm/internal/domain/entity"
	pkgjwt "github.com/jhoicas/shop-crm/pkg/jwt"
)

// Usuarios sembrados.
const (
	AdminID int64 = 1
	OwnerID int64 = 2
	UserID  int64 = 3

	AdminEmail = "admin@crm.kz"
	OwnerEmail = "owner@crm.kz"
	UserEmail  = "user@crm.kz"

	// Password de todos los usuarios sembrados.
	Password = "secreto123"

	jwtSecret = "fakeapi-secret"
	jwtIssuer = "fakeapi"
)

// Request petición registrada por el backend.
type Request struct {
	Method string
	Path   string
	Body   []byte
	Header http.Header
}

type failure struct {
	status int
	body   string
}

type userRecord struct {
	entity.User
	password string
}

// Backend estado del backend falso. Seguro para uso concurrente.
type Backend struct {
	mu        sync.Mutex
	app       *fiber.App
	users     map[int64]*userRecord
	shops     map[int64]*entity.Shop
	employees map[int64]*entity.Employee
	items     map[int64]*entity.Item
	nextID    int64
	requests  []Request
	failures  map[string]failure
	embedUser bool
	now       func() time.Time
}

// Option configura el Backend.
type Option func(*Backend)

// WithEmbeddedUser incluye el usuario en la respuesta de /auth/login.
func WithEmbeddedUser() Option {
	return func(b *Backend) { b.embedUser = true }
}

// WithEmpty arranca sin tiendas, empleados ni ítems.
func WithEmpty() Option {
	return func(b *Backend) {
		b.shops = map[int64]*entity.Shop{}
		b.employees = map[int64]*entity.Employee{}
		b.items = map[int64]*entity.Item{}
	}
}

// WithShops agrega tiendas con id fijo a las sembradas.
func WithShops(shops ...entity.Shop) Option {
	return func(b *Backend) {
		for _, s := range shops {
			b.shops[s.ID] = &s
		}
	}
}

// New construye el backend con datos sembrados: tres usuarios (admin, owner,
// user) y dos tiendas del owner con empleados e ítems.
func New(opts ...Option) *Backend {
	b := &Backend{
		failures: map[string]failure{},
		nextID:   100,
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
	b.seed()
	for _, opt := range opts {
		opt(b)
	}
	b.app = b.routes()
	return b
}

// App aplicación Fiber subyacente.
func (b *Backend) App() *fiber.App { return b.app }

// Token JWT válido para un usuario sembrado.
func (b *Backend) Token(userID int64) string {
	b.mu.Lock()
	u, ok := b.users[userID]
	b.mu.Unlock()
	if !ok {
		return ""
	}
	tok, err := pkgjwt.Generate(jwtSecret, u.ID, u.Email, string(u.Role), jwtIssuer, 60)
	if err != nil {
		panic(err)
	}
	return tok
}

// Fail fuerza una respuesta status con body para method+path (ruta exacta).
func (b *Backend) Fail(method, path string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = failure{status: status, body: body}
}

// Requests peticiones recibidas, en orden.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Request, len(b.requests))
	copy(out, b.requests)
	return out
}

// Count cantidad de peticiones recibidas para method+path.
func (b *Backend) Count(method, path string) int {
	n := 0
	for _, r := range b.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// ResetRequests olvida las peticiones registradas.
func (b *Backend) ResetRequests() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = nil
}

// Shop estado actual de una tienda.
func (b *Backend) Shop(id int64) (entity.Shop, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.shops[id]
	if !ok {
		return entity.Shop{}, false
	}
	return *s, true
}

// Items ítems actuales de una tienda, ordenados por id.
func (b *Backend) Items(shopID int64) []entity.Item {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []entity.Item
	for _, it := range b.items {
		if it.ShopID == shopID {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Employees empleados actuales de una tienda, ordenados por id.
func (b *Backend) Employees(shopID int64) []entity.Employee {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []entity.Employee
	for _, e := range b.employees {
		if e.ShopID == shopID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// User estado actual de un usuario.
func (b *Backend) User(id int64) (entity.User, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.users[id]
	if !ok {
		return entity.User{}, false
	}
	return u.User, true
}

// ── Middlewares ───────────────────────────────────────────────────────────────

// record registra la petición y aplica fallos forzados.
func (b *Backend) record(c *fiber.Ctx) error {
	header := http.Header{}
	c.Request().Header.VisitAll(func(k, v []byte) {
		header.Add(string(k), string(v))
	})
	req := Request{
		Method: c.Method(),
		Path:   c.Path(),
		Body:   append([]byte(nil), c.Body()...),
		Header: header,
	}
	b.mu.Lock()
	b.requests = append(b.requests, req)
	f, forced := b.failures[req.Method+" "+req.Path]
	b.mu.Unlock()

	if forced {
		c.Status(f.status)
		if f.body == "" {
			return nil
		}
		return c.SendString(f.body)
	}
	return c.Next()
}

const localClaims = "claims"

// authenticate valida el Bearer token y deja los claims en c.Locals.
func authenticate(c *fiber.Ctx) error {
	parts := strings.SplitN(c.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token requerido"})
	}
	claims, err := pkgjwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
	}
	c.Locals(localClaims, claims)
	return c.Next()
}

// requireRole deja pasar sólo los roles indicados.
func requireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := entity.Role(claimsOf(c).Role)
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permisos insuficientes"})
	}
}

func claimsOf(c *fiber.Ctx) *pkgjwt.Claims {
	claims, _ := c.Locals(localClaims).(*pkgjwt.Claims)
	if claims == nil {
		return &pkgjwt.Claims{}
	}
	return claims
}

func (b *Backend) id() int64 {
	b.nextID++
	return b.nextID
}
