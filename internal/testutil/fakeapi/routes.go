package fakeapi

import (
	"encoding/json"
	"errors"
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shop-crm/internal/application/dto"
	"github.com/jhoicas/shop-crm/internal/domain/entity"
	pkgjwt "github.com/jhoicas/shop-crm/pkg/jwt"
)

func (b *Backend) routes() *fiber.App {
	app := fiber.New(fiber.Config{
		Immutable:             true,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{Code: "ERROR", Message: err.Error()})
		},
	})
	app.Use(b.record)

	app.Post("/auth/login", b.login)
	app.Post("/auth/register", b.register)
	app.Get("/auth/me", authenticate, b.me)

	admin := app.Group("/admin", authenticate, requireRole(entity.RoleAdmin))
	admin.Get("/shops", b.listAllShops)
	admin.Post("/shops", b.createShop)
	admin.Delete("/shops/:id", b.deleteShop)
	admin.Get("/users", b.listUsers)
	admin.Post("/users", b.createUser)
	admin.Put("/users/:id", b.updateUser)
	admin.Delete("/users/:id", b.deleteUser)

	owner := app.Group("/owner", authenticate)
	managers := requireRole(entity.RoleAdmin, entity.RoleOwner)
	owner.Get("/shops", b.listOwnShops)
	owner.Get("/shops/:id", b.getShop)
	owner.Put("/shops/:id", managers, b.updateShop)
	owner.Get("/shops/:id/employees", b.listEmployees)
	owner.Post("/shops/:id/employees", managers, b.createEmployee)
	owner.Delete("/shops/:id/employees/:eid", managers, b.deleteEmployee)
	owner.Get("/shops/:id/items", b.listItems)
	owner.Post("/shops/:id/items", managers, b.createItem)
	owner.Put("/shops/:id/items/:iid", managers, b.updateItem)
	owner.Delete("/shops/:id/items/:iid", managers, b.deleteItem)

	return app
}

func errorJSON(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

func invalidID(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, "INVALID_ID", "id inválido")
}

// ── Auth ──────────────────────────────────────────────────────────────────────

func (b *Backend) login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	b.mu.Lock()
	var found *userRecord
	for _, u := range b.users {
		if u.Email == in.Email && u.password == in.Password {
			found = u
			break
		}
	}
	b.mu.Unlock()
	if found == nil {
		return errorJSON(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "email o contraseña incorrectos")
	}
	tok, err := pkgjwt.Generate(jwtSecret, found.ID, found.Email, string(found.Role), jwtIssuer, 60)
	if err != nil {
		return err
	}
	resp := dto.LoginResponse{Token: tok}
	if b.embedUser {
		u := dto.FromUser(found.User)
		resp.User = &u
	}
	return c.JSON(resp)
}

func (b *Backend) register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Role == "" {
		in.Role = string(entity.RoleUser)
	}
	u, ok := b.addUser(entity.User{FirstName: in.FirstName, LastName: in.LastName, Email: in.Email, Role: entity.Role(in.Role)}, in.Password)
	if !ok {
		return errorJSON(c, fiber.StatusConflict, "EMAIL_TAKEN", "el email ya está registrado")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromUser(u))
}

func (b *Backend) me(c *fiber.Ctx) error {
	u, ok := b.User(claimsOf(c).UserID)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "usuario inexistente")
	}
	return c.JSON(dto.FromUser(u))
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

func (b *Backend) addUser(u entity.User, password string) (entity.User, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, existing := range b.users {
		if existing.Email == u.Email {
			return entity.User{}, false
		}
	}
	u.ID = b.id()
	b.users[u.ID] = &userRecord{User: u, password: password}
	return u, true
}

func (b *Backend) listUsers(c *fiber.Ctx) error {
	b.mu.Lock()
	out := make([]dto.UserResponse, 0, len(b.users))
	for _, u := range b.users {
		out = append(out, dto.FromUser(u.User))
	}
	b.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(out)
}

func (b *Backend) createUser(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	u, ok := b.addUser(entity.User{FirstName: in.FirstName, LastName: in.LastName, Email: in.Email, Role: entity.Role(in.Role)}, in.Password)
	if !ok {
		return errorJSON(c, fiber.StatusConflict, "EMAIL_TAKEN", "el email ya está registrado")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromUser(u))
}

func (b *Backend) updateUser(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateUserRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.users[id]
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "usuario no encontrado")
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Role != nil {
		u.Role = entity.Role(*in.Role)
	}
	if in.Password != nil {
		u.password = *in.Password
	}
	return c.JSON(dto.FromUser(u.User))
}

func (b *Backend) deleteUser(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.users[id]; !ok {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "usuario no encontrado")
	}
	delete(b.users, id)
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Tiendas ───────────────────────────────────────────────────────────────────

func (b *Backend) shopList(match func(entity.Shop) bool) []dto.ShopResponse {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]dto.ShopResponse, 0, len(b.shops))
	for _, s := range b.shops {
		if match(*s) {
			out = append(out, dto.FromShop(*s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (b *Backend) listAllShops(c *fiber.Ctx) error {
	return c.JSON(b.shopList(func(entity.Shop) bool { return true }))
}

func (b *Backend) listOwnShops(c *fiber.Ctx) error {
	uid := claimsOf(c).UserID
	return c.JSON(b.shopList(func(s entity.Shop) bool { return s.OwnerID == uid }))
}

// shopFor tienda :id visible para el llamador. Un owner sólo ve las suyas.
// Si devuelve nil la respuesta de error ya fue escrita.
func (b *Backend) shopFor(c *fiber.Ctx) (*entity.Shop, error) {
	id, ok := paramID(c, "id")
	if !ok {
		return nil, invalidID(c)
	}
	claims := claimsOf(c)
	b.mu.Lock()
	s, ok := b.shops[id]
	b.mu.Unlock()
	if !ok {
		return nil, errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "tienda no encontrada")
	}
	if entity.Role(claims.Role) == entity.RoleOwner && s.OwnerID != claims.UserID {
		return nil, errorJSON(c, fiber.StatusForbidden, "FORBIDDEN", "la tienda no le pertenece")
	}
	return s, nil
}

func (b *Backend) getShop(c *fiber.Ctx) error {
	s, err := b.shopFor(c)
	if err != nil || s == nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(dto.FromShop(*s))
}

func (b *Backend) createShop(c *fiber.Ctx) error {
	var in dto.CreateShopRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	s := &entity.Shop{ID: b.id(), Name: in.Name, Description: in.Description, OwnerID: in.OwnerID}
	b.shops[s.ID] = s
	return c.Status(fiber.StatusCreated).JSON(dto.FromShop(*s))
}

func (b *Backend) updateShop(c *fiber.Ctx) error {
	s, err := b.shopFor(c)
	if err != nil || s == nil {
		return err
	}
	var in dto.UpdateShopRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.OwnerID != nil {
		s.OwnerID = *in.OwnerID
	}
	return c.JSON(dto.FromShop(*s))
}

// deleteShop borra la tienda con sus empleados e ítems.
func (b *Backend) deleteShop(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.shops[id]; !ok {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "tienda no encontrada")
	}
	delete(b.shops, id)
	for eid, e := range b.employees {
		if e.ShopID == id {
			delete(b.employees, eid)
		}
	}
	for iid, it := range b.items {
		if it.ShopID == id {
			delete(b.items, iid)
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Empleados ─────────────────────────────────────────────────────────────────

func (b *Backend) listEmployees(c *fiber.Ctx) error {
	s, err := b.shopFor(c)
	if err != nil || s == nil {
		return err
	}
	out := make([]dto.EmployeeResponse, 0)
	for _, e := range b.Employees(s.ID) {
		out = append(out, dto.FromEmployee(e))
	}
	return c.JSON(out)
}

func (b *Backend) createEmployee(c *fiber.Ctx) error {
	s, err := b.shopFor(c)
	if err != nil || s == nil {
		return err
	}
	var in dto.CreateEmployeeRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	e := &entity.Employee{ID: b.id(), ShopID: s.ID, Name: in.Name, Email: in.Email, Role: in.Role}
	b.employees[e.ID] = e
	return c.Status(fiber.StatusCreated).JSON(dto.FromEmployee(*e))
}

func (b *Backend) deleteEmployee(c *fiber.Ctx) error {
	s, err := b.shopFor(c)
	if err != nil || s == nil {
		return err
	}
	eid, ok := paramID(c, "eid")
	if !ok {
		return invalidID(c)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.employees[eid]
	if !ok || e.ShopID != s.ID {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "empleado no encontrado")
	}
	delete(b.employees, eid)
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Ítems ─────────────────────────────────────────────────────────────────────

func (b *Backend) listItems(c *fiber.Ctx) error {
	s, err := b.shopFor(c)
	if err != nil || s == nil {
		return err
	}
	out := make([]dto.ItemResponse, 0)
	for _, it := range b.Items(s.ID) {
		out = append(out, dto.FromItem(it))
	}
	return c.JSON(out)
}

func (b *Backend) createItem(c *fiber.Ctx) error {
	s, err := b.shopFor(c)
	if err != nil || s == nil {
		return err
	}
	var in dto.CreateItemRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if !in.PurchasePrice.IsPositive() || !in.SalePrice.IsPositive() {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "INVALID_PRICE", "los precios deben ser positivos")
	}
	now := b.now()
	b.mu.Lock()
	defer b.mu.Unlock()
	it := &entity.Item{
		ID: b.id(), ShopID: s.ID, Name: in.Name, Brand: in.Brand, Category: in.Category, Size: in.Size,
		PurchasePrice: in.PurchasePrice, SalePrice: in.SalePrice, PhotoURL: in.PhotoURL,
		CreatedAt: now, UpdatedAt: now,
	}
	b.items[it.ID] = it
	return c.Status(fiber.StatusCreated).JSON(dto.FromItem(*it))
}

func (b *Backend) updateItem(c *fiber.Ctx) error {
	s, err := b.shopFor(c)
	if err != nil || s == nil {
		return err
	}
	iid, ok := paramID(c, "iid")
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateItemRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	now := b.now()
	b.mu.Lock()
	defer b.mu.Unlock()
	it, ok := b.items[iid]
	if !ok || it.ShopID != s.ID {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "ítem no encontrado")
	}
	if in.Name != nil {
		it.Name = *in.Name
	}
	if in.Brand != nil {
		it.Brand = *in.Brand
	}
	if in.Category != nil {
		it.Category = *in.Category
	}
	if in.Size != nil {
		it.Size = *in.Size
	}
	if in.PurchasePrice != nil {
		it.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		it.SalePrice = *in.SalePrice
	}
	if in.PhotoURL != nil {
		it.PhotoURL = *in.PhotoURL
	}
	it.UpdatedAt = now
	return c.JSON(dto.FromItem(*it))
}

func (b *Backend) deleteItem(c *fiber.Ctx) error {
	s, err := b.shopFor(c)
	if err != nil || s == nil {
		return err
	}
	iid, ok := paramID(c, "iid")
	if !ok {
		return invalidID(c)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	it, ok := b.items[iid]
	if !ok || it.ShopID != s.ID {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "ítem no encontrado")
	}
	delete(b.items, iid)
	return c.SendStatus(fiber.StatusNoContent)
}
