package entity

// Employee representa un empleado de una tienda.
// Role es libre ("employee", "manager", ...) y no tiene relación con Role de User.
type Employee struct {
	ID     int64
	ShopID int64
	Name   string
	Email  string
	Role   string
}
