package entity

// Shop representa una tienda. OwnerID referencia a un User; la pertenencia la
// verifica el backend, no el cliente.
type Shop struct {
	ID          int64
	Name        string
	Description string
	OwnerID     int64
}
