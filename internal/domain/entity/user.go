package entity

import "time"

// Roles de navegación de la aplicación.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleWorker  = "worker"
)

// UserProfile perfil almacenado de un usuario. La identidad la emite un proveedor
// externo; aquí solo se guarda lo necesario para auditoría y navegación.
type UserProfile struct {
	ID        string // id del proveedor de identidad
	FullName  string
	Email     string
	Role      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
