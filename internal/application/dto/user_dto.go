package dto

import "time"

// UserProfileDTO perfil del usuario autenticado más su rol de navegación.
type UserProfileDTO struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	// Sections secciones de navegación habilitadas para el rol.
	Sections []string `json:"sections"`
}
