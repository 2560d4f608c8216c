package entity

import "time"

// APIKey llave de integración emitida por un administrador.
// La llave en claro se muestra una sola vez al crearla; en reposo solo se
// guarda su hash SHA-256 y los últimos cuatro caracteres para el listado.
type APIKey struct {
	ID          string
	Name        string
	KeyHash     string // hex(sha256(llave en claro))
	KeyLast4    string
	Permissions []string
	IsActive    bool
	LastUsedAt  *time.Time
	CreatedBy   string
	CreatedAt   time.Time
}
