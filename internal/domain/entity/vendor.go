package entity

import "time"

// Vendor proveedor de materiales o servicios.
type Vendor struct {
	ID          string
	Name        string
	ContactName string
	Email       string
	Phone       string
	Category    string
	Status      string // active, inactive
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
