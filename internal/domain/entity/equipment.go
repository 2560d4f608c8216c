package entity

import "time"

// Estados de un equipo.
const (
	EquipmentStatusAvailable   = "available"
	EquipmentStatusInUse       = "in_use"
	EquipmentStatusMaintenance = "maintenance"
)

// Acciones del ledger de equipos.
const (
	EquipmentActionAssignProject = "assign_to_project"
	EquipmentActionAssignPerson  = "assign_to_person"
	EquipmentActionMaintenance   = "move_to_maintenance"
	EquipmentActionCheckIn       = "check_in"
)

// Equipment representa una herramienta o máquina de la empresa.
type Equipment struct {
	ID              string
	EquipmentNumber string
	Name            string
	Category        string
	Model           string
	SerialNumber    string
	Status          string
	Location        string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EquipmentTransaction entrada del ledger de acciones sobre equipos
// (asignación, mantenimiento, devolución). Append-only, igual que el de inventario.
type EquipmentTransaction struct {
	ID                 string
	EquipmentID        string
	Action             string
	ProjectID          string
	PersonName         string
	ExpectedReturnDate *time.Time
	Notes              string
	DoneBy             string
	CreatedAt          time.Time
}

// EquipmentTransactionWithDetails fila del ledger con campos de despliegue del equipo.
type EquipmentTransactionWithDetails struct {
	EquipmentTransaction
	EquipmentName   string
	EquipmentNumber string
	Category        string
}
