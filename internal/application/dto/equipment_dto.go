package dto

import "time"

// CreateEquipmentRequest entrada del POST /equipment.
type CreateEquipmentRequest struct {
	EquipmentNumber string `json:"equipment_number"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Model           string `json:"model"`
	SerialNumber    string `json:"serial_number"`
	Location        string `json:"location"`
	Notes           string `json:"notes"`
}

// EquipmentActionRequest entrada del POST /equipment/:id/actions.
type EquipmentActionRequest struct {
	Action             string     `json:"action"` // assign_to_project | assign_to_person | move_to_maintenance | check_in
	ProjectID          string     `json:"project_id"`
	PersonName         string     `json:"person_name"`
	ExpectedReturnDate *time.Time `json:"expected_return_date"`
	Notes              string     `json:"notes"`
}

// EquipmentDTO equipo para respuestas.
type EquipmentDTO struct {
	ID              string    `json:"id"`
	EquipmentNumber string    `json:"equipment_number"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Model           string    `json:"model,omitempty"`
	SerialNumber    string    `json:"serial_number,omitempty"`
	Status          string    `json:"status"`
	Location        string    `json:"location,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
