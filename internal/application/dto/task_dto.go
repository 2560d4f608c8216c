package dto

import "time"

// Las tareas conservan claves camelCase en el JSON: es el contrato que ya
// consume el front de proyectos.

// TaskRequest entrada de creación/actualización de tareas numeradas.
type TaskRequest struct {
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	AssignedTo     string     `json:"assignedTo"`
	StartDate      *time.Time `json:"startDate"`
	DueDate        *time.Time `json:"dueDate"`
	CompletedDate  *time.Time `json:"completedDate"`
	EstimatedHours float64    `json:"estimatedHours"`
	ActualHours    float64    `json:"actualHours"`
	Notes          string     `json:"notes"`
}

// TaskDTO tarea numerada para respuestas.
type TaskDTO struct {
	ID             string     `json:"id"`
	ProjectID      string     `json:"projectId"`
	TaskNumber     int        `json:"taskNumber"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	AssignedTo     string     `json:"assignedTo,omitempty"`
	StartDate      *time.Time `json:"startDate"`
	DueDate        *time.Time `json:"dueDate"`
	CompletedDate  *time.Time `json:"completedDate"`
	EstimatedHours float64    `json:"estimatedHours"`
	ActualHours    float64    `json:"actualHours"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// SimpleTaskRequest entrada de tareas simples.
type SimpleTaskRequest struct {
	Task      string     `json:"task"`
	Deadline  *time.Time `json:"deadline"`
	Completed *bool      `json:"completed"`
}

// SimpleTaskDTO tarea simple para respuestas.
type SimpleTaskDTO struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"projectId"`
	Task      string     `json:"task"`
	CreatedBy string     `json:"createdBy"`
	Deadline  *time.Time `json:"deadline"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"createdAt"`
}
