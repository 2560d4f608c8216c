package entity

import "time"

// Project representa una obra o proyecto de construcción.
type Project struct {
	ID          string
	JobNumber   string
	Name        string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectTask tarea numerada de un proyecto, con seguimiento de horas.
type ProjectTask struct {
	ID             string
	ProjectID      string
	TaskNumber     int
	Name           string
	Description    string
	Status         string // pending, in_progress, completed, blocked
	Priority       string // low, medium, high
	AssignedTo     string
	StartDate      *time.Time
	DueDate        *time.Time
	CompletedDate  *time.Time
	EstimatedHours float64
	ActualHours    float64
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SimpleTask tarea ligera de proyecto, sin numeración ni seguimiento de horas.
type SimpleTask struct {
	ID        string
	ProjectID string
	Task      string
	CreatedBy string // texto plano
	Deadline  *time.Time
	Completed bool
	CreatedAt time.Time
}
