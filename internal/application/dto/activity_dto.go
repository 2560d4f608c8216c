package dto

// ActivityDTO entrada del feed de actividad reciente (equipos + inventario).
type ActivityDTO struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"` // equipment | inventory | system
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Timestamp   string         `json:"timestamp"` // relativo: "Just now", "5 minutes ago", ...
	Status      string         `json:"status"`    // completed | warning
	User        string         `json:"user"`
	Link        string         `json:"link"`
	Metadata    map[string]any `json:"metadata"`
}
