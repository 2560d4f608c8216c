package dto

// SearchResultDTO resultado individual de la búsqueda global, decorado con la
// sección, el ícono y la URL de destino que consume la barra de búsqueda.
type SearchResultDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Section     string `json:"section"` // inventory | equipment | projects | tasks
	URL         string `json:"url"`
	Icon        string `json:"icon"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// SearchResponse resultados agrupados por sección.
type SearchResponse struct {
	Products  []SearchResultDTO `json:"products"`
	Equipment []SearchResultDTO `json:"equipment"`
	Projects  []SearchResultDTO `json:"projects"`
	Tasks     []SearchResultDTO `json:"tasks"`
}
