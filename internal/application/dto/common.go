package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MaxListLimit tope duro de filas por listado; los callers se recortan a este valor.
const MaxListLimit = 200

// ClampLimit normaliza un límite de listado al rango [1, MaxListLimit],
// aplicando def cuando viene vacío o inválido.
func ClampLimit(limit, def int) int {
	if limit <= 0 {
		limit = def
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return limit
}
