package inventory

import (
	"strings"

	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
)

// Mapeo de nombres legacy de tipo de transacción (UI antigua) a tipos canónicos.
var legacyTypes = map[string]string{
	"pull":    entity.TransactionTypeOUT,
	"receive": entity.TransactionTypeIN,
	"return":  entity.TransactionTypeRETURN,
}

// NormalizeType resuelve un tipo de transacción a su forma canónica.
// Acepta los tipos canónicos (IN/OUT/RETURN/ADJUSTMENT, sin importar mayúsculas)
// y los nombres legacy pull/receive/return. Devuelve "" si el tipo no es válido.
func NormalizeType(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	switch strings.ToUpper(s) {
	case entity.TransactionTypeIN, entity.TransactionTypeOUT,
		entity.TransactionTypeRETURN, entity.TransactionTypeADJUSTMENT:
		return strings.ToUpper(s)
	}
	if t, ok := legacyTypes[strings.ToLower(s)]; ok {
		return t
	}
	return ""
}

// ResolveType aplica la precedencia documentada entre el campo canónico y el
// legacy: el nombre canónico gana y el legacy es fallback.
func ResolveType(canonical, legacy string) string {
	if t := NormalizeType(canonical); t != "" {
		return t
	}
	return NormalizeType(legacy)
}

// StockEffect devuelve el multiplicador de stock de un tipo canónico:
// +1 para IN/RETURN/ADJUSTMENT, -1 para OUT, 0 si el tipo no es válido.
// La cantidad del ledger es siempre positiva; el tipo define el signo.
func StockEffect(canonicalType string) int {
	switch canonicalType {
	case entity.TransactionTypeIN, entity.TransactionTypeRETURN, entity.TransactionTypeADJUSTMENT:
		return 1
	case entity.TransactionTypeOUT:
		return -1
	}
	return 0
}
