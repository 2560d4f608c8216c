package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/inventory"
)

// TestNormalizeType_Legacy verifica el mapeo de los nombres legacy de la UI
// antigua a los tipos canónicos del ledger.
func TestNormalizeType_Legacy(t *testing.T) {
	assert.Equal(t, entity.TransactionTypeOUT, inventory.NormalizeType("pull"),
		"pull debe mapear a OUT")
	assert.Equal(t, entity.TransactionTypeIN, inventory.NormalizeType("receive"),
		"receive debe mapear a IN")
	assert.Equal(t, entity.TransactionTypeRETURN, inventory.NormalizeType("return"),
		"return debe mapear a RETURN")
}

func TestNormalizeType_CanonicosYCase(t *testing.T) {
	assert.Equal(t, "IN", inventory.NormalizeType("IN"))
	assert.Equal(t, "OUT", inventory.NormalizeType("out"))
	assert.Equal(t, "RETURN", inventory.NormalizeType("Return"))
	assert.Equal(t, "ADJUSTMENT", inventory.NormalizeType("adjustment"))
}

func TestNormalizeType_Invalido(t *testing.T) {
	assert.Empty(t, inventory.NormalizeType(""))
	assert.Empty(t, inventory.NormalizeType("  "))
	assert.Empty(t, inventory.NormalizeType("transfer-out"))
	assert.Empty(t, inventory.NormalizeType("push"))
}

// TestResolveType_PrecedenciaCanonica el campo canónico gana sobre el legacy;
// el legacy solo aplica como fallback.
func TestResolveType_PrecedenciaCanonica(t *testing.T) {
	assert.Equal(t, "IN", inventory.ResolveType("IN", "pull"),
		"el nombre canónico debe ganar sobre el legacy")
	assert.Equal(t, "OUT", inventory.ResolveType("", "pull"),
		"sin canónico, el legacy es fallback")
	assert.Empty(t, inventory.ResolveType("", ""),
		"sin ninguno de los dos no hay tipo")
}

func TestStockEffect(t *testing.T) {
	assert.Equal(t, 1, inventory.StockEffect(entity.TransactionTypeIN))
	assert.Equal(t, 1, inventory.StockEffect(entity.TransactionTypeRETURN))
	assert.Equal(t, -1, inventory.StockEffect(entity.TransactionTypeOUT))
	assert.Equal(t, 0, inventory.StockEffect("bogus"))
}
