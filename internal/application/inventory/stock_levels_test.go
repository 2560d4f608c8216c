package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	appinv "github.com/buildtrack/buildtrack-api/internal/application/inventory"
	"github.com/buildtrack/buildtrack-api/internal/domain"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

func stockRow(id string, current, min, max, out30 int64) repository.StockLevelRow {
	return repository.StockLevelRow{
		Product: entity.Product{
			ID:            id,
			Name:          "Producto " + id,
			SKU:           "SKU-" + id,
			CurrentStock:  decimal.NewFromInt(current),
			MinStockLevel: decimal.NewFromInt(min),
			MaxStockLevel: decimal.NewFromInt(max),
		},
		OutLast30d: decimal.NewFromInt(out30),
	}
}

func TestLevels_ClasificacionYMaximoEfectivo(t *testing.T) {
	repo := newFakeProductRepo()
	repo.stockRows = []repository.StockLevelRow{
		stockRow("a", 5, 10, 0, 0),   // <= 50% del mínimo
		stockRow("b", 10, 10, 0, 0),  // == mínimo
		stockRow("c", 16, 10, 0, 90), // > 150% del mínimo
		stockRow("d", 12, 10, 40, 0), // entre mínimo y 150%
	}
	repo.categories = []string{"Cemento", "Acero"}
	uc := appinv.NewStockLevelUseCase(repo)

	resp, err := uc.Levels(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, resp.Items, 4)

	assert.Equal(t, "critical", resp.Items[0].Status)
	assert.Equal(t, "low", resp.Items[1].Status)
	assert.Equal(t, "good", resp.Items[2].Status)
	assert.Equal(t, "normal", resp.Items[3].Status)

	// Sin máximo configurado el efectivo es 2x el mínimo; el configurado gana.
	assert.True(t, resp.Items[0].MaxLevel.Equal(decimal.NewFromInt(20)))
	assert.True(t, resp.Items[3].MaxLevel.Equal(decimal.NewFromInt(40)))

	// 90 salidas en 30 días = 3 por día.
	assert.True(t, resp.Items[2].AverageUsage.Equal(decimal.NewFromInt(3)))

	assert.Equal(t, []string{"Cemento", "Acero"}, resp.Categories)
}

func TestReorderSuggestions_CantidadHastaElMaximoEfectivo(t *testing.T) {
	below := &entity.Product{
		ID:            "prod-low",
		Name:          "Varilla 3/8",
		SKU:           "VAR-038",
		CurrentStock:  decimal.NewFromInt(4),
		MinStockLevel: decimal.NewFromInt(10),
	}
	ok := &entity.Product{
		ID:            "prod-ok",
		CurrentStock:  decimal.NewFromInt(50),
		MinStockLevel: decimal.NewFromInt(10),
	}
	uc := appinv.NewStockLevelUseCase(newFakeProductRepo(below, ok))

	out, err := uc.ReorderSuggestions(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1, "solo los productos bajo mínimo sugieren pedido")

	assert.Equal(t, "prod-low", out[0].ProductID)
	assert.True(t, out[0].MaxStockLevel.Equal(decimal.NewFromInt(20)), "máximo efectivo 2x mínimo")
	assert.True(t, out[0].SuggestedQuantity.Equal(decimal.NewFromInt(16)), "20 - 4 = 16")
}

func TestUpdateSettings_Validaciones(t *testing.T) {
	repo := newFakeProductRepo(&entity.Product{ID: "prod-1"})
	uc := appinv.NewStockLevelUseCase(repo)

	err := uc.UpdateSettings(context.Background(), dto.UpdateStockSettingsRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "product_id es obligatorio")

	err = uc.UpdateSettings(context.Background(), dto.UpdateStockSettingsRequest{
		ProductID: "prod-1",
		MinLevel:  decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "niveles negativos se rechazan")

	err = uc.UpdateSettings(context.Background(), dto.UpdateStockSettingsRequest{
		ProductID:    "prod-1",
		CurrentStock: decimal.NewFromInt(30),
		MinLevel:     decimal.NewFromInt(10),
		MaxLevel:     decimal.NewFromInt(60),
		Location:     "Bodega B",
	})
	require.NoError(t, err)
	assert.True(t, repo.products["prod-1"].CurrentStock.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "Bodega B", repo.products["prod-1"].Location)
}

func TestList_LimiteAcotadoA200(t *testing.T) {
	txRepo := &fakeTransactionRepo{}
	uc := appinv.NewTransactionQueryUseCase(txRepo)

	_, err := uc.List(context.Background(), appinv.TransactionQuery{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, dto.MaxListLimit, txRepo.lastFilter.Limit, "el límite se acota a %d", dto.MaxListLimit)

	_, err = uc.List(context.Background(), appinv.TransactionQuery{})
	require.NoError(t, err)
	assert.Equal(t, 50, txRepo.lastFilter.Limit, "sin límite explícito aplica el default")
}

func TestList_FiltroTipoLegacyNormalizado(t *testing.T) {
	txRepo := &fakeTransactionRepo{}
	uc := appinv.NewTransactionQueryUseCase(txRepo)

	_, err := uc.List(context.Background(), appinv.TransactionQuery{Type: "pull"})
	require.NoError(t, err)
	assert.Equal(t, []string{entity.TransactionTypeOUT}, txRepo.lastFilter.Types)
}
