package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	appinv "github.com/buildtrack/buildtrack-api/internal/application/inventory"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
)

func TestRecent_AltaRecienCreadaEncabezaElFeed(t *testing.T) {
	uc, txRepo, _ := newCreateFixture(100, 2)
	query := appinv.NewTransactionQueryUseCase(txRepo)

	// Dos movimientos previos y luego la salida más reciente.
	for _, qty := range []int64{5, 8} {
		_, err := uc.Create(context.Background(), testActor, dto.CreateTransactionRequest{
			ProductID:       "prod-1",
			TransactionType: "IN",
			Quantity:        decimal.NewFromInt(qty),
		})
		require.NoError(t, err)
	}
	created, err := uc.Create(context.Background(), testActor, dto.CreateTransactionRequest{
		ProductID:       "prod-1",
		TransactionType: "OUT",
		Quantity:        decimal.NewFromInt(3),
	})
	require.NoError(t, err)

	recent, err := query.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, created.Transaction.ID, recent[0].ID, "la última alta debe encabezar el feed")
	assert.Equal(t, created.Transaction.Number, recent[0].Number)
	assert.Equal(t, entity.TransactionTypeOUT, recent[0].Type)
	assert.Equal(t, 10, txRepo.lastFilter.Limit, "límite por defecto del feed")
}

func TestList_FiltroDeTipoLegacySeNormaliza(t *testing.T) {
	txRepo := &fakeTransactionRepo{}
	query := appinv.NewTransactionQueryUseCase(txRepo)

	_, err := query.List(context.Background(), appinv.TransactionQuery{Type: "pull"})
	require.NoError(t, err)
	assert.Equal(t, []string{entity.TransactionTypeOUT}, txRepo.lastFilter.Types)
}
