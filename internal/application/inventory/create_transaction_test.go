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
)

var testActor = appinv.Actor{ID: "user-1", Name: "Ana Obras", Email: "ana@buildtrack.test"}

func newCreateFixture(stock, mauc float64) (*appinv.CreateTransactionUseCase, *fakeTransactionRepo, *fakeProductRepo) {
	product := &entity.Product{
		ID:            "prod-1",
		SKU:           "CEM-001",
		Name:          "Cemento gris 50kg",
		UnitOfMeasure: "saco",
		CurrentStock:  decimal.NewFromFloat(stock),
		MAUC:          decimal.NewFromFloat(mauc),
		IsActive:      true,
	}
	productRepo := newFakeProductRepo(product)
	txRepo := &fakeTransactionRepo{}
	uc := appinv.NewCreateTransactionUseCase(&fakeTxRunner{txRepo: txRepo, productRepo: productRepo})
	return uc, txRepo, productRepo
}

func TestCreate_TipoLegacyPullDescuentaStock(t *testing.T) {
	uc, txRepo, productRepo := newCreateFixture(100, 25.5)

	resp, err := uc.Create(context.Background(), testActor, dto.CreateTransactionRequest{
		LegacyProductID: "prod-1",
		LegacyType:      "pull",
		Quantity:        decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TransactionTypeOUT, resp.Transaction.Type, "pull debe normalizarse a OUT")
	assert.True(t, resp.StockUpdated)
	assert.True(t, resp.NewStockLevel.Equal(decimal.NewFromInt(70)), "100 - 30 = 70, quedó %s", resp.NewStockLevel)
	assert.True(t, productRepo.products["prod-1"].CurrentStock.Equal(decimal.NewFromInt(70)))

	require.Len(t, txRepo.rows, 1)
	row := txRepo.rows[0]
	assert.Equal(t, entity.TransactionStatusCompleted, row.Status)
	assert.True(t, row.StockBefore.Equal(decimal.NewFromInt(100)))
	assert.True(t, row.StockAfter.Equal(decimal.NewFromInt(70)))
	assert.Regexp(t, `^TXN-\d{4}-\d{6}$`, row.Number)
}

func TestCreate_TipoCanonicoGanaAlLegacy(t *testing.T) {
	uc, _, _ := newCreateFixture(10, 1)

	resp, err := uc.Create(context.Background(), testActor, dto.CreateTransactionRequest{
		ProductID:       "prod-1",
		TransactionType: "IN",
		LegacyType:      "pull",
		Quantity:        decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypeIN, resp.Transaction.Type)
	assert.True(t, resp.NewStockLevel.Equal(decimal.NewFromInt(15)))
}

func TestCreate_CantidadNoPositivaRechazadaAntesDePersistir(t *testing.T) {
	uc, txRepo, productRepo := newCreateFixture(100, 1)

	for _, qty := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-4)} {
		_, err := uc.Create(context.Background(), testActor, dto.CreateTransactionRequest{
			ProductID:       "prod-1",
			TransactionType: "IN",
			Quantity:        qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %s debe rechazarse", qty)
	}
	assert.Empty(t, txRepo.rows, "nada debe llegar al ledger")
	assert.True(t, productRepo.products["prod-1"].CurrentStock.Equal(decimal.NewFromInt(100)))
}

func TestCreate_TipoInvalidoRechazado(t *testing.T) {
	uc, txRepo, _ := newCreateFixture(100, 1)

	_, err := uc.Create(context.Background(), testActor, dto.CreateTransactionRequest{
		ProductID:       "prod-1",
		TransactionType: "destroy",
		Quantity:        decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, txRepo.rows)
}

func TestCreate_StockInsuficienteErrorTipadoSinRastro(t *testing.T) {
	uc, txRepo, productRepo := newCreateFixture(10, 1)

	_, err := uc.Create(context.Background(), testActor, dto.CreateTransactionRequest{
		ProductID:       "prod-1",
		TransactionType: "OUT",
		Quantity:        decimal.NewFromInt(11),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, txRepo.rows, "una salida fallida no deja rastro en el ledger")
	assert.True(t, productRepo.products["prod-1"].CurrentStock.Equal(decimal.NewFromInt(10)), "el stock no debe cambiar")
}

func TestCreate_CostoUnitarioPorDefectoEsMAUC(t *testing.T) {
	uc, txRepo, _ := newCreateFixture(100, 12.5)

	resp, err := uc.Create(context.Background(), testActor, dto.CreateTransactionRequest{
		ProductID:       "prod-1",
		TransactionType: "receive",
		Quantity:        decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	assert.True(t, resp.Transaction.UnitCost.Equal(decimal.NewFromFloat(12.5)))
	assert.True(t, resp.Transaction.TotalValue.Equal(decimal.NewFromInt(50)), "4 * 12.50 = 50")
	assert.True(t, txRepo.rows[0].UnitCost.Equal(decimal.NewFromFloat(12.5)))
}

func TestCreate_CostoUnitarioExplicitoSeRespeta(t *testing.T) {
	uc, _, _ := newCreateFixture(100, 12.5)

	cost := decimal.NewFromInt(9)
	resp, err := uc.Create(context.Background(), testActor, dto.CreateTransactionRequest{
		ProductID:       "prod-1",
		TransactionType: "IN",
		Quantity:        decimal.NewFromInt(2),
		UnitCost:        &cost,
	})
	require.NoError(t, err)
	assert.True(t, resp.Transaction.UnitCost.Equal(cost))
	assert.True(t, resp.Transaction.TotalValue.Equal(decimal.NewFromInt(18)))
}

func TestCreate_DoneByPorDefectoDelActor(t *testing.T) {
	uc, txRepo, _ := newCreateFixture(100, 1)

	_, err := uc.Create(context.Background(), testActor, dto.CreateTransactionRequest{
		ProductID:       "prod-1",
		TransactionType: "IN",
		Quantity:        decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	row := txRepo.rows[0]
	assert.Equal(t, testActor.Name, row.DoneBy)
	assert.Equal(t, testActor.ID, row.DoneByID)
	assert.Equal(t, testActor.Email, row.DoneByEmail)
}

func TestCreate_ProductoInexistente(t *testing.T) {
	uc, _, _ := newCreateFixture(100, 1)

	_, err := uc.Create(context.Background(), testActor, dto.CreateTransactionRequest{
		ProductID:       "no-existe",
		TransactionType: "IN",
		Quantity:        decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReverse_CompensaYMarcaOriginal(t *testing.T) {
	uc, txRepo, productRepo := newCreateFixture(100, 10)

	created, err := uc.Create(context.Background(), testActor, dto.CreateTransactionRequest{
		ProductID:       "prod-1",
		TransactionType: "IN",
		Quantity:        decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	require.True(t, productRepo.products["prod-1"].CurrentStock.Equal(decimal.NewFromInt(120)))

	rev, err := uc.Reverse(context.Background(), testActor, created.Transaction.ID, "captura duplicada")
	require.NoError(t, err)

	assert.Equal(t, entity.TransactionTypeOUT, rev.Transaction.Type, "el reverso de una entrada es una salida")
	assert.True(t, rev.NewStockLevel.Equal(decimal.NewFromInt(100)), "el stock vuelve al nivel previo")

	original, err := txRepo.GetByID(context.Background(), created.Transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusReversed, original.Status)
	assert.Equal(t, rev.Transaction.ID, original.ReversedByTransactionID)
}

func TestReverse_YaReversadaConflicto(t *testing.T) {
	uc, _, _ := newCreateFixture(100, 10)

	created, err := uc.Create(context.Background(), testActor, dto.CreateTransactionRequest{
		ProductID:       "prod-1",
		TransactionType: "IN",
		Quantity:        decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	_, err = uc.Reverse(context.Background(), testActor, created.Transaction.ID, "")
	require.NoError(t, err)

	_, err = uc.Reverse(context.Background(), testActor, created.Transaction.ID, "")
	assert.ErrorIs(t, err, domain.ErrConflict)
}
