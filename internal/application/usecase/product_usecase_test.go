package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/application/usecase"
	"github.com/buildtrack/buildtrack-api/internal/domain"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

type fakeProductRepo struct {
	repository.ProductRepository
	products []*entity.Product
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeProductRepo) List(_ context.Context, _ repository.ProductFilter) ([]*entity.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) Update(_ context.Context, _ *entity.Product) error {
	return nil
}

func catalogProduct(id string, stock, min float64) *entity.Product {
	return &entity.Product{
		ID:            id,
		SKU:           "SKU-" + id,
		Name:          "Producto " + id,
		CurrentStock:  decimal.NewFromFloat(stock),
		MinStockLevel: decimal.NewFromFloat(min),
		MaxStockLevel: decimal.NewFromFloat(min * 5),
		IsActive:      true,
	}
}

func TestProductUpdate_NivelesSobrevivenUnUpdateParcial(t *testing.T) {
	product := catalogProduct("p1", 30, 10)
	product.MaxStockLevel = decimal.NewFromInt(50)
	repo := &fakeProductRepo{products: []*entity.Product{product}}
	uc := usecase.NewProductUseCase(repo)

	// Un PUT que solo renombra no debe tocar los niveles de stock.
	out, err := uc.Update(context.Background(), "p1", dto.UpdateProductRequest{Name: "Cemento blanco"})
	require.NoError(t, err)

	assert.Equal(t, "Cemento blanco", out.Name)
	assert.True(t, out.MinStockLevel.Equal(decimal.NewFromInt(10)), "el mínimo quedó en %s", out.MinStockLevel)
	assert.True(t, out.MaxStockLevel.Equal(decimal.NewFromInt(50)), "el máximo quedó en %s", out.MaxStockLevel)
}

func TestProductUpdate_CeroExplicitoSiAplica(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{catalogProduct("p1", 30, 10)}}
	uc := usecase.NewProductUseCase(repo)

	zero := decimal.Zero
	out, err := uc.Update(context.Background(), "p1", dto.UpdateProductRequest{MinStockLevel: &zero})
	require.NoError(t, err)
	assert.True(t, out.MinStockLevel.IsZero(), "un cero enviado explícitamente sí reemplaza el mínimo")
}

func TestProductList_ExponeYFiltraEstadoDeStock(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		catalogProduct("agotado", 0, 10),
		catalogProduct("bajo", 5, 10),
		catalogProduct("sano", 40, 10),
	}}
	uc := usecase.NewProductUseCase(repo)

	all, err := uc.List(context.Background(), repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, entity.StockStatusOutOfStock, all[0].StockStatus)
	assert.Equal(t, entity.StockStatusLowStock, all[1].StockStatus)
	assert.Equal(t, entity.StockStatusInStock, all[2].StockStatus)

	low, err := uc.List(context.Background(), repository.ProductFilter{Status: entity.StockStatusLowStock})
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "bajo", low[0].ID)

	todos, err := uc.List(context.Background(), repository.ProductFilter{Status: "all"})
	require.NoError(t, err)
	assert.Len(t, todos, 3, `"all" no filtra`)
}
