package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/domain"
	"github.com/buildtrack/buildtrack-api/internal/domain/inventory"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

// StockLevelUseCase tablero de niveles de stock: clasificación contra el
// mínimo configurado, consumo promedio y sugerencias de reposición.
type StockLevelUseCase struct {
	productRepo repository.ProductRepository
}

// NewStockLevelUseCase construye el caso de uso.
func NewStockLevelUseCase(productRepo repository.ProductRepository) *StockLevelUseCase {
	return &StockLevelUseCase{productRepo: productRepo}
}

// Levels devuelve las filas del tablero más el catálogo de categorías.
func (uc *StockLevelUseCase) Levels(ctx context.Context, category, search string) (*dto.StockLevelsResponse, error) {
	rows, err := uc.productRepo.ListStockLevels(ctx, repository.ProductFilter{
		Category:   category,
		Search:     search,
		OnlyActive: true,
	})
	if err != nil {
		return nil, err
	}
	categories, err := uc.productRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.StockLevelDTO, 0, len(rows))
	for _, r := range rows {
		p := r.Product
		items = append(items, dto.StockLevelDTO{
			ID:           p.ID,
			Name:         p.Name,
			SKU:          p.SKU,
			Category:     p.Category,
			CurrentStock: p.CurrentStock,
			MinLevel:     p.MinStockLevel,
			MaxLevel:     inventory.EffectiveMaxLevel(p.MaxStockLevel, p.MinStockLevel),
			Unit:         p.UnitOfMeasure,
			Value:        p.TotalValue(),
			Location:     p.Location,
			Supplier:     p.Supplier,
			Status:       inventory.ClassifyStock(p.CurrentStock, p.MinStockLevel),
			AverageUsage: inventory.AverageDailyUsage(r.OutLast30d),
			LastUpdated:  p.UpdatedAt,
		})
	}
	return &dto.StockLevelsResponse{Items: items, Categories: categories}, nil
}

// UpdateSettings actualiza niveles mínimo/máximo, stock y ubicación desde el
// tablero de operaciones.
func (uc *StockLevelUseCase) UpdateSettings(ctx context.Context, in dto.UpdateStockSettingsRequest) error {
	if in.ProductID == "" {
		return domain.ErrInvalidInput
	}
	if in.CurrentStock.LessThan(decimal.Zero) || in.MinLevel.LessThan(decimal.Zero) || in.MaxLevel.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if _, err := uc.productRepo.GetByID(ctx, in.ProductID); err != nil {
		return err
	}
	return uc.productRepo.UpdateStockSettings(ctx, in.ProductID, in.CurrentStock, in.MinLevel, in.MaxLevel, in.Location)
}

// ReorderSuggestions productos bajo mínimo con la cantidad sugerida para
// llevarlos al nivel máximo efectivo.
func (uc *StockLevelUseCase) ReorderSuggestions(ctx context.Context) ([]dto.ReorderSuggestionDTO, error) {
	products, err := uc.productRepo.ListBelowMinimum(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReorderSuggestionDTO, 0, len(products))
	for _, p := range products {
		max := inventory.EffectiveMaxLevel(p.MaxStockLevel, p.MinStockLevel)
		suggested := max.Sub(p.CurrentStock)
		if suggested.LessThan(decimal.Zero) {
			suggested = decimal.Zero
		}
		out = append(out, dto.ReorderSuggestionDTO{
			ProductID:         p.ID,
			ProductName:       p.Name,
			SKU:               p.SKU,
			CurrentStock:      p.CurrentStock,
			MinStockLevel:     p.MinStockLevel,
			MaxStockLevel:     max,
			SuggestedQuantity: suggested,
			Supplier:          p.Supplier,
		})
	}
	return out, nil
}
