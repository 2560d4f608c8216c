package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/domain"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/inventory"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

// Actor identidad autenticada que ejecuta la operación; llena los campos
// "done by" cuando el request no los trae.
type Actor struct {
	ID    string
	Name  string
	Email string
}

// CreateTransactionUseCase registra transacciones de stock de forma
// transaccional: bloqueo de fila del producto (SELECT FOR UPDATE), inserción
// en el ledger y actualización del contador de stock en un solo Commit.
type CreateTransactionUseCase struct {
	txRunner TxRunner
}

// NewCreateTransactionUseCase construye el caso de uso.
func NewCreateTransactionUseCase(txRunner TxRunner) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{txRunner: txRunner}
}

// Tipo compensatorio de cada tipo canónico. ADJUSTMENT y las entradas se
// reversan con una salida; una salida se reversa con una entrada.
var reverseTypes = map[string]string{
	entity.TransactionTypeIN:         entity.TransactionTypeOUT,
	entity.TransactionTypeOUT:        entity.TransactionTypeIN,
	entity.TransactionTypeRETURN:     entity.TransactionTypeOUT,
	entity.TransactionTypeADJUSTMENT: entity.TransactionTypeOUT,
}

// Create valida y registra una transacción de stock.
//
// La validación ocurre antes de tocar la BD: tipo resuelto (canónico o
// legacy), producto presente y cantidad estrictamente positiva. El costo
// unitario omitido se toma del costo promedio (MAUC) del producto. Una salida
// sin stock suficiente falla con domain.ErrInsufficientStock y no deja rastro
// en el ledger.
func (uc *CreateTransactionUseCase) Create(ctx context.Context, actor Actor, in dto.CreateTransactionRequest) (*dto.CreateTransactionResponse, error) {
	txType := inventory.ResolveType(in.TransactionType, in.LegacyType)
	if txType == "" {
		return nil, domain.ErrInvalidInput
	}
	productID := in.ProductID
	if productID == "" {
		productID = in.LegacyProductID
	}
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitCost != nil && in.UnitCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	projectID := in.ProjectID
	if projectID == "" {
		projectID = in.LegacyProjectID
	}

	doneBy, doneByID, doneByEmail := in.DoneBy, in.DoneByID, in.DoneByEmail
	if doneBy == "" {
		doneBy = actor.Name
	}
	if doneByID == "" {
		doneByID = actor.ID
	}
	if doneByEmail == "" {
		doneByEmail = actor.Email
	}

	now := time.Now()
	var resp *dto.CreateTransactionResponse

	// Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace).
	err := uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto para serializar mutaciones concurrentes.
		product, err := productRepo.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}

		unitCost := product.MAUC
		if in.UnitCost != nil {
			unitCost = *in.UnitCost
		}

		stockBefore := product.CurrentStock
		effect := decimal.NewFromInt(int64(inventory.StockEffect(txType)))
		stockAfter := stockBefore.Add(in.Quantity.Mul(effect))
		if txType == entity.TransactionTypeOUT && stockBefore.LessThan(in.Quantity) {
			return domain.ErrInsufficientStock
		}

		number, err := txRepo.NextNumber(ctx, now.Year())
		if err != nil {
			return err
		}

		tx := &entity.StockTransaction{
			ID:              uuid.New().String(),
			Number:          number,
			Type:            txType,
			ProductID:       product.ID,
			Quantity:        in.Quantity,
			UnitCost:        unitCost,
			TotalValue:      in.Quantity.Mul(unitCost),
			StockBefore:     stockBefore,
			StockAfter:      stockAfter,
			ProjectID:       projectID,
			ProjectName:     in.ProjectName,
			DoneBy:          doneBy,
			DoneByID:        doneByID,
			DoneByEmail:     doneByEmail,
			ReferenceNumber: in.ReferenceNumber,
			BatchNumber:     in.BatchNumber,
			LocationName:    in.LocationName,
			ExpiryDate:      in.ExpiryDate,
			Reason:          in.Reason,
			Notes:           in.Notes,
			Status:          entity.TransactionStatusCompleted,
			TransactionDate: now,
			CreatedAt:       now,
		}
		if err := txRepo.Create(ctx, tx); err != nil {
			return err
		}
		if err := productRepo.UpdateStock(ctx, product.ID, stockAfter); err != nil {
			return err
		}

		resp = &dto.CreateTransactionResponse{
			Transaction:   toTransactionDTO(tx, product.Name, product.SKU, product.UnitOfMeasure),
			StockUpdated:  true,
			NewStockLevel: stockAfter,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Reverse compensa una transacción: inserta la transacción opuesta en el
// ledger y marca la original como reversada. El ledger nunca se edita.
func (uc *CreateTransactionUseCase) Reverse(ctx context.Context, actor Actor, transactionID, reason string) (*dto.CreateTransactionResponse, error) {
	if transactionID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	var resp *dto.CreateTransactionResponse

	err := uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
	) error {
		original, err := txRepo.GetByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if original.Status == entity.TransactionStatusReversed {
			return domain.ErrConflict
		}
		revType, ok := reverseTypes[original.Type]
		if !ok {
			return domain.ErrInvalidInput
		}

		product, err := productRepo.GetForUpdate(ctx, original.ProductID)
		if err != nil {
			return err
		}

		stockBefore := product.CurrentStock
		effect := decimal.NewFromInt(int64(inventory.StockEffect(revType)))
		stockAfter := stockBefore.Add(original.Quantity.Mul(effect))
		// Reversar una entrada ya consumida no puede dejar stock negativo.
		if revType == entity.TransactionTypeOUT && stockBefore.LessThan(original.Quantity) {
			return domain.ErrInsufficientStock
		}

		number, err := txRepo.NextNumber(ctx, now.Year())
		if err != nil {
			return err
		}
		if reason == "" {
			reason = "Reverso de " + original.Number
		}

		rev := &entity.StockTransaction{
			ID:              uuid.New().String(),
			Number:          number,
			Type:            revType,
			ProductID:       original.ProductID,
			Quantity:        original.Quantity,
			UnitCost:        original.UnitCost,
			TotalValue:      original.TotalValue,
			StockBefore:     stockBefore,
			StockAfter:      stockAfter,
			ProjectID:       original.ProjectID,
			ProjectName:     original.ProjectName,
			DoneBy:          actor.Name,
			DoneByID:        actor.ID,
			DoneByEmail:     actor.Email,
			ReferenceNumber: original.Number,
			Reason:          reason,
			Status:          entity.TransactionStatusCompleted,
			TransactionDate: now,
			CreatedAt:       now,
		}
		if err := txRepo.Create(ctx, rev); err != nil {
			return err
		}
		if err := txRepo.MarkReversed(ctx, original.ID, rev.ID); err != nil {
			return err
		}
		if err := productRepo.UpdateStock(ctx, product.ID, stockAfter); err != nil {
			return err
		}

		resp = &dto.CreateTransactionResponse{
			Transaction:   toTransactionDTO(rev, product.Name, product.SKU, product.UnitOfMeasure),
			StockUpdated:  true,
			NewStockLevel: stockAfter,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func toTransactionDTO(tx *entity.StockTransaction, productName, productSKU, productUnit string) dto.TransactionDTO {
	return dto.TransactionDTO{
		ID:          tx.ID,
		Number:      tx.Number,
		Type:        tx.Type,
		ProductID:   tx.ProductID,
		ProductName: productName,
		ProductSKU:  productSKU,
		ProductUnit: productUnit,
		Quantity:    tx.Quantity,
		UnitCost:    tx.UnitCost,
		TotalValue:  tx.TotalValue,
		StockBefore: tx.StockBefore,
		StockAfter:  tx.StockAfter,
		ProjectID:   tx.ProjectID,
		ProjectName: tx.ProjectName,
		DoneBy:      tx.DoneBy,
		DoneByEmail: tx.DoneByEmail,
		Reference:   tx.ReferenceNumber,
		Batch:       tx.BatchNumber,
		Location:    tx.LocationName,
		Reason:      tx.Reason,
		Notes:       tx.Notes,
		Status:      tx.Status,
		Date:        tx.TransactionDate,
	}
}
