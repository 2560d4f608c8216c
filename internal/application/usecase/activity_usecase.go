package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/domain"
	"github.com/buildtrack/buildtrack-api/internal/domain/activity"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

// ActivityUseCase arma el feed de actividad reciente del dashboard mezclando
// el ledger de equipos y el de inventario. Cada fuente degrada por separado:
// una tabla no aprovisionada solo deja al feed sin esa fuente; si ninguna de
// las dos existe se responde el placeholder "System Ready".
type ActivityUseCase struct {
	equipmentRepo repository.EquipmentRepository
	txRepo        repository.TransactionRepository
	now           func() time.Time
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(equipmentRepo repository.EquipmentRepository, txRepo repository.TransactionRepository) *ActivityUseCase {
	return &ActivityUseCase{
		equipmentRepo: equipmentRepo,
		txRepo:        txRepo,
		now:           time.Now,
	}
}

type activityEntry struct {
	dto.ActivityDTO
	at time.Time
}

// Recent devuelve las últimas actividades mezcladas, de la más reciente a la
// más antigua, acotadas a limit.
func (uc *ActivityUseCase) Recent(ctx context.Context, limit int) ([]dto.ActivityDTO, error) {
	limit = dto.ClampLimit(limit, 10)
	now := uc.now()

	var entries []activityEntry
	sources := 0

	equipTx, err := uc.equipmentRepo.ListRecentTransactions(ctx, limit)
	switch {
	case err == nil:
		sources++
		for _, tx := range equipTx {
			entries = append(entries, uc.equipmentEntry(tx, now))
		}
	case errors.Is(err, domain.ErrSourceUnavailable):
		// Fuente ausente; el feed sigue con la otra.
	default:
		return nil, err
	}

	invTx, err := uc.txRepo.ListRecentForFeed(ctx, limit)
	switch {
	case err == nil:
		sources++
		for _, tx := range invTx {
			entries = append(entries, uc.inventoryEntry(tx, now))
		}
	case errors.Is(err, domain.ErrSourceUnavailable):
	default:
		return nil, err
	}

	if sources == 0 {
		return []dto.ActivityDTO{{
			ID:          "system-ready",
			Type:        "system",
			Title:       "System Ready",
			Description: "Activity feed is ready",
			Timestamp:   "Just now",
			Status:      "completed",
			User:        "System",
			Link:        "/",
			Metadata:    map[string]any{},
		}}, nil
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].at.After(entries[j].at)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	out := make([]dto.ActivityDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ActivityDTO)
	}
	return out, nil
}

func (uc *ActivityUseCase) equipmentEntry(tx *entity.EquipmentTransactionWithDetails, now time.Time) activityEntry {
	name := tx.EquipmentName
	if name == "" {
		name = "Unknown Equipment"
	}
	label := fmt.Sprintf("%s (%s)", name, tx.EquipmentNumber)

	var title, description string
	status := "completed"
	switch tx.Action {
	case entity.EquipmentActionAssignProject:
		title = "Equipment Assigned to Project"
		description = label + " assigned to project"
	case entity.EquipmentActionAssignPerson:
		person := tx.PersonName
		if person == "" {
			person = "person"
		}
		title = "Equipment Assigned to Person"
		description = label + " assigned to " + person
	case entity.EquipmentActionMaintenance:
		title = "Equipment Moved to Maintenance"
		description = label + " moved to maintenance"
		status = "warning"
	case entity.EquipmentActionCheckIn:
		title = "Equipment Checked In"
		description = label + " checked in and available"
	default:
		title = "Equipment Transaction"
		description = label + " - " + tx.Action
	}

	user := tx.DoneBy
	if user == "" {
		user = "System"
	}
	return activityEntry{
		at: tx.CreatedAt,
		ActivityDTO: dto.ActivityDTO{
			ID:          tx.ID,
			Type:        "equipment",
			Title:       title,
			Description: description,
			Timestamp:   activity.RelativeTime(now, tx.CreatedAt),
			Status:      status,
			User:        user,
			Link:        "/equipment",
			Metadata: map[string]any{
				"equipment_id":         tx.EquipmentID,
				"action":               tx.Action,
				"project_id":           tx.ProjectID,
				"person_name":          tx.PersonName,
				"notes":                tx.Notes,
				"expected_return_date": tx.ExpectedReturnDate,
			},
		},
	}
}

func (uc *ActivityUseCase) inventoryEntry(tx *entity.TransactionWithDetails, now time.Time) activityEntry {
	productName := tx.ProductName
	if productName == "" {
		productName = "Unknown Product"
	}
	var actionWord string
	switch tx.Type {
	case entity.TransactionTypeIN:
		actionWord = "Stock In"
	case entity.TransactionTypeOUT:
		actionWord = "Stock Out"
	default:
		actionWord = "Return"
	}

	parts := []string{tx.Quantity.String()}
	if tx.ProductSKU != "" {
		parts = append(parts, "SKU "+tx.ProductSKU)
	}
	if tx.ProjectName != "" {
		parts = append(parts, tx.ProjectName)
	}

	user := tx.DoneBy
	if user == "" {
		user = "System"
	}
	return activityEntry{
		at: tx.TransactionDate,
		ActivityDTO: dto.ActivityDTO{
			ID:          tx.ID,
			Type:        "inventory",
			Title:       actionWord + ": " + productName,
			Description: strings.Join(parts, " • "),
			Timestamp:   activity.RelativeTime(now, tx.TransactionDate),
			Status:      "completed",
			User:        user,
			Link:        "/inventory",
			Metadata: map[string]any{
				"product_id":       tx.ProductID,
				"transaction_type": tx.Type,
				"quantity":         tx.Quantity,
				"unit_cost":        tx.UnitCost,
				"total_value":      tx.TotalValue,
				"project_name":     tx.ProjectName,
				"reason":           tx.Reason,
				"created_at":       tx.TransactionDate,
			},
		},
	}
}
