package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/inventory"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

// ReportPeriod rango reportado; los extremos nulos significan "desde siempre"
// y "hasta ahora". Type restringe opcionalmente a un tipo de transacción.
type ReportPeriod struct {
	Start *time.Time
	End   *time.Time
	Type  string
}

// LedgerPDFGenerator puerto del generador del PDF del ledger de inventario.
type LedgerPDFGenerator interface {
	GenerateLedgerPDF(ctx context.Context, period ReportPeriod, rows []*entity.TransactionWithDetails, stats *entity.TransactionStats) ([]byte, error)
}

// ReportUseCase exportación del ledger de inventario a PDF.
type ReportUseCase struct {
	txRepo    repository.TransactionRepository
	generator LedgerPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(txRepo repository.TransactionRepository, generator LedgerPDFGenerator) *ReportUseCase {
	return &ReportUseCase{txRepo: txRepo, generator: generator}
}

// LedgerPDF arma el reporte del rango pedido: filas del ledger más los
// agregados, renderizados por el generador. Devuelve los bytes del PDF y el
// nombre de archivo sugerido.
func (uc *ReportUseCase) LedgerPDF(ctx context.Context, period ReportPeriod) ([]byte, string, error) {
	f := repository.TransactionFilter{
		Start: period.Start,
		End:   period.End,
		Limit: dto.MaxListLimit,
	}
	// Acepta tipos canónicos y legacy (pull/receive/return), igual que el
	// listado del ledger; un tipo no reconocido no filtra nada.
	if t := inventory.NormalizeType(period.Type); t != "" {
		f.Types = []string{t}
	}
	rows, err := uc.txRepo.List(ctx, f)
	if err != nil {
		return nil, "", err
	}
	stats, err := uc.txRepo.Stats(ctx, period.Start, period.End, "")
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateLedgerPDF(ctx, period, rows, stats)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("inventory-ledger-%s.pdf", time.Now().Format("20060102"))
	return pdf, filename, nil
}
