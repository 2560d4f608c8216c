package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildtrack/buildtrack-api/internal/application/usecase"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

type fakeLedgerTxRepo struct {
	repository.TransactionRepository
	lastFilter repository.TransactionFilter
}

func (r *fakeLedgerTxRepo) List(_ context.Context, f repository.TransactionFilter) ([]*entity.TransactionWithDetails, error) {
	r.lastFilter = f
	return nil, nil
}

func (r *fakeLedgerTxRepo) Stats(_ context.Context, _, _ *time.Time, _ string) (*entity.TransactionStats, error) {
	return &entity.TransactionStats{}, nil
}

type fakeLedgerGenerator struct{}

func (fakeLedgerGenerator) GenerateLedgerPDF(_ context.Context, _ usecase.ReportPeriod, _ []*entity.TransactionWithDetails, _ *entity.TransactionStats) ([]byte, error) {
	return []byte("%PDF-1.7"), nil
}

func TestLedgerPDF_TipoLegacySeNormalizaComoEnElListado(t *testing.T) {
	repo := &fakeLedgerTxRepo{}
	uc := usecase.NewReportUseCase(repo, fakeLedgerGenerator{})

	_, _, err := uc.LedgerPDF(context.Background(), usecase.ReportPeriod{Type: "pull"})
	require.NoError(t, err)
	assert.Equal(t, []string{entity.TransactionTypeOUT}, repo.lastFilter.Types, "pull debe filtrar como OUT")

	_, _, err = uc.LedgerPDF(context.Background(), usecase.ReportPeriod{Type: "IN"})
	require.NoError(t, err)
	assert.Equal(t, []string{entity.TransactionTypeIN}, repo.lastFilter.Types)

	_, filename, err := uc.LedgerPDF(context.Background(), usecase.ReportPeriod{})
	require.NoError(t, err)
	assert.Nil(t, repo.lastFilter.Types, "sin tipo no se filtra")
	assert.Regexp(t, `^inventory-ledger-\d{8}\.pdf$`, filename)
}
