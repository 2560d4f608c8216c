package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildtrack/buildtrack-api/internal/application/usecase"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

// Fakes de búsqueda que cuentan invocaciones; una consulta vacía no debe
// disparar ninguna.

type searchFakes struct {
	repository.ProductRepository
	calls int

	products  []*entity.Product
	equipment []*entity.Equipment
	projects  []*entity.Project
	tasks     []*entity.ProjectTask
}

func (f *searchFakes) Search(_ context.Context, _ string, limit int) ([]*entity.Product, error) {
	f.calls++
	if len(f.products) > limit {
		return f.products[:limit], nil
	}
	return f.products, nil
}

type equipmentSearchFake struct {
	repository.EquipmentRepository
	parent *searchFakes
}

func (f *equipmentSearchFake) Search(_ context.Context, _ string, limit int) ([]*entity.Equipment, error) {
	f.parent.calls++
	if len(f.parent.equipment) > limit {
		return f.parent.equipment[:limit], nil
	}
	return f.parent.equipment, nil
}

type projectSearchFake struct {
	repository.ProjectRepository
	parent *searchFakes
}

func (f *projectSearchFake) Search(_ context.Context, _ string, limit int) ([]*entity.Project, error) {
	f.parent.calls++
	if len(f.parent.projects) > limit {
		return f.parent.projects[:limit], nil
	}
	return f.parent.projects, nil
}

type taskSearchFake struct {
	repository.TaskRepository
	parent *searchFakes
}

func (f *taskSearchFake) Search(_ context.Context, _ string, limit int) ([]*entity.ProjectTask, error) {
	f.parent.calls++
	if len(f.parent.tasks) > limit {
		return f.parent.tasks[:limit], nil
	}
	return f.parent.tasks, nil
}

func newSearchUseCase(f *searchFakes) *usecase.SearchUseCase {
	return usecase.NewSearchUseCase(
		f,
		&equipmentSearchFake{parent: f},
		&projectSearchFake{parent: f},
		&taskSearchFake{parent: f},
	)
}

func TestSearch_ConsultaVaciaNoTocaLaBD(t *testing.T) {
	fakes := &searchFakes{}
	uc := newSearchUseCase(fakes)

	for _, q := range []string{"", "   ", "\t"} {
		resp, err := uc.Search(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, resp.Products)
		assert.Empty(t, resp.Equipment)
		assert.Empty(t, resp.Projects)
		assert.Empty(t, resp.Tasks)
	}
	assert.Zero(t, fakes.calls, "una consulta vacía no debe invocar ningún repositorio")
}

func TestSearch_SeccionesDecoradas(t *testing.T) {
	fakes := &searchFakes{
		products: []*entity.Product{{ID: "p1", Name: "Cemento", SKU: "CEM-001"}},
		equipment: []*entity.Equipment{{
			ID: "e1", Name: "Mezcladora", EquipmentNumber: "EQ-009",
			Category: "Maquinaria", Status: entity.EquipmentStatusAvailable,
		}},
		projects: []*entity.Project{{ID: "pr1", Name: "Torre Norte", JobNumber: "JOB-7"}},
		tasks:    []*entity.ProjectTask{{ID: "t1", ProjectID: "pr1", Name: "Fundir placa", Status: "pending", Priority: "high"}},
	}
	uc := newSearchUseCase(fakes)

	resp, err := uc.Search(context.Background(), "torre")
	require.NoError(t, err)
	assert.Equal(t, 4, fakes.calls, "una búsqueda con término consulta las cuatro secciones")

	require.Len(t, resp.Products, 1)
	assert.Equal(t, "inventory", resp.Products[0].Section)
	assert.Equal(t, "/inventory/p1", resp.Products[0].URL)
	assert.Equal(t, "SKU: CEM-001", resp.Products[0].Description, "sin descripción usa el SKU")

	require.Len(t, resp.Equipment, 1)
	assert.Equal(t, "Maquinaria - EQ-009", resp.Equipment[0].Description)
	assert.Equal(t, "tool", resp.Equipment[0].Icon)

	require.Len(t, resp.Projects, 1)
	assert.Equal(t, "JOB-7 - No description", resp.Projects[0].Description)

	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, "/projects/pr1/tasks/t1", resp.Tasks[0].URL)
	assert.Equal(t, "high", resp.Tasks[0].Priority)
}

func TestSearch_MaximoCincoPorSeccion(t *testing.T) {
	var products []*entity.Product
	for i := 0; i < 8; i++ {
		products = append(products, &entity.Product{ID: "p", Name: "Producto"})
	}
	fakes := &searchFakes{products: products}
	uc := newSearchUseCase(fakes)

	resp, err := uc.Search(context.Background(), "producto")
	require.NoError(t, err)
	assert.Len(t, resp.Products, 5)
}
