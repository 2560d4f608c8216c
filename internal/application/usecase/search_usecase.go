package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

// Tope de resultados por sección de la búsqueda global.
const searchSectionLimit = 5

// SearchUseCase búsqueda global sobre productos, equipos, proyectos y tareas.
// Una consulta vacía responde secciones vacías sin tocar la BD.
type SearchUseCase struct {
	productRepo   repository.ProductRepository
	equipmentRepo repository.EquipmentRepository
	projectRepo   repository.ProjectRepository
	taskRepo      repository.TaskRepository
}

// NewSearchUseCase construye el caso de uso.
func NewSearchUseCase(
	productRepo repository.ProductRepository,
	equipmentRepo repository.EquipmentRepository,
	projectRepo repository.ProjectRepository,
	taskRepo repository.TaskRepository,
) *SearchUseCase {
	return &SearchUseCase{
		productRepo:   productRepo,
		equipmentRepo: equipmentRepo,
		projectRepo:   projectRepo,
		taskRepo:      taskRepo,
	}
}

// Search ejecuta las cuatro búsquedas seccionadas. Si cualquier sección falla,
// la búsqueda completa falla.
func (uc *SearchUseCase) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	resp := &dto.SearchResponse{
		Products:  []dto.SearchResultDTO{},
		Equipment: []dto.SearchResultDTO{},
		Projects:  []dto.SearchResultDTO{},
		Tasks:     []dto.SearchResultDTO{},
	}
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return resp, nil
	}

	products, err := uc.productRepo.Search(ctx, term, searchSectionLimit)
	if err != nil {
		return nil, fmt.Errorf("búsqueda de productos: %w", err)
	}
	for _, p := range products {
		desc := p.Description
		if desc == "" {
			desc = "SKU: " + p.SKU
		}
		resp.Products = append(resp.Products, dto.SearchResultDTO{
			ID:          p.ID,
			Title:       p.Name,
			Description: desc,
			Section:     "inventory",
			URL:         "/inventory/" + p.ID,
			Icon:        "package",
		})
	}

	equipment, err := uc.equipmentRepo.Search(ctx, term, searchSectionLimit)
	if err != nil {
		return nil, fmt.Errorf("búsqueda de equipos: %w", err)
	}
	for _, e := range equipment {
		category := e.Category
		if category == "" {
			category = "Equipment"
		}
		resp.Equipment = append(resp.Equipment, dto.SearchResultDTO{
			ID:          e.ID,
			Title:       e.Name,
			Description: category + " - " + e.EquipmentNumber,
			Section:     "equipment",
			URL:         "/equipment/" + e.ID,
			Icon:        "tool",
			Status:      e.Status,
		})
	}

	projects, err := uc.projectRepo.Search(ctx, term, searchSectionLimit)
	if err != nil {
		return nil, fmt.Errorf("búsqueda de proyectos: %w", err)
	}
	for _, p := range projects {
		desc := p.Description
		if desc == "" {
			desc = "No description"
		}
		resp.Projects = append(resp.Projects, dto.SearchResultDTO{
			ID:          p.ID,
			Title:       p.Name,
			Description: p.JobNumber + " - " + desc,
			Section:     "projects",
			URL:         "/projects/" + p.ID,
			Icon:        "folder",
			Status:      p.Status,
		})
	}

	tasks, err := uc.taskRepo.Search(ctx, term, searchSectionLimit)
	if err != nil {
		return nil, fmt.Errorf("búsqueda de tareas: %w", err)
	}
	for _, t := range tasks {
		desc := t.Description
		if desc == "" {
			desc = "No description"
		}
		resp.Tasks = append(resp.Tasks, dto.SearchResultDTO{
			ID:          t.ID,
			Title:       t.Name,
			Description: desc,
			Section:     "tasks",
			URL:         "/projects/" + t.ProjectID + "/tasks/" + t.ID,
			Icon:        "check-square",
			Status:      t.Status,
			Priority:    t.Priority,
		})
	}

	return resp, nil
}
