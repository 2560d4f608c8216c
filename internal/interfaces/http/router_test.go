package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/application/usecase"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
	apphttp "github.com/buildtrack/buildtrack-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorio (embeben la interfaz para omitir métodos no usados)
// ──────────────────────────────────────────────────────────────────────────────

type searchProductRepo struct {
	repository.ProductRepository
	calls *int
}

func (f *searchProductRepo) Search(_ context.Context, _ string, _ int) ([]*entity.Product, error) {
	*f.calls++
	return nil, nil
}

type searchEquipmentRepo struct {
	repository.EquipmentRepository
	calls *int
}

func (f *searchEquipmentRepo) Search(_ context.Context, _ string, _ int) ([]*entity.Equipment, error) {
	*f.calls++
	return nil, nil
}

type searchProjectRepo struct {
	repository.ProjectRepository
	calls *int
}

func (f *searchProjectRepo) Search(_ context.Context, _ string, _ int) ([]*entity.Project, error) {
	*f.calls++
	return nil, nil
}

type searchTaskRepo struct {
	repository.TaskRepository
	calls *int
}

func (f *searchTaskRepo) Search(_ context.Context, _ string, _ int) ([]*entity.ProjectTask, error) {
	*f.calls++
	return nil, nil
}

type memAPIKeyRepo struct {
	repository.APIKeyRepository
	keys []*entity.APIKey
}

func (f *memAPIKeyRepo) Create(_ context.Context, k *entity.APIKey) error {
	f.keys = append(f.keys, k)
	return nil
}

func (f *memAPIKeyRepo) List(_ context.Context) ([]*entity.APIKey, error) {
	return f.keys, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de test con el router completo
// ──────────────────────────────────────────────────────────────────────────────

func buildRouterApp(apiKeys *memAPIKeyRepo, searchCalls *int) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SearchUC: usecase.NewSearchUseCase(
			&searchProductRepo{calls: searchCalls},
			&searchEquipmentRepo{calls: searchCalls},
			&searchProjectRepo{calls: searchCalls},
			&searchTaskRepo{calls: searchCalls},
		),
		APIKeyUC:  usecase.NewAPIKeyUseCase(apiKeys),
		JWTSecret: testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, role, body string) *http.Response {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda global
// ──────────────────────────────────────────────────────────────────────────────

// Una consulta vacía responde 200 con secciones vacías y sin tocar ningún repo.
func TestRouter_SearchConsultaVacia_NoConsultaRepos(t *testing.T) {
	calls := 0
	app := buildRouterApp(&memAPIKeyRepo{}, &calls)

	resp := doJSON(t, app, http.MethodGet, "/api/search?q=", "worker", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, calls, "una consulta vacía no debe tocar la BD")

	var body dto.SearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Products)
	assert.Empty(t, body.Equipment)
	assert.Empty(t, body.Projects)
	assert.Empty(t, body.Tasks)
}

// Con término, las cuatro secciones consultan sus repos.
func TestRouter_SearchConTermino_ConsultaLasCuatroSecciones(t *testing.T) {
	calls := 0
	app := buildRouterApp(&memAPIKeyRepo{}, &calls)

	resp := doJSON(t, app, http.MethodGet, "/api/search?q=cemento", "worker", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 4, calls)
}

// Sin token la API completa responde 401.
func TestRouter_SinToken_Retorna401(t *testing.T) {
	calls := 0
	app := buildRouterApp(&memAPIKeyRepo{}, &calls)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=x", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Llaves de integración (solo admin)
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_APIKeys_WorkerBloqueado(t *testing.T) {
	calls := 0
	app := buildRouterApp(&memAPIKeyRepo{}, &calls)

	resp := doJSON(t, app, http.MethodGet, "/api/settings/api-keys", "worker", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"worker no debe poder listar llaves de integración")
}

func TestRouter_APIKeys_AdminCreaYLista(t *testing.T) {
	calls := 0
	repo := &memAPIKeyRepo{}
	app := buildRouterApp(repo, &calls)

	resp := doJSON(t, app, http.MethodPost, "/api/settings/api-keys", "admin",
		`{"name":"integración ERP","permissions":["inventory:read"]}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.CreateAPIKeyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.True(t, strings.HasPrefix(created.PlainKey, "bt_live_"),
		"la llave en claro debe llevar el prefijo bt_live_")

	listResp := doJSON(t, app, http.MethodGet, "/api/settings/api-keys", "admin", "")
	defer listResp.Body.Close()

	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var listed []dto.APIKeyDTO
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&listed))
	require.Len(t, listed, 1)
	assert.NotEqual(t, created.PlainKey, listed[0].Key,
		"el listado nunca debe exponer la llave en claro")
	assert.Contains(t, listed[0].Key, "••••", "la llave listada debe ir enmascarada")
}
