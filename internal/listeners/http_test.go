package listeners_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api-footwear/internal/generator"
	"api-footwear/internal/listeners"
	"api-footwear/internal/models"
	"api-footwear/internal/snapshot"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestStore() *snapshot.Store {
	seed := uint64(21)
	return snapshot.NewStore(generator.Generate(generator.NewRand(&seed)))
}

func newTestFrontend(t *testing.T, hub *listeners.WebSocketHub) (*listeners.HTTPFrontend, *snapshot.Store) {
	t.Helper()
	store := newTestStore()
	return listeners.NewHTTPFrontend("127.0.0.1:0", store, hub, listeners.DashboardOptions{}), store
}

type envelope[T any] struct {
	Success bool                  `json:"success"`
	Data    T                     `json:"data"`
	Message string                `json:"message"`
	Error   listeners.ErrorDetail `json:"error"`
}

func get[T any](t *testing.T, router http.Handler, path string) (int, envelope[T]) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(rec, req)

	var body envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body
}

func TestProcessesByCategory(t *testing.T) {
	frontend, _ := newTestFrontend(t, nil)
	router := frontend.GetRouter()

	code, body := get[struct {
		Processes []models.Process `json:"processes"`
		Filtered  bool             `json:"filtered"`
		Total     int              `json:"total"`
	}](t, router, "/processes?category=Stitching")

	require.Equal(t, http.StatusOK, code)
	assert.True(t, body.Success)
	assert.Len(t, body.Data.Processes, 10)
	assert.True(t, body.Data.Filtered)
	assert.Equal(t, 60, body.Data.Total)
}

func TestProcessesCategoryWithSpace(t *testing.T) {
	frontend, _ := newTestFrontend(t, nil)

	code, body := get[struct {
		Processes []models.Process `json:"processes"`
	}](t, frontend.GetRouter(), "/processes?category=Pre-Production&q=cut")

	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data.Processes, 1)
	assert.Equal(t, "Upper Cutting", body.Data.Processes[0].Name)
}

func TestProcessesEmptyResult(t *testing.T) {
	frontend, _ := newTestFrontend(t, nil)

	code, body := get[struct {
		Processes []models.Process `json:"processes"`
		Filtered  bool             `json:"filtered"`
	}](t, frontend.GetRouter(), "/processes?q=nada-coincide")

	require.Equal(t, http.StatusOK, code)
	assert.NotNil(t, body.Data.Processes)
	assert.Empty(t, body.Data.Processes)
	assert.True(t, body.Data.Filtered)
	assert.NotEmpty(t, body.Message)
}

func TestProcessesUnknownCategory(t *testing.T) {
	frontend, _ := newTestFrontend(t, nil)

	code, body := get[any](t, frontend.GetRouter(), "/processes?category=Welding")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, body.Success)
	assert.Equal(t, listeners.ErrCodeUnknownCategory, body.Error.Code)
}

func TestWorstAndHeatmapSizes(t *testing.T) {
	frontend, _ := newTestFrontend(t, nil)
	router := frontend.GetRouter()

	code, worst := get[[]models.Process](t, router, "/processes/worst")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, worst.Data, 5)
	for i := 1; i < len(worst.Data); i++ {
		assert.LessOrEqual(t, worst.Data[i-1].QualityScore, worst.Data[i].QualityScore)
	}

	code, heat := get[[]map[string]any](t, router, "/processes/heatmap?n=4")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, heat.Data, 4)

	code, bad := get[any](t, router, "/processes/worst?n=cero")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, listeners.ErrCodeValidationError, bad.Error.Code)
}

func TestCategoryQualityEndpoint(t *testing.T) {
	frontend, _ := newTestFrontend(t, nil)

	code, body := get[[]struct {
		Category       models.Category `json:"category"`
		AverageQuality float64         `json:"averageQuality"`
	}](t, frontend.GetRouter(), "/processes/quality")

	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data, 6)
	for i, entry := range body.Data {
		assert.Equal(t, models.AllCategories[i], entry.Category)
		assert.GreaterOrEqual(t, entry.AverageQuality, 95.0)
	}
}

func TestInventoryFlagsAdhesive(t *testing.T) {
	frontend, _ := newTestFrontend(t, nil)

	code, body := get[[]struct {
		Label    string `json:"label"`
		LowStock bool   `json:"lowStock"`
	}](t, frontend.GetRouter(), "/inventory")

	require.Equal(t, http.StatusOK, code)
	for _, item := range body.Data {
		assert.Equal(t, item.Label == "Industrial Adhesive", item.LowStock, item.Label)
	}
}

func TestAlertsSortedBySeverity(t *testing.T) {
	frontend, _ := newTestFrontend(t, nil)
	router := frontend.GetRouter()

	code, body := get[[]models.Alert](t, router, "/alerts?sort=severity")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data, 3)
	assert.Equal(t, models.AlertError, body.Data[0].Type)
	assert.Equal(t, models.AlertInfo, body.Data[2].Type)

	code, _ = get[any](t, router, "/alerts?sort=fecha")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestKPIsReflectTicks(t *testing.T) {
	frontend, store := newTestFrontend(t, nil)
	router := frontend.GetRouter()

	_, before := get[models.KPIMetrics](t, router, "/kpis")
	store.ApplyTick(1)
	_, after := get[models.KPIMetrics](t, router, "/kpis")

	assert.Equal(t, before.Data.TotalPairs+1, after.Data.TotalPairs)
}

func TestPagesAndCategories(t *testing.T) {
	frontend, _ := newTestFrontend(t, nil)
	router := frontend.GetRouter()

	_, pages := get[[]models.Page](t, router, "/pages")
	assert.Equal(t, models.AllPages, pages.Data)

	_, cats := get[[]struct {
		Slug  string   `json:"slug"`
		Names []string `json:"names"`
	}](t, router, "/processes/categories")
	require.Len(t, cats.Data, 6)
	assert.Equal(t, "pre-production", cats.Data[0].Slug)
	assert.Len(t, cats.Data[0].Names, 10)
}

func TestStitchModesWeightedRate(t *testing.T) {
	frontend, _ := newTestFrontend(t, nil)

	_, body := get[struct {
		Modes              []models.StitchMode `json:"modes"`
		WeightedDefectRate float64             `json:"weightedDefectRate"`
	}](t, frontend.GetRouter(), "/stitch-modes")

	assert.Len(t, body.Data.Modes, 5)
	assert.InDelta(t, 0.975, body.Data.WeightedDefectRate, 1e-9)
}

func TestUnknownRouteListsEndpoints(t *testing.T) {
	frontend, _ := newTestFrontend(t, nil)

	code, body := get[any](t, frontend.GetRouter(), "/no-existe")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, listeners.ErrCodeNotFound, body.Error.Code)
	assert.NotNil(t, body.Error.Details)
}

func TestStatusPage(t *testing.T) {
	frontend, _ := newTestFrontend(t, nil)

	rec := httptest.NewRecorder()
	frontend.GetRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "Industrial Adhesive")
}

func TestCORSPreflight(t *testing.T) {
	frontend, _ := newTestFrontend(t, nil)

	rec := httptest.NewRecorder()
	frontend.GetRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/kpis", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
