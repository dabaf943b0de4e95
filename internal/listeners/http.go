package listeners

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"api-footwear/internal/generator"
	"api-footwear/internal/models"
	"api-footwear/internal/views"
	"api-footwear/internal/web"
)

// SnapshotSource es la vista de solo lectura que el frontend HTTP necesita del store
type SnapshotSource interface {
	Snapshot() models.Snapshot
	KPIs() models.KPIMetrics
	Processes() []models.Process
}

// DashboardOptions son los tamaños por defecto de las vistas derivadas
type DashboardOptions struct {
	HeatmapSize int
	WorstN      int
}

type HTTPFrontend struct {
	router     *gin.Engine
	addr       string // Dirección completa host:port
	source     SnapshotSource
	wsHub      *WebSocketHub
	opts       DashboardOptions
	routesOnce sync.Once
	server     *http.Server
}

func NewHTTPFrontend(addr string, source SnapshotSource, wsHub *WebSocketHub, opts DashboardOptions) *HTTPFrontend {
	if opts.HeatmapSize <= 0 {
		opts.HeatmapSize = views.DefaultHeatmapSize
	}
	if opts.WorstN <= 0 {
		opts.WorstN = views.DefaultWorstN
	}

	router := gin.Default()

	// Configurar CORS para permitir todas las peticiones
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Manejador personalizado para rutas 404
	router.NoRoute(func(c *gin.Context) {
		RespondWithError(c, http.StatusNotFound, ErrCodeNotFound,
			"🤔 La ruta que buscas no existe en este servidor",
			gin.H{
				"available_endpoints": gin.H{
					"dashboard": []string{"GET /snapshot", "GET /kpis", "GET /pages", "GET /status"},
					"processes": []string{
						"GET /processes?q=&category=",
						"GET /processes/categories",
						"GET /processes/quality",
						"GET /processes/worst?n=",
						"GET /processes/heatmap?n=",
						"GET /analytics",
					},
					"materials": []string{"GET /stitch-modes", "GET /materials", "GET /inventory"},
					"stations":  []string{"GET /stations", "GET /alerts", "GET /flow"},
					"quality":   []string{"GET /quality/qc", "GET /quality/defects"},
					"websocket": []string{"GET /ws/kpis", "GET /ws/stats"},
				},
			},
			"Usa uno de los endpoints disponibles")
	})

	return &HTTPFrontend{
		router: router,
		addr:   addr,
		source: source,
		wsHub:  wsHub,
		opts:   opts,
		server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// GetWebSocketHub retorna el hub de WebSocket
func (h *HTTPFrontend) GetWebSocketHub() *WebSocketHub {
	return h.wsHub
}

func (h *HTTPFrontend) setupRoutes() {
	h.router.GET("/health", h.handleHealth)
	h.router.GET("/pages", h.handlePages)
	h.router.GET("/snapshot", h.handleSnapshot)
	h.router.GET("/kpis", h.handleKPIs)

	h.router.GET("/processes", h.handleProcesses)
	h.router.GET("/processes/categories", h.handleCategories)
	h.router.GET("/processes/quality", h.handleCategoryQuality)
	h.router.GET("/processes/worst", h.handleWorst)
	h.router.GET("/processes/heatmap", h.handleHeatmap)
	h.router.GET("/analytics", h.handleAnalytics)

	h.router.GET("/stitch-modes", h.handleStitchModes)
	h.router.GET("/materials", h.handleMaterials)
	h.router.GET("/inventory", h.handleInventory)

	h.router.GET("/stations", h.handleStations)
	h.router.GET("/alerts", h.handleAlerts)
	h.router.GET("/flow", h.handleFlow)
	h.router.GET("/quality/qc", h.handleQC)
	h.router.GET("/quality/defects", h.handleDefects)

	// Página HTML con autorefresco, sin caché
	statusPage := web.StatusPageHandler(h.source)
	h.router.GET("/status", func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		statusPage(c.Writer, c.Request)
	})

	if h.wsHub != nil {
		SetupWebSocketRoutes(h.router, h.wsHub, h.initialKPIMessage)
	}
}

// GetRouter retorna el router con todas las rutas registradas
func (h *HTTPFrontend) GetRouter() *gin.Engine {
	h.routesOnce.Do(h.setupRoutes)
	return h.router
}

// Start registra las rutas y bloquea sirviendo HTTP hasta Shutdown
func (h *HTTPFrontend) Start() error {
	router := h.GetRouter()

	for _, route := range router.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown detiene el servidor HTTP esperando las peticiones en curso
func (h *HTTPFrontend) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

func (h *HTTPFrontend) initialKPIMessage() WebSocketMessage {
	snap := h.source.Snapshot()
	return WebSocketMessage{
		Type:       MessageTypeKPISnapshot,
		Timestamp:  time.Now().Format(time.RFC3339),
		SnapshotID: snap.ID,
		Data:       snap.KPIs,
	}
}

func (h *HTTPFrontend) handleHealth(c *gin.Context) {
	snap := h.source.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"snapshot_id":  snap.ID,
		"generated_at": snap.GeneratedAt.Format(time.RFC3339),
	})
}

func (h *HTTPFrontend) handlePages(c *gin.Context) {
	Success(c, models.AllPages, "")
}

func (h *HTTPFrontend) handleSnapshot(c *gin.Context) {
	Success(c, h.source.Snapshot(), "")
}

func (h *HTTPFrontend) handleKPIs(c *gin.Context) {
	Success(c, h.source.KPIs(), "")
}

// GET /processes?q=texto&category=Stitching
func (h *HTTPFrontend) handleProcesses(c *gin.Context) {
	query := c.Query("q")
	category := c.DefaultQuery("category", models.CategoryAll)

	result, err := views.FilterProcesses(h.source.Processes(), query, category)
	if err != nil {
		if errors.Is(err, views.ErrUnknownCategory) {
			UnknownCategory(c, category)
			return
		}
		InternalServerError(c, "Error al filtrar procesos", gin.H{"error": err.Error()})
		return
	}

	message := ""
	if result.Filtered && len(result.Processes) == 0 {
		message = "Ningún proceso coincide con el filtro"
	}
	Success(c, result, message)
}

type categoryEntry struct {
	Category models.Category `json:"category"`
	Slug     string          `json:"slug"`
	Names    []string        `json:"names"`
}

func (h *HTTPFrontend) handleCategories(c *gin.Context) {
	entries := make([]categoryEntry, 0, len(models.AllCategories))
	for _, cat := range models.AllCategories {
		entries = append(entries, categoryEntry{
			Category: cat,
			Slug:     cat.Slug(),
			Names:    generator.NamesFor(cat),
		})
	}
	Success(c, entries, "")
}

func (h *HTTPFrontend) handleCategoryQuality(c *gin.Context) {
	Success(c, views.CategoryQualityAverages(h.source.Processes()), "")
}

// GET /processes/worst?n=5
func (h *HTTPFrontend) handleWorst(c *gin.Context) {
	n, ok := positiveQueryInt(c, "n", h.opts.WorstN)
	if !ok {
		return
	}
	Success(c, views.WorstByQuality(h.source.Processes(), n), "")
}

// GET /processes/heatmap?n=15
func (h *HTTPFrontend) handleHeatmap(c *gin.Context) {
	n, ok := positiveQueryInt(c, "n", h.opts.HeatmapSize)
	if !ok {
		return
	}
	Success(c, views.Heatmap(h.source.Processes(), n, views.HeatmapHighlight), "")
}

func (h *HTTPFrontend) handleAnalytics(c *gin.Context) {
	Success(c, views.BuildAnalytics(h.source.Processes()), "")
}

func (h *HTTPFrontend) handleStitchModes(c *gin.Context) {
	modes := h.source.Snapshot().StitchModes
	Success(c, gin.H{
		"modes":              modes,
		"weightedDefectRate": views.WeightedStitchDefectRate(modes),
	}, "")
}

func (h *HTTPFrontend) handleMaterials(c *gin.Context) {
	Success(c, views.MaterialViews(h.source.Snapshot().Materials), "")
}

func (h *HTTPFrontend) handleInventory(c *gin.Context) {
	Success(c, views.InventoryViews(h.source.Snapshot().Inventory), "")
}

func (h *HTTPFrontend) handleStations(c *gin.Context) {
	Success(c, h.source.Snapshot().Stations, "")
}

// GET /alerts?sort=severity
func (h *HTTPFrontend) handleAlerts(c *gin.Context) {
	alerts := h.source.Snapshot().Alerts
	switch c.Query("sort") {
	case "":
	case "severity":
		alerts = views.AlertsBySeverity(alerts)
	default:
		ValidationError(c, "sort", "valores permitidos: severity")
		return
	}
	Success(c, alerts, "")
}

func (h *HTTPFrontend) handleFlow(c *gin.Context) {
	Success(c, h.source.Snapshot().Flow, "")
}

func (h *HTTPFrontend) handleQC(c *gin.Context) {
	Success(c, h.source.Snapshot().QC, "")
}

func (h *HTTPFrontend) handleDefects(c *gin.Context) {
	Success(c, h.source.Snapshot().Defects, "")
}

// positiveQueryInt lee un entero positivo opcional; responde 400 si es inválido
func positiveQueryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		ValidationError(c, name, "debe ser un número entero positivo")
		return 0, false
	}
	return n, true
}
