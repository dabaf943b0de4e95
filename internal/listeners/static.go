package listeners

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// StaticFrontend sirve el build del tablero (Vite/React) como SPA
type StaticFrontend struct {
	addr     string
	distPath string
	router   *gin.Engine
	server   *http.Server
}

// NewStaticFrontend valida el directorio y arma el router de archivos estáticos
func NewStaticFrontend(addr, distPath string) (*StaticFrontend, error) {
	info, err := os.Stat(distPath)
	if err != nil {
		return nil, fmt.Errorf("directorio de frontend no disponible: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("directorio de frontend no es un directorio: %s", distPath)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	root, err := filepath.Abs(distPath)
	if err != nil {
		return nil, fmt.Errorf("ruta de frontend inválida: %w", err)
	}

	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusMethodNotAllowed)
			return
		}

		fullPath := filepath.Join(root, filepath.Clean("/"+c.Request.URL.Path))
		if !strings.HasPrefix(fullPath, root) {
			c.Status(http.StatusNotFound)
			return
		}

		// Assets con hash: se pueden cachear
		if strings.HasPrefix(c.Request.URL.Path, "/assets/") {
			if fileExists(fullPath) {
				c.Header("Cache-Control", "public, max-age=31536000, immutable")
				c.File(fullPath)
				return
			}
			c.Status(http.StatusNotFound)
			return
		}

		if fileExists(fullPath) {
			c.File(fullPath)
			return
		}

		// Rutas del SPA: siempre index.html sin caché
		indexPath := filepath.Join(root, "index.html")
		if fileExists(indexPath) {
			c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
			c.File(indexPath)
			return
		}

		c.Status(http.StatusNotFound)
	})

	return &StaticFrontend{
		addr:     addr,
		distPath: root,
		router:   router,
		server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Router retorna el router del frontend
func (s *StaticFrontend) Router() *gin.Engine {
	return s.router
}

// Start bloquea sirviendo el frontend hasta Shutdown
func (s *StaticFrontend) Start() error {
	log.Printf("✅ Servidor de frontend listo en http://%s", s.addr)
	log.Printf("   📁 Archivos estáticos: %s", s.distPath)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown detiene el servidor del frontend
func (s *StaticFrontend) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
