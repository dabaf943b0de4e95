package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"api-footwear/internal/config"
	"api-footwear/internal/db"
	"api-footwear/internal/generator"
	"api-footwear/internal/listeners"
	"api-footwear/internal/monitoring"
	"api-footwear/internal/snapshot"
)

func main() {
	// Configurar logger sin timestamps para el banner
	log.SetOutput(os.Stdout)
	log.SetFlags(0)

	log.Println("")
	log.Println("    ███████╗ ██████╗  ██████╗ ████████╗██╗    ██╗███████╗ █████╗ ██████╗ ")
	log.Println("    ██╔════╝██╔═══██╗██╔═══██╗╚══██╔══╝██║    ██║██╔════╝██╔══██╗██╔══██╗")
	log.Println("    █████╗  ██║   ██║██║   ██║   ██║   ██║ █╗ ██║█████╗  ███████║██████╔╝")
	log.Println("    ██╔══╝  ██║   ██║██║   ██║   ██║   ██║███╗██║██╔══╝  ██╔══██║██╔══██╗")
	log.Println("    ██║     ╚██████╔╝╚██████╔╝   ██║   ╚███╔███╔╝███████╗██║  ██║██║  ██║")
	log.Println("    ╚═╝      ╚═════╝  ╚═════╝    ╚═╝    ╚══╝╚══╝ ╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝")
	log.Println("")
	log.Println("Iniciando API-Footwear (telemetría simulada)...")
	log.Println("")

	// Ahora activar fecha/hora para los logs normales
	log.SetFlags(log.Ldate | log.Ltime)

	// 1. Cargar archivo .env para obtener ruta del config
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Archivo .env no encontrado, usando valores por defecto")
	}

	// 2. Cargar configuración desde YAML
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, found, err := config.LoadOrDefault(configPath)
	if err != nil {
		log.Fatalf("❌ Error al cargar configuración: %v", err)
	}
	if found {
		log.Printf("✅ Configuración cargada desde: %s", configPath)
	} else {
		log.Printf("⚠️  %s no existe, usando configuración por defecto", configPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Generar la foto inicial de la planta
	rng := generator.NewRand(cfg.Dashboard.Seed)
	if cfg.Dashboard.Seed != nil {
		log.Printf("🎲 Generador con semilla fija: %d", *cfg.Dashboard.Seed)
	}
	store := snapshot.NewStore(generator.Generate(rng))
	initial := store.Snapshot()
	log.Printf("✅ Foto inicial generada: %s (%d procesos, %d pares)",
		initial.ID, len(initial.Processes), initial.KPIs.TotalPairs)

	// 4. Historial opcional de ticks en PostgreSQL
	var archive *db.ArchiveWorker
	if cfg.Archive.Enabled() {
		connectTimeout, err := cfg.Archive.GetConnectTimeoutDuration()
		if err != nil {
			connectTimeout = 10 * time.Second
		}
		dbManager, err := db.GetPostgresManagerWithURL(ctx, cfg.Archive.PostgresURL,
			int32(cfg.Archive.MinConns), int32(cfg.Archive.MaxConns), connectTimeout)
		if err != nil {
			log.Printf("⚠️  Error al inicializar historial PostgreSQL: %v (continuando sin historial)", err)
		} else {
			defer dbManager.Close()
			if err := dbManager.EnsureSchema(ctx); err != nil {
				log.Printf("⚠️  %v (continuando sin historial)", err)
			} else {
				updates, unsubscribe := store.Subscribe(64)
				defer unsubscribe()
				archive = db.NewArchiveWorker(ctx, dbManager, updates, 5*time.Second)
				archive.Start()
				log.Println("✅ Historial de KPIs en PostgreSQL habilitado")
			}
		}
	}

	// 5. WebSocket hub: cada tick se reenvía a la room kpis
	wsHub := listeners.NewWebSocketHub(
		cfg.WebSocket.GetWriteTimeout(),
		cfg.WebSocket.GetPongTimeout(),
		cfg.WebSocket.SendBuffer,
	)
	go wsHub.Run(ctx)
	wsUpdates, wsUnsubscribe := store.Subscribe(64)
	defer wsUnsubscribe()
	wsHub.SubscribeToUpdates(wsUpdates)

	// 6. Ticker de KPIs: se registra al iniciar y se cancela en toda salida
	ticker := monitoring.NewKPITicker(ctx, store, rng, cfg.Dashboard.GetTickInterval())
	go ticker.Start()
	defer ticker.Stop()

	// 7. Frontend estático opcional
	var frontend *listeners.StaticFrontend
	if cfg.Frontend.DistPath != "" {
		frontend, err = listeners.NewStaticFrontend(cfg.Frontend.Addr, cfg.Frontend.DistPath)
		if err != nil {
			log.Printf("⚠️  %v (el servidor de frontend no se iniciará)", err)
		} else {
			go func() {
				if err := frontend.Start(); err != nil {
					log.Printf("❌ Error en servidor de frontend: %v", err)
				}
			}()
		}
	}

	// 8. Servidor HTTP de la API
	httpService := listeners.NewHTTPFrontend(cfg.HTTP.Addr(), store, wsHub, listeners.DashboardOptions{
		HeatmapSize: cfg.Dashboard.HeatmapSize,
		WorstN:      cfg.Dashboard.WorstN,
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🌐 Servidor HTTP iniciando en %s...", cfg.HTTP.Addr())
		serverErr <- httpService.Start()
	}()

	select {
	case <-ctx.Done():
		log.Println("🛑 Señal de término recibida, deteniendo servicios...")
	case err := <-serverErr:
		if err != nil {
			log.Printf("❌ Error en servidor HTTP: %v", err)
		}
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpService.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Error al detener servidor HTTP: %v", err)
	}
	if frontend != nil {
		if err := frontend.Shutdown(shutdownCtx); err != nil {
			log.Printf("⚠️  Error al detener servidor de frontend: %v", err)
		}
	}
	ticker.Stop()
	if archive != nil {
		archive.Stop()
	}
	log.Println("👋 API-Footwear detenida")
}
