package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig envuelve todos los errores de validación
var ErrInvalidConfig = errors.New("config: configuración inválida")

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	WebSocket WebSocketConfig `yaml:"websocket"`
	Frontend  FrontendConfig  `yaml:"frontend"`
	Archive   ArchiveConfig   `yaml:"archive"`
}

type HTTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr retorna host:port para gin
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

type DashboardConfig struct {
	TickInterval string  `yaml:"tick_interval"` // ej: "5s"
	Seed         *uint64 `yaml:"seed"`          // nil = no determinista
	HeatmapSize  int     `yaml:"heatmap_size"`
	WorstN       int     `yaml:"worst_n"`
}

// GetTickInterval retorna la duración del tick de KPIs
func (d *DashboardConfig) GetTickInterval() time.Duration {
	duration, err := time.ParseDuration(d.TickInterval)
	if err != nil || duration <= 0 {
		return 5 * time.Second // default
	}
	return duration
}

type WebSocketConfig struct {
	WriteTimeout string `yaml:"write_timeout"` // ej: "10s"
	PongTimeout  string `yaml:"pong_timeout"`  // ej: "60s"
	SendBuffer   int    `yaml:"send_buffer"`
}

// GetWriteTimeout retorna el timeout de escritura por mensaje
func (w *WebSocketConfig) GetWriteTimeout() time.Duration {
	duration, err := time.ParseDuration(w.WriteTimeout)
	if err != nil || duration <= 0 {
		return 10 * time.Second
	}
	return duration
}

// GetPongTimeout retorna cuánto se espera un pong antes de cerrar
func (w *WebSocketConfig) GetPongTimeout() time.Duration {
	duration, err := time.ParseDuration(w.PongTimeout)
	if err != nil || duration <= 0 {
		return 60 * time.Second
	}
	return duration
}

// FrontendConfig describe el build estático opcional del tablero
type FrontendConfig struct {
	DistPath string `yaml:"dist_path"` // "" = no servir frontend
	Addr     string `yaml:"addr"`
}

// ArchiveConfig configura el historial opcional de ticks en PostgreSQL
type ArchiveConfig struct {
	PostgresURL    string `yaml:"postgres_url"` // "" = deshabilitado
	MinConns       int    `yaml:"min_conns"`
	MaxConns       int    `yaml:"max_conns"`
	ConnectTimeout string `yaml:"connect_timeout"`
}

// Enabled indica si el historial está configurado
func (a ArchiveConfig) Enabled() bool {
	return a.PostgresURL != ""
}

func (a ArchiveConfig) GetConnectTimeoutDuration() (time.Duration, error) {
	return time.ParseDuration(a.ConnectTimeout)
}

// Default retorna la configuración usada cuando no hay archivo
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{Host: "0.0.0.0", Port: 8080},
		Dashboard: DashboardConfig{
			TickInterval: "5s",
			HeatmapSize:  15,
			WorstN:       5,
		},
		WebSocket: WebSocketConfig{
			WriteTimeout: "10s",
			PongTimeout:  "60s",
			SendBuffer:   256,
		},
		Archive: ArchiveConfig{
			MinConns:       1,
			MaxConns:       4,
			ConnectTimeout: "10s",
		},
	}
}

// LoadConfig carga la configuración desde el archivo YAML sobre los valores por defecto
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error leyendo archivo de configuración: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault carga el archivo si existe; si no existe retorna Default()
func LoadOrDefault(configPath string) (*Config, bool, error) {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return Default(), false, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

// Parse decodifica YAML sobre Default() y valida el resultado
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parseando YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate revisa rangos básicos
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("%w: http.port fuera de rango (%d)", ErrInvalidConfig, c.HTTP.Port)
	}
	if c.Dashboard.HeatmapSize <= 0 {
		return fmt.Errorf("%w: dashboard.heatmap_size debe ser positivo", ErrInvalidConfig)
	}
	if c.Dashboard.WorstN <= 0 {
		return fmt.Errorf("%w: dashboard.worst_n debe ser positivo", ErrInvalidConfig)
	}
	if c.WebSocket.SendBuffer <= 0 {
		return fmt.Errorf("%w: websocket.send_buffer debe ser positivo", ErrInvalidConfig)
	}
	if c.Archive.Enabled() && c.Archive.MaxConns < c.Archive.MinConns {
		return fmt.Errorf("%w: archive.max_conns menor que min_conns", ErrInvalidConfig)
	}
	return nil
}
