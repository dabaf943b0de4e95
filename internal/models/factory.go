package models

// StationStatus representa el estado operativo de un proceso o estación
type StationStatus string

const (
	StatusRunning     StationStatus = "Running"
	StatusIdle        StationStatus = "Idle"
	StatusMaintenance StationStatus = "Maintenance"
)

// AllStatuses en orden de presentación
var AllStatuses = []StationStatus{StatusRunning, StatusIdle, StatusMaintenance}

// Process es un paso de fabricación simulado dentro de una categoría
type Process struct {
	ID                string        `json:"id" yaml:"id"`
	Name              string        `json:"name" yaml:"name"`
	Category          Category      `json:"category" yaml:"category"`
	Status            StationStatus `json:"status" yaml:"status"`
	Throughput        int           `json:"throughput" yaml:"throughput"`
	MachineID         string        `json:"machineId" yaml:"machine_id"`
	OperatorID        string        `json:"operatorId" yaml:"operator_id"`
	EnergyConsumption float64       `json:"energyConsumption" yaml:"energy_consumption"`
	QualityScore      float64       `json:"qualityScore" yaml:"quality_score"`
	CycleTime         float64       `json:"cycleTime" yaml:"cycle_time"` // segundos
}

// StitchMode describe un tipo de costura y su uso relativo
type StitchMode struct {
	ID             string  `json:"id" yaml:"id"`
	Name           string  `json:"name" yaml:"name"`
	UsageFrequency float64 `json:"usageFrequency" yaml:"usage_frequency"` // %
	DefectRate     float64 `json:"defectRate" yaml:"defect_rate"`         // %
	Description    string  `json:"description" yaml:"description"`
}

// Material es un insumo con su nivel de stock y porcentaje de merma
type Material struct {
	ID              string  `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	StockLevel      float64 `json:"stockLevel" yaml:"stock_level"`
	MaxStock        float64 `json:"maxStock" yaml:"max_stock"`
	Unit            string  `json:"unit" yaml:"unit"`
	UsagePerProcess float64 `json:"usagePerProcess" yaml:"usage_per_process"`
	WastePercentage float64 `json:"wastePercentage" yaml:"waste_percentage"`
}

// InventoryItem es una fila del resumen de inventario.
// Es independiente de Material aunque compartan nombres.
type InventoryItem struct {
	ID    string  `json:"id" yaml:"id"`
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
	Max   float64 `json:"max" yaml:"max"`
	Unit  string  `json:"unit" yaml:"unit"`
}

// StationData representa una estación monitoreada de la planta
type StationData struct {
	ID                string        `json:"id" yaml:"id"`
	Name              string        `json:"name" yaml:"name"`
	Description       string        `json:"description" yaml:"description"`
	Status            StationStatus `json:"status" yaml:"status"`
	Throughput        int           `json:"throughput" yaml:"throughput"`
	Accuracy          float64       `json:"accuracy" yaml:"accuracy"`
	EnergyConsumption float64       `json:"energyConsumption" yaml:"energy_consumption"`
	LastMaintenance   string        `json:"lastMaintenance" yaml:"last_maintenance"`
}

// KPIMetrics agrupa los indicadores del tablero ejecutivo
type KPIMetrics struct {
	TotalPairs          int     `json:"totalPairs" yaml:"total_pairs"`
	ActiveProcesses     int     `json:"activeProcesses" yaml:"active_processes"`
	DefectRate          float64 `json:"defectRate" yaml:"defect_rate"`
	Utilization         float64 `json:"utilization" yaml:"utilization"`
	MaterialConsumption float64 `json:"materialConsumption" yaml:"material_consumption"` // unidades/hora
	OnTimeProduction    float64 `json:"onTimeProduction" yaml:"on_time_production"`       // %
	TargetAchieved      float64 `json:"targetAchieved" yaml:"target_achieved"`
	ActiveStations      int     `json:"activeStations" yaml:"active_stations"`
}

// QCData es el conteo de defectos de una franja horaria
type QCData struct {
	Time    string `json:"time" yaml:"time"`
	Defects int    `json:"defects" yaml:"defects"`
}

// DefectDistribution es la participación de una categoría de defecto
type DefectDistribution struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// FlowStage es una etapa del flujo de producción con su conteo de pares
type FlowStage struct {
	Label      string `json:"label" yaml:"label"`
	Count      int    `json:"count" yaml:"count"`
	Bottleneck bool   `json:"bottleneck" yaml:"bottleneck"`
}
