// Package generator sintetiza una foto plausible del estado de la planta.
//
// Las funciones que consumen aleatoriedad reciben un Rand explícito para
// permitir reproducir una secuencia en pruebas. El resto retorna datos de
// referencia fijos.
package generator

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"api-footwear/internal/models"
)

// Rangos de generación de procesos
const (
	runningThreshold = 0.15

	minThroughput  = 80
	throughputSpan = 50
	minOperator    = 100
	operatorSpan   = 900
	machineBase    = 100
	minEnergy      = 1.5
	energySpan     = 10.0
	minQuality     = 95.0
	qualitySpan    = 5.0
	minCycleTime   = 15.0
	cycleTimeSpan  = 45.0
	baseTotalPairs = 12450
	totalPairsSpan = 500
	minDefects     = 2
	defectsSpan    = 5
)

// QCHours son las franjas fijas del gráfico de control de calidad
var QCHours = []string{"08:00", "10:00", "12:00", "14:00", "16:00", "18:00"}

// Processes genera un proceso por cada nombre canónico, en orden de categoría
func Processes(r Rand) []models.Process {
	processes := make([]models.Process, 0, len(CanonicalProcessNames)*ProcessesPerCategory)
	for _, entry := range CanonicalProcessNames {
		for i, name := range entry.Names {
			processes = append(processes, models.Process{
				ID:                fmt.Sprintf("p-%s-%d", entry.Category.Slug(), i),
				Name:              name,
				Category:          entry.Category,
				Status:            drawStatus(r),
				Throughput:        minThroughput + r.IntN(throughputSpan),
				MachineID:         fmt.Sprintf("MAC-%s-%d", entry.Category.Prefix(), machineBase+i),
				OperatorID:        fmt.Sprintf("OP-%d", minOperator+r.IntN(operatorSpan)),
				EnergyConsumption: minEnergy + r.Float64()*energySpan,
				QualityScore:      minQuality + r.Float64()*qualitySpan,
				CycleTime:         minCycleTime + r.Float64()*cycleTimeSpan,
			})
		}
	}
	return processes
}

// drawStatus: ~85% Running, el resto repartido entre Idle y Maintenance
func drawStatus(r Rand) models.StationStatus {
	if r.Float64() > runningThreshold {
		return models.StatusRunning
	}
	if r.Float64() > 0.5 {
		return models.StatusIdle
	}
	return models.StatusMaintenance
}

// StitchModes retorna los 5 modos de costura de referencia
func StitchModes() []models.StitchMode {
	return []models.StitchMode{
		{ID: "sm1", Name: "Lock Stitch", UsageFrequency: 65, DefectRate: 0.8, Description: "Standard high-strength secure stitch."},
		{ID: "sm2", Name: "Chain Stitch", UsageFrequency: 15, DefectRate: 1.2, Description: "Flexible stitch for decorative or lining areas."},
		{ID: "sm3", Name: "Zigzag Stitch", UsageFrequency: 10, DefectRate: 1.5, Description: "Used for edge finishing and reinforcement."},
		{ID: "sm4", Name: "Decorative Stitch", UsageFrequency: 5, DefectRate: 2.1, Description: "Aesthetic stitching for branding and style."},
		{ID: "sm5", Name: "Reinforced Stitch", UsageFrequency: 5, DefectRate: 0.4, Description: "Heavy-duty stitch for stress points like eyelets."},
	}
}

// Materials retorna los 5 materiales de referencia
func Materials() []models.Material {
	return []models.Material{
		{ID: "m1", Name: "Full Grain Leather", StockLevel: 450, MaxStock: 1000, Unit: "m²", UsagePerProcess: 0.45, WastePercentage: 12},
		{ID: "m2", Name: "Recycled Rubber", StockLevel: 2200, MaxStock: 5000, Unit: "units", UsagePerProcess: 1, WastePercentage: 5},
		{ID: "m3", Name: "Nylon Thread (G40)", StockLevel: 85, MaxStock: 500, Unit: "spools", UsagePerProcess: 0.1, WastePercentage: 2},
		{ID: "m4", Name: "Industrial Adhesive", StockLevel: 120, MaxStock: 300, Unit: "L", UsagePerProcess: 0.05, WastePercentage: 8},
		{ID: "m5", Name: "Synthetic Mesh", StockLevel: 800, MaxStock: 2000, Unit: "m²", UsagePerProcess: 0.3, WastePercentage: 15},
	}
}

// Inventory retorna el resumen de inventario de referencia.
// Industrial Adhesive vale 45 aquí y 120 en Materials; ambos valores se conservan.
func Inventory() []models.InventoryItem {
	return []models.InventoryItem{
		{ID: "inv-1", Label: "Full Grain Leather", Value: 450, Max: 1000, Unit: "m²"},
		{ID: "inv-2", Label: "Recycled Rubber", Value: 2200, Max: 5000, Unit: "units"},
		{ID: "inv-3", Label: "Industrial Adhesive", Value: 45, Max: 300, Unit: "L"},
		{ID: "inv-4", Label: "Synthetic Mesh", Value: 800, Max: 2000, Unit: "m²"},
	}
}

// KPIs genera los indicadores; solo TotalPairs es aleatorio
func KPIs(r Rand) models.KPIMetrics {
	return models.KPIMetrics{
		TotalPairs:          baseTotalPairs + r.IntN(totalPairsSpan),
		ActiveProcesses:     58,
		DefectRate:          1.15,
		Utilization:         89.4,
		MaterialConsumption: 450,
		OnTimeProduction:    94.2,
		TargetAchieved:      82.5,
		ActiveStations:      4,
	}
}

// Stations retorna las estaciones monitoreadas de referencia
func Stations() []models.StationData {
	return []models.StationData{
		{
			ID:                "s1",
			Name:              "Cutting Hall A",
			Description:       "Precision laser cutting units",
			Status:            models.StatusRunning,
			Throughput:        145,
			Accuracy:          99.4,
			EnergyConsumption: 14.5,
			LastMaintenance:   "2023-10-12",
		},
		{
			ID:                "s2",
			Name:              "Stitching Line 4",
			Description:       "Integrated sewing systems",
			Status:            models.StatusRunning,
			Throughput:        92,
			Accuracy:          98.2,
			EnergyConsumption: 9.1,
			LastMaintenance:   "2023-11-05",
		},
	}
}

// Alerts retorna las alertas de referencia
func Alerts() []models.Alert {
	return []models.Alert{
		{ID: "a1", Type: models.AlertError, Message: "Machine Failure: Heel Lasting MAC-LA-102", Timestamp: "14:22", Recommendation: "Dispatch maintenance to Bay 4 immediately"},
		{ID: "a2", Type: models.AlertWarning, Message: "Low Stock: Industrial Adhesive", Timestamp: "13:45", Recommendation: "Approve procurement order PO-9941"},
		{ID: "a3", Type: models.AlertInfo, Message: "Shift Handover Approaching", Timestamp: "15:30", Recommendation: "Prepare performance reports for Shift B supervisor"},
	}
}

// QCData genera un conteo de defectos por franja horaria
func QCData(r Rand) []models.QCData {
	data := make([]models.QCData, 0, len(QCHours))
	for _, h := range QCHours {
		data = append(data, models.QCData{Time: h, Defects: minDefects + r.IntN(defectsSpan)})
	}
	return data
}

// DefectDistribution retorna la distribución de defectos (suma 100)
func DefectDistribution() []models.DefectDistribution {
	return []models.DefectDistribution{
		{Name: "Stitching", Value: 45},
		{Name: "Bonding", Value: 25},
		{Name: "Symmetry", Value: 20},
		{Name: "Material", Value: 10},
	}
}

// ProductionFlow retorna las etapas del flujo de producción.
// Sole Attachment es el cuello de botella de referencia.
func ProductionFlow() []models.FlowStage {
	return []models.FlowStage{
		{Label: "Raw Material", Count: 4200},
		{Label: "Cutting", Count: 3850},
		{Label: "Stitching", Count: 3600},
		{Label: "Sole Attachment", Count: 3520, Bottleneck: true},
		{Label: "Finishing", Count: 3480},
		{Label: "Packaging", Count: 3400},
		{Label: "Warehouse", Count: 12450},
	}
}

// Generate arma una foto completa llamando a cada generador una vez
func Generate(r Rand) models.Snapshot {
	return models.Snapshot{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now(),
		Processes:   Processes(r),
		StitchModes: StitchModes(),
		Materials:   Materials(),
		Inventory:   Inventory(),
		KPIs:        KPIs(r),
		Stations:    Stations(),
		Alerts:      Alerts(),
		QC:          QCData(r),
		Defects:     DefectDistribution(),
		Flow:        ProductionFlow(),
	}
}
