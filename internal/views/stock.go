package views

import "api-footwear/internal/models"

// Umbrales de stock: son reglas distintas para entidades distintas
const (
	LowStockRatio      = 0.20
	HighWastePercent   = 10.0
	HeatmapHighlight   = 98.0
	DefaultHeatmapSize = 15
	DefaultWorstN      = 5
)

// InventoryPercent retorna value/max en porcentaje; 0 si max <= 0
func InventoryPercent(item models.InventoryItem) float64 {
	if item.Max <= 0 {
		return 0
	}
	return item.Value / item.Max * 100
}

// InventoryLowStock indica value/max < 20%. Un máximo no positivo cuenta como bajo.
func InventoryLowStock(item models.InventoryItem) bool {
	if item.Max <= 0 {
		return true
	}
	return item.Value/item.Max < LowStockRatio
}

// MaterialHighWaste indica una merma superior al 10%
func MaterialHighWaste(m models.Material) bool {
	return m.WastePercentage > HighWastePercent
}

// InventoryView es un ítem de inventario con sus indicadores derivados
type InventoryView struct {
	models.InventoryItem
	Percent  float64 `json:"percent"`
	LowStock bool    `json:"lowStock"`
}

// InventoryViews calcula los indicadores para cada ítem, en orden
func InventoryViews(items []models.InventoryItem) []InventoryView {
	result := make([]InventoryView, 0, len(items))
	for _, it := range items {
		result = append(result, InventoryView{
			InventoryItem: it,
			Percent:       InventoryPercent(it),
			LowStock:      InventoryLowStock(it),
		})
	}
	return result
}

// MaterialView es un material con su indicador de merma alta
type MaterialView struct {
	models.Material
	HighWaste bool `json:"highWaste"`
}

// MaterialViews calcula el indicador de merma para cada material, en orden
func MaterialViews(materials []models.Material) []MaterialView {
	result := make([]MaterialView, 0, len(materials))
	for _, m := range materials {
		result = append(result, MaterialView{Material: m, HighWaste: MaterialHighWaste(m)})
	}
	return result
}
