package models

import "time"

// Snapshot es una instancia generada de todas las colecciones del tablero
type Snapshot struct {
	ID          string               `json:"id" yaml:"id"`
	GeneratedAt time.Time            `json:"generatedAt" yaml:"generated_at"`
	Processes   []Process            `json:"processes" yaml:"processes"`
	StitchModes []StitchMode         `json:"stitchModes" yaml:"stitch_modes"`
	Materials   []Material           `json:"materials" yaml:"materials"`
	Inventory   []InventoryItem      `json:"inventory" yaml:"inventory"`
	KPIs        KPIMetrics           `json:"kpis" yaml:"kpis"`
	Stations    []StationData        `json:"stations" yaml:"stations"`
	Alerts      []Alert              `json:"alerts" yaml:"alerts"`
	QC          []QCData             `json:"qc" yaml:"qc"`
	Defects     []DefectDistribution `json:"defects" yaml:"defects"`
	Flow        []FlowStage          `json:"flow" yaml:"flow"`
}

// Clone retorna una copia profunda para que los lectores no compartan slices
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Processes = append([]Process(nil), s.Processes...)
	out.StitchModes = append([]StitchMode(nil), s.StitchModes...)
	out.Materials = append([]Material(nil), s.Materials...)
	out.Inventory = append([]InventoryItem(nil), s.Inventory...)
	out.Stations = append([]StationData(nil), s.Stations...)
	out.Alerts = append([]Alert(nil), s.Alerts...)
	out.QC = append([]QCData(nil), s.QC...)
	out.Defects = append([]DefectDistribution(nil), s.Defects...)
	out.Flow = append([]FlowStage(nil), s.Flow...)
	return out
}

// KPIUpdate se publica cada vez que el ticker modifica los KPIs
type KPIUpdate struct {
	SnapshotID string     `json:"snapshot_id"`
	Timestamp  time.Time  `json:"timestamp"`
	Delta      int        `json:"delta"`
	KPIs       KPIMetrics `json:"kpis"`
}
