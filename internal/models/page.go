package models

// Page identifica una sección de navegación del tablero
type Page string

const (
	PageDashboard           Page = "Dashboard"
	PageComponentsProcesses Page = "Components & Processes"
	PageStitchingModes      Page = "Stitching Modes"
	PageMaterialsTracking   Page = "Materials Tracking"
	PageStationMonitoring   Page = "Station Monitoring"
	PageQualityControl      Page = "Quality Control"
	PageProductionAnalytics Page = "Production Analytics"
	PageReports             Page = "Reports"
	PageSettings            Page = "Settings"
)

// AllPages en el orden del menú lateral
var AllPages = []Page{
	PageDashboard,
	PageComponentsProcesses,
	PageStitchingModes,
	PageMaterialsTracking,
	PageStationMonitoring,
	PageQualityControl,
	PageProductionAnalytics,
	PageReports,
	PageSettings,
}
