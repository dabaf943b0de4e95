package views

import (
	"slices"

	"api-footwear/internal/models"
)

// Bottleneck retorna el proceso con mayor tiempo de ciclo (el primero ante empate)
func Bottleneck(processes []models.Process) (models.Process, bool) {
	if len(processes) == 0 {
		return models.Process{}, false
	}
	worst := processes[0]
	for _, p := range processes[1:] {
		if p.CycleTime > worst.CycleTime {
			worst = p
		}
	}
	return worst, true
}

// BestPerformer retorna el proceso con mayor throughput (el primero ante empate)
func BestPerformer(processes []models.Process) (models.Process, bool) {
	if len(processes) == 0 {
		return models.Process{}, false
	}
	best := processes[0]
	for _, p := range processes[1:] {
		if p.Throughput > best.Throughput {
			best = p
		}
	}
	return best, true
}

// AverageCycleTime promedia cycleTime; 0 si no hay procesos
func AverageCycleTime(processes []models.Process) float64 {
	if len(processes) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range processes {
		total += p.CycleTime
	}
	return total / float64(len(processes))
}

// StatusCount es el conteo de procesos en un estado
type StatusCount struct {
	Status models.StationStatus `json:"status"`
	Count  int                  `json:"count"`
}

// StatusCounts cuenta procesos por estado, incluyendo estados con 0
func StatusCounts(processes []models.Process) []StatusCount {
	counts := make(map[models.StationStatus]int, len(models.AllStatuses))
	for _, p := range processes {
		counts[p.Status]++
	}
	result := make([]StatusCount, 0, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		result = append(result, StatusCount{Status: s, Count: counts[s]})
	}
	return result
}

// CategoryEnergy es el consumo total de energía de una categoría
type CategoryEnergy struct {
	Category    models.Category `json:"category"`
	TotalEnergy float64         `json:"totalEnergy"`
	Count       int             `json:"count"`
}

// EnergyByCategory suma energyConsumption por categoría en orden fijo
func EnergyByCategory(processes []models.Process) []CategoryEnergy {
	result := make([]CategoryEnergy, len(models.AllCategories))
	index := make(map[models.Category]int, len(models.AllCategories))
	for i, c := range models.AllCategories {
		result[i].Category = c
		index[c] = i
	}
	for _, p := range processes {
		i, ok := index[p.Category]
		if !ok {
			continue
		}
		result[i].TotalEnergy += p.EnergyConsumption
		result[i].Count++
	}
	return result
}

// Analytics resume la página de analítica de producción
type Analytics struct {
	Bottleneck       *models.Process   `json:"bottleneck"`
	BestPerformer    *models.Process   `json:"bestPerformer"`
	AverageCycleTime float64           `json:"averageCycleTime"`
	StatusCounts     []StatusCount     `json:"statusCounts"`
	EnergyByCategory []CategoryEnergy  `json:"energyByCategory"`
	CategoryQuality  []CategoryQuality `json:"categoryQuality"`
}

// BuildAnalytics arma el resumen completo sobre una lista de procesos
func BuildAnalytics(processes []models.Process) Analytics {
	a := Analytics{
		AverageCycleTime: AverageCycleTime(processes),
		StatusCounts:     StatusCounts(processes),
		EnergyByCategory: EnergyByCategory(processes),
		CategoryQuality:  CategoryQualityAverages(processes),
	}
	if p, ok := Bottleneck(processes); ok {
		a.Bottleneck = &p
	}
	if p, ok := BestPerformer(processes); ok {
		a.BestPerformer = &p
	}
	return a
}

// WeightedStitchDefectRate pondera defectRate por usageFrequency; 0 si no hay uso
func WeightedStitchDefectRate(modes []models.StitchMode) float64 {
	usage, weighted := 0.0, 0.0
	for _, m := range modes {
		usage += m.UsageFrequency
		weighted += m.UsageFrequency * m.DefectRate
	}
	if usage == 0 {
		return 0
	}
	return weighted / usage
}

// AlertsBySeverity ordena de forma estable: error, warning, info
func AlertsBySeverity(alerts []models.Alert) []models.Alert {
	sorted := slices.Clone(alerts)
	slices.SortStableFunc(sorted, func(a, b models.Alert) int {
		return b.Type.Severity() - a.Type.Severity()
	})
	return sorted
}
