// Package views calcula vistas derivadas de solo lectura sobre una foto de planta.
// Ninguna función modifica los slices que recibe.
package views

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"api-footwear/internal/models"
)

// ErrUnknownCategory se retorna cuando el selector no es "All" ni una categoría fija
var ErrUnknownCategory = errors.New("views: categoría desconocida")

// ProcessFilterResult es el resultado del filtro de procesos.
// Filtered es false cuando no se aplicó ningún criterio, de modo que una
// lista vacía con Filtered=true significa "sin coincidencias".
type ProcessFilterResult struct {
	Processes []models.Process `json:"processes"`
	Query     string           `json:"query"`
	Category  string           `json:"category"`
	Filtered  bool             `json:"filtered"`
	Total     int              `json:"total"`
}

// FilterProcesses filtra por texto (nombre o machineId, sin distinguir
// mayúsculas) y por categoría, preservando el orden original
func FilterProcesses(processes []models.Process, query, category string) (ProcessFilterResult, error) {
	if category == "" {
		category = models.CategoryAll
	}
	if category != models.CategoryAll && !models.Category(category).Valid() {
		return ProcessFilterResult{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	needle := strings.ToLower(query)
	matched := make([]models.Process, 0, len(processes))
	for _, p := range processes {
		matchSearch := strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.MachineID), needle)
		matchCategory := category == models.CategoryAll || string(p.Category) == category
		if matchSearch && matchCategory {
			matched = append(matched, p)
		}
	}

	return ProcessFilterResult{
		Processes: matched,
		Query:     query,
		Category:  category,
		Filtered:  query != "" || category != models.CategoryAll,
		Total:     len(processes),
	}, nil
}

// CategoryQuality es el promedio de calidad de una categoría
type CategoryQuality struct {
	Category       models.Category `json:"category"`
	AverageQuality float64         `json:"averageQuality"`
	Count          int             `json:"count"`
}

// CategoryQualityAverages promedia qualityScore por categoría en orden fijo.
// Una categoría sin procesos reporta 0.
func CategoryQualityAverages(processes []models.Process) []CategoryQuality {
	sums := make(map[models.Category]float64, len(models.AllCategories))
	counts := make(map[models.Category]int, len(models.AllCategories))
	for _, p := range processes {
		sums[p.Category] += p.QualityScore
		counts[p.Category]++
	}

	result := make([]CategoryQuality, 0, len(models.AllCategories))
	for _, c := range models.AllCategories {
		avg := 0.0
		if counts[c] > 0 {
			avg = sums[c] / float64(counts[c])
		}
		result = append(result, CategoryQuality{Category: c, AverageQuality: avg, Count: counts[c]})
	}
	return result
}

// WorstByQuality retorna los n procesos de menor qualityScore.
// El orden es estable: empates conservan el orden de entrada.
func WorstByQuality(processes []models.Process, n int) []models.Process {
	if n <= 0 {
		return []models.Process{}
	}
	sorted := slices.Clone(processes)
	slices.SortStableFunc(sorted, func(a, b models.Process) int {
		return compareFloat(a.QualityScore, b.QualityScore)
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// HeatmapCell es una celda del mapa de calor de procesos clave
type HeatmapCell struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	QualityScore float64 `json:"qualityScore"`
	Highlighted  bool    `json:"highlighted"`
}

// Heatmap toma los primeros n procesos y marca los que superan highlight
func Heatmap(processes []models.Process, n int, highlight float64) []HeatmapCell {
	if n < 0 {
		n = 0
	}
	if n > len(processes) {
		n = len(processes)
	}
	cells := make([]HeatmapCell, 0, n)
	for _, p := range processes[:n] {
		cells = append(cells, HeatmapCell{
			ID:           p.ID,
			Name:         p.Name,
			QualityScore: p.QualityScore,
			Highlighted:  p.QualityScore > highlight,
		})
	}
	return cells
}
