package views_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api-footwear/internal/generator"
	"api-footwear/internal/models"
	"api-footwear/internal/views"
)

func sampleProcesses() []models.Process {
	seed := uint64(11)
	return generator.Processes(generator.NewRand(&seed))
}

func proc(id string, c models.Category, quality, cycle float64, throughput int) models.Process {
	return models.Process{
		ID:           id,
		Name:         "Proc " + id,
		Category:     c,
		Status:       models.StatusRunning,
		MachineID:    "MAC-" + id,
		QualityScore: quality,
		CycleTime:    cycle,
		Throughput:   throughput,
	}
}

func TestFilterProcessesByCategory(t *testing.T) {
	processes := sampleProcesses()

	res, err := views.FilterProcesses(processes, "", "Stitching")
	require.NoError(t, err)
	assert.Len(t, res.Processes, 10)
	assert.True(t, res.Filtered)
	assert.Equal(t, 60, res.Total)
	for _, p := range res.Processes {
		assert.Equal(t, models.CategoryStitching, p.Category)
	}
}

func TestFilterProcessesNoCriteria(t *testing.T) {
	processes := sampleProcesses()

	res, err := views.FilterProcesses(processes, "", "")
	require.NoError(t, err)
	assert.False(t, res.Filtered)
	assert.Equal(t, models.CategoryAll, res.Category)
	assert.Equal(t, processes, res.Processes)
}

func TestFilterProcessesQueryIsCaseInsensitive(t *testing.T) {
	processes := sampleProcesses()

	res, err := views.FilterProcesses(processes, "heel", models.CategoryAll)
	require.NoError(t, err)
	names := make([]string, 0, len(res.Processes))
	for _, p := range res.Processes {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Heel Counter Fixing", "Heel Lasting", "Heel Attaching"}, names)

	// El texto de la alerta usa MAC-LA-102 y debe encontrar la máquina
	res, err = views.FilterProcesses(processes, "MAC-LA-102", "All")
	require.NoError(t, err)
	require.Len(t, res.Processes, 1)
	assert.Equal(t, "Heel Lasting", res.Processes[0].Name)
}

func TestFilterProcessesEmptyResultIsValid(t *testing.T) {
	res, err := views.FilterProcesses(sampleProcesses(), "zzz-no-existe", "Packaging")
	require.NoError(t, err)
	assert.NotNil(t, res.Processes)
	assert.Empty(t, res.Processes)
	assert.True(t, res.Filtered)
}

func TestFilterProcessesUnknownCategory(t *testing.T) {
	_, err := views.FilterProcesses(sampleProcesses(), "", "Welding")
	require.Error(t, err)
	assert.ErrorIs(t, err, views.ErrUnknownCategory)
}

func TestCategoryQualityAveragesZeroCount(t *testing.T) {
	processes := []models.Process{
		proc("a", models.CategoryStitching, 96, 20, 90),
		proc("b", models.CategoryStitching, 98, 20, 90),
	}

	avgs := views.CategoryQualityAverages(processes)
	require.Len(t, avgs, len(models.AllCategories))
	for _, a := range avgs {
		if a.Category == models.CategoryStitching {
			assert.InDelta(t, 97.0, a.AverageQuality, 1e-9)
			assert.Equal(t, 2, a.Count)
			continue
		}
		assert.Equal(t, 0.0, a.AverageQuality)
		assert.Equal(t, 0, a.Count)
	}

	for _, a := range views.CategoryQualityAverages(nil) {
		assert.Equal(t, 0.0, a.AverageQuality)
	}
}

func TestWorstByQualityStable(t *testing.T) {
	processes := []models.Process{
		proc("a", models.CategoryLasting, 97, 20, 90),
		proc("b", models.CategoryLasting, 95.5, 20, 90),
		proc("c", models.CategoryLasting, 99, 20, 90),
		proc("d", models.CategoryLasting, 95.5, 20, 90),
		proc("e", models.CategoryLasting, 96, 20, 90),
	}
	before := append([]models.Process(nil), processes...)

	worst := views.WorstByQuality(processes, 3)
	ids := []string{worst[0].ID, worst[1].ID, worst[2].ID}
	assert.Equal(t, []string{"b", "d", "e"}, ids)
	assert.Equal(t, before, processes, "la entrada no debe modificarse")

	assert.Len(t, views.WorstByQuality(processes, 50), 5)
	assert.Empty(t, views.WorstByQuality(processes, 0))
	assert.Equal(t, views.WorstByQuality(processes, 5), views.WorstByQuality(processes, 5))
}

func TestHeatmap(t *testing.T) {
	processes := sampleProcesses()

	cells := views.Heatmap(processes, views.DefaultHeatmapSize, views.HeatmapHighlight)
	require.Len(t, cells, 15)
	for i, c := range cells {
		assert.Equal(t, processes[i].ID, c.ID)
		assert.Equal(t, processes[i].QualityScore > 98, c.Highlighted)
	}
	assert.Len(t, views.Heatmap(processes[:3], 15, 98), 3)
	assert.Empty(t, views.Heatmap(processes, -1, 98))
}

func TestInventoryLowStock(t *testing.T) {
	adhesive := models.InventoryItem{Label: "Industrial Adhesive", Value: 45, Max: 300}
	mesh := models.InventoryItem{Label: "Synthetic Mesh", Value: 800, Max: 2000}

	assert.True(t, views.InventoryLowStock(adhesive))
	assert.InDelta(t, 15.0, views.InventoryPercent(adhesive), 1e-9)
	assert.False(t, views.InventoryLowStock(mesh))
	assert.InDelta(t, 40.0, views.InventoryPercent(mesh), 1e-9)

	// Exactamente 20% no es bajo
	assert.False(t, views.InventoryLowStock(models.InventoryItem{Value: 20, Max: 100}))
	assert.True(t, views.InventoryLowStock(models.InventoryItem{Value: 5, Max: 0}))
	assert.Equal(t, 0.0, views.InventoryPercent(models.InventoryItem{Value: 5, Max: 0}))

	rows := views.InventoryViews(generator.Inventory())
	require.Len(t, rows, 4)
	low := 0
	for _, r := range rows {
		if r.LowStock {
			low++
			assert.Equal(t, "Industrial Adhesive", r.Label)
		}
	}
	assert.Equal(t, 1, low)
}

func TestMaterialHighWaste(t *testing.T) {
	flagged := make([]string, 0)
	for _, m := range views.MaterialViews(generator.Materials()) {
		if m.HighWaste {
			flagged = append(flagged, m.Name)
		}
	}
	assert.Equal(t, []string{"Full Grain Leather", "Synthetic Mesh"}, flagged)
	assert.False(t, views.MaterialHighWaste(models.Material{WastePercentage: 10}))
}

func TestAnalytics(t *testing.T) {
	processes := []models.Process{
		proc("a", models.CategoryPreProduction, 97, 30, 100),
		proc("b", models.CategoryBottoming, 96, 55, 90),
		proc("c", models.CategoryBottoming, 98, 55, 129),
	}
	processes[1].Status = models.StatusIdle

	a := views.BuildAnalytics(processes)
	require.NotNil(t, a.Bottleneck)
	assert.Equal(t, "b", a.Bottleneck.ID, "en empate gana el primero")
	require.NotNil(t, a.BestPerformer)
	assert.Equal(t, "c", a.BestPerformer.ID)
	assert.InDelta(t, 140.0/3.0, a.AverageCycleTime, 1e-9)

	counts := map[models.StationStatus]int{}
	for _, s := range a.StatusCounts {
		counts[s.Status] = s.Count
	}
	assert.Equal(t, map[models.StationStatus]int{
		models.StatusRunning:     2,
		models.StatusIdle:        1,
		models.StatusMaintenance: 0,
	}, counts)

	empty := views.BuildAnalytics(nil)
	assert.Nil(t, empty.Bottleneck)
	assert.Nil(t, empty.BestPerformer)
	assert.Equal(t, 0.0, empty.AverageCycleTime)
}

func TestWeightedStitchDefectRate(t *testing.T) {
	rate := views.WeightedStitchDefectRate(generator.StitchModes())
	// (65*0.8 + 15*1.2 + 10*1.5 + 5*2.1 + 5*0.4) / 100
	assert.InDelta(t, 0.975, rate, 1e-9)
	assert.Equal(t, 0.0, views.WeightedStitchDefectRate(nil))
}

func TestAlertsBySeverity(t *testing.T) {
	alerts := []models.Alert{
		{ID: "i1", Type: models.AlertInfo},
		{ID: "w1", Type: models.AlertWarning},
		{ID: "e1", Type: models.AlertError},
		{ID: "w2", Type: models.AlertWarning},
	}
	sorted := views.AlertsBySeverity(alerts)
	ids := make([]string, 0, len(sorted))
	for _, a := range sorted {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"e1", "w1", "w2", "i1"}, ids)
	assert.Equal(t, "i1", alerts[0].ID)
}

type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }

func TestTick(t *testing.T) {
	kpis := models.KPIMetrics{TotalPairs: 12450, DefectRate: 1.15}

	next := views.Tick(kpis, 1)
	assert.Equal(t, 12451, next.TotalPairs)
	assert.Equal(t, 12450, kpis.TotalPairs)
	assert.Equal(t, kpis.DefectRate, next.DefectRate)

	assert.Equal(t, 12450, views.Tick(kpis, -3).TotalPairs)
	assert.Equal(t, 1, views.RandomTickDelta(fixedRand(1)))
	assert.Equal(t, 0, views.RandomTickDelta(fixedRand(4)))
}

func ExampleFilterProcesses() {
	processes := []models.Process{
		{ID: "p-stitching-0", Name: "Vamp Stitching", Category: models.CategoryStitching, MachineID: "MAC-St-100"},
		{ID: "p-lasting-0", Name: "Toe Lasting", Category: models.CategoryLasting, MachineID: "MAC-La-100"},
		{ID: "p-stitching-1", Name: "Quarter Stitching", Category: models.CategoryStitching, MachineID: "MAC-St-101"},
	}

	res, err := views.FilterProcesses(processes, "stitch", "Stitching")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range res.Processes {
		fmt.Println(p.ID, p.Name)
	}
	fmt.Println(res.Filtered, res.Total)
	// Output:
	// p-stitching-0 Vamp Stitching
	// p-stitching-1 Quarter Stitching
	// true 3
}
