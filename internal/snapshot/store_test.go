package snapshot_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api-footwear/internal/generator"
	"api-footwear/internal/models"
	"api-footwear/internal/snapshot"
)

func newStore(t *testing.T) *snapshot.Store {
	t.Helper()
	seed := uint64(5)
	return snapshot.NewStore(generator.Generate(generator.NewRand(&seed)))
}

func TestApplyTickIncrementsTotalPairs(t *testing.T) {
	store := newStore(t)
	before := store.KPIs()

	update := store.ApplyTick(1)
	assert.Equal(t, before.TotalPairs+1, update.KPIs.TotalPairs)
	assert.Equal(t, before.TotalPairs+1, store.KPIs().TotalPairs)
	assert.Equal(t, store.Snapshot().ID, update.SnapshotID)
	assert.Equal(t, 1, update.Delta)

	// Un delta negativo no reduce el total
	update = store.ApplyTick(-4)
	assert.Equal(t, 0, update.Delta)
	assert.Equal(t, before.TotalPairs+1, store.KPIs().TotalPairs)

	// El resto de indicadores no cambia
	after := store.KPIs()
	assert.Equal(t, before.DefectRate, after.DefectRate)
	assert.Equal(t, before.ActiveStations, after.ActiveStations)
}

func TestSnapshotReturnsCopies(t *testing.T) {
	store := newStore(t)

	snap := store.Snapshot()
	snap.Processes[0].Name = "modificado"
	snap.Alerts = nil

	fresh := store.Snapshot()
	assert.NotEqual(t, "modificado", fresh.Processes[0].Name)
	assert.Len(t, fresh.Alerts, 3)

	procs := store.Processes()
	procs[1].QualityScore = 0
	assert.NotZero(t, store.Processes()[1].QualityScore)
}

func TestSubscribeReceivesUpdates(t *testing.T) {
	store := newStore(t)
	updates, cancel := store.Subscribe(4)

	store.ApplyTick(1)
	store.ApplyTick(0)

	first := <-updates
	second := <-updates
	assert.Equal(t, 1, first.Delta)
	assert.Equal(t, 0, second.Delta)
	assert.Equal(t, first.KPIs.TotalPairs, second.KPIs.TotalPairs)

	cancel()
	cancel()
	_, ok := <-updates
	assert.False(t, ok, "el canal debe cerrarse al cancelar")

	// Publicar sin suscriptores no bloquea
	store.ApplyTick(1)
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	store := newStore(t)
	_, cancel := store.Subscribe(1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			store.ApplyTick(1)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ApplyTick se bloqueó con un suscriptor lento")
	}
}

func TestOnUpdateCallback(t *testing.T) {
	store := newStore(t)

	var mu sync.Mutex
	var got []models.KPIUpdate
	store.OnUpdate(func(u models.KPIUpdate) {
		mu.Lock()
		got = append(got, u)
		mu.Unlock()
	})

	store.ApplyTick(1)
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Delta)
}

func TestRegenerateReplacesSnapshot(t *testing.T) {
	store := newStore(t)
	oldID := store.Snapshot().ID

	seed := uint64(6)
	next := store.Regenerate(generator.NewRand(&seed))
	assert.NotEqual(t, oldID, next.ID)
	assert.Equal(t, next.ID, store.Snapshot().ID)
	assert.Len(t, store.Processes(), 60)
}

func TestConcurrentReadsAndTicks(t *testing.T) {
	store := newStore(t)
	start := store.KPIs().TotalPairs

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				store.ApplyTick(1)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = store.Snapshot()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, start+200, store.KPIs().TotalPairs)
}
