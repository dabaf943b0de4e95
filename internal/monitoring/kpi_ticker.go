package monitoring

import (
	"context"
	"log"
	"sync"
	"time"

	"api-footwear/internal/models"
	"api-footwear/internal/views"
)

// DefaultTickInterval es el intervalo de referencia del tick de KPIs
const DefaultTickInterval = 5 * time.Second

// KPIStore es lo que el ticker necesita del store de la foto
type KPIStore interface {
	ApplyTick(delta int) models.KPIUpdate
}

// KPITicker incrementa periódicamente el total de pares del store
type KPITicker struct {
	ctx      context.Context
	cancel   context.CancelFunc
	store    KPIStore
	rng      views.TickRand
	interval time.Duration
	rngMu    sync.Mutex
	done     chan struct{}
	started  bool
	startMu  sync.Mutex
}

// NewKPITicker crea el ticker. Un intervalo no positivo usa DefaultTickInterval.
func NewKPITicker(parent context.Context, store KPIStore, rng views.TickRand, interval time.Duration) *KPITicker {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ctx, cancel := context.WithCancel(parent)

	return &KPITicker{
		ctx:      ctx,
		cancel:   cancel,
		store:    store,
		rng:      rng,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start ejecuta el loop del ticker hasta que se llame Stop o se cancele el contexto padre.
// Debe ejecutarse en una goroutine; una segunda llamada retorna de inmediato.
func (t *KPITicker) Start() {
	t.startMu.Lock()
	if t.started {
		t.startMu.Unlock()
		return
	}
	t.started = true
	t.startMu.Unlock()

	log.Printf("🔄 Iniciando ticker de KPIs (intervalo: %v)", t.interval)

	ticker := time.NewTicker(t.interval)
	defer func() {
		ticker.Stop()
		close(t.done)
	}()

	for {
		select {
		case <-t.ctx.Done():
			log.Println("🛑 Ticker de KPIs detenido")
			return
		case <-ticker.C:
			t.TickOnce()
		}
	}
}

// TickOnce aplica un único incremento aleatorio en [0, 2)
func (t *KPITicker) TickOnce() models.KPIUpdate {
	t.rngMu.Lock()
	delta := views.RandomTickDelta(t.rng)
	t.rngMu.Unlock()

	return t.store.ApplyTick(delta)
}

// Stop cancela el loop y espera a que termine si fue iniciado. Es idempotente.
func (t *KPITicker) Stop() {
	t.cancel()

	t.startMu.Lock()
	started := t.started
	t.startMu.Unlock()

	if started {
		<-t.done
	}
}

// Interval retorna el intervalo efectivo
func (t *KPITicker) Interval() time.Duration {
	return t.interval
}
