package snapshot

import (
	"log"
	"sync"
	"time"

	"api-footwear/internal/generator"
	"api-footwear/internal/models"
	"api-footwear/internal/views"
)

// Store mantiene la foto actual de la planta.
// Los lectores reciben copias; las escrituras reemplazan valores completos.
type Store struct {
	mu       sync.RWMutex
	current  models.Snapshot
	subsMu   sync.Mutex
	subs     map[int]chan models.KPIUpdate
	nextSub  int
	onUpdate func(models.KPIUpdate)
}

// NewStore crea un store a partir de una foto ya generada
func NewStore(initial models.Snapshot) *Store {
	return &Store{
		current: initial,
		subs:    make(map[int]chan models.KPIUpdate),
	}
}

// Snapshot retorna una copia de la foto actual
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// KPIs retorna los KPIs actuales
func (s *Store) KPIs() models.KPIMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.KPIs
}

// Processes retorna una copia de los procesos actuales
func (s *Store) Processes() []models.Process {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Process(nil), s.current.Processes...)
}

// ApplyTick reemplaza los KPIs por views.Tick(actual, delta) y publica el cambio
func (s *Store) ApplyTick(delta int) models.KPIUpdate {
	s.mu.Lock()
	s.current.KPIs = views.Tick(s.current.KPIs, delta)
	update := models.KPIUpdate{
		SnapshotID: s.current.ID,
		Timestamp:  time.Now(),
		Delta:      max(delta, 0),
		KPIs:       s.current.KPIs,
	}
	s.mu.Unlock()

	s.publish(update)
	return update
}

// Regenerate reemplaza la foto completa con una nueva generación
func (s *Store) Regenerate(r generator.Rand) models.Snapshot {
	next := generator.Generate(r)

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	log.Printf("♻️  Foto regenerada: %s (%d procesos)", next.ID, len(next.Processes))
	return next.Clone()
}

// Subscribe registra un canal que recibe cada KPIUpdate.
// La función retornada cancela la suscripción y cierra el canal.
func (s *Store) Subscribe(buffer int) (<-chan models.KPIUpdate, func()) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan models.KPIUpdate, buffer)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subsMu.Lock()
			defer s.subsMu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// OnUpdate registra un callback síncrono invocado en cada tick
func (s *Store) OnUpdate(fn func(models.KPIUpdate)) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	s.onUpdate = fn
}

// publish no bloquea: si el canal de un suscriptor está lleno se descarta el mensaje
func (s *Store) publish(update models.KPIUpdate) {
	s.subsMu.Lock()
	for id, ch := range s.subs {
		select {
		case ch <- update:
		default:
			log.Printf("⚠️  Canal de KPIs lleno (suscriptor %d), actualización descartada", id)
		}
	}
	fn := s.onUpdate
	s.subsMu.Unlock()

	if fn != nil {
		fn(update)
	}
}
