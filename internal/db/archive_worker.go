package db

import (
	"context"
	"log"
	"time"

	"api-footwear/internal/models"
)

// TickWriter es lo que el worker necesita para persistir un tick
type TickWriter interface {
	InsertKPITick(ctx context.Context, update models.KPIUpdate) error
}

// ArchiveWorker consume actualizaciones de KPIs y las escribe en el historial
type ArchiveWorker struct {
	ctx          context.Context
	cancel       context.CancelFunc
	writer       TickWriter
	updates      <-chan models.KPIUpdate
	writeTimeout time.Duration
	done         chan struct{}
}

// NewArchiveWorker crea el worker; no arranca hasta llamar Start
func NewArchiveWorker(ctx context.Context, writer TickWriter, updates <-chan models.KPIUpdate, writeTimeout time.Duration) *ArchiveWorker {
	workerCtx, cancel := context.WithCancel(ctx)
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &ArchiveWorker{
		ctx:          workerCtx,
		cancel:       cancel,
		writer:       writer,
		updates:      updates,
		writeTimeout: writeTimeout,
		done:         make(chan struct{}),
	}
}

// Start inicia el worker en una goroutine
func (w *ArchiveWorker) Start() {
	go w.run()
	log.Println("🗄️  Archive Worker iniciado")
}

// Stop detiene el worker y espera a que termine
func (w *ArchiveWorker) Stop() {
	w.cancel()
	<-w.done
	log.Println("🛑 Archive Worker detenido")
}

// Done se cierra cuando el worker termina, por Stop o por cierre del canal
func (w *ArchiveWorker) Done() <-chan struct{} {
	return w.done
}

func (w *ArchiveWorker) run() {
	defer close(w.done)
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ PANIC en Archive Worker: %v", r)
		}
	}()

	for {
		select {
		case <-w.ctx.Done():
			return
		case update, ok := <-w.updates:
			if !ok {
				log.Println("⚠️  Canal de KPIs cerrado, Archive Worker finalizando")
				return
			}
			w.write(update)
		}
	}
}

func (w *ArchiveWorker) write(update models.KPIUpdate) {
	ctx, cancel := context.WithTimeout(w.ctx, w.writeTimeout)
	defer cancel()

	if err := w.writer.InsertKPITick(ctx, update); err != nil {
		// Un fallo del historial nunca afecta al tablero
		log.Printf("⚠️  Error al archivar tick de KPIs: %v", err)
	}
}
