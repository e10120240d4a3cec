package audit

import (
	"context"
	"log/slog"
	"sync"
)

type Event struct {
	RequestID string
	Action    string
	Entity    string
	EntityID  *int64
	Metadata  any
}

// Dispatcher grava eventos fora do caminho da requisição.
// Fila cheia descarta o evento: auditoria nunca quebra a API.
type Dispatcher struct {
	logger *Logger
	log    *slog.Logger
	queue  chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(logger *Logger, log *slog.Logger, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}

	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			d.log.Error("audit_write_failed",
				"action", ev.Action,
				"entity", ev.Entity,
				"error", err,
			)
		}
	}
}

// Dispatch depois de Close descarta o evento com um aviso.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("audit_dispatcher_closed", "action", ev.Action, "entity", ev.Entity)
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit_queue_full", "action", ev.Action, "entity", ev.Entity)
	}
}

// Close drena a fila e espera o worker terminar. Pode ser chamado mais de uma vez.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
