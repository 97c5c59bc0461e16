package audit

import (
	"go.uber.org/zap"

	"github.com/fsanztor01/TrimTime/internal/logger"
)

type Event struct {
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
}

// Sink persists audit events. The gorm-backed Logger is the production sink.
type Sink interface {
	Log(userID *string, action, entity string, entityID *string, metadata any) error
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logger.Log.Error("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		// full queue: drop rather than block the request path
		logger.Log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
