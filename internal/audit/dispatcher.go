package audit

import "go.uber.org/zap"

type Event struct {
	ActorEmail string
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

// Sink persists a single audit entry.
type Sink interface {
	Log(actorEmail, action, entity string, entityID *uint, metadata any) error
}

// Dispatcher writes audit entries off the request path through a
// buffered channel. Events are dropped when the queue is full; audit
// must never fail an API call.
type Dispatcher struct {
	sink  Sink
	log   *zap.Logger
	queue chan Event
}

func NewDispatcher(sink Sink, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(
			ev.ActorEmail,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Warn("audit write failed", zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action))
	}
}
