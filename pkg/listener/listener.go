// Package listener applies protocol-level discovery events to the topic
// caches. It is the single write path: every add is expected to be paired
// with an eventual remove by whoever produces the events.
package listener

import (
	"github.com/meshgraph/meshgraph/pkg/guid"
	"github.com/meshgraph/meshgraph/pkg/metrics"
	"github.com/meshgraph/meshgraph/pkg/topiccache"
	"go.uber.org/zap"
)

// Op is the kind of discovery event.
type Op uint8

const (
	OpAdd Op = iota
	OpRemove
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	}
	return "unknown"
}

// Endpoint is the side of the pub/sub relationship the event concerns.
type Endpoint uint8

const (
	EndpointWriter Endpoint = iota // publishing endpoints
	EndpointReader                 // subscribing endpoints
)

func (e Endpoint) String() string {
	switch e {
	case EndpointWriter:
		return "writer"
	case EndpointReader:
		return "reader"
	}
	return "unknown"
}

// Event is one discovery fact: a participant registered or retracted a
// (topic, type) pair on one endpoint side.
type Event struct {
	Op          Op
	Endpoint    Endpoint
	Participant guid.GUID
	Topic       string
	Type        string
}

// Listener routes discovery events into the writer-side and reader-side
// caches and notifies any attached hooks after the caches are updated.
type Listener struct {
	logger *zap.Logger
	writer *topiccache.TopicCache
	reader *topiccache.TopicCache
	hooks  []func(Event)
}

func New(logger *zap.Logger, writer, reader *topiccache.TopicCache) *Listener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Listener{
		logger: logger,
		writer: writer,
		reader: reader,
	}
}

// OnEvent registers a hook called after each applied event. Hooks run on
// the discovery goroutine and must not block. Not safe to call once events
// are flowing.
func (l *Listener) OnEvent(fn func(Event)) {
	l.hooks = append(l.hooks, fn)
}

// Apply records one event and reports whether the caches changed. A remove
// for a fact that was never added is a harmless no-op: discovery events can
// arrive duplicated or out of causal order.
func (l *Listener) Apply(ev Event) bool {
	cache := l.writer
	if ev.Endpoint == EndpointReader {
		cache = l.reader
	}

	var changed bool
	switch ev.Op {
	case OpAdd:
		changed = cache.AddTopic(ev.Participant, ev.Topic, ev.Type)
	case OpRemove:
		changed = cache.RemoveTopic(ev.Participant, ev.Topic, ev.Type)
		if !changed {
			metrics.UnmatchedRemovals.Inc()
		}
	default:
		l.logger.Warn("dropping discovery event with unknown op",
			zap.String("topic", ev.Topic),
			zap.Stringer("participant", ev.Participant),
		)
		return false
	}

	metrics.DiscoveryEvents.WithLabelValues(ev.Op.String(), ev.Endpoint.String()).Inc()

	for _, fn := range l.hooks {
		fn(ev)
	}

	return changed
}
