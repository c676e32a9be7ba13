// Package graph answers queries about the pub/sub graph: how many endpoints
// publish or subscribe to a topic, which topics exist, and what one
// participant advertises. It validates node handles before any cache is
// touched; the caches themselves trust their inputs.
package graph

import (
	"errors"
	"fmt"

	"github.com/meshgraph/meshgraph/pkg/guid"
	"github.com/meshgraph/meshgraph/pkg/metrics"
	"github.com/meshgraph/meshgraph/pkg/names"
	"github.com/meshgraph/meshgraph/pkg/topiccache"
	"go.uber.org/zap"
)

var (
	ErrNilNode             = errors.New("null node handle")
	ErrWrongImplementation = errors.New("node handle not from this implementation")
)

// DefaultImplementationID tags node handles created by this implementation.
const DefaultImplementationID = "meshgraph"

// Node is a caller-held handle. Queries reject handles that are nil or that
// carry a foreign implementation identifier.
type Node struct {
	Name             string
	ImplementationID string
}

// Graph owns one cache per endpoint side plus the name expander. The two
// caches are independent: a topic can have publishers but no subscribers.
type Graph struct {
	logger           *zap.Logger
	implementationID string
	expander         *names.Expander
	writers          *topiccache.TopicCache
	readers          *topiccache.TopicCache
}

func New(logger *zap.Logger, implementationID string, expander *names.Expander) *Graph {
	if logger == nil {
		logger = zap.NewNop()
	}
	if implementationID == "" {
		implementationID = DefaultImplementationID
	}
	return &Graph{
		logger:           logger,
		implementationID: implementationID,
		expander:         expander,
		writers:          topiccache.New(logger.Named("writers")),
		readers:          topiccache.New(logger.Named("readers")),
	}
}

// ImplementationID returns the identifier node handles must carry.
func (g *Graph) ImplementationID() string {
	return g.implementationID
}

// WriterCache returns the cache of publishing endpoints. The listener uses
// it as its write target; it is never handed out by reference to query
// callers.
func (g *Graph) WriterCache() *topiccache.TopicCache {
	return g.writers
}

// ReaderCache returns the cache of subscribing endpoints.
func (g *Graph) ReaderCache() *topiccache.TopicCache {
	return g.readers
}

func (g *Graph) validate(node *Node) error {
	if node == nil {
		return ErrNilNode
	}
	if node.ImplementationID != g.implementationID {
		return fmt.Errorf("%w: %q", ErrWrongImplementation, node.ImplementationID)
	}
	return nil
}

// CountPublishers counts the publisher registrations matching topic under
// any of its fully-qualified spellings.
func (g *Graph) CountPublishers(node *Node, topic string) (int, error) {
	if err := g.validate(node); err != nil {
		return 0, err
	}

	count := g.writers.CountParticipants(g.expander.Expand(topic))
	metrics.GraphQueries.WithLabelValues("count_publishers").Inc()
	g.logger.Debug("looking for publisher topic",
		zap.String("topic", topic),
		zap.Int("matches", count),
	)
	return count, nil
}

// CountSubscribers counts the subscriber registrations matching topic under
// any of its fully-qualified spellings.
func (g *Graph) CountSubscribers(node *Node, topic string) (int, error) {
	if err := g.validate(node); err != nil {
		return 0, err
	}

	count := g.readers.CountParticipants(g.expander.Expand(topic))
	metrics.GraphQueries.WithLabelValues("count_subscribers").Inc()
	g.logger.Debug("looking for subscriber topic",
		zap.String("topic", topic),
		zap.Int("matches", count),
	)
	return count, nil
}

// TopicNamesAndTypes merges the topic indices of both sides into one
// snapshot. Type multisets from the two caches are concatenated.
func (g *Graph) TopicNamesAndTypes() topiccache.TopicToTypes {
	merged := g.writers.CloneTopicToTypes()
	for topic, types := range g.readers.CloneTopicToTypes() {
		merged[topic] = append(merged[topic], types...)
	}
	metrics.GraphQueries.WithLabelValues("list_topics").Inc()
	return merged
}

// PublisherTopics returns a snapshot of everything the participant
// publishes, and whether the participant is known on the writer side.
func (g *Graph) PublisherTopics(participant guid.GUID) (topiccache.TopicToTypes, bool) {
	metrics.GraphQueries.WithLabelValues("publisher_topics").Inc()
	return g.writers.CloneParticipantTopics(participant)
}

// SubscriberTopics returns a snapshot of everything the participant
// subscribes to, and whether the participant is known on the reader side.
func (g *Graph) SubscriberTopics(participant guid.GUID) (topiccache.TopicToTypes, bool) {
	metrics.GraphQueries.WithLabelValues("subscriber_topics").Inc()
	return g.readers.CloneParticipantTopics(participant)
}

// Dump renders both caches for logging.
func (g *Graph) Dump() string {
	return "Writer cache:\n" + g.writers.String() + "Reader cache:\n" + g.readers.String()
}
