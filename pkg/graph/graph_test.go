package graph

import (
	"testing"

	"github.com/meshgraph/meshgraph/pkg/guid"
	"github.com/meshgraph/meshgraph/pkg/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGraph(t *testing.T) *Graph {
	t.Helper()
	expander, err := names.NewExpander(nil, 0)
	require.NoError(t, err)
	return New(zap.NewNop(), "", expander)
}

func validNode() *Node {
	return &Node{Name: "test-node", ImplementationID: DefaultImplementationID}
}

func TestCountRejectsNilNode(t *testing.T) {
	g := newTestGraph(t)

	_, err := g.CountPublishers(nil, "/chatter")
	assert.ErrorIs(t, err, ErrNilNode)

	_, err = g.CountSubscribers(nil, "/chatter")
	assert.ErrorIs(t, err, ErrNilNode)
}

func TestCountRejectsForeignImplementation(t *testing.T) {
	g := newTestGraph(t)
	node := &Node{Name: "test-node", ImplementationID: "somebody_else"}

	_, err := g.CountPublishers(node, "/chatter")
	assert.ErrorIs(t, err, ErrWrongImplementation)
}

func TestCountPublishersAcrossFQDNs(t *testing.T) {
	g := newTestGraph(t)
	p := guid.New()

	// Registered under both the literal and a prefixed spelling.
	g.WriterCache().AddTopic(p, "/chatter", "std_msgs/String")
	g.WriterCache().AddTopic(p, "rt/chatter", "std_msgs/String")

	count, err := g.CountPublishers(validNode(), "/chatter")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCountSidesAreIndependent(t *testing.T) {
	g := newTestGraph(t)
	p := guid.New()

	g.WriterCache().AddTopic(p, "/chatter", "std_msgs/String")

	pubs, err := g.CountPublishers(validNode(), "/chatter")
	require.NoError(t, err)
	subs, err := g.CountSubscribers(validNode(), "/chatter")
	require.NoError(t, err)

	assert.Equal(t, 1, pubs)
	assert.Equal(t, 0, subs)
}

func TestTopicNamesAndTypesMergesSides(t *testing.T) {
	g := newTestGraph(t)
	p := guid.New()

	g.WriterCache().AddTopic(p, "/chatter", "std_msgs/String")
	g.ReaderCache().AddTopic(p, "/chatter", "std_msgs/String")
	g.ReaderCache().AddTopic(p, "/rosout", "rcl_interfaces/Log")

	topics := g.TopicNamesAndTypes()
	assert.Len(t, topics["/chatter"], 2)
	assert.Equal(t, []string{"rcl_interfaces/Log"}, topics["/rosout"])
}

func TestParticipantTopics(t *testing.T) {
	g := newTestGraph(t)
	p := guid.New()

	g.WriterCache().AddTopic(p, "/chatter", "std_msgs/String")

	topics, found := g.PublisherTopics(p)
	require.True(t, found)
	assert.Equal(t, []string{"std_msgs/String"}, topics["/chatter"])

	_, found = g.SubscriberTopics(p)
	assert.False(t, found)

	_, found = g.PublisherTopics(guid.New())
	assert.False(t, found)
}

func TestCustomImplementationID(t *testing.T) {
	expander, err := names.NewExpander(nil, 0)
	require.NoError(t, err)
	g := New(zap.NewNop(), "custom_rmw", expander)

	_, err = g.CountPublishers(validNode(), "/chatter")
	assert.ErrorIs(t, err, ErrWrongImplementation)

	_, err = g.CountPublishers(&Node{Name: "n", ImplementationID: "custom_rmw"}, "/chatter")
	assert.NoError(t, err)
}

func TestDumpContainsBothSides(t *testing.T) {
	g := newTestGraph(t)
	p := guid.New()
	g.WriterCache().AddTopic(p, "/chatter", "std_msgs/String")

	dump := g.Dump()
	assert.Contains(t, dump, "Writer cache:")
	assert.Contains(t, dump, "Reader cache:")
	assert.Contains(t, dump, "/chatter")
}
