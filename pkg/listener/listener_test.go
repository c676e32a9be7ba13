package listener

import (
	"testing"

	"github.com/meshgraph/meshgraph/pkg/guid"
	"github.com/meshgraph/meshgraph/pkg/topiccache"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestListener() (*Listener, *topiccache.TopicCache, *topiccache.TopicCache) {
	writer := topiccache.New(zap.NewNop())
	reader := topiccache.New(zap.NewNop())
	return New(zap.NewNop(), writer, reader), writer, reader
}

func TestApplyRoutesByEndpoint(t *testing.T) {
	l, writer, reader := newTestListener()
	p := guid.New()

	assert.True(t, l.Apply(Event{
		Op: OpAdd, Endpoint: EndpointWriter,
		Participant: p, Topic: "/chatter", Type: "std_msgs/String",
	}))
	assert.True(t, l.Apply(Event{
		Op: OpAdd, Endpoint: EndpointReader,
		Participant: p, Topic: "/rosout", Type: "rcl_interfaces/Log",
	}))

	assert.Equal(t, 1, writer.CountParticipants([]string{"/chatter"}))
	assert.Equal(t, 0, writer.CountParticipants([]string{"/rosout"}))
	assert.Equal(t, 1, reader.CountParticipants([]string{"/rosout"}))
}

func TestApplyRemove(t *testing.T) {
	l, writer, _ := newTestListener()
	p := guid.New()

	l.Apply(Event{Op: OpAdd, Endpoint: EndpointWriter, Participant: p, Topic: "/chatter", Type: "std_msgs/String"})
	assert.True(t, l.Apply(Event{Op: OpRemove, Endpoint: EndpointWriter, Participant: p, Topic: "/chatter", Type: "std_msgs/String"}))

	assert.Empty(t, writer.CloneTopicToTypes())
}

func TestApplyUnmatchedRemoveIsNoOp(t *testing.T) {
	l, writer, _ := newTestListener()

	changed := l.Apply(Event{
		Op: OpRemove, Endpoint: EndpointWriter,
		Participant: guid.New(), Topic: "/never_added", Type: "std_msgs/String",
	})

	assert.False(t, changed)
	assert.Empty(t, writer.CloneTopicToTypes())
}

func TestApplyUnknownOpIsDropped(t *testing.T) {
	l, writer, reader := newTestListener()

	changed := l.Apply(Event{Op: Op(42), Endpoint: EndpointWriter, Participant: guid.New(), Topic: "/chatter", Type: "t"})

	assert.False(t, changed)
	assert.Empty(t, writer.CloneTopicToTypes())
	assert.Empty(t, reader.CloneTopicToTypes())
}

func TestHooksFireAfterApply(t *testing.T) {
	l, _, _ := newTestListener()

	var seen []Event
	l.OnEvent(func(ev Event) {
		seen = append(seen, ev)
	})

	ev := Event{Op: OpAdd, Endpoint: EndpointWriter, Participant: guid.New(), Topic: "/chatter", Type: "std_msgs/String"}
	l.Apply(ev)

	assert.Equal(t, []Event{ev}, seen)
}

func TestOpAndEndpointStrings(t *testing.T) {
	assert.Equal(t, "add", OpAdd.String())
	assert.Equal(t, "remove", OpRemove.String())
	assert.Equal(t, "writer", EndpointWriter.String())
	assert.Equal(t, "reader", EndpointReader.String())
}
