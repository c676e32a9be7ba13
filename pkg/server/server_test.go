package server

import (
	"context"
	"net"
	"testing"

	"github.com/meshgraph/meshgraph/api/v1"
	"github.com/meshgraph/meshgraph/pkg/graph"
	"github.com/meshgraph/meshgraph/pkg/guid"
	"github.com/meshgraph/meshgraph/pkg/listener"
	"github.com/meshgraph/meshgraph/pkg/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

func startGRPCServer(t *testing.T) *bufconn.Listener {
	t.Helper()

	lis := bufconn.Listen(bufSize)

	expander, err := names.NewExpander(nil, 0)
	require.NoError(t, err)
	g := graph.New(zap.NewNop(), "", expander)
	lst := listener.New(zap.NewNop(), g.WriterCache(), g.ReaderCache())

	s := grpc.NewServer()
	api.RegisterGraphServiceServer(s, &graphServer{
		logger:   zap.NewNop(),
		server:   s,
		graph:    g,
		listener: lst,
	})

	go func() {
		if err := s.Serve(lis); err != nil {
			panic(err)
		}
	}()
	t.Cleanup(s.Stop)

	return lis
}

func bufDialer(lis *bufconn.Listener) func(context.Context, string) (net.Conn, error) {
	return func(context.Context, string) (net.Conn, error) {
		return lis.Dial()
	}
}

func newTestClient(t *testing.T, lis *bufconn.Listener, opts ...ClientOption) *GraphClient {
	t.Helper()
	c, err := NewClientWithDialer(bufDialer(lis), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func report(t *testing.T, c *GraphClient, events ...*api.DiscoveryEvent) *api.ReportSummary {
	t.Helper()

	stream, err := c.Report(context.Background())
	require.NoError(t, err)
	for _, ev := range events {
		require.NoError(t, stream.Send(ev))
	}
	summary, err := stream.CloseAndRecv()
	require.NoError(t, err)
	return summary
}

func TestReportAndCount(t *testing.T) {
	lis := startGRPCServer(t)
	c := newTestClient(t, lis)

	a := guid.New().String()
	b := guid.New().String()

	summary := report(t, c,
		&api.DiscoveryEvent{Op: api.OpKind_OP_ADD, Endpoint: api.EndpointKind_ENDPOINT_WRITER, Participant: a, Topic: "talker", Type: "std_msgs/String"},
		&api.DiscoveryEvent{Op: api.OpKind_OP_ADD, Endpoint: api.EndpointKind_ENDPOINT_WRITER, Participant: b, Topic: "talker", Type: "std_msgs/String"},
		&api.DiscoveryEvent{Op: api.OpKind_OP_ADD, Endpoint: api.EndpointKind_ENDPOINT_READER, Participant: b, Topic: "talker", Type: "std_msgs/String"},
	)
	assert.Equal(t, uint64(3), summary.GetApplied())
	assert.Equal(t, uint64(0), summary.GetIgnored())

	pubs, err := c.CountPublishers(context.Background(), "talker")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), pubs)

	subs, err := c.CountSubscribers(context.Background(), "talker")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), subs)
}

func TestCountRejectsForeignImplementation(t *testing.T) {
	lis := startGRPCServer(t)
	c := newTestClient(t, lis, WithImplementationID("somebody_else"))

	_, err := c.CountPublishers(context.Background(), "talker")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCountRejectsMissingNodeName(t *testing.T) {
	lis := startGRPCServer(t)
	c := newTestClient(t, lis, WithNodeName(""))

	_, err := c.CountPublishers(context.Background(), "talker")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListTopics(t *testing.T) {
	lis := startGRPCServer(t)
	c := newTestClient(t, lis)

	p := guid.New().String()
	report(t, c,
		&api.DiscoveryEvent{Op: api.OpKind_OP_ADD, Endpoint: api.EndpointKind_ENDPOINT_WRITER, Participant: p, Topic: "/chatter", Type: "std_msgs/String"},
		&api.DiscoveryEvent{Op: api.OpKind_OP_ADD, Endpoint: api.EndpointKind_ENDPOINT_READER, Participant: p, Topic: "/rosout", Type: "rcl_interfaces/Log"},
	)

	topics, err := c.ListTopics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"std_msgs/String"}, topics["/chatter"])
	assert.Equal(t, []string{"rcl_interfaces/Log"}, topics["/rosout"])
}

func TestParticipantTopics(t *testing.T) {
	lis := startGRPCServer(t)
	c := newTestClient(t, lis)

	p := guid.New().String()
	report(t, c, &api.DiscoveryEvent{
		Op: api.OpKind_OP_ADD, Endpoint: api.EndpointKind_ENDPOINT_WRITER,
		Participant: p, Topic: "/chatter", Type: "std_msgs/String",
	})

	topics, found, err := c.ParticipantTopics(context.Background(), api.EndpointKind_ENDPOINT_WRITER, p)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"std_msgs/String"}, topics["/chatter"])

	_, found, err = c.ParticipantTopics(context.Background(), api.EndpointKind_ENDPOINT_READER, p)
	require.NoError(t, err)
	assert.False(t, found)

	_, _, err = c.ParticipantTopics(context.Background(), api.EndpointKind_ENDPOINT_WRITER, "not-a-guid")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestReportIgnoresMalformedAndUnmatchedEvents(t *testing.T) {
	lis := startGRPCServer(t)
	c := newTestClient(t, lis)

	summary := report(t, c,
		// Malformed participant identity.
		&api.DiscoveryEvent{Op: api.OpKind_OP_ADD, Endpoint: api.EndpointKind_ENDPOINT_WRITER, Participant: "garbage", Topic: "/chatter", Type: "t"},
		// Remove for a fact that was never added.
		&api.DiscoveryEvent{Op: api.OpKind_OP_REMOVE, Endpoint: api.EndpointKind_ENDPOINT_WRITER, Participant: guid.New().String(), Topic: "/chatter", Type: "t"},
	)

	assert.Equal(t, uint64(0), summary.GetApplied())
	assert.Equal(t, uint64(2), summary.GetIgnored())
}
