package server

import (
	"context"
	"net"
	"sync/atomic"

	"github.com/meshgraph/meshgraph/api/v1"
	"github.com/meshgraph/meshgraph/pkg/graph"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GraphClient wraps the GraphService client with the caller's node handle
// fields, so query calls only need a topic.
type GraphClient struct {
	nodeName         string
	implementationID string

	conn  *grpc.ClientConn
	graph api.GraphServiceClient

	closed atomic.Bool
}

func NewClient(addr string, opts ...ClientOption) (*GraphClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return newGraphClient(conn, opts...), nil
}

// NewClientWithDialer builds a client over a custom dialer, used with
// bufconn listeners in tests.
func NewClientWithDialer(bufDialer func(context.Context, string) (net.Conn, error), opts ...ClientOption) (*GraphClient, error) {
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(bufDialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, err
	}
	return newGraphClient(conn, opts...), nil
}

func newGraphClient(conn *grpc.ClientConn, opts ...ClientOption) *GraphClient {
	c := &GraphClient{
		nodeName:         "graph-client",
		implementationID: graph.DefaultImplementationID,
		conn:             conn,
		graph:            api.NewGraphServiceClient(conn),
	}
	for _, opt := range opts {
		opt.apply(c)
	}
	return c
}

func (c *GraphClient) Close() error {
	c.closed.Store(true)
	return c.conn.Close()
}

func (c *GraphClient) CountPublishers(ctx context.Context, topic string) (uint64, error) {
	res, err := c.graph.CountPublishers(ctx, c.countRequest(topic))
	if err != nil {
		return 0, err
	}
	return res.GetCount(), nil
}

func (c *GraphClient) CountSubscribers(ctx context.Context, topic string) (uint64, error) {
	res, err := c.graph.CountSubscribers(ctx, c.countRequest(topic))
	if err != nil {
		return 0, err
	}
	return res.GetCount(), nil
}

func (c *GraphClient) ListTopics(ctx context.Context) (map[string][]string, error) {
	res, err := c.graph.ListTopics(ctx, &api.ListTopicsRequest{})
	if err != nil {
		return nil, err
	}
	return api.TopicEntriesMap(res.GetTopics()), nil
}

func (c *GraphClient) ParticipantTopics(ctx context.Context, endpoint api.EndpointKind, participant string) (map[string][]string, bool, error) {
	res, err := c.graph.ParticipantTopics(ctx, &api.ParticipantTopicsRequest{
		Endpoint:    endpoint,
		Participant: participant,
	})
	if err != nil {
		return nil, false, err
	}
	return api.TopicEntriesMap(res.GetTopics()), res.GetFound(), nil
}

// Report opens a discovery event stream toward the server. The caller sends
// events and closes with CloseAndRecv to collect the summary.
func (c *GraphClient) Report(ctx context.Context) (api.GraphService_ReportClient, error) {
	return c.graph.Report(ctx)
}

func (c *GraphClient) countRequest(topic string) *api.CountRequest {
	return &api.CountRequest{
		NodeName:         c.nodeName,
		ImplementationId: c.implementationID,
		Topic:            topic,
	}
}
