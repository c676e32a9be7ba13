package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"

	apiv1 "github.com/meshgraph/meshgraph/api"
	"github.com/meshgraph/meshgraph/api/v1"
	"github.com/meshgraph/meshgraph/pkg/feed"
	"github.com/meshgraph/meshgraph/pkg/graph"
	"github.com/meshgraph/meshgraph/pkg/guid"
	"github.com/meshgraph/meshgraph/pkg/listener"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	_ apiv1.Runnable         = &graphServer{}
	_ api.GraphServiceServer = &graphServer{}
)

// Options configures the listening surface of the graph server.
type Options struct {
	// ListenAddr is the gRPC listen address.
	ListenAddr string
	// HTTPAddr serves /metrics and /feed when non-empty.
	HTTPAddr string
}

// New builds the graph server Runnable. The hub may be nil, in which case no
// /feed route is served.
func New(
	logger *zap.Logger,
	g *graph.Graph,
	lst *listener.Listener,
	hub *feed.Hub,
	opts Options,
	serverOpts ...grpc.ServerOption,
) apiv1.Runnable {
	return &graphServer{
		logger:     logger,
		server:     grpc.NewServer(serverOpts...),
		graph:      g,
		listener:   lst,
		hub:        hub,
		listenAddr: opts.ListenAddr,
		httpAddr:   opts.HTTPAddr,
	}
}

type graphServer struct {
	logger   *zap.Logger
	server   *grpc.Server
	graph    *graph.Graph
	listener *listener.Listener
	hub      *feed.Hub

	listenAddr string
	httpAddr   string
}

func (s *graphServer) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return err
	}

	api.RegisterGraphServiceServer(s.server, s)

	var httpServer *http.Server
	if s.httpAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if s.hub != nil {
			mux.Handle("/feed", s.hub)
		}
		httpServer = &http.Server{Addr: s.httpAddr, Handler: mux}
	}

	serverShutdown := make(chan struct{})
	go func() {
		<-ctx.Done()
		s.logger.Info("Shutting down GraphServer")
		s.server.GracefulStop()
		if httpServer != nil {
			if err := httpServer.Shutdown(context.Background()); err != nil {
				s.logger.Error("Failed to shut down http server", zap.Error(err))
			}
		}
		if s.hub != nil {
			s.hub.Close()
		}
		close(serverShutdown)
	}()

	if httpServer != nil {
		go func() {
			s.logger.Info("Starting http server", zap.String("addr", s.httpAddr))
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Failed to serve http server", zap.Error(err))
			}
		}()
	}

	go func() {
		s.logger.Info("Starting GraphServer", zap.String("addr", s.listenAddr))
		if err := s.server.Serve(lis); err != nil {
			if !errors.Is(err, grpc.ErrServerStopped) {
				s.logger.Error("Failed to serve GraphServer", zap.Error(err))
			}
		}
	}()

	<-serverShutdown

	return nil
}

func (s *graphServer) CountPublishers(ctx context.Context, req *api.CountRequest) (*api.CountResponse, error) {
	count, err := s.graph.CountPublishers(nodeFromRequest(req), req.Topic)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &api.CountResponse{Count: uint64(count)}, nil
}

func (s *graphServer) CountSubscribers(ctx context.Context, req *api.CountRequest) (*api.CountResponse, error) {
	count, err := s.graph.CountSubscribers(nodeFromRequest(req), req.Topic)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &api.CountResponse{Count: uint64(count)}, nil
}

func (s *graphServer) ListTopics(ctx context.Context, req *api.ListTopicsRequest) (*api.ListTopicsResponse, error) {
	topics := s.graph.TopicNamesAndTypes()
	return &api.ListTopicsResponse{Topics: api.NewTopicEntries(topics)}, nil
}

func (s *graphServer) ParticipantTopics(ctx context.Context, req *api.ParticipantTopicsRequest) (*api.ParticipantTopicsResponse, error) {
	participant, err := guid.Parse(req.Participant)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	var (
		topics map[string][]string
		found  bool
	)
	switch req.Endpoint {
	case api.EndpointKind_ENDPOINT_WRITER:
		topics, found = s.graph.PublisherTopics(participant)
	case api.EndpointKind_ENDPOINT_READER:
		topics, found = s.graph.SubscriberTopics(participant)
	default:
		return nil, status.Error(codes.InvalidArgument, "unknown endpoint kind")
	}

	return &api.ParticipantTopicsResponse{
		Found:  found,
		Topics: api.NewTopicEntries(topics),
	}, nil
}

// Report ingests a stream of discovery events and closes with a summary of
// how many changed the caches.
func (s *graphServer) Report(stream api.GraphService_ReportServer) error {
	var applied, ignored uint64
	for {
		ev, err := stream.Recv()
		if err == io.EOF {
			return stream.SendAndClose(&api.ReportSummary{Applied: applied, Ignored: ignored})
		}
		if err != nil {
			return err
		}

		lev, ok := eventFromWire(ev)
		if !ok {
			s.logger.Warn("dropping malformed discovery event",
				zap.String("participant", ev.Participant),
				zap.String("topic", ev.Topic),
			)
			ignored++
			continue
		}

		if s.listener.Apply(lev) {
			applied++
		} else {
			ignored++
		}
	}
}

// nodeFromRequest rebuilds the caller's node handle. An empty node name is
// treated as no handle at all, so validation rejects it.
func nodeFromRequest(req *api.CountRequest) *graph.Node {
	if req.NodeName == "" {
		return nil
	}
	return &graph.Node{
		Name:             req.NodeName,
		ImplementationID: req.ImplementationId,
	}
}

func eventFromWire(ev *api.DiscoveryEvent) (listener.Event, bool) {
	participant, err := guid.Parse(ev.Participant)
	if err != nil {
		return listener.Event{}, false
	}

	var op listener.Op
	switch ev.Op {
	case api.OpKind_OP_ADD:
		op = listener.OpAdd
	case api.OpKind_OP_REMOVE:
		op = listener.OpRemove
	default:
		return listener.Event{}, false
	}

	var endpoint listener.Endpoint
	switch ev.Endpoint {
	case api.EndpointKind_ENDPOINT_WRITER:
		endpoint = listener.EndpointWriter
	case api.EndpointKind_ENDPOINT_READER:
		endpoint = listener.EndpointReader
	default:
		return listener.Event{}, false
	}

	return listener.Event{
		Op:          op,
		Endpoint:    endpoint,
		Participant: participant,
		Topic:       ev.Topic,
		Type:        ev.Type,
	}, true
}
