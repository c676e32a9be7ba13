package api

import (
	"context"

	grpc "google.golang.org/grpc"
)

// GraphServiceClient is the client API for GraphService.
type GraphServiceClient interface {
	CountPublishers(ctx context.Context, in *CountRequest, opts ...grpc.CallOption) (*CountResponse, error)
	CountSubscribers(ctx context.Context, in *CountRequest, opts ...grpc.CallOption) (*CountResponse, error)
	ListTopics(ctx context.Context, in *ListTopicsRequest, opts ...grpc.CallOption) (*ListTopicsResponse, error)
	ParticipantTopics(ctx context.Context, in *ParticipantTopicsRequest, opts ...grpc.CallOption) (*ParticipantTopicsResponse, error)
	Report(ctx context.Context, opts ...grpc.CallOption) (GraphService_ReportClient, error)
}

type graphServiceClient struct {
	cc *grpc.ClientConn
}

func NewGraphServiceClient(cc *grpc.ClientConn) GraphServiceClient {
	return &graphServiceClient{cc}
}

func (c *graphServiceClient) CountPublishers(ctx context.Context, in *CountRequest, opts ...grpc.CallOption) (*CountResponse, error) {
	out := new(CountResponse)
	err := c.cc.Invoke(ctx, "/meshgraph.api.v1.GraphService/CountPublishers", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *graphServiceClient) CountSubscribers(ctx context.Context, in *CountRequest, opts ...grpc.CallOption) (*CountResponse, error) {
	out := new(CountResponse)
	err := c.cc.Invoke(ctx, "/meshgraph.api.v1.GraphService/CountSubscribers", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *graphServiceClient) ListTopics(ctx context.Context, in *ListTopicsRequest, opts ...grpc.CallOption) (*ListTopicsResponse, error) {
	out := new(ListTopicsResponse)
	err := c.cc.Invoke(ctx, "/meshgraph.api.v1.GraphService/ListTopics", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *graphServiceClient) ParticipantTopics(ctx context.Context, in *ParticipantTopicsRequest, opts ...grpc.CallOption) (*ParticipantTopicsResponse, error) {
	out := new(ParticipantTopicsResponse)
	err := c.cc.Invoke(ctx, "/meshgraph.api.v1.GraphService/ParticipantTopics", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *graphServiceClient) Report(ctx context.Context, opts ...grpc.CallOption) (GraphService_ReportClient, error) {
	stream, err := c.cc.NewStream(ctx, &_GraphService_serviceDesc.Streams[0], "/meshgraph.api.v1.GraphService/Report", opts...)
	if err != nil {
		return nil, err
	}
	return &graphServiceReportClient{stream}, nil
}

type GraphService_ReportClient interface {
	Send(*DiscoveryEvent) error
	CloseAndRecv() (*ReportSummary, error)
	grpc.ClientStream
}

type graphServiceReportClient struct {
	grpc.ClientStream
}

func (x *graphServiceReportClient) Send(m *DiscoveryEvent) error {
	return x.ClientStream.SendMsg(m)
}

func (x *graphServiceReportClient) CloseAndRecv() (*ReportSummary, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(ReportSummary)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// GraphServiceServer is the server API for GraphService.
type GraphServiceServer interface {
	CountPublishers(context.Context, *CountRequest) (*CountResponse, error)
	CountSubscribers(context.Context, *CountRequest) (*CountResponse, error)
	ListTopics(context.Context, *ListTopicsRequest) (*ListTopicsResponse, error)
	ParticipantTopics(context.Context, *ParticipantTopicsRequest) (*ParticipantTopicsResponse, error)
	Report(GraphService_ReportServer) error
}

func RegisterGraphServiceServer(s *grpc.Server, srv GraphServiceServer) {
	s.RegisterService(&_GraphService_serviceDesc, srv)
}

func _GraphService_CountPublishers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GraphServiceServer).CountPublishers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meshgraph.api.v1.GraphService/CountPublishers",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GraphServiceServer).CountPublishers(ctx, req.(*CountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GraphService_CountSubscribers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GraphServiceServer).CountSubscribers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meshgraph.api.v1.GraphService/CountSubscribers",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GraphServiceServer).CountSubscribers(ctx, req.(*CountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GraphService_ListTopics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTopicsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GraphServiceServer).ListTopics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meshgraph.api.v1.GraphService/ListTopics",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GraphServiceServer).ListTopics(ctx, req.(*ListTopicsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GraphService_ParticipantTopics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParticipantTopicsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GraphServiceServer).ParticipantTopics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meshgraph.api.v1.GraphService/ParticipantTopics",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GraphServiceServer).ParticipantTopics(ctx, req.(*ParticipantTopicsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GraphService_Report_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(GraphServiceServer).Report(&graphServiceReportServer{stream})
}

type GraphService_ReportServer interface {
	SendAndClose(*ReportSummary) error
	Recv() (*DiscoveryEvent, error)
	grpc.ServerStream
}

type graphServiceReportServer struct {
	grpc.ServerStream
}

func (x *graphServiceReportServer) SendAndClose(m *ReportSummary) error {
	return x.ServerStream.SendMsg(m)
}

func (x *graphServiceReportServer) Recv() (*DiscoveryEvent, error) {
	m := new(DiscoveryEvent)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

var _GraphService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "meshgraph.api.v1.GraphService",
	HandlerType: (*GraphServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CountPublishers",
			Handler:    _GraphService_CountPublishers_Handler,
		},
		{
			MethodName: "CountSubscribers",
			Handler:    _GraphService_CountSubscribers_Handler,
		},
		{
			MethodName: "ListTopics",
			Handler:    _GraphService_ListTopics_Handler,
		},
		{
			MethodName: "ParticipantTopics",
			Handler:    _GraphService_ParticipantTopics_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Report",
			Handler:       _GraphService_Report_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "api/v1/graph.proto",
}
