// Package api holds the wire types for the meshgraph gRPC surface.
//
// The messages are proto3-compatible and hand-maintained: they carry
// protobuf struct tags and implement proto.Message, which is all the gRPC
// proto codec needs for types of this shape.
package api

import (
	proto "github.com/gogo/protobuf/proto"
)

// OpKind mirrors listener.Op on the wire.
type OpKind int32

const (
	OpKind_OP_ADD    OpKind = 0
	OpKind_OP_REMOVE OpKind = 1
)

var OpKind_name = map[int32]string{
	0: "OP_ADD",
	1: "OP_REMOVE",
}

var OpKind_value = map[string]int32{
	"OP_ADD":    0,
	"OP_REMOVE": 1,
}

func (x OpKind) String() string {
	return proto.EnumName(OpKind_name, int32(x))
}

// EndpointKind mirrors listener.Endpoint on the wire.
type EndpointKind int32

const (
	EndpointKind_ENDPOINT_WRITER EndpointKind = 0
	EndpointKind_ENDPOINT_READER EndpointKind = 1
)

var EndpointKind_name = map[int32]string{
	0: "ENDPOINT_WRITER",
	1: "ENDPOINT_READER",
}

var EndpointKind_value = map[string]int32{
	"ENDPOINT_WRITER": 0,
	"ENDPOINT_READER": 1,
}

func (x EndpointKind) String() string {
	return proto.EnumName(EndpointKind_name, int32(x))
}

// CountRequest asks how many endpoints match a topic. NodeName and
// ImplementationId identify the caller-held node handle; the server rejects
// requests whose handle does not belong to it.
type CountRequest struct {
	NodeName         string `protobuf:"bytes,1,opt,name=node_name,json=nodeName,proto3" json:"node_name,omitempty"`
	ImplementationId string `protobuf:"bytes,2,opt,name=implementation_id,json=implementationId,proto3" json:"implementation_id,omitempty"`
	Topic            string `protobuf:"bytes,3,opt,name=topic,proto3" json:"topic,omitempty"`
}

func (m *CountRequest) Reset()         { *m = CountRequest{} }
func (m *CountRequest) String() string { return proto.CompactTextString(m) }
func (*CountRequest) ProtoMessage()    {}

func (m *CountRequest) GetTopic() string {
	if m != nil {
		return m.Topic
	}
	return ""
}

type CountResponse struct {
	Count uint64 `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *CountResponse) Reset()         { *m = CountResponse{} }
func (m *CountResponse) String() string { return proto.CompactTextString(m) }
func (*CountResponse) ProtoMessage()    {}

func (m *CountResponse) GetCount() uint64 {
	if m != nil {
		return m.Count
	}
	return 0
}

type ListTopicsRequest struct {
}

func (m *ListTopicsRequest) Reset()         { *m = ListTopicsRequest{} }
func (m *ListTopicsRequest) String() string { return proto.CompactTextString(m) }
func (*ListTopicsRequest) ProtoMessage()    {}

// TopicEntry is one topic and the multiset of types registered on it.
type TopicEntry struct {
	Topic string   `protobuf:"bytes,1,opt,name=topic,proto3" json:"topic,omitempty"`
	Types []string `protobuf:"bytes,2,rep,name=types,proto3" json:"types,omitempty"`
}

func (m *TopicEntry) Reset()         { *m = TopicEntry{} }
func (m *TopicEntry) String() string { return proto.CompactTextString(m) }
func (*TopicEntry) ProtoMessage()    {}

func (m *TopicEntry) GetTopic() string {
	if m != nil {
		return m.Topic
	}
	return ""
}

func (m *TopicEntry) GetTypes() []string {
	if m != nil {
		return m.Types
	}
	return nil
}

type ListTopicsResponse struct {
	Topics []*TopicEntry `protobuf:"bytes,1,rep,name=topics,proto3" json:"topics,omitempty"`
}

func (m *ListTopicsResponse) Reset()         { *m = ListTopicsResponse{} }
func (m *ListTopicsResponse) String() string { return proto.CompactTextString(m) }
func (*ListTopicsResponse) ProtoMessage()    {}

func (m *ListTopicsResponse) GetTopics() []*TopicEntry {
	if m != nil {
		return m.Topics
	}
	return nil
}

type ParticipantTopicsRequest struct {
	Endpoint    EndpointKind `protobuf:"varint,1,opt,name=endpoint,proto3,enum=meshgraph.api.v1.EndpointKind" json:"endpoint,omitempty"`
	Participant string       `protobuf:"bytes,2,opt,name=participant,proto3" json:"participant,omitempty"`
}

func (m *ParticipantTopicsRequest) Reset()         { *m = ParticipantTopicsRequest{} }
func (m *ParticipantTopicsRequest) String() string { return proto.CompactTextString(m) }
func (*ParticipantTopicsRequest) ProtoMessage()    {}

type ParticipantTopicsResponse struct {
	Found  bool          `protobuf:"varint,1,opt,name=found,proto3" json:"found,omitempty"`
	Topics []*TopicEntry `protobuf:"bytes,2,rep,name=topics,proto3" json:"topics,omitempty"`
}

func (m *ParticipantTopicsResponse) Reset()         { *m = ParticipantTopicsResponse{} }
func (m *ParticipantTopicsResponse) String() string { return proto.CompactTextString(m) }
func (*ParticipantTopicsResponse) ProtoMessage()    {}

func (m *ParticipantTopicsResponse) GetFound() bool {
	if m != nil {
		return m.Found
	}
	return false
}

func (m *ParticipantTopicsResponse) GetTopics() []*TopicEntry {
	if m != nil {
		return m.Topics
	}
	return nil
}

// DiscoveryEvent is one registration fact asserted or retracted by the
// discovery layer.
type DiscoveryEvent struct {
	Op          OpKind       `protobuf:"varint,1,opt,name=op,proto3,enum=meshgraph.api.v1.OpKind" json:"op,omitempty"`
	Endpoint    EndpointKind `protobuf:"varint,2,opt,name=endpoint,proto3,enum=meshgraph.api.v1.EndpointKind" json:"endpoint,omitempty"`
	Participant string       `protobuf:"bytes,3,opt,name=participant,proto3" json:"participant,omitempty"`
	Topic       string       `protobuf:"bytes,4,opt,name=topic,proto3" json:"topic,omitempty"`
	Type        string       `protobuf:"bytes,5,opt,name=type,proto3" json:"type,omitempty"`
}

func (m *DiscoveryEvent) Reset()         { *m = DiscoveryEvent{} }
func (m *DiscoveryEvent) String() string { return proto.CompactTextString(m) }
func (*DiscoveryEvent) ProtoMessage()    {}

// ReportSummary closes a Report stream: how many events changed the caches
// and how many were ignored (unmatched removals, malformed identities).
type ReportSummary struct {
	Applied uint64 `protobuf:"varint,1,opt,name=applied,proto3" json:"applied,omitempty"`
	Ignored uint64 `protobuf:"varint,2,opt,name=ignored,proto3" json:"ignored,omitempty"`
}

func (m *ReportSummary) Reset()         { *m = ReportSummary{} }
func (m *ReportSummary) String() string { return proto.CompactTextString(m) }
func (*ReportSummary) ProtoMessage()    {}

func (m *ReportSummary) GetApplied() uint64 {
	if m != nil {
		return m.Applied
	}
	return 0
}

func (m *ReportSummary) GetIgnored() uint64 {
	if m != nil {
		return m.Ignored
	}
	return 0
}

func init() {
	proto.RegisterEnum("meshgraph.api.v1.OpKind", OpKind_name, OpKind_value)
	proto.RegisterEnum("meshgraph.api.v1.EndpointKind", EndpointKind_name, EndpointKind_value)
	proto.RegisterType((*CountRequest)(nil), "meshgraph.api.v1.CountRequest")
	proto.RegisterType((*CountResponse)(nil), "meshgraph.api.v1.CountResponse")
	proto.RegisterType((*ListTopicsRequest)(nil), "meshgraph.api.v1.ListTopicsRequest")
	proto.RegisterType((*TopicEntry)(nil), "meshgraph.api.v1.TopicEntry")
	proto.RegisterType((*ListTopicsResponse)(nil), "meshgraph.api.v1.ListTopicsResponse")
	proto.RegisterType((*ParticipantTopicsRequest)(nil), "meshgraph.api.v1.ParticipantTopicsRequest")
	proto.RegisterType((*ParticipantTopicsResponse)(nil), "meshgraph.api.v1.ParticipantTopicsResponse")
	proto.RegisterType((*DiscoveryEvent)(nil), "meshgraph.api.v1.DiscoveryEvent")
	proto.RegisterType((*ReportSummary)(nil), "meshgraph.api.v1.ReportSummary")
}
