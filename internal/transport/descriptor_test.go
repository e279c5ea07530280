package transport

import (
	"fmt"
	"testing"

	replicationpb "chaindb/internal/transport/gen/replicationpb"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func describeFields(md protoreflect.MessageDescriptor) []string {
	out := make([]string, 0, md.Fields().Len())
	for i := range md.Fields().Len() {
		f := md.Fields().Get(i)
		out = append(out, fmt.Sprintf("%s=%d %s %s", f.Name(), f.Number(), f.Cardinality(), f.Kind()))
	}
	return out
}

func describeMethods(sd protoreflect.ServiceDescriptor) []string {
	out := make([]string, 0, sd.Methods().Len())
	for i := range sd.Methods().Len() {
		m := sd.Methods().Get(i)
		out = append(out, fmt.Sprintf("%s(%s) %s", m.Name(), m.Input().Name(), m.Output().Name()))
	}
	return out
}

// The descriptor compiled into replicationpb must describe replication.proto.
func TestReplicationDescriptor_MatchesProto(t *testing.T) {
	fd := replicationpb.File_replication_proto
	require.Equal(t, protoreflect.FullName("replication"), fd.Package())
	require.Equal(t, "replication.proto", fd.Path())

	_, err := protodesc.NewFile(protodesc.ToFileDescriptorProto(fd), nil)
	require.NoError(t, err)

	msgs := fd.Messages()
	for name, want := range map[protoreflect.Name][]string{
		"UpdateRequest":  {"id=1 optional string", "key=2 optional bytes", "value=3 optional bytes"},
		"UpdateReply":    {"id=1 optional string"},
		"AckRequest":     {"id=1 optional string"},
		"AckReply":       {"id=1 optional string"},
		"QueryRequest":   {"id=1 optional string", "key=2 optional bytes"},
		"QueryReply":     {"id=1 optional string", "key=2 optional bytes", "value=3 optional bytes"},
		"InspectRequest": {},
		"InspectReply": {
			"role=1 optional string", "next_addr=2 optional string", "prev_addr=3 optional string",
			"sent=4 repeated string", "pending=5 repeated string",
		},
		"PeerUnreachableDetails": {"direction=1 optional string", "address=2 optional string"},
		"KeyNotFoundDetails":     {"key=1 optional bytes"},
	} {
		md := msgs.ByName(name)
		require.NotNil(t, md, name)
		require.Equal(t, want, describeFields(md), name)
	}
	require.Equal(t, 10, msgs.Len())

	replicator := fd.Services().ByName("Replicator")
	require.NotNil(t, replicator)
	require.Equal(t, []string{
		"Update(UpdateRequest) UpdateReply",
		"AckWrite(AckRequest) AckReply",
	}, describeMethods(replicator))
	require.Equal(t, replicationpb.Replicator_ServiceDesc.ServiceName, string(replicator.FullName()))

	querier := fd.Services().ByName("Querier")
	require.NotNil(t, querier)
	require.Equal(t, []string{
		"Query(QueryRequest) QueryReply",
		"Inspect(InspectRequest) InspectReply",
	}, describeMethods(querier))
	require.Equal(t, replicationpb.Querier_ServiceDesc.ServiceName, string(querier.FullName()))
}

func TestReplicationDescriptor_WireEncoding(t *testing.T) {
	data, err := proto.Marshal(&replicationpb.UpdateRequest{Id: "a", Key: []byte("k"), Value: []byte("v")})
	require.NoError(t, err)
	require.Equal(t, []byte{0x0a, 0x01, 'a', 0x12, 0x01, 'k', 0x1a, 0x01, 'v'}, data)

	data, err = proto.Marshal(&replicationpb.InspectReply{Sent: []string{"x"}, Pending: []string{"y"}})
	require.NoError(t, err)
	require.Equal(t, []byte{0x22, 0x01, 'x', 0x2a, 0x01, 'y'}, data)
}
