package storage

import (
	"testing"

	storagepb "chaindb/internal/storage/gen"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func TestRecordDescriptor_MatchesProto(t *testing.T) {
	fd := storagepb.File_record_proto
	require.Equal(t, protoreflect.FullName("storage"), fd.Package())

	_, err := protodesc.NewFile(protodesc.ToFileDescriptorProto(fd), nil)
	require.NoError(t, err)

	md := fd.Messages().ByName("Record")
	require.NotNil(t, md)
	require.Equal(t, 2, md.Fields().Len())
	require.Equal(t, protoreflect.FieldNumber(1), md.Fields().ByName("key").Number())
	require.Equal(t, protoreflect.BytesKind, md.Fields().ByName("key").Kind())
	require.Equal(t, protoreflect.FieldNumber(2), md.Fields().ByName("value").Number())
	require.Equal(t, protoreflect.BytesKind, md.Fields().ByName("value").Kind())

	data, err := proto.Marshal(&storagepb.Record{Key: []byte("k"), Value: []byte("v")})
	require.NoError(t, err)
	require.Equal(t, []byte{0x0a, 0x01, 'k', 0x12, 0x01, 'v'}, data)
}
