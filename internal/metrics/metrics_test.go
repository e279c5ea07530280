package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestSplitMethodName(t *testing.T) {
	tests := []struct {
		in      string
		service string
		method  string
	}{
		{"/replication.Replicator/Update", "replication.Replicator", "Update"},
		{"replication.Querier/Query", "replication.Querier", "Query"},
		{"/Ping", "unknown", "Ping"},
		{"", "unknown", "unknown"},
	}

	for _, tt := range tests {
		service, method := SplitMethodName(tt.in)
		require.Equal(t, tt.service, service, tt.in)
		require.Equal(t, tt.method, method, tt.in)
	}
}

func TestUnaryServerInterceptor_PassesThrough(t *testing.T) {
	icpt := UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/replication.Replicator/Update"}

	resp, err := icpt(context.Background(), "req", info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "resp", nil
	})
	require.NoError(t, err)
	require.Equal(t, "resp", resp)

	_, err = icpt(context.Background(), "req", info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.NotFound, "missing")
	})
	require.Equal(t, codes.NotFound, status.Code(err))
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServer_HealthAndMetrics(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewServer(lis.Addr().String())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(lis) }()

	ChainWritesTotal.WithLabelValues("forwarded").Inc()

	base := "http://" + lis.Addr().String()

	code, body := get(t, base+"/health")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "OK", body)

	code, body = get(t, base+"/metrics")
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, `chaindb_chain_writes_total{result="forwarded"}`)

	srv.Stop()
	require.NoError(t, <-done)
}
