package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chaindb/internal/chain"
	"chaindb/internal/configuration/properties"
	"chaindb/internal/metrics"
	replicationpb "chaindb/internal/transport/gen/replicationpb"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"
)

type ClientOptions struct {
	KeepaliveTime    time.Duration
	KeepaliveTimeout time.Duration
}

func ClientOptionsFrom(c *properties.ChainConfigProperties) ClientOptions {
	return ClientOptions{
		KeepaliveTime:    c.KeepaliveTimeDuration(),
		KeepaliveTimeout: c.KeepaliveTimeoutDuration(),
	}
}

// NewClientConn creates a lazy client connection to addr. No I/O happens
// until the first call or Connect.
func NewClientConn(addr string, opts ClientOptions) (*grpc.ClientConn, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(metrics.UnaryClientInterceptor()),
	}
	if opts.KeepaliveTime > 0 {
		dialOpts = append(dialOpts, grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                opts.KeepaliveTime,
			Timeout:             opts.KeepaliveTimeout,
			PermitWithoutStream: true,
		}))
	}

	return grpc.NewClient(addr, dialOpts...)
}

// GRPCDialer connects to chain neighbours. Dial returns only once the
// connection is ready, so an unreachable neighbour fails at dial time.
type GRPCDialer struct {
	opts ClientOptions
}

func NewGRPCDialer(opts ClientOptions) *GRPCDialer {
	return &GRPCDialer{opts: opts}
}

func (d *GRPCDialer) Dial(ctx context.Context, addr string) (chain.Peer, error) {
	conn, err := NewClientConn(addr, d.opts)
	if err != nil {
		return nil, err
	}

	if err := waitReady(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &grpcPeer{
		addr:   addr,
		conn:   conn,
		client: replicationpb.NewReplicatorClient(conn),
	}, nil
}

func waitReady(ctx context.Context, conn *grpc.ClientConn) error {
	conn.Connect()
	for {
		state := conn.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.TransientFailure:
			return fmt.Errorf("connect %s: transient failure", conn.Target())
		case connectivity.Shutdown:
			return fmt.Errorf("connect %s: connection shut down", conn.Target())
		}

		if !conn.WaitForStateChange(ctx, state) {
			return fmt.Errorf("connect %s: %w", conn.Target(), ctx.Err())
		}
	}
}

type grpcPeer struct {
	addr   string
	conn   *grpc.ClientConn
	client replicationpb.ReplicatorClient
}

func (p *grpcPeer) Update(ctx context.Context, rec chain.WriteRecord) error {
	_, err := p.client.Update(ctx, &replicationpb.UpdateRequest{
		Id:    rec.ID,
		Key:   rec.Key,
		Value: rec.Value,
	})
	return peerError(err)
}

func (p *grpcPeer) AckWrite(ctx context.Context, id string) error {
	_, err := p.client.AckWrite(ctx, &replicationpb.AckRequest{Id: id})
	return peerError(err)
}

func (p *grpcPeer) Close() error {
	return p.conn.Close()
}

// peerError classifies a failed call: transport trouble is ErrPeerUnreachable,
// a failure reported by the neighbour itself is ErrReplication.
func peerError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %w", chain.ErrPeerUnreachable, err)
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", chain.ErrPeerUnreachable, st.Message())
	case codes.Canceled:
		return fmt.Errorf("%w: %s", context.Canceled, st.Message())
	default:
		return fmt.Errorf("%w: %s: %s", chain.ErrReplication, st.Code(), st.Message())
	}
}
