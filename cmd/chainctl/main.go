// Command chainctl talks to a chaindb node: it writes, acknowledges, reads
// and inspects, and can drive a batch of concurrent writes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"chaindb/internal/logging"
	"chaindb/internal/transport"
	replicationpb "chaindb/internal/transport/gen/replicationpb"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/status"
)

const usage = `usage: chainctl [-addr host:port] [-timeout d] <command> [args]

commands:
  update [-id ID] KEY VALUE   write KEY=VALUE through the chain
  ack ID                      send an acknowledgment for ID
  query KEY                   read KEY
  inspect                     show role, neighbours and outstanding writes
  load [-n N] [-c C] [-prefix P]
                              issue N writes with C in flight
`

var errUsage = errors.New("invalid usage")

type client struct {
	replicator replicationpb.ReplicatorClient
	querier    replicationpb.QuerierClient
	out        io.Writer
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		slog.Error("chainctl failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("chainctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	addr := fs.String("addr", "127.0.0.1:7000", "node address")
	timeout := fs.Duration("timeout", 5*time.Second, "per-command timeout")
	logLevel := fs.String("log-level", "warn", "log level")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	logging.InitWithWriter(os.Stderr, *logLevel, logging.FormatPretty)

	conn, err := transport.NewClientConn(*addr, transport.ClientOptions{})
	if err != nil {
		return fmt.Errorf("connect %s: %w", *addr, err)
	}
	defer conn.Close()

	c := &client{
		replicator: replicationpb.NewReplicatorClient(conn),
		querier:    replicationpb.NewQuerierClient(conn),
		out:        out,
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "update":
		return c.update(ctx, rest)
	case "ack":
		return c.ack(ctx, rest)
	case "query":
		return c.query(ctx, rest)
	case "inspect":
		return c.inspect(ctx, rest)
	case "load":
		return c.load(ctx, rest)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (c *client) update(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	id := fs.String("id", "", "write id (generated when empty)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 2 {
		return errUsage
	}
	if *id == "" {
		*id = uuid.NewString()
	}

	resp, err := c.replicator.Update(ctx, &replicationpb.UpdateRequest{
		Id:    *id,
		Key:   []byte(fs.Arg(0)),
		Value: []byte(fs.Arg(1)),
	})
	if err != nil {
		return describe(err)
	}
	fmt.Fprintf(c.out, "ok id=%s\n", resp.GetId())
	return nil
}

func (c *client) ack(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	resp, err := c.replicator.AckWrite(ctx, &replicationpb.AckRequest{Id: args[0]})
	if err != nil {
		return describe(err)
	}
	fmt.Fprintf(c.out, "ok id=%s\n", resp.GetId())
	return nil
}

func (c *client) query(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	resp, err := c.querier.Query(ctx, &replicationpb.QueryRequest{
		Id:  uuid.NewString(),
		Key: []byte(args[0]),
	})
	if err != nil {
		return describe(err)
	}
	fmt.Fprintf(c.out, "%s=%s\n", resp.GetKey(), resp.GetValue())
	return nil
}

func (c *client) inspect(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	resp, err := c.querier.Inspect(ctx, &replicationpb.InspectRequest{})
	if err != nil {
		return describe(err)
	}

	fmt.Fprintf(c.out, "role:    %s\n", resp.GetRole())
	fmt.Fprintf(c.out, "next:    %s\n", orNone(resp.GetNextAddr()))
	fmt.Fprintf(c.out, "prev:    %s\n", orNone(resp.GetPrevAddr()))
	fmt.Fprintf(c.out, "sent:    %d\n", len(resp.GetSent()))
	fmt.Fprintf(c.out, "pending: %d %s\n", len(resp.GetPending()), strings.Join(resp.GetPending(), ","))
	return nil
}

func (c *client) load(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("load", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	n := fs.Int("n", 100, "number of writes")
	concurrency := fs.Int("c", 8, "writes in flight")
	prefix := fs.String("prefix", "key", "key prefix")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *n <= 0 || *concurrency <= 0 || fs.NArg() != 0 {
		return errUsage
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*concurrency)
	for i := range *n {
		g.Go(func() error {
			_, err := c.replicator.Update(gctx, &replicationpb.UpdateRequest{
				Id:    uuid.NewString(),
				Key:   []byte(fmt.Sprintf("%s-%d", *prefix, i)),
				Value: []byte(fmt.Sprintf("value-%d", i)),
			})
			if err != nil {
				return fmt.Errorf("write %d: %w", i, describe(err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	elapsed := time.Since(start)
	fmt.Fprintf(c.out, "wrote %d keys in %s (%.0f writes/s)\n", *n, elapsed.Round(time.Millisecond), float64(*n)/elapsed.Seconds())
	return nil
}

// describe renders a gRPC status with its details, e.g. the unreachable
// neighbour or the missing key.
func describe(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	parts := []string{fmt.Sprintf("%s: %s", st.Code(), st.Message())}
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *replicationpb.PeerUnreachableDetails:
			parts = append(parts, fmt.Sprintf("%s neighbour %s", v.GetDirection(), v.GetAddress()))
		case *replicationpb.KeyNotFoundDetails:
			parts = append(parts, fmt.Sprintf("key %q", v.GetKey()))
		}
	}
	return errors.New(strings.Join(parts, "; "))
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
