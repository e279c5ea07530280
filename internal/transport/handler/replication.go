package handler

import (
	"context"
	"log/slog"

	"chaindb/internal/chain"
	replicationpb "chaindb/internal/transport/gen/replicationpb"
)

// Coordinator is the chain node behind both gRPC services.
type Coordinator interface {
	HandleUpdate(ctx context.Context, rec chain.WriteRecord) (string, error)
	HandleAck(ctx context.Context, id string) error
	HandleQuery(ctx context.Context, id string, key []byte) (chain.QueryResult, error)
	Inspect() chain.NodeStatus
}

type ReplicationHandler struct {
	replicationpb.UnimplementedReplicatorServer
	coordinator Coordinator
}

func NewReplicationHandler(c Coordinator) *ReplicationHandler {
	return &ReplicationHandler{coordinator: c}
}

func (h *ReplicationHandler) Update(
	ctx context.Context,
	req *replicationpb.UpdateRequest,
) (*replicationpb.UpdateReply, error) {
	slog.Debug("received update", "id", req.GetId(), "key", string(req.GetKey()))

	id, err := h.coordinator.HandleUpdate(ctx, chain.WriteRecord{
		ID:    req.GetId(),
		Key:   req.GetKey(),
		Value: req.GetValue(),
	})
	if err != nil {
		slog.Error("update failed",
			"error", err,
			"id", req.GetId(),
			"key", string(req.GetKey()),
		)
		return nil, toGRPCError(err, req.GetKey())
	}

	return UpdateReply(id), nil
}

func (h *ReplicationHandler) AckWrite(
	ctx context.Context,
	req *replicationpb.AckRequest,
) (*replicationpb.AckReply, error) {
	slog.Debug("received ack", "id", req.GetId())

	if err := h.coordinator.HandleAck(ctx, req.GetId()); err != nil {
		slog.Error("ack failed", "error", err, "id", req.GetId())
		return nil, toGRPCError(err, nil)
	}

	return AckReply(req.GetId()), nil
}
