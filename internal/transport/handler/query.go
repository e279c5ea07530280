package handler

import (
	"context"
	"errors"
	"log/slog"

	"chaindb/internal/chain"
	replicationpb "chaindb/internal/transport/gen/replicationpb"
)

type QueryHandler struct {
	replicationpb.UnimplementedQuerierServer
	coordinator Coordinator
}

func NewQueryHandler(c Coordinator) *QueryHandler {
	return &QueryHandler{coordinator: c}
}

func (h *QueryHandler) Query(
	ctx context.Context,
	req *replicationpb.QueryRequest,
) (*replicationpb.QueryReply, error) {
	res, err := h.coordinator.HandleQuery(ctx, req.GetId(), req.GetKey())
	if err != nil {
		if errors.Is(err, chain.ErrNotFound) {
			slog.Debug("query miss", "id", req.GetId(), "key", string(req.GetKey()))
		} else {
			slog.Error("query failed", "error", err, "id", req.GetId())
		}
		return nil, toGRPCError(err, req.GetKey())
	}

	return QueryReply(res), nil
}

func (h *QueryHandler) Inspect(
	_ context.Context,
	_ *replicationpb.InspectRequest,
) (*replicationpb.InspectReply, error) {
	return InspectReply(h.coordinator.Inspect()), nil
}
