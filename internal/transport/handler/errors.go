package handler

import (
	"context"
	"errors"

	"chaindb/internal/chain"
	replicationpb "chaindb/internal/transport/gen/replicationpb"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toGRPCError(err error, key []byte) error {
	if errors.Is(err, chain.ErrInvalidArgument) {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	if errors.Is(err, chain.ErrNotFound) {
		st := status.New(codes.NotFound, "key not found")
		ds, detailErr := st.WithDetails(&replicationpb.KeyNotFoundDetails{
			Key: key,
		})

		if detailErr != nil {
			return st.Err()
		}
		return ds.Err()
	}

	if errors.Is(err, chain.ErrClosed) {
		return status.Error(codes.Unavailable, "node is shutting down")
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, "request canceled")
	}

	var perr *chain.PeerError
	if errors.As(err, &perr) {
		st := status.New(codes.Internal, err.Error())
		ds, detailErr := st.WithDetails(&replicationpb.PeerUnreachableDetails{
			Direction: perr.Direction.String(),
			Address:   perr.Addr,
		})

		if detailErr != nil {
			return st.Err()
		}
		return ds.Err()
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")
	case errors.Is(err, chain.ErrStorage):
		return status.Errorf(codes.Internal, "storage error: %v", err)
	default:
		return status.Errorf(codes.Internal, "internal error: %v", err)
	}
}
