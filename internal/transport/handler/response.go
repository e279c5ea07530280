package handler

import (
	"chaindb/internal/chain"
	replicationpb "chaindb/internal/transport/gen/replicationpb"
)

func UpdateReply(id string) *replicationpb.UpdateReply {
	return &replicationpb.UpdateReply{Id: id}
}

func AckReply(id string) *replicationpb.AckReply {
	return &replicationpb.AckReply{Id: id}
}

func QueryReply(res chain.QueryResult) *replicationpb.QueryReply {
	return &replicationpb.QueryReply{
		Id:    res.ID,
		Key:   res.Key,
		Value: res.Value,
	}
}

func InspectReply(st chain.NodeStatus) *replicationpb.InspectReply {
	return &replicationpb.InspectReply{
		Role:     string(st.Role),
		NextAddr: st.NextAddr,
		PrevAddr: st.PrevAddr,
		Sent:     st.Sent,
		Pending:  st.Pending,
	}
}
