package router

import routerpb "hashring/internal/gen/api"

func memberToProto(m Member) *routerpb.Member {
	return &routerpb.Member{
		Id:     m.ID,
		Addr:   m.Addr,
		Vnodes: uint32(m.VNodes),
	}
}

func memberFromProto(m *routerpb.Member) Member {
	return Member{
		ID:     m.Id,
		Addr:   m.Addr,
		VNodes: int(m.Vnodes),
	}
}
