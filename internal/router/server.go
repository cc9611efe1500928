package router

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	routerpb "hashring/internal/gen/api"
	"hashring/internal/hashring"
	"hashring/internal/syncring"
	"hashring/internal/vnode"
)

// Server implements the Router gRPC service over a consistent hash ring.
type Server struct {
	routerpb.UnimplementedRouterServer

	ring          *syncring.Ring[vnode.VNode, hashring.Str]
	defaultVNodes int

	mu      sync.RWMutex
	members map[string]Member // member ID -> Member
	byAddr  map[string]string // vnode addr -> member ID
}

// NewServer creates a router with no members. defaultVNodes is used for
// members that join without a vnode count; zero or negative selects
// DefaultVNodes.
func NewServer(defaultVNodes int) *Server {
	if defaultVNodes <= 0 {
		defaultVNodes = DefaultVNodes
	}
	return &Server{
		ring:          syncring.New[vnode.VNode, hashring.Str](),
		defaultVNodes: defaultVNodes,
		members:       make(map[string]Member),
		byAddr:        make(map[string]string),
	}
}

// JoinMember registers m and places its vnode identities on the ring.
// Joining an already-registered member ID is a no-op. Returns the
// resulting number of ring entries.
func (s *Server) JoinMember(m Member) (int, error) {
	if m.ID == "" || m.Addr == "" {
		return 0, fmt.Errorf("member ID and address cannot be empty: %+v", m)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.members[m.ID]; exists {
		return s.ring.Len(), nil
	}
	if otherID, taken := s.byAddr[m.Addr]; taken {
		return 0, fmt.Errorf("address %s already registered by member %s", m.Addr, otherID)
	}

	if m.VNodes <= 0 {
		m.VNodes = s.defaultVNodes
	}
	for _, vn := range vnode.Spread(m.Addr, m.VNodes) {
		s.ring.Add(vn)
	}
	s.members[m.ID] = m
	s.byAddr[m.Addr] = m.ID

	logrus.WithFields(logrus.Fields{
		"member": m.ID,
		"addr":   m.Addr,
		"vnodes": m.VNodes,
	}).Info("member joined ring")

	return s.ring.Len(), nil
}

// LeaveMember removes the member with the given ID and all its vnode
// identities. Returns false when no such member is registered.
func (s *Server) LeaveMember(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, exists := s.members[id]
	if !exists {
		return false
	}

	for _, vn := range vnode.Spread(m.Addr, m.VNodes) {
		if _, ok := s.ring.Remove(vn); !ok {
			logrus.WithFields(logrus.Fields{
				"member": id,
				"vnode":  vn.String(),
			}).Warn("vnode missing from ring during leave")
		}
	}
	delete(s.members, id)
	delete(s.byAddr, m.Addr)

	logrus.WithFields(logrus.Fields{
		"member": id,
		"addr":   m.Addr,
	}).Info("member left ring")

	return true
}

// LocateKey resolves the member responsible for key. The second return is
// false when no members are registered.
func (s *Server) LocateKey(key string) (Member, bool) {
	vn, ok := s.ring.Get(hashring.Str(key))
	if !ok {
		return Member{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byAddr[vn.Addr]
	if !ok {
		// A concurrent leave raced the lookup; treat it as a miss on
		// this attempt.
		return Member{}, false
	}
	return s.members[id], true
}

// ListMembers returns the registered members sorted by ID.
func (s *Server) ListMembers() []Member {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := make([]Member, 0, len(s.members))
	for _, m := range s.members {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].ID < members[j].ID
	})
	return members
}

// RingEntries returns the current number of ring entries.
func (s *Server) RingEntries() int {
	return s.ring.Len()
}

// Locate handles Locate requests.
func (s *Server) Locate(ctx context.Context, req *routerpb.LocateRequest) (*routerpb.LocateResponse, error) {
	if req.Key == "" {
		return nil, status.Error(codes.InvalidArgument, "key cannot be empty")
	}

	m, ok := s.LocateKey(req.Key)
	if !ok {
		return &routerpb.LocateResponse{Found: false}, nil
	}
	return &routerpb.LocateResponse{
		Found:  true,
		Member: memberToProto(m),
	}, nil
}

// Join handles Join requests.
func (s *Server) Join(ctx context.Context, req *routerpb.JoinRequest) (*routerpb.JoinResponse, error) {
	if req.Member == nil {
		return nil, status.Error(codes.InvalidArgument, "member is required")
	}

	entries, err := s.JoinMember(memberFromProto(req.Member))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &routerpb.JoinResponse{RingEntries: uint32(entries)}, nil
}

// Leave handles Leave requests.
func (s *Server) Leave(ctx context.Context, req *routerpb.LeaveRequest) (*routerpb.LeaveResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "member ID cannot be empty")
	}
	return &routerpb.LeaveResponse{Removed: s.LeaveMember(req.Id)}, nil
}

// Members handles Members requests.
func (s *Server) Members(ctx context.Context, req *routerpb.MembersRequest) (*routerpb.MembersResponse, error) {
	members := s.ListMembers()
	resp := &routerpb.MembersResponse{
		Members: make([]*routerpb.Member, 0, len(members)),
	}
	for _, m := range members {
		resp.Members = append(resp.Members, memberToProto(m))
	}
	return resp, nil
}

// Health handles Health requests.
func (s *Server) Health(ctx context.Context, req *routerpb.HealthRequest) (*routerpb.HealthResponse, error) {
	return &routerpb.HealthResponse{Status: "SERVING"}, nil
}
