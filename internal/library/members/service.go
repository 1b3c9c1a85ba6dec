package members

import (
	"context"

	"library-backend/internal/platform/apierror"
	"library-backend/internal/platform/docstore"
)

type directoryStore interface {
	Insert(ctx context.Context, m *Member) (string, error)
	List(ctx context.Context) ([]Member, error)
}

type Service struct {
	store directoryStore
}

func NewService(ds *docstore.Store) *Service {
	return &Service{store: NewStore(ds)}
}

// AddMember は会員を登録して識別子を返す。is_active は常に true で作る。
func (s *Service) AddMember(ctx context.Context, req CreateMemberRequest) (string, error) {
	m := &Member{
		Name:     req.Name,
		Email:    req.Email,
		IsActive: true,
	}
	if req.MembershipID != nil {
		m.MembershipID = *req.MembershipID
	}
	if req.Phone != nil {
		m.Phone = *req.Phone
	}

	id, err := s.store.Insert(ctx, m)
	if err != nil {
		return "", apierror.ErrInternal("failed to insert member")
	}
	return id, nil
}

func (s *Service) ListMembers(ctx context.Context) ([]MemberResponse, error) {
	ms, err := s.store.List(ctx)
	if err != nil {
		return nil, apierror.ErrInternal("failed to list members")
	}
	res := make([]MemberResponse, 0, len(ms))
	for i := range ms {
		res = append(res, buildMemberResponse(&ms[i]))
	}
	return res, nil
}

func buildMemberResponse(m *Member) MemberResponse {
	resp := MemberResponse{
		ID:       m.ID.Hex(),
		Name:     m.Name,
		Email:    m.Email,
		IsActive: m.IsActive,
	}
	if m.MembershipID != "" {
		val := m.MembershipID
		resp.MembershipID = &val
	}
	if m.Phone != "" {
		val := m.Phone
		resp.Phone = &val
	}
	return resp
}
