package members

import (
	"context"

	"library-backend/internal/platform/docstore"
)

const collection = "member"

type Store struct {
	ds *docstore.Store
}

func NewStore(ds *docstore.Store) *Store { return &Store{ds: ds} }

func (s *Store) Insert(ctx context.Context, m *Member) (string, error) {
	return s.ds.Create(ctx, collection, m)
}

func (s *Store) List(ctx context.Context) ([]Member, error) {
	var out []Member
	if err := s.ds.List(ctx, collection, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*Member, error) {
	var m Member
	if err := s.ds.GetByID(ctx, collection, id, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
