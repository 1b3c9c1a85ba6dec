package auth

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"library-backend/internal/platform/docstore"
)

const collection = "account"

type AccountStore interface {
	// GetByAccountID は未登録なら (nil, nil) を返す
	GetByAccountID(ctx context.Context, accountID string) (*Account, error)
	Create(ctx context.Context, a *Account) error
}

type mongoStore struct {
	ds *docstore.Store
}

func NewStore(ds *docstore.Store) AccountStore { return &mongoStore{ds: ds} }

func (s *mongoStore) GetByAccountID(ctx context.Context, accountID string) (*Account, error) {
	var a Account
	err := s.ds.FindOne(ctx, collection, bson.M{"account_id": accountID}, &a)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *mongoStore) Create(ctx context.Context, a *Account) error {
	_, err := s.ds.Create(ctx, collection, a)
	return err
}
