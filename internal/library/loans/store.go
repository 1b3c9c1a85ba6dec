package loans

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"library-backend/internal/platform/docstore"
)

const collection = "loan"

type mongoStore struct {
	ds *docstore.Store
}

func NewStore(ds *docstore.Store) Store { return &mongoStore{ds: ds} }

func (s *mongoStore) Insert(ctx context.Context, l *Loan) (string, error) {
	return s.ds.Create(ctx, collection, l)
}

func (s *mongoStore) GetByID(ctx context.Context, id string) (*Loan, error) {
	var l Loan
	if err := s.ds.GetByID(ctx, collection, id, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// MarkReturned は未返却の場合のみ返却済みに更新する（条件付き更新）。
// 取得から更新までの間に別リクエストが返却を終えていた場合は false を返す。
func (s *mongoStore) MarkReturned(ctx context.Context, id string, at time.Time) (bool, error) {
	oid, err := docstore.ParseID(id)
	if err != nil {
		return false, err
	}
	n, err := s.ds.UpdateOne(ctx, collection,
		bson.M{"_id": oid, "status": bson.M{"$ne": StatusReturned}},
		bson.M{"$set": bson.M{"status": StatusReturned, "return_date": at}},
	)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// List: status が空なら全件。指定時はその値と完全一致する貸出のみ。
func (s *mongoStore) List(ctx context.Context, status string) ([]Loan, error) {
	var filter any
	if status != "" {
		filter = bson.M{"status": status}
	}
	var out []Loan
	if err := s.ds.List(ctx, collection, filter, &out); err != nil {
		return nil, err
	}
	return out, nil
}
