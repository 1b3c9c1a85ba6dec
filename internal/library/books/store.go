package books

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/platform/docstore"
)

const collection = "book"

type Store struct {
	ds *docstore.Store
}

func NewStore(ds *docstore.Store) *Store { return &Store{ds: ds} }

func (s *Store) Insert(ctx context.Context, b *Book) (string, error) {
	return s.ds.Create(ctx, collection, b)
}

// List: q が空なら全件。指定時は title / author / categories のいずれかに
// 対する部分一致（大文字小文字を無視）で絞り込む。
func (s *Store) List(ctx context.Context, q string) ([]Book, error) {
	var filter any
	if q != "" {
		re := primitive.Regex{Pattern: q, Options: "i"}
		filter = bson.M{"$or": bson.A{
			bson.M{"title": bson.M{"$regex": re}},
			bson.M{"author": bson.M{"$regex": re}},
			bson.M{"categories": bson.M{"$elemMatch": bson.M{"$regex": re}}},
		}}
	}
	var out []Book
	if err := s.ds.List(ctx, collection, filter, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*Book, error) {
	var b Book
	if err := s.ds.GetByID(ctx, collection, id, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// DecrementAvailable は copies_available > 0 のときだけ -1 する。
// チェックと減算を単一の条件付き更新にまとめ、同時貸出での取りすぎを防ぐ。
// 減算できたかどうかを返す。
func (s *Store) DecrementAvailable(ctx context.Context, id string) (bool, error) {
	oid, err := docstore.ParseID(id)
	if err != nil {
		return false, err
	}
	n, err := s.ds.UpdateOne(ctx, collection,
		bson.M{"_id": oid, "copies_available": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"copies_available": -1}},
	)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// IncrementAvailable は返却時の +1。対象ドキュメントが無くてもエラーにはしない。
func (s *Store) IncrementAvailable(ctx context.Context, id string) error {
	oid, err := docstore.ParseID(id)
	if err != nil {
		return err
	}
	_, err = s.ds.UpdateOne(ctx, collection,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"copies_available": 1}},
	)
	return err
}
