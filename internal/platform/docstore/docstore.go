package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ドキュメントストア（MongoDB）への汎用アクセス層。
// コレクション名とドキュメントを受け取るだけで、内容の検証は呼び出し側が行う。

var (
	// ErrInvalidID: 識別子が ObjectID の16進表現として不正
	ErrInvalidID = errors.New("invalid id")
	// ErrNotFound: 該当ドキュメントなし
	ErrNotFound = errors.New("not found")
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(c DatabaseConfig) (*Store, error) {
	opts := options.Client().
		ApplyURI(c.URL).
		SetConnectTimeout(3 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(80).
		SetMaxConnIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("接続準備に失敗: %w", err)
	}

	return &Store{client: client, db: client.Database(c.Name)}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ParseID は識別子文字列の形式チェックを行う。
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// Create はドキュメントを挿入し、採番された識別子を文字列で返す。
func (s *Store) Create(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

// List は filter に一致する全ドキュメントを out（スライスへのポインタ）に読み込む。
// filter が nil なら全件。
func (s *Store) List(ctx context.Context, collection string, filter any, out any) error {
	if filter == nil {
		filter = bson.D{}
	}
	cur, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (s *Store) GetByID(ctx context.Context, collection, id string, out any) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// FindOne は filter に一致する最初のドキュメントを out に読み込む。
func (s *Store) FindOne(ctx context.Context, collection string, filter any, out any) error {
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (s *Store) UpdateByID(ctx context.Context, collection, id string, update any) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	_, err = s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

// UpdateOne は条件付き更新を1回の操作として実行し、更新件数を返す。
// 在庫の引き当てのように「条件を満たす場合のみ更新」を原子的に行う用途。
func (s *Store) UpdateOne(ctx context.Context, collection string, filter, update any) (int64, error) {
	res, err := s.db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// Collections は診断用にコレクション名の一覧を返す。
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}
