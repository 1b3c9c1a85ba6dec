package auth

import "go.mongodb.org/mongo-driver/bson/primitive"

// Account は account コレクションの1ドキュメント（職員アカウント）
type Account struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	AccountID    string             `bson:"account_id"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	IsDisabled   bool               `bson:"is_disabled"`
}
