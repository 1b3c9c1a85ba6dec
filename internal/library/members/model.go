package members

import "go.mongodb.org/mongo-driver/bson/primitive"

// Member は member コレクションの1ドキュメントを表す
type Member struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	MembershipID string             `bson:"membership_id,omitempty"`
	Phone        string             `bson:"phone,omitempty"`
	IsActive     bool               `bson:"is_active"`
}
