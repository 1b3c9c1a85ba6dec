package books

import "go.mongodb.org/mongo-driver/bson/primitive"

// Book は book コレクションの1ドキュメントを表す
type Book struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Author          string             `bson:"author"`
	ISBN            string             `bson:"isbn,omitempty"`
	PublishedYear   *int               `bson:"published_year,omitempty"`
	Categories      []string           `bson:"categories"`
	Description     string             `bson:"description,omitempty"`
	CopiesTotal     int                `bson:"copies_total"`
	CopiesAvailable int                `bson:"copies_available"`
}
