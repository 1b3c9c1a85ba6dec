package loans

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 貸出ステータス。
// StatusOverdue はデータモデル上は予約されているが、延滞へ遷移させる処理は
// まだ存在しない（期日超過を検知するジョブが未実装のため）。
const (
	StatusBorrowed = "borrowed"
	StatusReturned = "returned"
	StatusOverdue  = "overdue"
)

// Loan は loan コレクションの1ドキュメントを表す。
// book_id / member_id は参照先ドキュメントの識別子の文字列表現。
type Loan struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	BookID   string             `bson:"book_id"`
	MemberID string             `bson:"member_id"`
	LoanDate time.Time          `bson:"loan_date"`
	// "2006-01-02" 形式の日付文字列
	DueDate    string     `bson:"due_date"`
	ReturnDate *time.Time `bson:"return_date,omitempty"`
	Status     string     `bson:"status"`
}
