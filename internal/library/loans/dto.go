package loans

import "time"

// 貸出登録リクエスト
type CreateLoanRequest struct {
	BookID   string `json:"book_id" binding:"required"`
	MemberID string `json:"member_id" binding:"required"`
	// 貸出日数。省略時は14日
	Days *int `json:"days,omitempty"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type ReturnResponse struct {
	Status string `json:"status"`
}

// 貸出レスポンス
type LoanResponse struct {
	ID         string     `json:"id"`
	BookID     string     `json:"book_id"`
	MemberID   string     `json:"member_id"`
	LoanDate   time.Time  `json:"loan_date"`
	DueDate    string     `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	Status     string     `json:"status"`
}
