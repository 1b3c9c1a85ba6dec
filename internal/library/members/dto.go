package members

// 会員登録リクエスト
type CreateMemberRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	MembershipID *string `json:"membership_id,omitempty"`
	Phone        *string `json:"phone,omitempty"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

// 会員レスポンス
type MemberResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	MembershipID *string `json:"membership_id,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	IsActive     bool    `json:"is_active"`
}
