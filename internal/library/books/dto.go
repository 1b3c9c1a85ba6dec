package books

// 書籍登録リクエスト
type CreateBookRequest struct {
	Title         string   `json:"title" binding:"required"`
	Author        string   `json:"author" binding:"required"`
	ISBN          *string  `json:"isbn,omitempty"`
	PublishedYear *int     `json:"published_year,omitempty" binding:"omitempty,gte=0,lte=2100"`
	Categories    []string `json:"categories,omitempty"`
	Description   *string  `json:"description,omitempty"`
	// 省略時は1冊
	CopiesTotal *int `json:"copies_total,omitempty" binding:"omitempty,gte=0"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

// 書籍レスポンス
type BookResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	ISBN            *string  `json:"isbn,omitempty"`
	PublishedYear   *int     `json:"published_year,omitempty"`
	Categories      []string `json:"categories"`
	Description     *string  `json:"description,omitempty"`
	CopiesTotal     int      `json:"copies_total"`
	CopiesAvailable int      `json:"copies_available"`
}
