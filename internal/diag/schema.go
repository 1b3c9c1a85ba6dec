package diag

// 各コレクションのフィールド定義。ストレージ層はスキーマを強制しないので、
// 境界での検証内容をそのまま外向けに公開する。

type FieldSchema struct {
	Type        string `json:"type"`
	Required    bool   `json:"required,omitempty"`
	Default     any    `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}

func CollectionSchemas() map[string]map[string]FieldSchema {
	return map[string]map[string]FieldSchema{
		"book": {
			"title":            {Type: "string", Required: true, Description: "Book title"},
			"author":           {Type: "string", Required: true, Description: "Author name"},
			"isbn":             {Type: "string", Description: "ISBN number"},
			"published_year":   {Type: "int", Description: "Year published (0-2100)"},
			"categories":       {Type: "[]string", Default: []string{}, Description: "Categories/genres"},
			"description":      {Type: "string", Description: "Brief description"},
			"copies_total":     {Type: "int", Default: 1, Description: "Total copies owned"},
			"copies_available": {Type: "int", Description: "Copies currently available"},
		},
		"member": {
			"name":          {Type: "string", Required: true, Description: "Full name"},
			"email":         {Type: "string", Required: true, Description: "Email address"},
			"membership_id": {Type: "string", Description: "External membership ID"},
			"phone":         {Type: "string", Description: "Phone number"},
			"is_active":     {Type: "bool", Default: true, Description: "Active membership"},
		},
		"loan": {
			"book_id":     {Type: "string", Required: true, Description: "ID of the book"},
			"member_id":   {Type: "string", Required: true, Description: "ID of the member"},
			"loan_date":   {Type: "datetime", Description: "Loan date (default now)"},
			"due_date":    {Type: "date", Description: "Due date"},
			"return_date": {Type: "datetime", Description: "Return date if returned"},
			"status":      {Type: "string", Default: "borrowed", Description: "borrowed | returned | overdue"},
		},
	}
}
