package books

import (
	"context"

	"golang.org/x/text/unicode/norm"

	"library-backend/internal/platform/apierror"
	"library-backend/internal/platform/docstore"
)

type catalogStore interface {
	Insert(ctx context.Context, b *Book) (string, error)
	List(ctx context.Context, q string) ([]Book, error)
}

type Service struct {
	store catalogStore
}

func NewService(ds *docstore.Store) *Service {
	return &Service{store: NewStore(ds)}
}

// AddBook は書籍を登録して識別子を返す。
// copies_available は登録時点の copies_total と同値で初期化する。
func (s *Service) AddBook(ctx context.Context, req CreateBookRequest) (string, error) {
	total := 1
	if req.CopiesTotal != nil {
		total = *req.CopiesTotal
	}

	b := &Book{
		Title:           req.Title,
		Author:          req.Author,
		PublishedYear:   req.PublishedYear,
		Categories:      req.Categories,
		CopiesTotal:     total,
		CopiesAvailable: total,
	}
	if req.ISBN != nil {
		b.ISBN = *req.ISBN
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if b.Categories == nil {
		b.Categories = []string{}
	}

	id, err := s.store.Insert(ctx, b)
	if err != nil {
		return "", apierror.ErrInternal("failed to insert book")
	}
	return id, nil
}

// ListBooks は一覧（q 指定時は検索）を返す。
func (s *Service) ListBooks(ctx context.Context, q string) ([]BookResponse, error) {
	if q != "" {
		// 合成文字の揺れで取りこぼさないよう NFC に正規化してからストアに渡す
		q = norm.NFC.String(q)
	}
	bs, err := s.store.List(ctx, q)
	if err != nil {
		return nil, apierror.ErrInternal("failed to list books")
	}
	res := make([]BookResponse, 0, len(bs))
	for i := range bs {
		res = append(res, buildBookResponse(&bs[i]))
	}
	return res, nil
}

func buildBookResponse(b *Book) BookResponse {
	resp := BookResponse{
		ID:              b.ID.Hex(),
		Title:           b.Title,
		Author:          b.Author,
		PublishedYear:   b.PublishedYear,
		Categories:      b.Categories,
		CopiesTotal:     b.CopiesTotal,
		CopiesAvailable: b.CopiesAvailable,
	}
	if b.ISBN != "" {
		val := b.ISBN
		resp.ISBN = &val
	}
	if b.Description != "" {
		val := b.Description
		resp.Description = &val
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	return resp
}
