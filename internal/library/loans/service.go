package loans

import (
	"context"
	"errors"
	"log"
	"time"

	"library-backend/internal/library/books"
	"library-backend/internal/library/members"
	"library-backend/internal/platform/apierror"
	"library-backend/internal/platform/docstore"
)

const defaultLoanDays = 14

// ===== インターフェース群 =====

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

// Store は loan コレクションへのアクセス
type Store interface {
	Insert(ctx context.Context, l *Loan) (string, error)
	GetByID(ctx context.Context, id string) (*Loan, error)
	MarkReturned(ctx context.Context, id string, at time.Time) (bool, error)
	List(ctx context.Context, status string) ([]Loan, error)
}

// BookSource は蔵書の参照と在庫数の増減
type BookSource interface {
	GetByID(ctx context.Context, id string) (*books.Book, error)
	DecrementAvailable(ctx context.Context, id string) (bool, error)
	IncrementAvailable(ctx context.Context, id string) error
}

// MemberSource は会員の存在確認
type MemberSource interface {
	GetByID(ctx context.Context, id string) (*members.Member, error)
}

// ===== Service本体 =====

type Service struct {
	store   Store
	books   BookSource
	members MemberSource
	clock   Clock
}

func NewService(ds *docstore.Store) *Service {
	return &Service{
		store:   NewStore(ds),
		books:   books.NewStore(ds),
		members: members.NewStore(ds),
		clock:   realClock{},
	}
}

// CreateLoan は貸出を登録する。
//  1. 書籍の存在確認
//  2. 在庫ゼロなら即エラー（会員IDの正否に関わらずここで落とす）
//  3. 会員の存在確認
//  4. 在庫の引き当て（条件付き更新。同時リクエストに負けた側はここで落ちる）
//  5. 貸出ドキュメントの挿入。失敗したら引き当て分を戻す
func (s *Service) CreateLoan(ctx context.Context, req CreateLoanRequest) (string, error) {
	book, err := s.books.GetByID(ctx, req.BookID)
	if err != nil {
		return "", lookupError(err, "book not found")
	}
	if book.CopiesAvailable <= 0 {
		return "", apierror.ErrInvalidOperation("No copies available")
	}

	if _, err := s.members.GetByID(ctx, req.MemberID); err != nil {
		return "", lookupError(err, "member not found")
	}

	days := defaultLoanDays
	if req.Days != nil {
		days = *req.Days
	}
	now := s.clock.Now()

	ok, err := s.books.DecrementAvailable(ctx, req.BookID)
	if err != nil {
		return "", apierror.ErrInternal("failed to update copies_available")
	}
	if !ok {
		return "", apierror.ErrInvalidOperation("No copies available")
	}

	l := &Loan{
		BookID:   req.BookID,
		MemberID: req.MemberID,
		LoanDate: now,
		DueDate:  now.AddDate(0, 0, days).Format("2006-01-02"),
		Status:   StatusBorrowed,
	}
	id, err := s.store.Insert(ctx, l)
	if err != nil {
		// 引き当て済みの在庫を戻す
		if cerr := s.books.IncrementAvailable(ctx, req.BookID); cerr != nil {
			log.Printf("[WARN] failed to roll back copies_available for book %s: %v", req.BookID, cerr)
		}
		return "", apierror.ErrInternal("failed to insert loan")
	}
	return id, nil
}

// ReturnLoan は貸出を返却済みにし、書籍の在庫を1戻す。
// 同じ貸出に対して二重に呼ばれた場合、2回目は "Already returned" で失敗する。
func (s *Service) ReturnLoan(ctx context.Context, loanID string) error {
	loan, err := s.store.GetByID(ctx, loanID)
	if err != nil {
		return lookupError(err, "loan not found")
	}
	if loan.Status == StatusReturned {
		return apierror.ErrInvalidOperation("Already returned")
	}

	ok, err := s.store.MarkReturned(ctx, loanID, s.clock.Now())
	if err != nil {
		return apierror.ErrInternal("failed to update loan")
	}
	if !ok {
		// 取得と更新の間に別リクエストが返却を終えたケース
		return apierror.ErrInvalidOperation("Already returned")
	}

	// 保存されている book_id が不正な形式の場合は在庫を戻せない。
	// 返却自体は成功のまま、警告だけ残す。
	if _, err := docstore.ParseID(loan.BookID); err != nil {
		log.Printf("[WARN] loan %s references malformed book_id %q, copies_available not incremented", loanID, loan.BookID)
		return nil
	}
	if err := s.books.IncrementAvailable(ctx, loan.BookID); err != nil {
		return apierror.ErrInternal("failed to update copies_available")
	}
	return nil
}

// ListLoans は一覧（status 指定時は完全一致で絞り込み）を返す。
func (s *Service) ListLoans(ctx context.Context, status string) ([]LoanResponse, error) {
	ls, err := s.store.List(ctx, status)
	if err != nil {
		return nil, apierror.ErrInternal("failed to list loans")
	}
	res := make([]LoanResponse, 0, len(ls))
	for i := range ls {
		res = append(res, buildLoanResponse(&ls[i]))
	}
	return res, nil
}

// ヘルパー関数

func lookupError(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, docstore.ErrInvalidID):
		return apierror.ErrInvalid("Invalid id")
	case errors.Is(err, docstore.ErrNotFound):
		return apierror.ErrNotFound(notFoundMsg)
	default:
		return apierror.ErrInternal(err.Error())
	}
}

func buildLoanResponse(l *Loan) LoanResponse {
	return LoanResponse{
		ID:         l.ID.Hex(),
		BookID:     l.BookID,
		MemberID:   l.MemberID,
		LoanDate:   l.LoanDate,
		DueDate:    l.DueDate,
		ReturnDate: l.ReturnDate,
		Status:     l.Status,
	}
}
