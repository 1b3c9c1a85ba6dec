package loans

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/library/books"
	"library-backend/internal/library/members"
	"library-backend/internal/platform/apierror"
	"library-backend/internal/platform/docstore"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fakeBooks struct {
	byID         map[string]*books.Book
	decCalls     []string
	incCalls     []string
	forceDecFail bool
	incErr       error
}

func (f *fakeBooks) GetByID(_ context.Context, id string) (*books.Book, error) {
	if _, err := docstore.ParseID(id); err != nil {
		return nil, err
	}
	b, ok := f.byID[id]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	return b, nil
}

func (f *fakeBooks) DecrementAvailable(_ context.Context, id string) (bool, error) {
	f.decCalls = append(f.decCalls, id)
	if f.forceDecFail {
		return false, nil
	}
	b, ok := f.byID[id]
	if !ok || b.CopiesAvailable <= 0 {
		return false, nil
	}
	b.CopiesAvailable--
	return true, nil
}

func (f *fakeBooks) IncrementAvailable(_ context.Context, id string) error {
	if f.incErr != nil {
		return f.incErr
	}
	f.incCalls = append(f.incCalls, id)
	if b, ok := f.byID[id]; ok {
		b.CopiesAvailable++
	}
	return nil
}

type fakeMembers struct {
	byID     map[string]*members.Member
	getCalls int
}

func (f *fakeMembers) GetByID(_ context.Context, id string) (*members.Member, error) {
	f.getCalls++
	if _, err := docstore.ParseID(id); err != nil {
		return nil, err
	}
	m, ok := f.byID[id]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	return m, nil
}

type fakeLoans struct {
	byID          map[string]*Loan
	inserted      []*Loan
	insertErr     error
	forceMarkFail bool
}

func (f *fakeLoans) Insert(_ context.Context, l *Loan) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	l.ID = primitive.NewObjectID()
	f.byID[l.ID.Hex()] = l
	f.inserted = append(f.inserted, l)
	return l.ID.Hex(), nil
}

func (f *fakeLoans) GetByID(_ context.Context, id string) (*Loan, error) {
	if _, err := docstore.ParseID(id); err != nil {
		return nil, err
	}
	l, ok := f.byID[id]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	return l, nil
}

func (f *fakeLoans) MarkReturned(_ context.Context, id string, at time.Time) (bool, error) {
	if f.forceMarkFail {
		return false, nil
	}
	l, ok := f.byID[id]
	if !ok || l.Status == StatusReturned {
		return false, nil
	}
	l.Status = StatusReturned
	l.ReturnDate = &at
	return true, nil
}

func (f *fakeLoans) List(_ context.Context, status string) ([]Loan, error) {
	var out []Loan
	for _, l := range f.byID {
		if status == "" || l.Status == status {
			out = append(out, *l)
		}
	}
	return out, nil
}

// ---------- test fixture ----------

var testNow = time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

type fixture struct {
	svc     *Service
	books   *fakeBooks
	members *fakeMembers
	loans   *fakeLoans
	bookID  string
	memID   string
}

func newFixture(copies int) *fixture {
	bookID := primitive.NewObjectID()
	memID := primitive.NewObjectID()

	fb := &fakeBooks{byID: map[string]*books.Book{
		bookID.Hex(): {ID: bookID, Title: "Dune", Author: "Herbert", CopiesTotal: copies, CopiesAvailable: copies},
	}}
	fm := &fakeMembers{byID: map[string]*members.Member{
		memID.Hex(): {ID: memID, Name: "Paul", Email: "paul@arrakis.example", IsActive: true},
	}}
	fl := &fakeLoans{byID: map[string]*Loan{}}

	return &fixture{
		svc:     &Service{store: fl, books: fb, members: fm, clock: fixedClock{t: testNow}},
		books:   fb,
		members: fm,
		loans:   fl,
		bookID:  bookID.Hex(),
		memID:   memID.Hex(),
	}
}

func requireAPICode(t *testing.T, err error, code apierror.Code) {
	t.Helper()
	var api *apierror.APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, code, api.Code)
}

func intPtr(v int) *int { return &v }

// ---------- CreateLoan ----------

func TestCreateLoan(t *testing.T) {
	f := newFixture(2)

	id, err := f.svc.CreateLoan(context.Background(), CreateLoanRequest{
		BookID:   f.bookID,
		MemberID: f.memID,
		Days:     intPtr(7),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, f.loans.inserted, 1)
	l := f.loans.inserted[0]
	assert.Equal(t, StatusBorrowed, l.Status)
	assert.Equal(t, testNow, l.LoanDate)
	assert.Equal(t, "2026-03-08", l.DueDate)
	assert.Nil(t, l.ReturnDate)

	assert.Equal(t, 1, f.books.byID[f.bookID].CopiesAvailable)
	assert.Equal(t, []string{f.bookID}, f.books.decCalls)
}

func TestCreateLoanDefaultDays(t *testing.T) {
	f := newFixture(1)

	_, err := f.svc.CreateLoan(context.Background(), CreateLoanRequest{
		BookID:   f.bookID,
		MemberID: f.memID,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", f.loans.inserted[0].DueDate)
}

func TestCreateLoanNoCopies(t *testing.T) {
	f := newFixture(0)

	// 会員IDが不正な形式でも、在庫ゼロのチェックが先に落とす
	_, err := f.svc.CreateLoan(context.Background(), CreateLoanRequest{
		BookID:   f.bookID,
		MemberID: "not-a-valid-id",
	})
	requireAPICode(t, err, apierror.CodeInvalidOperation)
	assert.Equal(t, 0, f.members.getCalls)
	assert.Empty(t, f.loans.inserted)
}

func TestCreateLoanInvalidBookID(t *testing.T) {
	f := newFixture(1)

	_, err := f.svc.CreateLoan(context.Background(), CreateLoanRequest{
		BookID:   "zzz",
		MemberID: f.memID,
	})
	requireAPICode(t, err, apierror.CodeInvalidArgument)
}

func TestCreateLoanBookNotFound(t *testing.T) {
	f := newFixture(1)

	_, err := f.svc.CreateLoan(context.Background(), CreateLoanRequest{
		BookID:   primitive.NewObjectID().Hex(),
		MemberID: f.memID,
	})
	requireAPICode(t, err, apierror.CodeNotFound)
}

func TestCreateLoanMemberNotFound(t *testing.T) {
	f := newFixture(1)

	_, err := f.svc.CreateLoan(context.Background(), CreateLoanRequest{
		BookID:   f.bookID,
		MemberID: primitive.NewObjectID().Hex(),
	})
	requireAPICode(t, err, apierror.CodeNotFound)

	// 在庫の引き当てまで進んでいないこと
	assert.Empty(t, f.books.decCalls)
	assert.Equal(t, 1, f.books.byID[f.bookID].CopiesAvailable)
}

func TestCreateLoanLosesRace(t *testing.T) {
	// 取得時には在庫ありに見えたが、条件付き更新で負けたケース
	f := newFixture(1)
	f.books.forceDecFail = true

	_, err := f.svc.CreateLoan(context.Background(), CreateLoanRequest{
		BookID:   f.bookID,
		MemberID: f.memID,
	})
	requireAPICode(t, err, apierror.CodeInvalidOperation)
	assert.Empty(t, f.loans.inserted)
}

func TestCreateLoanInsertFailureRollsBack(t *testing.T) {
	f := newFixture(1)
	f.loans.insertErr = errors.New("write failed")

	_, err := f.svc.CreateLoan(context.Background(), CreateLoanRequest{
		BookID:   f.bookID,
		MemberID: f.memID,
	})
	requireAPICode(t, err, apierror.CodeInternal)

	// 引き当てた在庫が戻っていること
	assert.Equal(t, []string{f.bookID}, f.books.incCalls)
	assert.Equal(t, 1, f.books.byID[f.bookID].CopiesAvailable)
}

// ---------- ReturnLoan ----------

func TestReturnLoanRestoresCopies(t *testing.T) {
	f := newFixture(1)

	id, err := f.svc.CreateLoan(context.Background(), CreateLoanRequest{
		BookID:   f.bookID,
		MemberID: f.memID,
	})
	require.NoError(t, err)
	require.Equal(t, 0, f.books.byID[f.bookID].CopiesAvailable)

	require.NoError(t, f.svc.ReturnLoan(context.Background(), id))

	l := f.loans.byID[id]
	assert.Equal(t, StatusReturned, l.Status)
	require.NotNil(t, l.ReturnDate)
	assert.Equal(t, testNow, *l.ReturnDate)
	assert.Equal(t, 1, f.books.byID[f.bookID].CopiesAvailable)
}

func TestReturnLoanTwice(t *testing.T) {
	f := newFixture(1)

	id, err := f.svc.CreateLoan(context.Background(), CreateLoanRequest{
		BookID:   f.bookID,
		MemberID: f.memID,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.ReturnLoan(context.Background(), id))

	err = f.svc.ReturnLoan(context.Background(), id)
	requireAPICode(t, err, apierror.CodeInvalidOperation)

	// 在庫が二重に戻っていないこと
	assert.Len(t, f.books.incCalls, 1)
	assert.Equal(t, 1, f.books.byID[f.bookID].CopiesAvailable)
}

func TestReturnLoanNotFound(t *testing.T) {
	f := newFixture(1)

	err := f.svc.ReturnLoan(context.Background(), primitive.NewObjectID().Hex())
	requireAPICode(t, err, apierror.CodeNotFound)
}

func TestReturnLoanInvalidID(t *testing.T) {
	f := newFixture(1)

	err := f.svc.ReturnLoan(context.Background(), "zzz")
	requireAPICode(t, err, apierror.CodeInvalidArgument)
}

func TestReturnLoanConcurrentReturn(t *testing.T) {
	// 取得時は未返却だったが、更新時点では別リクエストが返却を終えていたケース
	f := newFixture(1)

	id, err := f.svc.CreateLoan(context.Background(), CreateLoanRequest{
		BookID:   f.bookID,
		MemberID: f.memID,
	})
	require.NoError(t, err)

	f.loans.forceMarkFail = true
	err = f.svc.ReturnLoan(context.Background(), id)
	requireAPICode(t, err, apierror.CodeInvalidOperation)
	assert.Empty(t, f.books.incCalls)
}

func TestReturnLoanMalformedBookRef(t *testing.T) {
	// 保存済みの book_id が不正でも、返却自体は成功する（在庫は戻らない）
	f := newFixture(1)

	oid := primitive.NewObjectID()
	f.loans.byID[oid.Hex()] = &Loan{
		ID:       oid,
		BookID:   "garbage",
		MemberID: f.memID,
		LoanDate: testNow,
		DueDate:  "2026-03-15",
		Status:   StatusBorrowed,
	}

	require.NoError(t, f.svc.ReturnLoan(context.Background(), oid.Hex()))
	assert.Equal(t, StatusReturned, f.loans.byID[oid.Hex()].Status)
	assert.Empty(t, f.books.incCalls)
}

// ---------- ListLoans ----------

func TestListLoansStatusFilter(t *testing.T) {
	f := newFixture(2)

	first, err := f.svc.CreateLoan(context.Background(), CreateLoanRequest{BookID: f.bookID, MemberID: f.memID})
	require.NoError(t, err)
	_, err = f.svc.CreateLoan(context.Background(), CreateLoanRequest{BookID: f.bookID, MemberID: f.memID})
	require.NoError(t, err)
	require.NoError(t, f.svc.ReturnLoan(context.Background(), first))

	returned, err := f.svc.ListLoans(context.Background(), StatusReturned)
	require.NoError(t, err)
	require.Len(t, returned, 1)
	assert.Equal(t, first, returned[0].ID)
	assert.NotNil(t, returned[0].ReturnDate)

	borrowed, err := f.svc.ListLoans(context.Background(), StatusBorrowed)
	require.NoError(t, err)
	require.Len(t, borrowed, 1)
	assert.Nil(t, borrowed[0].ReturnDate)

	all, err := f.svc.ListLoans(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// overdue へ遷移させる処理は無いので、絞り込んでも常に空
	overdue, err := f.svc.ListLoans(context.Background(), StatusOverdue)
	require.NoError(t, err)
	assert.Empty(t, overdue)
}
