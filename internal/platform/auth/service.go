package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"library-backend/internal/platform/docstore"
)

var (
	ErrAlreadyExists = errors.New("already exists")
	ErrAuthFailed    = errors.New("authentication failed")
)

type Service struct {
	store  AccountStore
	secret []byte
}

func NewService(ds *docstore.Store, secret []byte) *Service {
	return &Service{store: NewStore(ds), secret: secret}
}

// Secret はミドルウェアでの検証用
func (s *Service) Secret() []byte { return s.secret }

func (s *Service) Login(ctx context.Context, accountID, password string) (string, error) {
	acct, err := s.store.GetByAccountID(ctx, accountID)
	if err != nil {
		return "", err
	}
	if acct == nil || acct.IsDisabled {
		return "", ErrAuthFailed
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return "", ErrAuthFailed
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  acct.AccountID,
		"role": acct.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})

	return token.SignedString(s.secret)
}

func (s *Service) Register(ctx context.Context, accountID, password, role string) error {
	exists, err := s.store.GetByAccountID(ctx, accountID)
	if err != nil {
		return err
	}
	if exists != nil {
		return ErrAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.store.Create(ctx, &Account{
		AccountID:    accountID,
		PasswordHash: string(hash),
		Role:         role,
		IsDisabled:   false,
	})
}
