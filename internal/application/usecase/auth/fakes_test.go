package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[uuid.UUID]*entity.User
	created []*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{
		byEmail: make(map[string]*entity.User),
		byID:    make(map[uuid.UUID]*entity.User),
	}
	for _, u := range users {
		r.byEmail[u.Email] = u
		r.byID[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	r.created = append(r.created, user)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *fakeUserRepo) ListDigestRecipients(_ context.Context) ([]*entity.User, error) {
	var recipients []*entity.User
	for _, u := range r.byID {
		if u.DigestEnabled {
			recipients = append(recipients, u)
		}
	}
	return recipients, nil
}

// fakePasswordService hashes by prefixing so tests can verify without bcrypt.
type fakePasswordService struct {
	weak bool
}

func (s *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *fakePasswordService) VerifyPassword(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (s *fakePasswordService) ValidatePasswordStrength(password string) error {
	if s.weak || len(password) < 8 {
		return errors.New("password too weak")
	}
	return nil
}

type fakeTokenService struct {
	pairs       int
	invalidated map[string]bool
	claims      map[string]*adapter.TokenClaims
	generateErr error
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		invalidated: make(map[string]bool),
		claims:      make(map[string]*adapter.TokenClaims),
	}
}

func (s *fakeTokenService) GenerateTokenPair(_ context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	s.pairs++
	refresh := fmt.Sprintf("refresh-%d", s.pairs)
	s.claims[refresh] = &adapter.TokenClaims{UserID: userID, Email: email}
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", s.pairs),
		RefreshToken: refresh,
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	claims, ok := s.claims[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (s *fakeTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	claims, ok := s.claims[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (s *fakeTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.invalidated[token] = true
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	return !s.invalidated[token], nil
}

var (
	_ adapter.UserRepository  = (*fakeUserRepo)(nil)
	_ adapter.PasswordService = (*fakePasswordService)(nil)
	_ adapter.TokenService    = (*fakeTokenService)(nil)
)
