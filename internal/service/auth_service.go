package service

import (
	"errors"
	"os"
	"time"

	"rentacar/internal/db"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// OperatorStore looks up operator login rows.
type OperatorStore interface {
	GetByEmail(email string) (*db.Operator, error)
}

// AuthService issues operator tokens. This is deliberately thin glue: the
// booking engine never checks credentials itself, it trusts the role claim
// the middleware extracts.
type AuthService struct {
	repo OperatorStore
}

func NewAuthService(repo OperatorStore) *AuthService {
	return &AuthService{repo: repo}
}

func (s *AuthService) Login(email, password string) (string, error) {
	operator, err := s.repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if operator == nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"sub":   operator.ID,
		"email": operator.Email,
		"role":  "operator",
		"exp":   time.Now().Add(time.Hour * 8).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}
