package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careermate/careermate-api/internal/config"
	"github.com/careermate/careermate-api/internal/model"
	"github.com/careermate/careermate-api/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserExists         = errors.New("user with this email/phone already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthResult is returned on signup and login; User never carries the
// password hash in JSON.
type AuthResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type AuthUsecase struct {
	users *repository.UserRepository
	cfg   *config.AuthConfig
	log   *zap.Logger
}

func NewAuthUsecase(users *repository.UserRepository, cfg *config.AuthConfig, log *zap.Logger) *AuthUsecase {
	return &AuthUsecase{users: users, cfg: cfg, log: log}
}

// Signup registers an account with an email or phone identifier and the
// given role.
func (uc *AuthUsecase) Signup(name, identifier, password, role string) (*AuthResult, error) {
	if _, err := uc.users.FindByIdentifier(identifier); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:     name,
		Password: string(hash),
		Role:     role,
	}
	if strings.Contains(identifier, "@") {
		user.Email = &identifier
	} else {
		user.Phone = &identifier
	}

	if err := uc.users.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	uc.log.Info("user registered",
		zap.String("user_id", user.ID.String()), zap.String("role", role))

	token, err := uc.signToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Login authenticates an identifier/password pair for the expected role.
func (uc *AuthUsecase) Login(identifier, password, role string) (*AuthResult, error) {
	user, err := uc.users.FindByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user.Role != role {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if err := uc.users.TouchLastActive(user.ID.String()); err != nil {
		uc.log.Warn("failed to update last active", zap.Error(err))
	}

	token, err := uc.signToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (uc *AuthUsecase) signToken(user *model.User) (string, error) {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": email,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(uc.cfg.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(uc.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
