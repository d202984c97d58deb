package tower

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/TowLinkDrive/TowLinkDrive/internal/common/auth"
	"github.com/TowLinkDrive/TowLinkDrive/internal/common/config"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

// Service 运营方账号的注册与登录。登录成功签发以 tower id 为 subject 的 JWT。
type Service struct {
	repo     *Repo
	authCfg  config.AuthConfig
	tokenTTL time.Duration
}

func NewService(repo *Repo, authCfg config.AuthConfig) *Service {
	return &Service{
		repo:     repo,
		authCfg:  authCfg,
		tokenTTL: 24 * time.Hour,
	}
}

type RegisterInput struct {
	Username string
	Password string
	Name     string
	Company  string
	Phone    string
	Email    string
	Roles    []string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*Tower, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, fmt.Errorf("username is empty")
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	salt, err := GenerateSaltHex()
	if err != nil {
		return nil, err
	}
	hash, err := HashPassword(in.Password, salt)
	if err != nil {
		return nil, err
	}

	roles := in.Roles
	if len(roles) == 0 {
		roles = []string{"driver"}
	}

	t := &Tower{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		PasswordSalt: salt,
		Name:         strings.TrimSpace(in.Name),
		Company:      strings.TrimSpace(in.Company),
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.TrimSpace(in.Email),
		Roles:        RolesJoin(roles),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

type LoginResult struct {
	Tower     *Tower
	Token     string
	ExpiresAt time.Time
}

func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	t, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !VerifyPassword(password, t.PasswordSalt, t.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := auth.GenerateOperatorToken(s.authCfg, t.ID, t.RolesSlice(), s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResult{Tower: t, Token: token, ExpiresAt: expiresAt}, nil
}
