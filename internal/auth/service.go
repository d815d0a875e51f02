package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hrplane/employee-management/internal/employee"
)

// Service is the authentication core: credential verification, token
// issuance and per-request identity resolution.
type Service struct {
	repo   RepositoryAPI
	tokens TokenGeneratorAPI
	hasher *PasswordHasher
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, tokens TokenGeneratorAPI, hasher *PasswordHasher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		hasher: hasher,
		logger: logger,
	}
}

// Authenticate verifies credentials and issues an access token. All
// credential failures collapse into ErrInvalidCredentials so the response
// never reveals whether the email exists.
func (s *Service) Authenticate(dto LoginDTO) (LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return LoginResponse{}, err
	}

	emp, err := s.repo.GetByEmail(dto.Username)
	if err != nil {
		return LoginResponse{}, ErrInvalidCredentials
	}

	if err := s.hasher.Compare(emp.PasswordHash, dto.Password); err != nil {
		return LoginResponse{}, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateAccessToken(emp.Email, emp.Role, emp.Name)
	if err != nil {
		s.logger.Error("failed to sign access token", "error", err, "email", emp.Email)
		return LoginResponse{}, err
	}

	return LoginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		UserName:    emp.Name,
		UserType:    emp.Role,
	}, nil
}

// ValidateAccessToken verifies signature and expiry and returns the claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateToken(tokenString)
}

// ResolveCurrentEmployee maps a bearer token to a live employee record. The
// lookup hits persistence on every call: a valid token for a since-deleted
// employee must not resolve.
func (s *Service) ResolveCurrentEmployee(tokenString string) (*employee.Employee, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	email := claims.Subject
	if email == "" {
		return nil, ErrInvalidToken
	}

	emp, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return emp, nil
}

// JWTTokenGenerator signs and verifies HS256 access tokens with a secret
// injected at construction.
type JWTTokenGenerator struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (j *JWTTokenGenerator) GenerateAccessToken(email string, role employee.Role, name string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// ValidateToken rejects anything that is not an intact, unexpired HMAC
// token. Expired tokens get their own error; every other failure mode is
// folded into ErrInvalidToken.
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
