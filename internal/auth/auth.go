package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hrplane/employee-management/internal"
	"github.com/hrplane/employee-management/internal/employee"
)

// Claims is the signed payload carried by an access token. The subject is
// the employee's email; role and display name ride along so the login
// response can echo them without a second lookup.
type Claims struct {
	Role employee.Role `json:"user_type"`
	Name string        `json:"user_name"`
	jwt.RegisteredClaims
}

// LoginResponse is the wire shape returned by the token endpoint.
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	UserName    string        `json:"user_name"`
	UserType    employee.Role `json:"user_type"`
}

// TokenGeneratorAPI creates and verifies access tokens.
type TokenGeneratorAPI interface {
	GenerateAccessToken(email string, role employee.Role, name string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// RepositoryAPI is the persistence collaborator the auth service needs:
// credential lookup and identity resolution, both keyed by email.
type RepositoryAPI interface {
	GetByEmail(email string) (*employee.Employee, error)
}

// ServiceAPI is what the HTTP layer sees of the auth service.
type ServiceAPI interface {
	Authenticate(dto LoginDTO) (LoginResponse, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ResolveCurrentEmployee(tokenString string) (*employee.Employee, error)
}

// Authentication failures are deliberately indistinct: a bad signature, an
// expired token, a malformed claim set and a token naming a since-deleted
// employee all surface as the same unauthenticated outcome.
var (
	ErrInvalidCredentials = internal.NewUnauthorizedError("Incorrect email or password", internal.ErrCodeInvalidCredentials)
	ErrInvalidToken       = internal.NewUnauthorizedError("Could not validate credentials", internal.ErrCodeInvalidToken)
	ErrTokenExpired       = internal.NewUnauthorizedError("Token has expired", internal.ErrCodeTokenExpired)
	ErrNotSuperuser       = internal.NewForbiddenError("Not enough permissions", internal.ErrCodeNotSuperuser)
)

type ctxKey string

const contextEmployeeKey ctxKey = "currentEmployee"

func ContextWithEmployee(ctx context.Context, emp *employee.Employee) context.Context {
	return context.WithValue(ctx, contextEmployeeKey, emp)
}

// EmployeeFromContext returns the employee resolved by AuthMiddleware.
func EmployeeFromContext(ctx context.Context) (*employee.Employee, bool) {
	emp, ok := ctx.Value(contextEmployeeKey).(*employee.Employee)
	return emp, ok
}
