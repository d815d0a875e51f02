package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hrplane/employee-management/internal/transport"
	"github.com/hrplane/employee-management/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

// Login handles POST /token. It accepts both the OAuth2 password-grant
// form and a JSON body with the same field names.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	dto, err := decodeLoginRequest(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Authenticate(dto)
	if err != nil {
		h.Logger.Warn("authentication failed", "error", err, "username", dto.Username)

		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.WriteAuthError(w, "Incorrect email or password")
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func decodeLoginRequest(r *http.Request) (LoginDTO, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseForm(); err != nil {
			return LoginDTO{}, err
		}
		return LoginDTO{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}, nil
	}

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		return LoginDTO{}, err
	}
	return dto, nil
}

// AuthMiddleware resolves the bearer token to a live employee record and
// stores it in the request context. Resolution re-checks persistence on
// every request; a token is never trusted as proof the employee still
// exists.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.Logger.Warn("auth middleware: missing authorization token", "path", r.URL.Path)
			h.WriteAuthError(w, "Could not validate credentials")
			return
		}

		emp, err := h.Service.ResolveCurrentEmployee(token)
		if err != nil {
			h.Logger.Warn("auth middleware: token resolution failed", "error", err, "path", r.URL.Path)
			h.WriteAuthError(w, "Could not validate credentials")
			return
		}

		ctx := ContextWithEmployee(r.Context(), emp)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSuperuser gates a route on the elevated role. It composes after
// AuthMiddleware, so an invalid token always fails authentication before
// this check can fail authorization.
func (h *Handler) RequireSuperuser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		emp, ok := EmployeeFromContext(r.Context())
		if !ok || emp == nil {
			h.WriteAuthError(w, "Could not validate credentials")
			return
		}

		if !emp.Role.IsSuperuser() {
			h.Logger.Warn("access denied: superuser required",
				"employee_id", emp.ID,
				"role", emp.Role,
				"path", r.URL.Path)
			h.HandleServiceError(w, ErrNotSuperuser)
			return
		}

		next.ServeHTTP(w, r)
	})
}
