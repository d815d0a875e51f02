package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrplane/employee-management/internal/employee"
	"github.com/hrplane/employee-management/pkg/logger"
)

var _ = ginkgo.Describe("AuthHandler", func() {
	var (
		handler  *Handler
		service  *Service
		mockRepo *mockEmployeeRepository
		hasher   *PasswordHasher
		tokenGen *JWTTokenGenerator
	)

	ginkgo.BeforeEach(func() {
		hasher = NewPasswordHasher(bcrypt.MinCost, 2)
		mockRepo = newMockEmployeeRepository(hasher)
		tokenGen = NewJWTTokenGenerator("test-secret-key-that-is-long-enough", 30*time.Minute)
		service = NewService(mockRepo, tokenGen, hasher, logger.L())
		handler = NewHandler(service)
	})

	ginkgo.Describe("Login", func() {
		ginkgo.It("exchanges form credentials for a bearer token", func() {
			form := url.Values{}
			form.Set("username", "alice@example.com")
			form.Set("password", "correct_password")

			req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring(`"token_type":"bearer"`))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring(`"user_name":"Alice"`))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring(`"user_type":"user"`))
		})

		ginkgo.It("accepts the same credentials as JSON", func() {
			body := `{"username":"alice@example.com","password":"correct_password"}`
			req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring(`"access_token"`))
		})

		ginkgo.It("answers 401 with a bearer challenge on bad credentials", func() {
			body := `{"username":"alice@example.com","password":"wrong_password"}`
			req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(rec.Header().Get("WWW-Authenticate")).To(gomega.Equal("Bearer"))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("Incorrect email or password"))
		})

		ginkgo.It("answers 400 when a credential field is missing", func() {
			body := `{"username":"alice@example.com"}`
			req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("AuthMiddleware", func() {
		var (
			nextCalled bool
			protected  http.Handler
		)

		ginkgo.BeforeEach(func() {
			nextCalled = false
			protected = handler.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				emp, ok := EmployeeFromContext(r.Context())
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(emp).ToNot(gomega.BeNil())
				w.WriteHeader(http.StatusOK)
			}))
		})

		ginkgo.It("rejects a request without a token", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/leave-requests", nil)
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(rec.Header().Get("WWW-Authenticate")).To(gomega.Equal("Bearer"))
			gomega.Expect(nextCalled).To(gomega.BeFalse())
		})

		ginkgo.It("rejects a malformed bearer token", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/leave-requests", nil)
			req.Header.Set("Authorization", "Bearer garbage")
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(nextCalled).To(gomega.BeFalse())
		})

		ginkgo.It("passes a valid token through with the employee in context", func() {
			token, err := tokenGen.GenerateAccessToken("alice@example.com", employee.RoleUser, "Alice")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/api/leave-requests", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(nextCalled).To(gomega.BeTrue())
		})

		ginkgo.It("rejects a valid token once the employee record is gone", func() {
			token, err := tokenGen.GenerateAccessToken("alice@example.com", employee.RoleUser, "Alice")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			mockRepo.delete("alice@example.com")

			req := httptest.NewRequest(http.MethodGet, "/api/leave-requests", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(nextCalled).To(gomega.BeFalse())
		})
	})

	ginkgo.Describe("RequireSuperuser", func() {
		var protected http.Handler

		ginkgo.BeforeEach(func() {
			protected = handler.AuthMiddleware(handler.RequireSuperuser(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				})))
		})

		ginkgo.It("answers 403 without a bearer challenge for an ordinary employee", func() {
			token, err := tokenGen.GenerateAccessToken("alice@example.com", employee.RoleUser, "Alice")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodPut, "/api/leave-requests/1", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))
			gomega.Expect(rec.Header().Get("WWW-Authenticate")).To(gomega.BeEmpty())
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("Not enough permissions"))
		})

		ginkgo.It("lets a superuser through", func() {
			token, err := tokenGen.GenerateAccessToken("admin@example.com", employee.RoleSuperuser, "Admin")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodPut, "/api/leave-requests/1", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("fails authentication before authorization on an invalid token", func() {
			req := httptest.NewRequest(http.MethodPut, "/api/leave-requests/1", nil)
			req.Header.Set("Authorization", "Bearer garbage")
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(rec.Header().Get("WWW-Authenticate")).To(gomega.Equal("Bearer"))
		})
	})
})
