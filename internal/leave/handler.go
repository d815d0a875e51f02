package leave

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/hrplane/employee-management/internal/auth"
	"github.com/hrplane/employee-management/internal/employee"
	"github.com/hrplane/employee-management/internal/transport"
	"github.com/hrplane/employee-management/pkg/logger"
)

type ServiceAPI interface {
	Create(ownerID int64, dto CreateLeaveRequestDTO) (*LeaveRequest, error)
	ListForEmployee(emp *employee.Employee) ([]*LeaveRequest, error)
	UpdateStatus(id int64, dto UpdateLeaveStatusDTO) (*LeaveRequest, error)
}

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

// CreateLeaveRequest attributes the new request to the resolved caller; a
// caller-supplied owner field would be ignored by the DTO shape anyway.
func (h *Handler) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	emp, ok := auth.EmployeeFromContext(r.Context())
	if !ok || emp == nil {
		h.WriteAuthError(w, "Could not validate credentials")
		return
	}

	var dto CreateLeaveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateLeaveRequest: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lr, err := h.Service.Create(emp.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, lr)
}

// ListLeaveRequests returns the role-scoped listing.
func (h *Handler) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	emp, ok := auth.EmployeeFromContext(r.Context())
	if !ok || emp == nil {
		h.WriteAuthError(w, "Could not validate credentials")
		return
	}

	requests, err := h.Service.ListForEmployee(emp)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	if requests == nil {
		requests = []*LeaveRequest{}
	}
	h.WriteJSON(w, http.StatusOK, requests)
}

// UpdateLeaveRequestStatus is reachable only through the superuser guard.
func (h *Handler) UpdateLeaveRequestStatus(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("UpdateLeaveRequestStatus: invalid leave request ID", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid leave request ID")
		return
	}

	var dto UpdateLeaveStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateLeaveRequestStatus: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lr, err := h.Service.UpdateStatus(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, lr)
}
