package shop

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"shoppay/internal/api"
	"shoppay/internal/middleware"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/shops", func(r chi.Router) {
		r.Get("/", h.handleListShops)
		r.Post("/", h.handleCreateShop)
		r.Get("/options", h.handleOptions)
		r.Route("/{shopID}", func(r chi.Router) {
			r.Get("/", h.handleGetShop)
			r.Put("/", h.handleUpdateShop)
			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.handleListEmployees)
				r.Post("/", h.handleCreateEmployee)
				r.Put("/{employeeID}", h.handleUpdateEmployee)
				r.Delete("/{employeeID}", h.handleDeleteEmployee)
			})
		})
	})
}

// handleOptions returns the dropdown values the shop and employee forms use.
func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]any{
		"specialties":  Specialties,
		"payrollTypes": PayrollTypes,
		"roles":        Roles,
		"payTypes":     PayTypes,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListShops(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	shops, err := h.Store.ListShops(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "shop_list_failed", "failed to list shops", reqID)
		return
	}
	api.Success(w, shops, reqID)
}

func (h *Handler) handleCreateShop(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	var payload Shop
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "shop name is required", reqID)
		return
	}
	if payload.PayrollType == "" {
		payload.PayrollType = "Bi-weekly"
	}

	id, err := h.Store.CreateShop(r.Context(), user.UserID, payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "shop_create_failed", "failed to create shop", reqID)
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleGetShop(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	sh, err := h.Store.GetShop(r.Context(), user.UserID, chi.URLParam(r, "shopID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "shop not found", reqID)
		return
	}
	api.Success(w, sh, reqID)
}

func (h *Handler) handleUpdateShop(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	shopID := chi.URLParam(r, "shopID")
	if _, err := h.Store.GetShop(r.Context(), user.UserID, shopID); err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "shop not found", reqID)
		return
	}

	var payload Shop
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	if err := h.Store.UpdateShop(r.Context(), user.UserID, shopID, payload); err != nil {
		api.Fail(w, http.StatusInternalServerError, "shop_update_failed", "failed to update shop", reqID)
		return
	}
	api.Success(w, map[string]string{"id": shopID}, reqID)
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	shopID, ok := h.requireShop(w, r)
	if !ok {
		return
	}

	employees, err := h.Store.ListEmployees(r.Context(), shopID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", reqID)
		return
	}
	api.Success(w, employees, reqID)
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	shopID, ok := h.requireShop(w, r)
	if !ok {
		return
	}

	var payload Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "employee name is required", reqID)
		return
	}

	id, err := h.Store.CreateEmployee(r.Context(), shopID, payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", reqID)
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	shopID, ok := h.requireShop(w, r)
	if !ok {
		return
	}

	var payload Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	if err := h.Store.UpdateEmployee(r.Context(), shopID, chi.URLParam(r, "employeeID"), payload); err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to update employee", reqID)
		return
	}
	api.Success(w, map[string]string{"id": chi.URLParam(r, "employeeID")}, reqID)
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	shopID, ok := h.requireShop(w, r)
	if !ok {
		return
	}

	if err := h.Store.DeleteEmployee(r.Context(), shopID, chi.URLParam(r, "employeeID")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_delete_failed", "failed to delete employee", reqID)
		return
	}
	api.Success(w, map[string]string{"id": chi.URLParam(r, "employeeID")}, reqID)
}

func (h *Handler) requireShop(w http.ResponseWriter, r *http.Request) (string, bool) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return "", false
	}

	shopID := chi.URLParam(r, "shopID")
	if _, err := h.Store.GetShop(r.Context(), user.UserID, shopID); err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "shop not found", reqID)
		return "", false
	}
	return shopID, true
}
