package roster

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shoppay/internal/api"
	"shoppay/internal/middleware"
)

type Handler struct {
	pool      *pgxpool.Pool
	maxUpload int64
}

func NewHandler(pool *pgxpool.Pool, maxUpload int64) *Handler {
	return &Handler{pool: pool, maxUpload: maxUpload}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/shops/{shopID}/roster", func(r chi.Router) {
		r.Post("/summary", h.handleSummary)
		r.Post("/pdf", h.handlePDF)
	})
}

// handleSummary parses an uploaded roster CSV and returns the overview
// without persisting anything.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	_, _, ok := h.requireShop(w, r)
	if !ok {
		return
	}

	employees, dropped, ok := h.parseUpload(w, r)
	if !ok {
		return
	}

	sum := Summarize(employees)
	api.Success(w, map[string]any{
		"summary":     sum,
		"droppedRows": dropped,
	}, reqID)
}

// handlePDF parses an uploaded roster CSV and streams the rendered report.
func (h *Handler) handlePDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	shopID, shopName, ok := h.requireShop(w, r)
	if !ok {
		return
	}

	employees, _, ok := h.parseUpload(w, r)
	if !ok {
		return
	}

	SortByName(employees)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="Staff_Roster_Report.pdf"`)
	if err := WriteRosterPDF(shopName, Summarize(employees), w); err != nil {
		slog.Error("roster pdf failed", "err", err, "shopId", shopID, "requestId", reqID)
	}
}

func (h *Handler) parseUpload(w http.ResponseWriter, r *http.Request) ([]Employee, int, bool) {
	reqID := middleware.GetRequestID(r.Context())
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "could not read uploaded file", reqID)
		return nil, 0, false
	}

	file, header, err := r.FormFile("roster")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "missing_file", fmt.Sprintf("file %q is required", "roster"), reqID)
		return nil, 0, false
	}
	defer file.Close()
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		api.Fail(w, http.StatusBadRequest, "unsupported_file_type", "please upload CSV files only", reqID)
		return nil, 0, false
	}

	employees, dropped, err := Parse(file)
	if err != nil {
		slog.Error("roster parse failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusBadRequest, "parse_failed", "roster file could not be processed", reqID)
		return nil, 0, false
	}
	if len(employees) == 0 {
		api.Fail(w, http.StatusUnprocessableEntity, "empty_result", "file parsed but contained no usable employee data", reqID)
		return nil, 0, false
	}
	return employees, dropped, true
}

func (h *Handler) requireShop(w http.ResponseWriter, r *http.Request) (shopID, shopName string, ok bool) {
	reqID := middleware.GetRequestID(r.Context())
	user, authed := middleware.GetUser(r.Context())
	if !authed {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return "", "", false
	}

	shopID = chi.URLParam(r, "shopID")
	err := h.pool.QueryRow(r.Context(), `
    SELECT name FROM shops WHERE id = $1 AND owner_id = $2
  `, shopID, user.UserID).Scan(&shopName)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "shop not found", reqID)
		return "", "", false
	}
	return shopID, shopName, true
}
