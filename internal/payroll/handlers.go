package payroll

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"shoppay/internal/api"
	"shoppay/internal/metrics"
	"shoppay/internal/middleware"
)

type Handler struct {
	store       *Store
	collector   *metrics.Collector
	holidayRate float64
	maxUpload   int64
}

func NewHandler(store *Store, collector *metrics.Collector, holidayRate float64, maxUpload int64) *Handler {
	return &Handler{store: store, collector: collector, holidayRate: holidayRate, maxUpload: maxUpload}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/shops/{shopID}/payroll", func(r chi.Router) {
		r.Post("/process", h.handleProcess)
		r.Post("/submissions", h.handleSubmitFile)
		r.Get("/submissions", h.handleListSubmissions)
		r.Get("/submissions/{submissionID}", h.handleGetSubmission)
		r.Get("/submissions/{submissionID}/reports/{reportIndex}/pdf", h.handleReportPDF)
		r.Put("/rates", h.handleSaveRates)
		r.Get("/rates", h.handleListRates)
	})
}

// handleProcess runs the multi-file report pipeline: week 1 files are
// required, week 2 files are optional (the two-week variant simply zeroes
// the missing week). Rate resolution is table-gated; employees without a
// configured rate are skipped and reported as such.
func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	shopID, shopName, ok := h.requireShop(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "could not read uploaded files", reqID)
		return
	}

	week1Clocked, ok := h.openCSV(w, r, "week1Hours", true)
	if !ok {
		return
	}
	defer week1Clocked.Close()
	week1Billed, ok := h.openCSV(w, r, "week1Billed", true)
	if !ok {
		return
	}
	defer week1Billed.Close()

	inputs := Inputs{Week1Clocked: week1Clocked, Week1Billed: week1Billed}
	if f, ok := h.openCSV(w, r, "week2Hours", false); !ok {
		return
	} else if f != nil {
		defer f.Close()
		inputs.Week2Clocked = f
	}
	if f, ok := h.openCSV(w, r, "week2Billed", false); !ok {
		return
	} else if f != nil {
		defer f.Close()
		inputs.Week2Billed = f
	}

	rates, err := h.rateTableForShop(r, shopID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "rates_load_failed", "failed to load rate configuration", reqID)
		return
	}

	result, err := Process(r.Context(), inputs, rates, Options{HolidayRate: h.holidayRate})
	if h.collector != nil {
		h.collector.RecordBatch(len(result.Reports), result.DroppedRows)
	}
	if errors.Is(err, ErrEmptyResult) {
		api.Fail(w, http.StatusUnprocessableEntity, "empty_result", "files parsed but contained no usable employee data", reqID)
		return
	}
	if err != nil {
		slog.Error("payroll processing failed", "err", err, "shopId", shopID, "requestId", reqID)
		api.Fail(w, http.StatusBadRequest, "parse_failed", "payroll files could not be processed", reqID)
		return
	}

	submission := Submission{
		ShopID:         shopID,
		PayPeriodStart: r.FormValue("payPeriodStart"),
		PayPeriodEnd:   r.FormValue("payPeriodEnd"),
		Status:         SubmissionStatusProcessed,
		EmployeeCount:  len(result.Reports),
		TotalAmount:    sumGross(result.Reports),
		Reports:        result.Reports,
	}
	submissionID, err := h.store.SaveSubmission(r.Context(), submission)
	if err != nil {
		slog.Error("submission save failed", "err", err, "shopId", shopID, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "submission_save_failed", "reports were generated but could not be stored", reqID)
		return
	}

	api.Success(w, map[string]any{
		"submissionId": submissionID,
		"shopName":     shopName,
		"reports":      result.Reports,
		"skipped":      result.Skipped,
		"droppedRows":  result.DroppedRows,
	}, reqID)
}

// handleSubmitFile is the single-file submission mode with the fixed
// default-rate policy for unconfigured employees.
func (h *Handler) handleSubmitFile(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	shopID, shopName, ok := h.requireShop(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "could not read uploaded file", reqID)
		return
	}

	file, ok := h.openCSV(w, r, "payroll", true)
	if !ok {
		return
	}
	defer file.Close()

	rows, dropped, err := ParseSubmission(file)
	if err != nil {
		slog.Error("submission parse failed", "err", err, "shopId", shopID, "requestId", reqID)
		api.Fail(w, http.StatusBadRequest, "parse_failed", "payroll file could not be processed", reqID)
		return
	}
	if len(rows) == 0 {
		api.Fail(w, http.StatusUnprocessableEntity, "empty_result", "file parsed but contained no usable employee data", reqID)
		return
	}

	rates, err := h.rateTableForShop(r, shopID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "rates_load_failed", "failed to load rate configuration", reqID)
		return
	}

	reports := BuildSubmissionReports(rows, rates)
	if h.collector != nil {
		h.collector.RecordBatch(len(reports), dropped)
	}

	submission := Submission{
		ShopID:         shopID,
		PayPeriodStart: r.FormValue("payPeriodStart"),
		PayPeriodEnd:   r.FormValue("payPeriodEnd"),
		Status:         SubmissionStatusSubmitted,
		EmployeeCount:  len(reports),
		TotalAmount:    sumGross(reports),
		Reports:        reports,
	}
	submissionID, err := h.store.SaveSubmission(r.Context(), submission)
	if err != nil {
		slog.Error("submission save failed", "err", err, "shopId", shopID, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "submission_save_failed", "reports were generated but could not be stored", reqID)
		return
	}

	api.Success(w, map[string]any{
		"submissionId": submissionID,
		"shopName":     shopName,
		"reports":      reports,
		"droppedRows":  dropped,
	}, reqID)
}

func (h *Handler) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	shopID, _, ok := h.requireShop(w, r)
	if !ok {
		return
	}

	subs, err := h.store.ListSubmissions(r.Context(), shopID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "submission_list_failed", "failed to list submissions", reqID)
		return
	}
	api.Success(w, subs, reqID)
}

func (h *Handler) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	shopID, _, ok := h.requireShop(w, r)
	if !ok {
		return
	}

	sub, err := h.store.GetSubmission(r.Context(), shopID, chi.URLParam(r, "submissionID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "submission not found", reqID)
		return
	}
	api.Success(w, sub, reqID)
}

func (h *Handler) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	shopID, shopName, ok := h.requireShop(w, r)
	if !ok {
		return
	}

	sub, err := h.store.GetSubmission(r.Context(), shopID, chi.URLParam(r, "submissionID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "submission not found", reqID)
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "reportIndex"))
	if err != nil || index < 0 || index >= len(sub.Reports) {
		api.Fail(w, http.StatusNotFound, "not_found", "report not found", reqID)
		return
	}

	report := sub.Reports[index]
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ReportFileName(report.Name)))
	if err := WriteReportPDF(report, shopName, w); err != nil {
		slog.Error("report pdf failed", "err", err, "shopId", shopID, "requestId", reqID)
		return
	}
	if h.collector != nil {
		h.collector.RecordPDF()
	}
}

func (h *Handler) handleSaveRates(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	shopID, _, ok := h.requireShop(w, r)
	if !ok {
		return
	}

	var configs []RateConfig
	if err := json.NewDecoder(r.Body).Decode(&configs); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	if err := h.store.SaveRateConfigs(r.Context(), shopID, configs); err != nil {
		api.Fail(w, http.StatusInternalServerError, "rates_save_failed", "failed to save rate configuration", reqID)
		return
	}
	api.Success(w, map[string]int{"saved": len(configs)}, reqID)
}

func (h *Handler) handleListRates(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	shopID, _, ok := h.requireShop(w, r)
	if !ok {
		return
	}

	configs, err := h.store.ListRateConfigs(r.Context(), shopID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "rates_list_failed", "failed to list rate configuration", reqID)
		return
	}
	api.Success(w, configs, reqID)
}

// requireShop authenticates the caller and checks shop ownership.
func (h *Handler) requireShop(w http.ResponseWriter, r *http.Request) (shopID, shopName string, ok bool) {
	reqID := middleware.GetRequestID(r.Context())
	user, authed := middleware.GetUser(r.Context())
	if !authed {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return "", "", false
	}

	shopID = chi.URLParam(r, "shopID")
	err := h.store.DB.QueryRow(r.Context(), `
    SELECT name FROM shops WHERE id = $1 AND owner_id = $2
  `, shopID, user.UserID).Scan(&shopName)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "shop not found", reqID)
		return "", "", false
	}
	return shopID, shopName, true
}

// rateTableForShop loads the confirmed rate table; when none has been
// saved yet it derives one from the shop's employee records.
func (h *Handler) rateTableForShop(r *http.Request, shopID string) (RateTable, error) {
	configs, err := h.store.ListRateConfigs(r.Context(), shopID)
	if err != nil {
		return nil, err
	}
	if len(configs) > 0 {
		return NewRateTable(configs), nil
	}

	rows, err := h.store.DB.Query(r.Context(), `
    SELECT name, role, pay_type, hourly_rate, salary_amount, commission_rate
    FROM shop_employees
    WHERE shop_id = $1
  `, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rc RateConfig
		if err := rows.Scan(&rc.Name, &rc.Role, &rc.PayType, &rc.HourlyRate, &rc.SalaryAmount, &rc.CommissionRate); err != nil {
			return nil, err
		}
		rc.IncentiveRate = DefaultIncentiveRate
		configs = append(configs, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return NewRateTable(configs), nil
}

// openCSV fetches one uploaded file and rejects anything that is not a
// .csv before parsing starts.
func (h *Handler) openCSV(w http.ResponseWriter, r *http.Request, field string, required bool) (multipart.File, bool) {
	reqID := middleware.GetRequestID(r.Context())
	file, header, err := r.FormFile(field)
	if err != nil {
		if !required {
			return nil, true
		}
		api.Fail(w, http.StatusBadRequest, "missing_file", fmt.Sprintf("file %q is required", field), reqID)
		return nil, false
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		_ = file.Close()
		api.Fail(w, http.StatusBadRequest, "unsupported_file_type", "please upload CSV files only", reqID)
		return nil, false
	}
	return file, true
}

func sumGross(reports []EmployeeReport) float64 {
	total := 0.0
	for _, rep := range reports {
		total += rep.TotalGross
	}
	return total
}
