package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/report"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MyReport(w http.ResponseWriter, r *http.Request)
	EmployeeReport(w http.ResponseWriter, r *http.Request)
	DepartmentReport(w http.ResponseWriter, r *http.Request)
	CompanyReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// MyReport returns the authenticated employee's own report.
func (h *reportHandlerImpl) MyReport(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		response.Unauthorized(w, "Invalid token")
		return
	}

	req := report.EmployeeReportRequest{
		EmployeeID: employeeID,
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	result, err := h.reportService.BuildEmployeeReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeReport implements ReportHandler.
func (h *reportHandlerImpl) EmployeeReport(w http.ResponseWriter, r *http.Request) {
	req := report.EmployeeReportRequest{
		EmployeeID: chi.URLParam(r, "id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	result, err := h.reportService.BuildEmployeeReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DepartmentReport implements ReportHandler.
func (h *reportHandlerImpl) DepartmentReport(w http.ResponseWriter, r *http.Request) {
	req := report.DepartmentReportRequest{
		DepartmentID: chi.URLParam(r, "id"),
		StartDate:    r.URL.Query().Get("start_date"),
		EndDate:      r.URL.Query().Get("end_date"),
	}

	result, err := h.reportService.BuildDepartmentReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CompanyReport implements ReportHandler.
func (h *reportHandlerImpl) CompanyReport(w http.ResponseWriter, r *http.Request) {
	req := report.CompanyReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.reportService.BuildCompanyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
