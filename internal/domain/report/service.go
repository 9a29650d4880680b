package report

import "context"

// ReportService assembles classified attendance reports.
type ReportService interface {
	// BuildEmployeeReport builds one item per calendar day inclusive,
	// pre-hire days included.
	BuildEmployeeReport(ctx context.Context, req EmployeeReportRequest) (Report, error)

	// BuildDepartmentReport fans out over the department's employees
	BuildDepartmentReport(ctx context.Context, req DepartmentReportRequest) (Report, error)

	// BuildCompanyReport fans out over every employee
	BuildCompanyReport(ctx context.Context, req CompanyReportRequest) (Report, error)
}
