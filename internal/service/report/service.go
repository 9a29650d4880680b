package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/calendar"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/master/department"
	"github.com/stafftrack/attendance-backend-go/internal/domain/report"
	"github.com/stafftrack/attendance-backend-go/internal/domain/schedule"
	attendanceService "github.com/stafftrack/attendance-backend-go/internal/service/attendance"
	"golang.org/x/sync/errgroup"
)

// fanOutLimit caps concurrent per-employee sub-reports in department and
// company builds. Days inside one employee stay strictly sequential.
const fanOutLimit = 8

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	attendanceRepo attendance.AttendanceRepository
	resolver       schedule.ScheduleResolver
	calendarSvc    calendar.CalendarService
	now            func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	attendanceRepo attendance.AttendanceRepository,
	resolver schedule.ScheduleResolver,
	calendarSvc calendar.CalendarService,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		attendanceRepo: attendanceRepo,
		resolver:       resolver,
		calendarSvc:    calendarSvc,
		now:            time.Now,
	}
}

// BuildEmployeeReport implements report.ReportService.
func (s *ReportServiceImpl) BuildEmployeeReport(ctx context.Context, req report.EmployeeReportRequest) (report.Report, error) {
	if err := req.Validate(); err != nil {
		return report.Report{}, err
	}
	start, end := report.ParseRange(req.StartDate, req.EndDate)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return report.Report{}, employee.ErrEmployeeNotFound
		}
		return report.Report{}, fmt.Errorf("failed to load employee: %w", err)
	}

	items, err := s.buildForEmployee(ctx, emp, start, end)
	if err != nil {
		return report.Report{}, err
	}

	return s.assemble(req.StartDate, req.EndDate, items), nil
}

// BuildDepartmentReport implements report.ReportService.
func (s *ReportServiceImpl) BuildDepartmentReport(ctx context.Context, req report.DepartmentReportRequest) (report.Report, error) {
	if err := req.Validate(); err != nil {
		return report.Report{}, err
	}
	start, end := report.ParseRange(req.StartDate, req.EndDate)

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return report.Report{}, department.ErrDepartmentNotFound
		}
		return report.Report{}, fmt.Errorf("failed to load department: %w", err)
	}

	employees, err := s.employeeRepo.ListByDepartmentID(ctx, req.DepartmentID)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to list department employees: %w", err)
	}

	items, err := s.fanOut(ctx, employees, start, end)
	if err != nil {
		return report.Report{}, err
	}

	return s.assemble(req.StartDate, req.EndDate, items), nil
}

// BuildCompanyReport implements report.ReportService.
func (s *ReportServiceImpl) BuildCompanyReport(ctx context.Context, req report.CompanyReportRequest) (report.Report, error) {
	if err := req.Validate(); err != nil {
		return report.Report{}, err
	}
	start, end := report.ParseRange(req.StartDate, req.EndDate)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to list employees: %w", err)
	}

	items, err := s.fanOut(ctx, employees, start, end)
	if err != nil {
		return report.Report{}, err
	}

	return s.assemble(req.StartDate, req.EndDate, items), nil
}

// fanOut builds per-employee sub-reports concurrently. No state is
// shared between employees; each carries its own leave budget.
func (s *ReportServiceImpl) fanOut(ctx context.Context, employees []employee.Employee, start, end time.Time) ([]report.Item, error) {
	results := make([][]report.Item, len(employees))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)

	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			items, err := s.buildForEmployee(ctx, emp, start, end)
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var items []report.Item
	for _, sub := range results {
		items = append(items, sub...)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		return items[i].EmployeeName < items[j].EmployeeName
	})

	return items, nil
}

// buildForEmployee emits one item per calendar day, strictly in order.
// The leave budget carries state from the 1st of the month, so iteration
// replays the days before the requested start without emitting them.
func (s *ReportServiceImpl) buildForEmployee(ctx context.Context, emp employee.Employee, start, end time.Time) ([]report.Item, error) {
	sched, err := s.resolver.Resolve(ctx, emp.ID)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())

	records, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, emp.ID, monthStart, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	byDate := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		byDate[rec.Date.Format("2006-01-02")] = rec
	}

	today := dayOf(s.now().UTC())
	budget := NewLeaveBudget(emp.LeaveDaysPerMonth)

	var items []report.Item
	for cursor := monthStart; !cursor.After(end); cursor = cursor.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item, err := s.classifyDay(ctx, emp, sched, cursor, byDate, budget, today)
		if err != nil {
			return nil, err
		}

		if !cursor.Before(start) {
			items = append(items, item)
		}
	}

	return items, nil
}

// classifyDay resolves one employee-day. With a record the classifier
// decides; without one the precedence is holiday, non-working day,
// future scheduled day, then the leave-or-absent fold.
func (s *ReportServiceImpl) classifyDay(
	ctx context.Context,
	emp employee.Employee,
	sched *schedule.WorkSchedule,
	date time.Time,
	byDate map[string]attendance.Record,
	budget *LeaveBudget,
	today time.Time,
) (report.Item, error) {
	item := report.Item{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		Date:         date.Format("2006-01-02"),
		Weekday:      date.Weekday().String(),
	}

	if rec, ok := byDate[item.Date]; ok {
		c := attendanceService.Classify(rec, sched, date)
		item.Status = c.Status
		if rec.CheckIn != nil {
			v := rec.CheckIn.Format("15:04")
			item.CheckInTime = &v
		}
		if rec.CheckOut != nil {
			v := rec.CheckOut.Format("15:04")
			item.CheckOutTime = &v
		}
		if c.WorkMinutes != nil {
			hours := float64(*c.WorkMinutes) / 60.0
			item.WorkingHours = &hours
		}
		switch c.Arrival.Kind {
		case attendanceService.ArrivalLate:
			mins := c.Arrival.Minutes
			item.LateMinutes = &mins
		case attendanceService.ArrivalEarly:
			mins := c.Arrival.Minutes
			item.EarlyArrivalMinutes = &mins
		}
		switch c.Departure.Kind {
		case attendanceService.DepartureEarly:
			mins := c.Departure.Minutes
			item.EarlyDepartureMinutes = &mins
		case attendanceService.DepartureOvertime:
			mins := c.Departure.Minutes
			item.OvertimeMinutes = &mins
		}
		return item, nil
	}

	entry, err := s.calendarSvc.FindEntry(ctx, date)
	if err != nil {
		return report.Item{}, err
	}

	if entry != nil {
		switch entry.EntryType {
		case calendar.EntryTypeHoliday:
			item.Status = attendance.StatusHoliday
			item.IsHoliday = true
			name := entry.Name
			item.HolidayName = &name
			return item, nil
		case calendar.EntryTypeNonWorkingDay:
			item.Status = attendance.StatusDayOff
			item.IsNonWorking = true
			return item, nil
		}
		// A short day stays a working day.
	} else if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		item.Status = attendance.StatusDayOff
		item.IsNonWorking = true
		return item, nil
	}

	// No resolvable schedule, or a weekday the schedule marks off:
	// excluded from working-day computations.
	if sched == nil || !sched.IsWorkingDay(date.Weekday()) {
		item.Status = attendance.StatusDayOff
		item.IsNonWorking = true
		return item, nil
	}

	if date.After(today) {
		item.Status = attendance.StatusScheduled
		return item, nil
	}

	item.Status = budget.Advance(date)
	return item, nil
}

func (s *ReportServiceImpl) assemble(startStr, endStr string, items []report.Item) report.Report {
	return report.Report{
		StartDate:   startStr,
		EndDate:     endStr,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
		Items:       items,
		Statistics:  ComputeStatistics(items),
	}
}

// ComputeStatistics aggregates a report's items into counters and rates.
func ComputeStatistics(items []report.Item) report.Statistics {
	var stats report.Statistics
	stats.TotalDays = len(items)

	attended := 0
	for _, item := range items {
		switch item.Status {
		case attendance.StatusPresent, attendance.StatusEarlyArrival:
			stats.PresentDays++
			attended++
		case attendance.StatusLateArrival, attendance.StatusLateAndLeftEarly:
			stats.LateDays++
			attended++
		case attendance.StatusEarlyDeparture:
			stats.EarlyLeaveDays++
			attended++
		case attendance.StatusOvertime:
			stats.OvertimeDays++
			attended++
		case attendance.StatusHalfDay:
			stats.HalfDays++
			attended++
		case attendance.StatusIncomplete:
			stats.IncompleteDays++
			attended++
		case attendance.StatusAbsent:
			stats.AbsentDays++
		case attendance.StatusLeave:
			stats.LeaveDays++
		case attendance.StatusHoliday:
			stats.HolidayDays++
		case attendance.StatusDayOff:
			stats.NonWorkingDays++
		case attendance.StatusScheduled:
			stats.ScheduledDays++
		}
	}

	stats.WorkingDays = stats.TotalDays - stats.HolidayDays - stats.NonWorkingDays - stats.ScheduledDays

	if stats.WorkingDays > 0 {
		stats.AttendanceRate = float64(attended) / float64(stats.WorkingDays) * 100
		stats.AbsenceRate = float64(stats.AbsentDays) / float64(stats.WorkingDays) * 100
	}

	return stats
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
