package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stafftrack/attendance-backend-go/internal/domain/calendar"
	"github.com/stafftrack/attendance-backend-go/internal/domain/schedule"
)

type CalendarServiceImpl struct {
	entryRepo calendar.CalendarEntryRepository
	resolver  schedule.ScheduleResolver
}

func NewCalendarService(
	entryRepo calendar.CalendarEntryRepository,
	resolver schedule.ScheduleResolver,
) calendar.CalendarService {
	return &CalendarServiceImpl{
		entryRepo: entryRepo,
		resolver:  resolver,
	}
}

// IsWorkingDate implements calendar.CalendarService.
func (s *CalendarServiceImpl) IsWorkingDate(ctx context.Context, date time.Time) (bool, error) {
	entry, err := s.entryRepo.GetByDate(ctx, date)
	if err != nil {
		return false, fmt.Errorf("failed to look up calendar entry: %w", err)
	}

	if entry != nil {
		// Only a short day keeps the date working.
		return entry.EntryType == calendar.EntryTypeShortDay, nil
	}

	weekday := date.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return false, nil
	}

	return true, nil
}

// IsWorkingDateForEmployee implements calendar.CalendarService.
func (s *CalendarServiceImpl) IsWorkingDateForEmployee(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	working, err := s.IsWorkingDate(ctx, date)
	if err != nil {
		return false, err
	}
	if !working {
		return false, nil
	}

	ws, err := s.resolver.Resolve(ctx, employeeID)
	if err != nil {
		return false, err
	}
	if ws == nil {
		// Conservative exclusion: an unschedulable day is not a working day.
		return false, nil
	}

	return ws.IsWorkingDay(date.Weekday()), nil
}

// FindEntry implements calendar.CalendarService.
func (s *CalendarServiceImpl) FindEntry(ctx context.Context, date time.Time) (*calendar.CalendarEntry, error) {
	entry, err := s.entryRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to look up calendar entry: %w", err)
	}
	return entry, nil
}

// CreateEntry implements calendar.CalendarService.
func (s *CalendarServiceImpl) CreateEntry(ctx context.Context, req calendar.CreateEntryRequest) (calendar.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.EntryResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	id, err := uuid.NewV7()
	if err != nil {
		return calendar.EntryResponse{}, fmt.Errorf("failed to generate entry id: %w", err)
	}

	entry := calendar.CalendarEntry{
		ID:          id.String(),
		Date:        date,
		Name:        req.Name,
		Description: req.Description,
		EntryType:   calendar.EntryType(req.EntryType),
		IsRecurring: req.IsRecurring,
	}

	created, err := s.entryRepo.Create(ctx, entry)
	if err != nil {
		return calendar.EntryResponse{}, fmt.Errorf("failed to create calendar entry: %w", err)
	}

	return mapEntryToResponse(created), nil
}

// ListEntries implements calendar.CalendarService.
func (s *CalendarServiceImpl) ListEntries(ctx context.Context) ([]calendar.EntryResponse, error) {
	entries, err := s.entryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar entries: %w", err)
	}

	responses := make([]calendar.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, mapEntryToResponse(entry))
	}

	return responses, nil
}

// DeleteEntry implements calendar.CalendarService.
func (s *CalendarServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	if err := s.entryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete calendar entry: %w", err)
	}
	return nil
}

func mapEntryToResponse(entry calendar.CalendarEntry) calendar.EntryResponse {
	return calendar.EntryResponse{
		ID:          entry.ID,
		Date:        entry.Date.Format("2006-01-02"),
		Name:        entry.Name,
		Description: entry.Description,
		EntryType:   string(entry.EntryType),
		IsRecurring: entry.IsRecurring,
	}
}
