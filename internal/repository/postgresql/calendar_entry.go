package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/calendar"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type calendarEntryRepositoryImpl struct {
	db *database.DB
}

func NewCalendarEntryRepository(db *database.DB) calendar.CalendarEntryRepository {
	return &calendarEntryRepositoryImpl{db: db}
}

const calendarEntryColumns = `
	id, date, name, description, entry_type, is_recurring, created_at, updated_at
`

func scanCalendarEntry(row pgx.Row) (calendar.CalendarEntry, error) {
	var entry calendar.CalendarEntry
	err := row.Scan(
		&entry.ID, &entry.Date, &entry.Name, &entry.Description,
		&entry.EntryType, &entry.IsRecurring, &entry.CreatedAt, &entry.UpdatedAt,
	)
	return entry, err
}

// GetByDate implements calendar.CalendarEntryRepository. An exact match
// outranks a recurring one on the same day and month.
func (c *calendarEntryRepositoryImpl) GetByDate(ctx context.Context, date time.Time) (*calendar.CalendarEntry, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT ` + calendarEntryColumns + `
		FROM calendar_entries
		WHERE date = $1
		   OR (is_recurring AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(DAY FROM date) = $3)
		ORDER BY is_recurring, id
		LIMIT 1
	`

	entry, err := scanCalendarEntry(q.QueryRow(ctx, query,
		date.Format("2006-01-02"), int(date.Month()), date.Day(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get calendar entry for %s: %w", date.Format("2006-01-02"), err)
	}

	return &entry, nil
}

// GetByID implements calendar.CalendarEntryRepository.
func (c *calendarEntryRepositoryImpl) GetByID(ctx context.Context, id string) (calendar.CalendarEntry, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT ` + calendarEntryColumns + `
		FROM calendar_entries
		WHERE id = $1
	`

	entry, err := scanCalendarEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.CalendarEntry{}, calendar.ErrCalendarEntryNotFound
		}
		return calendar.CalendarEntry{}, fmt.Errorf("failed to get calendar entry with id %s: %w", id, err)
	}

	return entry, nil
}

// List implements calendar.CalendarEntryRepository.
func (c *calendarEntryRepositoryImpl) List(ctx context.Context) ([]calendar.CalendarEntry, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT ` + calendarEntryColumns + `
		FROM calendar_entries
		ORDER BY date, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []calendar.CalendarEntry
	for rows.Next() {
		entry, err := scanCalendarEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Create implements calendar.CalendarEntryRepository.
func (c *calendarEntryRepositoryImpl) Create(ctx context.Context, entry calendar.CalendarEntry) (calendar.CalendarEntry, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO calendar_entries (id, date, name, description, entry_type, is_recurring)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + calendarEntryColumns + `
	`

	created, err := scanCalendarEntry(q.QueryRow(ctx, query,
		entry.ID, entry.Date, entry.Name, entry.Description,
		entry.EntryType, entry.IsRecurring,
	))
	if err != nil {
		return calendar.CalendarEntry{}, fmt.Errorf("failed to create calendar entry: %w", err)
	}

	return created, nil
}

// Delete implements calendar.CalendarEntryRepository.
func (c *calendarEntryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `DELETE FROM calendar_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete calendar entry with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrCalendarEntryNotFound
	}

	return nil
}
