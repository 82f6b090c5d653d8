package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/accounts_movements_service/internal/apperrors"
	"github.com/SscSPs/accounts_movements_service/internal/middleware"
)

const dateLayout = "2006-01-02"

// ValidateDateRange checks a report window against today's date.
//
// It fails with apperrors.ErrInvalidRange when start is after end or in the
// future. A start older than one year is accepted but logged.
func ValidateDateRange(ctx context.Context, start, end, today time.Time) error {
	start, end, today = truncateDay(start), truncateDay(end), truncateDay(today)

	if start.After(end) {
		return fmt.Errorf("%w: start date cannot be after end date", apperrors.ErrInvalidRange)
	}
	if start.After(today) {
		return fmt.Errorf("%w: start date cannot be in the future", apperrors.ErrInvalidRange)
	}
	if start.Before(today.AddDate(-1, 0, 0)) {
		middleware.GetLoggerFromCtx(ctx).Warn("Report start date is more than one year in the past",
			slog.String("start_date", start.Format(dateLayout)),
			slog.String("today", today.Format(dateLayout)))
	}
	return nil
}

// DayBounds returns the first instant of start's day and the last instant of end's day.
func DayBounds(start, end time.Time) (time.Time, time.Time) {
	from := truncateDay(start)
	to := truncateDay(end).Add(24*time.Hour - time.Nanosecond)
	return from, to
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
