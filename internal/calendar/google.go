package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/LotusWellness01/spa-scheduler/internal/config"
	booking "github.com/LotusWellness01/spa-scheduler/internal/domain/booking"
)

// GoogleBusySource reads busy intervals from a Google Calendar. It is a
// best-effort overlay: callers must treat a fetch failure as degradation,
// not as "no availability".
type GoogleBusySource struct {
	svc *gcal.Service

	// defaultCalendarID serves studios that never connected a calendar of
	// their own.
	defaultCalendarID string

	// Bounds outbound API volume; availability queries can arrive in bursts
	// when a user flips through calendar months.
	limiter *rate.Limiter
}

// NewGoogleBusySource builds the source from the OAuth2 app credentials and
// a long-lived refresh token. Returns nil (not an error) when the
// integration is not configured, so wiring stays unconditional.
func NewGoogleBusySource(ctx context.Context, cfg *config.Config, calendarID string) (*GoogleBusySource, error) {
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRefreshToken == "" {
		return nil, nil
	}

	if calendarID == "" {
		calendarID = "primary"
	}

	conf := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		Scopes: []string{
			gcal.CalendarReadonlyScope,
		},
		Endpoint: google.Endpoint,
	}

	token := &oauth2.Token{RefreshToken: cfg.GoogleRefreshToken}
	client := conf.Client(ctx, token)

	svc, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	return &GoogleBusySource{
		svc:               svc,
		defaultCalendarID: calendarID,
		limiter:           rate.NewLimiter(rate.Every(time.Second), 5),
	}, nil
}

// FetchBusyIntervals lists the calendar's events in [start, end) and maps
// them to opaque busy ranges. Fetched fresh on every call, never cached.
// calendarID comes from the studio record; empty means the default calendar.
func (s *GoogleBusySource) FetchBusyIntervals(
	ctx context.Context,
	calendarID string,
	start time.Time,
	end time.Time,
) ([]booking.BusyInterval, error) {

	if calendarID == "" {
		calendarID = s.defaultCalendarID
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", booking.ErrCalendarUnavailable, err)
	}

	events, err := s.svc.Events.List(calendarID).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		MaxResults(250).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", booking.ErrCalendarUnavailable, err)
	}

	loc := start.Location()

	var intervals []booking.BusyInterval
	for _, item := range events.Items {
		if item.Status == "cancelled" || item.Transparency == "transparent" {
			continue
		}

		iv, ok := eventInterval(item, loc)
		if !ok {
			continue
		}
		intervals = append(intervals, iv)
	}

	return intervals, nil
}

// eventInterval maps one event to a busy range. Timed events carry RFC3339
// timestamps; all-day events carry bare dates and block the whole local day.
func eventInterval(item *gcal.Event, loc *time.Location) (booking.BusyInterval, bool) {
	if item.Start == nil || item.End == nil {
		return booking.BusyInterval{}, false
	}

	var iv booking.BusyInterval

	if item.Start.DateTime != "" {
		t, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return booking.BusyInterval{}, false
		}
		iv.Start = t
	} else if item.Start.Date != "" {
		t, err := time.ParseInLocation("2006-01-02", item.Start.Date, loc)
		if err != nil {
			return booking.BusyInterval{}, false
		}
		iv.Start = t
	} else {
		return booking.BusyInterval{}, false
	}

	if item.End.DateTime != "" {
		t, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			return booking.BusyInterval{}, false
		}
		iv.End = t
	} else if item.End.Date != "" {
		t, err := time.ParseInLocation("2006-01-02", item.End.Date, loc)
		if err != nil {
			return booking.BusyInterval{}, false
		}
		iv.End = t
	} else {
		return booking.BusyInterval{}, false
	}

	if !iv.End.After(iv.Start) {
		return booking.BusyInterval{}, false
	}

	return iv, true
}

var _ booking.BusySource = (*GoogleBusySource)(nil)
