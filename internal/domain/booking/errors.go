package booking

import "errors"

// ErrSourceUnavailable marks a failed schedule or reservation fetch. It is
// distinct from an empty result: the caller should offer a retry instead of
// showing "fully booked".
var ErrSourceUnavailable = errors.New("availability source unavailable")

// ErrCalendarUnavailable marks a failed external-calendar fetch. The
// resolver downgrades it to a degraded result rather than failing the query.
var ErrCalendarUnavailable = errors.New("external calendar unavailable")
