package domain

import "time"

// DateOnly truncates a timestamp to its UTC calendar date. All stay
// boundaries are stored this way so overlap math never depends on the
// caller's time zone.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NightsBetween expands the half-open [arrival, departure) interval to
// one entry per night.
func NightsBetween(arrival, departure time.Time) []time.Time {
	arrival = DateOnly(arrival)
	departure = DateOnly(departure)

	var nights []time.Time
	for night := arrival; night.Before(departure); night = night.AddDate(0, 0, 1) {
		nights = append(nights, night)
	}
	return nights
}
