// Package biztime centralizes time handling for business logic.
// All timestamps that cross a persistence or token boundary are UTC.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}
