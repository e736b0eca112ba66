// Package mappers converts between domain entities and persistence models.
package mappers

import "time"

func millisToTime(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}
