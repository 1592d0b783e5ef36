package handlers

import (
	"fmt"
	"time"

	"github.com/SscSPs/online_banking_backend/internal/dto"
)

// CivilClock resolves the "date" query parameter on the settlement calendar.
type CivilClock struct {
	loc   *time.Location
	nowFn func() time.Time
}

func NewCivilClock(loc *time.Location) CivilClock {
	if loc == nil {
		loc = time.UTC
	}
	return CivilClock{loc: loc, nowFn: time.Now}
}

// today returns the current date in the settlement zone, or the given date at
// local midnight when raw is set.
func (cc CivilClock) today(raw string) (time.Time, error) {
	if raw == "" {
		return cc.nowFn().In(cc.loc), nil
	}
	d, err := time.ParseInLocation(dto.DateLayout, raw, cc.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be formatted as %s", dto.DateLayout)
	}
	return d, nil
}
