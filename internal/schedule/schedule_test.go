package schedule_test

import (
	"testing"
	"time"

	"github.com/15augustjon-tech/tapshop-delivery/internal/schedule"
	"github.com/stretchr/testify/assert"
)

const (
	cutoff  = 3 * time.Hour
	horizon = 14
)

// 31 августа 2026 — понедельник.
func monday(hour, minute int) time.Time {
	return time.Date(2026, time.August, 31, hour, minute, 0, 0, time.UTC)
}

func TestNextSlot(t *testing.T) {
	monWedFri := schedule.WeeklySchedule{
		Weekdays: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		ShipTime: "14:00",
	}

	testCases := []struct {
		name string
		s    schedule.WeeklySchedule
		now  time.Time
		want time.Time
	}{
		{
			name: "same day when cutoff satisfied",
			s:    monWedFri,
			now:  monday(10, 0),
			want: monday(14, 0),
		},
		{
			name: "next allowed day when cutoff violated",
			s:    monWedFri,
			now:  monday(12, 30),
			want: monday(14, 0).AddDate(0, 0, 2), // Wednesday
		},
		{
			name: "cutoff boundary is exclusive",
			s:    monWedFri,
			now:  monday(11, 0),
			want: monday(14, 0).AddDate(0, 0, 2),
		},
		{
			name: "ship time shortly after midnight keeps the cutoff",
			s: schedule.WeeklySchedule{
				Weekdays: []time.Weekday{
					time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
					time.Friday, time.Saturday, time.Sunday,
				},
				ShipTime: "01:00",
			},
			// Завтрашний кандидат в 01:00 всего в полутора часах — ближе
			// cutoff, берём послезавтра.
			now:  monday(23, 30),
			want: monday(1, 0).AddDate(0, 0, 2),
		},
		{
			name: "skips to next week when week is exhausted",
			s: schedule.WeeklySchedule{
				Weekdays: []time.Weekday{time.Monday},
				ShipTime: "14:00",
			},
			now:  monday(13, 0),
			want: monday(14, 0).AddDate(0, 0, 7),
		},
		{
			name: "unparseable ship time defaults to noon",
			s: schedule.WeeklySchedule{
				Weekdays: []time.Weekday{time.Wednesday},
				ShipTime: "garbage",
			},
			now:  monday(9, 0),
			want: monday(12, 0).AddDate(0, 0, 2),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			slot := schedule.NextSlot(tc.s, tc.now, cutoff, horizon)
			assert.Equal(t, tc.want, slot.At)
			assert.Equal(t, tc.want.Format("Mon 2 Jan 2006 15:04"), slot.Label)
		})
	}
}

func TestNextSlot_Fallback(t *testing.T) {
	// Пустое расписание не должно встречаться, но функция обязана
	// завершиться слотом: тот же день недели через неделю.
	s := schedule.WeeklySchedule{ShipTime: "14:00"}
	slot := schedule.NextSlot(s, monday(10, 0), cutoff, horizon)
	assert.Equal(t, monday(14, 0).AddDate(0, 0, 7), slot.At)
}

func TestNextSlot_Properties(t *testing.T) {
	schedules := [][]time.Weekday{
		{time.Sunday},
		{time.Monday, time.Thursday},
		{time.Tuesday, time.Wednesday, time.Saturday},
		{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday},
	}

	// "01:00" оставлено намеренно: для отгрузки сразу после полуночи
	// слишком близким может оказаться и завтрашний кандидат.
	shipTimes := []struct {
		v      string
		hour   int
		minute int
	}{
		{"01:00", 1, 0},
		{"11:30", 11, 30},
		{"23:45", 23, 45},
	}

	for _, weekdays := range schedules {
		for _, ship := range shipTimes {
			s := schedule.WeeklySchedule{Weekdays: weekdays, ShipTime: ship.v}
			for hour := 0; hour < 24; hour++ {
				now := monday(hour, 17)
				slot := schedule.NextSlot(s, now, cutoff, horizon)

				assert.True(t, now.Before(slot.At), "slot must be in the future")
				assert.GreaterOrEqual(t, slot.At.Sub(now), cutoff,
					"slot must leave at least the cutoff buffer (weekdays=%v ship=%s now=%v)", weekdays, ship.v, now)
				assert.Contains(t, weekdays, slot.At.Weekday())
				assert.Equal(t, ship.hour, slot.At.Hour())
				assert.Equal(t, ship.minute, slot.At.Minute())
			}
		}
	}
}
