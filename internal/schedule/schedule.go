package schedule

import (
	"fmt"
	"time"
)

// WeeklySchedule — дни недели, в которые магазин отгружает заказы,
// и единое время отгрузки в течение дня.
type WeeklySchedule struct {
	Weekdays []time.Weekday
	ShipTime string // "15:04"
}

// Slot — ближайшее допустимое окно доставки.
type Slot struct {
	At    time.Time
	Label string
}

// NextSlot возвращает ближайший будущий слот: разрешённый день недели,
// время отгрузки магазина, не раньше чем now+cutoff. Проверка cutoff
// нужна каждому кандидату: при отгрузке сразу после полуночи завтрашний
// день тоже может оказаться ближе буфера. Если в пределах horizonDays
// ничего не нашлось (расписание сконфигурировано криво), fail-safe: тот
// же день недели через 7 дней. Функция всегда возвращает слот.
func NextSlot(s WeeklySchedule, now time.Time, cutoff time.Duration, horizonDays int) Slot {
	hour, minute := parseShipTime(s.ShipTime)

	for day := 0; day <= horizonDays; day++ {
		candidate := time.Date(now.Year(), now.Month(), now.Day()+day, hour, minute, 0, 0, now.Location())

		if !allowed(s.Weekdays, candidate.Weekday()) {
			continue
		}
		if !now.Before(candidate.Add(-cutoff)) {
			continue
		}
		return newSlot(candidate)
	}

	fallback := time.Date(now.Year(), now.Month(), now.Day()+7, hour, minute, 0, 0, now.Location())
	return newSlot(fallback)
}

func newSlot(at time.Time) Slot {
	return Slot{At: at, Label: at.Format("Mon 2 Jan 2006 15:04")}
}

func allowed(weekdays []time.Weekday, d time.Weekday) bool {
	for _, w := range weekdays {
		if w == d {
			return true
		}
	}
	return false
}

// parseShipTime терпим к кривому значению: при ошибке полдень,
// чтобы планирование не падало из-за настроек магазина.
func parseShipTime(v string) (hour, minute int) {
	if _, err := fmt.Sscanf(v, "%d:%d", &hour, &minute); err != nil {
		return 12, 0
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 12, 0
	}
	return hour, minute
}
