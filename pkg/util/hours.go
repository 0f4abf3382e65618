package util

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vitrineweb/vitrine-backend/internal/app/model"
)

// Weekday display names, canonical Sunday-first order.
var dayNames = [7]string{
	"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado",
}

// DaySchedule is one display-ready weekly schedule row.
type DaySchedule struct {
	Day      string            `json:"day"`
	DayIndex int               `json:"day_index"`
	Ranges   []model.TimeRange `json:"ranges"`
}

// BusinessStatus holds the "open now?" answer plus its display message.
type BusinessStatus struct {
	IsOpen  bool   `json:"is_open"`
	Message string `json:"message"`
}

// GetBusinessStatus evaluates the opening hours at the given instant.
func GetBusinessStatus(hours []model.OpeningHours, now time.Time) BusinessStatus {
	if IsOpenNow(hours, now) {
		return BusinessStatus{IsOpen: true, Message: "Aberto agora"}
	}
	return BusinessStatus{IsOpen: false, Message: "Fechado agora"}
}

// IsOpenNow reports whether any of today's ranges contains now. Membership is
// half-open [open, close): the opening minute counts as open, the closing
// minute as closed. Ranges need not be sorted or disjoint; malformed clock
// strings make their range unmatchable rather than failing.
func IsOpenNow(hours []model.OpeningHours, now time.Time) bool {
	var today []model.TimeRange
	for _, day := range hours {
		if day.Day == int(now.Weekday()) {
			today = day.Ranges
			break
		}
	}
	if len(today) == 0 {
		return false
	}

	minute := now.Hour()*60 + now.Minute()
	for _, r := range today {
		open, okOpen := clockToMinutes(r.Open)
		close, okClose := clockToMinutes(r.Close)
		if !okOpen || !okClose {
			continue
		}
		if minute >= open && minute < close {
			return true
		}
	}
	return false
}

// FormattedSchedule returns all seven days in display order Monday..Saturday
// then Sunday, each day's ranges sorted ascending by opening time.
func FormattedSchedule(hours []model.OpeningHours) []DaySchedule {
	schedule := make([]DaySchedule, 7)
	for index := 0; index < 7; index++ {
		var ranges []model.TimeRange
		for _, day := range hours {
			if day.Day == index {
				ranges = append([]model.TimeRange{}, day.Ranges...)
				break
			}
		}
		if ranges == nil {
			ranges = []model.TimeRange{}
		}
		sortRanges(ranges)
		schedule[index] = DaySchedule{Day: dayNames[index], DayIndex: index, Ranges: ranges}
	}

	// Rotate Sunday to the end.
	ordered := make([]DaySchedule, 0, 7)
	ordered = append(ordered, schedule[1:]...)
	ordered = append(ordered, schedule[0])
	return ordered
}

// sortRanges orders ranges by the numeric value of the colon-stripped open
// time ("09:00" → 900). Malformed values fall back to comparing the stripped
// literal, best effort.
func sortRanges(ranges []model.TimeRange) {
	sort.SliceStable(ranges, func(i, j int) bool {
		a := strings.Replace(ranges[i].Open, ":", "", 1)
		b := strings.Replace(ranges[j].Open, ":", "", 1)
		na, errA := strconv.Atoi(a)
		nb, errB := strconv.Atoi(b)
		if errA == nil && errB == nil {
			return na < nb
		}
		return a < b
	})
}

// clockToMinutes parses "HH:MM" into minutes since midnight.
func clockToMinutes(clock string) (int, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
	minute, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errH != nil || errM != nil {
		return 0, false
	}
	return hour*60 + minute, true
}
