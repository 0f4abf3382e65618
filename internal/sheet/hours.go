package sheet

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vitrineweb/vitrine-backend/internal/app/model"
)

// dayAliases maps lowercase Portuguese weekday labels, full and abbreviated,
// with and without the "-feira" suffix and diacritics, to the canonical
// 0=Sunday..6=Saturday index.
var dayAliases = map[string]int{
	"domingo":       0,
	"segunda-feira": 1,
	"segunda":       1,
	"terça-feira":   2,
	"terca-feira":   2,
	"terça":         2,
	"terca":         2,
	"quarta-feira":  3,
	"quarta":        3,
	"quinta-feira":  4,
	"quinta":        4,
	"sexta-feira":   5,
	"sexta":         5,
	"sábado":        6,
	"sabado":        6,
}

// ParseOpeningHours maps the three-column (day, open, close) section into
// per-day range lists. The literal "Dia" header row is skipped, unmappable
// day labels are dropped, and a row only contributes a range when both clock
// cells resolve to non-empty strings. Multiple rows for the same day
// accumulate in encounter order.
func ParseOpeningHours(rows [][]Cell) []model.OpeningHours {
	byDay := make(map[int]*model.OpeningHours)

	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		rawDay := strings.TrimSpace(row[0].String())
		if rawDay == "Dia" {
			continue
		}

		day, ok := resolveDay(rawDay)
		if !ok {
			continue
		}

		if _, exists := byDay[day]; !exists {
			byDay[day] = &model.OpeningHours{Day: day, Ranges: []model.TimeRange{}}
		}

		if len(row) < 3 {
			continue
		}
		open := ParseClock(row[1])
		close := ParseClock(row[2])
		if open != "" && close != "" {
			byDay[day].Ranges = append(byDay[day].Ranges, model.TimeRange{Open: open, Close: close})
		}
	}

	hours := make([]model.OpeningHours, 0, len(byDay))
	for _, entry := range byDay {
		hours = append(hours, *entry)
	}
	sort.Slice(hours, func(i, j int) bool { return hours[i].Day < hours[j].Day })
	return hours
}

// resolveDay turns a day label into the canonical weekday index, first via
// the alias table, then as a literal integer 0–6.
func resolveDay(raw string) (int, bool) {
	if day, ok := dayAliases[strings.ToLower(raw)]; ok {
		return day, true
	}
	if day, err := strconv.Atoi(raw); err == nil && day >= 0 && day <= 6 {
		return day, true
	}
	return 0, false
}
