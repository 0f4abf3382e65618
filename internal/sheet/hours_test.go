package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrineweb/vitrine-backend/internal/app/model"
)

func hoursRow(day, open, close string) []Cell {
	return []Cell{TextCell(day), TextCell(open), TextCell(close)}
}

func TestParseOpeningHours_Basic(t *testing.T) {
	rows := [][]Cell{
		hoursRow("Dia", "Abertura", "Fechamento"),
		hoursRow("Segunda", "09:00", "18:00"),
		hoursRow("Domingo", "11:00", "15:00"),
	}

	hours := ParseOpeningHours(rows)
	require.Len(t, hours, 2)

	// Output is sorted by canonical day index, Sunday first.
	assert.Equal(t, 0, hours[0].Day)
	assert.Equal(t, []model.TimeRange{{Open: "11:00", Close: "15:00"}}, hours[0].Ranges)
	assert.Equal(t, 1, hours[1].Day)
	assert.Equal(t, []model.TimeRange{{Open: "09:00", Close: "18:00"}}, hours[1].Ranges)
}

func TestParseOpeningHours_DayAliases(t *testing.T) {
	tests := []struct {
		label string
		day   int
	}{
		{"domingo", 0},
		{"Segunda-feira", 1},
		{"terça", 2},
		{"terca-feira", 2},
		{"QUARTA", 3},
		{"quinta-feira", 4},
		{"Sexta", 5},
		{"sábado", 6},
		{"sabado", 6},
		{"3", 3}, // literal index also accepted
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			hours := ParseOpeningHours([][]Cell{hoursRow(tt.label, "08:00", "12:00")})
			require.Len(t, hours, 1)
			assert.Equal(t, tt.day, hours[0].Day)
		})
	}
}

func TestParseOpeningHours_SplitShiftsAccumulate(t *testing.T) {
	rows := [][]Cell{
		hoursRow("Sexta", "11:00", "14:00"),
		hoursRow("Sexta", "18:00", "23:00"),
	}

	hours := ParseOpeningHours(rows)
	require.Len(t, hours, 1)
	assert.Equal(t, []model.TimeRange{
		{Open: "11:00", Close: "14:00"},
		{Open: "18:00", Close: "23:00"},
	}, hours[0].Ranges)
}

func TestParseOpeningHours_NumericClockCells(t *testing.T) {
	rows := [][]Cell{
		{TextCell("Segunda"), NumberCell(0.375), NumberCell(18.5 / 24)},
	}

	hours := ParseOpeningHours(rows)
	require.Len(t, hours, 1)
	assert.Equal(t, []model.TimeRange{{Open: "09:00", Close: "18:30"}}, hours[0].Ranges)
}

func TestParseOpeningHours_BothClocksRequired(t *testing.T) {
	rows := [][]Cell{
		{TextCell("Segunda"), TextCell("09:00"), EmptyCell()},
		{TextCell("Terça"), EmptyCell(), TextCell("18:00")},
	}

	hours := ParseOpeningHours(rows)
	require.Len(t, hours, 2)
	assert.Empty(t, hours[0].Ranges, "missing close keeps the day closed")
	assert.Empty(t, hours[1].Ranges, "missing open keeps the day closed")
}

func TestParseOpeningHours_UnknownDayDropped(t *testing.T) {
	rows := [][]Cell{
		hoursRow("feriado", "09:00", "18:00"),
		hoursRow("8", "09:00", "18:00"), // out of range
		hoursRow("Segunda", "09:00", "18:00"),
	}

	hours := ParseOpeningHours(rows)
	require.Len(t, hours, 1)
	assert.Equal(t, 1, hours[0].Day)
}
