package sheet

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellKind tags the value a spreadsheet cell arrived as. The same logical
// field can show up as text, a number or a boolean depending on how the sheet
// author formatted the column, so every coercion below is total: it always
// produces a value and never fails.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindText
	KindNumber
	KindBool
)

// Cell is the tagged-union raw value of one workbook cell.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Bool   bool
}

func EmptyCell() Cell           { return Cell{Kind: KindEmpty} }
func TextCell(s string) Cell    { return Cell{Kind: KindText, Text: s} }
func NumberCell(f float64) Cell { return Cell{Kind: KindNumber, Number: f} }
func BoolCell(b bool) Cell      { return Cell{Kind: KindBool, Bool: b} }

// newCell classifies a raw excelize cell value. Text-typed cells stay text
// even when they look numeric; only genuinely numeric cells become numbers,
// so "9.99" entered as text is not confused with the number 9.99.
func newCell(raw string, cellType excelize.CellType) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return EmptyCell()
	}

	switch cellType {
	case excelize.CellTypeBool:
		return BoolCell(trimmed == "1" || strings.EqualFold(trimmed, "true"))
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return TextCell(raw)
	}

	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return NumberCell(f)
	}
	return TextCell(raw)
}

// String renders the cell the way the sheet author would read it. Numbers use
// the shortest exact decimal form.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(c.Bool)
	}
	return ""
}

// IsEmpty reports whether the cell holds nothing displayable.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty || strings.TrimSpace(c.String()) == ""
}

var priceStripper = strings.NewReplacer("R", "", "$", "", ".", "", " ", "", "\t", "", " ", "")

// ParsePrice normalizes a price cell to a non-negative decimal amount.
// Numeric cells pass through; text cells drop the currency symbol,
// whitespace and thousands dots and turn the decimal comma into a dot.
// Anything unparseable becomes 0, never NaN.
func ParsePrice(c Cell) float64 {
	var v float64
	switch c.Kind {
	case KindNumber:
		v = c.Number
	case KindText:
		normalized := strings.ReplaceAll(priceStripper.Replace(c.Text), ",", ".")
		parsed, err := strconv.ParseFloat(normalized, 64)
		if err != nil {
			return 0
		}
		v = parsed
	default:
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

var highlightTokens = map[string]bool{"true": true, "sim": true, "x": true}

// ParseHighlight interprets the featured-item flag. Real booleans pass
// through; otherwise the accepted tokens are "true", "sim" and "x" in any
// case. Everything else, including "não" and blanks, is false.
func ParseHighlight(c Cell) bool {
	if c.Kind == KindBool {
		return c.Bool
	}
	if c.IsEmpty() {
		return false
	}
	return highlightTokens[strings.ToLower(strings.TrimSpace(c.String()))]
}

// ParseOptions treats the options column as an opaque passthrough: text that
// parses as JSON becomes the structured value, text that does not stays a raw
// string, numbers and booleans pass through, blanks yield nil.
func ParseOptions(c Cell) interface{} {
	switch c.Kind {
	case KindText:
		trimmed := strings.TrimSpace(c.Text)
		if trimmed == "" {
			return nil
		}
		var parsed interface{}
		if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
			return parsed
		}
		return c.Text
	case KindNumber:
		return c.Number
	case KindBool:
		return c.Bool
	}
	return nil
}

// ParseClock normalizes a time cell to "HH:MM". Numeric cells are spreadsheet
// day fractions (0.5 is noon); text cells containing a colon are re-padded on
// both sides of the first colon; anything else passes through as-is, best
// effort. Empty cells yield "".
func ParseClock(c Cell) string {
	switch c.Kind {
	case KindNumber:
		totalMinutes := int(math.Round(c.Number * 24 * 60))
		return pad2(strconv.Itoa(totalMinutes/60)) + ":" + pad2(strconv.Itoa(totalMinutes%60))
	case KindText:
		s := strings.TrimSpace(c.Text)
		if s == "" {
			return ""
		}
		if strings.Contains(s, ":") {
			parts := strings.Split(s, ":")
			return pad2(parts[0]) + ":" + pad2(parts[1])
		}
		return s
	}
	return ""
}

func pad2(s string) string {
	if len(s) < 2 {
		return strings.Repeat("0", 2-len(s)) + s
	}
	return s
}
