package sheet

import (
	"strconv"
	"strings"

	"github.com/vitrineweb/vitrine-backend/internal/app/model"
)

// menuHeaderMarkers identify the real header row inside the menu section,
// which may be preceded by titles or decorative rows.
var menuHeaderMarkers = map[string]bool{"Nome": true, "name": true, "item": true}

// ParseMenu maps the menu section into menu items. The header row is located
// by scanning for a marker cell; every later row is zipped against the
// discovered headers. Rows without a resolvable name are dropped silently.
func ParseMenu(rows [][]Cell) []model.MenuItem {
	if len(rows) == 0 {
		return []model.MenuItem{}
	}

	headerIndex := findMenuHeaderIndex(rows)
	if headerIndex < 0 {
		return []model.MenuItem{}
	}

	headers := make([]string, len(rows[headerIndex]))
	for i, cell := range rows[headerIndex] {
		headers[i] = strings.TrimSpace(cell.String())
	}

	items := make([]model.MenuItem, 0, len(rows)-headerIndex-1)
	for position, row := range rows[headerIndex+1:] {
		fields := zipRow(headers, row)

		name := strings.TrimSpace(firstPresent(fields, "Nome", "name").String())
		if name == "" {
			continue
		}

		id := strings.TrimSpace(firstPresent(fields, "ID", "id").String())
		if id == "" {
			// Stable fallback: the 1-based data-row position. Repeated
			// fetches of an unchanged sheet keep cart lines valid.
			id = strconv.Itoa(position + 1)
		}

		items = append(items, model.MenuItem{
			ID:          id,
			Name:        name,
			Description: strings.TrimSpace(firstPresent(fields, "Descrição", "description", "Descripción").String()),
			Price:       ParsePrice(firstPresent(fields, "Preço", "price")),
			Category:    strings.TrimSpace(firstPresent(fields, "Categoria", "category").String()),
			Image:       strings.TrimSpace(firstPresent(fields, "Imagem", "image").String()),
			IsHighlight: ParseHighlight(firstPresent(fields, "Destaque", "isHighlight")),
			Options:     ParseOptions(firstPresent(fields, "options")),
		})
	}
	return items
}

func findMenuHeaderIndex(rows [][]Cell) int {
	for i, row := range rows {
		for _, cell := range row {
			if menuHeaderMarkers[strings.TrimSpace(cell.String())] {
				return i
			}
		}
	}
	return -1
}

// zipRow pairs a data row with the header labels. Unlabeled columns are
// ignored; short rows simply lack the trailing fields.
func zipRow(headers []string, row []Cell) map[string]Cell {
	fields := make(map[string]Cell, len(headers))
	for i, header := range headers {
		if header == "" || i >= len(row) {
			continue
		}
		fields[header] = row[i]
	}
	return fields
}

// firstPresent returns the first non-empty cell among the named columns.
func firstPresent(fields map[string]Cell, keys ...string) Cell {
	for _, key := range keys {
		if cell, ok := fields[key]; ok && !cell.IsEmpty() {
			return cell
		}
	}
	return EmptyCell()
}
