package sheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook assembles an in-memory xlsx from per-sheet string rows.
func buildWorkbook(t *testing.T, sheets map[string][][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			for j, value := range row {
				axis, err := excelize.CoordinatesToCellName(j+1, i+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(name, axis, value))
			}
		}
	}
	require.NoError(t, f.DeleteSheet("Sheet1"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func serveWorkbook(t *testing.T, workbook []byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(workbook)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchStoreData_FullWorkbook(t *testing.T) {
	workbook := buildWorkbook(t, map[string][][]interface{}{
		"Loja": {
			{"Nome", "Valor"},
			{"Nome", "Pizzaria do Zé"},
			{"Telefone", "11999998888"},
		},
		"Cardápio": {
			{"Nome", "Preço", "Destaque"},
			{"Margherita", "R$ 45,90", "sim"},
			{"Calabresa", 52.0, ""},
		},
		"Horários de Funcionamento": {
			{"Dia", "Abertura", "Fechamento"},
			{"Segunda", "18:00", "23:00"},
			{"Domingo", 0.5, 0.625},
		},
		"SEO": {
			{"Descrição", "Pizza artesanal no centro"},
			{"Keywords", "pizza, delivery"},
		},
	})
	server := serveWorkbook(t, workbook)

	fetcher := NewFetcher(server.URL, nil, nil)
	data, err := fetcher.FetchStoreData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Pizzaria do Zé", data.Business.Name)
	assert.Equal(t, "11999998888", data.Business.Phone)
	assert.Equal(t, "(11) 99999-8888", data.Business.PhoneDisplay)
	assert.Equal(t, "Pizza artesanal no centro", data.Business.SeoDescription)
	assert.Equal(t, "pizza, delivery", data.Business.Keywords)

	require.Len(t, data.Menu, 2)
	assert.Equal(t, "Margherita", data.Menu[0].Name)
	assert.Equal(t, 45.9, data.Menu[0].Price)
	assert.True(t, data.Menu[0].IsHighlight)
	assert.Equal(t, 52.0, data.Menu[1].Price)

	require.Len(t, data.OpeningHours, 2)
	assert.Equal(t, 0, data.OpeningHours[0].Day)
	assert.Equal(t, "12:00", data.OpeningHours[0].Ranges[0].Open)
	assert.Equal(t, "15:00", data.OpeningHours[0].Ranges[0].Close)
	assert.Equal(t, 1, data.OpeningHours[1].Day)
}

func TestFetchStoreData_SectionNameVariants(t *testing.T) {
	workbook := buildWorkbook(t, map[string][][]interface{}{
		"Config": {
			{"Nome", "Loja Sem Acentos"},
		},
		"Cardapio": {
			{"Nome", "Preço"},
			{"Coxinha", "8,00"},
		},
		"Horarios": {
			{"Sexta", "18:00", "23:00"},
		},
	})
	server := serveWorkbook(t, workbook)

	fetcher := NewFetcher(server.URL, nil, nil)
	data, err := fetcher.FetchStoreData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Loja Sem Acentos", data.Business.Name)
	require.Len(t, data.Menu, 1)
	assert.Equal(t, "Coxinha", data.Menu[0].Name)
	require.Len(t, data.OpeningHours, 1)
	assert.Equal(t, 5, data.OpeningHours[0].Day)
}

func TestFetchStoreData_MissingSectionsAreEmptyNotError(t *testing.T) {
	workbook := buildWorkbook(t, map[string][][]interface{}{
		"Loja": {
			{"Nome", "Só Perfil"},
		},
	})
	server := serveWorkbook(t, workbook)

	fetcher := NewFetcher(server.URL, nil, nil)
	data, err := fetcher.FetchStoreData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Só Perfil", data.Business.Name)
	assert.Empty(t, data.Menu)
	assert.Empty(t, data.OpeningHours)
}

func TestFetchStoreData_NotConfigured(t *testing.T) {
	fetcher := NewFetcher("", nil, nil)
	_, err := fetcher.FetchStoreData(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestFetchStoreData_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	fetcher := NewFetcher(server.URL, nil, nil)
	_, err := fetcher.FetchStoreData(context.Background())
	assert.ErrorIs(t, err, ErrConnection)
}

func TestFetchStoreData_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("isto não é uma planilha"))
	}))
	t.Cleanup(server.Close)

	fetcher := NewFetcher(server.URL, nil, nil)
	_, err := fetcher.FetchStoreData(context.Background())
	assert.ErrorIs(t, err, ErrMalformedWorkbook)
}

func TestFetchStoreData_CacheBustParam(t *testing.T) {
	workbook := buildWorkbook(t, map[string][][]interface{}{
		"Loja": {{"Nome", "Loja"}},
	})

	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write(workbook)
	}))
	t.Cleanup(server.Close)

	fetcher := NewFetcher(server.URL+"?export=xlsx", nil, nil)
	_, err := fetcher.FetchStoreData(context.Background())
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "export=xlsx")
	assert.Contains(t, gotQuery, "&t=")
}

func TestFetchStoreData_BlankRowsDropped(t *testing.T) {
	workbook := buildWorkbook(t, map[string][][]interface{}{
		"Cardápio": {
			{"Nome", "Preço"},
			{"", ""},
			{"Pastel", "9,00"},
		},
	})
	server := serveWorkbook(t, workbook)

	fetcher := NewFetcher(server.URL, nil, nil)
	data, err := fetcher.FetchStoreData(context.Background())
	require.NoError(t, err)

	require.Len(t, data.Menu, 1)
	assert.Equal(t, "Pastel", data.Menu[0].Name)
	// Blank rows vanish before position-based ids are assigned.
	assert.Equal(t, "1", data.Menu[0].ID)
}

func TestFetchStoreData_TextTypedNumbersStayText(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Cardápio")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Cardápio", "A1", "Nome"))
	require.NoError(t, f.SetCellValue("Cardápio", "B1", "Preço"))
	require.NoError(t, f.SetCellStr("Cardápio", "A2", "Suco"))
	// Price entered as text: Brazilian decimal comma must survive the trip.
	require.NoError(t, f.SetCellStr("Cardápio", "B2", "7,50"))
	require.NoError(t, f.DeleteSheet("Sheet1"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	server := serveWorkbook(t, buf.Bytes())
	fetcher := NewFetcher(server.URL, nil, nil)
	data, err := fetcher.FetchStoreData(context.Background())
	require.NoError(t, err)

	require.Len(t, data.Menu, 1)
	assert.Equal(t, 7.5, data.Menu[0].Price)
}
