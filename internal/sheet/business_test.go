package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kvRow(key, value string) []Cell {
	return []Cell{TextCell(key), TextCell(value)}
}

func TestParseBusinessInfo_Basic(t *testing.T) {
	rows := [][]Cell{
		kvRow("Nome", "Valor"), // column header, not data
		kvRow("Nome", "Pizzaria do Zé"),
		kvRow("Descrição", "A melhor pizza da cidade"),
		kvRow("Telefone", "11999998888"),
		kvRow("Instagram", "@pizzariadoze"),
		kvRow("Cor Primária", "#C62828"),
		kvRow("Logo Ifood", "https://cdn.example.com/ifood.png"),
	}

	info := ParseBusinessInfo(rows)

	assert.Equal(t, "Pizzaria do Zé", info.Name)
	assert.Equal(t, "A melhor pizza da cidade", info.Description)
	assert.Equal(t, "11999998888", info.Phone)
	assert.Equal(t, "@pizzariadoze", info.Instagram)
	assert.Equal(t, "#C62828", info.PrimaryColor)
	assert.Equal(t, "https://cdn.example.com/ifood.png", info.IfoodLogo)
}

func TestParseBusinessInfo_HeaderVariantsSkipped(t *testing.T) {
	for _, header := range []string{"Valor", "Conteúdo", "Uso"} {
		rows := [][]Cell{
			kvRow("Nome", header),
			kvRow("Nome", "Loja Real"),
		}
		info := ParseBusinessInfo(rows)
		assert.Equal(t, "Loja Real", info.Name, "header %q should be skipped", header)
	}
}

func TestParseBusinessInfo_AccentlessAliases(t *testing.T) {
	rows := [][]Cell{
		kvRow("Descricao", "Sem acento"),
		kvRow("Palavras-chave", "pizza, delivery"),
	}

	info := ParseBusinessInfo(rows)

	assert.Equal(t, "Sem acento", info.Description)
	assert.Equal(t, "pizza, delivery", info.Keywords)
}

func TestParseBusinessInfo_UnknownKeysLandInExtra(t *testing.T) {
	rows := [][]Cell{
		kvRow("Nome", "Loja"),
		kvRow("Campo Customizado", "valor custom"),
	}

	info := ParseBusinessInfo(rows)

	assert.Equal(t, "valor custom", info.Extra["Campo Customizado"])
}

func TestParseBusinessInfo_ShortAndBlankRowsIgnored(t *testing.T) {
	rows := [][]Cell{
		{TextCell("Nome")}, // no value column
		kvRow("", "orphan value"),
		kvRow("Informações de SEO", ""),
		kvRow("Nome", "Loja"),
	}

	info := ParseBusinessInfo(rows)

	assert.Equal(t, "Loja", info.Name)
	assert.Empty(t, info.Extra)
}

func TestMergeSEO_DescriptionRenamed(t *testing.T) {
	base := ParseBusinessInfo([][]Cell{
		kvRow("Nome", "Loja"),
		kvRow("Descrição", "Texto da vitrine"),
	})
	seo := ParseBusinessInfo([][]Cell{
		kvRow("Descrição", "Texto para buscadores"),
		kvRow("Keywords", "pizza, rodízio"),
	})

	MergeSEO(&base, seo)

	assert.Equal(t, "Texto da vitrine", base.Description, "SEO description must not clobber the storefront text")
	assert.Equal(t, "Texto para buscadores", base.SeoDescription)
	assert.Equal(t, "pizza, rodízio", base.Keywords)
}

func TestMergeSEO_EmptyValuesDoNotOverwrite(t *testing.T) {
	base := ParseBusinessInfo([][]Cell{
		kvRow("Nome", "Loja"),
		kvRow("Título Social", "Título original"),
	})
	seo := ParseBusinessInfo([][]Cell{
		kvRow("Link Canônico", "https://loja.example.com"),
	})

	MergeSEO(&base, seo)

	assert.Equal(t, "Loja", base.Name)
	assert.Equal(t, "Título original", base.OgTitle)
	assert.Equal(t, "https://loja.example.com", base.CanonicalURL)
}
