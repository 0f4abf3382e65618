package sheet

import (
	"strings"

	"github.com/vitrineweb/vitrine-backend/internal/app/model"
)

// businessFieldAliases maps every accepted spreadsheet label (accents, typos
// and all) to a canonical field name. Labels outside this table land in
// BusinessInfo.Extra under their raw key.
var businessFieldAliases = map[string]string{
	"Nome":             "name",
	"Nome Secundário":  "tagline",
	"Descrição":        "description",
	"Descricao":        "description",
	"Telefone":         "phone",
	"Instagram":        "instagram",
	"Ifood":            "ifood",
	"99Food":           "food99",
	"GooglePlaceId":    "googlePlaceId",
	"Cor Primária":     "primaryColor",
	"Cor Secundária":   "secondaryColor",
	"Logo":             "logo",
	"Favicon":          "favicon",
	"Logo Ifood":       "ifoodLogo",
	"Logo 99Food":      "food99Logo",
	"Keywords":         "keywords",
	"Palavras-Chave":   "keywords",
	"Palavras-chave":   "keywords",
	"Título Social":    "ogTitle",
	"Titulo Social":    "ogTitle",
	"Descrição Social": "ogDescription",
	"Descricao Social": "ogDescription",
	"Link Canônico":    "canonicalUrl",
}

// ParseBusinessInfo maps a two-column key/value section into BusinessInfo.
// The literal column-header row ("Nome" | "Valor"/"Conteúdo"/"Uso") and the
// "Informações de SEO" section label are data-free and skipped.
func ParseBusinessInfo(rows [][]Cell) model.BusinessInfo {
	var info model.BusinessInfo

	for _, row := range rows {
		if len(row) < 2 {
			continue
		}

		rawKey := strings.TrimSpace(row[0].String())
		value := strings.TrimSpace(row[1].String())

		if rawKey == "Nome" && (value == "Valor" || value == "Conteúdo" || value == "Uso") {
			continue
		}
		if rawKey == "Informações de SEO" {
			continue
		}
		if rawKey == "" {
			continue
		}

		field, known := businessFieldAliases[rawKey]
		if !known {
			if info.Extra == nil {
				info.Extra = make(map[string]string)
			}
			info.Extra[rawKey] = value
			continue
		}
		setBusinessField(&info, field, value)
	}

	return info
}

func setBusinessField(info *model.BusinessInfo, field, value string) {
	switch field {
	case "name":
		info.Name = value
	case "tagline":
		info.Tagline = value
	case "description":
		info.Description = value
	case "phone":
		info.Phone = value
	case "instagram":
		info.Instagram = value
	case "ifood":
		info.Ifood = value
	case "food99":
		info.Food99 = value
	case "googlePlaceId":
		info.GooglePlaceID = value
	case "primaryColor":
		info.PrimaryColor = value
	case "secondaryColor":
		info.SecondaryColor = value
	case "logo":
		info.Logo = value
	case "favicon":
		info.Favicon = value
	case "ifoodLogo":
		info.IfoodLogo = value
	case "food99Logo":
		info.Food99Logo = value
	case "keywords":
		info.Keywords = value
	case "ogTitle":
		info.OgTitle = value
	case "ogDescription":
		info.OgDescription = value
	case "canonicalUrl":
		info.CanonicalURL = value
	}
}

// MergeSEO overlays a parsed SEO section onto the business profile. The SEO
// sheet may define its own "Descrição"; that value moves to SeoDescription so
// the user-facing description survives the merge. Empty SEO values never
// overwrite populated base fields.
func MergeSEO(base *model.BusinessInfo, seo model.BusinessInfo) {
	if seo.Description != "" {
		base.SeoDescription = seo.Description
		seo.Description = ""
	}

	overlay := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	overlay(&base.Name, seo.Name)
	overlay(&base.Tagline, seo.Tagline)
	overlay(&base.Phone, seo.Phone)
	overlay(&base.Instagram, seo.Instagram)
	overlay(&base.Ifood, seo.Ifood)
	overlay(&base.Food99, seo.Food99)
	overlay(&base.GooglePlaceID, seo.GooglePlaceID)
	overlay(&base.PrimaryColor, seo.PrimaryColor)
	overlay(&base.SecondaryColor, seo.SecondaryColor)
	overlay(&base.Logo, seo.Logo)
	overlay(&base.Favicon, seo.Favicon)
	overlay(&base.IfoodLogo, seo.IfoodLogo)
	overlay(&base.Food99Logo, seo.Food99Logo)
	overlay(&base.Keywords, seo.Keywords)
	overlay(&base.SeoDescription, seo.SeoDescription)
	overlay(&base.OgTitle, seo.OgTitle)
	overlay(&base.OgDescription, seo.OgDescription)
	overlay(&base.CanonicalURL, seo.CanonicalURL)

	for key, value := range seo.Extra {
		if base.Extra == nil {
			base.Extra = make(map[string]string)
		}
		base.Extra[key] = value
	}
}
