package model

// BusinessInfo holds the storefront profile parsed from the "Loja"/"Config"
// section of the spreadsheet, merged with the optional "SEO" section.
// Absent fields stay "": the spreadsheet does not distinguish a missing row
// from an explicitly empty value, so neither do we.
type BusinessInfo struct {
	Name           string `json:"name"`
	Tagline        string `json:"tagline,omitempty"`
	Description    string `json:"description,omitempty"`
	Phone          string `json:"phone"`
	PhoneDisplay   string `json:"phone_display,omitempty"`
	Instagram      string `json:"instagram,omitempty"`
	Ifood          string `json:"ifood,omitempty"`
	Food99         string `json:"food99,omitempty"`
	GooglePlaceID  string `json:"google_place_id,omitempty"`
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
	Logo           string `json:"logo,omitempty"`
	Favicon        string `json:"favicon,omitempty"`
	IfoodLogo      string `json:"ifood_logo,omitempty"`
	Food99Logo     string `json:"food99_logo,omitempty"`

	// SEO overrides. SeoDescription is kept apart from Description so the
	// SEO sheet never clobbers the user-facing text.
	Keywords       string `json:"keywords,omitempty"`
	SeoDescription string `json:"seo_description,omitempty"`
	OgTitle        string `json:"og_title,omitempty"`
	OgDescription  string `json:"og_description,omitempty"`
	CanonicalURL   string `json:"canonical_url,omitempty"`

	// Extra carries spreadsheet rows whose label is not in the alias table,
	// keyed by the raw label. Forward compatibility for custom fields.
	Extra map[string]string `json:"extra,omitempty"`
}

// MenuItem is the single menu entry shape shared by both data sources
// (spreadsheet rows and delivery-catalog items).
type MenuItem struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	Price         float64     `json:"price"`
	OriginalPrice *float64    `json:"original_price,omitempty"`
	Category      string      `json:"category,omitempty"`
	Image         string      `json:"image,omitempty"`
	IsHighlight   bool        `json:"is_highlight"`
	Serving       string      `json:"serving,omitempty"`
	Tags          []string    `json:"tags,omitempty"`
	Options       interface{} `json:"options,omitempty"`
}

// TimeRange is one open/close pair as zero-padded "HH:MM" strings.
// Validity (open < close) is not enforced here; the hours evaluator treats
// ill-formed ranges defensively.
type TimeRange struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// OpeningHours holds the ranges for one weekday. Day follows the canonical
// index 0=Sunday..6=Saturday. No ranges means closed all day; multiple ranges
// are split shifts and are checked independently.
type OpeningHours struct {
	Day    int         `json:"day"`
	Ranges []TimeRange `json:"ranges"`
}

// StoreData is the aggregate handed to the UI layer. It is rebuilt from
// scratch on every fetch and has no lifecycle of its own.
type StoreData struct {
	Business     BusinessInfo   `json:"business"`
	Menu         []MenuItem     `json:"menu"`
	OpeningHours []OpeningHours `json:"opening_hours"`
}

// EmptyStoreData is the fallback shape the API serves when the source is
// unavailable, so consumers always get a renderable payload.
func EmptyStoreData() *StoreData {
	return &StoreData{
		Menu:         []MenuItem{},
		OpeningHours: []OpeningHours{},
	}
}
