package config

// Topic slugs as they appear in URLs and dataset file names.
const (
	TopicPropertyTaxes          = "property-taxes"
	TopicVat                    = "vat"
	TopicVacationRentalBusiness = "vacation-rental-business"
	TopicVacationRentalHotspots = "vacation-rental-hotspots"
	TopicParkingMarkets         = "parking-markets"
	TopicShoppingList           = "shopping-list"
)

// Bucket cut points. These are editorial constants of each topic, not
// runtime configuration: the published level labels are written against
// these exact thresholds.
const (
	// Property tax (annual, % of value): none = 0, low < 0.5,
	// medium <= 1.5, high > 1.5.
	PropertyTaxLowMax    = 0.5
	PropertyTaxMediumMax = 1.5

	// Transfer tax (% of price): none = 0, low < 2, medium <= 5, high > 5.
	TransferTaxLowMax    = 2.0
	TransferTaxMediumMax = 5.0

	// VAT standard rate (%): none = 0, low <= 10, medium <= 20.
	VatLowMax    = 10.0
	VatMediumMax = 20.0

	// Parking long-term yield (%): low < 3, medium < 5, high >= 5.
	ParkingYieldMediumMin = 3.0
	ParkingYieldHighMin   = 5.0

	// Hotspot average monthly revenue ((min+max)/2): low < 1000,
	// medium <= 2000, high > 2000.
	HotspotRevenueLowMax    = 1000.0
	HotspotRevenueMediumMax = 2000.0
)

// Bucket level names shared by every threshold filter.
const (
	LevelNone   = "none"
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// Badge colors per level, copied from the published stylesheets so the
// API and the static pages stay in sync.
var LevelColors = map[string]string{
	LevelNone:   "#4CAF50",
	LevelLow:    "#8BC34A",
	LevelMedium: "#FF9800",
	LevelHigh:   "#F44336",
}

// Legal framework levels, ordered from most to least permissive. The
// numeric rank drives sorting.
var LegalLevelRank = map[string]int{
	"permissive":            0,
	"moderate":              1,
	"restrictive_local":     2,
	"prohibited_exceptions": 3,
	"prohibited":            4,
}

var LegalLevelColors = map[string]string{
	"permissive":            "#4CAF50",
	"moderate":              "#2196F3",
	"restrictive_local":     "#FF9800",
	"prohibited_exceptions": "#9E9E9E",
	"prohibited":            "#F44336",
}

// Management services levels. Rank ascends with service availability.
var ServicesLevelRank = map[string]int{
	"none":         0,
	"limited":      1,
	"professional": 2,
}

var ServicesLevelColors = map[string]string{
	"professional": "#4CAF50",
	"limited":      "#FF9800",
	"none":         "#F44336",
}

// Foreigner property-access restriction levels. A record without one is
// "unrestricted". Rank ascends with severity and drives sorting.
var ForeignerRestrictionRank = map[string]int{
	"unrestricted":  0,
	"low":           1,
	"high":          2,
	"nationalsOnly": 3,
}

var ForeignerRestrictionColors = map[string]string{
	"unrestricted":  "#4CAF50",
	"low":           "#FF9800",
	"high":          "#F44336",
	"nationalsOnly": "#9E9E9E",
}

// Licensing levels for city hotspots.
var LicensingLevelRank = map[string]int{
	"minimal":      0,
	"registration": 1,
	"license":      2,
	"gray":         3,
}

var LicensingLevelColors = map[string]string{
	"minimal":      "#4CAF50",
	"registration": "#2196F3",
	"license":      "#FF9800",
	"gray":         "#9E9E9E",
}

// Day-limit display levels for hotspot cities: 365 renders as unlimited,
// 0 as fully closed, anything up to 90 as a short season.
var DayLimitColors = map[string]string{
	"unlimited": "#4CAF50",
	"none":      "#F44336",
	"low":       "#FF9800",
	"standard":  "#2196F3",
}

// Rendering limits.
const (
	// NotesPreviewLength is where note text is cut and moved into a
	// tooltip instead.
	NotesPreviewLength = 200
)

// Contact form limits.
const (
	ContactMessageMaxLength = 4000
	ContactRateLimitPerHour = 5
)
