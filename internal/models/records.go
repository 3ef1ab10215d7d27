package models

// Fact records are the topic-specific rows loaded from the per-topic JSON
// documents. Each one carries a CountryCode foreign key into the Country
// reference set; the merger resolves it and flattens the country fields in.

// TaxRecord is one property-tax row. PropertyTax/TransferTax are the
// display strings ("0.5-1.2%"), the *Value fields are the numeric
// magnitudes used by filters and sorting. A record without a foreigner
// restriction level is unrestricted.
type TaxRecord struct {
	CountryCode               string        `json:"countryCode"`
	PropertyTax               string        `json:"propertyTax"`
	PropertyTaxValue          float64       `json:"propertyTaxValue"`
	TransferTax               string        `json:"transferTax"`
	TransferTaxValue          float64       `json:"transferTaxValue"`
	ForeignerRestrictionLevel string        `json:"foreignerRestrictionLevel"`
	ForeignerRestrictionValue float64       `json:"foreignerRestrictionValue"`
	Notes                     LocalizedText `json:"notes"`
}

// ForeignerRestriction is the restriction level with the missing-field
// default applied.
func (r TaxRecord) ForeignerRestriction() string {
	if r.ForeignerRestrictionLevel == "" {
		return "unrestricted"
	}
	return r.ForeignerRestrictionLevel
}

// VatRecord is one VAT row. ReducedRates may contain a single 0 as a
// placeholder for "no reduced rates"; formatters filter those out.
type VatRecord struct {
	CountryCode                string         `json:"countryCode"`
	StandardRate               float64        `json:"standardRate"`
	ReducedRates               []float64      `json:"reducedRates"`
	RegistrationThreshold      *LocalizedText `json:"registrationThreshold"`
	RegistrationThresholdValue float64        `json:"registrationThresholdValue"`
	Notes                      LocalizedText  `json:"notes"`
}

// LegalFramework classifies a country's vacation-rental legislation.
// Level is one of: permissive, moderate, restrictive_local,
// prohibited_exceptions, prohibited.
type LegalFramework struct {
	Level   string        `json:"level"`
	Details LocalizedText `json:"details"`
}

// ManagementServices describes the local property-management offer.
// Level is one of: professional, limited, none.
type ManagementServices struct {
	Level    string   `json:"level"`
	Examples []string `json:"examples"`
}

// Platform is a rental platform active in a country.
type Platform struct {
	Name      string   `json:"name"`
	Scope     string   `json:"scope"` // "international" or "local"
	Languages []string `json:"languages"`
}

// RentalRecord is one vacation-rental-business row.
type RentalRecord struct {
	CountryCode string             `json:"countryCode"`
	Legal       LegalFramework     `json:"legalFramework"`
	Services    ManagementServices `json:"services"`
	Platforms   []Platform         `json:"platforms"`
	Notes       LocalizedText      `json:"notes"`
}

// SizeProfit is the projected profitability for one property size.
type SizeProfit struct {
	Profitability float64 `json:"profitability"`
}

// HotspotProfitability nests per-size projections under the original
// document's "50m2"/"100m2"/"200m2" keys.
type HotspotProfitability struct {
	BySize map[string]SizeProfit `json:"profitabilityBySize"`
}

// Licensing classifies a city's short-term-rental licensing regime.
// Level is one of: minimal, registration, license, gray.
type Licensing struct {
	Level string        `json:"level"`
	Notes LocalizedText `json:"notes"`
}

// MinMax is a numeric range as published in the source datasets.
type MinMax struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// HotspotRecord is one vacation-rental-hotspot (city) row.
type HotspotRecord struct {
	CountryCode    string                `json:"countryCode"`
	City           LocalizedText         `json:"city"`
	MarketType     string                `json:"marketType"`
	DayLimit       int                   `json:"dayLimit"`
	MonthlyRevenue MinMax                `json:"monthlyRevenue"`
	Profitability  *HotspotProfitability `json:"profitability"`
	Licensing      Licensing             `json:"licensing"`
	Notes          LocalizedText         `json:"notes"`
}

// AverageProfitability is the mean projected profitability across the
// published property sizes, 0 when no projection exists. Sorting and the
// profitability bucket filter both run on this value.
func (h HotspotRecord) AverageProfitability() float64 {
	if h.Profitability == nil || len(h.Profitability.BySize) == 0 {
		return 0
	}
	var sum float64
	for _, p := range h.Profitability.BySize {
		sum += p.Profitability
	}
	return sum / float64(len(h.Profitability.BySize))
}

// MarketYields holds the long/short-term yield ranges of a parking market.
type MarketYields struct {
	LongTerm  MinMax `json:"longTerm"`
	ShortTerm MinMax `json:"shortTerm"`
}

// MarketProfitability groups price and yield data of a parking market.
type MarketProfitability struct {
	Prices    MinMax       `json:"prices"`
	Yields    MarketYields `json:"yields"`
	Liquidity float64      `json:"marketLiquidityValue"`
}

// ParkingRecord is one parking-market row. Kind distinguishes the original
// page's garage/indoor/outdoor tabs.
type ParkingRecord struct {
	CountryCode   string              `json:"countryCode"`
	Kind          string              `json:"kind"`
	Legal         LocalizedText       `json:"legal"`
	Profitability MarketProfitability `json:"profitability"`
	Notes         LocalizedText       `json:"notes"`
}

// ShoppingItem is one row of the budget-eating shopping list. It is the
// only tabular dataset that is not keyed by country, so it goes through
// the pipeline without a merge.
type ShoppingItem struct {
	Name          LocalizedText `json:"name"`
	Category      string        `json:"category"`
	UnitPrice     float64       `json:"unitPrice"`
	WeeklyBudget  float64       `json:"weeklyBudget"`
	ProteinPer100 float64       `json:"proteinPer100g"`
}

// Merged wraps a fact record with the Country fields resolved from the
// reference set. Every merged record's Country comes verbatim from the
// reference side.
type Merged[F any] struct {
	Fact    F
	Country Country
}

// CountryName is the country display name in the given language.
func (m Merged[F]) CountryName(lang string) string {
	return m.Country.Name.In(lang)
}
