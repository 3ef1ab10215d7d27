package topics

import (
	"pickandtip/backend/internal/config"
	"pickandtip/backend/internal/localization"
	"pickandtip/backend/internal/models"
	"pickandtip/backend/internal/pipeline"
	"pickandtip/backend/internal/render"
)

type parkingMerged = models.Merged[models.ParkingRecord]

// ParkingRow is the rendered representation of one parking-market row.
type ParkingRow struct {
	Country        string       `json:"country"`
	Flag           string       `json:"flag"`
	Region         render.Badge `json:"region"`
	Kind           string       `json:"kind"`
	PriceRange     string       `json:"priceRange"`
	LongTermYield  string       `json:"longTermYield"`
	ShortTermYield string       `json:"shortTermYield"`
	Legal          render.Notes `json:"legal"`
	Notes          render.Notes `json:"notes"`
}

// ParkingTable is the accessor table of the parking-markets topic. The
// original page splits garage/indoor/outdoor into tabs; here the split is
// the "kind" categorical filter over one record set.
func ParkingTable(loc *localization.Localizer) pipeline.Table[parkingMerged] {
	return pipeline.Table[parkingMerged]{
		DefaultColumn: "country",
		Columns: map[string]pipeline.Column[parkingMerged]{
			"country": {String: func(m parkingMerged, lang string) string { return m.CountryName(lang) }},
			"region":  {String: func(m parkingMerged, _ string) string { return m.Country.Region }},
			"priceRange": {Number: func(m parkingMerged) float64 {
				return m.Fact.Profitability.Prices.Min
			}},
			"longTermYield": {Number: func(m parkingMerged) float64 {
				return m.Fact.Profitability.Yields.LongTerm.Min
			}},
			"shortTermYield": {Number: func(m parkingMerged) float64 {
				return m.Fact.Profitability.Yields.ShortTerm.Min
			}},
			"liquidity": {Number: func(m parkingMerged) float64 {
				return m.Fact.Profitability.Liquidity
			}},
		},
		SearchFields: []func(parkingMerged, string) string{
			func(m parkingMerged, lang string) string { return m.CountryName(lang) },
			func(m parkingMerged, _ string) string { return m.Country.Name.FR },
			func(m parkingMerged, _ string) string { return m.Country.Name.EN },
			func(m parkingMerged, lang string) string { return loc.RegionLabel(lang, m.Country.Region) },
		},
		Categories: map[string]func(parkingMerged) string{
			"region": func(m parkingMerged) string { return m.Country.Region },
			"kind":   func(m parkingMerged) string { return m.Fact.Kind },
		},
		Buckets: map[string]pipeline.Bucket[parkingMerged]{
			"yield": {
				Value: func(m parkingMerged) float64 { return m.Fact.Profitability.Yields.LongTerm.Min },
				Levels: map[string]func(float64) bool{
					config.LevelLow:    func(v float64) bool { return v < config.ParkingYieldMediumMin },
					config.LevelMedium: func(v float64) bool { return v >= config.ParkingYieldMediumMin && v < config.ParkingYieldHighMin },
					config.LevelHigh:   func(v float64) bool { return v >= config.ParkingYieldHighMin },
				},
			},
		},
	}
}

// ParkingRowBuilder returns the row formatter for the active language.
func ParkingRowBuilder(loc *localization.Localizer, lang string) func(parkingMerged) ParkingRow {
	return func(m parkingMerged) ParkingRow {
		yields := m.Fact.Profitability.Yields
		return ParkingRow{
			Country:        m.CountryName(lang),
			Flag:           m.Country.Flag,
			Region:         regionBadge(loc, lang, m.Country.Region),
			Kind:           m.Fact.Kind,
			PriceRange:     render.Range(m.Fact.Profitability.Prices.Min, m.Fact.Profitability.Prices.Max),
			LongTermYield:  render.Range(yields.LongTerm.Min, yields.LongTerm.Max) + "%",
			ShortTermYield: render.Range(yields.ShortTerm.Min, yields.ShortTerm.Max) + "%",
			Legal:          render.NotesCell(m.Fact.Legal.In(lang)),
			Notes:          render.NotesCell(m.Fact.Notes.In(lang)),
		}
	}
}
