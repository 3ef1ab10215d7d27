package topics

import (
	"pickandtip/backend/internal/config"
	"pickandtip/backend/internal/localization"
	"pickandtip/backend/internal/models"
	"pickandtip/backend/internal/pipeline"
	"pickandtip/backend/internal/render"
)

type taxMerged = models.Merged[models.TaxRecord]

var foreignerRestrictionLabels = map[string]models.LocalizedText{
	"unrestricted":  {FR: "Aucune restriction", EN: "No restrictions"},
	"low":           {FR: "Restrictions légères", EN: "Minor restrictions"},
	"high":          {FR: "Restrictions fortes", EN: "Heavy restrictions"},
	"nationalsOnly": {FR: "Nationaux uniquement", EN: "Nationals only"},
}

// TaxRow is the rendered representation of one property-tax table row.
type TaxRow struct {
	Country       string       `json:"country"`
	Flag          string       `json:"flag"`
	Region        render.Badge `json:"region"`
	PropertyTax   render.Badge `json:"propertyTax"`
	TransferTax   render.Badge `json:"transferTax"`
	ForeignAccess render.Badge `json:"foreignAccess"`
	Notes         render.Notes `json:"notes"`
}

// PropertyTaxTable is the accessor table of the property-taxes topic.
// Free-text search scans the country name in the active language and in
// both reference languages, the translated region label and the notes.
func PropertyTaxTable(loc *localization.Localizer) pipeline.Table[taxMerged] {
	return pipeline.Table[taxMerged]{
		DefaultColumn: "country",
		Columns: map[string]pipeline.Column[taxMerged]{
			"country": {String: func(m taxMerged, lang string) string { return m.CountryName(lang) }},
			"region":  {String: func(m taxMerged, _ string) string { return m.Country.Region }},
			"propertyTax": {Number: func(m taxMerged) float64 {
				return m.Fact.PropertyTaxValue
			}},
			"transferTax": {Number: func(m taxMerged) float64 {
				return m.Fact.TransferTaxValue
			}},
			"foreignerRestriction": {Number: func(m taxMerged) float64 {
				return m.Fact.ForeignerRestrictionValue
			}},
		},
		SearchFields: []func(taxMerged, string) string{
			func(m taxMerged, lang string) string { return m.CountryName(lang) },
			func(m taxMerged, _ string) string { return m.Country.Name.FR },
			func(m taxMerged, _ string) string { return m.Country.Name.EN },
			func(m taxMerged, lang string) string { return loc.RegionLabel(lang, m.Country.Region) },
			func(m taxMerged, lang string) string { return m.Fact.Notes.In(lang) },
		},
		Categories: map[string]func(taxMerged) string{
			"region": func(m taxMerged) string { return m.Country.Region },
		},
		Buckets: map[string]pipeline.Bucket[taxMerged]{
			"level": {
				Value:  func(m taxMerged) float64 { return m.Fact.PropertyTaxValue },
				Levels: pipeline.ThresholdLevels(config.PropertyTaxLowMax, config.PropertyTaxMediumMax, false),
			},
			"transfer": {
				Value:  func(m taxMerged) float64 { return m.Fact.TransferTaxValue },
				Levels: pipeline.ThresholdLevels(config.TransferTaxLowMax, config.TransferTaxMediumMax, false),
			},
		},
	}
}

// TaxRowBuilder returns the row formatter for the active language.
func TaxRowBuilder(loc *localization.Localizer, lang string) func(taxMerged) TaxRow {
	return func(m taxMerged) TaxRow {
		propertyLevel := pipeline.ThresholdLevel(m.Fact.PropertyTaxValue,
			config.PropertyTaxLowMax, config.PropertyTaxMediumMax, false)
		transferLevel := pipeline.ThresholdLevel(m.Fact.TransferTaxValue,
			config.TransferTaxLowMax, config.TransferTaxMediumMax, false)
		restriction := m.Fact.ForeignerRestriction()

		return TaxRow{
			Country: m.CountryName(lang),
			Flag:    m.Country.Flag,
			Region:  regionBadge(loc, lang, m.Country.Region),
			PropertyTax: render.Badge{
				Label: m.Fact.PropertyTax,
				Level: propertyLevel,
				Color: config.LevelColors[propertyLevel],
			},
			TransferTax: render.Badge{
				Label: m.Fact.TransferTax,
				Level: transferLevel,
				Color: config.LevelColors[transferLevel],
			},
			ForeignAccess: levelBadge(restriction, lang, foreignerRestrictionLabels, config.ForeignerRestrictionColors),
			Notes:         render.NotesCell(m.Fact.Notes.In(lang)),
		}
	}
}

// TaxStats are the landing-page stat badges for the property-tax dataset.
type TaxStats struct {
	Countries int `json:"countries"`
	NoTax     int `json:"noTax"`
	LowTax    int `json:"lowTax"`
	Unmatched int `json:"unmatched"`
}

// ComputeTaxStats counts the badge figures over the full merged set.
func ComputeTaxStats(records []taxMerged, unmatched int) TaxStats {
	stats := TaxStats{Countries: len(records), Unmatched: unmatched}
	for _, m := range records {
		v := m.Fact.PropertyTaxValue
		if v == 0 {
			stats.NoTax++
		} else if v < config.PropertyTaxLowMax {
			stats.LowTax++
		}
	}
	return stats
}
