package topics

import (
	"math"

	"pickandtip/backend/internal/config"
	"pickandtip/backend/internal/localization"
	"pickandtip/backend/internal/models"
	"pickandtip/backend/internal/pipeline"
	"pickandtip/backend/internal/render"
)

type vatMerged = models.Merged[models.VatRecord]

var vatLevelLabels = map[string]models.LocalizedText{
	config.LevelNone:   {FR: "Aucune", EN: "None"},
	config.LevelLow:    {FR: "Faible", EN: "Low"},
	config.LevelMedium: {FR: "Modéré", EN: "Medium"},
	config.LevelHigh:   {FR: "Élevé", EN: "High"},
}

// VatRow is the rendered representation of one VAT table row.
type VatRow struct {
	Country      string       `json:"country"`
	Flag         string       `json:"flag"`
	Region       render.Badge `json:"region"`
	StandardRate render.Badge `json:"standardRate"`
	ReducedRates []string     `json:"reducedRates"`
	Threshold    string       `json:"threshold"`
	Notes        render.Notes `json:"notes"`
}

// hasReducedRates reports whether a record has actual reduced rates;
// datasets use a single 0 as a placeholder for "none".
func hasReducedRates(rates []float64) bool {
	for _, r := range rates {
		if r > 0 {
			return true
		}
	}
	return false
}

// highestReducedRate is the sort value of the reduced-rates column,
// -1 when the record has none so they group below every real rate.
func highestReducedRate(rates []float64) float64 {
	max := -1.0
	for _, r := range rates {
		if r > 0 {
			max = math.Max(max, r)
		}
	}
	return max
}

// VatTable is the accessor table of the VAT topic.
func VatTable(loc *localization.Localizer) pipeline.Table[vatMerged] {
	return pipeline.Table[vatMerged]{
		DefaultColumn: "country",
		Columns: map[string]pipeline.Column[vatMerged]{
			"country": {String: func(m vatMerged, lang string) string { return m.CountryName(lang) }},
			"region":  {String: func(m vatMerged, _ string) string { return m.Country.Region }},
			"standardRate": {Number: func(m vatMerged) float64 {
				return m.Fact.StandardRate
			}},
			"reducedRates": {Number: func(m vatMerged) float64 {
				return highestReducedRate(m.Fact.ReducedRates)
			}},
			"threshold": {Number: func(m vatMerged) float64 {
				return m.Fact.RegistrationThresholdValue
			}},
		},
		SearchFields: []func(vatMerged, string) string{
			func(m vatMerged, _ string) string { return m.Country.Name.FR },
			func(m vatMerged, _ string) string { return m.Country.Name.EN },
			func(m vatMerged, lang string) string { return loc.RegionLabel(lang, m.Country.Region) },
			func(m vatMerged, _ string) string { return m.Fact.Notes.FR },
			func(m vatMerged, _ string) string { return m.Fact.Notes.EN },
		},
		Categories: map[string]func(vatMerged) string{
			"region": func(m vatMerged) string { return m.Country.Region },
			"reduced": func(m vatMerged) string {
				if hasReducedRates(m.Fact.ReducedRates) {
					return "yes"
				}
				return "no"
			},
		},
		Buckets: map[string]pipeline.Bucket[vatMerged]{
			"rate": {
				Value:  func(m vatMerged) float64 { return m.Fact.StandardRate },
				Levels: pipeline.ThresholdLevels(config.VatLowMax, config.VatMediumMax, true),
			},
		},
	}
}

// VatRowBuilder returns the row formatter for the active language.
func VatRowBuilder(loc *localization.Localizer, lang string) func(vatMerged) VatRow {
	return func(m vatMerged) VatRow {
		level := pipeline.ThresholdLevel(m.Fact.StandardRate, config.VatLowMax, config.VatMediumMax, true)

		var reduced []string
		for _, r := range m.Fact.ReducedRates {
			if r > 0 {
				reduced = append(reduced, render.Percent(r))
			}
		}

		// A zero threshold value is still displayable ("Aucun seuil");
		// only a missing threshold object blanks the cell.
		threshold := ""
		if m.Fact.RegistrationThreshold != nil {
			threshold = m.Fact.RegistrationThreshold.In(lang)
		}

		return VatRow{
			Country: m.CountryName(lang),
			Flag:    m.Country.Flag,
			Region:  regionBadge(loc, lang, m.Country.Region),
			StandardRate: render.Badge{
				Label:   render.Percent(m.Fact.StandardRate),
				Level:   level,
				Color:   config.LevelColors[level],
				Tooltip: vatLevelLabels[level].In(lang),
			},
			ReducedRates: reduced,
			Threshold:    threshold,
			Notes:        render.NotesCell(m.Fact.Notes.In(lang)),
		}
	}
}
