package topics

import (
	"strings"

	"pickandtip/backend/internal/config"
	"pickandtip/backend/internal/localization"
	"pickandtip/backend/internal/models"
	"pickandtip/backend/internal/pipeline"
	"pickandtip/backend/internal/render"
)

type rentalMerged = models.Merged[models.RentalRecord]

var legalLevelLabels = map[string]models.LocalizedText{
	"permissive":            {FR: "Permissif", EN: "Permissive"},
	"moderate":              {FR: "Modéré", EN: "Moderate"},
	"restrictive_local":     {FR: "Restrictions locales", EN: "Local restrictions"},
	"prohibited_exceptions": {FR: "Interdit sauf exceptions", EN: "Banned with exceptions"},
	"prohibited":            {FR: "Interdit", EN: "Banned"},
}

var servicesLevelLabels = map[string]models.LocalizedText{
	"professional": {FR: "Professionnels", EN: "Professional"},
	"limited":      {FR: "Limités", EN: "Limited"},
	"none":         {FR: "Rares/inexistants", EN: "Rare/non-existent"},
}

// PlatformView is one rental platform entry of a row.
type PlatformView struct {
	Name      string   `json:"name"`
	Scope     string   `json:"scope"`
	Languages []string `json:"languages"`
}

// RentalRow is the rendered representation of one vacation-rental-business
// table row.
type RentalRow struct {
	Country   string         `json:"country"`
	Flag      string         `json:"flag"`
	Region    render.Badge   `json:"region"`
	Legal     render.Badge   `json:"legal"`
	Services  render.Badge   `json:"services"`
	Platforms []PlatformView `json:"platforms"`
	Notes     render.Notes   `json:"notes"`
}

// RentalTable is the accessor table of the vacation-rental-business topic.
// The legal and services columns sort by the rank of their level, most
// permissive first.
func RentalTable(loc *localization.Localizer) pipeline.Table[rentalMerged] {
	return pipeline.Table[rentalMerged]{
		DefaultColumn: "country",
		Columns: map[string]pipeline.Column[rentalMerged]{
			"country": {String: func(m rentalMerged, lang string) string { return m.CountryName(lang) }},
			"region":  {String: func(m rentalMerged, _ string) string { return m.Country.Region }},
			"legalFramework": {Number: func(m rentalMerged) float64 {
				return float64(config.LegalLevelRank[m.Fact.Legal.Level])
			}},
			"services": {Number: func(m rentalMerged) float64 {
				return float64(config.ServicesLevelRank[m.Fact.Services.Level])
			}},
		},
		SearchFields: []func(rentalMerged, string) string{
			func(m rentalMerged, lang string) string { return m.CountryName(lang) },
			func(m rentalMerged, _ string) string { return m.Country.Name.FR },
			func(m rentalMerged, _ string) string { return m.Country.Name.EN },
			func(m rentalMerged, lang string) string { return loc.RegionLabel(lang, m.Country.Region) },
			func(m rentalMerged, lang string) string { return m.Fact.Notes.In(lang) },
		},
		Categories: map[string]func(rentalMerged) string{
			"region":   func(m rentalMerged) string { return m.Country.Region },
			"legal":    func(m rentalMerged) string { return m.Fact.Legal.Level },
			"services": func(m rentalMerged) string { return m.Fact.Services.Level },
		},
	}
}

// RentalRowBuilder returns the row formatter for the active language.
func RentalRowBuilder(loc *localization.Localizer, lang string) func(rentalMerged) RentalRow {
	return func(m rentalMerged) RentalRow {
		legal := levelBadge(m.Fact.Legal.Level, lang, legalLevelLabels, config.LegalLevelColors)
		legal.Tooltip = m.Fact.Legal.Details.In(lang)

		services := levelBadge(m.Fact.Services.Level, lang, servicesLevelLabels, config.ServicesLevelColors)
		services.Tooltip = strings.Join(m.Fact.Services.Examples, ", ")

		platforms := make([]PlatformView, len(m.Fact.Platforms))
		for i, p := range m.Fact.Platforms {
			platforms[i] = PlatformView{Name: p.Name, Scope: p.Scope, Languages: p.Languages}
		}

		return RentalRow{
			Country:   m.CountryName(lang),
			Flag:      m.Country.Flag,
			Region:    regionBadge(loc, lang, m.Country.Region),
			Legal:     legal,
			Services:  services,
			Platforms: platforms,
			Notes:     render.NotesCell(m.Fact.Notes.In(lang)),
		}
	}
}
