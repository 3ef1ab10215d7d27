package topics

import (
	"strconv"

	"pickandtip/backend/internal/config"
	"pickandtip/backend/internal/localization"
	"pickandtip/backend/internal/models"
	"pickandtip/backend/internal/pipeline"
	"pickandtip/backend/internal/render"
)

type hotspotMerged = models.Merged[models.HotspotRecord]

var licensingLevelLabels = map[string]models.LocalizedText{
	"minimal":      {FR: "Minimale", EN: "Minimal"},
	"registration": {FR: "Enregistrement", EN: "Registration"},
	"license":      {FR: "Licence", EN: "License"},
	"gray":         {FR: "Zone grise", EN: "Gray zone"},
}

var marketTypeLabels = map[string]models.LocalizedText{
	"urban":   {FR: "Urbain", EN: "Urban"},
	"coastal": {FR: "Côtier", EN: "Coastal"},
	"nature":  {FR: "Nature/Montagne", EN: "Nature/Mountain"},
}

// HotspotRow is the rendered representation of one city row of the
// vacation-rental-hotspots topic.
type HotspotRow struct {
	City           string       `json:"city"`
	Country        string       `json:"country"`
	Flag           string       `json:"flag"`
	MarketType     render.Badge `json:"marketType"`
	Profitability  string       `json:"profitability"`
	DayLimit       render.Badge `json:"dayLimit"`
	MonthlyRevenue string       `json:"monthlyRevenue"`
	Licensing      render.Badge `json:"licensing"`
	Notes          render.Notes `json:"notes"`
}

// averageRevenue is the midpoint of the published revenue range, the
// value the revenue filter and sort run on.
func averageRevenue(r models.MinMax) float64 {
	return (r.Min + r.Max) / 2
}

// dayLimitBadge classifies a city's yearly rental-day cap: 365 is
// unlimited, 0 is fully closed, a cap of 90 or fewer days is a short
// season.
func dayLimitBadge(limit int) render.Badge {
	var level, label string
	switch {
	case limit == 365:
		level, label = "unlimited", "∞"
	case limit == 0:
		level, label = "none", "0"
	case limit <= 90:
		level, label = "low", strconv.Itoa(limit)
	default:
		level, label = "standard", strconv.Itoa(limit)
	}
	return render.Badge{Label: label, Level: level, Color: config.DayLimitColors[level]}
}

// HotspotTable is the accessor table of the vacation-rental-hotspots
// topic. Cities sort by name, the profitability column by the mean
// projected profitability across property sizes.
func HotspotTable(loc *localization.Localizer) pipeline.Table[hotspotMerged] {
	return pipeline.Table[hotspotMerged]{
		DefaultColumn: "city",
		Columns: map[string]pipeline.Column[hotspotMerged]{
			"city":    {String: func(m hotspotMerged, lang string) string { return m.Fact.City.In(lang) }},
			"country": {String: func(m hotspotMerged, lang string) string { return m.CountryName(lang) }},
			"profitability": {Number: func(m hotspotMerged) float64 {
				return m.Fact.AverageProfitability()
			}},
			"licensing": {Number: func(m hotspotMerged) float64 {
				return float64(config.LicensingLevelRank[m.Fact.Licensing.Level])
			}},
			"revenue": {Number: func(m hotspotMerged) float64 {
				return averageRevenue(m.Fact.MonthlyRevenue)
			}},
		},
		SearchFields: []func(hotspotMerged, string) string{
			func(m hotspotMerged, lang string) string { return m.Fact.City.In(lang) },
			func(m hotspotMerged, lang string) string { return m.CountryName(lang) },
			func(m hotspotMerged, _ string) string { return m.Country.Name.FR },
			func(m hotspotMerged, _ string) string { return m.Country.Name.EN },
			func(m hotspotMerged, lang string) string { return loc.RegionLabel(lang, m.Country.Region) },
			func(m hotspotMerged, lang string) string { return m.Fact.Notes.In(lang) },
		},
		Categories: map[string]func(hotspotMerged) string{
			"region":    func(m hotspotMerged) string { return m.Country.Region },
			"market":    func(m hotspotMerged) string { return m.Fact.MarketType },
			"licensing": func(m hotspotMerged) string { return m.Fact.Licensing.Level },
		},
		Buckets: map[string]pipeline.Bucket[hotspotMerged]{
			"revenue": {
				Value: func(m hotspotMerged) float64 { return averageRevenue(m.Fact.MonthlyRevenue) },
				Levels: map[string]func(float64) bool{
					config.LevelLow:    func(v float64) bool { return v < config.HotspotRevenueLowMax },
					config.LevelMedium: func(v float64) bool { return v >= config.HotspotRevenueLowMax && v <= config.HotspotRevenueMediumMax },
					config.LevelHigh:   func(v float64) bool { return v > config.HotspotRevenueMediumMax },
				},
			},
		},
	}
}

// HotspotRowBuilder returns the row formatter for the active language.
func HotspotRowBuilder(loc *localization.Localizer, lang string) func(hotspotMerged) HotspotRow {
	return func(m hotspotMerged) HotspotRow {
		licensing := levelBadge(m.Fact.Licensing.Level, lang, licensingLevelLabels, config.LicensingLevelColors)
		licensing.Tooltip = m.Fact.Licensing.Notes.In(lang)

		profitability := ""
		if avg := m.Fact.AverageProfitability(); avg > 0 {
			profitability = strconv.FormatFloat(avg, 'f', 1, 64) + "%"
		}

		return HotspotRow{
			City:    m.Fact.City.In(lang),
			Country: m.CountryName(lang),
			Flag:    m.Country.Flag,
			MarketType: render.Badge{
				Label: marketTypeLabels[m.Fact.MarketType].In(lang),
				Level: m.Fact.MarketType,
			},
			Profitability:  profitability,
			DayLimit:       dayLimitBadge(m.Fact.DayLimit),
			MonthlyRevenue: render.Range(m.Fact.MonthlyRevenue.Min, m.Fact.MonthlyRevenue.Max),
			Licensing:      licensing,
			Notes:          render.NotesCell(m.Fact.Notes.In(lang)),
		}
	}
}
