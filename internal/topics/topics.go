// Package topics binds each published topic to the generic pipeline: per
// topic, the accessor table (columns, search fields, filters) and the row
// builder that shapes records for the frontend. The bucket cut points and
// level labels here are topic editorial constants, they are not runtime
// configuration.
package topics

import (
	"pickandtip/backend/internal/localization"
	"pickandtip/backend/internal/models"
	"pickandtip/backend/internal/render"
)

// regionBadge renders a country's region as a translated badge. Level
// carries the raw region tag for CSS class derivation on the client.
func regionBadge(loc *localization.Localizer, lang, region string) render.Badge {
	return render.Badge{
		Label: loc.RegionLabel(lang, region),
		Level: region,
	}
}

// levelBadge renders a classification level with its published label map
// and color map.
func levelBadge(level, lang string, labels map[string]models.LocalizedText, colors map[string]string) render.Badge {
	return render.Badge{
		Label: labels[level].In(lang),
		Level: level,
		Color: colors[level],
	}
}
