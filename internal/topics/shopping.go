package topics

import (
	"strconv"

	"pickandtip/backend/internal/localization"
	"pickandtip/backend/internal/models"
	"pickandtip/backend/internal/pipeline"
)

// ShoppingRow is the rendered representation of one shopping-list row of
// the budget-eating guide.
type ShoppingRow struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	UnitPrice    string `json:"unitPrice"`
	WeeklyBudget string `json:"weeklyBudget"`
	Protein      string `json:"protein"`
}

// ShoppingTable is the accessor table of the shopping-list tab. It is the
// one topic with no country join, so the pipeline runs on the bare items.
func ShoppingTable(_ *localization.Localizer) pipeline.Table[models.ShoppingItem] {
	return pipeline.Table[models.ShoppingItem]{
		DefaultColumn: "name",
		Columns: map[string]pipeline.Column[models.ShoppingItem]{
			"name": {String: func(item models.ShoppingItem, lang string) string { return item.Name.In(lang) }},
			"unitPrice": {Number: func(item models.ShoppingItem) float64 {
				return item.UnitPrice
			}},
			"weeklyBudget": {Number: func(item models.ShoppingItem) float64 {
				return item.WeeklyBudget
			}},
			"protein": {Number: func(item models.ShoppingItem) float64 {
				return item.ProteinPer100
			}},
		},
		SearchFields: []func(models.ShoppingItem, string) string{
			func(item models.ShoppingItem, _ string) string { return item.Name.FR },
			func(item models.ShoppingItem, _ string) string { return item.Name.EN },
		},
		Categories: map[string]func(models.ShoppingItem) string{
			"category": func(item models.ShoppingItem) string { return item.Category },
		},
	}
}

// ShoppingRowBuilder returns the row formatter for the active language.
func ShoppingRowBuilder(_ *localization.Localizer, lang string) func(models.ShoppingItem) ShoppingRow {
	return func(item models.ShoppingItem) ShoppingRow {
		return ShoppingRow{
			Name:         item.Name.In(lang),
			Category:     item.Category,
			UnitPrice:    "€" + strconv.FormatFloat(item.UnitPrice, 'f', 2, 64),
			WeeklyBudget: "€" + strconv.FormatFloat(item.WeeklyBudget, 'f', 2, 64),
			Protein:      strconv.FormatFloat(item.ProteinPer100, 'f', 1, 64) + "g",
		}
	}
}
