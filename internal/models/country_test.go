package models_test

import (
	"testing"

	"pickandtip/backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestLocalizedTextIn(t *testing.T) {
	text := models.LocalizedText{FR: "Espagne", EN: "Spain"}

	assert.Equal(t, "Espagne", text.In("fr"))
	assert.Equal(t, "Spain", text.In("en"))
}

func TestLocalizedTextUnknownLanguageFallsBackToFrench(t *testing.T) {
	text := models.LocalizedText{FR: "Espagne", EN: "Spain"}

	assert.Equal(t, "Espagne", text.In("de"))
	assert.Equal(t, "Espagne", text.In(""))
}

func TestLocalizedTextMissingVariants(t *testing.T) {
	frenchOnly := models.LocalizedText{FR: "Grèce"}
	assert.Equal(t, "Grèce", frenchOnly.In("en"))

	englishOnly := models.LocalizedText{EN: "Greece"}
	assert.Equal(t, "Greece", englishOnly.In("fr"))

	empty := models.LocalizedText{}
	assert.Empty(t, empty.In("fr"))
}

func TestMergedCountryName(t *testing.T) {
	m := models.Merged[models.TaxRecord]{
		Fact: models.TaxRecord{CountryCode: "ES"},
		Country: models.Country{
			Code: "ES",
			Name: models.LocalizedText{FR: "Espagne", EN: "Spain"},
		},
	}

	assert.Equal(t, "Espagne", m.CountryName("fr"))
	assert.Equal(t, "Spain", m.CountryName("en"))
}
