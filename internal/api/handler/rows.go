package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pickandtip/backend/internal/config"
	"pickandtip/backend/internal/localization"
	"pickandtip/backend/internal/models"
	"pickandtip/backend/internal/pipeline"
	"pickandtip/backend/internal/render"
	"pickandtip/backend/internal/topics"
)

// requestLang is the display language of a request, defaulting to French.
func requestLang(c *gin.Context) string {
	lang := c.Query("lang")
	if lang != "fr" && lang != "en" {
		return localization.DefaultLanguage
	}
	return lang
}

// filterStateFrom reads the query parameters the topic's table declares:
// q for free text plus one parameter per categorical and bucket filter.
func filterStateFrom[T any](c *gin.Context, table pipeline.Table[T]) models.FilterState {
	state := models.FilterState{
		Query:      c.Query("q"),
		Categories: make(map[string]string),
		Buckets:    make(map[string]string),
	}
	for name := range table.Categories {
		state.Categories[name] = c.Query(name)
	}
	for name := range table.Buckets {
		state.Buckets[name] = c.Query(name)
	}
	return state
}

// serveTopic runs one topic's records through the pipeline and renders
// the result. It replaces the whole displayed set on every call; the
// client swaps rows, it never patches them.
func serveTopic[T, R any](c *gin.Context, topic, lastUpdated string,
	records []T, table pipeline.Table[T], build func(T) R) {
	lang := requestLang(c)
	filter := filterStateFrom(c, table)
	sortState := models.SortState{
		Column:    c.DefaultQuery("sort", table.DefaultColumn),
		Direction: c.DefaultQuery("dir", "asc"),
	}

	filtered := pipeline.Apply(records, table, filter, sortState, lang)
	rows := render.Rows(filtered, build)

	c.JSON(http.StatusOK, gin.H{
		"topic":       topic,
		"lang":        lang,
		"lastUpdated": lastUpdated,
		"rows":        rows,
		"summary":     render.Summarize(len(rows)),
	})
}

// GetTopicRows serves the filtered, sorted, rendered rows of any topic.
func (h *Handler) GetTopicRows(c *gin.Context) {
	topic := c.Param("topic")
	lang := requestLang(c)
	lastUpdated := h.Store.LastUpdated(topic)

	switch topic {
	case config.TopicPropertyTaxes:
		serveTopic(c, topic, lastUpdated, h.Store.PropertyTaxes(),
			topics.PropertyTaxTable(h.Localizer), topics.TaxRowBuilder(h.Localizer, lang))
	case config.TopicVat:
		serveTopic(c, topic, lastUpdated, h.Store.Vat(),
			topics.VatTable(h.Localizer), topics.VatRowBuilder(h.Localizer, lang))
	case config.TopicVacationRentalBusiness:
		serveTopic(c, topic, lastUpdated, h.Store.Rentals(),
			topics.RentalTable(h.Localizer), topics.RentalRowBuilder(h.Localizer, lang))
	case config.TopicVacationRentalHotspots:
		serveTopic(c, topic, lastUpdated, h.Store.Hotspots(),
			topics.HotspotTable(h.Localizer), topics.HotspotRowBuilder(h.Localizer, lang))
	case config.TopicParkingMarkets:
		serveTopic(c, topic, lastUpdated, h.Store.Parking(),
			topics.ParkingTable(h.Localizer), topics.ParkingRowBuilder(h.Localizer, lang))
	case config.TopicShoppingList:
		serveTopic(c, topic, lastUpdated, h.Store.ShoppingList(),
			topics.ShoppingTable(h.Localizer), topics.ShoppingRowBuilder(h.Localizer, lang))
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown topic"})
	}
}

// GetCountries serves the country reference set.
func (h *Handler) GetCountries(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Countries())
}

// GetDictionary serves the raw nested translation dictionary of one
// language; the browser's token applicator substitutes from it.
func (h *Handler) GetDictionary(c *gin.Context) {
	lang := c.Param("lang")
	dict := h.Localizer.Dictionary(lang)
	if dict == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown language"})
		return
	}
	c.JSON(http.StatusOK, dict)
}

// GetStats serves the landing-page stat badges.
func (h *Handler) GetStats(c *gin.Context) {
	taxes := h.Store.PropertyTaxes()
	unmatched := len(h.Store.UnmatchedCodes(config.TopicPropertyTaxes))
	c.JSON(http.StatusOK, topics.ComputeTaxStats(taxes, unmatched))
}
