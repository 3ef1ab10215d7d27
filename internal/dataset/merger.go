package dataset

import (
	"log"

	"pickandtip/backend/internal/models"
)

// Merge joins topic fact records to the country reference set by country
// code. Facts whose code has no match are excluded from the output and
// returned as diagnostics; one bad code never aborts the rest of the
// dataset. Output order is fact order minus the removed entries, and the
// country fields of every merged record come verbatim from the reference
// side.
func Merge[F any](countries []models.Country, facts []F, code func(F) string) ([]models.Merged[F], []string) {
	index := make(map[string]models.Country, len(countries))
	for _, c := range countries {
		index[c.Code] = c
	}

	merged := make([]models.Merged[F], 0, len(facts))
	var missing []string
	for _, fact := range facts {
		c, ok := index[code(fact)]
		if !ok {
			missing = append(missing, code(fact))
			continue
		}
		merged = append(merged, models.Merged[F]{Fact: fact, Country: c})
	}

	for _, m := range missing {
		log.Printf("WARN: Country not found for code: %s", m)
	}

	return merged, missing
}
