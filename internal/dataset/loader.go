// Package dataset owns the data boundary of the application: parsing the
// published JSON documents, joining topic facts with the country reference
// set, and holding the merged record sets in memory.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pickandtip/backend/internal/models"
)

// Loader reads the published datasets from a directory laid out as the
// static site expects it:
//
//	<dir>/countries/countries.json
//	<dir>/topics/<topic>.json
//	<dir>/i18n/<lang>.json
type Loader struct {
	Dir string
}

// NewLoader returns a Loader rooted at the given data directory.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// I18nDir is the directory holding the per-language dictionaries.
func (l *Loader) I18nDir() string {
	return filepath.Join(l.Dir, "i18n")
}

// Countries loads the country reference set.
func (l *Loader) Countries() ([]models.Country, error) {
	data, err := os.ReadFile(filepath.Join(l.Dir, "countries", "countries.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read countries dataset: %w", err)
	}

	var countries []models.Country
	if err := json.Unmarshal(data, &countries); err != nil {
		return nil, fmt.Errorf("failed to parse countries dataset: %w", err)
	}
	return countries, nil
}

// document is the envelope some topic datasets use instead of a bare
// array. Exactly one wrapper key is populated per document.
type document[F any] struct {
	LastUpdated string `json:"lastUpdated"`
	Countries   []F    `json:"countries"`
	Cities      []F    `json:"cities"`
	Markets     []F    `json:"markets"`
	Items       []F    `json:"items"`
}

func (d document[F]) records() []F {
	switch {
	case d.Countries != nil:
		return d.Countries
	case d.Cities != nil:
		return d.Cities
	case d.Markets != nil:
		return d.Markets
	case d.Items != nil:
		return d.Items
	}
	return nil
}

// DecodeTopic parses a topic document that is either a bare array of
// records or a {countries|cities|markets|items: [...]} wrapper with an
// optional lastUpdated ("YYYY-MM") field.
func DecodeTopic[F any](data []byte) ([]F, string, error) {
	var bare []F
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare, "", nil
	}

	var doc document[F]
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, "", fmt.Errorf("failed to parse topic document: %w", err)
	}
	records := doc.records()
	if records == nil {
		return nil, "", fmt.Errorf("topic document has no recognized wrapper key")
	}
	return records, doc.LastUpdated, nil
}

// LoadTopic reads and decodes the dataset of one topic. Any read or parse
// failure fails the whole call; there is no partial result and no retry.
func LoadTopic[F any](l *Loader, topic string) ([]F, string, error) {
	data, err := os.ReadFile(filepath.Join(l.Dir, "topics", topic+".json"))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read dataset for topic %s: %w", topic, err)
	}

	records, lastUpdated, err := DecodeTopic[F](data)
	if err != nil {
		return nil, "", fmt.Errorf("topic %s: %w", topic, err)
	}
	return records, lastUpdated, nil
}
