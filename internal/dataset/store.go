package dataset

import (
	"log"
	"sync"

	"pickandtip/backend/internal/config"
	"pickandtip/backend/internal/models"
)

// Store holds the merged record set of every topic in memory. A load
// either succeeds for all topics or fails as a whole; Reload swaps the
// previous snapshot atomically and keeps it when the new load fails.
type Store struct {
	mu sync.RWMutex

	countries []models.Country
	taxes     []models.Merged[models.TaxRecord]
	vat       []models.Merged[models.VatRecord]
	rentals   []models.Merged[models.RentalRecord]
	hotspots  []models.Merged[models.HotspotRecord]
	parking   []models.Merged[models.ParkingRecord]
	shopping  []models.ShoppingItem

	lastUpdated map[string]string
	unmatched   map[string][]string
}

// NewStore returns an empty Store. Call Reload before serving.
func NewStore() *Store {
	return &Store{
		lastUpdated: make(map[string]string),
		unmatched:   make(map[string][]string),
	}
}

// snapshot is one fully loaded and merged generation of all datasets.
type snapshot struct {
	countries   []models.Country
	taxes       []models.Merged[models.TaxRecord]
	vat         []models.Merged[models.VatRecord]
	rentals     []models.Merged[models.RentalRecord]
	hotspots    []models.Merged[models.HotspotRecord]
	parking     []models.Merged[models.ParkingRecord]
	shopping    []models.ShoppingItem
	lastUpdated map[string]string
	unmatched   map[string][]string
}

func load(l *Loader) (*snapshot, error) {
	countries, err := l.Countries()
	if err != nil {
		return nil, err
	}

	snap := &snapshot{
		countries:   countries,
		lastUpdated: make(map[string]string),
		unmatched:   make(map[string][]string),
	}

	taxes, updated, err := LoadTopic[models.TaxRecord](l, config.TopicPropertyTaxes)
	if err != nil {
		return nil, err
	}
	snap.taxes, snap.unmatched[config.TopicPropertyTaxes] = Merge(countries, taxes,
		func(r models.TaxRecord) string { return r.CountryCode })
	snap.lastUpdated[config.TopicPropertyTaxes] = updated

	vat, updated, err := LoadTopic[models.VatRecord](l, config.TopicVat)
	if err != nil {
		return nil, err
	}
	snap.vat, snap.unmatched[config.TopicVat] = Merge(countries, vat,
		func(r models.VatRecord) string { return r.CountryCode })
	snap.lastUpdated[config.TopicVat] = updated

	rentals, updated, err := LoadTopic[models.RentalRecord](l, config.TopicVacationRentalBusiness)
	if err != nil {
		return nil, err
	}
	snap.rentals, snap.unmatched[config.TopicVacationRentalBusiness] = Merge(countries, rentals,
		func(r models.RentalRecord) string { return r.CountryCode })
	snap.lastUpdated[config.TopicVacationRentalBusiness] = updated

	hotspots, updated, err := LoadTopic[models.HotspotRecord](l, config.TopicVacationRentalHotspots)
	if err != nil {
		return nil, err
	}
	snap.hotspots, snap.unmatched[config.TopicVacationRentalHotspots] = Merge(countries, hotspots,
		func(r models.HotspotRecord) string { return r.CountryCode })
	snap.lastUpdated[config.TopicVacationRentalHotspots] = updated

	parking, updated, err := LoadTopic[models.ParkingRecord](l, config.TopicParkingMarkets)
	if err != nil {
		return nil, err
	}
	snap.parking, snap.unmatched[config.TopicParkingMarkets] = Merge(countries, parking,
		func(r models.ParkingRecord) string { return r.CountryCode })
	snap.lastUpdated[config.TopicParkingMarkets] = updated

	// Shopping list rows are not keyed by country, so no merge.
	shopping, updated, err := LoadTopic[models.ShoppingItem](l, config.TopicShoppingList)
	if err != nil {
		return nil, err
	}
	snap.shopping = shopping
	snap.lastUpdated[config.TopicShoppingList] = updated

	return snap, nil
}

// Reload loads every dataset from the Loader and replaces the current
// snapshot. On failure the store keeps serving the previous generation.
func (s *Store) Reload(l *Loader) error {
	snap, err := load(l)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.countries = snap.countries
	s.taxes = snap.taxes
	s.vat = snap.vat
	s.rentals = snap.rentals
	s.hotspots = snap.hotspots
	s.parking = snap.parking
	s.shopping = snap.shopping
	s.lastUpdated = snap.lastUpdated
	s.unmatched = snap.unmatched
	s.mu.Unlock()

	total := 0
	for _, codes := range snap.unmatched {
		total += len(codes)
	}
	log.Printf("INFO: Datasets loaded: %d countries, %d records dropped for unmatched codes.",
		len(snap.countries), total)
	return nil
}

// Countries returns the country reference set.
func (s *Store) Countries() []models.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countries
}

// LastUpdated returns the publication month of a topic's dataset.
func (s *Store) LastUpdated(topic string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated[topic]
}

// UnmatchedCodes returns the country codes a topic's merge dropped. The
// omission is surfaced here and in the logs, never to end users.
func (s *Store) UnmatchedCodes(topic string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unmatched[topic]
}

// PropertyTaxes returns the merged property-tax record set.
func (s *Store) PropertyTaxes() []models.Merged[models.TaxRecord] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taxes
}

// Vat returns the merged VAT record set.
func (s *Store) Vat() []models.Merged[models.VatRecord] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vat
}

// Rentals returns the merged vacation-rental-business record set.
func (s *Store) Rentals() []models.Merged[models.RentalRecord] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rentals
}

// Hotspots returns the merged vacation-rental-hotspot record set.
func (s *Store) Hotspots() []models.Merged[models.HotspotRecord] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hotspots
}

// Parking returns the merged parking-market record set.
func (s *Store) Parking() []models.Merged[models.ParkingRecord] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parking
}

// ShoppingList returns the shopping-list rows.
func (s *Store) ShoppingList() []models.ShoppingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shopping
}
