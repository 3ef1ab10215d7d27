package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pickandtip/backend/internal/api/handler"
	"pickandtip/backend/internal/dataset"
	"pickandtip/backend/internal/livehub"
	"pickandtip/backend/internal/localization"
	"pickandtip/backend/internal/models"
)

var testSecret = []byte("test-secret")

var testDatasets = map[string]string{
	"countries/countries.json": `[
		{"code": "FR", "name": {"fr": "France", "en": "France"}, "flag": "🇫🇷", "region": "europe"},
		{"code": "AE", "name": {"fr": "Émirats arabes unis", "en": "United Arab Emirates"}, "flag": "🇦🇪", "region": "middleEast"}
	]`,
	"topics/property-taxes.json": `[
		{"countryCode": "FR", "propertyTax": "0.5-1.5%", "propertyTaxValue": 1.0, "transferTax": "5-6%", "transferTaxValue": 5.8, "notes": {"fr": "Taxe foncière annuelle.", "en": "Annual property tax."}},
		{"countryCode": "AE", "propertyTax": "0%", "propertyTaxValue": 0, "transferTax": "4%", "transferTaxValue": 4, "notes": {"fr": "Aucune taxe annuelle.", "en": "No annual tax."}}
	]`,
	"topics/vat.json": `{
		"lastUpdated": "2025-01",
		"countries": [
			{"countryCode": "FR", "standardRate": 20, "reducedRates": [5.5, 10], "notes": {"fr": "", "en": ""}},
			{"countryCode": "AE", "standardRate": 5, "reducedRates": [0], "notes": {"fr": "", "en": ""}}
		]
	}`,
	"topics/vacation-rental-business.json": `{
		"countries": [
			{"countryCode": "FR", "legalFramework": {"level": "moderate", "details": {"fr": "Enregistrement en mairie.", "en": "Town-hall registration."}}, "services": {"level": "professional", "examples": ["GuestReady"]}, "platforms": [], "notes": {"fr": "", "en": ""}}
		]
	}`,
	"topics/vacation-rental-hotspots.json": `{
		"cities": [
			{"countryCode": "FR", "city": {"fr": "Nice", "en": "Nice"}, "marketType": "coastal", "dayLimit": 120, "monthlyRevenue": {"min": 1800, "max": 3200}, "profitability": {"profitabilityBySize": {"50m2": {"profitability": 6.2}}}, "licensing": {"level": "registration", "notes": {"fr": "", "en": ""}}, "notes": {"fr": "", "en": ""}}
		]
	}`,
	"topics/parking-markets.json": `{
		"markets": [
			{"countryCode": "FR", "kind": "garage", "legal": {"fr": "Propriété pleine.", "en": "Full ownership."}, "profitability": {"prices": {"min": 15000, "max": 45000}, "yields": {"longTerm": {"min": 4, "max": 7}, "shortTerm": {"min": 6, "max": 10}}, "marketLiquidityValue": 4}, "notes": {"fr": "", "en": ""}}
		]
	}`,
	"topics/shopping-list.json": `{
		"items": [
			{"name": {"fr": "Riz complet", "en": "Brown rice"}, "category": "grains", "unitPrice": 1.8, "weeklyBudget": 1.2, "proteinPer100g": 7.5}
		]
	}`,
}

func writeTestData(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for path, content := range testDatasets {
		full := filepath.Join(dir, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return dir
}

func testLocalizer() *localization.Localizer {
	return localization.NewLocalizerFromDictionaries(map[string]map[string]interface{}{
		"fr": {
			"regions": map[string]interface{}{"europe": "Europe", "middleEast": "Moyen-Orient"},
		},
		"en": {
			"regions": map[string]interface{}{"europe": "Europe", "middleEast": "Middle East"},
		},
	})
}

func newTestHandler(t *testing.T, storageMock *MockStorage) (*handler.Handler, *livehub.ManagerService) {
	t.Helper()
	loader := dataset.NewLoader(writeTestData(t))
	store := dataset.NewStore()
	require.NoError(t, store.Reload(loader))

	hub := livehub.NewManagerService()
	return handler.NewHandler(store, loader, testLocalizer(), storageMock, hub, nil, testSecret), hub
}

func newRouter(h *handler.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/anonid", h.GetAnonID)
	r.GET("/api/countries", h.GetCountries)
	r.GET("/api/i18n/:lang", h.GetDictionary)
	r.GET("/api/stats", h.GetStats)
	r.GET("/api/topics/:topic", h.GetTopicRows)
	r.POST("/api/contact", h.PostContact)
	r.GET("/api/preferences/language", h.GetLanguagePreference)
	r.PUT("/api/preferences/language", h.PutLanguagePreference)
	r.POST("/api/admin/reload", h.PostReload)
	return r
}

func do(r *gin.Engine, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestGetAnonIDIssuesToken(t *testing.T) {
	h, _ := newTestHandler(t, new(MockStorage))
	r := newRouter(h)

	w := do(r, http.MethodGet, "/api/anonid", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.NotEmpty(t, body["anon_id"])
	assert.NotEmpty(t, body["token"])
}

func TestAnonTokenRoundTripsThroughPreferences(t *testing.T) {
	storageMock := new(MockStorage)
	h, _ := newTestHandler(t, storageMock)
	r := newRouter(h)

	issued := decode(t, do(r, http.MethodGet, "/api/anonid", nil, nil))
	anonID := issued["anon_id"].(string)
	storageMock.On("GetLanguagePreference", anonID).Return("en", nil)

	w := do(r, http.MethodGet, "/api/preferences/language", nil, bearer(issued["token"].(string)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "en", decode(t, w)["lang"])
}

func TestGetLanguagePreferenceRequiresBearer(t *testing.T) {
	h, _ := newTestHandler(t, new(MockStorage))
	r := newRouter(h)

	w := do(r, http.MethodGet, "/api/preferences/language", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetLanguagePreferenceDefaultsToFrench(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("GetLanguagePreference", mock.AnythingOfType("string")).Return("", nil)
	h, _ := newTestHandler(t, storageMock)
	r := newRouter(h)

	token := signToken(t, jwt.MapClaims{"anon_id": "visitor-1", "exp": time.Now().Add(time.Hour).Unix()})
	w := do(r, http.MethodGet, "/api/preferences/language", nil, bearer(token))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fr", decode(t, w)["lang"])
}

func TestPutLanguagePreference(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("SetLanguagePreference", "visitor-1", "en").Return(nil)
	h, _ := newTestHandler(t, storageMock)
	r := newRouter(h)

	token := signToken(t, jwt.MapClaims{"anon_id": "visitor-1", "exp": time.Now().Add(time.Hour).Unix()})
	w := do(r, http.MethodPut, "/api/preferences/language", []byte(`{"lang": "en"}`), bearer(token))

	require.Equal(t, http.StatusOK, w.Code)
	storageMock.AssertCalled(t, "SetLanguagePreference", "visitor-1", "en")
}

func TestPutLanguagePreferenceRejectsUnknownLanguage(t *testing.T) {
	h, _ := newTestHandler(t, new(MockStorage))
	r := newRouter(h)

	token := signToken(t, jwt.MapClaims{"anon_id": "visitor-1", "exp": time.Now().Add(time.Hour).Unix()})
	w := do(r, http.MethodPut, "/api/preferences/language", []byte(`{"lang": "de"}`), bearer(token))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTopicRowsPropertyTaxes(t *testing.T) {
	h, _ := newTestHandler(t, new(MockStorage))
	r := newRouter(h)

	w := do(r, http.MethodGet, "/api/topics/property-taxes?lang=en&sort=propertyTax&dir=desc", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "property-taxes", body["topic"])
	assert.Equal(t, "en", body["lang"])

	rows := body["rows"].([]interface{})
	require.Len(t, rows, 2)
	first := rows[0].(map[string]interface{})
	assert.Equal(t, "France", first["country"])

	summary := body["summary"].(map[string]interface{})
	assert.Equal(t, "2", summary["count"])
	assert.Equal(t, false, summary["noResults"])
}

func TestGetTopicRowsAppliesFilters(t *testing.T) {
	h, _ := newTestHandler(t, new(MockStorage))
	r := newRouter(h)

	w := do(r, http.MethodGet, "/api/topics/property-taxes?level=none", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	rows := body["rows"].([]interface{})
	require.Len(t, rows, 1)
	assert.Equal(t, "Émirats arabes unis", rows[0].(map[string]interface{})["country"])
}

func TestGetTopicRowsNoResultsSummary(t *testing.T) {
	h, _ := newTestHandler(t, new(MockStorage))
	r := newRouter(h)

	w := do(r, http.MethodGet, "/api/topics/property-taxes?q=atlantis", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Empty(t, body["rows"])
	summary := body["summary"].(map[string]interface{})
	assert.Equal(t, "0", summary["count"])
	assert.Equal(t, true, summary["noResults"])
}

func TestGetTopicRowsServesEveryTopic(t *testing.T) {
	h, _ := newTestHandler(t, new(MockStorage))
	r := newRouter(h)

	for _, topic := range []string{
		"property-taxes", "vat", "vacation-rental-business",
		"vacation-rental-hotspots", "parking-markets", "shopping-list",
	} {
		w := do(r, http.MethodGet, "/api/topics/"+topic, nil, nil)
		assert.Equalf(t, http.StatusOK, w.Code, "topic %s", topic)
	}
}

func TestGetTopicRowsUnknownTopic(t *testing.T) {
	h, _ := newTestHandler(t, new(MockStorage))
	r := newRouter(h)

	w := do(r, http.MethodGet, "/api/topics/crypto", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTopicRowsReportsLastUpdated(t *testing.T) {
	h, _ := newTestHandler(t, new(MockStorage))
	r := newRouter(h)

	w := do(r, http.MethodGet, "/api/topics/vat", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-01", decode(t, w)["lastUpdated"])
}

func TestGetCountries(t *testing.T) {
	h, _ := newTestHandler(t, new(MockStorage))
	r := newRouter(h)

	w := do(r, http.MethodGet, "/api/countries", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var countries []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &countries))
	assert.Len(t, countries, 2)
}

func TestGetDictionary(t *testing.T) {
	h, _ := newTestHandler(t, new(MockStorage))
	r := newRouter(h)

	w := do(r, http.MethodGet, "/api/i18n/fr", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w), "regions")

	w = do(r, http.MethodGet, "/api/i18n/de", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStats(t *testing.T) {
	h, _ := newTestHandler(t, new(MockStorage))
	r := newRouter(h)

	w := do(r, http.MethodGet, "/api/stats", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(2), body["countries"])
	assert.Equal(t, float64(1), body["noTax"])
}

func TestPostContactPersistsSubmission(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("AllowContact", mock.AnythingOfType("string")).Return(true, nil)
	storageMock.On("SaveSubmission", mock.MatchedBy(func(sub *models.ContactSubmission) bool {
		return sub.Name == "Jean Dupont" &&
			sub.Email == "jean@example.com" &&
			sub.Language == "fr" &&
			len(sub.Topics) == 1
	})).Return(nil)
	h, _ := newTestHandler(t, storageMock)
	r := newRouter(h)

	payload := `{
		"name": "  Jean Dupont ",
		"email": "jean@example.com",
		"subject": "Question fiscalité",
		"message": "Bonjour, une question sur le Portugal.",
		"topics": ["property-taxes"],
		"lang": "fr"
	}`
	w := do(r, http.MethodPost, "/api/contact", []byte(payload), nil)

	require.Equal(t, http.StatusCreated, w.Code)
	storageMock.AssertExpectations(t)
}

func TestPostContactRejectsIncompleteForm(t *testing.T) {
	h, _ := newTestHandler(t, new(MockStorage))
	r := newRouter(h)

	w := do(r, http.MethodPost, "/api/contact", []byte(`{"name": "Jean"}`), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/contact",
		[]byte(`{"name": "Jean", "email": "not-an-email", "subject": "s", "message": "m"}`), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostContactRejectsOversizedMessage(t *testing.T) {
	h, _ := newTestHandler(t, new(MockStorage))
	r := newRouter(h)

	payload, err := json.Marshal(map[string]interface{}{
		"name":    "Jean",
		"email":   "jean@example.com",
		"subject": "s",
		"message": strings.Repeat("x", 4001),
	})
	require.NoError(t, err)

	w := do(r, http.MethodPost, "/api/contact", payload, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostContactRateLimited(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("AllowContact", mock.AnythingOfType("string")).Return(false, nil)
	h, _ := newTestHandler(t, storageMock)
	r := newRouter(h)

	payload := `{"name": "Jean", "email": "jean@example.com", "subject": "s", "message": "m"}`
	w := do(r, http.MethodPost, "/api/contact", []byte(payload), nil)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	storageMock.AssertNotCalled(t, "SaveSubmission", mock.Anything)
}

func TestPostReloadRequiresAdminRole(t *testing.T) {
	h, _ := newTestHandler(t, new(MockStorage))
	r := newRouter(h)

	w := do(r, http.MethodPost, "/api/admin/reload", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	anon := signToken(t, jwt.MapClaims{"anon_id": "visitor-1", "exp": time.Now().Add(time.Hour).Unix()})
	w = do(r, http.MethodPost, "/api/admin/reload", nil, bearer(anon))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPostReloadBroadcastsLiveEvent(t *testing.T) {
	h, hub := newTestHandler(t, new(MockStorage))
	r := newRouter(h)

	admin := signToken(t, jwt.MapClaims{"role": "admin", "exp": time.Now().Add(time.Hour).Unix()})
	w := do(r, http.MethodPost, "/api/admin/reload", nil, bearer(admin))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "reloaded", decode(t, w)["status"])

	select {
	case event := <-hub.BroadcastCh:
		assert.Equal(t, "dataset_reloaded", event.Type)
		assert.Equal(t, "all", event.Topic)
	default:
		t.Fatal("expected a broadcast event")
	}
}
