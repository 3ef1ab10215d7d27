package handler_test

import (
	"pickandtip/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveSubmission(sub *models.ContactSubmission) error {
	args := m.Called(sub)
	return args.Error(0)
}

func (m *MockStorage) GetSubmissions(status string) ([]models.ContactSubmission, error) {
	args := m.Called(status)
	return args.Get(0).([]models.ContactSubmission), args.Error(1)
}

func (m *MockStorage) GetSubmissionByID(id string) (*models.ContactSubmission, error) {
	args := m.Called(id)
	sub, _ := args.Get(0).(*models.ContactSubmission)
	return sub, args.Error(1)
}

func (m *MockStorage) MarkSubmission(id, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockStorage) SetLanguagePreference(anonID, lang string) error {
	args := m.Called(anonID, lang)
	return args.Error(0)
}

func (m *MockStorage) GetLanguagePreference(anonID string) (string, error) {
	args := m.Called(anonID)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) AllowContact(clientKey string) (bool, error) {
	args := m.Called(clientKey)
	return args.Bool(0), args.Error(1)
}
