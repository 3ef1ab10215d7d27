package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"pickandtip/backend/internal/config"
	"pickandtip/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Storage interface {
	SaveSubmission(sub *models.ContactSubmission) error
	GetSubmissions(status string) ([]models.ContactSubmission, error)
	GetSubmissionByID(id string) (*models.ContactSubmission, error)
	MarkSubmission(id, status string) error

	SetLanguagePreference(anonID, lang string) error
	GetLanguagePreference(anonID string) (string, error)

	AllowContact(clientKey string) (bool, error)
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// SaveSubmission persists a completed contact form in PostgreSQL.
func (s *Service) SaveSubmission(sub *models.ContactSubmission) error {
	if sub.Status == "" {
		sub.Status = "new"
	}

	if err := s.DB.Create(sub).Error; err != nil {
		log.Printf("ERROR: Failed to save contact submission from %s: %v", sub.Email, err)
		return err
	}

	return nil
}

// GetSubmissions returns contact submissions, newest first. An empty
// status returns all of them.
func (s *Service) GetSubmissions(status string) ([]models.ContactSubmission, error) {
	var subs []models.ContactSubmission

	query := s.DB.Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&subs).Error; err != nil {
		log.Printf("ERROR: Failed to list contact submissions: %v", err)
		return nil, err
	}
	return subs, nil
}

// GetSubmissionByID returns one submission, nil without error when the ID
// is unknown.
func (s *Service) GetSubmissionByID(id string) (*models.ContactSubmission, error) {
	var sub models.ContactSubmission

	err := s.DB.Where("id = ?", id).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// MarkSubmission updates a submission's review status.
func (s *Service) MarkSubmission(id, status string) error {
	result := s.DB.Model(&models.ContactSubmission{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("submission %s not found", id)
	}
	return nil
}

// SetLanguagePreference stores the visitor's two-letter language tag in
// Redis, keyed by their anonymous ID. This is the durable counterpart of
// the browser's local preference.
func (s *Service) SetLanguagePreference(anonID, lang string) error {
	key := "lang:" + anonID
	return s.Redis.Set(s.Ctx, key, lang, 0).Err()
}

// GetLanguagePreference reads the stored language tag; an empty string
// means no preference was ever saved.
func (s *Service) GetLanguagePreference(anonID string) (string, error) {
	key := "lang:" + anonID
	lang, err := s.Redis.Get(s.Ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return lang, nil
}

// AllowContact rate-limits contact submissions per client key using a
// one-hour Redis counter.
func (s *Service) AllowContact(clientKey string) (bool, error) {
	key := "contact_rate:" + clientKey

	count, err := s.Redis.Incr(s.Ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := s.Redis.Expire(s.Ctx, key, time.Hour).Err(); err != nil {
			return false, err
		}
	}

	return count <= config.ContactRateLimitPerHour, nil
}
