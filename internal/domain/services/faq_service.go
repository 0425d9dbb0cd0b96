package services

import (
	"errors"

	"gorm.io/gorm"

	"esweb-http-service/internal/error/apperrors"
	"esweb-http-service/internal/error/code"
	"esweb-http-service/internal/domain/models"
	"esweb-http-service/internal/infrastructure/config"
)

// InterfaceFAQService defines the FAQ service
type InterfaceFAQService interface {
	GetAllFAQs() ([]models.FAQ, error)
	GetFAQByID(id uint) (*models.FAQ, error)
	CreateFAQ(faq *models.FAQ) error
	UpdateFAQ(id uint, faq *models.FAQ) (*models.FAQ, error)
	DeleteFAQ(id uint) error
}

// FAQService provides FAQ management
type FAQService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewFAQService creates a new FAQ service
func NewFAQService(db *gorm.DB, cfg *config.Config) InterfaceFAQService {
	return &FAQService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllFAQs returns all FAQs
func (s *FAQService) GetAllFAQs() ([]models.FAQ, error) {
	var faqs []models.FAQ
	if err := s.DB.Find(&faqs).Error; err != nil {
		return nil, apperrors.Wrap(code.ErrDatabase, err)
	}
	return faqs, nil
}

// 2. GetFAQByID fetches one FAQ
func (s *FAQService) GetFAQByID(id uint) (*models.FAQ, error) {
	var faq models.FAQ
	if err := s.DB.First(&faq, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(code.ErrFAQNotFound)
		}
		return nil, apperrors.Wrap(code.ErrDatabase, err)
	}
	return &faq, nil
}

// 3. CreateFAQ inserts a new FAQ
func (s *FAQService) CreateFAQ(faq *models.FAQ) error {
	faq.ID = 0
	if err := s.DB.Create(faq).Error; err != nil {
		return apperrors.Wrap(code.ErrDatabase, err)
	}
	return nil
}

// 4. UpdateFAQ replaces the content of an existing FAQ
func (s *FAQService) UpdateFAQ(id uint, faq *models.FAQ) (*models.FAQ, error) {
	existing, err := s.GetFAQByID(id)
	if err != nil {
		return nil, err
	}

	existing.Question = faq.Question
	existing.Answer = faq.Answer
	existing.Category = faq.Category

	if err := s.DB.Save(existing).Error; err != nil {
		return nil, apperrors.Wrap(code.ErrDatabase, err)
	}
	return existing, nil
}

// 5. DeleteFAQ removes a FAQ
func (s *FAQService) DeleteFAQ(id uint) error {
	result := s.DB.Delete(&models.FAQ{}, id)
	if result.Error != nil {
		return apperrors.Wrap(code.ErrDatabase, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.New(code.ErrFAQNotFound)
	}
	return nil
}
