package services

import (
	"errors"

	"gorm.io/gorm"

	"esweb-http-service/internal/error/apperrors"
	"esweb-http-service/internal/error/code"
	"esweb-http-service/internal/domain/models"
	"esweb-http-service/internal/infrastructure/config"
)

// InterfaceLatestWorkService defines the portfolio service
type InterfaceLatestWorkService interface {
	GetAllWorks() ([]models.LatestWork, error)
	GetWorkByID(id uint) (*models.LatestWork, error)
	CreateWork(work *models.LatestWork) error
	UpdateWork(id uint, work *models.LatestWork) (*models.LatestWork, error)
	DeleteWork(id uint) error
}

// LatestWorkService provides "latest works" portfolio management
type LatestWorkService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewLatestWorkService creates a new latest-work service
func NewLatestWorkService(db *gorm.DB, cfg *config.Config) InterfaceLatestWorkService {
	return &LatestWorkService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllWorks returns all portfolio entries
func (s *LatestWorkService) GetAllWorks() ([]models.LatestWork, error) {
	var works []models.LatestWork
	if err := s.DB.Find(&works).Error; err != nil {
		return nil, apperrors.Wrap(code.ErrDatabase, err)
	}
	return works, nil
}

// 2. GetWorkByID fetches one portfolio entry
func (s *LatestWorkService) GetWorkByID(id uint) (*models.LatestWork, error) {
	var work models.LatestWork
	if err := s.DB.First(&work, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(code.ErrWorkNotFound)
		}
		return nil, apperrors.Wrap(code.ErrDatabase, err)
	}
	return &work, nil
}

// 3. CreateWork inserts a new portfolio entry
func (s *LatestWorkService) CreateWork(work *models.LatestWork) error {
	work.ID = 0
	if err := s.DB.Create(work).Error; err != nil {
		return apperrors.Wrap(code.ErrDatabase, err)
	}
	return nil
}

// 4. UpdateWork replaces the content of an existing portfolio entry
func (s *LatestWorkService) UpdateWork(id uint, work *models.LatestWork) (*models.LatestWork, error) {
	existing, err := s.GetWorkByID(id)
	if err != nil {
		return nil, err
	}

	existing.Title = work.Title
	existing.Link = work.Link
	existing.Thumbnail = work.Thumbnail
	existing.Category = work.Category

	if err := s.DB.Save(existing).Error; err != nil {
		return nil, apperrors.Wrap(code.ErrDatabase, err)
	}
	return existing, nil
}

// 5. DeleteWork removes a portfolio entry
func (s *LatestWorkService) DeleteWork(id uint) error {
	result := s.DB.Delete(&models.LatestWork{}, id)
	if result.Error != nil {
		return apperrors.Wrap(code.ErrDatabase, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.New(code.ErrWorkNotFound)
	}
	return nil
}
