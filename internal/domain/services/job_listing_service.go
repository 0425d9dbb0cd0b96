package services

import (
	"errors"

	"gorm.io/gorm"

	"esweb-http-service/internal/error/apperrors"
	"esweb-http-service/internal/error/code"
	"esweb-http-service/internal/domain/models"
	"esweb-http-service/internal/infrastructure/config"
)

// InterfaceJobListingService defines the job listing service
type InterfaceJobListingService interface {
	GetAllListings() ([]models.JobListing, error)
	GetListingByID(id uint) (*models.JobListing, error)
	CreateListing(listing *models.JobListing) error
	UpdateListing(id uint, listing *models.JobListing) (*models.JobListing, error)
	DeleteListing(id uint) error
}

// JobListingService provides job listing management
type JobListingService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewJobListingService creates a new job listing service
func NewJobListingService(db *gorm.DB, cfg *config.Config) InterfaceJobListingService {
	return &JobListingService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllListings returns all job listings
func (s *JobListingService) GetAllListings() ([]models.JobListing, error) {
	var listings []models.JobListing
	if err := s.DB.Find(&listings).Error; err != nil {
		return nil, apperrors.Wrap(code.ErrDatabase, err)
	}
	return listings, nil
}

// 2. GetListingByID fetches one job listing
func (s *JobListingService) GetListingByID(id uint) (*models.JobListing, error) {
	var listing models.JobListing
	if err := s.DB.First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(code.ErrJobListingNotFound)
		}
		return nil, apperrors.Wrap(code.ErrDatabase, err)
	}
	return &listing, nil
}

// 3. CreateListing inserts a new job listing
func (s *JobListingService) CreateListing(listing *models.JobListing) error {
	listing.ID = 0
	if listing.Icon == "" {
		listing.Icon = "Users"
	}
	if err := s.DB.Create(listing).Error; err != nil {
		return apperrors.Wrap(code.ErrDatabase, err)
	}
	return nil
}

// 4. UpdateListing replaces the content of an existing job listing
func (s *JobListingService) UpdateListing(id uint, listing *models.JobListing) (*models.JobListing, error) {
	existing, err := s.GetListingByID(id)
	if err != nil {
		return nil, err
	}

	existing.Title = listing.Title
	existing.Description = listing.Description
	existing.Requirements = listing.Requirements
	existing.Type = listing.Type
	existing.Icon = listing.Icon
	existing.IsActive = listing.IsActive

	if err := s.DB.Save(existing).Error; err != nil {
		return nil, apperrors.Wrap(code.ErrDatabase, err)
	}
	return existing, nil
}

// 5. DeleteListing removes a job listing. Applications referencing it are
// left in place; the reference is by value only.
func (s *JobListingService) DeleteListing(id uint) error {
	result := s.DB.Delete(&models.JobListing{}, id)
	if result.Error != nil {
		return apperrors.Wrap(code.ErrDatabase, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.New(code.ErrJobListingNotFound)
	}
	return nil
}
