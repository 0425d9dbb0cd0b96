package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"esweb-http-service/internal/error/apperrors"
	"esweb-http-service/internal/error/code"
	"esweb-http-service/internal/domain/models"
	"esweb-http-service/internal/infrastructure/config"
)

// InterfaceJobApplicationService defines the job application service
type InterfaceJobApplicationService interface {
	GetAllApplications() ([]models.JobApplication, error)
	GetApplicationByID(id uint) (*models.JobApplication, error)
	SubmitApplication(app *models.JobApplication) error
	UpdateStatus(id uint, status string) (*models.JobApplication, error)
}

// JobApplicationService provides job application intake and review
type JobApplicationService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewJobApplicationService creates a new job application service
func NewJobApplicationService(db *gorm.DB, cfg *config.Config) InterfaceJobApplicationService {
	return &JobApplicationService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllApplications returns all applications
func (s *JobApplicationService) GetAllApplications() ([]models.JobApplication, error) {
	var apps []models.JobApplication
	if err := s.DB.Find(&apps).Error; err != nil {
		return nil, apperrors.Wrap(code.ErrDatabase, err)
	}
	return apps, nil
}

// 2. GetApplicationByID fetches one application
func (s *JobApplicationService) GetApplicationByID(id uint) (*models.JobApplication, error) {
	var app models.JobApplication
	if err := s.DB.First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(code.ErrApplicationNotFound)
		}
		return nil, apperrors.Wrap(code.ErrDatabase, err)
	}
	return &app, nil
}

// 3. SubmitApplication stores a new application. Status and the applied
// timestamp are assigned server-side regardless of what the client sent.
// The referenced listing is not checked to exist.
func (s *JobApplicationService) SubmitApplication(app *models.JobApplication) error {
	app.ID = 0
	app.Status = models.ApplicationStatusPending
	app.AppliedAt = time.Now().UTC()
	if err := s.DB.Create(app).Error; err != nil {
		return apperrors.Wrap(code.ErrDatabase, err)
	}
	return nil
}

// 4. UpdateStatus decides a pending application. Only approved and rejected
// are accepted, and a decision is terminal: the sole transition allowed on a
// decided application is a repeat of the same value, which is a no-op.
func (s *JobApplicationService) UpdateStatus(id uint, status string) (*models.JobApplication, error) {
	if status != models.ApplicationStatusApproved && status != models.ApplicationStatusRejected {
		return nil, apperrors.New(code.ErrInvalidStatus)
	}

	app, err := s.GetApplicationByID(id)
	if err != nil {
		return nil, err
	}

	if app.Status != models.ApplicationStatusPending {
		if app.Status == status {
			return app, nil
		}
		return nil, apperrors.New(code.ErrStatusFinal)
	}

	if err := s.DB.Model(app).Update("status", status).Error; err != nil {
		return nil, apperrors.Wrap(code.ErrDatabase, err)
	}
	return app, nil
}
