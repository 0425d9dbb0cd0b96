package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"esweb-http-service/internal/error/apperrors"
	"esweb-http-service/internal/error/code"
	"esweb-http-service/internal/domain/models"
	"esweb-http-service/internal/infrastructure/config"
)

// AdminUpdate is the typed partial-update payload. Empty fields are left
// untouched; NewPassword is hashed before it reaches the store.
type AdminUpdate struct {
	Name        string
	Email       string
	NewPassword string
}

// IsEmpty reports whether the update carries no fields
func (u AdminUpdate) IsEmpty() bool {
	return u.Name == "" && u.Email == "" && u.NewPassword == ""
}

// InterfaceAdminService defines the admin account service
type InterfaceAdminService interface {
	Authenticate(email, password string) (*models.Admin, error)
	GetAdminByID(id uint) (*models.Admin, error)
	GetAdminByEmail(email string) (*models.Admin, error)
	CreateAdmin(admin *models.Admin) error
	UpdateAdmin(id uint, update AdminUpdate) (*models.Admin, error)
}

// AdminService provides admin account operations
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService creates a new admin service
func NewAdminService(db *gorm.DB, cfg *config.Config) InterfaceAdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// 1. Authenticate verifies an email/password pair and returns the admin.
// The same error is returned for an unknown email and a wrong password.
func (s *AdminService) Authenticate(email, password string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(code.ErrAdminPasswordIncorrect)
		}
		return nil, apperrors.Wrap(code.ErrDatabase, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, apperrors.New(code.ErrAdminPasswordIncorrect)
	}

	return &admin, nil
}

// 2. GetAdminByID fetches an admin by id
func (s *AdminService) GetAdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(code.ErrAdminNotFound)
		}
		return nil, apperrors.Wrap(code.ErrDatabase, err)
	}
	return &admin, nil
}

// 3. GetAdminByEmail fetches an admin by email
func (s *AdminService) GetAdminByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(code.ErrAdminNotFound)
		}
		return nil, apperrors.Wrap(code.ErrDatabase, err)
	}
	return &admin, nil
}

// 4. CreateAdmin hashes the password and inserts a new admin. The email must
// not already be registered.
func (s *AdminService) CreateAdmin(admin *models.Admin) error {
	var count int64
	if err := s.DB.Model(&models.Admin{}).Where("email = ?", admin.Email).Count(&count).Error; err != nil {
		return apperrors.Wrap(code.ErrDatabase, err)
	}
	if count > 0 {
		return apperrors.New(code.ErrAdminAlreadyExist)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Wrap(code.ErrUnknown, err)
	}
	admin.Password = string(hashedPassword)

	if err := s.DB.Create(admin).Error; err != nil {
		return apperrors.Wrap(code.ErrDatabase, err)
	}
	return nil
}

// 5. UpdateAdmin applies a typed partial update to an existing admin
func (s *AdminService) UpdateAdmin(id uint, update AdminUpdate) (*models.Admin, error) {
	if update.IsEmpty() {
		return nil, apperrors.New(code.ErrEmptyUpdate)
	}

	admin, err := s.GetAdminByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Name != "" {
		updates["name"] = update.Name
	}
	if update.Email != "" && update.Email != admin.Email {
		// The new email must not belong to another admin
		var count int64
		if err := s.DB.Model(&models.Admin{}).Where("email = ? AND id != ?", update.Email, admin.ID).Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(code.ErrDatabase, err)
		}
		if count > 0 {
			return nil, apperrors.New(code.ErrAdminAlreadyExist)
		}
		updates["email"] = update.Email
	}
	if update.NewPassword != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(update.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Wrap(code.ErrUnknown, err)
		}
		updates["password"] = string(hashedPassword)
	}

	if len(updates) > 0 {
		if err := s.DB.Model(admin).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(code.ErrDatabase, err)
		}
	}

	return s.GetAdminByID(id)
}
