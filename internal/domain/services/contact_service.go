package services

import (
	"errors"

	"gorm.io/gorm"

	"esweb-http-service/internal/error/apperrors"
	"esweb-http-service/internal/error/code"
	"esweb-http-service/internal/domain/models"
	"esweb-http-service/internal/infrastructure/config"
)

// ReplySubject is the subject line of reply mails sent to inquiry submitters.
const ReplySubject = "Reply to Your Inquiry"

// InterfaceContactService defines the contact inquiry service
type InterfaceContactService interface {
	Submit(contact *models.Contact) error
	GetUnresolvedInquiries() ([]models.Contact, error)
	MarkSolved(id uint) error
	Reply(id uint, plainBody, htmlBody string) error
}

// ContactService provides the inquiry lifecycle operations
type ContactService struct {
	DB           *gorm.DB
	Config       *config.Config
	EmailService InterfaceEmailService
}

// NewContactService creates a new contact service
func NewContactService(db *gorm.DB, cfg *config.Config, emailService InterfaceEmailService) InterfaceContactService {
	return &ContactService{
		DB:           db,
		Config:       cfg,
		EmailService: emailService,
	}
}

// 1. Submit stores a new inquiry. The resolved flag always starts false and
// the creation timestamp is assigned by the store, not the client.
func (s *ContactService) Submit(contact *models.Contact) error {
	contact.ID = 0
	contact.IsSolved = false
	if err := s.DB.Create(contact).Error; err != nil {
		return apperrors.Wrap(code.ErrDatabase, err)
	}
	return nil
}

// 2. GetUnresolvedInquiries lists unresolved inquiries, newest first. The id
// breaks timestamp ties so the order stays stable on second-precision columns.
func (s *ContactService) GetUnresolvedInquiries() ([]models.Contact, error) {
	var contacts []models.Contact
	if err := s.DB.Where("is_solved = ?", false).Order("created_at DESC, id DESC").Find(&contacts).Error; err != nil {
		return nil, apperrors.Wrap(code.ErrDatabase, err)
	}
	return contacts, nil
}

// 3. MarkSolved flips the resolved flag. The flip is idempotent: solving an
// already-solved inquiry still reports success.
func (s *ContactService) MarkSolved(id uint) error {
	contact, err := s.getContact(id)
	if err != nil {
		return err
	}

	if contact.IsSolved {
		return nil
	}

	if err := s.DB.Model(contact).Update("is_solved", true).Error; err != nil {
		return apperrors.Wrap(code.ErrDatabase, err)
	}
	return nil
}

// 4. Reply sends a reply mail to the inquiry's submitter and, only once the
// relay accepted the send, marks the inquiry solved. A rejected send leaves
// the resolved flag untouched and surfaces as a delivery failure.
func (s *ContactService) Reply(id uint, plainBody, htmlBody string) error {
	contact, err := s.getContact(id)
	if err != nil {
		return err
	}

	if contact.Email == "" {
		return apperrors.New(code.ErrInquiryNoEmail)
	}

	subject := ReplySubject
	if s.Config.MailFromName != "" {
		subject = ReplySubject + " - " + s.Config.MailFromName
	}

	// Send first, flip after. Never the other way around.
	if err := s.EmailService.SendReply(contact.Email, subject, plainBody, htmlBody); err != nil {
		return apperrors.Wrap(code.ErrMailDelivery, err)
	}

	if err := s.DB.Model(contact).Update("is_solved", true).Error; err != nil {
		return apperrors.Wrap(code.ErrDatabase, err)
	}
	return nil
}

func (s *ContactService) getContact(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := s.DB.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(code.ErrInquiryNotFound)
		}
		return nil, apperrors.Wrap(code.ErrDatabase, err)
	}
	return &contact, nil
}
