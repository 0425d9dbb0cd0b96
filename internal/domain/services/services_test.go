package services

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"esweb-http-service/internal/domain/models"
	"esweb-http-service/internal/infrastructure/config"
)

// newTestDB opens a fresh in-memory database migrated with every model.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Contact{},
		&models.Admin{},
		&models.FAQ{},
		&models.LatestWork{},
		&models.JobListing{},
		&models.JobApplication{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:     "test-secret",
		TokenExpireHours: 1,
		MailFrom:         "noreply@example.com",
		MailFromName:     "E&S Decorations",
	}
}

// stubEmailService records sends and fails on demand.
type stubEmailService struct {
	sent    []string
	lastTo  string
	failing bool
}

func (s *stubEmailService) SendReply(to, subject, plainBody, htmlBody string) error {
	if s.failing {
		return errors.New("relay refused the message")
	}
	s.sent = append(s.sent, subject)
	s.lastTo = to
	return nil
}
