package services

import (
	"testing"

	"esweb-http-service/internal/domain/models"
	"esweb-http-service/internal/error/apperrors"
	"esweb-http-service/internal/error/code"
)

func submitTestApplication(t *testing.T, svc InterfaceJobApplicationService) *models.JobApplication {
	t.Helper()
	app := &models.JobApplication{
		JobID:      1,
		Name:       "Ana",
		Email:      "ana@example.com",
		Phone:      "555-0100",
		Experience: "3 years of event decoration",
	}
	if err := svc.SubmitApplication(app); err != nil {
		t.Fatalf("SubmitApplication failed: %v", err)
	}
	return app
}

func TestJobApplicationService_SubmitForcesPending(t *testing.T) {
	svc := NewJobApplicationService(newTestDB(t), newTestConfig())

	app := &models.JobApplication{
		JobID:      1,
		Name:       "Ana",
		Email:      "ana@example.com",
		Phone:      "555-0100",
		Experience: "3 years",
		Status:     models.ApplicationStatusApproved, // must be ignored
	}
	if err := svc.SubmitApplication(app); err != nil {
		t.Fatalf("SubmitApplication failed: %v", err)
	}

	if app.Status != models.ApplicationStatusPending {
		t.Errorf("expected a fresh application to be pending, got %q", app.Status)
	}
	if app.AppliedAt.IsZero() {
		t.Error("expected the applied timestamp to be set")
	}
}

func TestJobApplicationService_ApproveAndReject(t *testing.T) {
	svc := NewJobApplicationService(newTestDB(t), newTestConfig())
	app := submitTestApplication(t, svc)

	decided, err := svc.UpdateStatus(app.ID, models.ApplicationStatusApproved)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if decided.Status != models.ApplicationStatusApproved {
		t.Errorf("expected approved, got %q", decided.Status)
	}

	// A decision is terminal; the opposite value is rejected
	if _, err := svc.UpdateStatus(app.ID, models.ApplicationStatusRejected); !apperrors.Is(err, code.ErrStatusFinal) {
		t.Errorf("expected ErrStatusFinal, got %v", err)
	}

	// Repeating the same decision is a no-op
	again, err := svc.UpdateStatus(app.ID, models.ApplicationStatusApproved)
	if err != nil {
		t.Errorf("expected repeated decision to succeed, got %v", err)
	}
	if again.Status != models.ApplicationStatusApproved {
		t.Errorf("expected approved, got %q", again.Status)
	}
}

func TestJobApplicationService_InvalidStatus(t *testing.T) {
	svc := NewJobApplicationService(newTestDB(t), newTestConfig())
	app := submitTestApplication(t, svc)

	for _, status := range []string{"pending", "archived", ""} {
		if _, err := svc.UpdateStatus(app.ID, status); !apperrors.Is(err, code.ErrInvalidStatus) {
			t.Errorf("status %q: expected ErrInvalidStatus, got %v", status, err)
		}
	}
}

func TestJobApplicationService_UpdateUnknownID(t *testing.T) {
	svc := NewJobApplicationService(newTestDB(t), newTestConfig())

	_, err := svc.UpdateStatus(9999, models.ApplicationStatusApproved)
	if !apperrors.Is(err, code.ErrApplicationNotFound) {
		t.Errorf("expected ErrApplicationNotFound, got %v", err)
	}
}
