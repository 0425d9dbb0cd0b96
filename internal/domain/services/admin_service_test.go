package services

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"esweb-http-service/internal/domain/models"
	"esweb-http-service/internal/error/apperrors"
	"esweb-http-service/internal/error/code"
)

func TestAdminService_CreateAndAuthenticate(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	admin := &models.Admin{Name: "Elena", Email: "elena@example.com", Password: "s3cret"}
	if err := svc.CreateAdmin(admin); err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}
	if admin.ID == 0 {
		t.Fatal("expected ID to be set after CreateAdmin")
	}
	if admin.Password == "s3cret" {
		t.Error("expected the stored password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("s3cret")); err != nil {
		t.Errorf("stored hash does not match the password: %v", err)
	}

	got, err := svc.Authenticate("elena@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.ID != admin.ID {
		t.Errorf("expected admin %d, got %d", admin.ID, got.ID)
	}
}

func TestAdminService_AuthenticateRejectsBadCredentials(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())
	if err := svc.CreateAdmin(&models.Admin{Name: "Elena", Email: "elena@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}

	// Unknown email and wrong password must be indistinguishable
	_, errUnknown := svc.Authenticate("nobody@example.com", "s3cret")
	_, errWrong := svc.Authenticate("elena@example.com", "wrong")

	if !apperrors.Is(errUnknown, code.ErrAdminPasswordIncorrect) {
		t.Errorf("unknown email: expected ErrAdminPasswordIncorrect, got %v", errUnknown)
	}
	if !apperrors.Is(errWrong, code.ErrAdminPasswordIncorrect) {
		t.Errorf("wrong password: expected ErrAdminPasswordIncorrect, got %v", errWrong)
	}
	if apperrors.Code(errUnknown) != apperrors.Code(errWrong) {
		t.Error("expected the same error code for unknown email and wrong password")
	}
}

func TestAdminService_CreateRejectsDuplicateEmail(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())
	if err := svc.CreateAdmin(&models.Admin{Name: "Elena", Email: "elena@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}

	err := svc.CreateAdmin(&models.Admin{Name: "Other", Email: "elena@example.com", Password: "other"})
	if !apperrors.Is(err, code.ErrAdminAlreadyExist) {
		t.Errorf("expected ErrAdminAlreadyExist, got %v", err)
	}
}

func TestAdminService_UpdatePartial(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())
	admin := &models.Admin{Name: "Elena", Email: "elena@example.com", Password: "s3cret"}
	if err := svc.CreateAdmin(admin); err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}

	updated, err := svc.UpdateAdmin(admin.ID, AdminUpdate{Name: "Elena S."})
	if err != nil {
		t.Fatalf("UpdateAdmin failed: %v", err)
	}
	if updated.Name != "Elena S." {
		t.Errorf("expected name to change, got %q", updated.Name)
	}
	if updated.Email != "elena@example.com" {
		t.Errorf("expected email untouched, got %q", updated.Email)
	}

	// The old password still works when only the name changed
	if _, err := svc.Authenticate("elena@example.com", "s3cret"); err != nil {
		t.Errorf("expected the old password to still work: %v", err)
	}

	if _, err := svc.UpdateAdmin(admin.ID, AdminUpdate{NewPassword: "changed"}); err != nil {
		t.Fatalf("UpdateAdmin password failed: %v", err)
	}
	if _, err := svc.Authenticate("elena@example.com", "changed"); err != nil {
		t.Errorf("expected the new password to work: %v", err)
	}
	if _, err := svc.Authenticate("elena@example.com", "s3cret"); err == nil {
		t.Error("expected the old password to be rejected after a change")
	}
}

func TestAdminService_UpdateRejectsEmptyPayload(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())
	admin := &models.Admin{Name: "Elena", Email: "elena@example.com", Password: "s3cret"}
	if err := svc.CreateAdmin(admin); err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}

	_, err := svc.UpdateAdmin(admin.ID, AdminUpdate{})
	if !apperrors.Is(err, code.ErrEmptyUpdate) {
		t.Errorf("expected ErrEmptyUpdate, got %v", err)
	}
}

func TestAdminService_UpdateRejectsTakenEmail(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())
	first := &models.Admin{Name: "Elena", Email: "elena@example.com", Password: "s3cret"}
	second := &models.Admin{Name: "Sam", Email: "sam@example.com", Password: "s3cret"}
	for _, a := range []*models.Admin{first, second} {
		if err := svc.CreateAdmin(a); err != nil {
			t.Fatalf("CreateAdmin failed: %v", err)
		}
	}

	_, err := svc.UpdateAdmin(second.ID, AdminUpdate{Email: "elena@example.com"})
	if !apperrors.Is(err, code.ErrAdminAlreadyExist) {
		t.Errorf("expected ErrAdminAlreadyExist, got %v", err)
	}
}

func TestAdminService_UpdateUnknownID(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	_, err := svc.UpdateAdmin(9999, AdminUpdate{Name: "Ghost"})
	if !apperrors.Is(err, code.ErrAdminNotFound) {
		t.Errorf("expected ErrAdminNotFound, got %v", err)
	}
}
