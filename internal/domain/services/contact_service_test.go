package services

import (
	"testing"
	"time"

	"esweb-http-service/internal/domain/models"
	"esweb-http-service/internal/error/apperrors"
	"esweb-http-service/internal/error/code"
)

func TestContactService_SubmitAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db, newTestConfig(), &stubEmailService{})

	first := &models.Contact{Name: "Ana", Email: "ana@example.com", Subject: "Quote", Message: "Hello"}
	if err := svc.Submit(first); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected ID to be set after Submit")
	}
	if first.IsSolved {
		t.Error("expected a new inquiry to start unresolved")
	}

	// Force distinct creation timestamps so the ordering is observable
	second := &models.Contact{Name: "Ben", Email: "ben@example.com", Subject: "Event", Message: "Hi"}
	if err := svc.Submit(second); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if err := db.Model(second).Update("created_at", time.Now().Add(time.Hour)).Error; err != nil {
		t.Fatalf("failed to adjust timestamp: %v", err)
	}

	inquiries, err := svc.GetUnresolvedInquiries()
	if err != nil {
		t.Fatalf("GetUnresolvedInquiries failed: %v", err)
	}
	if len(inquiries) != 2 {
		t.Fatalf("expected 2 inquiries, got %d", len(inquiries))
	}
	if inquiries[0].ID != second.ID {
		t.Errorf("expected the newest inquiry first, got id %d", inquiries[0].ID)
	}
}

func TestContactService_ListOrderStableOnEqualTimestamps(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db, newTestConfig(), &stubEmailService{})

	var ids []uint
	for _, name := range []string{"Ana", "Ben", "Cleo"} {
		inquiry := &models.Contact{Name: name, Email: name + "@example.com", Subject: "Quote", Message: "Hello"}
		if err := svc.Submit(inquiry); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		ids = append(ids, inquiry.ID)
	}

	// Collapse the timestamps to one value, as a second-precision column does
	// for submissions arriving within the same second
	sameMoment := time.Now().Truncate(time.Second)
	if err := db.Model(&models.Contact{}).Where("1 = 1").Update("created_at", sameMoment).Error; err != nil {
		t.Fatalf("failed to collapse timestamps: %v", err)
	}

	inquiries, err := svc.GetUnresolvedInquiries()
	if err != nil {
		t.Fatalf("GetUnresolvedInquiries failed: %v", err)
	}
	if len(inquiries) != 3 {
		t.Fatalf("expected 3 inquiries, got %d", len(inquiries))
	}
	for i, want := range []uint{ids[2], ids[1], ids[0]} {
		if inquiries[i].ID != want {
			t.Errorf("position %d: expected id %d, got %d", i, want, inquiries[i].ID)
		}
	}
}

func TestContactService_ListExcludesSolved(t *testing.T) {
	svc := NewContactService(newTestDB(t), newTestConfig(), &stubEmailService{})

	inquiry := &models.Contact{Name: "Ana", Email: "ana@example.com", Subject: "Quote", Message: "Hello"}
	if err := svc.Submit(inquiry); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if err := svc.MarkSolved(inquiry.ID); err != nil {
		t.Fatalf("MarkSolved failed: %v", err)
	}

	inquiries, err := svc.GetUnresolvedInquiries()
	if err != nil {
		t.Fatalf("GetUnresolvedInquiries failed: %v", err)
	}
	if len(inquiries) != 0 {
		t.Errorf("expected solved inquiries to be excluded, got %d", len(inquiries))
	}
}

func TestContactService_MarkSolvedIdempotent(t *testing.T) {
	svc := NewContactService(newTestDB(t), newTestConfig(), &stubEmailService{})

	inquiry := &models.Contact{Name: "Ana", Email: "ana@example.com", Subject: "Quote", Message: "Hello"}
	if err := svc.Submit(inquiry); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if err := svc.MarkSolved(inquiry.ID); err != nil {
		t.Fatalf("MarkSolved failed: %v", err)
	}
	if err := svc.MarkSolved(inquiry.ID); err != nil {
		t.Errorf("expected solving an already-solved inquiry to succeed, got %v", err)
	}
}

func TestContactService_MarkSolvedUnknownID(t *testing.T) {
	svc := NewContactService(newTestDB(t), newTestConfig(), &stubEmailService{})

	err := svc.MarkSolved(9999)
	if !apperrors.Is(err, code.ErrInquiryNotFound) {
		t.Errorf("expected ErrInquiryNotFound, got %v", err)
	}
}

func TestContactService_ReplyMarksSolved(t *testing.T) {
	db := newTestDB(t)
	stub := &stubEmailService{}
	svc := NewContactService(db, newTestConfig(), stub)

	inquiry := &models.Contact{Name: "Ana", Email: "ana@example.com", Subject: "Quote", Message: "Hello"}
	if err := svc.Submit(inquiry); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if err := svc.Reply(inquiry.ID, "Thanks for reaching out", "<p>Thanks for reaching out</p>"); err != nil {
		t.Fatalf("Reply failed: %v", err)
	}
	if stub.lastTo != "ana@example.com" {
		t.Errorf("expected the reply to go to the submitter, got %q", stub.lastTo)
	}

	var stored models.Contact
	if err := db.First(&stored, inquiry.ID).Error; err != nil {
		t.Fatalf("failed to reload inquiry: %v", err)
	}
	if !stored.IsSolved {
		t.Error("expected a replied inquiry to be marked solved")
	}
}

func TestContactService_FailedReplyLeavesUnresolved(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db, newTestConfig(), &stubEmailService{failing: true})

	inquiry := &models.Contact{Name: "Ana", Email: "ana@example.com", Subject: "Quote", Message: "Hello"}
	if err := svc.Submit(inquiry); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	err := svc.Reply(inquiry.ID, "Thanks", "<p>Thanks</p>")
	if !apperrors.Is(err, code.ErrMailDelivery) {
		t.Fatalf("expected ErrMailDelivery, got %v", err)
	}

	var stored models.Contact
	if err := db.First(&stored, inquiry.ID).Error; err != nil {
		t.Fatalf("failed to reload inquiry: %v", err)
	}
	if stored.IsSolved {
		t.Error("expected a failed reply to leave the inquiry unresolved")
	}
}

func TestContactService_ReplyWithoutEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db, newTestConfig(), &stubEmailService{})

	// A record without an email can only exist via direct writes
	inquiry := models.Contact{Name: "Ana", Email: "", Subject: "Quote", Message: "Hello"}
	if err := db.Create(&inquiry).Error; err != nil {
		t.Fatalf("failed to insert inquiry: %v", err)
	}

	err := svc.Reply(inquiry.ID, "Thanks", "<p>Thanks</p>")
	if !apperrors.Is(err, code.ErrInquiryNoEmail) {
		t.Errorf("expected ErrInquiryNoEmail, got %v", err)
	}
}
