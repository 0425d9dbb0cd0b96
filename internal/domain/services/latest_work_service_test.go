package services

import (
	"testing"

	"esweb-http-service/internal/domain/models"
	"esweb-http-service/internal/error/apperrors"
	"esweb-http-service/internal/error/code"
)

func TestLatestWorkService_CRUD(t *testing.T) {
	svc := NewLatestWorkService(newTestDB(t), newTestConfig())

	work := &models.LatestWork{Title: "Garden wedding", Link: "https://example.com/w/1", Category: "weddings"}
	if err := svc.CreateWork(work); err != nil {
		t.Fatalf("CreateWork failed: %v", err)
	}

	updated, err := svc.UpdateWork(work.ID, &models.LatestWork{
		Title:    "Garden wedding",
		Link:     "https://example.com/w/1",
		Category: "outdoor",
	})
	if err != nil {
		t.Fatalf("UpdateWork failed: %v", err)
	}
	if updated.Category != "outdoor" {
		t.Errorf("expected the category to change, got %q", updated.Category)
	}

	if err := svc.DeleteWork(work.ID); err != nil {
		t.Fatalf("DeleteWork failed: %v", err)
	}
	if err := svc.DeleteWork(work.ID); !apperrors.Is(err, code.ErrWorkNotFound) {
		t.Errorf("expected ErrWorkNotFound on repeat delete, got %v", err)
	}
}
