package services

import (
	"reflect"
	"testing"

	"esweb-http-service/internal/domain/models"
	"esweb-http-service/internal/error/apperrors"
	"esweb-http-service/internal/error/code"
)

func TestJobListingService_CreateDefaults(t *testing.T) {
	svc := NewJobListingService(newTestDB(t), newTestConfig())

	listing := &models.JobListing{
		Title:       "Decorator",
		Description: "Set up event decorations",
		IsActive:    true,
	}
	if err := svc.CreateListing(listing); err != nil {
		t.Fatalf("CreateListing failed: %v", err)
	}

	if listing.Icon != "Users" {
		t.Errorf("expected the default icon, got %q", listing.Icon)
	}
}

func TestJobListingService_RequirementsRoundTrip(t *testing.T) {
	svc := NewJobListingService(newTestDB(t), newTestConfig())

	requirements := []string{"2 years experience", "driver's license", "weekend availability"}
	listing := &models.JobListing{
		Title:        "Decorator",
		Description:  "Set up event decorations",
		Requirements: requirements,
		Type:         "full-time",
		IsActive:     true,
	}
	if err := svc.CreateListing(listing); err != nil {
		t.Fatalf("CreateListing failed: %v", err)
	}

	stored, err := svc.GetListingByID(listing.ID)
	if err != nil {
		t.Fatalf("GetListingByID failed: %v", err)
	}
	if !reflect.DeepEqual(stored.Requirements, requirements) {
		t.Errorf("expected requirements to keep order and content, got %v", stored.Requirements)
	}
}

func TestJobListingService_UpdateReplacesDocument(t *testing.T) {
	svc := NewJobListingService(newTestDB(t), newTestConfig())

	listing := &models.JobListing{Title: "Decorator", Description: "Old", IsActive: true}
	if err := svc.CreateListing(listing); err != nil {
		t.Fatalf("CreateListing failed: %v", err)
	}

	updated, err := svc.UpdateListing(listing.ID, &models.JobListing{
		Title:       "Senior Decorator",
		Description: "New",
		Icon:        "Star",
		IsActive:    false,
	})
	if err != nil {
		t.Fatalf("UpdateListing failed: %v", err)
	}
	if updated.Title != "Senior Decorator" || updated.IsActive {
		t.Errorf("expected the full document to be replaced, got %+v", updated)
	}
}

func TestJobListingService_DeleteUnknownID(t *testing.T) {
	svc := NewJobListingService(newTestDB(t), newTestConfig())

	if err := svc.DeleteListing(9999); !apperrors.Is(err, code.ErrJobListingNotFound) {
		t.Errorf("expected ErrJobListingNotFound, got %v", err)
	}
}
