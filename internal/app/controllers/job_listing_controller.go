package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"esweb-http-service/internal/domain/models"
	"esweb-http-service/internal/domain/services"
	"esweb-http-service/internal/domain/services/container"
	"esweb-http-service/internal/error/code"
	"esweb-http-service/internal/error/response"
)

// InterfaceJobListingController defines the job listing controller interface
type InterfaceJobListingController interface {
	GetListings()
	CreateListing()
	UpdateListing()
	DeleteListing()
}

// JobListingController handles job listing catalogue requests
type JobListingController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJobListingController creates a new job listing controller
func NewJobListingController(ctx *gin.Context, container *container.ServiceContainer) *JobListingController {
	return &JobListingController{
		Ctx:       ctx,
		Container: container,
	}
}

// JobListingRequest is the full listing document used for create and update.
// IsActive is a pointer so an absent field defaults to active instead of
// silently deactivating the listing.
type JobListingRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Requirements []string `json:"requirements"`
	Type         string   `json:"type"`
	Icon         string   `json:"icon"`
	IsActive     *bool    `json:"is_active"`
}

// HandleJobListingFunc returns a gin handler dispatching job listing requests
func HandleJobListingFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJobListingController(ctx, container)

		switch method {
		case "getListings":
			controller.GetListings()
		case "createListing":
			controller.CreateListing()
		case "updateListing":
			controller.UpdateListing()
		case "deleteListing":
			controller.DeleteListing()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

func listingResponse(listing *models.JobListing) gin.H {
	requirements := listing.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	return gin.H{
		"id":           strconv.FormatUint(uint64(listing.ID), 10),
		"title":        listing.Title,
		"description":  listing.Description,
		"requirements": requirements,
		"type":         listing.Type,
		"icon":         listing.Icon,
		"is_active":    listing.IsActive,
	}
}

func (c *JobListingController) listingFromRequest(req *JobListingRequest) *models.JobListing {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.JobListing{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Type:         req.Type,
		Icon:         req.Icon,
		IsActive:     active,
	}
}

// 1. GetListings lists every job listing
// @Summary      List job listings
// @Tags         JobListing
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /job-listings [get]
func (c *JobListingController) GetListings() {
	listingService := c.Container.GetService("job_listing").(services.InterfaceJobListingService)
	listings, err := listingService.GetAllListings()
	if err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	results := make([]gin.H, 0, len(listings))
	for i := range listings {
		results = append(results, listingResponse(&listings[i]))
	}

	response.JSON(c.Ctx, code.StatusOK, results)
}

// 2. CreateListing stores a new job listing and echoes the stored document
// @Summary      Create job listing
// @Tags         JobListing
// @Accept       json
// @Produce      json
// @Param        request body JobListingRequest true "Listing fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /job-listings [post]
// @Security     BearerAuth
func (c *JobListingController) CreateListing() {
	var req JobListingRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	listing := c.listingFromRequest(&req)

	listingService := c.Container.GetService("job_listing").(services.InterfaceJobListingService)
	if err := listingService.CreateListing(listing); err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	response.JSON(c.Ctx, code.StatusOK, listingResponse(listing))
}

// 3. UpdateListing replaces a job listing with the submitted document
// @Summary      Update job listing
// @Tags         JobListing
// @Accept       json
// @Produce      json
// @Param        id path string true "Listing ID"
// @Param        request body JobListingRequest true "Listing fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /job-listings/{id} [put]
// @Security     BearerAuth
func (c *JobListingController) UpdateListing() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid listing ID")
		return
	}

	var req JobListingRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	listing := c.listingFromRequest(&req)

	listingService := c.Container.GetService("job_listing").(services.InterfaceJobListingService)
	updated, err := listingService.UpdateListing(uint(id), listing)
	if err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	response.JSON(c.Ctx, code.StatusOK, listingResponse(updated))
}

// 4. DeleteListing removes a job listing
// @Summary      Delete job listing
// @Tags         JobListing
// @Produce      json
// @Param        id path string true "Listing ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /job-listings/{id} [delete]
// @Security     BearerAuth
func (c *JobListingController) DeleteListing() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid listing ID")
		return
	}

	listingService := c.Container.GetService("job_listing").(services.InterfaceJobListingService)
	if err := listingService.DeleteListing(uint(id)); err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	response.Message(c.Ctx, "Job listing deleted successfully")
}
