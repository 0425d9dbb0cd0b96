package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"esweb-http-service/internal/domain/models"
	"esweb-http-service/internal/domain/services"
	"esweb-http-service/internal/domain/services/container"
	"esweb-http-service/internal/error/code"
	"esweb-http-service/internal/error/response"
)

// InterfaceJobApplicationController defines the job application controller interface
type InterfaceJobApplicationController interface {
	GetApplications()
	SubmitApplication()
	UpdateStatus()
}

// JobApplicationController handles application intake and review
type JobApplicationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJobApplicationController creates a new job application controller
func NewJobApplicationController(ctx *gin.Context, container *container.ServiceContainer) *JobApplicationController {
	return &JobApplicationController{
		Ctx:       ctx,
		Container: container,
	}
}

// SubmitApplicationRequest is the public application payload. The job id
// arrives as a decimal string to match the listing ids the catalogue serves.
type SubmitApplicationRequest struct {
	JobID      string `json:"job_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Experience string `json:"experience" binding:"required"`
	Address    string `json:"address"`
	Resume     string `json:"resume"`
}

// HandleJobApplicationFunc returns a gin handler dispatching application requests
func HandleJobApplicationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJobApplicationController(ctx, container)

		switch method {
		case "getApplications":
			controller.GetApplications()
		case "submitApplication":
			controller.SubmitApplication()
		case "updateStatus":
			controller.UpdateStatus()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

func applicationResponse(app *models.JobApplication) gin.H {
	return gin.H{
		"id":           strconv.FormatUint(uint64(app.ID), 10),
		"job_id":       strconv.FormatUint(uint64(app.JobID), 10),
		"name":         app.Name,
		"email":        app.Email,
		"phone":        app.Phone,
		"experience":   app.Experience,
		"address":      app.Address,
		"resume":       app.Resume,
		"status":       app.Status,
		"applied_date": app.AppliedAt,
	}
}

// 1. GetApplications lists every submitted application
// @Summary      List job applications
// @Tags         JobApplication
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /job-applications [get]
// @Security     BearerAuth
func (c *JobApplicationController) GetApplications() {
	appService := c.Container.GetService("job_application").(services.InterfaceJobApplicationService)
	apps, err := appService.GetAllApplications()
	if err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	results := make([]gin.H, 0, len(apps))
	for i := range apps {
		results = append(results, applicationResponse(&apps[i]))
	}

	response.JSON(c.Ctx, code.StatusOK, results)
}

// 2. SubmitApplication stores a new application and echoes the stored document
// @Summary      Submit job application
// @Tags         JobApplication
// @Accept       json
// @Produce      json
// @Param        request body SubmitApplicationRequest true "Application fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /job-applications [post]
func (c *JobApplicationController) SubmitApplication() {
	var req SubmitApplicationRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	jobID, err := strconv.ParseUint(req.JobID, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid job ID")
		return
	}

	app := &models.JobApplication{
		JobID:      uint(jobID),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Experience: req.Experience,
		Address:    req.Address,
		Resume:     req.Resume,
	}

	appService := c.Container.GetService("job_application").(services.InterfaceJobApplicationService)
	if err := appService.SubmitApplication(app); err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	response.JSON(c.Ctx, code.StatusOK, applicationResponse(app))
}

// 3. UpdateStatus decides a pending application
// @Summary      Update application status
// @Description  Approve or reject a pending application. A decided application keeps its first decision.
// @Tags         JobApplication
// @Produce      json
// @Param        id path string true "Application ID"
// @Param        status query string true "approved or rejected"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /job-applications/{id}/status [patch]
// @Security     BearerAuth
func (c *JobApplicationController) UpdateStatus() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid application ID")
		return
	}

	status := c.Ctx.Query("status")

	appService := c.Container.GetService("job_application").(services.InterfaceJobApplicationService)
	app, err := appService.UpdateStatus(uint(id), status)
	if err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	response.Message(c.Ctx, fmt.Sprintf("Application %s successfully", app.Status))
}
