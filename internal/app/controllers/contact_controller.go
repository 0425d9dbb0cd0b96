package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"esweb-http-service/internal/domain/models"
	"esweb-http-service/internal/domain/services"
	"esweb-http-service/internal/domain/services/container"
	"esweb-http-service/internal/error/code"
	"esweb-http-service/internal/error/response"
)

// InterfaceContactController defines the contact controller interface
type InterfaceContactController interface {
	SubmitForm()
	GetInquiries()
	SolveInquiry()
	ReplyInquiry()
}

// ContactController handles contact form and inquiry requests
type ContactController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewContactController creates a new contact controller
func NewContactController(ctx *gin.Context, container *container.ServiceContainer) *ContactController {
	return &ContactController{
		Ctx:       ctx,
		Container: container,
	}
}

// SubmitFormRequest is the contact-form payload
type SubmitFormRequest struct {
	Name    string `json:"name" binding:"required" example:"Jane Doe"`
	Email   string `json:"email" binding:"required,email" example:"jane@example.com"`
	Subject string `json:"subject" binding:"required" example:"Wedding decoration"`
	Message string `json:"message" binding:"required" example:"I would like a quote."`
}

// ReplyRequest carries the reply bodies typed by the admin
type ReplyRequest struct {
	PlainTextBody string `json:"plain_text_body" binding:"required"`
	HTMLBody      string `json:"html_body" binding:"required"`
}

// HandleContactFunc returns a gin handler dispatching contact requests
func HandleContactFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewContactController(ctx, container)

		switch method {
		case "submitForm":
			controller.SubmitForm()
		case "getInquiries":
			controller.GetInquiries()
		case "solveInquiry":
			controller.SolveInquiry()
		case "replyInquiry":
			controller.ReplyInquiry()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// 1. SubmitForm stores a new contact inquiry
// @Summary      Submit contact form
// @Description  Store a visitor's contact-form submission as an unresolved inquiry
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        request body SubmitFormRequest true "Contact form fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /submit [post]
func (c *ContactController) SubmitForm() {
	var req SubmitFormRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	contact := &models.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	if err := contactService.Submit(contact); err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	response.Message(c.Ctx, "Form submitted successfully!")
}

// 2. GetInquiries lists unresolved inquiries, newest first
// @Summary      List unresolved inquiries
// @Tags         Contact
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /inquiries [get]
// @Security     BearerAuth
func (c *ContactController) GetInquiries() {
	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	inquiries, err := contactService.GetUnresolvedInquiries()
	if err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	results := make([]gin.H, 0, len(inquiries))
	for _, inq := range inquiries {
		results = append(results, gin.H{
			"id":         strconv.FormatUint(uint64(inq.ID), 10),
			"name":       inq.Name,
			"email":      inq.Email,
			"subject":    inq.Subject,
			"message":    inq.Message,
			"is_solved":  inq.IsSolved,
			"created_at": inq.CreatedAt,
		})
	}

	response.JSON(c.Ctx, code.StatusOK, results)
}

// 3. SolveInquiry marks an inquiry as solved
// @Summary      Mark inquiry solved
// @Tags         Contact
// @Produce      json
// @Param        id path string true "Inquiry ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /inquiries/{id}/solve [patch]
// @Security     BearerAuth
func (c *ContactController) SolveInquiry() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid inquiry ID")
		return
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	if err := contactService.MarkSolved(uint(id)); err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	response.Message(c.Ctx, "Inquiry marked as solved")
}

// 4. ReplyInquiry emails a reply to the submitter and marks the inquiry
// solved once the relay accepted the send
// @Summary      Reply to an inquiry
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        id path string true "Inquiry ID"
// @Param        request body ReplyRequest true "Reply bodies"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /inquiries/{id}/reply [post]
// @Security     BearerAuth
func (c *ContactController) ReplyInquiry() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid inquiry ID format")
		return
	}

	var req ReplyRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	if err := contactService.Reply(uint(id), req.PlainTextBody, req.HTMLBody); err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	response.Message(c.Ctx, "Reply sent successfully")
}
