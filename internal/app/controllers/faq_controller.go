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

// InterfaceFAQController defines the FAQ controller interface
type InterfaceFAQController interface {
	GetFAQs()
	CreateFAQ()
	UpdateFAQ()
	DeleteFAQ()
}

// FAQController handles FAQ catalogue requests
type FAQController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewFAQController creates a new FAQ controller
func NewFAQController(ctx *gin.Context, container *container.ServiceContainer) *FAQController {
	return &FAQController{
		Ctx:       ctx,
		Container: container,
	}
}

// FAQRequest is the full FAQ document used for create and update
type FAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Category string `json:"category"`
}

// HandleFAQFunc returns a gin handler dispatching FAQ requests
func HandleFAQFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFAQController(ctx, container)

		switch method {
		case "getFAQs":
			controller.GetFAQs()
		case "createFAQ":
			controller.CreateFAQ()
		case "updateFAQ":
			controller.UpdateFAQ()
		case "deleteFAQ":
			controller.DeleteFAQ()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

func faqResponse(faq *models.FAQ) gin.H {
	return gin.H{
		"id":       strconv.FormatUint(uint64(faq.ID), 10),
		"question": faq.Question,
		"answer":   faq.Answer,
		"category": faq.Category,
	}
}

// 1. GetFAQs lists every FAQ
// @Summary      List FAQs
// @Tags         FAQ
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /faqs [get]
func (c *FAQController) GetFAQs() {
	faqService := c.Container.GetService("faq").(services.InterfaceFAQService)
	faqs, err := faqService.GetAllFAQs()
	if err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	results := make([]gin.H, 0, len(faqs))
	for i := range faqs {
		results = append(results, faqResponse(&faqs[i]))
	}

	response.JSON(c.Ctx, code.StatusOK, results)
}

// 2. CreateFAQ stores a new FAQ and echoes the stored document
// @Summary      Create FAQ
// @Tags         FAQ
// @Accept       json
// @Produce      json
// @Param        request body FAQRequest true "FAQ fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /faqs [post]
// @Security     BearerAuth
func (c *FAQController) CreateFAQ() {
	var req FAQRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	faq := &models.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	}

	faqService := c.Container.GetService("faq").(services.InterfaceFAQService)
	if err := faqService.CreateFAQ(faq); err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	response.JSON(c.Ctx, code.StatusOK, faqResponse(faq))
}

// 3. UpdateFAQ replaces an FAQ with the submitted document
// @Summary      Update FAQ
// @Tags         FAQ
// @Accept       json
// @Produce      json
// @Param        id path string true "FAQ ID"
// @Param        request body FAQRequest true "FAQ fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /faqs/{id} [put]
// @Security     BearerAuth
func (c *FAQController) UpdateFAQ() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid FAQ ID")
		return
	}

	var req FAQRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	faq := &models.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	}

	faqService := c.Container.GetService("faq").(services.InterfaceFAQService)
	updated, err := faqService.UpdateFAQ(uint(id), faq)
	if err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	response.JSON(c.Ctx, code.StatusOK, faqResponse(updated))
}

// 4. DeleteFAQ removes an FAQ
// @Summary      Delete FAQ
// @Tags         FAQ
// @Produce      json
// @Param        id path string true "FAQ ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /faqs/{id} [delete]
// @Security     BearerAuth
func (c *FAQController) DeleteFAQ() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid FAQ ID")
		return
	}

	faqService := c.Container.GetService("faq").(services.InterfaceFAQService)
	if err := faqService.DeleteFAQ(uint(id)); err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	response.Message(c.Ctx, "FAQ deleted successfully")
}
