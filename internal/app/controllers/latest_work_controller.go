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

// InterfaceLatestWorkController defines the latest-work controller interface
type InterfaceLatestWorkController interface {
	GetWorks()
	CreateWork()
	UpdateWork()
	DeleteWork()
}

// LatestWorkController handles the portfolio catalogue requests
type LatestWorkController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewLatestWorkController creates a new latest-work controller
func NewLatestWorkController(ctx *gin.Context, container *container.ServiceContainer) *LatestWorkController {
	return &LatestWorkController{
		Ctx:       ctx,
		Container: container,
	}
}

// LatestWorkRequest is the full portfolio entry used for create and update
type LatestWorkRequest struct {
	Title     string `json:"title" binding:"required"`
	Link      string `json:"link" binding:"required"`
	Thumbnail string `json:"thumbnail"`
	Category  string `json:"category"`
}

// HandleLatestWorkFunc returns a gin handler dispatching portfolio requests
func HandleLatestWorkFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewLatestWorkController(ctx, container)

		switch method {
		case "getWorks":
			controller.GetWorks()
		case "createWork":
			controller.CreateWork()
		case "updateWork":
			controller.UpdateWork()
		case "deleteWork":
			controller.DeleteWork()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

func workResponse(work *models.LatestWork) gin.H {
	return gin.H{
		"id":        strconv.FormatUint(uint64(work.ID), 10),
		"title":     work.Title,
		"link":      work.Link,
		"thumbnail": work.Thumbnail,
		"category":  work.Category,
	}
}

// 1. GetWorks lists every portfolio entry
// @Summary      List latest works
// @Tags         LatestWork
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /latest-works [get]
func (c *LatestWorkController) GetWorks() {
	workService := c.Container.GetService("latest_work").(services.InterfaceLatestWorkService)
	works, err := workService.GetAllWorks()
	if err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	results := make([]gin.H, 0, len(works))
	for i := range works {
		results = append(results, workResponse(&works[i]))
	}

	response.JSON(c.Ctx, code.StatusOK, results)
}

// 2. CreateWork stores a new portfolio entry and echoes the stored document
// @Summary      Create latest work
// @Tags         LatestWork
// @Accept       json
// @Produce      json
// @Param        request body LatestWorkRequest true "Portfolio entry fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /latest-works [post]
// @Security     BearerAuth
func (c *LatestWorkController) CreateWork() {
	var req LatestWorkRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	work := &models.LatestWork{
		Title:     req.Title,
		Link:      req.Link,
		Thumbnail: req.Thumbnail,
		Category:  req.Category,
	}

	workService := c.Container.GetService("latest_work").(services.InterfaceLatestWorkService)
	if err := workService.CreateWork(work); err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	response.JSON(c.Ctx, code.StatusOK, workResponse(work))
}

// 3. UpdateWork replaces a portfolio entry with the submitted document
// @Summary      Update latest work
// @Tags         LatestWork
// @Accept       json
// @Produce      json
// @Param        id path string true "Work ID"
// @Param        request body LatestWorkRequest true "Portfolio entry fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /latest-works/{id} [put]
// @Security     BearerAuth
func (c *LatestWorkController) UpdateWork() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid work ID")
		return
	}

	var req LatestWorkRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	work := &models.LatestWork{
		Title:     req.Title,
		Link:      req.Link,
		Thumbnail: req.Thumbnail,
		Category:  req.Category,
	}

	workService := c.Container.GetService("latest_work").(services.InterfaceLatestWorkService)
	updated, err := workService.UpdateWork(uint(id), work)
	if err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	response.JSON(c.Ctx, code.StatusOK, workResponse(updated))
}

// 4. DeleteWork removes a portfolio entry
// @Summary      Delete latest work
// @Tags         LatestWork
// @Produce      json
// @Param        id path string true "Work ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /latest-works/{id} [delete]
// @Security     BearerAuth
func (c *LatestWorkController) DeleteWork() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid work ID")
		return
	}

	workService := c.Container.GetService("latest_work").(services.InterfaceLatestWorkService)
	if err := workService.DeleteWork(uint(id)); err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	response.Message(c.Ctx, "Work deleted successfully")
}
