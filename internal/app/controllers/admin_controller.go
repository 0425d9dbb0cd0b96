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

// InterfaceAdminController defines the admin controller interface
type InterfaceAdminController interface {
	Login()
	AddAdmin()
	UpdateAdmin()
}

// AdminController handles admin authentication and account management
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new admin controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest is the form-encoded credential pair. The username field
// carries the admin email.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// AddAdminRequest is the payload for creating a new admin account
type AddAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateAdminRequest is a typed partial update. Absent fields keep their
// stored values.
type UpdateAdminRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"omitempty,email"`
	NewPassword string `json:"new_password"`
}

// HandleAdminFunc returns a gin handler dispatching admin requests
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "addAdmin":
			controller.AddAdmin()
		case "updateAdmin":
			controller.UpdateAdmin()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// 1. Login verifies credentials and issues a bearer token
// @Summary      Admin login
// @Description  Verify admin credentials and issue a signed bearer token
// @Tags         Admin
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username formData string true "Admin email"
// @Param        password formData string true "Password"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /admin/login [post]
func (c *AdminController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBind(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.Authenticate(req.Username, req.Password)
	if err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	token, err := c.Container.GetJWTService().GenerateToken(admin.Email)
	if err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	response.JSON(c.Ctx, code.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// 2. AddAdmin creates another admin account
// @Summary      Add admin
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body AddAdminRequest true "New admin fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /admin/add [post]
// @Security     BearerAuth
func (c *AdminController) AddAdmin() {
	var req AddAdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	admin := &models.Admin{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.CreateAdmin(admin); err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	response.JSON(c.Ctx, code.StatusOK, gin.H{
		"message":  "Admin added successfully",
		"admin_id": strconv.FormatUint(uint64(admin.ID), 10),
	})
}

// 3. UpdateAdmin applies a partial update to an admin account
// @Summary      Update admin
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path string true "Admin ID"
// @Param        request body UpdateAdminRequest true "Fields to change"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /admin/update/{id} [patch]
// @Security     BearerAuth
func (c *AdminController) UpdateAdmin() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid admin ID")
		return
	}

	var req UpdateAdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	update := services.AdminUpdate{
		Name:        req.Name,
		Email:       req.Email,
		NewPassword: req.NewPassword,
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if _, err := adminService.UpdateAdmin(uint(id), update); err != nil {
		response.HandleError(c.Ctx, err)
		return
	}

	response.Message(c.Ctx, "Admin updated successfully")
}
