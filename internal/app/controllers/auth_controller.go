package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unitutor/internal/app/models/dto"
	"github.com/yigit/unitutor/internal/app/services"
	"github.com/yigit/unitutor/internal/middleware"
)

// AuthController handles authentication related requests
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a student account, or a professor account when subjects is set
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration information"
// @Success 201 {object} dto.MessageResponse "User registered successfully."
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.authService.Register(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("User registered successfully."))
}

// Login handles user login
// @Summary User login
// @Description Authenticates a user and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful."
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login successful.",
		Token:   *token,
	})
}
