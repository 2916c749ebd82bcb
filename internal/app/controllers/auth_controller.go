package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwebdev/devcamper/internal/app/models/dto"
	"github.com/mattwebdev/devcamper/internal/app/services"
	"github.com/mattwebdev/devcamper/internal/middleware"
	"github.com/mattwebdev/devcamper/internal/pkg/apperrors"
)

// AuthController handles registration, login and the current user profile
type AuthController struct {
	authService  services.AuthService
	cookieMaxAge int
	cookieSecure bool
}

// NewAuthController creates a new AuthController. cookieMaxAge is the token
// cookie lifetime in seconds; cookieSecure restricts the cookie to HTTPS.
func NewAuthController(authService services.AuthService, cookieMaxAge int, cookieSecure bool) *AuthController {
	return &AuthController{
		authService:  authService,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

// Register creates a new account
// @Summary Register a user
// @Description Creates an account with the user or publisher role and returns a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration information"
// @Success 201 {object} dto.APIResponse{data=dto.TokenResponse} "Account created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data or email already registered"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	tokenResp, err := c.authService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setTokenCookie(ctx, tokenResp.Token)
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(tokenResp))
}

// Login authenticates a user
// @Summary Log in
// @Description Verifies credentials and returns a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Logged in successfully"
// @Failure 400 {object} dto.APIResponse "Missing email or password"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	tokenResp, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setTokenCookie(ctx, tokenResp.Token)
	ctx.JSON(http.StatusOK, dto.NewDataResponse(tokenResp))
}

// GetMe retrieves the authenticated user's profile
// @Summary Get current user
// @Description Retrieves the profile of the authenticated user
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.User} "User retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /auth/me [get]
func (c *AuthController) GetMe(ctx *gin.Context) {
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	user, err := c.authService.GetCurrentUser(ctx, actor.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(user))
}

func (c *AuthController) setTokenCookie(ctx *gin.Context, token string) {
	ctx.SetCookie("token", token, c.cookieMaxAge, "/", "", c.cookieSecure, true)
}
