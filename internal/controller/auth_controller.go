package controller

import (
	"errors"

	"github.com/karthi421/skillmutant-backend/internal/service"
	"github.com/karthi421/skillmutant-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewAuthController(authService *service.AuthService, userService *service.UserService) *AuthController {
	return &AuthController{
		AuthService: authService,
		UserService: userService,
	}
}

// GoogleLoginRequest carries the verified Google identity.
// swagger:model GoogleLoginRequest
type GoogleLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	GoogleID string `json:"googleId" binding:"required"`
}

// GoogleLogin godoc
// @Summary Log in or sign up with Google
// @Description Upserts the account by email and returns a token; existing=false means the account still needs a username and password
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body GoogleLoginRequest true "Google identity"
// @Success 200 {object} util.Response{data=service.GoogleLoginResult}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/auth/google [post]
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	var req GoogleLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.GoogleLogin(req.Email, req.GoogleID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// CompleteAccountRequest finishes a Google-created signup.
// swagger:model CompleteAccountRequest
type CompleteAccountRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
}

// CompleteAccount godoc
// @Summary Set username and password on a Google account
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body CompleteAccountRequest true "Credentials"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/auth/complete-account [post]
func (c *AuthController) CompleteAccount(ctx *gin.Context) {
	var req CompleteAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.CompleteAccount(req.Email, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "Account not found")
		case errors.Is(err, util.ErrEmailRegistered):
			util.Error(ctx, 409, "Account is already set up")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// LoginRequest is the password flow.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "Credentials"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrGoogleAccountOnly):
			util.Error(ctx, 400, "This account uses Google sign-in")
		case errors.Is(err, util.ErrInvalidCredentials):
			util.Error(ctx, 401, "Invalid email or password")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// Me godoc
// @Summary Current user's profile
// @Tags auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.Profile}
// @Failure 401 {object} util.Response
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, profile)
}
