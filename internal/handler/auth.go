package handler

import (
	"errors"
	"net/http"

	"schoolbackend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
}

type authHandler struct {
	authService service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService service.AuthService, logger *zap.Logger) AuthHandler {
	return &authHandler{authService: authService, logger: logger}
}

type RegisterRequest struct {
	FirstName   string `json:"firstName" binding:"required,plain"`
	LastName    string `json:"lastName" binding:"required,plain"`
	Username    string `json:"userName" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"plain"`
	LocationID  string `json:"locationId" binding:"plain"`
	TypeID      string `json:"typeId" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/Authentication/Register.
func (h *authHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed to bind registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, BaseResponse{ResponseCode: CodeFailure, ResponseMessage: "Invalid registration request"})
		return
	}

	h.logger.Info("Request received to register auth user", zap.String("username", req.Username))

	_, err := h.authService.Register(service.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Username:    req.Username,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		LocationID:  req.LocationID,
		TypeID:      req.TypeID,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusOK, BaseResponse{ResponseCode: CodeFailure, ResponseMessage: "User already exists"})
			return
		}
		h.logger.Error("Failed to register auth user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, BaseResponse{ResponseCode: CodeServerError, ResponseMessage: "An error occurred, please try again"})
		return
	}

	c.JSON(http.StatusCreated, BaseResponse{ResponseCode: CodeSuccess, ResponseMessage: "User created successfully"})
}

// Login handles POST /api/Authentication/Login. Authentication failures are
// returned as HTTP 200 with responseCode "01" — existing clients parse the
// body code, not the status line.
func (h *authHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed to bind login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, BaseResponse{ResponseCode: CodeFailure, ResponseMessage: "Invalid login request"})
		return
	}

	h.logger.Info("Request received to login auth user", zap.String("username", req.Username))

	result, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusOK, BaseResponse{ResponseCode: CodeFailure, ResponseMessage: "Incorrect Username or Password"})
			return
		}
		h.logger.Error("Failed to login auth user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, BaseResponse{ResponseCode: CodeServerError, ResponseMessage: "An error occurred, please try again"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:        result.Token,
		BaseResponse: BaseResponse{ResponseCode: CodeSuccess, ResponseMessage: "Login successful"},
	})
}
