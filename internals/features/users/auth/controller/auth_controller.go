package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bilimcenter_backend/internals/configs"
	dto "bilimcenter_backend/internals/features/users/auth/dto"
	model "bilimcenter_backend/internals/features/users/auth/model"
	service "bilimcenter_backend/internals/features/users/auth/service"
	helper "bilimcenter_backend/internals/helpers"
	helperAuth "bilimcenter_backend/internals/helpers/auth"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

/* =========================================================
   POST /api/auth/login
========================================================= */

func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.User
	err := h.DB.WithContext(c.UserContext()).
		First(&user, "email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error
	if err != nil {
		// same response for unknown email and bad password
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := service.GenerateAccessToken(user, configs.JWTSecret)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})

	return helper.Success(c, "Logged in", dto.LoginResponse{
		AccessToken: token,
		User:        dto.NewUserResponse(user),
	})
}

/* =========================================================
   GET /api/auth/me
========================================================= */

func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.UserIDFromLocals(c)
	if err != nil {
		return err
	}

	var user model.User
	if err := h.DB.WithContext(c.UserContext()).First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "OK", dto.NewUserResponse(user))
}

/* =========================================================
   POST /api/a/users — admin creates portal accounts
========================================================= */

func (h *AuthController) RegisterUser(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         req.Role,
		StudentID:    req.StudentID,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusConflict, "Email already registered")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created", dto.NewUserResponse(user))
}

/* =========================================================
   POST /api/auth/logout
========================================================= */

func (h *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
	return helper.Success(c, "Logged out", nil)
}
