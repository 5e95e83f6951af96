package user

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	service *Service
	tokens  *TokenProvider
	log     *zap.Logger
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

func NewHandler(service *Service, tokens *TokenProvider, log *zap.Logger) *Handler {
	return &Handler{service: service, tokens: tokens, log: log}
}

// RegisterPublicRoutes mounts the login endpoint. Extra handlers, such as a
// rate limiter, run before login.
func (h *Handler) RegisterPublicRoutes(router fiber.Router, middleware ...fiber.Handler) {
	handlers := append(append([]fiber.Handler{}, middleware...), h.login)
	router.Post("/login/token", handlers...)
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Email == "" || payload.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email and password are required"})
	}

	user, err := h.service.Authenticate(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidCredentials) {
			h.log.Debug("login rejected", zap.String("email", payload.Email), zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
		}
		return err
	}

	signed, err := h.tokens.Issue(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(loginResponse{AccessToken: signed})
}
