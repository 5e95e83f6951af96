package order

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/shopping-backend/internal/cart"
	"github.com/wichananm65/shopping-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/orders", h.createOrder)
	router.Get("/orders", h.listOrders)
	router.Get("/orders/:id", h.getOrder)
}

type createOrderResponse struct {
	OrderID int64 `json:"orderId"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	email, err := user.EmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	id, err := h.service.CreateOrder(c.UserContext(), email)
	if err != nil {
		return writeError(c, err)
	}

	c.Location(c.Path() + "/" + strconv.FormatInt(id, 10))
	return c.Status(fiber.StatusCreated).JSON(createOrderResponse{OrderID: id})
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	email, err := user.EmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	o, err := h.service.FindOrder(c.UserContext(), email, int64(id))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(o)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	email, err := user.EmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	page, err := h.service.ListOrders(c.UserContext(), email, c.QueryInt("page", 1), c.QueryInt("size", MinPageSize))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(page)
}

// writeError maps domain errors to responses. An order owned by someone
// else is reported as not found.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	case errors.Is(err, ErrNotFound), errors.Is(err, user.ErrNotMatch):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	case errors.Is(err, cart.ErrCartChanged):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "cart changed, please retry"})
	case errors.Is(err, ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart is empty"})
	default:
		return err
	}
}
