package cart

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/shopping-backend/internal/product"
	"github.com/wichananm65/shopping-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/cart", h.addItem)
	router.Get("/cart", h.listItems)
	router.Patch("/cart/:id", h.updateQuantity)
	router.Delete("/cart/:id", h.deleteItem)
}

type addItemRequest struct {
	ProductID int64 `json:"productId"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	email, err := user.EmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	item, err := h.service.AddItem(c.UserContext(), email, payload.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *Handler) listItems(c *fiber.Ctx) error {
	email, err := user.EmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	items, err := h.service.ListItems(c.UserContext(), email)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	email, err := user.EmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid cart item id"})
	}
	payload := new(updateQuantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "quantity must be positive"})
	}

	item, err := h.service.UpdateQuantity(c.UserContext(), email, int64(id), payload.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}

func (h *Handler) deleteItem(c *fiber.Ctx) error {
	email, err := user.EmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid cart item id"})
	}

	if err := h.service.DeleteItem(c.UserContext(), email, int64(id)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// writeError maps domain errors to responses. A cart item owned by someone
// else is reported as not found.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	case errors.Is(err, product.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	case errors.Is(err, ErrNotFound), errors.Is(err, user.ErrNotMatch):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "cart item not found"})
	case errors.Is(err, ErrProductAlreadyInCart):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "product already in cart"})
	default:
		return err
	}
}
