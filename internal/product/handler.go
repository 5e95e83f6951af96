package product

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/products", h.getProducts)
	router.Get("/products/page", h.getProductPage)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	products, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

func (h *Handler) getProductPage(c *fiber.Ctx) error {
	page, err := h.service.FindAllByPage(c.UserContext(), c.QueryInt("page", 1))
	if err != nil {
		return err
	}
	return c.JSON(page)
}
