package handler

import (
	"errors"

	"go-material-trade/internal/apperr"
	"go-material-trade/internal/model"
	"go-material-trade/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MaterialHandler struct {
	service service.MaterialService
}

func NewMaterialHandler(s service.MaterialService) *MaterialHandler {
	return &MaterialHandler{service: s}
}

// Create handles material creation
// POST /materials
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var material model.Material
	if err := c.BodyParser(&material); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Create(&material); err != nil {
		return writeError(c, err, 500)
	}

	return c.Status(201).JSON(material)
}

// List returns all materials
// GET /materials
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	materials, err := h.service.List()
	if err != nil {
		return writeError(c, err, 500)
	}
	return c.JSON(materials)
}

// Get returns a single material by ID
// GET /materials/:id
func (h *MaterialHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid material ID"})
	}

	material, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Material not found"})
		}
		return writeError(c, err, 500)
	}
	return c.JSON(material)
}

// Update handles material rename
// PUT /materials/:id
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid material ID"})
	}

	var req model.Material
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	material, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Material not found"})
		}
		return writeError(c, err, 500)
	}
	return c.JSON(material)
}

// Delete removes a material
// DELETE /materials/:id
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid material ID"})
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Material not found"})
		}
		return writeError(c, err, 500)
	}
	return c.JSON(fiber.Map{"message": "Material deleted"})
}
