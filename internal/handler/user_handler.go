package handler

import (
	"errors"

	"go-material-trade/internal/apperr"
	"go-material-trade/internal/model"
	"go-material-trade/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Create handles user creation
// POST /users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var user model.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Create(&user); err != nil {
		return writeError(c, err, 500)
	}

	return c.Status(201).JSON(user)
}

// List returns all users
// GET /users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.service.List()
	if err != nil {
		return writeError(c, err, 500)
	}
	return c.JSON(users)
}

// Get returns a single user by ID
// GET /users/:id
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	user, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return writeError(c, err, 500)
	}
	return c.JSON(user)
}

// Update handles username change
// PUT /users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var req model.User
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	user, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return writeError(c, err, 500)
	}
	return c.JSON(user)
}

// Delete removes a user
// DELETE /users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return writeError(c, err, 500)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
