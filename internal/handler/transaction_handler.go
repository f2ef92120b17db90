package handler

import (
	"errors"

	"go-material-trade/internal/apperr"
	"go-material-trade/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	service service.TransactionService
}

func NewTransactionHandler(s service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// Create handles transaction creation
// POST /transactions
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req service.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	tx, err := h.service.Create(&req)
	if err != nil {
		return writeError(c, err, 400)
	}

	return c.Status(201).JSON(tx)
}

// List returns all transactions with vendor, customer and material joined
// GET /transactions
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	transactions, err := h.service.List()
	if err != nil {
		return writeError(c, err, 500)
	}
	return c.JSON(transactions)
}

// Get returns a single transaction with joined attributes
// GET /transactions/:id
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Transaction ID must be a valid UUID"})
	}

	tx, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
		}
		return writeError(c, err, 500)
	}
	return c.JSON(tx)
}

// Update applies a partial merge of the posted fields
// PUT /transactions/:id
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Transaction ID must be a valid UUID"})
	}

	var req service.UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	tx, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
		}
		return writeError(c, err, 400)
	}
	return c.JSON(tx)
}

// Delete removes a transaction
// DELETE /transactions/:id
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Transaction ID must be a valid UUID"})
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
		}
		return writeError(c, err, 500)
	}
	return c.SendStatus(204)
}
