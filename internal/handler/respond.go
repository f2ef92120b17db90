package handler

import (
	"errors"

	"go-material-trade/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// writeError maps a service failure onto the wire contract: validation
// failures carry the full ordered field list, and constraint violations
// are client errors. fallback is the status for untyped store failures;
// the transaction write paths keep 400 there (every failure on that path
// is caller-correctable), everything else reports 500. Absent rows are
// handled by the callers whose operations can produce them.
func writeError(c *fiber.Ctx, err error, fallback int) error {
	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		return c.Status(400).JSON(fiber.Map{"errors": verr.Fields})
	}
	var cerr *apperr.ConstraintError
	if errors.As(err, &cerr) {
		return c.Status(400).JSON(fiber.Map{"error": cerr.Error()})
	}
	return c.Status(fallback).JSON(fiber.Map{"error": err.Error()})
}
