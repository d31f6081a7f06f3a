package reconcile

import (
	"fmt"

	"till-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// -------------------------------------------------
// POST /api/reconcile
// -------------------------------------------------
func ReconcileHandler(engine *Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := engine.Dispatch(c.UserContext(), auth.CurrentUser(c), c.Body())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(res)
	}
}

// -------------------------------------------------
// GET /api/records/export
// -------------------------------------------------
func ExportHandler(engine *Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := engine.Records(c.UserContext())
		if err != nil {
			return writeError(c, err)
		}

		c.Set(fiber.HeaderContentType, XLSXContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, ExportFilename(engine.now())))
		if err := WriteWorkbook(c, records); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Export could not be generated")
		}
		return nil
	}
}

func writeError(c *fiber.Ctx, err error) error {
	e := AsError(err)
	msg := e.Message
	if msg == "" {
		msg = "Internal server error"
	}
	return c.Status(e.Status()).JSON(fiber.Map{
		"status":  StatusError,
		"message": msg,
	})
}
