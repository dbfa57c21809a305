package request

import (
	"github.com/gofiber/fiber/v2"
)

// Parse decodes the request body into out. An empty body leaves out
// untouched so missing fields surface as validation errors instead.
func Parse(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(out)
}
