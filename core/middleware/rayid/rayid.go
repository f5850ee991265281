package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request's ray id.
const HeaderName = "X-Ray-ID"

// LocalsKey is the fiber locals key the ray id is stored under.
const LocalsKey = "ray_id"

// New returns a middleware that tags every request with a unique ray id
// so log lines can be correlated per request.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
