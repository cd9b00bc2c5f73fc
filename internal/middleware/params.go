package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/utils"
)

const (
	ticketKindKey     = "ticketKind"
	catalogVariantKey = "catalogVariant"
)

// TicketKind stores the ticket collection served by a route group in context
func TicketKind(kind models.TicketKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(ticketKindKey, kind)
		return c.Next()
	}
}

// CatalogVariant parses the :variant path parameter and stores it in context.
// Unknown variants are a 404.
func CatalogVariant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		variant, ok := models.ParseCatalogVariant(c.Params("variant"))
		if !ok {
			return utils.NotFoundResponse(c, fmt.Sprintf("Unknown catalog '%s'", c.Params("variant")))
		}
		c.Locals(catalogVariantKey, variant)
		return c.Next()
	}
}

// KindFrom returns the ticket kind stored by TicketKind
func KindFrom(c *fiber.Ctx) models.TicketKind {
	kind, _ := c.Locals(ticketKindKey).(models.TicketKind)
	return kind
}

// VariantFrom returns the catalog variant stored by CatalogVariant
func VariantFrom(c *fiber.Ctx) models.CatalogVariant {
	variant, _ := c.Locals(catalogVariantKey).(models.CatalogVariant)
	return variant
}
