package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/planning-portal/internal/models"
)

func TestTicketKind(t *testing.T) {
	app := fiber.New()
	app.Get("/work-tickets", TicketKind(models.WorkTickets), func(c *fiber.Ctx) error {
		return c.SendString(string(KindFrom(c)))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/work-tickets", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "work-tickets" {
		t.Errorf("Expected work-tickets, got %q", body)
	}
}

func TestCatalogVariant(t *testing.T) {
	app := fiber.New()
	app.Get("/catalog/:variant", CatalogVariant(), func(c *fiber.Ctx) error {
		return c.SendString(string(VariantFrom(c)))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog/pre-prepared-initial-assessments", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "pre-prepared-initial-assessments" {
		t.Errorf("Unexpected variant %q", body)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/catalog/premium", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

func TestKindFromMissing(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if KindFrom(c) != "" || VariantFrom(c) != "" {
			t.Error("Expected empty values without middleware")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	if _, err := app.Test(httptest.NewRequest("GET", "/", nil)); err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
}
