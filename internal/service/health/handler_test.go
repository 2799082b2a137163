package health

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestFiberHandler_Health(t *testing.T) {
	app := fiber.New()
	NewFiberHandler(NewService()).RegisterRoutes(app)

	for _, path := range []string{"/health", "/healthz", "/livez", "/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, resp.StatusCode)
		}
		if string(body) != `{"ok":true}` {
			t.Errorf("%s: expected {\"ok\":true}, got %s", path, body)
		}
	}
}
