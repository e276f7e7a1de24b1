package auth_test

import (
	"net/http/httptest"
	"testing"

	"blob-integration/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(cfg auth.Config) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(cfg))
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		cfg    auth.Config
		target string
		header string
		want   int
	}{
		{"Disabled", auth.Config{}, "/containers", "", 200},
		{"Missing", auth.Config{ApiKey: "k"}, "/containers", "", 401},
		{"Wrong", auth.Config{ApiKey: "k"}, "/containers", "nope", 401},
		{"Header", auth.Config{ApiKey: "k"}, "/containers", "k", 200},
		{"Query", auth.Config{ApiKey: "k"}, "/containers?code=k", "", 200},
		{"WrongQuery", auth.Config{ApiKey: "k"}, "/containers?code=x", "", 401},
		{"Skipped", auth.Config{ApiKey: "k", Skip: []string{"/swagger"}}, "/swagger/index.html", "", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			if tt.header != "" {
				req.Header.Set(auth.Header, tt.header)
			}

			resp, err := setupApp(tt.cfg).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
