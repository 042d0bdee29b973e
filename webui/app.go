package webui

import (
	"errors"
	"net/http"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/consolehq/console/core/assets"
	"github.com/consolehq/console/core/types"
)

type App struct {
	config *Config
	*fiber.App
}

func NewApp(opts ...Option) *App {
	config := NewConfig(opts...)

	webapp := fiber.New(fiber.Config{})

	a := &App{
		config: config,
		App:    webapp,
	}

	a.registerRoutes(webapp)

	return a
}

// cacheFor resolves the :kind route parameter to the matching cache.
func (a *App) cacheFor(kind string) (*assets.Assets, bool) {
	switch types.AssetKind(kind) {
	case types.KindAgent:
		return a.config.Agents, true
	case types.KindMaterial:
		return a.config.Materials, true
	}
	return nil, false
}

// errorJSONMessage maps domain errors onto HTTP statuses: missing
// resources are 404, create conflicts 409, invalid ids and ownership
// violations 400, anything else 500.
func errorJSONMessage(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrAssetNotFound), errors.Is(err, types.ErrChatNotFound):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrAssetExists):
		status = http.StatusConflict
	case errors.Is(err, types.ErrReservedAgentID), errors.Is(err, types.ErrNotEditable):
		status = http.StatusBadRequest
	}
	return c.Status(status).JSON(struct {
		Error string `json:"error"`
	}{Error: err.Error()})
}

func badRequestJSONMessage(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(struct {
		Error string `json:"error"`
	}{Error: message})
}

func statusJSONMessage(c *fiber.Ctx, message string) error {
	return c.JSON(struct {
		Status string `json:"status"`
	}{Status: message})
}
