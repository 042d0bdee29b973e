package webui

import (
	"github.com/google/uuid"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/consolehq/console/core/sse"
)

func (a *App) registerRoutes(webapp *fiber.App) {

	// Live update stream shared by all connected clients.
	webapp.Get("/api/events", func(c *fiber.Ctx) error {
		a.config.Manager.Handle(c, sse.NewClient(uuid.NewString()))
		return nil
	})

	webapp.Get("/api/assets/:kind", a.ListAssets())
	webapp.Get("/api/assets/:kind/:id", a.GetAsset())
	webapp.Get("/api/assets/:kind/:id/exists", a.AssetExists())
	webapp.Post("/api/assets/:kind/:id", a.CreateAsset())
	webapp.Patch("/api/assets/:kind/:id", a.UpdateAsset())
	webapp.Delete("/api/assets/:kind/:id", a.DeleteAsset())
	webapp.Get("/api/assets/:kind/:id/status", a.GetAssetStatus())
	webapp.Post("/api/assets/:kind/:id/status", a.SetAssetStatus())
	webapp.Post("/api/assets/:kind/:id/rename", a.RenameAssetStatus())
	webapp.Post("/api/assets/:kind/:id/image", a.SetAssetImage())

	webapp.Get("/api/chats", a.ListChats())
	webapp.Get("/api/chats/:id", a.GetChat())
	webapp.Post("/api/chats/:id", a.SaveChat())
	webapp.Delete("/api/chats/:id", a.DeleteChat())
}
