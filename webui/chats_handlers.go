package webui

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/consolehq/console/core/chat"
	"github.com/consolehq/console/core/types"
)

func (a *App) ListChats() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		summaries, err := a.config.Chats.List()
		if err != nil {
			return errorJSONMessage(c, err)
		}
		return c.JSON(summaries)
	}
}

func (a *App) GetChat() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		loaded, err := a.config.Chats.Load(c.Params("id"))
		if err != nil {
			return errorJSONMessage(c, err)
		}
		if loaded == nil {
			return errorJSONMessage(c, types.ErrChatNotFound)
		}
		return c.JSON(loaded)
	}
}

func (a *App) SaveChat() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		var payload chat.Chat
		if err := c.BodyParser(&payload); err != nil {
			return badRequestJSONMessage(c, "Invalid chat payload: "+err.Error())
		}
		payload.ID = c.Params("id")

		if err := a.config.Chats.Save(&payload); err != nil {
			return errorJSONMessage(c, err)
		}
		return c.JSON(payload)
	}
}

func (a *App) DeleteChat() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		if err := a.config.Chats.Delete(c.Params("id")); err != nil {
			return errorJSONMessage(c, err)
		}
		return statusJSONMessage(c, "ok")
	}
}
