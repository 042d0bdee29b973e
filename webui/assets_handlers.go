package webui

import (
	"os"
	"path/filepath"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/consolehq/console/core/types"
)

type assetResponse struct {
	*types.Asset
	Status types.AssetStatus `json:"status"`
}

// ListAssets returns every resident asset of the kind, with its effective
// overlay status attached.
func (a *App) ListAssets() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		cache, ok := a.cacheFor(c.Params("kind"))
		if !ok {
			return badRequestJSONMessage(c, "Unknown asset kind")
		}

		all := cache.All()
		out := make([]assetResponse, 0, len(all))
		for _, asset := range all {
			status, err := cache.Status(asset.ID)
			if err != nil {
				return errorJSONMessage(c, err)
			}
			out = append(out, assetResponse{Asset: asset, Status: status})
		}
		return c.JSON(out)
	}
}

func (a *App) GetAsset() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		cache, ok := a.cacheFor(c.Params("kind"))
		if !ok {
			return badRequestJSONMessage(c, "Unknown asset kind")
		}

		var location *types.AssetLocation
		if l := c.Query("location"); l != "" {
			loc := types.AssetLocation(l)
			location = &loc
		}

		asset := cache.Get(c.Params("id"), location)
		if asset == nil {
			return errorJSONMessage(c, types.ErrAssetNotFound)
		}

		status, err := cache.Status(asset.ID)
		if err != nil {
			return errorJSONMessage(c, err)
		}
		return c.JSON(assetResponse{Asset: asset, Status: status})
	}
}

// AssetExists is the pre-create probe the editor uses. The location query
// parameter is required; the sentinel id "new" never exists.
func (a *App) AssetExists() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		cache, ok := a.cacheFor(c.Params("kind"))
		if !ok {
			return badRequestJSONMessage(c, "Unknown asset kind")
		}

		l := c.Query("location")
		if l == "" {
			return badRequestJSONMessage(c, "Location not specified")
		}
		location := types.AssetLocation(l)

		id := c.Params("id")
		exists := false
		if id != "new" {
			exists = cache.Get(id, &location) != nil
		}
		return c.JSON(struct {
			Exists bool `json:"exists"`
		}{Exists: exists})
	}
}

func (a *App) CreateAsset() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		cache, ok := a.cacheFor(c.Params("kind"))
		if !ok {
			return badRequestJSONMessage(c, "Unknown asset kind")
		}

		var asset types.Asset
		if err := c.BodyParser(&asset); err != nil {
			return badRequestJSONMessage(c, "Invalid asset payload: "+err.Error())
		}
		asset.Kind = cache.Kind()

		saved, err := cache.Create(c.Params("id"), &asset)
		if err != nil {
			return errorJSONMessage(c, err)
		}
		return c.JSON(saved)
	}
}

func (a *App) UpdateAsset() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		cache, ok := a.cacheFor(c.Params("kind"))
		if !ok {
			return badRequestJSONMessage(c, "Unknown asset kind")
		}

		var asset types.Asset
		if err := c.BodyParser(&asset); err != nil {
			return badRequestJSONMessage(c, "Invalid asset payload: "+err.Error())
		}
		asset.Kind = cache.Kind()

		saved, err := cache.Update(c.Params("id"), &asset)
		if err != nil {
			return errorJSONMessage(c, err)
		}
		return c.JSON(saved)
	}
}

func (a *App) DeleteAsset() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		cache, ok := a.cacheFor(c.Params("kind"))
		if !ok {
			return badRequestJSONMessage(c, "Unknown asset kind")
		}

		if err := cache.Delete(c.Params("id")); err != nil {
			return errorJSONMessage(c, err)
		}
		return statusJSONMessage(c, "ok")
	}
}

func (a *App) GetAssetStatus() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		cache, ok := a.cacheFor(c.Params("kind"))
		if !ok {
			return badRequestJSONMessage(c, "Unknown asset kind")
		}

		status, err := cache.Status(c.Params("id"))
		if err != nil {
			return errorJSONMessage(c, err)
		}
		return c.JSON(struct {
			Status types.AssetStatus `json:"status"`
		}{Status: status})
	}
}

func (a *App) SetAssetStatus() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		cache, ok := a.cacheFor(c.Params("kind"))
		if !ok {
			return badRequestJSONMessage(c, "Unknown asset kind")
		}

		payload := struct {
			Status   types.AssetStatus `json:"status"`
			ToGlobal bool              `json:"to_global"`
		}{}
		if err := c.BodyParser(&payload); err != nil {
			return badRequestJSONMessage(c, "Invalid status payload: "+err.Error())
		}

		if err := cache.SetStatus(c.Params("id"), payload.Status, payload.ToGlobal); err != nil {
			return errorJSONMessage(c, err)
		}
		return statusJSONMessage(c, "ok")
	}
}

// RenameAssetStatus moves the status overlay entry to a new id. The asset
// record itself is rewritten by the editor through the normal save path.
func (a *App) RenameAssetStatus() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		cache, ok := a.cacheFor(c.Params("kind"))
		if !ok {
			return badRequestJSONMessage(c, "Unknown asset kind")
		}

		payload := struct {
			NewID string `json:"new_id"`
		}{}
		if err := c.BodyParser(&payload); err != nil || payload.NewID == "" {
			return badRequestJSONMessage(c, "Missing new_id")
		}

		if err := cache.Rename(c.Params("id"), payload.NewID); err != nil {
			return errorJSONMessage(c, err)
		}
		return statusJSONMessage(c, "ok")
	}
}

// SetAssetImage stores an uploaded profile image as <id>.jpg under the
// per-kind state directory. The image is never inspected.
func (a *App) SetAssetImage() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		cache, ok := a.cacheFor(c.Params("kind"))
		if !ok {
			return badRequestJSONMessage(c, "Unknown asset kind")
		}

		file, err := c.FormFile("image")
		if err != nil {
			return badRequestJSONMessage(c, "Missing image upload")
		}

		dir := filepath.Join(a.config.StateDir, string(cache.Kind())+"s")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errorJSONMessage(c, err)
		}

		if err := c.SaveFile(file, filepath.Join(dir, c.Params("id")+".jpg")); err != nil {
			return errorJSONMessage(c, err)
		}
		return statusJSONMessage(c, "ok")
	}
}
