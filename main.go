package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mudler/xlog"

	"github.com/consolehq/console/core/assets"
	"github.com/consolehq/console/core/chat"
	"github.com/consolehq/console/core/settings"
	"github.com/consolehq/console/core/sse"
	"github.com/consolehq/console/core/types"
	"github.com/consolehq/console/db"
	"github.com/consolehq/console/pkg/watcher"
	"github.com/consolehq/console/webui"
)

var dbDriver = os.Getenv("CONSOLE_DB_DRIVER")
var dbDSN = os.Getenv("CONSOLE_DB_DSN")
var stateDir = os.Getenv("CONSOLE_STATE_DIR")
var projectDir = os.Getenv("CONSOLE_PROJECT_DIR")
var listenAddr = os.Getenv("CONSOLE_LISTEN_ADDR")

func init() {
	if stateDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			panic(err)
		}
		stateDir = filepath.Join(cwd, "state")
	}
	if dbDriver == "" {
		dbDriver = "sqlite"
	}
	if dbDSN == "" {
		dbDSN = filepath.Join(stateDir, "console.db")
	}
	if listenAddr == "" {
		listenAddr = ":3000"
	}
}

func main() {
	// make sure state dir exists
	os.MkdirAll(stateDir, 0755)

	store, err := db.Connect(dbDriver, dbDSN)
	if err != nil {
		panic(err)
	}

	overlay := settings.NewStore(store)
	manager := sse.NewManager(5)

	agents := assets.New(types.KindAgent, store, overlay, manager)
	materials := assets.New(types.KindMaterial, store, overlay, manager)
	chats := chat.NewHistory(store)

	if err := agents.Reload(true); err != nil {
		panic(err)
	}
	if err := materials.Reload(true); err != nil {
		panic(err)
	}

	// Project-dir edits (e.g. via an external editor) trigger a single
	// reload per burst of changes.
	if projectDir != "" {
		batcher, err := watcher.New(projectDir, ".toml", time.Second, func() {
			if err := agents.Reload(false); err != nil {
				xlog.Error("Failed to reload agents", "error", err)
			}
			if err := materials.Reload(false); err != nil {
				xlog.Error("Failed to reload materials", "error", err)
			}
		})
		if err != nil {
			panic(err)
		}
		defer batcher.Close()
	}

	app := webui.NewApp(
		webui.WithAgents(agents),
		webui.WithMaterials(materials),
		webui.WithChats(chats),
		webui.WithManager(manager),
		webui.WithStateDir(stateDir),
	)

	log.Fatal(app.Listen(listenAddr))
}
