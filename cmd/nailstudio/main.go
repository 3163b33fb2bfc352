// NailStudio — Nail Art Inventory & Designer
//
// A cross-platform desktop application for managing nail-art supplies
// and previewing product choices on a ten-nail canvas.
//
// Build:
//   go build -o nailstudio ./cmd/nailstudio
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o nailstudio.exe ./cmd/nailstudio
//   GOOS=darwin  GOARCH=amd64 go build -o nailstudio-darwin ./cmd/nailstudio
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"github.com/amaliris/nailstudio/internal/session"
	"github.com/amaliris/nailstudio/internal/storage"
	"github.com/amaliris/nailstudio/internal/store"
	"github.com/amaliris/nailstudio/internal/ui"
)

func main() {
	application := app.NewWithID("com.amaliris.nailstudio")
	window := application.NewWindow("NailStudio — Nail Art Inventory & Designer")

	config, err := storage.LoadAppConfig(storage.DefaultConfigPath())
	if err != nil {
		log.Printf("loading app config: %v", err)
	}

	st := store.New(&storage.FileStore{Path: storage.DefaultInventoryPath()})
	loadErr := st.Load()
	if loadErr != nil {
		log.Printf("loading inventory: %v", loadErr)
	}

	sess := session.New(st)
	sess.SetPickerCategory(config.DefaultPickerCategory)

	appUI := ui.NewApp(application, window, st, sess, config)
	appUI.ApplyConfiguredTheme()
	appUI.SetupMenus() // Setup the native menu bar
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1000, 700))
	window.CenterOnScreen()

	if loadErr != nil && errors.Is(loadErr, storage.ErrCorruptData) {
		dialog.ShowError(
			fmt.Errorf("the stored inventory could not be read and was reset: %w", loadErr),
			window,
		)
	}

	window.ShowAndRun()
}
