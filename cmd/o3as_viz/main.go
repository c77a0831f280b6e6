package main

import (
	"embed"
	"os"

	"github.com/charmbracelet/log"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/user/o3as_viz_go/internal/config"
)

//go:embed all:frontend/public
var assets embed.FS

func main() {
	v, err := config.New(os.Getenv("O3AS_CONFIG"))
	if err != nil {
		log.Fatal("Error reading config", "err", err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		log.Fatal("Error in config", "err", err)
	}

	app := NewApp(cfg)

	err = wails.Run(&options.App{
		Title:  "O3as Visualizer",
		Width:  1280,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 255},
		OnStartup:        app.Startup,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		log.Fatal("Error running Wails app", "err", err)
	}
}
