package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"venom-editor/app"
	"venom-editor/camera"
	"venom-editor/config"
	"venom-editor/core"
	"venom-editor/editor"
	"venom-editor/layer"
	"venom-editor/logger"
	"venom-editor/scene"
)

func main() {
	configPath := flag.String("config", "", "path to a venom.yaml config file")
	writeConfig := flag.String("write-config", "", "write the default config to this path and exit")
	flag.Parse()

	if *writeConfig != "" {
		if err := config.WriteDefault(*writeConfig); err != nil {
			slog.Error("Failed to write config", "error", err)
			os.Exit(1)
		}
		fmt.Println("wrote", *writeConfig)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Editor stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	keys, err := cfg.Bindings()
	if err != nil {
		return err
	}

	window, err := core.NewWindow(core.WindowConfig{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Samples:   cfg.Window.Samples,
		Resizable: cfg.Window.Resizable,
		VSync:     cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	a := app.New(window, app.WithLogger(log))

	sc, err := openScene(cfg.Export.ScenePath, log)
	if err != nil {
		return err
	}
	ed := editor.NewEditorLayer(sc, a.Input, cfg.Export, log)
	a.Layers.PushLayer(core.NewViewportLayer(cfg.Window.ClearColor))
	controller := camera.NewControllerLayer(camera.NewCamera(), a.Input, cfg.Camera, keys, log)
	controller.Hovered = window.CursorInside
	a.Layers.PushLayer(controller)
	a.Layers.PushLayer(ed)
	a.Layers.PushOverlay(&titleOverlay{Base: layer.NewBase("Title"), window: window, editor: ed, base: cfg.Window.Title})

	log.Info("Editor started",
		"window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
		"export", cfg.Export.Path)
	return a.Run(ctx)
}

// openScene loads the saved scene when there is one.
func openScene(path string, log *slog.Logger) (*scene.Scene, error) {
	sc, skipped, err := scene.Open(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return scene.New(), nil
	case err != nil:
		return nil, err
	}
	if len(skipped) > 0 {
		log.Warn("Nodes skipped", "path", path, "nodes", skipped)
	}
	log.Info("Scene loaded", "path", path, "objects", sc.Len())
	return sc, nil
}

// titleOverlay mirrors the editor status into the window title.
type titleOverlay struct {
	layer.Base
	window *core.Window
	editor *editor.EditorLayer
	base   string
	last   string
}

func (t *titleOverlay) OnGUIRender() {
	status := t.editor.Status()
	if status == t.last {
		return
	}
	t.last = status
	t.window.SetTitle(t.base + " | " + status)
}
