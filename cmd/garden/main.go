package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"topiary-garden/config"
	"topiary-garden/core"
	"topiary-garden/internal/headless"
	"topiary-garden/internal/opengl"
	"topiary-garden/scene"
	"topiary-garden/view"
)

func main() {
	var (
		configPath = flag.String("config", "garden.yml", "path to an optional YAML config file")
		textureDir = flag.String("textures", "", "directory holding the garden textures")
		logLevel   = flag.String("log-level", "", "debug, info, warn or error")
		dump       = flag.Bool("dump", false, "render one frame headless and write its calls as YAML to stdout")
		export     = flag.String("export", "", "write the garden as a binary glTF file and exit")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if *textureDir != "" {
		cfg.TextureDir = *textureDir
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	switch {
	case *export != "":
		err = exportScene(cfg, *export)
	case *dump:
		err = dumpFrame(cfg, os.Stdout)
	default:
		err = run(cfg)
	}
	if err != nil {
		slog.Error("garden failed", "error", err)
		os.Exit(1)
	}
}

func exportScene(cfg config.Config, path string) error {
	return scene.ExportGLTF(path, scene.GardenLayout(), scene.GardenMaterials(), scene.GardenTextures(cfg.TextureDir))
}

// dumpFrame prepares the scene and renders one frame against the headless
// recorder.
func dumpFrame(cfg config.Config, out io.Writer) error {
	rec := headless.NewRecorder()
	win := headless.NewWindow()

	vm := view.NewManager(rec, win, cfg.Window)
	sm := scene.NewManager(rec, rec, rec, scene.Options{TextureDir: cfg.TextureDir})
	sm.PrepareScene()

	vm.PrepareSceneView()
	sm.RenderScene()
	sm.Destroy()

	return rec.WriteYAML(out)
}

func run(cfg config.Config) error {
	win, err := core.NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer win.Destroy()

	if err := opengl.Init(); err != nil {
		return err
	}

	prog, err := opengl.NewGardenProgram()
	if err != nil {
		return fmt.Errorf("garden shader: %w", err)
	}
	defer prog.Destroy()
	prog.Use()

	meshes := opengl.NewMeshes()
	defer meshes.Destroy()

	vm := view.NewManager(prog, win, cfg.Window)
	sm := scene.NewManager(prog, meshes, opengl.NewTextures(), scene.Options{TextureDir: cfg.TextureDir})
	sm.PrepareScene()
	defer sm.Destroy()

	printControls()

	frames := 0
	lastReport := win.Time()
	for !win.ShouldClose() {
		w, h := win.GetFramebufferSize()
		opengl.BeginFrame(w, h)

		vm.PrepareSceneView()
		sm.RenderScene()

		win.SwapBuffers()
		win.PollEvents()

		frames++
		if now := win.Time(); now-lastReport >= 1 {
			fps := float64(frames) / (now - lastReport)
			win.SetTitle(fmt.Sprintf("%s | %.0f FPS", cfg.Window.Title, fps))
			slog.Debug("frame stats", "fps", fps, "mode", vm.State().Mode, "speed", vm.State().Speed)
			frames = 0
			lastReport = now
		}
	}
	return nil
}

func printControls() {
	fmt.Println("CAMERA CONTROLS:")
	fmt.Println("  W / S        - Move forward / backward")
	fmt.Println("  A / D        - Strafe left / right")
	fmt.Println("  Q / E        - Move up / down")
	fmt.Println("  Mouse        - Look around")
	fmt.Println("  Scroll       - Change movement speed")
	fmt.Println("")
	fmt.Println("VIEW TOGGLES:")
	fmt.Println("  P            - Perspective projection")
	fmt.Println("  O            - Orthographic projection")
	fmt.Println("  Escape       - Quit")
}
