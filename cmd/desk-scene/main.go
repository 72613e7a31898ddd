package main

import (
	"path/filepath"
	"runtime"
	"time"

	"desk-scene/internal/config"
	"desk-scene/internal/geometry"
	"desk-scene/internal/graphics"
	"desk-scene/internal/input"
	"desk-scene/internal/logger"
	"desk-scene/internal/scene"
	"desk-scene/internal/view"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		panic(err)
	}
	// Flush logs on exit, including SIGINT/SIGTERM.
	closer.Bind(logger.Sync)
	defer closer.Close()
	log := logger.Log

	if err := glfw.Init(); err != nil {
		log.Fatal("glfw init failed", zap.Error(err))
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Graphics)
	if err != nil {
		log.Fatal("window creation failed", zap.Error(err))
	}

	if err := gl.Init(); err != nil {
		log.Fatal("opengl init failed", zap.Error(err))
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	shader, err := graphics.NewShader(
		filepath.Join(cfg.Assets.ShaderDir, "scene.vert"),
		filepath.Join(cfg.Assets.ShaderDir, "scene.frag"),
	)
	if err != nil {
		log.Fatal("shader setup failed", zap.Error(err))
	}
	defer shader.Delete()
	shader.Use()

	meshes := geometry.NewProvider()
	defer meshes.Dispose()

	composer := scene.NewComposer(shader, meshes, graphics.NewTextureUploader())
	defer composer.Dispose()

	if err := composer.PrepareScene(cfg.Assets.TextureDir); err != nil {
		log.Fatal("scene setup failed", zap.Error(err))
	}

	inputManager := input.NewManager()
	inputManager.SetKeyCallback(window)

	camera := view.NewCamera(cfg.Camera.FOV, cfg.Camera.MovementSpeed)
	controller := view.NewController(camera, inputManager, shader, cfg.Graphics.AspectRatio())
	controller.InstallCallbacks(window)

	placements := scene.DeskScene()
	log.Info("scene ready",
		zap.Int("placements", len(placements)),
		zap.Int("textures", composer.Textures().Len()))

	runLoop(window, cfg, shader, controller, composer, inputManager, placements)
}

func setupWindow(cfg config.GraphicsConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

func runLoop(
	window *glfw.Window,
	cfg *config.Config,
	shader *graphics.Shader,
	controller *view.Controller,
	composer *scene.Composer,
	inputManager *input.Manager,
	placements []scene.Placement,
) {
	limiter := newFPSLimiter(cfg.Graphics)
	lastTime := time.Now()

	for !window.ShouldClose() {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		glfw.PollEvents()

		gl.ClearColor(0.2, 0.25, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		shader.Use()
		controller.AdvanceFrame(dt)
		if controller.QuitRequested() {
			window.SetShouldClose(true)
		}
		composer.RenderScene(placements)

		window.SwapBuffers()
		inputManager.PostUpdate()

		if took := time.Since(now); took > 33*time.Millisecond {
			logger.Log.Warn("slow frame", zap.Duration("took", took))
		}
		limiter.Wait()
	}
}
