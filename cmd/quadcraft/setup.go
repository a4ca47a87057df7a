package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
	"unsafe"

	"quadcraft/internal/assets"
	"quadcraft/internal/config"
	"quadcraft/internal/graphics"
	"quadcraft/internal/graphics/renderables/blocks"
	"quadcraft/internal/graphics/renderables/crosshair"
	"quadcraft/internal/graphics/renderables/outline"
	renderer "quadcraft/internal/graphics/renderer"
	"quadcraft/internal/meshing"
	"quadcraft/internal/metrics"
	"quadcraft/internal/player"
	"quadcraft/internal/world"

	"github.com/dustin/go-humanize"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xlab/closer"
)

const (
	windowTitle = "quadcraft"
	shadersDir  = "shaders"
)

func setupWindow(wc config.WindowConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	var monitor *glfw.Monitor
	if wc.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	window, err := glfw.CreateWindow(wc.Width, wc.Height, windowTitle, monitor, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	if wc.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

// GameComponents holds all the initialized game components
type GameComponents struct {
	Renderer   *renderer.Renderer
	Blocks     *blocks.Blocks
	Textures   *graphics.TextureArray
	Chunk      *world.Chunk
	Camera     *player.Camera
	Interactor *player.Interactor
	Scheduler  *meshing.Scheduler
}

func setupGame(cfg *config.Config) (*GameComponents, error) {
	layers, err := assets.LoadTextures(os.DirFS(cfg.Assets.Root))
	if err != nil {
		return nil, err
	}
	textures, err := graphics.NewTextureArray(layers)
	if err != nil {
		return nil, err
	}

	chunk := world.NewChunk(0, 0, 0)
	chunk.Init(cfg.Terrain.Settings())
	log.Printf("chunk initialized: %d solid cells", chunk.CountSolid())

	aspect := float32(cfg.Window.Width) / float32(cfg.Window.Height)
	camera := player.NewCamera(cfg.Camera.FOV, aspect)
	camera.Near = cfg.Camera.Near
	camera.Far = cfg.Camera.Far
	camera.Position[2] = 3
	camera.Update()

	initial, _ := cfg.InitialBlock()
	interactor := player.NewInteractor(chunk, initial)

	shaderDir := filepath.Join(cfg.Assets.Root, shadersDir)
	blocksRenderer := blocks.NewBlocks(shaderDir, textures, chunk)
	outlineRenderer := outline.NewOutline(shaderDir, chunk)
	crosshairRenderer := crosshair.NewCrosshair(shaderDir)

	r, err := renderer.NewRenderer(camera, blocksRenderer, outlineRenderer, crosshairRenderer)
	if err != nil {
		textures.Dispose()
		return nil, err
	}

	scheduler := setupMeshing(cfg, chunk, blocksRenderer)

	return &GameComponents{
		Renderer:   r,
		Blocks:     blocksRenderer,
		Textures:   textures,
		Chunk:      chunk,
		Camera:     camera,
		Interactor: interactor,
		Scheduler:  scheduler,
	}, nil
}

// setupMeshing builds the mesher or worker pool and registers metrics.
func setupMeshing(cfg *config.Config, chunk *world.Chunk, up meshing.Uploader) *meshing.Scheduler {
	policy, _ := cfg.FacePolicy()
	opts := []meshing.Option{
		meshing.WithPolicy(policy),
		meshing.WithUsageLog(config.GetLogBufferUsage()),
	}

	if cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		opts = append(opts, meshing.WithRecorder(metrics.NewMeshMetrics(reg)))
		startMetricsServer(cfg.Metrics.Addr, reg)
	}

	if cfg.Meshing.Workers == 0 {
		mesher := meshing.NewMesher(meshing.MaxVertexCount, opts...)
		logBuffer(mesher.Capacity(), policy)
		return meshing.NewScheduler(chunk, mesher, nil, up)
	}
	logBuffer(meshing.MaxVertexCount, policy)

	pool := meshing.NewWorkerPool(cfg.Meshing.Workers, 4, meshing.MaxVertexCount, opts...)
	closer.Bind(pool.Shutdown)
	log.Printf("meshing on %d background workers", pool.Workers())
	return meshing.NewScheduler(chunk, nil, pool, up)
}

func logBuffer(vertices int, policy meshing.FacePolicy) {
	size := uint64(vertices) * uint64(unsafe.Sizeof(meshing.Vertex{}))
	log.Printf("mesh buffer: %d vertices (%s), face policy %s", vertices, humanize.IBytes(size), policy)
}

func startMetricsServer(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Printf("metrics listening on %s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server: %v", err)
		}
	}()

	closer.Bind(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
}

// Dispose releases GL resources. Must run on the main thread.
func (g *GameComponents) Dispose() {
	g.Renderer.Dispose()
	g.Textures.Dispose()
}
