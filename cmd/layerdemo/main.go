package main

import (
	"image"
	"image/color"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"layerkit/internal/compositor"
	"layerkit/internal/config"
	"layerkit/internal/driver"
	"layerkit/internal/layer"
	"layerkit/internal/profiling"
	"layerkit/internal/renderstate"
	"layerkit/internal/scene"
)

const (
	windowWidth  = 900
	windowHeight = 600
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := config.Load("layerdemo.toml"); err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	closer.Bind(glfw.Terminate)

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "layerkit demo", nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		panic(err)
	}

	rs := renderstate.New(driver.GL41{})

	pool, err := layer.NewPool(rs, config.GetLayerPoolCapacity())
	if err != nil {
		panic(err)
	}

	background := pool.Get(windowWidth, windowHeight)
	background.SetNode(scene.Register(&scene.Node{Name: "background", Width: windowWidth, Height: windowHeight}))
	background.SetContent(gradient(windowWidth, windowHeight, color.RGBA{R: 30, G: 60, B: 120, A: 255}))

	badge := pool.Get(256, 256)
	badge.SetNode(scene.Register(&scene.Node{Name: "badge", Width: 256, Height: 256}))
	badge.SetContent(gradient(256, 256, color.RGBA{R: 200, G: 80, B: 40, A: 255}))

	pass := compositor.NewLayerPass(compositor.NewGLQuad())
	pass.Add(compositor.PlacedLayer{Layer: background, X: 0, Y: 0, W: windowWidth, H: windowHeight})
	pass.Add(compositor.PlacedLayer{Layer: badge, X: 40, Y: 40, W: 256, H: 256})

	comp, err := compositor.New(rs, windowWidth, windowHeight, pass)
	if err != nil {
		panic(err)
	}

	closer.Bind(func() {
		background.DestroyDeferred()
		badge.DestroyDeferred()
		pool.Clear()
		rs.RunPendingTasks()
		comp.Dispose()
	})

	// R simulates a context loss and recovery: every layer drops its
	// handle without driver calls, then content is re-uploaded lazily.
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyR:
			rs.OnContextDestroyed()
			rs.OnContextCreated()
			background.SetContent(gradient(windowWidth, windowHeight, color.RGBA{R: 30, G: 60, B: 120, A: 255}))
			badge.SetContent(gradient(256, 256, color.RGBA{R: 200, G: 80, B: 40, A: 255}))
			log.Printf("context recreated; layers: %q, %q", background.Label(), badge.Label())
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		}
	})

	pacer := newFramePacer()
	last := time.Now()

	for !window.ShouldClose() {
		profiling.ResetFrame()
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		glfw.PollEvents()

		gl.ClearColor(0.1, 0.1, 0.1, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		comp.Render(dt)
		window.SwapBuffers()

		if config.GetDebugOverlay() {
			log.Printf("frame: %s", profiling.TopN(3))
		}
		pacer.Wait()
	}

	closer.Close()
}

// gradient builds simple procedural layer content.
func gradient(w, h int, base color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f := float64(x+y) / float64(w+h)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(float64(base.R) * f),
				G: uint8(float64(base.G) * f),
				B: uint8(float64(base.B) * f),
				A: base.A,
			})
		}
	}
	return img
}
