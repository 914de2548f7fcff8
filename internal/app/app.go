// Package app implements the viewer's main loop.
package app

import (
	"fmt"
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/pcscene/internal/config"
	"github.com/Faultbox/pcscene/internal/editor"
	"github.com/Faultbox/pcscene/internal/engine/debug"
	"github.com/Faultbox/pcscene/internal/engine/input"
	"github.com/Faultbox/pcscene/internal/engine/mesh"
	"github.com/Faultbox/pcscene/internal/engine/picking"
	"github.com/Faultbox/pcscene/internal/engine/renderer"
	"github.com/Faultbox/pcscene/internal/engine/window"
	"github.com/Faultbox/pcscene/internal/logger"
	"github.com/Faultbox/pcscene/internal/scene"
	"github.com/Faultbox/pcscene/internal/watch"
)

const title = "PC Scene"

// App is the viewer instance.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	bindings Bindings
	editor   *editor.Editor
	ctx      editor.Context
	watcher  *watch.Watcher
	shots    *debug.Screenshots
}

// New opens the window, the GL state and the scene.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("scene", cfg.Scene.Path),
	)

	bindings, err := NewBindings(cfg.Bindings)
	if err != nil {
		return nil, err
	}
	root, clips, err := OpenScene(cfg.Scene)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene: %w", err)
	}

	a := &App{
		config:   cfg,
		bindings: bindings,
		input:    input.New(),
		shots:    debug.NewScreenshots(cfg.Graphics.ScreenshotDir, "pcscene"),
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    cfg.Graphics.Samples,
	})
	if err != nil {
		root.Dispose()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Drawable size can differ from the requested size on HiDPI screens.
	w, h := a.window.GetSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		ClearColor: mgl32.Vec4(cfg.Graphics.ClearColor),
		FOV:        cfg.Camera.FOV,
		Near:       cfg.Camera.Near,
		Far:        cfg.Camera.Far,
	})
	if err != nil {
		a.window.Close()
		root.Dispose()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.editor = editor.New(root, clips, cfg.Scene.Path, EditorSettings(cfg))
	a.editor.SetUploader(mesh.Uploader{})
	a.ctx = editor.Context{Camera: NewCamera(cfg.Camera), FOV: cfg.Camera.FOV}
	if names := root.Names(); len(names) > 0 {
		a.ctx.Selection.Group = names[0]
	}

	if cfg.Scene.Watch {
		a.watcher, err = watch.New(cfg.Scene.Path, cfg.Scene.Debounce)
		if err != nil {
			logger.Warn("scene watching disabled", zap.Error(err))
		} else {
			a.editor.OnSaved(a.watcher.Ignore)
		}
	}

	logger.Info("viewer initialized")
	return a, nil
}

// Run drives the main loop until quit.
func (a *App) Run() error {
	a.running = true

	lastTicks := window.Ticks()
	frameCount := 0
	fpsTimer := lastTicks

	var minFrame time.Duration
	if a.config.Graphics.FPSLimit > 0 {
		minFrame = time.Second / time.Duration(a.config.Graphics.FPSLimit)
	}

	logger.Info("starting main loop")

	for a.running {
		frameStart := time.Now()
		ticks := window.Ticks()
		dt := float32(ticks-lastTicks) / 1000
		lastTicks = ticks

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.renderer.Resize(a.window.GetSize())
			case input.EventMouseDown:
				if event.Button == sdl.BUTTON_RIGHT {
					a.pick(event.MouseX, event.MouseY)
				}
			}
		}

		// 2. Update editor state
		frame := a.bindings.Frame(a.input, dt)
		if a.watcher != nil && a.watcher.Poll() {
			logger.Info("scene changed on disk, reloading", zap.String("path", a.editor.Path()))
			frame.Pressed = append(frame.Pressed, editor.Load)
		}
		if err := a.editor.Update(&a.ctx, frame); err != nil {
			logger.Warn("editor command failed", zap.Error(err))
		}
		if a.editor.QuitRequested() {
			a.running = false
		}

		// 3. Render
		a.render()
		if slices.Contains(frame.Pressed, editor.Screenshot) {
			if _, err := a.shots.Capture(a.window.GetSize()); err != nil {
				logger.Warn("screenshot failed", zap.Error(err))
			}
		}

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		frameCount++
		if ticks-fpsTimer >= 1000 {
			if a.config.Graphics.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s - %d fps - %s [%s]",
					title, frameCount, a.ctx.Selection.Path(), a.ctx.Mode))
			}
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = ticks
		}

		if minFrame > 0 {
			if spare := minFrame - time.Since(frameStart); spare > 0 {
				time.Sleep(spare)
			}
		}
	}

	return nil
}

func (a *App) viewProjection() mgl32.Mat4 {
	return a.renderer.Projection().Mul4(a.ctx.Camera.ViewMatrix())
}

func (a *App) render() {
	a.renderer.Begin()
	a.editor.Root().Draw(a.renderer.Shader(), a.viewProjection())
	a.renderer.End()
}

// pick selects the holder under the cursor.
func (a *App) pick(x, y int) {
	w, h := a.renderer.Size()
	ray := picking.ScreenToRay(float32(x), float32(y), float32(w), float32(h), a.viewProjection().Inv())
	sel, ok := pickSelection(a.editor.Root(), ray, a.ctx.Selection)
	if !ok {
		return
	}
	a.ctx.Selection = sel
	logger.Debug("picked", zap.String("selection", sel.Path()))
}

// pickSelection maps a ray to a new selection. A holder hit selects that
// holder; a ray that misses every holder but lands on the floor (y = 0)
// narrows the current selection back to its group. ok is false when the
// selection stays as it is.
func pickSelection(root *scene.Root, ray picking.Ray, current editor.Selection) (editor.Selection, bool) {
	if hit, ok := picking.Pick(root, ray); ok {
		return editor.Selection{Group: hit.Group, HolderID: hit.HolderID}, true
	}
	if _, _, ok := ray.IntersectPlaneY(0); ok && current.HolderID != 0 {
		return editor.Selection{Group: current.Group}, true
	}
	return current, false
}

// Close releases GPU resources before the context goes away.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.editor != nil {
		a.editor.Root().Dispose()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
