package editor

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/pcscene/internal/anim"
	"github.com/Faultbox/pcscene/internal/codec"
	"github.com/Faultbox/pcscene/internal/logger"
	"github.com/Faultbox/pcscene/internal/scene"
)

// Settings tune manual edits and new clips.
type Settings struct {
	MoveSpeed   float32 // Units per second
	RotateSpeed float32 // Degrees per second
	ScaleSpeed  float32 // Scale factor change per second
	Interval    float32 // Recorder sample interval
	Loop        bool    // Loop flag for newly recorded clips
}

// Editor owns the live scene, its clip library and the animation state.
// Recording and playback never run at the same time.
type Editor struct {
	settings Settings
	path     string
	uploader scene.Uploader

	root  *scene.Root
	clips *anim.Library

	recorder      *anim.Recorder
	recordTarget  string
	player        *anim.Player
	playTarget    string
	lastClip      string
	quitRequested bool
	onSaved       func()
}

// New wraps root and clips. path is where Save and Load go.
func New(root *scene.Root, clips *anim.Library, path string, s Settings) *Editor {
	if clips == nil {
		clips = anim.NewLibrary()
	}
	e := &Editor{
		settings: s,
		path:     path,
		root:     root,
		clips:    clips,
		recorder: anim.NewRecorder(nil),
		player:   anim.NewPlayer(nil),
	}
	if s.Interval > 0 {
		if err := e.recorder.SetInterval(s.Interval); err != nil {
			logger.Warn("keeping default sample interval", zap.Error(err))
		}
	}
	return e
}

// Root returns the live scene.
func (e *Editor) Root() *scene.Root { return e.root }

// Clips returns the clip library.
func (e *Editor) Clips() *anim.Library { return e.clips }

// Path returns the scene document path.
func (e *Editor) Path() string { return e.path }

// Recording reports whether a clip is being recorded.
func (e *Editor) Recording() bool { return e.recorder.Recording() }

// Playing reports whether a clip is playing.
func (e *Editor) Playing() bool { return e.player.Playing() }

// QuitRequested reports whether the quit action fired.
func (e *Editor) QuitRequested() bool { return e.quitRequested }

// SetUploader sets the GPU uploader on the current and every future root.
func (e *Editor) SetUploader(u scene.Uploader) {
	e.uploader = u
	if e.root != nil {
		e.root.SetUploader(u)
	}
}

// OnSaved registers a callback run after every successful save.
func (e *Editor) OnSaved(fn func()) { e.onSaved = fn }

// Update applies one tick. Failed saves and loads are returned; the scene is
// left as it was.
func (e *Editor) Update(ctx *Context, f Frame) error {
	var errs []error
	for _, a := range f.Pressed {
		if err := e.press(ctx, a); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", a, err))
		}
	}

	e.updateCamera(ctx, f)
	e.applyEdits(ctx, f)

	e.recorder.Update(f.Dt)
	e.player.Update(f.Dt)
	return errors.Join(errs...)
}

func (e *Editor) press(ctx *Context, a Action) error {
	switch a {
	case ModeTranslate:
		ctx.Mode = ModeTranslating
	case ModeRotate:
		ctx.Mode = ModeRotating
	case ModeScale:
		ctx.Mode = ModeScaling
	case SelectNext:
		e.cycleSelection(ctx, 1)
	case SelectPrev:
		e.cycleSelection(ctx, -1)
	case SelectHolder:
		e.toggleHolderSelection(ctx)
	case ToggleEnabled:
		if t := ctx.Selection.Resolve(e.root); t != nil {
			t.Enabled = !t.Enabled
		}
	case ToggleHidden:
		e.toggleHidden(ctx.Selection)
	case ResetTransform:
		if t := ctx.Selection.Resolve(e.root); t != nil {
			t.Reset()
		}
	case Record:
		e.toggleRecording(ctx)
	case Play:
		e.togglePlayback(ctx)
	case ToggleLoop:
		if b, ok := e.clips.Get(e.lastClip); ok {
			b.Clip.Loop = !b.Clip.Loop
		}
	case DuplicateClip:
		return e.duplicateClip(ctx)
	case Save:
		return e.Save()
	case Load:
		return e.Load(ctx)
	case FitCamera:
		e.FitCamera(ctx)
	case Screenshot:
		// Handled by the host, which owns the framebuffer.
	case Quit:
		e.quitRequested = true
	}
	return nil
}

func (e *Editor) updateCamera(ctx *Context, f Frame) {
	if ctx.Camera == nil {
		return
	}
	if f.DragX != 0 || f.DragY != 0 {
		ctx.Camera.HandleDrag(f.DragX, f.DragY)
	}
	if f.Wheel != 0 {
		ctx.Camera.HandleZoom(f.Wheel)
	}
	fwd := f.axis(CameraForward, CameraBack)
	right := f.axis(CameraRight, CameraLeft)
	if fwd != 0 || right != 0 {
		ctx.Camera.HandleMovement(fwd*f.Dt, right*f.Dt, 0)
	}
}

// applyEdits moves the selected transform along held axes. Playback owns its
// target, so edits to it are skipped while playing.
func (e *Editor) applyEdits(ctx *Context, f Frame) {
	delta := mgl32.Vec3{
		f.axis(MoveXPos, MoveXNeg),
		f.axis(MoveYPos, MoveYNeg),
		f.axis(MoveZPos, MoveZNeg),
	}
	if delta == (mgl32.Vec3{}) || f.Dt <= 0 {
		return
	}
	if e.player.Playing() && e.playTarget == ctx.Selection.Path() {
		return
	}
	t := ctx.Selection.Resolve(e.root)
	if t == nil {
		return
	}

	switch ctx.Mode {
	case ModeTranslating:
		t.Translation = t.Translation.Add(delta.Mul(e.settings.MoveSpeed * f.Dt))
	case ModeRotating:
		t.Rotation = t.Rotation.Add(delta.Mul(e.settings.RotateSpeed * f.Dt))
	case ModeScaling:
		t.Scale = t.Scale.Add(delta.Mul(e.settings.ScaleSpeed * f.Dt))
		for i := range t.Scale {
			t.Scale[i] = max(t.Scale[i], 0.01)
		}
	}
}

func (e *Editor) cycleSelection(ctx *Context, step int) {
	names := e.root.Names()
	if len(names) == 0 {
		ctx.Selection = Selection{}
		return
	}

	g, ok := e.root.Group(ctx.Selection.Group)
	if ok && ctx.Selection.HolderID != 0 && g.Len() > 0 {
		ids := g.IDs()
		i := indexOf(ids, ctx.Selection.HolderID)
		ctx.Selection.HolderID = ids[wrapIndex(i+step, len(ids))]
		return
	}

	i := indexOf(names, ctx.Selection.Group)
	if i < 0 && step < 0 {
		i = 0
	}
	ctx.Selection = Selection{Group: names[wrapIndex(i+step, len(names))]}
}

func (e *Editor) toggleHolderSelection(ctx *Context) {
	if ctx.Selection.HolderID != 0 {
		ctx.Selection.HolderID = 0
		return
	}
	g, ok := e.root.Group(ctx.Selection.Group)
	if !ok || g.Len() == 0 {
		return
	}
	ctx.Selection.HolderID = g.IDs()[0]
}

func (e *Editor) toggleHidden(s Selection) {
	g, ok := e.root.Group(s.Group)
	if !ok {
		return
	}
	if s.HolderID == 0 {
		g.SetHidden(!g.Hidden())
		return
	}
	if h, ok := g.Holder(s.HolderID); ok {
		h.SetHidden(!h.Hidden())
	}
}

func (e *Editor) toggleRecording(ctx *Context) {
	if e.recorder.Recording() {
		e.stopRecording()
		return
	}
	target := ctx.Selection.Resolve(e.root)
	if target == nil {
		logger.Warn("nothing selected to record")
		return
	}
	e.player.Stop()
	e.recordTarget = ctx.Selection.Path()
	e.recorder.SetTarget(target)
	e.recorder.Start("")
	logger.Info("recording", zap.String("target", e.recordTarget))
}

func (e *Editor) stopRecording() {
	clip, ok := e.recorder.Stop()
	if !ok {
		return
	}
	if clip.Len() == 0 {
		logger.Info("recording discarded, no frames", zap.String("clip", clip.Name))
		return
	}
	clip.Loop = e.settings.Loop
	if err := e.clips.Put(clip, e.recordTarget); err != nil {
		logger.Warn("recording dropped", zap.Error(err))
		return
	}
	e.lastClip = clip.Name
	logger.Info("recording stored",
		zap.String("clip", clip.Name),
		zap.String("target", e.recordTarget),
		zap.Int("frames", clip.Len()),
	)
}

// togglePlayback plays the newest clip bound to the selection, or the last
// recorded clip when the selection has none.
func (e *Editor) togglePlayback(ctx *Context) {
	if e.player.Playing() {
		e.player.Stop()
		return
	}
	if e.recorder.Recording() {
		e.stopRecording()
	}

	name := e.lastClip
	if names := e.clips.ForTarget(ctx.Selection.Path()); len(names) > 0 {
		name = names[len(names)-1]
	}
	b, ok := e.clips.Get(name)
	if !ok {
		logger.Info("no clip to play", zap.String("selection", ctx.Selection.Path()))
		return
	}
	sel, err := ParseSelection(b.Target)
	if err != nil {
		logger.Warn("clip target invalid", zap.String("clip", name), zap.Error(err))
		return
	}
	target := sel.Resolve(e.root)
	if target == nil {
		logger.Warn("clip target missing", zap.String("clip", name), zap.String("target", b.Target))
		return
	}
	e.player.SetTarget(target)
	if e.player.Play(b.Clip) {
		e.playTarget = b.Target
		e.lastClip = name
	}
}

// duplicateClip copies the last recorded or played clip onto the selection
// under a fresh name, so one recording can drive several parts.
func (e *Editor) duplicateClip(ctx *Context) error {
	b, ok := e.clips.Get(e.lastClip)
	if !ok {
		logger.Info("no clip to duplicate")
		return nil
	}
	if ctx.Selection.Resolve(e.root) == nil {
		logger.Warn("nothing selected to bind the copy to", zap.String("clip", b.Clip.Name))
		return nil
	}

	dup, err := b.Clip.Clone()
	if err != nil {
		return err
	}
	dup.Name = e.freeClipName(b.Clip.Name + "-copy")
	target := ctx.Selection.Path()
	if err := e.clips.Put(dup, target); err != nil {
		return err
	}
	e.lastClip = dup.Name
	logger.Info("clip duplicated",
		zap.String("from", b.Clip.Name),
		zap.String("clip", dup.Name),
		zap.String("target", target),
	)
	return nil
}

func (e *Editor) freeClipName(base string) string {
	name := base
	for i := 2; ; i++ {
		if _, taken := e.clips.Get(name); !taken {
			return name
		}
		name = fmt.Sprintf("%s-%d", base, i)
	}
}

// Save writes the scene and clips to the editor path.
func (e *Editor) Save() error {
	if e.recorder.Recording() {
		e.stopRecording()
	}
	if err := codec.SaveScene(e.path, e.root, e.clips); err != nil {
		return err
	}
	logger.Info("scene saved",
		zap.String("path", e.path),
		zap.Int("groups", e.root.Len()),
		zap.Int("clips", e.clips.Len()),
	)
	if e.onSaved != nil {
		e.onSaved()
	}
	return nil
}

// Load replaces the scene with the document at the editor path. On failure
// the current scene stays live and untouched, and any recording continues.
func (e *Editor) Load(ctx *Context) error {
	root, clips, err := codec.LoadScene(e.path)
	if err != nil {
		return err
	}

	e.player.Stop()
	e.player.SetTarget(nil)

	old := e.root
	e.root = root
	e.clips = clips
	e.lastClip = ""
	// A recording in progress ends up in the reloaded library.
	e.stopRecording()
	e.recorder.SetTarget(nil)
	e.root.SetUploader(e.uploader)
	if old != nil {
		old.Dispose()
	}

	if ctx.Selection.Resolve(root) == nil {
		ctx.Selection = Selection{}
		if names := root.Names(); len(names) > 0 {
			ctx.Selection.Group = names[0]
		}
	}
	logger.Info("scene loaded",
		zap.String("path", e.path),
		zap.Int("groups", root.Len()),
		zap.Int("clips", clips.Len()),
	)
	return nil
}

// FitCamera frames the whole scene.
func (e *Editor) FitCamera(ctx *Context) {
	if ctx.Camera == nil {
		return
	}
	lo, hi, ok := e.root.Bounds()
	if !ok {
		return
	}
	fov := ctx.FOV
	if fov <= 0 {
		fov = 45
	}
	ctx.Camera.FitToBounds(lo, hi, fov)
}

func indexOf[T comparable](s []T, v T) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}
