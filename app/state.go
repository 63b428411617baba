package app

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/glyph3d"
	"github.com/gogpu/glyph3d/config"
	"github.com/gogpu/glyph3d/render"
	"github.com/gogpu/glyph3d/scene"
	"github.com/gogpu/glyph3d/text"
)

// Animation and input constants.
const (
	OrbitStep   = 0.01
	LayoutStep  = 0.01
	CycleStep   = 0.01
	WheelStep   = 8
	MinFontSize = 6
)

// ErrNoFont is returned by New when a font is missing.
var ErrNoFont = errors.New("app: both fonts are required")

// Fonts are the two atlases the demo draws with.
type Fonts struct {
	Default *text.Font
	SDF     *text.Font
}

// State is the complete demo state. All methods are safe for concurrent
// use; input callbacks may run on another goroutine than Update.
type State struct {
	mu sync.Mutex

	cfg          *config.Config
	fonts        Fonts
	labelColor   color.RGBA
	captionColor color.RGBA

	camera   render.Camera
	lights   [render.MaxLights]render.Light
	ambient  bool
	fontSize float32
	useSDF   bool

	layout         int
	layoutFraction float32
	dynamic        bool
	cycle          float32

	fpsIndex   int
	fpsApplied int
	bounds     bool
	finished   bool
	width      int
	height     int

	held    map[gpucontext.Key]bool
	pressed []gpucontext.Key
	wheel   float64
}

// New creates the initial state from cfg.
func New(cfg *config.Config, fonts Fonts) (*State, error) {
	if fonts.Default == nil || fonts.SDF == nil {
		return nil, ErrNoFont
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	labelColor, err := scene.ParseColor(cfg.Label.Color)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	captionColor, err := scene.ParseColor(cfg.Caption.Color)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	cam := render.DefaultCamera()
	cam.Position = vec3(cfg.Camera.Position)
	cam.Target = vec3(cfg.Camera.Target)
	cam.FovY = cfg.Camera.FovY

	s := &State{
		cfg:          cfg,
		fonts:        fonts,
		labelColor:   labelColor,
		captionColor: captionColor,
		camera:       cam,
		lights:       defaultLights(),
		ambient:      true,
		fontSize:     cfg.Caption.Size,
		fpsIndex:     cfg.Frame.FPSIndex,
		fpsApplied:   cfg.Frame.FPSIndex,
		width:        cfg.Window.Width,
		height:       cfg.Window.Height,
		held:         make(map[gpucontext.Key]bool),
	}
	return s, nil
}

func defaultLights() [render.MaxLights]render.Light {
	return [render.MaxLights]render.Light{
		{Position: glyph3d.V3(0, 8, 20), Color: scene.White, Enabled: true},
		{Position: glyph3d.V3(32, 32, 32), Color: scene.Red},
		{Position: glyph3d.V3(-32, 32, 32), Color: scene.Green},
		{Position: glyph3d.V3(32, 32, -32), Color: scene.Blue},
	}
}

func vec3(v [3]float32) glyph3d.Vec3 {
	return glyph3d.V3(v[0], v[1], v[2])
}

// ---------------------------------------------------------------------------
// Input
// ---------------------------------------------------------------------------

// Bind registers the state's input handlers on src.
func (s *State) Bind(src gpucontext.EventSource) {
	src.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		s.KeyDown(key)
	})
	src.OnKeyRelease(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		s.KeyUp(key)
	})
	src.OnScroll(func(_, dy float64) {
		s.Scroll(dy)
	})
	src.OnResize(func(width, height int) {
		s.Resize(width, height)
	})
}

// KeyDown records a key press. The key counts as pressed once, on the
// next Update, and as held until KeyUp.
func (s *State) KeyDown(key gpucontext.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.held[key] {
		s.pressed = append(s.pressed, key)
	}
	s.held[key] = true
}

// KeyUp records a key release.
func (s *State) KeyUp(key gpucontext.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.held, key)
}

// Scroll records a wheel movement. dy is positive when scrolling down,
// which shrinks the caption.
func (s *State) Scroll(dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wheel -= dy
}

// Resize records the new surface size.
func (s *State) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if width > 0 && height > 0 {
		s.width, s.height = width, height
	}
}

// ---------------------------------------------------------------------------
// Controls
// ---------------------------------------------------------------------------

// SetLayout selects layout A (0) or B (1). The cubes move towards it
// over the following updates.
func (s *State) SetLayout(layout int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layout = min(max(layout, 0), 1)
}

// SetDynamic starts or stops the orbit animation.
func (s *State) SetDynamic(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dynamic = on
}

// SetFPSIndex selects one of the configured frame rates. It takes effect
// on the next Update.
func (s *State) SetFPSIndex(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.cfg.Frame.FPSChoices) {
		return fmt.Errorf("app: frame rate index %d out of range [0, %d)", i, len(s.cfg.Frame.FPSChoices))
	}
	s.fpsIndex = i
	return nil
}

// SetLight enables or disables light i.
func (s *State) SetLight(i int, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i >= 0 && i < len(s.lights) {
		s.lights[i].Enabled = on
	}
}

// SetAmbient switches the ambient light.
func (s *State) SetAmbient(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ambient = on
}

// SetBounds shows or hides glyph bounds.
func (s *State) SetBounds(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bounds = on
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

var lightKeys = [render.MaxLights]gpucontext.Key{
	gpucontext.KeyW, gpucontext.KeyR, gpucontext.KeyG, gpucontext.KeyB,
}

// Update applies the input received since the previous call and advances
// the animations by one frame.
func (s *State) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cam := &s.camera
	if s.held[gpucontext.KeyLeft] {
		cam.Position = cam.Position.RotateByAxisAngle(cam.Up, -OrbitStep)
	}
	if s.held[gpucontext.KeyRight] {
		cam.Position = cam.Position.RotateByAxisAngle(cam.Up, OrbitStep)
	}
	if s.held[gpucontext.KeyUp] {
		axis := cam.Position.Cross(cam.Up)
		cam.Position = cam.Position.RotateByAxisAngle(axis, -OrbitStep)
	}
	if s.held[gpucontext.KeyDown] {
		axis := cam.Position.Cross(cam.Up)
		cam.Position = cam.Position.RotateByAxisAngle(axis, OrbitStep)
	}

	for _, key := range s.pressed {
		s.applyPress(key)
	}
	s.pressed = s.pressed[:0]

	s.fontSize = max(s.fontSize+float32(s.wheel)*WheelStep, MinFontSize)
	s.wheel = 0
	s.useSDF = s.held[gpucontext.KeySpace]

	if s.fpsIndex != s.fpsApplied {
		s.fpsApplied = s.fpsIndex
		glyph3d.Logger().Info("app: frame rate changed", slog.Int("fps", s.cfg.Frame.FPSChoices[s.fpsIndex]))
	}

	target := float32(s.layout)
	if s.layoutFraction < target {
		s.layoutFraction = min(s.layoutFraction+LayoutStep, target)
	} else if s.layoutFraction > target {
		s.layoutFraction = max(s.layoutFraction-LayoutStep, target)
	}
	if s.dynamic {
		s.cycle += CycleStep
	}
}

func (s *State) applyPress(key gpucontext.Key) {
	for i, k := range lightKeys {
		if key == k {
			s.lights[i].Enabled = !s.lights[i].Enabled
			return
		}
	}
	switch key {
	case gpucontext.KeyA:
		s.ambient = !s.ambient
	case gpucontext.KeyL:
		s.layout = 1 - s.layout
	case gpucontext.KeyD:
		s.dynamic = !s.dynamic
	case gpucontext.KeyF:
		s.fpsIndex = (s.fpsIndex + 1) % len(s.cfg.Frame.FPSChoices)
	case gpucontext.KeyX:
		s.bounds = !s.bounds
	case gpucontext.KeyEnter:
		s.finished = true
	}
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Snapshot is a copy of the observable state.
type Snapshot struct {
	Camera         render.Camera
	Lights         [render.MaxLights]render.Light
	Ambient        bool
	FontSize       float32
	UseSDF         bool
	Layout         int
	LayoutFraction float32
	Dynamic        bool
	Cycle          float32
	FPS            int
	Bounds         bool
	Finished       bool
	Width, Height  int
}

// Snapshot returns the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Camera:         s.camera,
		Lights:         s.lights,
		Ambient:        s.ambient,
		FontSize:       s.fontSize,
		UseSDF:         s.useSDF,
		Layout:         s.layout,
		LayoutFraction: s.layoutFraction,
		Dynamic:        s.dynamic,
		Cycle:          s.cycle,
		FPS:            s.cfg.Frame.FPSChoices[s.fpsApplied],
		Bounds:         s.bounds,
		Finished:       s.finished,
		Width:          s.width,
		Height:         s.height,
	}
}

// Finished reports whether Enter was pressed.
func (s *State) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

// FPS returns the frame rate currently in effect.
func (s *State) FPS() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Frame.FPSChoices[s.fpsApplied]
}
