// Package config handles viewer configuration loading and management.
package config

import "time"

// Config holds all viewer settings.
type Config struct {
	Graphics  GraphicsConfig    `yaml:"graphics"`
	Camera    CameraConfig      `yaml:"camera"`
	Scene     SceneConfig       `yaml:"scene"`
	Animation AnimationConfig   `yaml:"animation"`
	Editor    EditorConfig      `yaml:"editor"`
	Bindings  map[string]string `yaml:"bindings"` // Action name -> SDL key name
	Logging   LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	FPSLimit   int        `yaml:"fps_limit"`
	Samples    int        `yaml:"samples"`
	ClearColor [4]float32 `yaml:"clear_color,flow"`
	ShowFPS    bool       `yaml:"show_fps"`

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// CameraConfig holds orbit camera and projection settings. Angles are degrees.
type CameraConfig struct {
	Distance         float32 `yaml:"distance"`
	Yaw              float32 `yaml:"yaw"`
	Pitch            float32 `yaml:"pitch"`
	MaxPitch         float32 `yaml:"max_pitch"`
	FOV              float32 `yaml:"fov"`
	Near             float32 `yaml:"near"`
	Far              float32 `yaml:"far"`
	YawSensitivity   float32 `yaml:"yaw_sensitivity"`
	PitchSensitivity float32 `yaml:"pitch_sensitivity"`
	ZoomSensitivity  float32 `yaml:"zoom_sensitivity"`
	PanSpeed         float32 `yaml:"pan_speed"`
}

// SceneConfig holds the scene document location.
type SceneConfig struct {
	Path     string        `yaml:"path"`     // .yaml, .yml, .json or .toml
	Watch    bool          `yaml:"watch"`    // Reload when the file changes on disk
	Mockup   bool          `yaml:"mockup"`   // Build the PC mockup when Path is missing
	Debounce time.Duration `yaml:"debounce"` // Quiet time before a reload
}

// AnimationConfig holds recorder defaults.
type AnimationConfig struct {
	Interval float32 `yaml:"interval"` // Seconds between recorded frames
	Loop     bool    `yaml:"loop"`     // Loop flag for new clips
}

// EditorConfig holds manual edit speeds, per second of key hold.
type EditorConfig struct {
	MoveSpeed   float32 `yaml:"move_speed"`
	RotateSpeed float32 `yaml:"rotate_speed"` // Degrees
	ScaleSpeed  float32 `yaml:"scale_speed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultBindings maps editor actions to SDL key names.
func DefaultBindings() map[string]string {
	return map[string]string{
		"move_x_pos":      "D",
		"move_x_neg":      "A",
		"move_y_pos":      "E",
		"move_y_neg":      "Q",
		"move_z_pos":      "S",
		"move_z_neg":      "W",
		"camera_left":     "Left",
		"camera_right":    "Right",
		"camera_forward":  "Up",
		"camera_back":     "Down",
		"mode_translate":  "1",
		"mode_rotate":     "2",
		"mode_scale":      "3",
		"select_next":     "N",
		"select_prev":     "B",
		"select_holder":   "H",
		"toggle_enabled":  "T",
		"toggle_hidden":   "Z",
		"reset_transform": "Backspace",
		"record":          "R",
		"play":            "P",
		"toggle_loop":     "O",
		"duplicate_clip":  "C",
		"save":            "J",
		"load":            "L",
		"fit_camera":      "F",
		"screenshot":      "F12",
		"quit":            "Escape",
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			Samples:    4,
			ClearColor: [4]float32{0.12, 0.13, 0.15, 1},

			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			Distance:         2.2,
			Yaw:              0,
			Pitch:            15,
			MaxPitch:         85,
			FOV:              45,
			Near:             0.1,
			Far:              100,
			YawSensitivity:   0.4,
			PitchSensitivity: 0.3,
			ZoomSensitivity:  0.1,
			PanSpeed:         0.5,
		},
		Scene: SceneConfig{
			Path:     "scenes/pc.yaml",
			Watch:    false,
			Mockup:   true,
			Debounce: 200 * time.Millisecond,
		},
		Animation: AnimationConfig{
			Interval: 0.1,
			Loop:     true,
		},
		Editor: EditorConfig{
			MoveSpeed:   0.5,
			RotateSpeed: 90,
			ScaleSpeed:  0.5,
		},
		Bindings: DefaultBindings(),
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
