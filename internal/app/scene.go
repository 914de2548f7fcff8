package app

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Faultbox/pcscene/internal/anim"
	"github.com/Faultbox/pcscene/internal/codec"
	"github.com/Faultbox/pcscene/internal/config"
	"github.com/Faultbox/pcscene/internal/editor"
	"github.com/Faultbox/pcscene/internal/engine/camera"
	"github.com/Faultbox/pcscene/internal/logger"
	"github.com/Faultbox/pcscene/internal/mockup"
	"github.com/Faultbox/pcscene/internal/scene"
)

// OpenScene loads the configured document. A missing document falls back to
// the PC mockup when enabled; any other failure is returned.
func OpenScene(cfg config.SceneConfig) (*scene.Root, *anim.Library, error) {
	root, clips, err := codec.LoadScene(cfg.Path)
	if err == nil {
		logger.Info("scene loaded", zap.String("path", cfg.Path), zap.Int("groups", root.Len()))
		return root, clips, nil
	}
	if !errors.Is(err, codec.ErrNotFound) || !cfg.Mockup {
		return nil, nil, err
	}

	logger.Info("scene not found, building PC mockup", zap.String("path", cfg.Path))
	root, err = mockup.BuildPC()
	if err != nil {
		return nil, nil, err
	}
	return root, anim.NewLibrary(), nil
}

// NewCamera builds the orbit camera from config.
func NewCamera(cfg config.CameraConfig) *camera.OrbitCamera {
	cam := camera.NewOrbitCamera()
	cam.Distance = cfg.Distance
	cam.Yaw = cfg.Yaw
	cam.Pitch = cfg.Pitch
	cam.MaxPitch = cfg.MaxPitch
	cam.YawSensitivity = cfg.YawSensitivity
	cam.PitchSensitivity = cfg.PitchSensitivity
	cam.ZoomSensitivity = cfg.ZoomSensitivity
	cam.PanSpeed = cfg.PanSpeed
	return cam
}

// EditorSettings extracts editor settings from config.
func EditorSettings(cfg *config.Config) editor.Settings {
	return editor.Settings{
		MoveSpeed:   cfg.Editor.MoveSpeed,
		RotateSpeed: cfg.Editor.RotateSpeed,
		ScaleSpeed:  cfg.Editor.ScaleSpeed,
		Interval:    cfg.Animation.Interval,
		Loop:        cfg.Animation.Loop,
	}
}
