package anim

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/pcscene/internal/logger"
	"github.com/Faultbox/pcscene/internal/scene"
)

// DefaultInterval is the recorder sampling period in seconds.
const DefaultInterval float32 = 0.1

// Recorder samples a target transform at a fixed interval into a Clip.
// Sampling is not jitter corrected: a frame is taken on the first tick at or
// after each interval boundary.
type Recorder struct {
	target   *scene.Transform
	interval float32

	clip        *Clip
	recording   bool
	elapsed     float32
	sinceSample float32
}

// NewRecorder creates an idle recorder for target.
func NewRecorder(target *scene.Transform) *Recorder {
	return &Recorder{
		target:   target,
		interval: DefaultInterval,
	}
}

// SetTarget changes the sampled transform. A running session keeps its clip.
func (r *Recorder) SetTarget(t *scene.Transform) { r.target = t }

// SetInterval changes the sampling period.
func (r *Recorder) SetInterval(seconds float32) error {
	if seconds <= 0 {
		return fmt.Errorf("sample interval must be positive, got %g", seconds)
	}
	r.interval = seconds
	return nil
}

// Interval returns the sampling period.
func (r *Recorder) Interval() float32 { return r.interval }

// Start begins a new session. A session already in progress is discarded.
// An empty name gets a generated one.
func (r *Recorder) Start(name string) {
	if r.recording {
		logger.Debug("recording restarted, discarding clip",
			zap.String("clip", r.clip.Name),
			zap.Int("frames", r.clip.Len()),
		)
	}
	if name == "" {
		name = "clip-" + uuid.NewString()[:8]
	}
	r.clip = &Clip{Name: name}
	r.recording = true
	r.elapsed = 0
	r.sinceSample = 0
	logger.Debug("recording started", zap.String("clip", name), zap.Float32("interval", r.interval))
}

// Stop ends the session and hands the clip to the caller. ok is false when
// nothing was recording.
func (r *Recorder) Stop() (clip *Clip, ok bool) {
	if !r.recording {
		return nil, false
	}
	clip = r.clip
	r.clip = nil
	r.recording = false
	logger.Debug("recording stopped",
		zap.String("clip", clip.Name),
		zap.Int("frames", clip.Len()),
		zap.Float32("duration", clip.Duration()),
	)
	return clip, true
}

// Recording reports whether a session is active.
func (r *Recorder) Recording() bool { return r.recording }

// Elapsed returns the time recorded so far in the current session.
func (r *Recorder) Elapsed() float32 { return r.elapsed }

// Update advances the session by dt seconds.
func (r *Recorder) Update(dt float32) {
	if !r.recording {
		return
	}
	r.elapsed += dt
	r.sinceSample += dt
	if r.sinceSample < r.interval || r.target == nil {
		return
	}
	r.clip.AddFrame(Frame{Time: r.elapsed, Pose: PoseOf(r.target)})
	r.sinceSample = 0
}
