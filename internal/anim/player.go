package anim

import (
	"go.uber.org/zap"

	"github.com/Faultbox/pcscene/internal/logger"
	"github.com/Faultbox/pcscene/internal/scene"
)

// Player advances a clock over a shared Clip and writes sampled poses into
// a target transform.
type Player struct {
	target *scene.Transform

	clip    *Clip
	time    float32
	playing bool
}

// NewPlayer creates a stopped player for target.
func NewPlayer(target *scene.Transform) *Player {
	return &Player{target: target}
}

// SetTarget changes the driven transform.
func (p *Player) SetTarget(t *scene.Transform) { p.target = t }

// Play starts clip from time 0. A nil or empty clip leaves the player stopped.
func (p *Player) Play(clip *Clip) bool {
	if clip == nil || clip.Len() == 0 {
		return false
	}
	p.clip = clip
	p.time = 0
	p.playing = true
	logger.Debug("playback started",
		zap.String("clip", clip.Name),
		zap.Bool("loop", clip.Loop),
		zap.Float32("duration", clip.Duration()),
	)
	return true
}

// Stop halts playback. The target keeps its last applied pose.
func (p *Player) Stop() {
	p.playing = false
}

// Playing reports whether a clip is running.
func (p *Player) Playing() bool { return p.playing }

// Time returns the playback position.
func (p *Player) Time() float32 { return p.time }

// Clip returns the clip last passed to Play.
func (p *Player) Clip() *Clip { return p.clip }

// Update advances playback by dt and applies the pose. A non-looping clip
// that reaches its end stops without applying on that tick.
func (p *Player) Update(dt float32) {
	if !p.playing {
		return
	}
	p.time += dt
	if d := p.clip.Duration(); p.time >= d {
		if !p.clip.Loop {
			p.playing = false
			logger.Debug("playback finished", zap.String("clip", p.clip.Name))
			return
		}
		p.time = wrap(p.time, d)
	}
	if p.target != nil {
		p.clip.Sample(p.time).ApplyTo(p.target)
	}
}
