package codec

import (
	"fmt"

	"github.com/Faultbox/pcscene/internal/anim"
)

// ClipsToDocs converts every clip in lib, in library order.
func ClipsToDocs(lib *anim.Library) []ClipDoc {
	if lib == nil {
		return nil
	}
	var out []ClipDoc
	for _, b := range lib.Bindings() {
		cd := ClipDoc{
			Name:   b.Clip.Name,
			Target: b.Target,
			Loop:   b.Clip.Loop,
			Frames: make([]FrameDoc, 0, b.Clip.Len()),
		}
		for _, f := range b.Clip.Frames() {
			tr, rot, sc := f.Translation, f.Rotation, f.Scale
			cd.Frames = append(cd.Frames, FrameDoc{
				Time:        Float(f.Time),
				Translation: tr[:],
				Rotation:    rot[:],
				Scale:       sc[:],
			})
		}
		out = append(out, cd)
	}
	return out
}

// ClipsFromDocs rebuilds a library. Frames are re-sorted by time.
func ClipsFromDocs(docs []ClipDoc) (*anim.Library, error) {
	lib := anim.NewLibrary()
	for i, cd := range docs {
		if cd.Name == "" {
			return nil, fmt.Errorf("%w: animation %d has no name", ErrInvalidDocument, i)
		}
		if _, exists := lib.Get(cd.Name); exists {
			return nil, fmt.Errorf("%w: duplicate animation %q", ErrInvalidDocument, cd.Name)
		}
		clip := anim.NewClip(cd.Name, cd.Loop)
		for j, fd := range cd.Frames {
			f := anim.Frame{Time: float32(fd.Time), Pose: anim.IdentityPose()}
			if err := vec3(&f.Translation, fd.Translation, "translation"); err != nil {
				return nil, fmt.Errorf("%w: animation %q frame %d: %w", ErrInvalidDocument, cd.Name, j, err)
			}
			if err := vec3(&f.Rotation, fd.Rotation, "rotation"); err != nil {
				return nil, fmt.Errorf("%w: animation %q frame %d: %w", ErrInvalidDocument, cd.Name, j, err)
			}
			if err := vec3(&f.Scale, fd.Scale, "scale"); err != nil {
				return nil, fmt.Errorf("%w: animation %q frame %d: %w", ErrInvalidDocument, cd.Name, j, err)
			}
			clip.AddFrame(f)
		}
		if err := lib.Put(clip, cd.Target); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	}
	return lib, nil
}
