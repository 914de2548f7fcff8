package codec

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/Faultbox/pcscene/internal/scene"
)

// Serialize snapshots root into a new document. Geometry arrays are copied.
func Serialize(root *scene.Root) *Document {
	doc := &Document{
		Version: Version,
		ID:      uuid.NewString(),
		Scene: SceneDoc{
			Name:      root.Name(),
			Transform: transformDoc(root.Transform()),
			Groups:    make([]GroupDoc, 0, root.Len()),
		},
	}
	for _, g := range root.Groups() {
		gd := GroupDoc{
			Name:      g.Name(),
			Transform: transformDoc(g.Transform()),
			Hidden:    g.Hidden(),
			Holders:   make([]HolderDoc, 0, g.Len()),
		}
		for _, id := range g.IDs() {
			h, _ := g.Holder(id)
			gd.Holders = append(gd.Holders, holderDoc(id, h))
		}
		doc.Scene.Groups = append(doc.Scene.Groups, gd)
	}
	return doc
}

func holderDoc(id int, h *scene.Holder) HolderDoc {
	width := Float(h.EdgeWidth())
	fill, edge := h.Color(), h.EdgeColor()
	return HolderDoc{
		ID:        id,
		Name:      h.Name(),
		Transform: transformDoc(h.Transform()),
		Color:     fill[:],
		EdgeColor: edge[:],
		EdgeWidth: &width,
		Hidden:    h.Hidden(),
		Vertices:  h.Vertices(),
		Triangles: h.Triangles(),
		Edges:     h.Edges(),
	}
}

func transformDoc(t *scene.Transform) TransformDoc {
	tr, rot, sc := t.Translation, t.Rotation, t.Scale
	enabled := t.Enabled
	return TransformDoc{
		Translation: tr[:],
		Rotation:    rot[:],
		Scale:       sc[:],
		Enabled:     &enabled,
	}
}

// Deserialize builds a new, independent graph from doc. No uploader is set;
// GPU buffers are created on first draw once the host provides one. On error
// nothing is returned and no existing graph is affected.
func Deserialize(doc *Document) (*scene.Root, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}

	root := scene.NewRoot(doc.Scene.Name)
	if err := applyTransform(root.Transform(), doc.Scene.Transform); err != nil {
		return nil, fmt.Errorf("%w: scene %q: %w", ErrInvalidDocument, doc.Scene.Name, err)
	}

	for _, gd := range doc.Scene.Groups {
		g, err := buildGroup(gd)
		if err != nil {
			root.Dispose()
			return nil, fmt.Errorf("%w: group %q: %w", ErrInvalidDocument, gd.Name, err)
		}
		if err := root.Add(g); err != nil {
			root.Dispose()
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	}
	return root, nil
}

func buildGroup(gd GroupDoc) (*scene.Group, error) {
	g := scene.NewGroup(gd.Name)
	g.SetHidden(gd.Hidden)
	if err := applyTransform(g.Transform(), gd.Transform); err != nil {
		return nil, err
	}

	for i, hd := range gd.Holders {
		h, err := buildHolder(hd)
		if err != nil {
			return nil, fmt.Errorf("holder %d (%q): %w", i, hd.Name, err)
		}
		if hd.ID == 0 {
			_, err = g.Add(h)
		} else {
			err = g.Insert(hd.ID, h)
		}
		if err != nil {
			return nil, err
		}
	}
	return g, nil
}

func buildHolder(hd HolderDoc) (*scene.Holder, error) {
	geo := scene.Geometry{
		Vertices:  hd.Vertices,
		Triangles: hd.Triangles,
		Edges:     hd.Edges,
	}
	if err := geo.Validate(); err != nil {
		return nil, fmt.Errorf("geometry: %w", err)
	}

	h := scene.NewHolder(hd.Name, geo)
	if err := applyTransform(h.Transform(), hd.Transform); err != nil {
		return nil, err
	}
	if hd.Color != nil {
		c, err := color(hd.Color)
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		h.SetColor(c)
	}
	if hd.EdgeColor != nil {
		c, err := color(hd.EdgeColor)
		if err != nil {
			return nil, fmt.Errorf("edgeColor: %w", err)
		}
		h.SetEdgeColor(c)
	}
	if hd.EdgeWidth != nil {
		if *hd.EdgeWidth < 0 {
			return nil, fmt.Errorf("edgeWidth %g is negative", *hd.EdgeWidth)
		}
		h.SetEdgeWidth(float32(*hd.EdgeWidth))
	}
	h.SetHidden(hd.Hidden)
	return h, nil
}

func applyTransform(t *scene.Transform, td TransformDoc) error {
	*t = scene.NewTransform()
	if err := vec3(&t.Translation, td.Translation, "translation"); err != nil {
		return err
	}
	if err := vec3(&t.Rotation, td.Rotation, "rotation"); err != nil {
		return err
	}
	if err := vec3(&t.Scale, td.Scale, "scale"); err != nil {
		return err
	}
	if td.Enabled != nil {
		t.Enabled = *td.Enabled
	}
	return nil
}

// vec3 leaves dst unchanged for a missing value.
func vec3(dst *mgl32.Vec3, v []float32, field string) error {
	if v == nil {
		return nil
	}
	if len(v) != 3 {
		return fmt.Errorf("%s: expected 3 values, got %d", field, len(v))
	}
	*dst = mgl32.Vec3{v[0], v[1], v[2]}
	return nil
}

// color accepts RGB (alpha 1) or RGBA.
func color(v []float32) (mgl32.Vec4, error) {
	switch len(v) {
	case 3:
		return mgl32.Vec4{v[0], v[1], v[2], 1}, nil
	case 4:
		return mgl32.Vec4{v[0], v[1], v[2], v[3]}, nil
	}
	return mgl32.Vec4{}, fmt.Errorf("expected 3 or 4 values, got %d", len(v))
}
