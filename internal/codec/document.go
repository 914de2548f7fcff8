// Package codec converts a live scene graph to and from a flat document tree
// stored as YAML, JSON or TOML. Decoding never touches the GPU.
package codec

import "errors"

// Version is the document layout written by Serialize.
const Version = 1

var (
	// ErrNotFound is returned by Load when the path does not exist.
	ErrNotFound = errors.New("scene document not found")
	// ErrInvalidDocument is returned when content cannot be parsed or does not
	// describe a valid scene.
	ErrInvalidDocument = errors.New("invalid scene document")
	// ErrUnsupportedFormat is returned for unknown file extensions or format names.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// Document is the persisted form of a scene and its clips.
type Document struct {
	Version    int       `yaml:"version" json:"version" toml:"version"`
	ID         string    `yaml:"id,omitempty" json:"id,omitempty" toml:"id,omitempty"`
	Scene      SceneDoc  `yaml:"scene" json:"scene" toml:"scene"`
	Animations []ClipDoc `yaml:"animations,omitempty" json:"animations,omitempty" toml:"animations,omitempty"`
}

// TransformDoc holds a transform. Missing vectors take their identity values
// and a missing enabled flag means enabled.
type TransformDoc struct {
	Translation Floats `yaml:"translation,omitempty,flow" json:"translation,omitempty" toml:"translation,omitempty"`
	Rotation    Floats `yaml:"rotation,omitempty,flow" json:"rotation,omitempty" toml:"rotation,omitempty"`
	Scale       Floats `yaml:"scale,omitempty,flow" json:"scale,omitempty" toml:"scale,omitempty"`
	Enabled     *bool  `yaml:"enabled,omitempty" json:"enabled,omitempty" toml:"enabled,omitempty"`
}

// SceneDoc mirrors scene.Root.
type SceneDoc struct {
	Name      string       `yaml:"name" json:"name" toml:"name"`
	Transform TransformDoc `yaml:"transform" json:"transform" toml:"transform"`
	Groups    []GroupDoc   `yaml:"groups" json:"groups" toml:"groups"`
}

// GroupDoc mirrors scene.Group.
type GroupDoc struct {
	Name      string       `yaml:"name" json:"name" toml:"name"`
	Transform TransformDoc `yaml:"transform" json:"transform" toml:"transform"`
	Hidden    bool         `yaml:"hidden,omitempty" json:"hidden,omitempty" toml:"hidden,omitempty"`
	Holders   []HolderDoc  `yaml:"holders" json:"holders" toml:"holders"`
}

// HolderDoc mirrors scene.Holder including its geometry. An ID of 0 means
// "assign the next free id".
type HolderDoc struct {
	ID        int          `yaml:"id,omitempty" json:"id,omitempty" toml:"id,omitempty"`
	Name      string       `yaml:"name" json:"name" toml:"name"`
	Transform TransformDoc `yaml:"transform" json:"transform" toml:"transform"`
	Color     Floats       `yaml:"color,omitempty,flow" json:"color,omitempty" toml:"color,omitempty"`
	EdgeColor Floats       `yaml:"edgeColor,omitempty,flow" json:"edgeColor,omitempty" toml:"edgeColor,omitempty"`
	EdgeWidth *Float       `yaml:"edgeWidth,omitempty" json:"edgeWidth,omitempty" toml:"edgeWidth,omitempty"`
	Hidden    bool         `yaml:"hidden,omitempty" json:"hidden,omitempty" toml:"hidden,omitempty"`
	Vertices  Floats       `yaml:"vertices,flow" json:"vertices" toml:"vertices"`
	Triangles []uint32     `yaml:"triangles,flow" json:"triangles" toml:"triangles"`
	Edges     []uint32     `yaml:"edges,omitempty,flow" json:"edges,omitempty" toml:"edges,omitempty"`
}

// ClipDoc is a recorded clip and the group it drives.
type ClipDoc struct {
	Name   string     `yaml:"name" json:"name" toml:"name"`
	Target string     `yaml:"target" json:"target" toml:"target"`
	Loop   bool       `yaml:"loop,omitempty" json:"loop,omitempty" toml:"loop,omitempty"`
	Frames []FrameDoc `yaml:"frames" json:"frames" toml:"frames"`
}

// FrameDoc is one keyframe.
type FrameDoc struct {
	Time        Float  `yaml:"time" json:"time" toml:"time"`
	Translation Floats `yaml:"translation,flow" json:"translation" toml:"translation"`
	Rotation    Floats `yaml:"rotation,flow" json:"rotation" toml:"rotation"`
	Scale       Floats `yaml:"scale,flow" json:"scale" toml:"scale"`
}
