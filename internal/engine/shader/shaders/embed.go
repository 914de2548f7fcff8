// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// FlatVertex transforms positions by the mvp uniform.
//
//go:embed flat.vert
var FlatVertex string

// FlatFragment shades with uColor and a fixed directional light.
//
//go:embed flat.frag
var FlatFragment string
