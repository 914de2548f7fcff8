package codec

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Float is a float32 that always encodes to YAML as a float token. yaml.v3
// writes -0 as "-0", which reads back as the integer 0 and drops the sign.
type Float float32

// Floats is a float32 array with the same YAML encoding, written in flow style.
type Floats []float32

// MarshalYAML implements yaml.Marshaler.
func (f Float) MarshalYAML() (any, error) {
	return floatNode(float32(f)), nil
}

// MarshalYAML implements yaml.Marshaler.
func (fs Floats) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, f := range fs {
		n.Content = append(n.Content, floatNode(f))
	}
	return n, nil
}

func floatNode(f float32) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(f)}
}

func formatFloat(f float32) string {
	switch v := float64(f); {
	case math.IsNaN(v):
		return ".nan"
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
