package debug

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Capture reads the back buffer and saves it. Call after drawing, before
// the buffers are swapped.
func (s *Screenshots) Capture(width, height int) (string, error) {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return s.Save(pixels, width, height)
}
