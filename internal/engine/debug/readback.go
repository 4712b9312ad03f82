package debug

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// ReadFramebuffer reads the current read buffer as tightly packed RGBA.
func ReadFramebuffer(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// Capture reads the framebuffer and saves it.
func (sc *ScreenshotCapture) Capture(width, height int) (string, error) {
	return sc.CaptureFromPixels(ReadFramebuffer(width, height), width, height)
}
