package driver

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// GL41 issues calls against the current OpenGL 4.1 core context. The
// context must be current on the calling thread.
type GL41 struct{}

func (GL41) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (GL41) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

func (GL41) BindTexture(target Target, id uint32) {
	gl.BindTexture(uint32(target), id)
}

func (GL41) TexImage2D(target Target, width, height int, pixels []byte) {
	t := uint32(target)
	gl.TexParameteri(t, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(t, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(t, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(t, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	if pixels == nil {
		gl.TexImage2D(t, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
		return
	}
	gl.TexImage2D(t, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (GL41) ActiveTexture(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
}
