package layer

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// SetContent uploads src as the layer's pixel content, allocating texture
// storage if needed. src is converted to RGBA and scaled to the layer's
// declared dimensions when it does not match them. Skipped entirely when
// the context is gone.
func (l *GLLayer) SetContent(src image.Image) {
	if !l.state.IsInitialized() {
		return
	}

	rgba := image.NewRGBA(image.Rect(0, 0, l.width, l.height))
	b := src.Bounds()
	if b.Dx() == l.width && b.Dy() == l.height {
		xdraw.Draw(rgba, rgba.Bounds(), src, b.Min, xdraw.Src)
	} else {
		xdraw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), src, b, xdraw.Src, nil)
	}

	l.GenerateTexture()
	l.BindTexture()
	l.state.Driver().TexImage2D(l.texture.Target(), l.width, l.height, rgba.Pix)
}
