package driver

// Target identifies a texture binding target.
type Target uint32

const (
	// Target2D is the standard two-dimensional texture target.
	Target2D Target = 0x0DE1
	// TargetExternal is the external-image target used for textures whose
	// storage is produced outside the pipeline (video decoders, camera
	// streams). Backends that lack it may treat it as Target2D.
	TargetExternal Target = 0x8D65
)

func (t Target) String() string {
	switch t {
	case Target2D:
		return "2d"
	case TargetExternal:
		return "external"
	default:
		return "unknown"
	}
}

// Driver is the subset of the graphics API the layer pipeline touches.
// All calls must be made from the rendering thread that owns the context.
type Driver interface {
	// GenTexture requests a fresh texture identifier. Never returns 0.
	GenTexture() uint32
	// DeleteTexture releases a previously generated identifier.
	DeleteTexture(id uint32)
	// BindTexture binds id to target. id 0 unbinds the target.
	BindTexture(target Target, id uint32)
	// TexImage2D defines storage and contents for the texture currently
	// bound to target. pixels is RGBA, 4*width*height bytes, or nil to
	// allocate without uploading.
	TexImage2D(target Target, width, height int, pixels []byte)
	// ActiveTexture selects texture unit for subsequent binds.
	ActiveTexture(unit int)
}
