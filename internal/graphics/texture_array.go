package graphics

import (
	"fmt"
	"log"

	"quadcraft/internal/assets"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// TextureArray is the GL_TEXTURE_2D_ARRAY holding one layer per TextureID.
type TextureArray struct {
	ID     uint32
	Layers int
}

// NewTextureArray uploads the layers in order. All layers must share the
// size of the first.
func NewTextureArray(layers []assets.Layer) (*TextureArray, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("no texture layers")
	}
	width := layers[0].Image.Bounds().Dx()
	height := layers[0].Image.Bounds().Dy()
	for i, l := range layers {
		if l.Image.Bounds().Dx() != width || l.Image.Bounds().Dy() != height {
			return nil, fmt.Errorf("texture layer %d (%v) dimensions mismatch", i, l.ID)
		}
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, texture)

	gl.TexImage3D(
		gl.TEXTURE_2D_ARRAY,
		0,
		gl.RGBA8,
		int32(width),
		int32(height),
		int32(len(layers)),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		nil,
	)

	for i, l := range layers {
		gl.TexSubImage3D(
			gl.TEXTURE_2D_ARRAY,
			0,
			0, 0, int32(i),
			int32(width),
			int32(height),
			1,
			gl.RGBA,
			gl.UNSIGNED_BYTE,
			gl.Ptr(l.Image.Pix),
		)
	}

	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, 0)

	log.Printf("uploaded %d texture layers (%dx%d)", len(layers), width, height)
	return &TextureArray{ID: texture, Layers: len(layers)}, nil
}

// Bind binds the array to the given texture unit.
func (t *TextureArray) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, t.ID)
}

// Dispose deletes the texture.
func (t *TextureArray) Dispose() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
