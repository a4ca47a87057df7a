package assets

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"log"

	"quadcraft/internal/registry"

	"golang.org/x/image/draw"
)

// Every block texture is a square of this size.
const TextureSize = 16

// TextureChannels is the channel count every source PNG must store.
const TextureChannels = 4

var (
	ErrBadDimensions = errors.New("texture is not 16x16")
	ErrBadChannels   = errors.New("texture does not have 4 channels")
)

// LoadError names the resource that failed to load.
type LoadError struct {
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Layer is one slice of the block texture array.
type Layer struct {
	ID    registry.TextureID
	Image *image.RGBA
}

var (
	errorColorA = color.RGBA{R: 255, B: 255, A: 255}
	errorColorB = color.RGBA{A: 255}
)

// ErrorTexture is the magenta and black checkerboard shown for missing
// art. It occupies layer 0.
func ErrorTexture() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TextureSize, TextureSize))
	const cell = TextureSize / 4
	for y := 0; y < TextureSize; y++ {
		for x := 0; x < TextureSize; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, errorColorA)
			} else {
				img.SetRGBA(x, y, errorColorB)
			}
		}
	}
	return img
}

// LoadTextures decodes every registered texture from fsys and returns one
// layer per TextureID in ID order. Images are stored as RGBA8 and flipped
// so row 0 is the bottom, matching GL texture coordinates.
func LoadTextures(fsys fs.FS) ([]Layer, error) {
	layers := make([]Layer, registry.TextureCount)
	layers[registry.TextureError] = Layer{ID: registry.TextureError, Image: ErrorTexture()}

	for id := registry.TextureError + 1; id < registry.TextureCount; id++ {
		name, ok := registry.TextureSource(id)
		if !ok {
			return nil, &LoadError{Resource: id.String(), Err: fs.ErrNotExist}
		}
		img, err := LoadTexture(fsys, name)
		if err != nil {
			return nil, err
		}
		layers[id] = Layer{ID: id, Image: img}
	}

	log.Printf("loaded %d textures (%dx%d)", len(layers), TextureSize, TextureSize)
	return layers, nil
}

// LoadTexture decodes a single 16x16 four-channel PNG.
func LoadTexture(fsys fs.FS, name string) (*image.RGBA, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &LoadError{Resource: name, Err: err}
	}

	channels, err := pngChannels(data)
	if err != nil {
		return nil, &LoadError{Resource: name, Err: err}
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Resource: name, Err: err}
	}

	b := img.Bounds()
	if b.Dx() != TextureSize || b.Dy() != TextureSize {
		return nil, &LoadError{
			Resource: name,
			Err:      fmt.Errorf("%w: got %dx%d", ErrBadDimensions, b.Dx(), b.Dy()),
		}
	}

	if channels != TextureChannels {
		return nil, &LoadError{
			Resource: name,
			Err:      fmt.Errorf("%w: got %d", ErrBadChannels, channels),
		}
	}

	rgba := image.NewRGBA(image.Rect(0, 0, TextureSize, TextureSize))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	flipVertical(rgba)
	return rgba, nil
}

func flipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// pngChannels reports the channel count a PNG stores, read from its IHDR
// colour type. A palette followed by a tRNS chunk counts as four.
func pngChannels(data []byte) (int, error) {
	if !bytes.HasPrefix(data, pngSignature) {
		return 0, errors.New("not a PNG file")
	}
	rest := data[len(pngSignature):]
	colorType := -1
	for len(rest) >= 12 {
		n := int(binary.BigEndian.Uint32(rest[:4]))
		if n < 0 || len(rest)-12 < n {
			break
		}
		body := rest[8 : 8+n]
		switch string(rest[4:8]) {
		case "IHDR":
			if len(body) < 13 {
				return 0, errors.New("short IHDR chunk")
			}
			colorType = int(body[9])
		case "tRNS":
			if colorType == 3 {
				return 4, nil
			}
		case "IDAT", "IEND":
			return colorTypeChannels(colorType)
		}
		rest = rest[12+n:]
	}
	return 0, errors.New("truncated PNG header")
}

func colorTypeChannels(colorType int) (int, error) {
	switch colorType {
	case 0: // gray
		return 1, nil
	case 2, 3: // RGB, palette without alpha
		return 3, nil
	case 4: // gray + alpha
		return 2, nil
	case 6: // RGBA
		return 4, nil
	}
	return 0, fmt.Errorf("unsupported PNG colour type %d", colorType)
}
