package registry

import (
	"fmt"
	"path"
)

// TextureID selects a layer of the block texture array.
type TextureID uint8

const (
	// TextureError is generated at load time and has no source file.
	TextureError TextureID = iota
	TextureDirt
	TextureGrassTop
	TextureGrassSide
	TextureLogTop
	TextureLogSide
	TexturePlanks
	TextureStone
	TextureBrick

	TextureCount // keep last
)

// TextureDir is the directory, relative to the asset root, holding block textures.
const TextureDir = "textures"

var textureFiles = [TextureCount]string{
	TextureDirt:      "dirt.png",
	TextureGrassTop:  "grass_top.png",
	TextureGrassSide: "grass_side.png",
	TextureLogTop:    "log_top.png",
	TextureLogSide:   "log_side.png",
	TexturePlanks:    "planks.png",
	TextureStone:     "stone.png",
	TextureBrick:     "brick.png",
}

// TextureSource returns the slash-separated path of the texture's image
// relative to the asset root. It returns false for TextureError, which is
// synthesized, and for IDs outside the enumeration.
func TextureSource(id TextureID) (string, bool) {
	if id == TextureError || id >= TextureCount {
		return "", false
	}
	return path.Join(TextureDir, textureFiles[id]), true
}

func (id TextureID) String() string {
	if id == TextureError {
		return "error"
	}
	if id < TextureCount {
		return textureFiles[id][:len(textureFiles[id])-len(path.Ext(textureFiles[id]))]
	}
	return fmt.Sprintf("texture(%d)", uint8(id))
}

func checkTextures() error {
	if textureFiles[TextureError] != "" {
		return fmt.Errorf("error texture must not have a source file")
	}
	seen := make(map[string]TextureID, TextureCount)
	for id := TextureError + 1; id < TextureCount; id++ {
		name := textureFiles[id]
		if name == "" {
			return fmt.Errorf("texture %d has no source file", id)
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("textures %d and %d share source %s", prev, id, name)
		}
		seen[name] = id
	}
	return nil
}
