package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// TextureCache owns every texture stored in it; Destroy releases them all.
type TextureCache struct {
	textures map[string]*sdl.Texture
}

func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[string]*sdl.Texture)}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	return c.textures[key]
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if old, ok := c.textures[key]; ok && old != nil && old != texture {
		old.Destroy()
	}
	c.textures[key] = texture
}

func (c *TextureCache) Destroy() {
	for key, texture := range c.textures {
		if texture != nil {
			texture.Destroy()
		}
		delete(c.textures, key)
	}
}
