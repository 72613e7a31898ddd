package graphics

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// TextureUploader owns the GL side of texture management: uploading decoded
// images, binding them to texture units and deleting them in bulk.
type TextureUploader struct{}

// NewTextureUploader returns a GL-backed texture uploader.
func NewTextureUploader() *TextureUploader {
	return &TextureUploader{}
}

// Upload creates a 2D texture from decoded RGBA pixels with repeat wrapping,
// linear filtering and generated mipmaps. opaque selects the RGB8 internal
// format for images that carried no alpha channel.
func (u *TextureUploader) Upload(rgba *image.RGBA, opaque bool) (uint32, error) {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	internalFormat := int32(gl.RGBA8)
	if opaque {
		internalFormat = gl.RGB8
	}

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat,
		int32(rgba.Rect.Size().X),
		int32(rgba.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texture, nil
}

// Bind makes the texture current on the given texture unit.
func (u *TextureUploader) Bind(unit int, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, id)
}

// Delete releases the given textures.
func (u *TextureUploader) Delete(ids []uint32) {
	if len(ids) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(ids)), &ids[0])
}
