package scene

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// decodeImage reads the image at path, rejects anything that is not a 3 or
// 4 channel color image, and returns it as RGBA pixels flipped vertically
// so that row 0 is the bottom of the image, matching GL texture
// coordinates. opaque reports whether the source had no alpha channel.
func decodeImage(path string) (*image.RGBA, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open texture file: %v", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode image: %v", err)
	}

	channels, err := channelCount(img)
	if err != nil {
		return nil, false, fmt.Errorf("%s %q: %w", format, path, err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	flipVertical(rgba)

	return rgba, channels == 3, nil
}

// channelCount maps the decoded representation onto a channel count, and
// rejects grayscale, alpha-only and CMYK images the renderer does not
// support.
func channelCount(img image.Image) (int, error) {
	switch img.(type) {
	case *image.YCbCr:
		return 3, nil
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.NYCbCrA, *image.Paletted:
		return 4, nil
	default:
		return 0, fmt.Errorf("unsupported channel layout %T", img)
	}
}

// flipVertical mirrors the pixel rows in place.
func flipVertical(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]uint8, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bot := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bot)
		copy(bot, row)
	}
}
