package iconset

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/webp"

	iconerrors "github.com/luli-reader/icongen/pkg/iconset/errors"
)

// Source image magic numbers
var (
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	gifMagic  = []byte("GIF8")
	riffMagic = []byte("RIFF")
	webpMagic = []byte("WEBP")
)

// SniffImageFormat classifies image bytes by magic number
func SniffImageFormat(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return "png", nil
	case bytes.HasPrefix(data, jpegMagic):
		return "jpeg", nil
	case bytes.HasPrefix(data, gifMagic):
		return "gif", nil
	case bytes.HasPrefix(data, riffMagic) && len(data) >= 12 && bytes.Equal(data[8:12], webpMagic):
		return "webp", nil
	default:
		return "", iconerrors.ErrUnsupportedImage
	}
}

// LoadSourceImage reads and decodes a designer master image. PNG,
// JPEG, GIF and WebP are accepted, classified by magic bytes rather
// than file extension.
func LoadSourceImage(path string) (image.Image, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading source image %s: %w", path, err)
	}

	format, err := SniffImageFormat(data)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", err, path)
	}

	var img image.Image
	switch format {
	case "png":
		img, err = png.Decode(bytes.NewReader(data))
	case "jpeg":
		img, err = jpeg.Decode(bytes.NewReader(data))
	case "gif":
		img, err = gif.Decode(bytes.NewReader(data))
	case "webp":
		img, err = webp.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, "", fmt.Errorf("decoding %s source %s: %w", format, path, err)
	}

	return img, format, nil
}

// ResizeSource scales a master to one square slot size using Lanczos
// resampling
func ResizeSource(src image.Image, size int) *image.RGBA {
	return toRGBA(imaging.Resize(src, size, size, imaging.Lanczos))
}

// toRGBA converts a decoded image into zero-origin RGBA pixels
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	out := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}
