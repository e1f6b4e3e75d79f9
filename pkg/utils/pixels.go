package utils

import "image"

// BGRARow converts one row of an RGBA image to the BGRA byte order used
// by Windows DIB pixel data
func BGRARow(img *image.RGBA, y int) []byte {
	b := img.Bounds()
	row := make([]byte, b.Dx()*4)
	src := img.Pix[(y-b.Min.Y)*img.Stride : (y-b.Min.Y)*img.Stride+b.Dx()*4]
	for i := 0; i < len(src); i += 4 {
		row[i+0] = src[i+2] // B
		row[i+1] = src[i+1] // G
		row[i+2] = src[i+0] // R
		row[i+3] = src[i+3] // A
	}
	return row
}

// BGRABottomUp flattens an RGBA image into bottom-up BGRA scanlines,
// the layout DIB bitmaps store
func BGRABottomUp(img *image.RGBA) []byte {
	b := img.Bounds()
	out := make([]byte, 0, b.Dx()*b.Dy()*4)
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		out = append(out, BGRARow(img, y)...)
	}
	return out
}

// MaskBottomUp builds the 1-bit AND mask for a DIB icon entry: a set bit
// marks a fully transparent pixel. Rows are padded to 32-bit boundaries
// and ordered bottom-up
func MaskBottomUp(img *image.RGBA) []byte {
	b := img.Bounds()
	rowBytes := ((b.Dx() + 31) / 32) * 4
	out := make([]byte, 0, rowBytes*b.Dy())
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		row := make([]byte, rowBytes)
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A == 0 {
				bit := x - b.Min.X
				row[bit/8] |= 0x80 >> (bit % 8)
			}
		}
		out = append(out, row...)
	}
	return out
}
