//
// SPDX-FileCopyrightText: Copyright (c) 2025 Luli Reader. All rights reserved.
// SPDX-License-Identifier: Apache-2.0
//

// Package iconset implements the Luli Reader icon asset pipeline
package iconset

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"

	"github.com/luli-reader/icongen/pkg/utils"
)

// ICO container layout: a 6-byte ICONDIR header, one 16-byte
// ICONDIRENTRY per frame, then the frame payloads. Frames at or below
// icoBMPMaxSize are stored as classic BMP DIBs (BITMAPINFOHEADER,
// bottom-up BGRA pixels, 1-bit AND mask) so legacy shell surfaces can
// read them; larger frames embed PNG payloads, which Vista and later
// prefer for the big sizes.
const icoBMPMaxSize = 48

const (
	icoHeaderSize = 6
	icoEntrySize  = 16
	dibHeaderSize = 40
)

// EncodeICO assembles an ICO container from square frames. Frame
// order follows the input; callers pass the ladder smallest first.
func EncodeICO(frames []*image.RGBA) ([]byte, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("ico container needs at least one frame")
	}

	payloads := make([][]byte, len(frames))
	for i, frame := range frames {
		w, h := frame.Rect.Dx(), frame.Rect.Dy()
		if w != h || w < 1 || w > 256 {
			return nil, fmt.Errorf("ico frame %d: unsupported dimensions %dx%d", i, w, h)
		}

		if w <= icoBMPMaxSize {
			payloads[i] = encodeDIB(frame)
		} else {
			data, err := encodePNG(frame)
			if err != nil {
				return nil, fmt.Errorf("ico frame %d: %w", i, err)
			}
			payloads[i] = data
		}
	}

	header := make([]byte, icoHeaderSize)
	binary.LittleEndian.PutUint16(header[2:4], 1) // resource type: icon
	binary.LittleEndian.PutUint16(header[4:6], uint16(len(frames)))

	var out bytes.Buffer
	out.Write(header)

	offset := icoHeaderSize + icoEntrySize*len(frames)
	for i, frame := range frames {
		out.Write(icoEntry(frame.Rect.Dx(), len(payloads[i]), offset))
		offset += len(payloads[i])
	}
	for _, payload := range payloads {
		out.Write(payload)
	}

	return out.Bytes(), nil
}

// icoEntry packs one ICONDIRENTRY. A zero width/height byte means 256.
func icoEntry(size, payloadLen, offset int) []byte {
	buf := make([]byte, icoEntrySize)
	if size < 256 {
		buf[0] = byte(size)
		buf[1] = byte(size)
	}
	// palette count and reserved byte stay zero
	binary.LittleEndian.PutUint16(buf[4:6], 1)  // color planes
	binary.LittleEndian.PutUint16(buf[6:8], 32) // bits per pixel
	binary.LittleEndian.PutUint32(buf[8:12], uint32(payloadLen))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(offset))
	return buf
}

// encodeDIB packs one frame as a 32-bit BMP DIB. The header height
// covers both the XOR color plane and the AND mask plane.
func encodeDIB(img *image.RGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	xor := utils.BGRABottomUp(img)
	and := utils.MaskBottomUp(img)

	buf := make([]byte, dibHeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], dibHeaderSize)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(w))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(h*2))
	binary.LittleEndian.PutUint16(buf[12:14], 1)  // planes
	binary.LittleEndian.PutUint16(buf[14:16], 32) // bits per pixel
	// compression stays BI_RGB (0)
	binary.LittleEndian.PutUint32(buf[20:24], uint32(len(xor)+len(and)))

	out := make([]byte, 0, dibHeaderSize+len(xor)+len(and))
	out = append(out, buf...)
	out = append(out, xor...)
	out = append(out, and...)
	return out
}
