// Package export writes a rendered RGB pixel buffer to disk, grounded on
// original_source/include/exporter.hpp's Exporter<ArrayType> (toBitmap,
// toCSV).
package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
)

// WriteBMP writes pixels (row-major, 3 bytes per pixel, top row first)
// as an uncompressed 24-bit Windows BMP. No image-encoding library in
// the example pack is used for anything beyond an indirect transitive
// dependency, and the BMP format is simple enough that hand-rolling it
// with encoding/binary is the idiomatic choice here.
func WriteBMP(path string, pixels []byte, width, height int) error {
	if len(pixels) != width*height*3 {
		return fmt.Errorf("export: pixel buffer length %d does not match %dx%d RGB", len(pixels), width, height)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	rowSize := (width*3 + 3) &^ 3 // rows are padded to a 4-byte boundary
	pixelDataSize := rowSize * height
	fileSize := 14 + 40 + pixelDataSize

	// BITMAPFILEHEADER
	writeU16(w, 0x4D42) // "BM"
	writeU32(w, uint32(fileSize))
	writeU16(w, 0)
	writeU16(w, 0)
	writeU32(w, 14+40)

	// BITMAPINFOHEADER
	writeU32(w, 40)
	writeU32(w, uint32(width))
	writeU32(w, uint32(height))
	writeU16(w, 1)  // planes
	writeU16(w, 24) // bits per pixel
	writeU32(w, 0)  // no compression
	writeU32(w, uint32(pixelDataSize))
	writeU32(w, 2835) // ~72 DPI
	writeU32(w, 2835)
	writeU32(w, 0)
	writeU32(w, 0)

	pad := make([]byte, rowSize-width*3)
	// BMP rows are stored bottom-to-top.
	for row := height - 1; row >= 0; row-- {
		for col := 0; col < width; col++ {
			i := (row*width + col) * 3
			// BMP pixel order is BGR.
			w.WriteByte(pixels[i+2])
			w.WriteByte(pixels[i+1])
			w.WriteByte(pixels[i])
		}
		w.Write(pad)
	}

	return w.Flush()
}

func writeU16(w *bufio.Writer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.Write(b[:])
}

func writeU32(w *bufio.Writer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.Write(b[:])
}
