package export

import (
	"bufio"
	"fmt"
	"os"
)

// WriteCSV writes pixels (row-major, 3 bytes per pixel) as one row per
// image row, each pixel rendered as an "R G B" triple separated by
// commas, matching original_source/include/exporter.hpp's toCSV.
func WriteCSV(path string, pixels []byte, width, height int) error {
	if len(pixels) != width*height*3 {
		return fmt.Errorf("export: pixel buffer length %d does not match %dx%d RGB", len(pixels), width, height)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			i := (row*width + col) * 3
			if col > 0 {
				w.WriteByte(',')
			}
			fmt.Fprintf(w, "%d %d %d", pixels[i], pixels[i+1], pixels[i+2])
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}
