package export

import (
	"os"
	"path/filepath"
	"testing"
)

func makePixels(width, height int) []byte {
	px := make([]byte, width*height*3)
	for i := range px {
		px[i] = byte(i % 256)
	}
	return px
}

func TestWriteBMP(t *testing.T) {
	t.Run("ValidBuffer", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.bmp")
		px := makePixels(4, 3)

		if err := WriteBMP(path, px, 4, 3); err != nil {
			t.Fatalf("WriteBMP: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if len(data) < 54 {
			t.Fatalf("expected at least a 54-byte header, got %d bytes", len(data))
		}
		if data[0] != 'B' || data[1] != 'M' {
			t.Errorf("expected BM magic, got %q", data[:2])
		}
	})

	t.Run("MismatchedBufferLength", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.bmp")
		if err := WriteBMP(path, make([]byte, 3), 4, 3); err == nil {
			t.Error("expected error for mismatched pixel buffer length")
		}
	})
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	px := []byte{10, 20, 30, 40, 50, 60}

	if err := WriteCSV(path, px, 2, 1); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "10 20 30,40 50 60\n"
	if string(data) != want {
		t.Errorf("expected %q, got %q", want, string(data))
	}
}
