package ppm

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// zstdMagic is the frame header of a zstd stream.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

func TestLoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.ppm")
	if err := os.WriteFile(path, []byte(sampleBitmap), 0o600); err != nil {
		t.Fatal(err)
	}

	b, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() = %v", err)
	}
	if !b.Equal(newTestBuffer(t, 3, 2, 255, samplePixels...)) {
		t.Error("LoadImage() pixels differ from sample")
	}
}

func TestLoadImage_Missing(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "missing.ppm"))
	if !errors.Is(err, ErrOpen) {
		t.Errorf("LoadImage(missing) error = %v, want ErrOpen", err)
	}
	if !IsNotExist(err) {
		t.Errorf("IsNotExist(%v) = false, want true", err)
	}
}

func TestLoadImage_DecodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ppm")
	if err := os.WriteFile(path, []byte("P3\n2 2\n255\n1 2 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(path); !errors.Is(err, ErrTruncated) {
		t.Errorf("LoadImage(truncated) error = %v, want ErrTruncated", err)
	}
}

func TestSaveImage_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	b := gradientBuffer(t, 19, 11)

	for _, name := range []string{"plain.ppm", "packed.ppm.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := SaveImage(b, path); err != nil {
				t.Fatalf("SaveImage() = %v", err)
			}
			got, err := LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage() = %v", err)
			}
			if !got.Equal(b) {
				t.Error("file round trip changed the buffer")
			}
		})
	}
}

func TestSaveImage_Compression(t *testing.T) {
	dir := t.TempDir()
	b := newTestBuffer(t, 3, 2, 255, samplePixels...)

	tests := []struct {
		name string
		file string
		opts []Option
		zstd bool
	}{
		{"auto plain", "a.ppm", nil, false},
		{"auto zst", "a.ppm.zst", nil, true},
		{"forced none", "b.ppm.zst", []Option{WithCompression(CompressionNone)}, false},
		{"forced zstd", "c.ppm", []Option{WithCompression(CompressionZstd)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := SaveImage(b, path, tt.opts...); err != nil {
				t.Fatalf("SaveImage() = %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if got := bytes.HasPrefix(data, zstdMagic); got != tt.zstd {
				t.Errorf("zstd frame = %v, want %v", got, tt.zstd)
			}
			if !tt.zstd && string(data) != sampleBitmap {
				t.Errorf("plain output =\n%s\nwant\n%s", data, sampleBitmap)
			}

			got, err := LoadImage(path, tt.opts...)
			if err != nil {
				t.Fatalf("LoadImage() = %v", err)
			}
			if !got.Equal(b) {
				t.Error("LoadImage() differs from saved buffer")
			}
		})
	}
}

func TestSaveImage_InvalidPixelCreatesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ppm")
	b := newTestBuffer(t, 1, 1, 255, RGB(0, 300, 0))

	if err := SaveImage(b, path); !errors.Is(err, ErrInvalidPixelValue) {
		t.Fatalf("SaveImage() error = %v, want ErrInvalidPixelValue", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("SaveImage() left a file behind: stat error = %v", err)
	}
}

func TestSaveImage_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ppm")
	if err := os.WriteFile(path, []byte("stale"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := SaveImage(newTestBuffer(t, 3, 2, 255, samplePixels...), path); err != nil {
		t.Fatalf("SaveImage() = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != sampleBitmap {
		t.Errorf("output =\n%s\nwant\n%s", data, sampleBitmap)
	}
	if des, _ := os.ReadDir(dir); len(des) != 1 {
		t.Errorf("SaveImage() left %d entries in the directory, want 1", len(des))
	}
}

func TestSaveImage_FailureKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ppm")
	if err := os.WriteFile(path, []byte(sampleBitmap), 0o600); err != nil {
		t.Fatal(err)
	}

	bad := newTestBuffer(t, 1, 1, 255, RGB(0, 300, 0))
	if err := SaveImage(bad, path); !errors.Is(err, ErrInvalidPixelValue) {
		t.Fatalf("SaveImage(invalid) error = %v, want ErrInvalidPixelValue", err)
	}
	if data, _ := os.ReadFile(path); string(data) != sampleBitmap {
		t.Errorf("existing file changed to %q", data)
	}
}

func TestSaveImage_RenameError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ppm")
	if err := os.MkdirAll(filepath.Join(path, "child"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := SaveImage(newTestBuffer(t, 1, 1, 255), path); !errors.Is(err, ErrWrite) {
		t.Errorf("SaveImage(onto directory) error = %v, want ErrWrite", err)
	}
	if des, _ := os.ReadDir(dir); len(des) != 1 {
		t.Errorf("SaveImage() left %d entries in the directory, want 1", len(des))
	}
}

func TestSaveImage_OpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.ppm")
	b := newTestBuffer(t, 1, 1, 255)

	if err := SaveImage(b, path); !errors.Is(err, ErrOpen) {
		t.Errorf("SaveImage() error = %v, want ErrOpen", err)
	}
}

func TestSaveImage_Nil(t *testing.T) {
	if err := SaveImage(nil, filepath.Join(t.TempDir(), "x.ppm")); err == nil {
		t.Error("SaveImage(nil) = nil, want error")
	}
}

func TestLoadImage_CorruptZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ppm.zst")
	if err := os.WriteFile(path, []byte(sampleBitmap), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(path); err == nil {
		t.Error("LoadImage(plain text named .zst) = nil, want error")
	}
	// The same bytes decode when compression is turned off.
	if _, err := LoadImage(path, WithCompression(CompressionNone)); err != nil {
		t.Errorf("LoadImage(CompressionNone) = %v", err)
	}
}

func TestCompression_String(t *testing.T) {
	tests := map[Compression]string{
		CompressionAuto: "auto",
		CompressionNone: "none",
		CompressionZstd: "zstd",
		Compression(9):  "compression(9)",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("Compression(%d).String() = %q, want %q", uint8(c), got, want)
		}
	}
}
