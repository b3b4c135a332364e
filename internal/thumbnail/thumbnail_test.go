package thumbnail

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil); err != nil {
		t.Fatalf("encode test jpeg: %v", err)
	}
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestGeneratePreservesAspect(t *testing.T) {
	data, contentType, err := Generate(bytes.NewReader(jpegBytes(t, 400, 300)), "cat.jpg", 100)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if contentType != "image/jpeg" {
		t.Fatalf("expected image/jpeg, got %s", contentType)
	}

	w, h := decodeDims(t, data)
	if w != 100 || h != 75 {
		t.Fatalf("expected 100x75, got %dx%d", w, h)
	}
}

func TestGeneratePortrait(t *testing.T) {
	data, _, err := Generate(bytes.NewReader(pngBytes(t, 200, 400)), "tall.png", 100)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	w, h := decodeDims(t, data)
	if w != 50 || h != 100 {
		t.Fatalf("expected 50x100, got %dx%d", w, h)
	}
}

func TestGenerateNoUpscale(t *testing.T) {
	data, _, err := Generate(bytes.NewReader(pngBytes(t, 60, 40)), "small.png", 100)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	w, h := decodeDims(t, data)
	if w != 60 || h != 40 {
		t.Fatalf("expected 60x40 unchanged, got %dx%d", w, h)
	}
}

func TestGenerateCorruptInput(t *testing.T) {
	if _, _, err := Generate(bytes.NewReader([]byte("not an image")), "fake.png", 100); err == nil {
		t.Fatal("expected decode error for corrupt bytes")
	}
}

func TestGenerateUnknownExtension(t *testing.T) {
	if _, _, err := Generate(bytes.NewReader(pngBytes(t, 10, 10)), "file.txt", 100); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestOutputName(t *testing.T) {
	if got := OutputName("abc_cat.png"); got != "thumb_abc_cat.png" {
		t.Fatalf("unexpected output name %s", got)
	}
}

func TestContentType(t *testing.T) {
	cases := map[string]string{
		"a.png":  "image/png",
		"a.jpg":  "image/jpeg",
		"a.jpeg": "image/jpeg",
		"a.gif":  "image/gif",
		"a.bin":  "application/octet-stream",
	}
	for name, want := range cases {
		if got := ContentType(name); got != want {
			t.Errorf("ContentType(%s) = %s, want %s", name, got, want)
		}
	}
}
