// Package thumbnail turns an uploaded image into a small preview.
package thumbnail

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

// DefaultBound caps the longest side of a generated thumbnail.
const DefaultBound = 100

// OutputName derives the thumbnail name from the stored input name.
func OutputName(inputName string) string {
	return "thumb_" + inputName
}

// Generate decodes the image, scales it down so neither dimension exceeds
// bound (aspect ratio preserved, Lanczos resampling) and re-encodes it in the
// format implied by the file name. Returns the encoded bytes and their
// content type.
func Generate(r io.Reader, name string, bound int) ([]byte, string, error) {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return nil, "", fmt.Errorf("unsupported image format for %s: %w", name, err)
	}

	img, err := imaging.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", name, err)
	}

	thumb := imaging.Fit(img, bound, bound, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, format); err != nil {
		return nil, "", fmt.Errorf("encode %s: %w", name, err)
	}
	return buf.Bytes(), ContentType(name), nil
}

// ContentType maps a file name to the image media type it implies, falling
// back to a generic binary type for unknown extensions.
func ContentType(name string) string {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return "application/octet-stream"
	}
	switch format {
	case imaging.JPEG:
		return "image/jpeg"
	case imaging.PNG:
		return "image/png"
	case imaging.GIF:
		return "image/gif"
	case imaging.TIFF:
		return "image/tiff"
	case imaging.BMP:
		return "image/bmp"
	default:
		return "application/octet-stream"
	}
}
