package canvas

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for unsupported image formats
var ErrUnknownFormat = errors.New("unknown image format")

// Format names an output encoding
type Format string

const (
	PNG  Format = "png"
	PPM  Format = "ppm"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Formats lists every supported encoding
var Formats = []Format{PNG, PPM, BMP, TIFF}

// ParseFormat accepts a format name or file extension, case-insensitive
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(s, "."))
	if name == "tif" {
		name = string(TIFF)
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Extension returns the file extension including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// Encode writes the canvas in the given format
func (c *Canvas) Encode(w io.Writer, f Format) error {
	switch f {
	case PNG:
		return c.WritePNG(w)
	case PPM:
		return c.WritePPM(w)
	case BMP:
		return c.WriteBMP(w)
	case TIFF:
		return c.WriteTIFF(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// WritePNG encodes the canvas as PNG
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.ToRGBA())
}

// WriteBMP encodes the canvas as BMP
func (c *Canvas) WriteBMP(w io.Writer) error {
	return bmp.Encode(w, c.ToRGBA())
}

// WriteTIFF encodes the canvas as deflate-compressed TIFF
func (c *Canvas) WriteTIFF(w io.Writer) error {
	return tiff.Encode(w, c.ToRGBA(), &tiff.Options{Compression: tiff.Deflate})
}

// maxPPMLine keeps plain PPM lines within the 70 character limit
const maxPPMLine = 70

// WritePPM encodes the canvas as plain-text PPM (P3). Each row starts on a
// new line and long rows wrap before 70 characters.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height)

	data := c.Bytes()
	stride := c.Width * 3
	for y := 0; y < c.Height; y++ {
		lineLen := 0
		for _, v := range data[y*stride : (y+1)*stride] {
			s := strconv.Itoa(int(v))
			if lineLen > 0 && lineLen+1+len(s) > maxPPMLine {
				bw.WriteByte('\n')
				lineLen = 0
			}
			if lineLen > 0 {
				bw.WriteByte(' ')
				lineLen++
			}
			bw.WriteString(s)
			lineLen += len(s)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Save writes the canvas to path, creating parent directories. An empty
// format is inferred from the file extension.
func (c *Canvas) Save(path string, f Format) error {
	if f == "" {
		var err error
		if f, err = ParseFormat(filepath.Ext(path)); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := c.Encode(file, f); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}
