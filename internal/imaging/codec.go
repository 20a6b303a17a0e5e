package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // decode only; webp output falls back to png
	"golang.org/x/sync/singleflight"

	"unity2godot/internal/common"
)

// Output format policies.
const (
	// FormatKeep re-encodes into the source container where an encoder
	// exists, falling back to png otherwise.
	FormatKeep = "keep"
	// FormatPNG forces png output for every texture.
	FormatPNG = "png"
)

const jpegQuality = 95

// defaultCacheSize bounds the per-run re-encode cache.
const defaultCacheSize = 256

// encoded is a cached re-encode result.
type encoded struct {
	data []byte
	ext  string
}

// Codec decodes source textures and writes them re-encoded at target
// paths. Safe for concurrent use: converters sharing a texture collapse
// into one encode and one write.
type Codec struct {
	format string
	cache  *lru.Cache[string, encoded]
	group  singleflight.Group
}

// NewCodec creates a codec with the given output format policy
// (FormatKeep or FormatPNG; empty means FormatKeep).
func NewCodec(format string) (*Codec, error) {
	if format == "" {
		format = FormatKeep
	}

	if format != FormatKeep && format != FormatPNG {
		return nil, fmt.Errorf("unknown texture format policy %q", format)
	}

	cache, err := lru.New[string, encoded](defaultCacheSize)
	if err != nil {
		return nil, err
	}

	return &Codec{format: format, cache: cache}, nil
}

// Reencode converts the image at sourcePath and writes it next to the
// requested targetPath. The returned path is the one actually written:
// the extension changes when the source container has no encoder (or
// when the png policy is active). Concurrent calls with the same
// arguments produce a single write.
func (c *Codec) Reencode(sourcePath, targetPath string) (string, error) {
	final, err, _ := c.group.Do(sourcePath+"\x00"+targetPath, func() (any, error) {
		enc, ok := c.cache.Get(sourcePath)
		if !ok {
			var err error

			enc, err = c.encode(sourcePath)
			if err != nil {
				return nil, err
			}

			c.cache.Add(sourcePath, enc)
		}

		finalPath := withExt(targetPath, enc.ext)
		if err := common.WriteFile(finalPath, enc.data); err != nil {
			return nil, fmt.Errorf("writing texture %s: %w", finalPath, err)
		}

		return finalPath, nil
	})
	if err != nil {
		return "", err
	}

	return final.(string), nil
}

// encode decodes the source image and re-encodes it per the policy.
func (c *Codec) encode(sourcePath string) (encoded, error) {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return encoded{}, fmt.Errorf("failed to read texture %s: %w", sourcePath, err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		// The extension may be lying; name the sniffed container in
		// the error to aid debugging.
		if kind, _ := filetype.Match(data); kind != filetype.Unknown {
			return encoded{}, fmt.Errorf("failed to decode texture %s (container %s): %w",
				sourcePath, kind.Extension, err)
		}

		return encoded{}, fmt.Errorf("failed to decode texture %s: %w", sourcePath, err)
	}

	outFormat := format
	if c.format == FormatPNG {
		outFormat = "png"
	}

	var buf bytes.Buffer

	switch outFormat {
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	case "gif":
		err = gif.Encode(&buf, img, nil)
	case "bmp":
		err = bmp.Encode(&buf, img)
	case "tiff":
		err = tiff.Encode(&buf, img, nil)
	default:
		// png, plus formats without an encoder (webp).
		outFormat = "png"
		err = png.Encode(&buf, img)
	}

	if err != nil {
		return encoded{}, fmt.Errorf("failed to encode texture %s as %s: %w", sourcePath, outFormat, err)
	}

	return encoded{data: buf.Bytes(), ext: extFor(outFormat)}, nil
}

// extFor maps a decode/encode format name to a file extension.
func extFor(format string) string {
	if format == "jpeg" {
		return ".jpg"
	}

	return "." + format
}

// withExt swaps the extension of path for ext (which includes the dot).
func withExt(path, ext string) string {
	cur := filepath.Ext(path)
	if strings.EqualFold(cur, ext) || (ext == ".jpg" && strings.EqualFold(cur, ".jpeg")) {
		return path
	}

	return strings.TrimSuffix(path, cur) + ext
}
