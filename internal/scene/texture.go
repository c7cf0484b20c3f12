package scene

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"go.uber.org/zap"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxTextures is the number of texture units the scene binds.
const MaxTextures = 16

// TextureEntry is a registered texture.
type TextureEntry struct {
	Tag    string
	Handle TextureHandle
}

// TextureRegistry loads images onto the GPU and maps tags to texture units. Entries
// are never removed; the index of an entry is its texture unit after BindAll.
type TextureRegistry struct {
	device  Device
	log     *zap.Logger
	decode  func(path string) (Image, error)
	entries []TextureEntry
	first   map[string]int
}

// NewTextureRegistry returns an empty registry that uploads through device.
func NewTextureRegistry(device Device, log *zap.Logger) *TextureRegistry {
	if log == nil {
		log = zap.NewNop()
	}
	return &TextureRegistry{
		device: device,
		log:    log,
		decode: DecodeImage,
		first:  make(map[string]int),
	}
}

// Load decodes the image at path, flips it vertically and uploads it under tag.
// Only 3 and 4 channel images are accepted. Nothing is registered on failure.
func (r *TextureRegistry) Load(path, tag string) error {
	if len(r.entries) >= MaxTextures {
		r.log.Error("texture not loaded", zap.String("tag", tag), zap.Error(ErrTextureSlotsFull))
		return fmt.Errorf("load texture %q: %w", tag, ErrTextureSlotsFull)
	}
	img, err := r.decode(path)
	if err != nil {
		r.log.Error("could not load image", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("load texture %q: %w", tag, err)
	}
	if img.Channels != 3 && img.Channels != 4 {
		r.log.Error("not loaded: unsupported image",
			zap.String("path", path), zap.Int("channels", img.Channels))
		return fmt.Errorf("load texture %q: %d channels: %w", tag, img.Channels, ErrUnsupportedChannels)
	}
	h, err := r.device.UploadTexture(img)
	if err != nil {
		r.log.Error("texture upload failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("upload texture %q: %w", tag, err)
	}
	if _, ok := r.first[tag]; !ok {
		r.first[tag] = len(r.entries)
	}
	r.entries = append(r.entries, TextureEntry{Tag: tag, Handle: h})
	r.log.Debug("texture loaded",
		zap.String("tag", tag), zap.String("path", path),
		zap.Int("width", img.Width), zap.Int("height", img.Height), zap.Int("channels", img.Channels))
	return nil
}

// BindAll binds entry i to texture unit i.
func (r *TextureRegistry) BindAll() {
	for i, e := range r.entries {
		r.device.BindTexture(i, e.Handle)
	}
}

// Slot returns the texture unit of the first entry tagged tag.
func (r *TextureRegistry) Slot(tag string) (int, bool) {
	i, ok := r.first[tag]
	return i, ok
}

// Destroy asks the device to regenerate every handle. Entries and their units stay.
func (r *TextureRegistry) Destroy() {
	for i := range r.entries {
		r.entries[i].Handle = r.device.RegenerateTexture(r.entries[i].Handle)
	}
}

// Len returns the number of registered textures.
func (r *TextureRegistry) Len() int { return len(r.entries) }

// Tags returns every texture tag in registration order, duplicates included.
func (r *TextureRegistry) Tags() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Tag
	}
	return out
}

// DecodeImage reads an image file, flips it so the first row is the bottom of the
// picture, and packs it as RGB or RGBA. Channels is the count the file was stored
// with; images that are not RGB or RGBA come back without pixels.
func DecodeImage(path string) (Image, error) {
	src, err := imgio.Open(path)
	if err != nil {
		return Image{}, err
	}
	channels, err := storedChannels(path)
	if err != nil {
		return Image{}, err
	}
	if channels == 0 {
		channels = channelCount(src)
	}
	flipped := transform.FlipV(src)
	b := flipped.Bounds()
	out := Image{Width: b.Dx(), Height: b.Dy(), Channels: channels}
	if channels != 3 && channels != 4 {
		return out, nil
	}
	out.Pix = make([]byte, 0, out.Width*out.Height*channels)
	for y := 0; y < out.Height; y++ {
		row := flipped.Pix[y*flipped.Stride : y*flipped.Stride+out.Width*4]
		if channels == 4 {
			out.Pix = append(out.Pix, row...)
			continue
		}
		for x := 0; x < len(row); x += 4 {
			out.Pix = append(out.Pix, row[x], row[x+1], row[x+2])
		}
	}
	return out, nil
}

const pngSignature = "\x89PNG\r\n\x1a\n"

var errNotPNG = errors.New("not a png stream")

// storedChannels reads the channel count from the file header. It returns 0 for
// formats whose decoded image type already tells the count.
func storedChannels(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	n, err := pngChannels(bufio.NewReader(f))
	if errors.Is(err, errNotPNG) {
		return 0, nil
	}
	return n, err
}

// pngChannels maps the IHDR color type of a PNG stream to its channel count. The
// decoder widens gray+alpha to NRGBA, so the header is the only place the count
// survives. Palette images count 4 channels when a tRNS chunk comes before IDAT.
func pngChannels(r io.Reader) (int, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil || string(buf[:]) != pngSignature {
		return 0, errNotPNG
	}
	palette := false
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, fmt.Errorf("png header: %w", err)
		}
		length := int64(binary.BigEndian.Uint32(buf[:4]))
		switch string(buf[4:8]) {
		case "IHDR":
			var ihdr [13]byte
			if length != int64(len(ihdr)) {
				return 0, fmt.Errorf("png header: IHDR length %d", length)
			}
			if _, err := io.ReadFull(r, ihdr[:]); err != nil {
				return 0, fmt.Errorf("png header: %w", err)
			}
			switch ct := ihdr[9]; ct {
			case 0:
				return 1, nil
			case 2:
				return 3, nil
			case 3:
				palette = true
				length = 0
			case 4:
				return 2, nil
			case 6:
				return 4, nil
			default:
				return 0, fmt.Errorf("png header: color type %d", ct)
			}
		case "tRNS":
			if palette {
				return 4, nil
			}
		case "IDAT", "IEND":
			if palette {
				return 3, nil
			}
			return 0, errors.New("png header: no IHDR")
		}
		// chunk data plus CRC
		if _, err := io.CopyN(io.Discard, r, length+4); err != nil {
			return 0, fmt.Errorf("png header: %w", err)
		}
	}
}

// channelCount guesses the channel count from the decoded image type.
func channelCount(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.Paletted:
		if m.Opaque() {
			return 3
		}
		return 4
	case interface{ Opaque() bool }:
		if m.Opaque() {
			return 3
		}
		return 4
	}
	return 4
}
