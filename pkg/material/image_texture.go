package material

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
)

// ImageTexture provides color from a decoded 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture from a pixel buffer
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewImageTextureFromFile loads a PNG or JPEG file into an image texture.
// A file that cannot be read or decoded degrades to a solid cyan debug texture
// instead of failing, so a bad texture path never aborts a render.
func NewImageTextureFromFile(filename string) (Texture, error) {
	width, height, pixels, err := DecodeImage(filename)
	if err != nil {
		return NewSolidColor(core.NewVec3(0, 1, 1)), err
	}
	return NewImageTexture(width, height, pixels), nil
}

// DecodeImage loads a PNG or JPEG image and converts it to a linear Vec3 color array
func DecodeImage(filename string) (width, height int, pixels []core.Vec3, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode auto-detects PNG/JPEG from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width = bounds.Dx()
	height = bounds.Dy()
	pixels = make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return width, height, pixels, nil
}

// Value samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	if len(t.Pixels) == 0 {
		// No texture data: solid cyan as a debugging aid
		return core.NewVec3(0, 1, 1)
	}

	// Clamp UV to [0,1] and flip V to image coordinates (origin top-left)
	u := clamp01(uv.X)
	v := 1.0 - clamp01(uv.Y)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// Clamp integer mapping, since actual coordinates should be less than 1.0
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
