package velvet

import (
	"bytes"
	"image"
	_ "image/jpeg" // register decoders
	_ "image/png"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/nfnt/resize"
)

// maxTextureSize caps loaded images; larger inputs are downsampled.
const maxTextureSize = 4096

// Texture samples an RGBA color at a UV coordinate.
type Texture interface {
	Sample(u, v float64) Color
	BilinearSample(u, v float64) Color
}

// MaterialChannel names a texture slot on a material.
type MaterialChannel int

const (
	ChannelBase MaterialChannel = iota
	ChannelNormal
	ChannelSubsurface
)

// MaterialSampler is the boundary the shading model samples textures
// through. A missing channel returns Transparent (alpha zero).
type MaterialSampler interface {
	SampleChannel(channel MaterialChannel, u, v float64) Color
}

// TextureSet is a MaterialSampler backed by one Texture per channel.
// Nil entries read as Transparent.
type TextureSet struct {
	Base       Texture
	Normal     Texture
	Subsurface Texture
}

func (ts *TextureSet) SampleChannel(channel MaterialChannel, u, v float64) Color {
	var t Texture
	switch channel {
	case ChannelBase:
		t = ts.Base
	case ChannelNormal:
		t = ts.Normal
	case ChannelSubsurface:
		t = ts.Subsurface
	}
	if t == nil {
		return Transparent
	}
	return t.Sample(u, v)
}

type ImageTexture struct {
	Width  int
	Height int
	Image  image.Image
}

func NewImageTexture(im image.Image) Texture {
	if b := im.Bounds(); b.Dx() > maxTextureSize || b.Dy() > maxTextureSize {
		im = resize.Thumbnail(maxTextureSize, maxTextureSize, im, resize.Bilinear)
	}
	return &ImageTexture{
		Width:  im.Bounds().Dx(),
		Height: im.Bounds().Dy(),
		Image:  im,
	}
}

func LoadTexture(path string) (Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	im, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return NewImageTexture(im), nil
}

func LoadTextureFromURL(url string) (Texture, error) {
	client := http.Client{
		Timeout: 10 * time.Second,
	}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	im, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, err
	}
	return NewImageTexture(im), nil
}

func TexFromBytes(data []byte) (Texture, error) {
	im, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return NewImageTexture(im), nil
}

func (t *ImageTexture) Sample(u, v float64) Color {
	// Wrap, then flip V for standard UV orientation.
	u = u - math.Floor(u)
	v = 1 - (v - math.Floor(v))

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	return MakeColor(t.Image.At(x, y))
}

func (t *ImageTexture) BilinearSample(u, v float64) Color {
	u = u - math.Floor(u)
	v = 1 - (v - math.Floor(v))

	fx := u*float64(t.Width) - 0.5
	fy := v*float64(t.Height) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	at := func(x, y int) Color {
		x = ClampInt(x, 0, t.Width-1)
		y = ClampInt(y, 0, t.Height-1)
		return MakeColor(t.Image.At(x, y))
	}
	top := at(x0, y0).Lerp(at(x0+1, y0), tx)
	bottom := at(x0, y0+1).Lerp(at(x0+1, y0+1), tx)
	return top.Lerp(bottom, ty)
}
