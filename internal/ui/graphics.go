package ui

import (
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/qeesung/image2ascii/convert"
)

// TerminalCapabilities represents what the terminal can draw.
type TerminalCapabilities struct {
	SupportsColor bool
}

// DetectTerminalCapabilities inspects the environment for color support.
func DetectTerminalCapabilities() TerminalCapabilities {
	term := os.Getenv("TERM")
	_, noColor := os.LookupEnv("NO_COLOR")
	return TerminalCapabilities{
		SupportsColor: !noColor && term != "dumb",
	}
}

// RenderHeroImage draws the landing hero picture as ASCII art.
func RenderHeroImage(caps TerminalCapabilities, targetWidth, targetHeight int) string {
	if targetWidth <= 0 || targetHeight <= 0 {
		return ""
	}
	return convertToASCII(heroPicture(160, 80), caps, targetWidth, targetHeight)
}

// convertToASCII converts an image to (optionally colored) ASCII art.
func convertToASCII(img image.Image, caps TerminalCapabilities, targetWidth, targetHeight int) string {
	converter := convert.NewImageConverter()

	opts := convert.DefaultOptions
	opts.FixedWidth = targetWidth
	opts.FixedHeight = targetHeight
	opts.Colored = caps.SupportsColor

	ascii := converter.Image2ASCIIString(img, &opts)
	return strings.TrimRight(ascii, "\n")
}

// heroPicture paints a house at dusk: sky, sun, roof, walls, door, windows
// and a lawn.
func heroPicture(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	horizon := h * 3 / 4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if y >= horizon {
				img.Set(x, y, color.RGBA{R: 60, G: 120, B: 70, A: 255})
				continue
			}
			// Sky darkens towards the top.
			t := uint8(y * 120 / horizon)
			img.Set(x, y, color.RGBA{R: 40 + t, G: 60 + t/2, B: 110 + t/3, A: 255})
		}
	}

	sunX, sunY, sunR := w*4/5, h/4, h/8
	for y := sunY - sunR; y <= sunY+sunR; y++ {
		for x := sunX - sunR; x <= sunX+sunR; x++ {
			dx, dy := x-sunX, y-sunY
			if dx*dx+dy*dy <= sunR*sunR {
				img.Set(x, y, color.RGBA{R: 250, G: 200, B: 90, A: 255})
			}
		}
	}

	left, right := w/4, w*3/5
	wallTop := horizon - h/3
	fill(img, image.Rect(left, wallTop, right, horizon), color.RGBA{R: 220, G: 205, B: 180, A: 255})

	// Roof: a triangle over the walls.
	roofTop := wallTop - h/5
	mid := (left + right) / 2
	half := (right-left)/2 + w/40
	for y := roofTop; y < wallTop; y++ {
		span := half * (y - roofTop) / (wallTop - roofTop)
		for x := mid - span; x <= mid+span; x++ {
			img.Set(x, y, color.RGBA{R: 150, G: 60, B: 50, A: 255})
		}
	}

	doorW, doorH := (right-left)/6, (horizon-wallTop)/2
	fill(img, image.Rect(mid-doorW/2, horizon-doorH, mid+doorW/2, horizon), color.RGBA{R: 90, G: 55, B: 35, A: 255})

	winW, winH := (right-left)/6, (horizon-wallTop)/4
	winY := wallTop + (horizon-wallTop)/5
	window := color.RGBA{R: 250, G: 230, B: 140, A: 255}
	fill(img, image.Rect(left+winW/2, winY, left+winW/2+winW, winY+winH), window)
	fill(img, image.Rect(right-winW/2-winW, winY, right-winW/2, winY+winH), window)

	return img
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}
