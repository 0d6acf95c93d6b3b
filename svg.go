package svgembed

import (
	"bytes"
	"fmt"
	"html"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/google/uuid"
)

// Mode selects the variant of the generated SVG document.
type Mode int

const (
	// Plain places the image as it is inside an <image> element.
	Plain Mode = iota
	// Colorable uses the image as a mask over a currentColor filled rectangle.
	Colorable
)

func (m Mode) String() string {
	switch m {
	case Plain:
		return "plain"
	case Colorable:
		return "colorable"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Element ids used by the colorable document.
const (
	maskID   = "logoMask"
	filterID = "invertFilter"
)

const (
	plainLabel     = "Embedded image"
	colorableLabel = "Colorable image"

	plainDesc     = "Raster image embedded inside SVG (the image is not modified)"
	colorableDesc = "Embedded image (unmodified) used as a mask; filled with currentColor."

	fitAspect = `preserveAspectRatio="xMidYMid meet"`
)

// invertMatrix maps every RGB channel to 1 - channel and keeps the alpha unchanged.
var invertMatrix = [20]float64{
	-1, 0, 0, 0, 1,
	0, -1, 0, 0, 1,
	0, 0, -1, 0, 1,
	0, 0, 0, 1, 0,
}

// Compose renders the SVG document of the given mode. The output depends only
// on the data URI and the configuration, so identical inputs give identical bytes.
func Compose(mode Mode, uri string, cfg RenderConfig) []byte {
	var buf bytes.Buffer

	switch mode {
	case Colorable:
		RenderColorable(&buf, uri, cfg)
	default:
		RenderPlain(&buf, uri, cfg)
	}
	return buf.Bytes()
}

// RenderPlain writes a document holding a single <image> element which references the data URI.
func RenderPlain(w io.Writer, uri string, cfg RenderConfig) {
	canvas := svg.New(w)
	canvas.Start(cfg.Width, cfg.Height, rootAttrs(cfg, plainLabel)...)
	canvas.Desc(plainDesc)
	canvas.Image(0, 0, cfg.Width, cfg.Height, html.EscapeString(uri), fitAspect)
	canvas.End()
}

// RenderColorable writes a document where the embedded image acts as the mask
// of a rectangle filled with currentColor. When cfg.Invert is set the image is
// passed through a color inversion filter first, so the dark strokes of the
// source become the opaque part of the mask.
func RenderColorable(w io.Writer, uri string, cfg RenderConfig) {
	mask, filter := elementIDs(uri, cfg.UniqueIDs)
	href := html.EscapeString(uri)

	canvas := svg.New(w)
	canvas.Start(cfg.Width, cfg.Height, rootAttrs(cfg, colorableLabel)...)
	canvas.Desc(colorableDesc)

	canvas.Def()
	if cfg.Invert {
		canvas.Filter(filter,
			`x="0"`, `y="0"`, `width="1"`, `height="1"`,
			`color-interpolation-filters="sRGB"`,
		)
		canvas.FeColorMatrix(svg.Filterspec{}, invertMatrix)
		canvas.Fend()
	}
	canvas.Mask(mask, 0, 0, cfg.Width, cfg.Height, `maskUnits="userSpaceOnUse"`)
	if cfg.Invert {
		canvas.Group(fmt.Sprintf(`filter="url(#%s)"`, filter))
		canvas.Image(0, 0, cfg.Width, cfg.Height, href, fitAspect)
		canvas.Gend()
	} else {
		canvas.Image(0, 0, cfg.Width, cfg.Height, href, fitAspect)
	}
	canvas.MaskEnd()
	canvas.DefEnd()

	canvas.Rect(0, 0, cfg.Width, cfg.Height,
		`fill="currentColor"`,
		fmt.Sprintf(`mask="url(#%s)"`, mask),
	)
	canvas.End()
}

// rootAttrs returns the extra attributes of the root <svg> element.
func rootAttrs(cfg RenderConfig, label string) []string {
	if cfg.Label != "" {
		label = cfg.Label
	}
	return []string{
		fmt.Sprintf(`viewBox="%s"`, html.EscapeString(cfg.viewBox())),
		`role="img"`,
		fmt.Sprintf(`aria-label="%s"`, html.EscapeString(label)),
	}
}

// elementIDs returns the mask and filter ids. Unique ids carry a suffix derived
// from the data URI, which keeps several inlined documents from clashing in one page.
func elementIDs(uri string, unique bool) (string, string) {
	if !unique {
		return maskID, filterID
	}
	suffix := uuid.NewSHA1(uuid.NameSpaceURL, []byte(uri)).String()[:8]

	return maskID + "-" + suffix, filterID + "-" + suffix
}
