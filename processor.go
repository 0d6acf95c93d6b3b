package svgembed

import (
	"fmt"
	"io"
	"log"

	"github.com/esimov/svgembed/utils"
)

// Processor options
type Processor struct {
	Mode   Mode
	Config RenderConfig
	// Source is the file name used to infer the MIME type when it is not forced.
	Source string
	Logger *log.Logger
}

// Process reads the whole image from r, encodes it into a data URI and writes
// the composed SVG document to w. The image bytes are used as they are.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	if err := p.Config.Validate(); err != nil {
		return err
	}

	mime := DetectMime(p.Source, p.Config.Mime)
	if !IsKnownMime(mime) {
		p.warnf("WARNING: unusual mime type, it will be used as it is: %s", mime)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read the source image: %w", err)
	}

	doc := Compose(p.Mode, DataURI(mime, data), p.Config)
	if _, err := w.Write(doc); err != nil {
		return fmt.Errorf("unable to write the svg document: %w", err)
	}
	return nil
}

// warnf logs a non fatal message.
func (p *Processor) warnf(format string, args ...any) {
	if p.Logger == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	p.Logger.Println(utils.Colorize(p.Logger.Writer(), msg, utils.ErrorMessage))
}
