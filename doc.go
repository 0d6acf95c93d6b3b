/*
Package svgembed wraps a raster image (PNG or JPEG) into a self-contained SVG document.

The image bytes are never decoded or modified: they are base64 encoded into a data URI
and referenced from the generated document. Two document variants are supported:
a plain embed, where the image is placed inside an <image> element, and a colorable embed,
where the image is used as a (optionally inverted) luminance mask over a rectangle filled
with currentColor, so the shape inherits the CSS color of the page it is inlined into.

The package provides two command line tools, embed and embed-colorable.
To check the supported flags type:

	$ embed-colorable --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"os"

		"github.com/esimov/svgembed"
	)

	func main() {
		p := &svgembed.Processor{
			Mode:   svgembed.Colorable,
			Config: svgembed.DefaultConfig(),
			Source: "logo.png",
		}

		if err := p.Process(in, os.Stdout); err != nil {
			fmt.Printf("Error embedding image: %s", err.Error())
		}
	}
*/
package svgembed
