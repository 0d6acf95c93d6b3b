package svgembed

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestImage_DetectMime(t *testing.T) {
	testCases := []struct {
		path   string
		forced string
		want   string
	}{
		{path: "logo.png", want: MimePNG},
		{path: "LOGO.PNG", want: MimePNG},
		{path: "logo.jpg", want: MimeJPEG},
		{path: "logo.JPG", want: MimeJPEG},
		{path: "logo.jpeg", want: MimeJPEG},
		{path: "logo.JpEg", want: MimeJPEG},
		{path: "logo.gif", want: MimePNG},
		{path: "logo.jpg.bak", want: MimePNG},
		{path: "logo", want: MimePNG},
		{path: "-", want: MimePNG},
		{path: "dir.jpg/logo", want: MimePNG},
		{path: "logo.png", forced: MimeJPEG, want: MimeJPEG},
		{path: "logo.jpg", forced: "image/webp", want: "image/webp"},
	}

	for _, tc := range testCases {
		t.Run(tc.path+"/"+tc.forced, func(t *testing.T) {
			if got := DetectMime(tc.path, tc.forced); got != tc.want {
				t.Errorf("DetectMime(%q, %q): got %q want %q", tc.path, tc.forced, got, tc.want)
			}
		})
	}
}

func TestImage_ShouldRecognizeKnownMimeTypes(t *testing.T) {
	for _, mime := range []string{MimePNG, MimeJPEG} {
		if !IsKnownMime(mime) {
			t.Errorf("%s should be a known mime type", mime)
		}
	}
	for _, mime := range []string{"", "image/gif", "IMAGE/PNG", "image/svg+xml"} {
		if IsKnownMime(mime) {
			t.Errorf("%q should not be a known mime type", mime)
		}
	}
}

func TestImage_DataURIOfEmptyInput(t *testing.T) {
	if got, want := DataURI(MimePNG, nil), "data:image/png;base64,"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestImage_DataURIUsesStandardPaddedAlphabet(t *testing.T) {
	got := DataURI(MimeJPEG, []byte{0xfb, 0xff, 0xbf, 0x01})
	if want := "data:image/jpeg;base64,+/+/AQ=="; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestImage_DataURIRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOf(rapid.Byte()).Draw(t, "data")
		mime := rapid.SampledFrom(KnownMimeTypes).Draw(t, "mime")

		uri := DataURI(mime, data)
		prefix := "data:" + mime + ";base64,"
		if !strings.HasPrefix(uri, prefix) {
			t.Fatalf("the data uri should start with %q, got %q", prefix, uri)
		}

		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
		if err != nil {
			t.Fatalf("could not decode the payload: %v", err)
		}
		if !bytes.Equal(decoded, data) {
			t.Fatalf("decoded payload differs from the source: got %v want %v", decoded, data)
		}
	})
}
