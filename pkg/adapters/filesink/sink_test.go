package filesink

import (
	"errors"
	"image"
	"testing"

	"github.com/user/gifcast/pkg/mocks"
	"github.com/user/gifcast/pkg/ports"
)

func TestEnabled(t *testing.T) {
	sink := New("./debug", mocks.NewFileSystem(), &mocks.Renderer{})
	if !sink.Enabled() {
		t.Error("expected file sink to be enabled")
	}
}

func TestSaveRecordingJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New("./debug", fs, &mocks.Renderer{})

	data := []byte(`{"frames":3}`)
	if err := sink.SaveRecordingJSON(data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved, ok := fs.GetFile("debug/recording.json")
	if !ok {
		t.Fatal("expected recording.json to be written")
	}
	if string(saved) != string(data) {
		t.Errorf("unexpected contents: %s", saved)
	}
}

func TestSaveFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			if format != ports.FormatPNG {
				t.Errorf("expected PNG frame encoding, got %v", format)
			}
			return []byte("png-data"), nil
		},
	}
	sink := New("./debug", fs, renderer)

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if err := sink.SaveFrame(7, img); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved, ok := fs.GetFile("debug/frames/frame-0007.png")
	if !ok {
		t.Fatal("expected frame file to be written")
	}
	if string(saved) != "png-data" {
		t.Errorf("unexpected contents: %s", saved)
	}
}

func TestSaveFrame_EncodeError(t *testing.T) {
	encodeErr := errors.New("encode failed")
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return nil, encodeErr
		},
	}
	sink := New("./debug", mocks.NewFileSystem(), renderer)

	err := sink.SaveFrame(0, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, encodeErr) {
		t.Errorf("expected encode error, got %v", err)
	}
}
