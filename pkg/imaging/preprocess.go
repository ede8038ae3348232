package imaging

import (
	"bytes"
	"fmt"
	"image"
)

// Input is the decoded form handed to the predictor. The real model
// pipeline (resize to 224x224, normalize to [0,1]) lives with the model
// runtime; the server only needs the decoded pixels and their size.
type Input struct {
	Image  image.Image
	Width  int
	Height int
}

// Preprocess decodes upload bytes for prediction. Callers should run
// Validate first; a decode failure here is an unexpected processing
// error, not a client input error.
func Preprocess(data []byte) (*Input, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image processing failed: %w", err)
	}
	b := img.Bounds()
	return &Input{Image: img, Width: b.Dx(), Height: b.Dy()}, nil
}
