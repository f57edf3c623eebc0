package client

import (
	"context"
	"crypto/sha256"
	"encoding/binary"

	"cropadvisor/entities"
)

// MockLabels are the diseases the mock can report.
var MockLabels = []string{
	"Healthy",
	"Leaf Blight",
	"Powdery Mildew",
	"Leaf Rust",
	"Bacterial Spot",
	"Early Blight",
	"Late Blight",
	"Mosaic Virus",
}

type mock struct{}

// NewMock returns a classifier whose label depends only on the image bytes.
func NewMock() Classifier { return mock{} }

func (mock) Name() string { return entities.SourceMock }

func (mock) Classify(_ context.Context, image []byte, _ string) ([]Prediction, error) {
	sum := sha256.Sum256(image)
	n := binary.BigEndian.Uint32(sum[:4])
	label := MockLabels[int(n%uint32(len(MockLabels)))]
	// 0.60..0.95 from the next byte
	score := 0.6 + float64(sum[4]%36)/100
	return []Prediction{{Label: label, Score: score}}, nil
}
