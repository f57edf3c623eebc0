// Package client talks to image classifiers that label plant diseases.
package client

import "context"

// Prediction is one label returned by a classifier, best first.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type Classifier interface {
	Classify(ctx context.Context, image []byte, contentType string) ([]Prediction, error)
	Name() string
}
