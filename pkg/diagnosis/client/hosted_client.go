package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"cropadvisor/entities"
)

type hosted struct {
	endpoint string
	key      string
	httpc    *http.Client
}

// NewHosted posts raw image bytes to endpoint with a bearer token and expects
// a JSON array of {label, score}.
func NewHosted(endpoint, key string, timeout time.Duration) Classifier {
	return &hosted{endpoint: endpoint, key: key, httpc: &http.Client{Timeout: timeout}}
}

func (c *hosted) Name() string { return entities.SourceModel }

func (c *hosted) Classify(ctx context.Context, image []byte, contentType string) ([]Prediction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(image))
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: classifier returned %d: %s", entities.ErrUpstream, resp.StatusCode, bytes.TrimSpace(msg))
	}

	var out []Prediction
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode predictions: %v", entities.ErrUpstream, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no predictions", entities.ErrUpstream)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}
