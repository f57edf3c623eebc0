package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/entities"
)

func TestHostedClassify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "leaf-bytes", string(body))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"label":"Leaf Rust","score":0.2},{"label":"Early Blight","score":0.7}]`)
	}))
	defer srv.Close()

	c := NewHosted(srv.URL, "secret", time.Second)
	preds, err := c.Classify(context.Background(), []byte("leaf-bytes"), "image/jpeg")
	require.NoError(t, err)
	require.Len(t, preds, 2)
	assert.Equal(t, "Early Blight", preds[0].Label)
	assert.Equal(t, entities.SourceModel, c.Name())
}

func TestHostedClassifyErrors(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "model loading", http.StatusServiceUnavailable)
		},
		"garbage": func(w http.ResponseWriter, _ *http.Request) { io.WriteString(w, "<html>") },
		"empty":   func(w http.ResponseWriter, _ *http.Request) { io.WriteString(w, "[]") },
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(h)
			defer srv.Close()
			_, err := NewHosted(srv.URL, "", time.Second).Classify(context.Background(), []byte("x"), "")
			assert.ErrorIs(t, err, entities.ErrUpstream)
		})
	}
}

func TestMockIsDeterministic(t *testing.T) {
	m := NewMock()
	a, err := m.Classify(context.Background(), []byte("photo-1"), "")
	require.NoError(t, err)
	b, err := m.Classify(context.Background(), []byte("photo-1"), "")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	require.Len(t, a, 1)
	assert.Contains(t, MockLabels, a[0].Label)
	assert.GreaterOrEqual(t, a[0].Score, 0.6)
	assert.LessOrEqual(t, a[0].Score, 0.95)
}
