package binder_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/bindkit/binder"
)

type deploySpec struct {
	Service  string `yaml:"service"`
	Replicas int    `yaml:"replicas"`
}

func newYAMLRequest(t *testing.T, body, contentType string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestYAML(t *testing.T) {
	t.Parallel()

	t.Run("valid YAML binding", func(t *testing.T) {
		t.Parallel()
		req := newYAMLRequest(t, "service: api\nreplicas: 3\n", "application/yaml")

		var result deploySpec
		err := binder.YAML()(req, &result)

		require.NoError(t, err)
		assert.Equal(t, "api", result.Service)
		assert.Equal(t, 3, result.Replicas)
	})

	t.Run("alternate media types accepted", func(t *testing.T) {
		t.Parallel()
		for _, ct := range []string{"application/x-yaml", "text/yaml"} {
			req := newYAMLRequest(t, "service: api\n", ct)

			var result deploySpec
			require.NoError(t, binder.YAML()(req, &result), ct)
		}
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		req := newYAMLRequest(t, "service: api\n", "")

		var result deploySpec
		err := binder.YAML()(req, &result)

		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()
		req := newYAMLRequest(t, "service: api\n", "application/json")

		var result deploySpec
		err := binder.YAML()(req, &result)

		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("empty body is a syntax failure", func(t *testing.T) {
		t.Parallel()
		req := newYAMLRequest(t, "", "application/yaml")

		var result deploySpec
		err := binder.YAML()(req, &result)

		require.Error(t, err)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("malformed document", func(t *testing.T) {
		t.Parallel()
		req := newYAMLRequest(t, "service: [unterminated\n", "application/yaml")

		var result deploySpec
		err := binder.YAML()(req, &result)

		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrDecode)
	})

	t.Run("type mismatch surfaces as yaml.TypeError", func(t *testing.T) {
		t.Parallel()
		req := newYAMLRequest(t, "service: api\nreplicas: many\n", "application/yaml")

		var result deploySpec
		err := binder.YAML()(req, &result)

		require.Error(t, err)
		var typeErr *yaml.TypeError
		assert.ErrorAs(t, err, &typeErr)
	})

	t.Run("unknown field rejected by default", func(t *testing.T) {
		t.Parallel()
		req := newYAMLRequest(t, "service: api\nowner: ops\n", "application/yaml")

		var result deploySpec
		err := binder.YAML()(req, &result)

		require.Error(t, err)
		var typeErr *yaml.TypeError
		assert.ErrorAs(t, err, &typeErr)
	})

	t.Run("multi-document body rejected", func(t *testing.T) {
		t.Parallel()
		req := newYAMLRequest(t, "service: api\n---\nservice: worker\n", "application/yaml")

		var result deploySpec
		err := binder.YAML()(req, &result)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected data after YAML document")
	})

	t.Run("oversized body reports size before parsing", func(t *testing.T) {
		t.Parallel()
		req := newYAMLRequest(t, "service: api\nreplicas: 3\n", "application/yaml")

		var result deploySpec
		err := binder.YAML(binder.WithMaxBodySize(8))(req, &result)

		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrBodyTooLarge)
	})
}
