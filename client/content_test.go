package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalland/MiamiBeach-LuckPerms/api"
)

func TestPostContent(t *testing.T) {
	var received []byte
	var header http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/post", r.URL.Path)
		header = r.Header.Clone()
		var err error
		received, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"key":"aabbcc"}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	key, err := client.PostContent(context.Background(), []byte("payload"), "application/json", false)
	require.NoError(t, err)
	assert.Equal(t, "aabbcc", key)
	assert.Equal(t, []byte("payload"), received)
	assert.Equal(t, "application/json", header.Get("Content-Type"))
	assert.Equal(t, "gzip", header.Get("Content-Encoding"))
	assert.Empty(t, header.Get("One-Time"))
}

func TestPostContentOneTime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.Header.Get("One-Time"))
		_, _ = w.Write([]byte(`{"key":"zz"}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	key, err := client.PostContent(context.Background(), nil, "application/json", true)
	require.NoError(t, err)
	assert.Equal(t, "zz", key)
}

func TestPostContentServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		_, _ = w.Write([]byte(`{"code":413,"message":"content too large"}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.PostContent(context.Background(), []byte("payload"), "application/json", false)
	require.Error(t, err)
	apiErr, ok := err.(api.Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusRequestEntityTooLarge, apiErr.Code)
	assert.Equal(t, "content too large", apiErr.Message)
}

func TestPostContentMissingKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.PostContent(context.Background(), []byte("payload"), "application/json", false)
	assert.Error(t, err)
}
