package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/storage/v1/object/artwork/products/p1/123.jpg", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))
		assert.Equal(t, "true", r.Header.Get("x-upsert"))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(Config{Endpoint: ts.URL, APIKey: "service-key", Bucket: "artwork"})

	url, err := client.Upload(context.Background(), "products/p1/123.jpg", "image/jpeg", []byte("jpeg bytes"))

	require.NoError(t, err)
	assert.Equal(t, ts.URL+"/storage/v1/object/public/artwork/products/p1/123.jpg", url)
}

func TestUpload_StoreError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"invalid key"}`))
	}))
	defer ts.Close()

	client := NewClient(Config{Endpoint: ts.URL, APIKey: "bad-key", Bucket: "artwork"})

	_, err := client.Upload(context.Background(), "products/p1/1.jpg", "image/jpeg", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestRemove_MissingObjectIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := NewClient(Config{Endpoint: ts.URL, APIKey: "service-key", Bucket: "artwork"})

	assert.NoError(t, client.Remove(context.Background(), "products/p1/gone.jpg"))
}

func TestObjectPath(t *testing.T) {
	client := NewClient(Config{Endpoint: "https://proj.supabase.co", Bucket: "artwork"})

	path, ok := client.ObjectPath("https://proj.supabase.co/storage/v1/object/public/artwork/products/p1/1.jpg")
	require.True(t, ok)
	assert.Equal(t, "products/p1/1.jpg", path)

	_, ok = client.ObjectPath("https://elsewhere.example.com/image.jpg")
	assert.False(t, ok)

	_, ok = client.ObjectPath("")
	assert.False(t, ok)
}
