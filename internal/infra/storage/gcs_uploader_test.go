//go:build unit

package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t,
		"https://storage.googleapis.com/vb-images/products/1700000000-ab12.jpg",
		PublicURL("https://storage.googleapis.com/", "vb-images", "/products/1700000000-ab12.jpg"),
	)
}

func TestPutWithoutBucket(t *testing.T) {
	u := NewGCSUploader(nil, "", "https://storage.googleapis.com")
	_, err := u.Put(context.Background(), "products/x.jpg", "image/jpeg", strings.NewReader("x"))
	assert.Error(t, err)
}
