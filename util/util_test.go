package util

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUrl(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/images/a.jpg", MakeUrl("http://localhost:8080/", "images", "a.jpg"))
	assert.Equal(t, "http://localhost:8080/images/a.jpg", MakeUrl("http://localhost:8080", "/images", "a.jpg"))
}

func TestGetLogSafeUrl(t *testing.T) {
	r := httptest.NewRequest("GET", "/images/hotel1.jpg?access_token=secret&size=1", nil)
	assert.Equal(t, "/images/hotel1.jpg?access_token=redacted&size=1", GetLogSafeUrl(r))
	assert.Equal(t, "access_token=redacted&size=1", GetLogSafeQueryString(r))
}
