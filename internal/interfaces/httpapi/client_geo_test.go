package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	req.RemoteAddr = "10.0.0.9:51234"
	assert.Equal(t, "10.0.0.9", resolveClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", resolveClientIP(req))

	req.Header.Set("Fly-Client-IP", "not-an-ip")
	assert.Equal(t, "203.0.113.7", resolveClientIP(req))
}

func TestResolveCountryCode(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	assert.Equal(t, "ZZ", resolveCountryCode(req))

	req.Header.Set("CF-IPCountry", "pl")
	assert.Equal(t, "PL", resolveCountryCode(req))

	req.Header.Set("Fly-Client-Country", "GBR")
	assert.Equal(t, "PL", resolveCountryCode(req))
}

func TestBroadcastRegion(t *testing.T) {
	assert.Equal(t, "poland", broadcastRegion("PL"))
	assert.Equal(t, "uk", broadcastRegion("GB"))
	assert.Equal(t, "usa", broadcastRegion("US"))
	assert.Equal(t, "", broadcastRegion("ZZ"))
}
