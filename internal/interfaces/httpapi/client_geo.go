package httpapi

import (
	"net"
	"net/http"
	"strings"
)

const unknownCountry = "ZZ"

var (
	clientIPHeaders = []string{"Fly-Client-IP", "X-Forwarded-For", "X-Real-IP"}
	countryHeaders  = []string{"Fly-Client-Country", "CF-IPCountry", "X-Vercel-IP-Country", "CloudFront-Viewer-Country"}
)

// broadcastRegions maps viewer countries onto the broadcaster table keys.
var broadcastRegions = map[string]string{
	"PL": "poland",
	"GB": "uk",
	"UK": "uk",
	"US": "usa",
}

// resolveClientIP prefers edge proxy headers over the socket address.
func resolveClientIP(r *http.Request) string {
	for _, header := range clientIPHeaders {
		if ip := normalizeIP(r.Header.Get(header)); ip != "" {
			return ip
		}
	}
	return normalizeIP(r.RemoteAddr)
}

// resolveCountryCode reads the ISO country set by the CDN in front of the service.
func resolveCountryCode(r *http.Request) string {
	for _, header := range countryHeaders {
		if code := normalizeCountry(r.Header.Get(header)); code != "" {
			return code
		}
	}
	return unknownCountry
}

// broadcastRegion is empty for viewers outside the regions the broadcaster table covers.
func broadcastRegion(country string) string {
	return broadcastRegions[country]
}

func normalizeIP(raw string) string {
	value, _, _ := strings.Cut(strings.TrimSpace(raw), ",")
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(value); err == nil {
		value = host
	}
	if parsed := net.ParseIP(value); parsed != nil {
		return parsed.String()
	}
	return ""
}

func normalizeCountry(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 2 || strings.TrimFunc(code, func(r rune) bool { return r >= 'A' && r <= 'Z' }) != "" {
		return ""
	}
	return code
}
