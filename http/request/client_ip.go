package request

import (
	"net"
	"net/http"
	"strings"
)

// FindClientIP derives the client address from proxy headers, falling back
// to the socket address.
func FindClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// The first address is the originating client.
		parts := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return dropIPv6Zone(ip)
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return dropIPv6Zone(realIP)
	}
	return RemoteAddr(r)
}

// RemoteAddr returns the socket address without the port.
func RemoteAddr(r *http.Request) string {
	address := r.RemoteAddr
	if host, _, err := net.SplitHostPort(address); err == nil {
		address = host
	}
	return dropIPv6Zone(address)
}

func dropIPv6Zone(address string) string {
	if i := strings.IndexByte(address, '%'); i >= 0 {
		return address[:i]
	}
	return address
}
