package middleware

import (
	"context"
	"net"
	"net/http"
)

type peerKey struct{}

// PeerAddr remembers the address of the connection itself. It must run before
// chi's RealIP, which rewrites RemoteAddr from client-supplied headers.
func PeerAddr(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), peerKey{}, r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PeerHost returns the host of the connecting peer, ignoring forwarding
// headers. Without PeerAddr in the chain it falls back to RemoteAddr.
func PeerHost(r *http.Request) string {
	addr, ok := r.Context().Value(peerKey{}).(string)
	if !ok {
		addr = r.RemoteAddr
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
