// Package http implements the HTTP surface of the UniBrain server.
//
// It exposes the mini-app endpoints used by the Farcaster host, the public
// marketplace API and the wallet login flow. Tracing, access logging and
// token authentication are handled in this package before requests are
// delegated to the service layer.
package http
