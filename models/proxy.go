package models

import (
	"net"
	"net/url"
	"strconv"
)

// Proxy describes an outbound HTTP proxy. A proxy built from username and
// password alone keeps an empty Host; such a descriptor renders no URL and
// is carried through to the client as-is.
type Proxy struct {
	Host     string
	Port     int
	Username string
	Password string
}

// NewProxy returns an unauthenticated proxy descriptor.
func NewProxy(host string, port int) Proxy {
	return Proxy{Host: host, Port: port}
}

// NewAuthenticatedProxy returns a proxy descriptor carrying credentials.
func NewAuthenticatedProxy(host string, port int, username, password string) Proxy {
	return Proxy{Host: host, Port: port, Username: username, Password: password}
}

// Authenticated reports whether both username and password are set.
func (p Proxy) Authenticated() bool {
	return p.Username != "" && p.Password != ""
}

// URL renders the proxy as an http URL suitable for a transport. It returns
// an empty string when no host is known.
func (p Proxy) URL() string {
	if p.Host == "" {
		return ""
	}

	host := p.Host
	if p.Port > 0 {
		host = net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
	}

	u := &url.URL{Scheme: "http", Host: host}
	if p.Authenticated() {
		u.User = url.UserPassword(p.Username, p.Password)
	}

	return u.String()
}
