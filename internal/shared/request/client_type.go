package request

import "strings"

type ClientType string

const (
	ClientWeb    ClientType = "WEB"
	ClientMobile ClientType = "MOBILE"
	ClientAPI    ClientType = "API"
)

// ResolveClientType prefers the explicit X-Client-Type header and falls back
// to sniffing the user agent. Browsers get cookies; everything else gets
// tokens in the body only.
func ResolveClientType(header, userAgent string) ClientType {
	switch strings.ToUpper(strings.TrimSpace(header)) {
	case string(ClientWeb):
		return ClientWeb
	case string(ClientMobile):
		return ClientMobile
	case string(ClientAPI):
		return ClientAPI
	}

	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "okhttp"), strings.Contains(ua, "dart"), strings.Contains(ua, "cfnetwork"):
		return ClientMobile
	case strings.Contains(ua, "mozilla"):
		return ClientWeb
	default:
		return ClientAPI
	}
}

func IsWebClient(t ClientType) bool {
	return t == ClientWeb
}
