package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveClientType(t *testing.T) {
	tests := []struct {
		name   string
		header string
		ua     string
		want   ClientType
	}{
		{"explicit web header", "web", "", ClientWeb},
		{"explicit mobile header wins over browser ua", "MOBILE", "Mozilla/5.0", ClientMobile},
		{"browser user agent", "", "Mozilla/5.0 (X11; Linux x86_64)", ClientWeb},
		{"android http client", "", "okhttp/4.12.0", ClientMobile},
		{"curl", "", "curl/8.5.0", ClientAPI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveClientType(tt.header, tt.ua))
		})
	}
	assert.True(t, IsWebClient(ClientWeb))
	assert.False(t, IsWebClient(ClientAPI))
}
