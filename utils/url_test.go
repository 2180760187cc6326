package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		href string
		want string
	}{
		{
			name: "relative path",
			base: "https://www.proff.no/roller/strise-as/trondheim/-/IF6R01G0C2C/",
			href: "/selskap/acme-as/oslo/-/ABC/",
			want: "https://www.proff.no/selskap/acme-as/oslo/-/ABC/",
		},
		{
			name: "already absolute",
			base: "https://www.proff.no/",
			href: "http://x/acme",
			want: "http://x/acme",
		},
		{
			name: "bad base",
			base: "://bad",
			href: "/acme",
			want: "/acme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveURL(tt.base, tt.href))
		})
	}
}

func TestCacheKeyDropsFragment(t *testing.T) {
	assert.Equal(t, "investigation:http://x/acme", CacheKey("investigation", "http://x/acme#owners"))
	assert.Equal(t, CacheKey("p", "http://x/a"), CacheKey("p", "http://x/a#b"))
}
