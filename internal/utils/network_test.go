package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "Public X-Real-IP",
			headers: map[string]string{"X-Real-IP": "203.0.113.7"},
			want:    "203.0.113.7",
		},
		{
			name: "Private X-Real-IP Falls Through To Forwarded",
			headers: map[string]string{
				"X-Real-IP":       "10.0.0.4",
				"X-Forwarded-For": "198.51.100.20, 10.0.0.4",
			},
			want: "198.51.100.20",
		},
		{
			name:    "Skips Private Hops",
			headers: map[string]string{"X-Forwarded-For": "192.168.1.9, 198.51.100.20"},
			want:    "198.51.100.20",
		},
		{
			name:    "All Private Hops",
			headers: map[string]string{"X-Forwarded-For": "garbage, 10.1.2.3, 172.16.0.8"},
			want:    "10.1.2.3",
		},
		{
			name: "Remote Address",
			want: "192.0.2.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, ClientIP(c))
		})
	}
}

func TestUserAgent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Equal(t, "unknown", UserAgent(c))

	c.Request.Header.Set("User-Agent", "curl/8.5.0")
	assert.Equal(t, "curl/8.5.0", UserAgent(c))
}
