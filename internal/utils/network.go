package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientIP returns the address used to throttle and audit a caller.
//
// X-Real-IP wins when it carries a public address. Otherwise the first public
// hop of X-Forwarded-For is used, then its first valid hop, then Gin's
// ClientIP.
func ClientIP(c *gin.Context) string {
	if real := strings.TrimSpace(c.GetHeader("X-Real-IP")); real != "" {
		if ip := net.ParseIP(real); ip != nil && !isPrivate(ip) {
			return real
		}
	}

	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		var first string
		for _, hop := range strings.Split(forwarded, ",") {
			hop = strings.TrimSpace(hop)
			ip := net.ParseIP(hop)
			if ip == nil {
				continue
			}
			if first == "" {
				first = hop
			}
			if !isPrivate(ip) {
				return hop
			}
		}
		if first != "" {
			return first
		}
	}

	return c.ClientIP()
}

// UserAgent returns the User-Agent header, or "unknown" when absent
func UserAgent(c *gin.Context) string {
	if ua := c.Request.UserAgent(); ua != "" {
		return ua
	}
	return "unknown"
}

func isPrivate(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast()
}
