package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address domain actually resolves before
// we spend an SMTP round-trip on it.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

// LocalPart returns the part before the @, used as a placeholder name when a
// client profile is created lazily.
func LocalPart(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return email
	}
	return email[:at]
}
