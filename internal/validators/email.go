package validators

import (
	"net"
	"regexp"
	"strings"
)

// emailShape is deliberately loose: local@domain.tld, no spaces.
var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func IsEmailShapeValid(email string) bool {
	return emailShape.MatchString(email)
}

// IsEmailDomainValid checks that the domain actually resolves. Only used
// at registration; booking forms settle for the shape check.
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
