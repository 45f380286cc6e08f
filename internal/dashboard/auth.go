package dashboard

import "crypto/subtle"

// CredentialChecker decides whether a submitted password grants access
type CredentialChecker interface {
	Check(password string) bool
}

// StaticPassword accepts a single shared secret
type StaticPassword struct {
	secret []byte
}

func NewStaticPassword(secret string) *StaticPassword {
	return &StaticPassword{secret: []byte(secret)}
}

// Check compares in constant time. An empty secret matches nothing.
func (p *StaticPassword) Check(password string) bool {
	if len(p.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(p.secret, []byte(password)) == 1
}
