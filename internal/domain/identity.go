package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Identity is the signed-in visitor as reported by the identity provider.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

func (i *Identity) Same(other *Identity) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.UID == other.UID
}

// DisplayName derives a greeting name from the local part of an email:
// "maria.g@x.com" becomes "Maria.g".
func DisplayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(local)
	return string(unicode.ToUpper(r)) + local[size:]
}
