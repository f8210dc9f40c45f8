// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Account is the authenticated identity behind every API call. It mirrors
// what the external authentication collaborator knows about the session:
// a stable opaque UID, the login email, an optional display name and the
// account creation time.
type Account struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReportName returns the name used to attribute a history export: the
// display name when set, otherwise the capitalized local part of the email.
func (a *Account) ReportName() string {
	if strings.TrimSpace(a.DisplayName) != "" {
		return a.DisplayName
	}

	local, _, _ := strings.Cut(a.Email, "@")
	if local == "" {
		return "Unknown User"
	}

	runes := []rune(local)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// JoinedLabel renders the account age as the profile screen shows it.
func (a *Account) JoinedLabel(now time.Time) string {
	days := int(now.Sub(a.CreatedAt).Hours() / 24)
	switch {
	case days <= 0:
		return "Joined today"
	case days == 1:
		return "Joined 1 day ago"
	default:
		return fmt.Sprintf("Joined %d days ago", days)
	}
}
