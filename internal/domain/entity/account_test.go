package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccount_ReportName(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		want    string
	}{
		{
			name:    "display name wins",
			account: Account{DisplayName: "Jane Doe", Email: "jane@example.com"},
			want:    "Jane Doe",
		},
		{
			name:    "falls back to capitalized email local part",
			account: Account{Email: "asha@example.com"},
			want:    "Asha",
		},
		{
			name:    "blank display name is ignored",
			account: Account{DisplayName: "   ", Email: "rahul@example.com"},
			want:    "Rahul",
		},
		{
			name:    "no email at all",
			account: Account{},
			want:    "Unknown User",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.account.ReportName())
		})
	}
}

func TestAccount_JoinedLabel(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		want      string
	}{
		{name: "today", createdAt: now.Add(-2 * time.Hour), want: "Joined today"},
		{name: "one day", createdAt: now.Add(-36 * time.Hour), want: "Joined 1 day ago"},
		{name: "many days", createdAt: now.AddDate(0, 0, -30), want: "Joined 30 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := Account{CreatedAt: tt.createdAt}
			assert.Equal(t, tt.want, account.JoinedLabel(now))
		})
	}
}
