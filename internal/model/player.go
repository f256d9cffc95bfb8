package model

import (
	"strings"
	"time"
)

// DefaultGuestName is used when a guest does not pick a name
const DefaultGuestName = "Guest"

// MaxDisplayNameLength caps display names, counted in runes
const MaxDisplayNameLength = 40

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player is the human side of every match they start
type Player struct {
	ID          PlayerID
	DisplayName string
	IsGuest     bool // Guests have no credentials and vanish with their session
	CreatedAt   time.Time
}

// Label is the name shown in the navigation bar
func (p *Player) Label() string {
	if p.IsGuest {
		return p.DisplayName + " (guest)"
	}
	return p.DisplayName
}

// RegisteredPlayer holds login credentials, stored apart from Player
type RegisteredPlayer struct {
	PlayerID     PlayerID
	Username     string // Immutable
	PasswordHash string // bcrypt
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeDisplayName trims name, substitutes fallback when empty and
// truncates to MaxDisplayNameLength
func NormalizeDisplayName(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if runes := []rune(name); len(runes) > MaxDisplayNameLength {
		return string(runes[:MaxDisplayNameLength])
	}
	return name
}
