package domain

import (
	"time"

	"github.com/google/uuid"
)

// Language is a supported UI language code.
type Language string

const (
	LangRU Language = "ru"
	LangUZ Language = "uz"
)

// DefaultLanguage is used before a user has picked one.
const DefaultLanguage = LangRU

// ParseLanguage returns the language for a stored code, falling back to DefaultLanguage.
func ParseLanguage(code string) Language {
	switch Language(code) {
	case LangUZ:
		return LangUZ
	default:
		return LangRU
	}
}

// User represents a registered customer.
type User struct {
	ID         uuid.UUID
	TelegramID int64
	Name       string
	Phone      *string // Encrypted at rest
	Email      *string // Encrypted at rest
	Language   Language
	IsAdmin    bool
	IsBanned   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Lang returns the user's language, tolerating a nil receiver.
func (u *User) Lang() Language {
	if u == nil || u.Language == "" {
		return DefaultLanguage
	}
	return u.Language
}

// UserStats aggregates a user's non-cancelled orders.
type UserStats struct {
	OrderCount  int
	TotalSpent  Money
	LastOrderAt *time.Time
}
