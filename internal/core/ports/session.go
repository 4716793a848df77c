package ports

import "ShopBot/internal/core/domain"

// SessionStore holds ephemeral per-user conversation state. It is process-local
// and lost on restart.
type SessionStore interface {
	// Lock serializes work for one user; the returned func releases it.
	Lock(userID int64) (unlock func())

	// State returns the in-flight state, or nil when the user is idle.
	State(userID int64) domain.ConversationState
	SetState(userID int64, state domain.ConversationState)
	ClearState(userID int64)

	// PromoCode is the code applied with /promo_ and consumed at checkout.
	PromoCode(userID int64) string
	SetPromoCode(userID int64, code string)

	// CartTotalMessage is the id of the last cart total message, 0 if none.
	CartTotalMessage(userID int64) int
	SetCartTotalMessage(userID int64, messageID int)
}
