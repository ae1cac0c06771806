// Package policy decides whether an authenticated caller may act on a
// target user record. The API historically lets any valid token act on
// any user id; that stays the default, with a stricter owner-only rule
// selectable through configuration.
package policy

// Access reports whether the caller may act on the target user.
type Access func(callerID, targetID int64) bool

// AllowAny permits every authenticated caller (observed behavior).
func AllowAny(callerID, targetID int64) bool { return true }

// OwnerOnly permits a caller to act only on their own record.
func OwnerOnly(callerID, targetID int64) bool { return callerID == targetID }

// FromName resolves a configured policy name; unknown names fall back to
// AllowAny.
func FromName(name string) Access {
	if name == "owner" {
		return OwnerOnly
	}
	return AllowAny
}
