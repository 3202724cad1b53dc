package entity

// Profile is a user's public display record. Every field except ID may be
// absent.
type Profile struct {
	ID        string  `json:"id" db:"id"`
	Username  *string `json:"username" db:"username"`
	FullName  *string `json:"full_name" db:"full_name"`
	AvatarURL *string `json:"avatar_url" db:"avatar_url"`
	Bio       *string `json:"bio" db:"bio"`
}

// User is the authenticated identity as reported by the identity provider.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	SessionID string `json:"-"`
}
