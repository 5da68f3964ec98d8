package domain

import (
	"time"

	"github.com/google/uuid"
)

// Channel is a connected YouTube channel together with the OAuth credential
// used to pull its reports.
type Channel struct {
	ID               uuid.UUID  `db:"id"`
	UserID           uuid.UUID  `db:"user_id"`
	YoutubeChannelID string     `db:"youtube_channel_id"`
	Title            string     `db:"title"`
	Thumbnail        string     `db:"thumbnail"`
	AccessToken      string     `db:"access_token"`
	RefreshToken     string     `db:"refresh_token"`
	TokenExpiry      *time.Time `db:"token_expiry"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

// TokenExpired reports whether the stored access token needs a refresh
// before it can be used.
func (c *Channel) TokenExpired(now time.Time) bool {
	return c.TokenExpiry != nil && c.TokenExpiry.Before(now)
}

// ChannelInfo is the credential-free view returned to clients.
type ChannelInfo struct {
	ID               uuid.UUID `json:"id"`
	YoutubeChannelID string    `json:"channel_id"`
	Title            string    `json:"channel_title"`
	Thumbnail        string    `json:"channel_thumbnail"`
	CreatedAt        time.Time `json:"created_at"`
}

func (c *Channel) Info() *ChannelInfo {
	return &ChannelInfo{
		ID:               c.ID,
		YoutubeChannelID: c.YoutubeChannelID,
		Title:            c.Title,
		Thumbnail:        c.Thumbnail,
		CreatedAt:        c.CreatedAt,
	}
}
