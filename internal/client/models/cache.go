package models

import "time"

// CacheEntry is the persisted record of the post cache. Timestamp and
// ExpiresIn are milliseconds.
type CacheEntry struct {
	Posts     []Post `json:"posts"`
	Timestamp int64  `json:"timestamp"`
	ExpiresIn int64  `json:"expiresIn"`
}

func NewCacheEntry(posts []Post, now time.Time, ttl time.Duration) *CacheEntry {
	return &CacheEntry{
		Posts:     ClonePosts(posts),
		Timestamp: now.UnixMilli(),
		ExpiresIn: ttl.Milliseconds(),
	}
}

// Expired reports now > timestamp + expiresIn.
func (e *CacheEntry) Expired(now time.Time) bool {
	return now.UnixMilli() > e.Timestamp+e.ExpiresIn
}
