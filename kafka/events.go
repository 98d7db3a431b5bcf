package kafka

import "time"

// ComicCreatedEvent signals a new catalog item
type ComicCreatedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ComicID   uint      `json:"comic_id"`
	MarvelID  int       `json:"marvel_id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	StockQty  int       `json:"stock_qty"`
	Timestamp time.Time `json:"timestamp"`
}

// WishlistEntryAddedEvent signals a comic added to a user's wishlist
type WishlistEntryAddedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	EntryID   uint      `json:"entry_id"`
	UserID    uint      `json:"user_id"`
	ComicID   uint      `json:"comic_id"`
	Favorite  bool      `json:"favorite"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeComicCreated       = "comic.created"
	EventTypeWishlistEntryAdded = "wishlist.entry_added"
)

// Kafka topics
const (
	TopicComicCreated       = "comic-created"
	TopicWishlistEntryAdded = "wishlist-entry-added"
)
