package roster

import (
	"errors"
	"time"
)

var (
	ErrNameNotFound = errors.New("name not found")
	ErrListNotFound = errors.New("list not found")
	ErrEmptyName    = errors.New("name must not be blank")
	ErrEmptyTitle   = errors.New("list title must not be blank")
)

// Name is one entry of the loose roster
type Name struct {
	ID        string    `json:"id"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// List is a saved, titled snapshot of names
type List struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Names     []string  `json:"names"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListSummary describes a saved list without its names
type ListSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	NameCount int       `json:"name_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NameRequest carries a single name value
type NameRequest struct {
	Value string `json:"value"`
}

// ImportRequest carries free text holding names separated by commas or newlines
type ImportRequest struct {
	Text string `json:"text"`
}

// SaveListRequest creates a saved list. Without Names the current loose
// roster is snapshotted.
type SaveListRequest struct {
	Title string    `json:"title"`
	Names *[]string `json:"names,omitempty"`
}

// UpdateListRequest replaces a saved list's title and names
type UpdateListRequest struct {
	Title string   `json:"title"`
	Names []string `json:"names"`
}
