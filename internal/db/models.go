package db

import (
	"time"
)

type Name struct {
	Seq       int64     `json:"seq"`
	NameID    string    `json:"name_id"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

type SavedList struct {
	ListID    string    `json:"list_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SavedListName struct {
	ListID   string `json:"list_id"`
	Position int64  `json:"position"`
	Value    string `json:"value"`
}

type Preference struct {
	PrefKey   string    `json:"pref_key"`
	PrefValue string    `json:"pref_value"`
	UpdatedAt time.Time `json:"updated_at"`
}
