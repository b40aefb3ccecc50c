package models

import (
	"database/sql"
	"time"
)

type Flashcard struct {
	ID      int64  `db:"flashcard_id"`
	DeckID  int64  `db:"deck_id"`
	Word    string `db:"word"`
	Meaning string `db:"meaning"`
	Example string `db:"example"`
}

type Deck struct {
	ID        int64         `db:"deck_id"`
	UserID    int64         `db:"user_id"`
	FolderID  sql.NullInt64 `db:"folder_id"`
	Name      string        `db:"name"`
	Public    bool          `db:"public"`
	CardCount int           `db:"card_count"`
	CreatedAt time.Time     `db:"created_at"`
}

type Folder struct {
	ID        int64     `db:"folder_id"`
	UserID    int64     `db:"user_id"`
	Name      string    `db:"name"`
	DeckCount int       `db:"deck_count"`
	CreatedAt time.Time `db:"created_at"`
}
