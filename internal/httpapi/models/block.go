package models

import "time"

// Block is a directed edge: the blocker hides the blocked user's comments
// from their own view. The composite unique index keeps the edge single even
// when two block requests for the same pair race.
type Block struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	BlockerID int64     `json:"blocker_id" gorm:"not null;uniqueIndex:idx_blocks_pair"`
	BlockedID int64     `json:"blocked_id" gorm:"not null;uniqueIndex:idx_blocks_pair"`
	CreatedAt time.Time `json:"created_at"`

	// Associations
	Blocker User `json:"-" gorm:"foreignKey:BlockerID;constraint:OnDelete:CASCADE;"`
	Blocked User `json:"blocked,omitempty" gorm:"foreignKey:BlockedID;constraint:OnDelete:CASCADE;"`
}

func (Block) TableName() string {
	return "blocks"
}
