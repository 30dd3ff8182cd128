package repository

import (
	"vidhub/internal/httpapi/models"

	"gorm.io/gorm"
)

// BlockRepository handles the directed block edges between users.
type BlockRepository interface {
	Create(block *models.Block) error
	DeletePair(blockerID, blockedID int64) (int64, error)
	Exists(blockerID, blockedID int64) (bool, error)
	ListByBlocker(blockerID int64) ([]models.Block, error)
}

type blockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepository{db: db}
}

func (r *blockRepository) Create(block *models.Block) error {
	return r.db.Create(block).Error
}

// DeletePair removes the edge keyed by (blocker, blocked) and reports how many
// rows went away. Scoping the delete to the blocker means a requester can
// never remove an edge that is not theirs.
func (r *blockRepository) DeletePair(blockerID, blockedID int64) (int64, error) {
	result := r.db.Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.Block{})
	return result.RowsAffected, result.Error
}

func (r *blockRepository) Exists(blockerID, blockedID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Block{}).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *blockRepository) ListByBlocker(blockerID int64) ([]models.Block, error) {
	var blocks []models.Block
	err := r.db.Where("blocker_id = ?", blockerID).
		Preload("Blocked").
		Order("id DESC").
		Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	return blocks, nil
}
