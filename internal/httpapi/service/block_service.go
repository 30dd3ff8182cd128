package service

import (
	"errors"

	"vidhub/internal/httpapi/dto"
	"vidhub/internal/httpapi/models"
	"vidhub/internal/httpapi/repository"

	"gorm.io/gorm"
)

var (
	ErrSelfBlock      = errors.New("cannot block yourself")
	ErrAlreadyBlocked = errors.New("user already blocked")
	ErrBlockNotFound  = errors.New("block not found")
	ErrUserNotFound   = errors.New("user not found")
)

// BlockService manages the directed block edges a user keeps to hide other
// users' comments from their own view.
type BlockService interface {
	Block(blockerID, targetID int64) error
	Unblock(blockerID, targetID int64) error
	IsBlocked(blockerID, targetID int64) (bool, error)
	ListBlocked(blockerID int64) ([]dto.BlockedUserResponse, error)
}

type blockService struct {
	blockRepo repository.BlockRepository
	userRepo  repository.UserRepository
}

func NewBlockService(blockRepo repository.BlockRepository, userRepo repository.UserRepository) BlockService {
	return &blockService{
		blockRepo: blockRepo,
		userRepo:  userRepo,
	}
}

// Block inserts the (blocker, target) edge. Blocking an already-blocked user
// is a conflict, and the unique index on the pair keeps the edge single even
// when two requests race past the existence check.
func (s *blockService) Block(blockerID, targetID int64) error {
	if blockerID == targetID {
		return ErrSelfBlock
	}

	if _, err := s.userRepo.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	exists, err := s.blockRepo.Exists(blockerID, targetID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyBlocked
	}

	block := &models.Block{
		BlockerID: blockerID,
		BlockedID: targetID,
	}
	if err := s.blockRepo.Create(block); err != nil {
		if repository.IsUniqueViolation(err) {
			return ErrAlreadyBlocked
		}
		return err
	}
	return nil
}

// Unblock removes the (blocker, target) edge. The delete is keyed by the pair
// and scoped to the requester as blocker, so nobody can remove another user's
// edge; a missing edge is reported, never invented.
func (s *blockService) Unblock(blockerID, targetID int64) error {
	deleted, err := s.blockRepo.DeletePair(blockerID, targetID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrBlockNotFound
	}
	return nil
}

func (s *blockService) IsBlocked(blockerID, targetID int64) (bool, error) {
	return s.blockRepo.Exists(blockerID, targetID)
}

// ListBlocked returns the blocker's blocked users with identity attached.
func (s *blockService) ListBlocked(blockerID int64) ([]dto.BlockedUserResponse, error) {
	blocks, err := s.blockRepo.ListByBlocker(blockerID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.BlockedUserResponse, 0, len(blocks))
	for i := range blocks {
		responses = append(responses, *dto.FromModelToBlockedUserResponse(&blocks[i]))
	}
	return responses, nil
}
