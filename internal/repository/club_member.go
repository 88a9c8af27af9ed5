package repository

import (
	"context"

	"github.com/clubsphere/backend/internal/entity"
	"github.com/clubsphere/backend/pkg/xcontext"
)

type ClubMemberRepository interface {
	Get(ctx context.Context, clubID, userID string) (*entity.ClubMember, error)
	GetListByClubID(ctx context.Context, clubID string) ([]entity.ClubMember, error)
	GetListByUserID(ctx context.Context, userID string) ([]entity.ClubMember, error)
	Create(ctx context.Context, member *entity.ClubMember) error
	Delete(ctx context.Context, clubID, userID string) error
}

type clubMemberRepository struct{}

func NewClubMemberRepository() *clubMemberRepository {
	return &clubMemberRepository{}
}

func (r *clubMemberRepository) Get(ctx context.Context, clubID, userID string) (*entity.ClubMember, error) {
	var result entity.ClubMember
	err := xcontext.DB(ctx).Where("club_id=? AND user_id=?", clubID, userID).Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *clubMemberRepository) GetListByClubID(ctx context.Context, clubID string) ([]entity.ClubMember, error) {
	var result []entity.ClubMember
	err := xcontext.DB(ctx).Where("club_id=?", clubID).Order("joined_at ASC").Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *clubMemberRepository) GetListByUserID(ctx context.Context, userID string) ([]entity.ClubMember, error) {
	var result []entity.ClubMember
	err := xcontext.DB(ctx).Where("user_id=?", userID).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *clubMemberRepository) Create(ctx context.Context, member *entity.ClubMember) error {
	return xcontext.DB(ctx).Create(member).Error
}

// Delete removes the (club, user) row. The affected-row count is not
// inspected; deleting an absent membership is not an error here.
func (r *clubMemberRepository) Delete(ctx context.Context, clubID, userID string) error {
	return xcontext.DB(ctx).
		Where("club_id=? AND user_id=?", clubID, userID).
		Delete(&entity.ClubMember{}).Error
}
