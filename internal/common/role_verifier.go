package common

import (
	"context"
	"errors"

	"github.com/clubsphere/backend/internal/entity"
	"github.com/clubsphere/backend/internal/repository"
	"github.com/clubsphere/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type ClubRoleVerifier struct {
	clubRepo   repository.ClubRepository
	memberRepo repository.ClubMemberRepository
}

func NewClubRoleVerifier(
	clubRepo repository.ClubRepository,
	memberRepo repository.ClubMemberRepository,
) *ClubRoleVerifier {
	return &ClubRoleVerifier{clubRepo: clubRepo, memberRepo: memberRepo}
}

// Verify checks that the request user holds one of the required roles in
// the club. The club organizer passes regardless of membership rows.
func (verifier *ClubRoleVerifier) Verify(
	ctx context.Context,
	clubID string,
	requiredRoles ...entity.MemberRole,
) error {
	userID := xcontext.RequestUserID(ctx)

	club, err := verifier.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("club does not exist")
		}

		return err
	}

	if club.OrganizerID == userID {
		return nil
	}

	member, err := verifier.memberRepo.Get(ctx, clubID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("user does not have permission")
		}

		return err
	}

	if !slices.Contains(requiredRoles, member.Role) {
		return errors.New("user role does not have permission")
	}

	return nil
}
