package domain

import (
	"testing"

	"github.com/clubsphere/backend/internal/entity"
	"github.com/clubsphere/backend/internal/model"
	"github.com/clubsphere/backend/internal/repository"
	"github.com/clubsphere/backend/pkg/errorx"
	"github.com/clubsphere/backend/pkg/qcache"
	"github.com/clubsphere/backend/pkg/testutil"
	"github.com/clubsphere/backend/pkg/xcontext"

	"github.com/stretchr/testify/require"
)

func newClubDomain() ClubDomain {
	return NewClubDomain(
		repository.NewClubRepository(),
		repository.NewClubMemberRepository(),
		repository.NewClubFollowerRepository(),
		qcache.NewMemoryCache(),
	)
}

func Test_clubDomain_Create(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Organizer)
	testutil.InsertFixtures(ctx)
	domain := newClubDomain()

	resp, err := domain.Create(ctx, &model.CreateClubRequest{
		Name:        "Chess Club",
		Description: "Weekly blitz nights",
		Category:    "Games",
	})
	require.NoError(t, err)
	require.Equal(t, "Chess Club", resp.Club.Name)
	require.Zero(t, resp.Club.MemberCount)
	require.Zero(t, resp.Club.Followers)

	var result entity.Club
	tx := xcontext.DB(ctx).Take(&result, "id", resp.Club.ID)
	require.NoError(t, tx.Error)
	require.Equal(t, testutil.Organizer.ID, result.OrganizerID)
}

func Test_clubDomain_Create_Unauthenticated(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newClubDomain()

	_, err := domain.Create(ctx, &model.CreateClubRequest{Name: "Chess Club"})
	requireErrorCode(t, err, errorx.Unauthenticated)

	var count int64
	xcontext.DB(ctx).Model(&entity.Club{}).Count(&count)
	require.Zero(t, count)
}

func Test_clubDomain_Create_RefreshesClubList(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Organizer)
	testutil.InsertFixtures(ctx)
	domain := newClubDomain()

	before, err := domain.GetList(ctx, &model.GetClubsRequest{})
	require.NoError(t, err)
	require.Len(t, before.Clubs, 2)

	_, err = domain.Create(ctx, &model.CreateClubRequest{Name: "Chess Club"})
	require.NoError(t, err)

	after, err := domain.GetList(ctx, &model.GetClubsRequest{})
	require.NoError(t, err)
	require.Len(t, after.Clubs, 3)
}

func Test_clubDomain_Get_Missing(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.InsertFixtures(ctx)
	domain := newClubDomain()

	resp, err := domain.Get(ctx, &model.GetClubRequest{
		ClubID: "99999999-9999-4999-8999-999999999999",
	})
	require.NoError(t, err)
	require.Nil(t, resp.Club)
}

func Test_clubDomain_Get_InvalidID(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newClubDomain()

	// A malformed id is answered locally with an empty result.
	resp, err := domain.Get(ctx, &model.GetClubRequest{ClubID: "robotics"})
	require.NoError(t, err)
	require.Nil(t, resp.Club)

	members, err := domain.GetMembers(ctx, &model.GetClubMembersRequest{ClubID: "u3"})
	require.NoError(t, err)
	require.Empty(t, members.Members)
}

func Test_clubDomain_Join(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newClubDomain()

	_, err := domain.Join(ctx, &model.JoinClubRequest{ClubID: testutil.RoboticsClub.ID})
	require.NoError(t, err)

	var result entity.ClubMember
	tx := xcontext.DB(ctx).
		Take(&result, "club_id=? AND user_id=?", testutil.RoboticsClub.ID, testutil.Student.ID)
	require.NoError(t, tx.Error)
	require.Equal(t, entity.RoleMember, result.Role)
	require.Equal(t, testutil.Student.Name, result.Name)
	require.Equal(t, testutil.Student.Email, result.Email)

	// The membership table enforces one row per club and user; the
	// violation comes back verbatim.
	_, err = domain.Join(ctx, &model.JoinClubRequest{ClubID: testutil.RoboticsClub.ID})
	requireErrorCode(t, err, errorx.RemoteFailure)
}

func Test_clubDomain_Join_InvalidID(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newClubDomain()

	_, err := domain.Join(ctx, &model.JoinClubRequest{ClubID: "1"})
	requireErrorCode(t, err, errorx.BadRequest)

	var count int64
	xcontext.DB(ctx).Model(&entity.ClubMember{}).
		Where("user_id=?", testutil.Student.ID).Count(&count)
	require.Zero(t, count)
}

func Test_clubDomain_Leave(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newClubDomain()

	_, err := domain.Join(ctx, &model.JoinClubRequest{ClubID: testutil.RoboticsClub.ID})
	require.NoError(t, err)

	_, err = domain.Leave(ctx, &model.LeaveClubRequest{ClubID: testutil.RoboticsClub.ID})
	require.NoError(t, err)

	var count int64
	xcontext.DB(ctx).Model(&entity.ClubMember{}).
		Where("club_id=? AND user_id=?", testutil.RoboticsClub.ID, testutil.Student.ID).
		Count(&count)
	require.Zero(t, count)

	// Leaving a club twice is a no-op.
	_, err = domain.Leave(ctx, &model.LeaveClubRequest{ClubID: testutil.RoboticsClub.ID})
	require.NoError(t, err)
}

func Test_clubDomain_FollowUnfollow(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newClubDomain()

	before, err := domain.GetFollowedClubs(ctx, &model.GetFollowedClubsRequest{})
	require.NoError(t, err)
	require.Empty(t, before.Clubs)

	_, err = domain.Follow(ctx, &model.FollowClubRequest{ClubID: testutil.DramaClub.ID})
	require.NoError(t, err)

	followed, err := domain.GetFollowedClubs(ctx, &model.GetFollowedClubsRequest{})
	require.NoError(t, err)
	require.Len(t, followed.Clubs, 1)
	require.Equal(t, testutil.DramaClub.ID, followed.Clubs[0].ID)

	_, err = domain.Unfollow(ctx, &model.UnfollowClubRequest{ClubID: testutil.DramaClub.ID})
	require.NoError(t, err)

	after, err := domain.GetFollowedClubs(ctx, &model.GetFollowedClubsRequest{})
	require.NoError(t, err)
	require.Empty(t, after.Clubs)
}

func Test_clubDomain_GetMyClubs(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newClubDomain()

	before, err := domain.GetMyClubs(ctx, &model.GetMyClubsRequest{})
	require.NoError(t, err)
	require.Empty(t, before.Clubs)

	_, err = domain.Join(ctx, &model.JoinClubRequest{ClubID: testutil.RoboticsClub.ID})
	require.NoError(t, err)

	after, err := domain.GetMyClubs(ctx, &model.GetMyClubsRequest{})
	require.NoError(t, err)
	require.Len(t, after.Clubs, 1)
	require.Equal(t, testutil.RoboticsClub.ID, after.Clubs[0].ID)
}

func Test_clubDomain_Update(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Organizer)
	testutil.InsertFixtures(ctx)
	domain := newClubDomain()

	newName := "Robotics and Automation Club"
	_, err := domain.Update(ctx, &model.UpdateClubRequest{
		ClubID:  testutil.RoboticsClub.ID,
		Changes: model.ClubChanges{Name: &newName},
	})
	require.NoError(t, err)

	resp, err := domain.Get(ctx, &model.GetClubRequest{ClubID: testutil.RoboticsClub.ID})
	require.NoError(t, err)
	require.NotNil(t, resp.Club)
	require.Equal(t, newName, resp.Club.Name)
	// Untouched fields keep their values.
	require.Equal(t, testutil.RoboticsClub.Description, resp.Club.Description)
	require.Equal(t, []string(testutil.RoboticsClub.Leads), resp.Club.Leads)
}

func Test_clubDomain_Update_PermissionDenied(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newClubDomain()

	newName := "Hijacked Club"
	_, err := domain.Update(ctx, &model.UpdateClubRequest{
		ClubID:  testutil.RoboticsClub.ID,
		Changes: model.ClubChanges{Name: &newName},
	})
	requireErrorCode(t, err, errorx.PermissionDenied)
}

func Test_clubDomain_GetMembers(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newClubDomain()

	_, err := domain.Join(ctx, &model.JoinClubRequest{ClubID: testutil.RoboticsClub.ID})
	require.NoError(t, err)

	resp, err := domain.GetMembers(ctx, &model.GetClubMembersRequest{
		ClubID: testutil.RoboticsClub.ID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Members, 2)
}

func Test_clubDomain_RemoveMember(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newClubDomain()

	_, err := domain.Join(ctx, &model.JoinClubRequest{ClubID: testutil.RoboticsClub.ID})
	require.NoError(t, err)

	organizerCtx := xcontext.WithRequestUser(ctx, testutil.Organizer)
	_, err = domain.RemoveMember(organizerCtx, &model.RemoveMemberRequest{
		ClubID: testutil.RoboticsClub.ID,
		UserID: testutil.Student.ID,
	})
	require.NoError(t, err)

	var count int64
	xcontext.DB(ctx).Model(&entity.ClubMember{}).
		Where("club_id=? AND user_id=?", testutil.RoboticsClub.ID, testutil.Student.ID).
		Count(&count)
	require.Zero(t, count)
}

func Test_clubDomain_Join_NotFoundClub(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newClubDomain()

	_, err := domain.Join(ctx, &model.JoinClubRequest{
		ClubID: "99999999-9999-4999-8999-999999999999",
	})
	requireErrorCode(t, err, errorx.NotFound)

	var count int64
	xcontext.DB(ctx).Model(&entity.ClubMember{}).
		Where("user_id=?", testutil.Student.ID).Count(&count)
	require.Zero(t, count)
}

func Test_clubDomain_Follow_NotFoundClub(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newClubDomain()

	_, err := domain.Follow(ctx, &model.FollowClubRequest{
		ClubID: "99999999-9999-4999-8999-999999999999",
	})
	requireErrorCode(t, err, errorx.NotFound)

	var count int64
	xcontext.DB(ctx).Model(&entity.ClubFollower{}).Count(&count)
	require.Zero(t, count)
}
