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

func newRegistrationDomain() RegistrationDomain {
	return NewRegistrationDomain(
		repository.NewEventParticipantRepository(),
		repository.NewEventBookmarkRepository(),
		repository.NewEventRepository(),
		repository.NewClubRepository(),
		repository.NewClubMemberRepository(),
		qcache.NewMemoryCache(),
	)
}

func Test_registrationDomain_Register(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newRegistrationDomain()

	_, err := domain.Register(ctx, &model.RegisterForEventRequest{
		EventID: testutil.RoboWars.ID,
	})
	require.NoError(t, err)

	var result entity.EventParticipant
	tx := xcontext.DB(ctx).
		Take(&result, "event_id=? AND user_id=?", testutil.RoboWars.ID, testutil.Student.ID)
	require.NoError(t, tx.Error)
	require.Equal(t, testutil.Student.Name, result.Name)
	require.False(t, result.Attendance.Valid)

	_, err = domain.Register(ctx, &model.RegisterForEventRequest{
		EventID: testutil.RoboWars.ID,
	})
	requireErrorCode(t, err, errorx.RemoteFailure)
}

func Test_registrationDomain_Register_NotFoundEvent(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newRegistrationDomain()

	_, err := domain.Register(ctx, &model.RegisterForEventRequest{
		EventID: "99999999-9999-4999-8999-999999999999",
	})
	requireErrorCode(t, err, errorx.NotFound)
}

func Test_registrationDomain_Register_FullEvent(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newRegistrationDomain()

	err := xcontext.DB(ctx).Model(&entity.Event{}).
		Where("id=?", testutil.RoboWars.ID).
		Updates(map[string]any{"max_participants": 1, "registered_participants": 1}).Error
	require.NoError(t, err)

	_, err = domain.Register(ctx, &model.RegisterForEventRequest{
		EventID: testutil.RoboWars.ID,
	})
	requireErrorCode(t, err, errorx.BadRequest)
}

func Test_registrationDomain_RegistrationsAndUnregister(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newRegistrationDomain()

	before, err := domain.GetMyRegistrations(ctx, &model.GetMyRegistrationsRequest{})
	require.NoError(t, err)
	require.Empty(t, before.EventIDs)

	_, err = domain.Register(ctx, &model.RegisterForEventRequest{EventID: testutil.RoboWars.ID})
	require.NoError(t, err)

	registered, err := domain.GetMyRegistrations(ctx, &model.GetMyRegistrationsRequest{})
	require.NoError(t, err)
	require.Equal(t, []string{testutil.RoboWars.ID}, registered.EventIDs)

	events, err := domain.GetRegisteredEvents(ctx, &model.GetRegisteredEventsRequest{})
	require.NoError(t, err)
	require.Len(t, events.Events, 1)
	require.Equal(t, testutil.RoboWars.ID, events.Events[0].ID)

	_, err = domain.Unregister(ctx, &model.UnregisterFromEventRequest{EventID: testutil.RoboWars.ID})
	require.NoError(t, err)

	after, err := domain.GetMyRegistrations(ctx, &model.GetMyRegistrationsRequest{})
	require.NoError(t, err)
	require.Empty(t, after.EventIDs)
}

func Test_registrationDomain_SetAttendance(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newRegistrationDomain()

	_, err := domain.Register(ctx, &model.RegisterForEventRequest{EventID: testutil.RoboWars.ID})
	require.NoError(t, err)

	present := true
	organizerCtx := xcontext.WithRequestUser(ctx, testutil.Organizer)
	_, err = domain.SetAttendance(organizerCtx, &model.SetAttendanceRequest{
		EventID:    testutil.RoboWars.ID,
		UserID:     testutil.Student.ID,
		Attendance: &present,
	})
	require.NoError(t, err)

	resp, err := domain.GetParticipants(ctx, &model.GetEventParticipantsRequest{
		EventID: testutil.RoboWars.ID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Participants, 1)
	require.NotNil(t, resp.Participants[0].Attendance)
	require.True(t, *resp.Participants[0].Attendance)

	// A nil attendance resets the mark.
	_, err = domain.SetAttendance(organizerCtx, &model.SetAttendanceRequest{
		EventID: testutil.RoboWars.ID,
		UserID:  testutil.Student.ID,
	})
	require.NoError(t, err)

	resp, err = domain.GetParticipants(ctx, &model.GetEventParticipantsRequest{
		EventID: testutil.RoboWars.ID,
	})
	require.NoError(t, err)
	require.Nil(t, resp.Participants[0].Attendance)
}

func Test_registrationDomain_SetAttendance_PermissionDenied(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newRegistrationDomain()

	_, err := domain.Register(ctx, &model.RegisterForEventRequest{EventID: testutil.RoboWars.ID})
	require.NoError(t, err)

	present := true
	_, err = domain.SetAttendance(ctx, &model.SetAttendanceRequest{
		EventID:    testutil.RoboWars.ID,
		UserID:     testutil.Student.ID,
		Attendance: &present,
	})
	requireErrorCode(t, err, errorx.PermissionDenied)
}

func Test_registrationDomain_Bookmarks(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newRegistrationDomain()

	_, err := domain.Bookmark(ctx, &model.BookmarkEventRequest{EventID: testutil.RoboWars.ID})
	require.NoError(t, err)

	bookmarks, err := domain.GetMyBookmarks(ctx, &model.GetMyBookmarksRequest{})
	require.NoError(t, err)
	require.Equal(t, []string{testutil.RoboWars.ID}, bookmarks.EventIDs)

	_, err = domain.Unbookmark(ctx, &model.UnbookmarkEventRequest{EventID: testutil.RoboWars.ID})
	require.NoError(t, err)

	after, err := domain.GetMyBookmarks(ctx, &model.GetMyBookmarksRequest{})
	require.NoError(t, err)
	require.Empty(t, after.EventIDs)
}

func Test_registrationDomain_Unauthenticated(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.InsertFixtures(ctx)
	domain := newRegistrationDomain()

	_, err := domain.Register(ctx, &model.RegisterForEventRequest{EventID: testutil.RoboWars.ID})
	requireErrorCode(t, err, errorx.Unauthenticated)

	_, err = domain.GetMyRegistrations(ctx, &model.GetMyRegistrationsRequest{})
	requireErrorCode(t, err, errorx.Unauthenticated)
}

func Test_registrationDomain_Bookmark_NotFoundEvent(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newRegistrationDomain()

	_, err := domain.Bookmark(ctx, &model.BookmarkEventRequest{
		EventID: "99999999-9999-4999-8999-999999999999",
	})
	requireErrorCode(t, err, errorx.NotFound)

	var count int64
	xcontext.DB(ctx).Model(&entity.EventBookmark{}).Count(&count)
	require.Zero(t, count)
}
