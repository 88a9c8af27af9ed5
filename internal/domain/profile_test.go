package domain

import (
	"testing"

	"github.com/clubsphere/backend/internal/model"
	"github.com/clubsphere/backend/internal/repository"
	"github.com/clubsphere/backend/pkg/errorx"
	"github.com/clubsphere/backend/pkg/qcache"
	"github.com/clubsphere/backend/pkg/testutil"

	"github.com/stretchr/testify/require"
)

func newProfileDomain() ProfileDomain {
	return NewProfileDomain(repository.NewProfileRepository(), qcache.NewMemoryCache())
}

func Test_profileDomain_GetMyProfile(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newProfileDomain()

	resp, err := domain.GetMyProfile(ctx, &model.GetMyProfileRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp.Profile)
	require.Equal(t, testutil.Student.Name, resp.Profile.Name)
	require.Equal(t, "student", resp.Profile.Role)
}

func Test_profileDomain_GetMyProfile_Missing(t *testing.T) {
	ctx := testutil.MockContextWithUserID("99999999-9999-4999-8999-999999999999")
	domain := newProfileDomain()

	resp, err := domain.GetMyProfile(ctx, &model.GetMyProfileRequest{})
	require.NoError(t, err)
	require.Nil(t, resp.Profile)
}

func Test_profileDomain_UpdateMyProfile(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newProfileDomain()

	before, err := domain.GetMyProfile(ctx, &model.GetMyProfileRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.Student.Name, before.Profile.Name)

	_, err = domain.UpdateMyProfile(ctx, &model.UpdateMyProfileRequest{Name: "Asha V."})
	require.NoError(t, err)

	after, err := domain.GetMyProfile(ctx, &model.GetMyProfileRequest{})
	require.NoError(t, err)
	require.Equal(t, "Asha V.", after.Profile.Name)
}

func Test_profileDomain_UpdateMyProfile_EmptyName(t *testing.T) {
	ctx := testutil.MockContextWithUser(testutil.Student)
	testutil.InsertFixtures(ctx)
	domain := newProfileDomain()

	_, err := domain.UpdateMyProfile(ctx, &model.UpdateMyProfileRequest{Name: " "})
	requireErrorCode(t, err, errorx.BadRequest)
}

func Test_profileDomain_Unauthenticated(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newProfileDomain()

	_, err := domain.GetMyProfile(ctx, &model.GetMyProfileRequest{})
	requireErrorCode(t, err, errorx.Unauthenticated)
}
