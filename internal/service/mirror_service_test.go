package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/placebetween/internal/error_values"
	"github.com/limbo/placebetween/internal/repository"
	"github.com/limbo/placebetween/internal/service"
	"github.com/limbo/placebetween/internal/service/mocks"
	"github.com/limbo/placebetween/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckin(t *testing.T) {
	tests := []struct {
		Desc         string
		Token        string
		Request      *entity.CheckinRequest
		MockPrepFunc func(remote *mocks.MockRemoteClientI)
		Error        error
		Validation   bool
	}{
		{
			Desc:    "ok",
			Token:   token,
			Request: &entity.CheckinRequest{EmotionID: 2, Intensity: 6, Note: "long day"},
			MockPrepFunc: func(remote *mocks.MockRemoteClientI) {
				remote.EXPECT().Checkin(gomock.Any(), token, gomock.Any()).
					Return(&entity.EmotionCheckin{ID: 1, EmotionID: 2, Intensity: 6}, nil)
			},
		},
		{
			Desc:    "no token",
			Request: &entity.CheckinRequest{EmotionID: 2, Intensity: 6},
			Error:   errorvalues.ErrAuthRequired,
		},
		{
			Desc:       "intensity out of range",
			Token:      token,
			Request:    &entity.CheckinRequest{EmotionID: 2, Intensity: 11},
			Validation: true,
		},
		{
			Desc:       "missing emotion",
			Token:      token,
			Request:    &entity.CheckinRequest{Intensity: 3},
			Validation: true,
		},
		{
			Desc:    "backend missing",
			Token:   token,
			Request: &entity.CheckinRequest{EmotionID: 2, Intensity: 6},
			MockPrepFunc: func(remote *mocks.MockRemoteClientI) {
				remote.EXPECT().Checkin(gomock.Any(), token, gomock.Any()).
					Return(nil, errorvalues.ErrBackendNotConfigured)
			},
			Error: errorvalues.ErrBackendNotConfigured,
		},
	}
	for _, tc := range tests {
		t.Run(tc.Desc, func(t *testing.T) {
			remote := mocks.NewMockRemoteClientI(gomock.NewController(t))
			if tc.MockPrepFunc != nil {
				tc.MockPrepFunc(remote)
			}
			ms := service.NewMirrorService(remote, nil)
			res, err := ms.Checkin(context.Background(), tc.Token, tc.Request)
			switch {
			case tc.Validation:
				var verr validator.ValidationErrors
				assert.ErrorAs(t, err, &verr)
			case tc.Error != nil:
				assert.ErrorIs(t, err, tc.Error)
			default:
				require.NoError(t, err)
				assert.Equal(t, 2, res.EmotionID)
			}
		})
	}
}

func TestEmotionsAndSummary(t *testing.T) {
	remote := mocks.NewMockRemoteClientI(gomock.NewController(t))
	ms := service.NewMirrorService(remote, nil)
	ctx := context.Background()

	remote.EXPECT().ListEmotions(gomock.Any()).Return([]entity.Emotion{{ID: 1, Name: "Joy"}}, nil)
	emotions, err := ms.ListEmotions(ctx)
	require.NoError(t, err)
	assert.Len(t, emotions, 1)

	remote.EXPECT().ListEmotions(gomock.Any()).Return(nil, errorvalues.ErrRemoteUnavailable)
	_, err = ms.ListEmotions(ctx)
	assert.ErrorIs(t, err, errorvalues.ErrRemoteUnavailable)

	_, err = ms.DailySummary(ctx, "")
	assert.ErrorIs(t, err, errorvalues.ErrAuthRequired)

	remote.EXPECT().DailySummary(gomock.Any(), token).Return(&entity.DailySummary{Date: monday, PointsToday: 30}, nil)
	summary, err := ms.DailySummary(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 30, summary.PointsToday)
}

func TestPurge(t *testing.T) {
	repo := repository.NewMemoryKVRepo()
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, service.PointsKey(testScope, monday), `{"total":1,"ledger":{"a":1}}`))
	ms := service.NewMaintenanceService(repo)

	n, err := ms.Purge(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = ms.Purge(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
