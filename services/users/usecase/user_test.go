package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/yavijexpress/internal/pkg/apperrors"
	"github.com/piresc/yavijexpress/internal/pkg/logger"
	"github.com/piresc/yavijexpress/internal/pkg/models"
	"github.com/piresc/yavijexpress/services/users"
	"github.com/piresc/yavijexpress/services/users/mocks"
)

func newUserUC(t *testing.T) (users.UserUC, *mocks.MockUserRepo, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepo(ctrl)

	log, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)

	return NewUserUC(&models.Config{}, repo, log), repo, ctrl
}

func TestGetUser_Delegates(t *testing.T) {
	uc, repo, ctrl := newUserUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo.EXPECT().GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Name: "Budi"}, nil)

	user, err := uc.GetUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Budi", user.Name)
}

func TestPurgeUser_RequiresExistingUser(t *testing.T) {
	uc, repo, ctrl := newUserUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo.EXPECT().GetUserByID(gomock.Any(), userID).
		Return(nil, apperrors.NotFound("User not found"))

	err := uc.PurgeUser(context.Background(), userID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPurgeUser_Cascades(t *testing.T) {
	uc, repo, ctrl := newUserUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo.EXPECT().GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID}, nil)
	repo.EXPECT().PurgeUserData(gomock.Any(), userID).Return(nil)

	err := uc.PurgeUser(context.Background(), userID)
	require.NoError(t, err)
}

func TestPurgeUser_WrapsRepoError(t *testing.T) {
	uc, repo, ctrl := newUserUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo.EXPECT().GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID}, nil)
	repo.EXPECT().PurgeUserData(gomock.Any(), userID).
		Return(errors.New("tx failed"))

	err := uc.PurgeUser(context.Background(), userID)
	assert.Error(t, err)
	assert.False(t, apperrors.IsNotFound(err))
}
