package impl

import (
	"context"
	"testing"

	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDonorService_Register_CreateError(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()

	fx.donorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Donor")).
		Return("", errors.New("firestore unavailable"))

	donor, err := fx.service.Register(ctx, "user-1", &usecase.RegisterDonorInput{Name: "Asha"})
	assert.Error(t, err)
	assert.Nil(t, donor)

	var storeErr *domainerrors.StoreExecuteError
	assert.True(t, errors.As(err, &storeErr))
	assert.Contains(t, storeErr.Message(), "firestore unavailable")
}

func TestDonorService_History_ListError(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()

	fx.donorRepo.EXPECT().
		ListByOwner(ctx, "user-1").
		Return(nil, errors.New("query failed"))

	donors, err := fx.service.History(ctx, "user-1")
	assert.Error(t, err)
	assert.Nil(t, donors)
}

func TestDonorService_Update_NotFound(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()

	fx.donorRepo.EXPECT().
		Update(ctx, "missing", mock.AnythingOfType("repository.DonorUpdate")).
		Return(repository.ErrDonorNotFound)

	err := fx.service.Update(ctx, "missing", &usecase.UpdateDonorInput{Name: strPtr("x")})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDonorNotFound))
}

func TestDonorService_Delete_StoreError(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()

	fx.donorRepo.EXPECT().
		Delete(ctx, "doc-1").
		Return(errors.New("delete failed"))

	err := fx.service.Delete(ctx, "doc-1")
	assert.Error(t, err)

	var storeErr *domainerrors.StoreExecuteError
	assert.True(t, errors.As(err, &storeErr))
}

func TestDonorService_PurgeHistory_StoreError(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()

	fx.donorRepo.EXPECT().
		DeleteByOwner(ctx, "user-1").
		Return(0, errors.New("batch failed"))

	deleted, err := fx.service.PurgeHistory(ctx, "user-1")
	assert.Error(t, err)
	assert.Zero(t, deleted)
}

func TestDonorService_ContactQR_NotFound(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()

	fx.donorRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrDonorNotFound)

	png, err := fx.service.ContactQR(ctx, "missing")
	assert.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrDonorNotFound))
}

func TestDonorService_ContactQR_GenerateError(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()

	fx.donorRepo.EXPECT().
		FindByID(ctx, "doc-1").
		Return(nil, errors.New("read failed"))

	png, err := fx.service.ContactQR(ctx, "doc-1")
	assert.Error(t, err)
	assert.Nil(t, png)
}
