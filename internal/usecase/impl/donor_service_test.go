package impl

import (
	"context"
	"testing"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/service"
	mockRepo "lifeline/internal/mocks/repository"
	mockSvc "lifeline/internal/mocks/service"
	"lifeline/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type donorServiceFixture struct {
	donorRepo *mockRepo.MockDonorRepository
	qrSvc     *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
	service   usecase.DonorUsecase
}

func createTestDonorService(t *testing.T) *donorServiceFixture {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	qrSvc := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return &donorServiceFixture{
		donorRepo: donorRepo,
		qrSvc:     qrSvc,
		publisher: publisher,
		service:   NewDonorService(donorRepo, qrSvc, publisher, newDiscardLogger()),
	}
}

func TestDonorService_Register(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	input := &usecase.RegisterDonorInput{
		Name:       "Asha Kumari",
		Address:    "12 Park Road",
		Mobile:     "9876543210",
		Age:        "26",
		BloodGroup: "A+",
	}

	fx.donorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Donor")).
		Run(func(_ context.Context, donor *entity.Donor) {
			donor.ID = "doc-1"
		}).
		Return("doc-1", nil)

	fx.publisher.EXPECT().
		PublishDonorEvent(ctx, mock.AnythingOfType("*service.DonorEvent")).
		Run(func(_ context.Context, event *service.DonorEvent) {
			assert.Equal(t, service.EventDonorRegistered, event.Type)
			assert.Equal(t, "doc-1", event.DonorID)
			assert.Equal(t, "user-1", event.OwnerID)
			assert.Equal(t, "A+", event.BloodGroup)
		}).
		Return(nil)

	donor, err := fx.service.Register(ctx, "user-1", input)
	require.NoError(t, err)
	require.NotNil(t, donor)
	assert.Equal(t, "doc-1", donor.ID)
	assert.Equal(t, "Asha Kumari", donor.Name)
	assert.Equal(t, "user-1", donor.OwnerID)
}

func TestDonorService_Register_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	input := &usecase.RegisterDonorInput{Name: "Rahul", BloodGroup: "B-"}

	fx.donorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Donor")).
		Return("doc-2", nil)

	fx.publisher.EXPECT().
		PublishDonorEvent(ctx, mock.AnythingOfType("*service.DonorEvent")).
		Return(assert.AnError)

	donor, err := fx.service.Register(ctx, "user-1", input)
	require.NoError(t, err)
	assert.NotNil(t, donor)
}

func TestDonorService_History(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	records := []*entity.Donor{
		{ID: "doc-2", Name: "Rahul"},
		{ID: "doc-1", Name: "Asha"},
	}

	fx.donorRepo.EXPECT().
		ListByOwner(ctx, "user-1").
		Return(records, nil)

	donors, err := fx.service.History(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, records, donors)
}

func TestDonorService_WatchHistory(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	snapshots := make(chan []*entity.Donor, 1)
	snapshots <- []*entity.Donor{{ID: "doc-1"}}
	close(snapshots)

	fx.donorRepo.EXPECT().
		WatchByOwner(ctx, "user-1").
		Return((<-chan []*entity.Donor)(snapshots), nil)

	ch, err := fx.service.WatchHistory(ctx, "user-1")
	require.NoError(t, err)

	first, ok := <-ch
	require.True(t, ok)
	assert.Len(t, first, 1)

	_, ok = <-ch
	assert.False(t, ok)
}

func TestDonorService_Update(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	input := &usecase.UpdateDonorInput{Name: strPtr("Asha Devi")}

	fx.donorRepo.EXPECT().
		Update(ctx, "doc-1", mock.AnythingOfType("repository.DonorUpdate")).
		Return(nil)

	err := fx.service.Update(ctx, "doc-1", input)
	assert.NoError(t, err)
}

func TestDonorService_Delete(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()

	fx.donorRepo.EXPECT().
		Delete(ctx, "doc-1").
		Return(nil)

	err := fx.service.Delete(ctx, "doc-1")
	assert.NoError(t, err)
}

func TestDonorService_PurgeHistory(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()

	fx.donorRepo.EXPECT().
		DeleteByOwner(ctx, "user-1").
		Return(3, nil)

	fx.publisher.EXPECT().
		PublishDonorEvent(ctx, mock.AnythingOfType("*service.DonorEvent")).
		Run(func(_ context.Context, event *service.DonorEvent) {
			assert.Equal(t, service.EventHistoryPurged, event.Type)
			assert.Equal(t, 3, event.Deleted)
		}).
		Return(nil)

	deleted, err := fx.service.PurgeHistory(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)
}

func TestDonorService_PurgeHistory_EmptyIsSuccess(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()

	fx.donorRepo.EXPECT().
		DeleteByOwner(ctx, "user-1").
		Return(0, nil)

	deleted, err := fx.service.PurgeHistory(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, deleted)
	fx.publisher.AssertNotCalled(t, "PublishDonorEvent", mock.Anything, mock.Anything)
}

func TestDonorService_ContactQR(t *testing.T) {
	fx := createTestDonorService(t)

	ctx := context.Background()
	donor := &entity.Donor{ID: "doc-1", Name: "Asha", BloodGroup: "A+", Mobile: "9876543210"}

	fx.donorRepo.EXPECT().
		FindByID(ctx, "doc-1").
		Return(donor, nil)

	fx.qrSvc.EXPECT().
		GenerateContactQR(donor).
		Return([]byte("png-bytes"), nil)

	png, err := fx.service.ContactQR(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}
