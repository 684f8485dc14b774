package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	dbm "tabi/internal/models/db_models"
	"tabi/internal/repositories"
	"tabi/pkg/utils"
)

type tripItemFixture struct {
	travels TravelServiceInterface
	owner   uuid.UUID
	travel  *dbm.Travel
}

func newTripItemFixture(t *testing.T) tripItemFixture {
	t.Helper()
	travels, _ := newTestTravelService()
	owner := uuid.New()
	travel, err := travels.Create(context.Background(), owner, kyotoTravel())
	require.NoError(t, err)
	return tripItemFixture{travels: travels, owner: owner, travel: travel}
}

func TestTripItemService_PackingItems(t *testing.T) {
	f := newTripItemFixture(t)
	svc := NewTripItemService(f.travels, repositories.NewMemoryTripItemRepository[dbm.PackingItem](), zap.NewNop())
	ctx := context.Background()

	first, err := svc.Create(ctx, f.owner, f.travel.ID, &dbm.PackingItem{Name: "パスポート", IsEssential: true})
	require.NoError(t, err)
	assert.Equal(t, f.travel.ID, first.TravelID)
	assert.Equal(t, 1, first.Quantity)

	_, err = svc.Create(ctx, f.owner, f.travel.ID, &dbm.PackingItem{Name: "充電器", Quantity: 2})
	require.NoError(t, err)

	_, err = svc.Create(ctx, f.owner, f.travel.ID, &dbm.PackingItem{Name: "傘", Quantity: -1})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	items, err := svc.List(ctx, f.owner, f.travel.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "パスポート", items[0].Name)
	assert.Equal(t, "充電器", items[1].Name)

	updated, err := svc.Update(ctx, f.owner, f.travel.ID, first.ID, []byte(`{"is_packed": true, "travel_id": "`+uuid.NewString()+`"}`))
	require.NoError(t, err)
	assert.True(t, updated.IsPacked)
	assert.True(t, updated.IsEssential)
	assert.Equal(t, f.travel.ID, updated.TravelID)
	assert.Equal(t, first.ID, updated.ID)

	require.NoError(t, svc.Delete(ctx, f.owner, f.travel.ID, first.ID))
	assert.ErrorIs(t, svc.Delete(ctx, f.owner, f.travel.ID, first.ID), utils.ErrNotFound)
}

func TestTripItemService_RequiresOwnedTravel(t *testing.T) {
	f := newTripItemFixture(t)
	svc := NewTripItemService(f.travels, repositories.NewMemoryTripItemRepository[dbm.Member](), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, uuid.New(), f.travel.ID, &dbm.Member{Name: "花子"})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = svc.List(ctx, f.owner, uuid.New())
	assert.ErrorIs(t, err, utils.ErrTravelNotFound)

	_, err = svc.Update(ctx, f.owner, f.travel.ID, uuid.New(), []byte(`{}`))
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = svc.Create(ctx, f.owner, f.travel.ID, &dbm.Member{Name: "太郎", Gender: "other"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestTripItemService_RejectedUpdateLeavesStoredItem(t *testing.T) {
	f := newTripItemFixture(t)
	svc := NewTripItemService(f.travels, repositories.NewMemoryTripItemRepository[dbm.Member](), zap.NewNop())
	ctx := context.Background()

	member, err := svc.Create(ctx, f.owner, f.travel.ID, &dbm.Member{Name: "花子", Preferences: []string{"温泉", "グルメ"}})
	require.NoError(t, err)

	_, err = svc.Update(ctx, f.owner, f.travel.ID, member.ID, []byte(`{"preferences": ["登山"], "gender": "other"}`))
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	members, err := svc.List(ctx, f.owner, f.travel.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, []string{"温泉", "グルメ"}, []string(members[0].Preferences))
	assert.Empty(t, members[0].Gender)
}

func TestTripItemService_NotesAreScopedToAuthor(t *testing.T) {
	f := newTripItemFixture(t)
	notes := repositories.NewMemoryTripItemRepository[dbm.Note]()
	svc := NewTripItemService(f.travels, notes, zap.NewNop())
	ctx := context.Background()

	mine, err := svc.Create(ctx, f.owner, f.travel.ID, &dbm.Note{Title: "集合場所"})
	require.NoError(t, err)
	assert.Equal(t, f.owner, mine.UserID)

	other := &dbm.Note{Title: "別の人のメモ"}
	other.TravelID = f.travel.ID
	other.UserID = uuid.New()
	require.NoError(t, notes.Create(ctx, other))

	listed, err := svc.List(ctx, f.owner, f.travel.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "集合場所", listed[0].Title)

	_, err = svc.Update(ctx, f.owner, f.travel.ID, other.ID, []byte(`{"title": "x"}`))
	assert.ErrorIs(t, err, utils.ErrForbidden)

	updated, err := svc.Update(ctx, f.owner, f.travel.ID, mine.ID, []byte(`{"is_pinned": true, "user_id": "`+uuid.NewString()+`"}`))
	require.NoError(t, err)
	assert.True(t, updated.IsPinned)
	assert.Equal(t, f.owner, updated.UserID)

	_, err = svc.Update(ctx, f.owner, f.travel.ID, mine.ID, []byte(`{"title": ""}`))
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestTripItemService_SchedulesByDate(t *testing.T) {
	f := newTripItemFixture(t)
	svc := NewTripItemService(f.travels, repositories.NewMemoryTripItemRepository[dbm.Schedule](), zap.NewNop())
	ctx := context.Background()

	for _, d := range []string{"2025-05-03", "2025-05-01", "2025-05-02"} {
		_, err := svc.Create(ctx, f.owner, f.travel.ID, &dbm.Schedule{Date: d})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, f.owner, f.travel.ID, &dbm.Schedule{Date: "5/4"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	schedules, err := svc.List(ctx, f.owner, f.travel.ID)
	require.NoError(t, err)
	require.Len(t, schedules, 3)
	assert.Equal(t, "2025-05-01", schedules[0].Date)
	assert.Equal(t, "2025-05-03", schedules[2].Date)
}
