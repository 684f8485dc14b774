package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	dbm "tabi/internal/models/db_models"
	resp "tabi/internal/models/response_models"
)

func TestMemoryTravelRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTravelRepository()
	user := uuid.New()

	first := &dbm.Travel{UserID: user, Title: "京都"}
	second := &dbm.Travel{UserID: user, Title: "沖縄"}
	other := &dbm.Travel{UserID: uuid.New(), Title: "札幌"}
	for _, tr := range []*dbm.Travel{first, second, other} {
		require.NoError(t, repo.Create(ctx, tr))
		assert.NotEqual(t, uuid.Nil, tr.ID)
	}

	t.Run("lists the user's travels newest first", func(t *testing.T) {
		list, err := repo.ListByUser(ctx, user)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "沖縄", list[0].Title)
		assert.Equal(t, "京都", list[1].Title)
	})

	t.Run("returns copies", func(t *testing.T) {
		got, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		got.Title = "changed"

		again, _ := repo.FindByID(ctx, first.ID)
		assert.Equal(t, "京都", again.Title)
	})

	t.Run("update and delete", func(t *testing.T) {
		got, _ := repo.FindByID(ctx, first.ID)
		got.Title = "京都・大阪"
		require.NoError(t, repo.Update(ctx, got))

		again, _ := repo.FindByID(ctx, first.ID)
		assert.Equal(t, "京都・大阪", again.Title)

		require.NoError(t, repo.Delete(ctx, first.ID))
		gone, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("update of unknown travel fails", func(t *testing.T) {
		assert.Error(t, repo.Update(ctx, &dbm.Travel{BaseModel: dbm.BaseModel{ID: uuid.New()}}))
	})
}

func TestMemoryTravelRepository_CopiesReferenceFields(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTravelRepository()

	travel := &dbm.Travel{
		UserID:    uuid.New(),
		Interests: []string{"a", "b"},
		Schedule:  datatypes.NewJSONType([]resp.PlanDay{{Day: "Day 1"}}),
	}
	require.NoError(t, repo.Create(ctx, travel))
	travel.Interests[0] = "caller"

	got, err := repo.FindByID(ctx, travel.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, []string(got.Interests))

	got.Interests[1] = "x"
	got.Schedule.Data()[0].Day = "changed"

	again, _ := repo.FindByID(ctx, travel.ID)
	assert.Equal(t, []string{"a", "b"}, []string(again.Interests))
	assert.Equal(t, "Day 1", again.Schedule.Data()[0].Day)

	listed, _ := repo.ListByUser(ctx, travel.UserID)
	require.Len(t, listed, 1)
	listed[0].Interests[0] = "y"

	again, _ = repo.FindByID(ctx, travel.ID)
	assert.Equal(t, "a", again.Interests[0])
}

func TestMemoryTripItemRepository_CopiesReferenceFields(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTripItemRepository[dbm.RoomAssignment, *dbm.RoomAssignment]()
	travelID := uuid.New()

	room := &dbm.RoomAssignment{RoomName: "ルームA", Members: []string{"花子", "太郎"}}
	room.SetTravelID(travelID)
	require.NoError(t, repo.Create(ctx, room))

	got, err := repo.FindByID(ctx, travelID, room.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	got.Members[0] = "次郎"

	again, _ := repo.FindByID(ctx, travelID, room.ID)
	assert.Equal(t, "花子", again.Members[0])
}

func TestMemoryTripItemRepository_Ordering(t *testing.T) {
	ctx := context.Background()
	travelID := uuid.New()

	t.Run("schedules by date", func(t *testing.T) {
		repo := NewMemoryTripItemRepository[dbm.Schedule, *dbm.Schedule]()
		for _, d := range []string{"2025-05-03", "2025-05-01", "2025-05-02"} {
			s := &dbm.Schedule{Date: d}
			s.SetTravelID(travelID)
			require.NoError(t, repo.Create(ctx, s))
		}

		list, err := repo.List(ctx, travelID, nil)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "2025-05-01", list[0].Date)
		assert.Equal(t, "2025-05-03", list[2].Date)
	})

	t.Run("packing items oldest first", func(t *testing.T) {
		repo := NewMemoryTripItemRepository[dbm.PackingItem, *dbm.PackingItem]()
		for _, n := range []string{"パスポート", "充電器"} {
			p := &dbm.PackingItem{Name: n}
			p.SetTravelID(travelID)
			require.NoError(t, repo.Create(ctx, p))
		}

		list, _ := repo.List(ctx, travelID, nil)
		require.Len(t, list, 2)
		assert.Equal(t, "パスポート", list[0].Name)
	})

	t.Run("places newest first", func(t *testing.T) {
		repo := NewMemoryTripItemRepository[dbm.Place, *dbm.Place]()
		for _, n := range []string{"金閣寺", "清水寺"} {
			p := &dbm.Place{Name: n}
			p.SetTravelID(travelID)
			require.NoError(t, repo.Create(ctx, p))
		}

		list, _ := repo.List(ctx, travelID, nil)
		require.Len(t, list, 2)
		assert.Equal(t, "清水寺", list[0].Name)
	})
}

func TestMemoryTripItemRepository_Scoping(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTripItemRepository[dbm.Note, *dbm.Note]()
	travelA, travelB := uuid.New(), uuid.New()
	alice, bob := uuid.New(), uuid.New()

	add := func(travel, user uuid.UUID, title string) *dbm.Note {
		n := &dbm.Note{Title: title}
		n.SetTravelID(travel)
		n.SetUserID(user)
		require.NoError(t, repo.Create(ctx, n))
		return n
	}
	aliceNote := add(travelA, alice, "集合場所")
	add(travelA, bob, "持ち物")
	add(travelB, alice, "別の旅行")

	list, _ := repo.List(ctx, travelA, &alice)
	require.Len(t, list, 1)
	assert.Equal(t, "集合場所", list[0].Title)

	all, _ := repo.List(ctx, travelA, nil)
	assert.Len(t, all, 2)

	got, err := repo.FindByID(ctx, travelB, aliceNote.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "lookups are scoped to the travel")

	require.NoError(t, repo.DeleteByTravel(ctx, travelA))
	all, _ = repo.List(ctx, travelA, nil)
	assert.Empty(t, all)
	rest, _ := repo.List(ctx, travelB, nil)
	assert.Len(t, rest, 1)
}

func TestMemoryAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	acc := &dbm.Account{Name: "Hana", Email: "Hana@Example.com", PasswordHash: "x"}
	require.NoError(t, repo.InsertTx(acc, ctx))

	found, err := repo.FindByEmail(ctx, "hana@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, acc.ID, found.ID)

	byID, err := repo.FindById(ctx, acc.ID.String())
	require.NoError(t, err)
	require.NotNil(t, byID)

	missing, err := repo.FindById(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Error(t, repo.InsertTx(&dbm.Account{Email: "hana@example.com"}, ctx))
}
