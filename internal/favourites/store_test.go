package favourites

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/matt-dz/tripmeal/internal/database"
	"github.com/matt-dz/tripmeal/internal/dbmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func TestStoreRaw(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	db := dbmock.NewMockQuerier(ctrl)
	store := NewStore(db)

	db.EXPECT().GetUserFavourites(ctx, "null").Return(pgtype.Text{}, nil)
	raw, err := store.Raw(ctx, "null")
	require.NoError(t, err)
	assert.Empty(t, raw)

	db.EXPECT().GetUserFavourites(ctx, "ghost").Return(pgtype.Text{}, pgx.ErrNoRows)
	_, err = store.Raw(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	boom := errors.New("connection reset")
	db.EXPECT().GetUserFavourites(ctx, "flaky").Return(pgtype.Text{}, boom)
	_, err = store.Raw(ctx, "flaky")
	assert.ErrorIs(t, err, boom)
}

func TestStoreListAndContains(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	db := dbmock.NewMockQuerier(ctrl)
	store := NewStore(db)

	db.EXPECT().GetUserFavourites(ctx, "chef").Return(text("4,x,9"), nil).Times(3)

	ids, err := store.List(ctx, "chef")
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 9}, ids)

	ok, err := store.Contains(ctx, "chef", 9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Contains(ctx, "chef", 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreAdd(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	db := dbmock.NewMockQuerier(ctrl)
	store := NewStore(db)

	db.EXPECT().GetUserFavourites(ctx, "chef").Return(pgtype.Text{}, nil)
	db.EXPECT().UpdateUserFavourites(ctx, database.UpdateUserFavouritesParams{
		Favourites: text("12"),
		Username:   "chef",
	}).Return(nil)
	require.NoError(t, store.Add(ctx, "chef", 12))

	db.EXPECT().GetUserFavourites(ctx, "chef").Return(text("12"), nil)
	db.EXPECT().UpdateUserFavourites(ctx, database.UpdateUserFavouritesParams{
		Favourites: text("12,3"),
		Username:   "chef",
	}).Return(nil)
	require.NoError(t, store.Add(ctx, "chef", 3))
}

func TestStoreAddExistingSkipsWrite(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	db := dbmock.NewMockQuerier(ctrl)
	store := NewStore(db)

	db.EXPECT().GetUserFavourites(ctx, "chef").Return(text("12,3"), nil)
	require.NoError(t, store.Add(ctx, "chef", 3))
}

func TestStoreRemoveLastStoresNull(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	db := dbmock.NewMockQuerier(ctrl)
	store := NewStore(db)

	db.EXPECT().GetUserFavourites(ctx, "chef").Return(text("7"), nil)
	db.EXPECT().UpdateUserFavourites(ctx, database.UpdateUserFavouritesParams{
		Favourites: pgtype.Text{},
		Username:   "chef",
	}).Return(nil)
	require.NoError(t, store.Remove(ctx, "chef", 7))
}

func TestStoreUpdateFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	db := dbmock.NewMockQuerier(ctrl)
	store := NewStore(db)

	boom := errors.New("read only")
	db.EXPECT().GetUserFavourites(ctx, "chef").Return(text("1"), nil)
	db.EXPECT().UpdateUserFavourites(ctx, gomock.Any()).Return(boom)
	assert.ErrorIs(t, store.Add(ctx, "chef", 2), boom)
}
