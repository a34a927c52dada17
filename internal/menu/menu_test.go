package menu

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func pool(ids ...int64) map[int64]string {
	recipes := make(map[int64]string, len(ids))
	for _, id := range ids {
		recipes[id] = "recipe"
	}
	return recipes
}

func TestGenerateEmpty(t *testing.T) {
	assert.Empty(t, Generate(newRand(1), nil, nil))
	assert.Empty(t, Generate(newRand(1), map[int64]string{}, []int64{1, 2}))
}

func TestGenerateWithoutFavourites(t *testing.T) {
	recipes := pool(1, 2, 3)
	m := Generate(newRand(2), recipes, nil)

	require.Len(t, m, 7)
	assert.Zero(t, m.FavouriteCount())
	for i, e := range m {
		assert.Equal(t, Days[i], e.Day)
		assert.Contains(t, recipes, e.RecipeID)
	}
}

func TestGenerateFavouritesScenario(t *testing.T) {
	recipes := pool(1, 2, 3, 4, 5)

	for seed := uint64(0); seed < 50; seed++ {
		m := Generate(newRand(seed), recipes, []int64{2, 4})

		require.Len(t, m, 7)
		seenDays := map[string]bool{}
		var favs []int64
		for _, e := range m {
			assert.False(t, seenDays[e.Day], "day %s used twice", e.Day)
			seenDays[e.Day] = true
			assert.Contains(t, recipes, e.RecipeID)
			if e.Favourite {
				favs = append(favs, e.RecipeID)
			}
		}
		assert.ElementsMatch(t, []int64{2, 4}, favs)
	}
}

func TestGenerateFavouriteCounts(t *testing.T) {
	recipes := pool(1, 2, 3, 4, 5, 6, 7, 8, 9)

	for f := 0; f <= 7; f++ {
		favourites := make([]int64, f)
		for i := range favourites {
			favourites[i] = int64(i + 1)
		}

		m := Generate(newRand(uint64(f)), recipes, favourites)

		require.Len(t, m, 7)
		assert.Equal(t, f, m.FavouriteCount())
	}
}

func TestGenerateCapsFavouritesAtSevenDays(t *testing.T) {
	recipes := pool(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	favourites := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	m := Generate(newRand(3), recipes, favourites)

	require.Len(t, m, 7)
	assert.Equal(t, 7, m.FavouriteCount())
	seen := map[int64]bool{}
	for _, e := range m {
		assert.False(t, seen[e.RecipeID], "favourite %d repeated", e.RecipeID)
		seen[e.RecipeID] = true
	}
}

func TestGenerateSkipsUnresolvableFavourites(t *testing.T) {
	recipes := pool(1, 2)

	m := Generate(newRand(4), recipes, []int64{2, 99, 2})

	require.Len(t, m, 7)
	assert.Equal(t, 1, m.FavouriteCount())
	for _, e := range m {
		assert.NotEqual(t, int64(99), e.RecipeID)
	}
}

func TestGenerateCarriesTitles(t *testing.T) {
	recipes := map[int64]string{7: "Paella"}

	m := Generate(newRand(5), recipes, []int64{7})

	require.Len(t, m, 7)
	for _, e := range m {
		assert.Equal(t, "Paella", e.Title)
	}
}
