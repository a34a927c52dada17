// Package menu generates a random weekly menu.
package menu

import (
	"math/rand/v2"
	"slices"
)

// Days lists the menu days in calendar order.
var Days = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Entry assigns one recipe to one day.
type Entry struct {
	Day       string
	RecipeID  int64
	Title     string
	Favourite bool
}

// Menu holds at most one entry per day, ordered Monday to Sunday.
type Menu []Entry

// Generate fills the week from recipes, a map of recipe id to title.
//
// Favourites are placed first, each on a distinct random day and never
// twice. Favourites missing from recipes are skipped, and when there are
// more favourites than days only a random subset is used. The remaining days
// are filled with recipes drawn uniformly with replacement from the whole
// set. An empty recipe set yields an empty menu.
func Generate(r *rand.Rand, recipes map[int64]string, favourites []int64) Menu {
	days := slices.Clone(Days)
	byDay := make(map[string]Entry, len(days))

	favs := make([]int64, 0, len(favourites))
	for _, id := range favourites {
		if _, ok := recipes[id]; !ok || slices.Contains(favs, id) {
			continue
		}
		favs = append(favs, id)
	}

	for len(favs) > 0 && len(days) > 0 {
		i := r.IntN(len(favs))
		rid := favs[i]
		favs = slices.Delete(favs, i, i+1)

		day := pick(r, &days)
		byDay[day] = Entry{Day: day, RecipeID: rid, Title: recipes[rid], Favourite: true}
	}

	pool := make([]int64, 0, len(recipes))
	for id := range recipes {
		pool = append(pool, id)
	}
	slices.Sort(pool)

	if len(pool) > 0 {
		for len(days) > 0 {
			day := pick(r, &days)
			rid := pool[r.IntN(len(pool))]
			byDay[day] = Entry{Day: day, RecipeID: rid, Title: recipes[rid]}
		}
	}

	menu := make(Menu, 0, len(byDay))
	for _, day := range Days {
		if e, ok := byDay[day]; ok {
			menu = append(menu, e)
		}
	}
	return menu
}

// FavouriteCount reports how many entries came from the favourites pass.
func (m Menu) FavouriteCount() int {
	n := 0
	for _, e := range m {
		if e.Favourite {
			n++
		}
	}
	return n
}

// pick removes and returns a random element of days.
func pick(r *rand.Rand, days *[]string) string {
	i := r.IntN(len(*days))
	day := (*days)[i]
	*days = slices.Delete(*days, i, i+1)
	return day
}
