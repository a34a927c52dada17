package favourites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   []int64
	}{
		{name: "empty", stored: "", want: nil},
		{name: "blank", stored: "  ", want: nil},
		{name: "single", stored: "5", want: []int64{5}},
		{name: "ordered", stored: "3,7,5", want: []int64{3, 7, 5}},
		{name: "empty tokens", stored: ",3,,7,", want: []int64{3, 7}},
		{name: "malformed tokens", stored: "3,abc,7", want: []int64{3, 7}},
		{name: "duplicates", stored: "3,7,3", want: []int64{3, 7}},
		{name: "padded", stored: "3, 7", want: []int64{3, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.stored)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdd(t *testing.T) {
	assert.Equal(t, "5", Add("", 5))
	assert.Equal(t, "3,7,5", Add("3,7", 5))
	assert.Equal(t, "3,7", Add("3,7", 7))
	assert.Equal(t, "5", Add("garbage", 5))
}

func TestAddIsIdempotent(t *testing.T) {
	for _, s := range []string{"", "1", "1,2,3", "4,,x", "2,2"} {
		once := Add(s, 2)
		assert.Equal(t, once, Add(once, 2), "stored=%q", s)
	}
}

func TestRemove(t *testing.T) {
	assert.Equal(t, "3,5", Remove("3,7,5", 7))
	assert.Equal(t, "", Remove("7", 7))
	assert.Equal(t, "3,7", Remove("3,7", 9))
	assert.Equal(t, "", Remove("", 9))
}

func TestRemoveThenContains(t *testing.T) {
	for _, s := range []string{"", "1", "1,2,3", "2,2,2", "x,2", "2,,2"} {
		assert.False(t, Contains(Remove(s, 2), 2), "stored=%q", s)
	}
}

func TestRoundTrip(t *testing.T) {
	require.True(t, Contains(Add("", 5), 5))

	added := Add("3,7", 5)
	require.True(t, Contains(added, 3))
	assert.ElementsMatch(t, []int64{3, 7, 5}, Parse(added))
}

func TestContainsEmpty(t *testing.T) {
	assert.False(t, Contains("", 1))
	assert.False(t, Contains(",,,", 1))
}
