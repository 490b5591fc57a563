package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_Empty(t *testing.T) {
	assert := assert.New(t)
	b := New()
	assert.True(b.Empty())
	assert.Empty(b.SQL())
	assert.Empty(b.Args())
}

func TestBuilder_AddJoinsWithAnd(t *testing.T) {
	assert := assert.New(t)
	b := New().
		Add("user_id = ?", 7).
		Add("type = ?", "expense")
	assert.Equal("user_id = ? AND type = ?", b.SQL())
	assert.Equal([]any{7, "expense"}, b.Args())
}

func TestBuilder_AddIfSkipsWhenFalse(t *testing.T) {
	assert := assert.New(t)
	b := New().
		AddIf(false, "year = ?", 2024).
		AddIf(true, "month = ?", 6)
	assert.Equal("month = ?", b.SQL())
	assert.Equal([]any{6}, b.Args())
}

func TestBuilder_OrGroupsAndParenthesizes(t *testing.T) {
	assert := assert.New(t)
	loc := New().
		Add("LOWER(area) = LOWER(?)", "north").
		Add("LOWER(city) = LOWER(?)", "springfield")
	b := New().
		Add("id <> ?", 1).
		Or(loc)
	assert.Equal(
		"id <> ? AND (LOWER(area) = LOWER(?) OR LOWER(city) = LOWER(?))",
		b.SQL(),
	)
	assert.Equal([]any{1, "north", "springfield"}, b.Args())
}

func TestBuilder_OrIgnoresEmptyGroup(t *testing.T) {
	assert := assert.New(t)
	b := New().
		Add("banned = false").
		Or(New())
	assert.Equal("banned = false", b.SQL())
	assert.Empty(b.Args())
}

func TestBuilder_SingleOrConjunctStillParenthesized(t *testing.T) {
	assert := assert.New(t)
	b := New().Or(New().Add("city = ?", "nakuru"))
	assert.Equal("(city = ?)", b.SQL())
	assert.Equal([]any{"nakuru"}, b.Args())
}
