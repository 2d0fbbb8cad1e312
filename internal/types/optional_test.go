package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionalAbsentNullValue(t *testing.T) {
	var body struct {
		Title    Optional[string]  `json:"title"`
		Price    Optional[float64] `json:"price"`
		Featured Optional[bool]    `json:"featured"`
	}

	err := json.Unmarshal([]byte(`{"title":"SEO Basics","price":null}`), &body)
	assert.NoError(t, err)

	assert.True(t, body.Title.Set)
	assert.False(t, body.Title.Null)
	assert.Equal(t, "SEO Basics", body.Title.Value)

	assert.True(t, body.Price.Set)
	assert.True(t, body.Price.Null)

	assert.False(t, body.Featured.Set)
}

func TestOptionalApply(t *testing.T) {
	var body struct {
		Title Optional[string]  `json:"title"`
		Price Optional[float64] `json:"price"`
		Level Optional[string]  `json:"level"`
	}
	err := json.Unmarshal([]byte(`{"title":"New","price":null}`), &body)
	assert.NoError(t, err)

	updates := map[string]any{}
	body.Title.Apply(updates, "title")
	body.Price.Apply(updates, "price")
	body.Level.Apply(updates, "level")

	assert.Equal(t, "New", updates["title"])
	val, present := updates["price"]
	assert.True(t, present)
	assert.Nil(t, val)
	_, present = updates["level"]
	assert.False(t, present)
}

func TestFlexUint64(t *testing.T) {
	var v struct {
		ID FlexUint64 `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(`{"id":42}`), &v))
	assert.Equal(t, uint64(42), v.ID.Uint64())

	assert.NoError(t, json.Unmarshal([]byte(`{"id":"17"}`), &v))
	assert.Equal(t, uint64(17), v.ID.Uint64())

	assert.Error(t, json.Unmarshal([]byte(`{"id":"abc"}`), &v))
}

func TestFlexList(t *testing.T) {
	type block struct {
		Field string `json:"field"`
	}

	var single struct {
		Blocks FlexList[block] `json:"blocks"`
	}
	assert.NoError(t, json.Unmarshal([]byte(`{"blocks":{"field":"headline"}}`), &single))
	assert.Len(t, single.Blocks.Slice(), 1)

	var many struct {
		Blocks FlexList[block] `json:"blocks"`
	}
	assert.NoError(t, json.Unmarshal([]byte(`{"blocks":[{"field":"a"},{"field":"b"}]}`), &many))
	assert.Len(t, many.Blocks.Slice(), 2)
}
