package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_MarshalJSON(t *testing.T) {
	data, err := json.Marshal([]Token{Run(1, 3), Line(7)})

	require.NoError(t, err)
	assert.JSONEq(t, `[[1,3],7]`, string(data))
}

func TestToken_UnmarshalJSON(t *testing.T) {
	var tokens []Token

	require.NoError(t, json.Unmarshal([]byte(`[[9,11], 4]`), &tokens))
	assert.Equal(t, []Token{Run(9, 11), Line(4)}, tokens)

	var bad Token
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`"x"`), &bad))
}

func TestToken_Expand(t *testing.T) {
	assert.Equal(t, []int{5}, Line(5).Expand())
	assert.Equal(t, []int{4, 5, 6}, Run(4, 6).Expand())
	assert.Equal(t, "[4,6]", Run(4, 6).String())
	assert.Equal(t, "5", Line(5).String())
	assert.False(t, Line(5).IsRun())
}
