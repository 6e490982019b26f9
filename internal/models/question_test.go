package models

import (
	"testing"

	"gorm.io/datatypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionListPreservesOrder(t *testing.T) {
	raw, err := MarshalOptions([]Option{{Value: "b"}, {Value: "a"}, {Value: "c"}})
	require.NoError(t, err)

	q := Question{Options: raw}
	opts := q.OptionList()
	require.Len(t, opts, 3)
	assert.Equal(t, "b", opts[0].Value)
	assert.Equal(t, "a", opts[1].Value)
	assert.Equal(t, "c", opts[2].Value)
}

func TestOptionListBrokenColumn(t *testing.T) {
	q := Question{Options: datatypes.JSON(`not json`)}
	assert.Empty(t, q.OptionList())
	assert.False(t, q.HasOption("anything"))
}

func TestHasOption(t *testing.T) {
	raw, err := MarshalOptions([]Option{{Value: "4"}, {Value: "five"}})
	require.NoError(t, err)
	q := Question{Options: raw}

	assert.True(t, q.HasOption("4"))
	assert.True(t, q.HasOption("five"))
	assert.False(t, q.HasOption("Five"), "matching is verbatim")
	assert.False(t, q.HasOption(""))
}
