package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 50, p.Offset())

	first := Params{Page: 1, PerPage: 50}
	assert.Equal(t, 0, first.Offset())
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "member_created_at",
		"email":      "member_email",
	}

	p := Params{SortBy: "email", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY member_email ASC", clause)

	// unknown key falls back to the default column
	p = Params{SortBy: "member_email; DROP TABLE members", SortOrder: "desc"}
	clause, err = p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY member_created_at DESC", clause)

	_, err = Params{}.SafeOrderClause(map[string]string{}, "missing")
	assert.Error(t, err)
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, Params{Page: 2, PerPage: 25})
	assert.Equal(t, 5, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	require.NotNil(t, meta.NextPage)
	assert.Equal(t, 3, *meta.NextPage)
	require.NotNil(t, meta.PrevPage)
	assert.Equal(t, 1, *meta.PrevPage)

	empty := BuildMeta(0, Params{Page: 1, PerPage: 25})
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
	assert.Nil(t, empty.NextPage)
}
