package cache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sword-picker/internal/versions"
)

func TestStoreAndLoadCatalog(t *testing.T) {
	c, err := NewCacheAt(t.TempDir())
	require.NoError(t, err)
	assert.False(t, c.IsCached())

	_, err = c.LoadCatalog()
	assert.True(t, errors.Is(err, ErrNotCached))
	_, err = c.Age()
	assert.True(t, errors.Is(err, ErrNotCached))

	in := versions.NewCatalog([]versions.Record{
		{Initials: "KJV", Name: "King James Version", LanguageCode: "en", Category: versions.CategoryBible},
		{Initials: "MHC", Name: "Matthew Henry", LanguageCode: "en", Category: versions.CategoryCommentary},
	}, []string{"KJV"}, "KJV")
	require.NoError(t, c.StoreCatalog(in))
	assert.True(t, c.IsCached())

	out, err := c.LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, in.Versions, out.Versions)
	assert.Equal(t, []string{"KJV"}, out.Featured)

	r, ok := out.Lookup("mhc")
	require.True(t, ok)
	assert.Equal(t, versions.CategoryCommentary, r.Category)

	require.NoError(t, c.Clear())
	assert.False(t, c.IsCached())
	require.NoError(t, c.Clear())
}
