package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleProviderDisabledByDefault(t *testing.T) {
	sp := NewSampleProvider()
	assert.False(t, sp.IsEnabled())

	require.NoError(t, sp.Configure(nil))
	assert.True(t, sp.IsEnabled())
}

func TestSampleProviderBookmarks(t *testing.T) {
	sp := NewSampleProvider()
	require.NoError(t, sp.Configure(nil))

	marks, err := sp.GetBookmarks(context.Background())
	require.NoError(t, err)
	require.Len(t, marks, defaultSampleCount+1)

	for i := 0; i < defaultSampleCount; i++ {
		b := marks[i]
		n := i + 1

		assert.NotEmpty(t, b.Title)
		assert.NotEmpty(t, b.URL)
		assert.Equal(t, "sample", b.Source)

		if n%5 == 0 {
			assert.Equal(t, "Work", b.Folder)
		} else {
			assert.Equal(t, "Personal", b.Folder)
		}
		if n%2 == 0 {
			assert.Contains(t, b.Tags, "Technology")
		}
		if n%3 == 0 {
			assert.Contains(t, b.Tags, "News")
		}
	}

	last := marks[len(marks)-1]
	assert.Equal(t, "Google Drive API Docs", last.Title)
	assert.Equal(t, "https://developers.google.com/drive", last.URL)
	assert.Equal(t, "Dev", last.Folder)
}

func TestSampleProviderConfiguredCount(t *testing.T) {
	sp := NewSampleProvider()
	require.NoError(t, sp.Configure(map[string]interface{}{"count": float64(3)}))

	marks, err := sp.GetBookmarks(context.Background())
	require.NoError(t, err)
	assert.Len(t, marks, 4, "3 generated entries plus the fixed one")

	err = sp.Configure(map[string]interface{}{"count": float64(-1)})
	assert.Error(t, err)
}
