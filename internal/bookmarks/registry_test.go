package bookmarks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name    string
	enabled bool
	marks   []Bookmark
	err     error
}

func (f *fakeProvider) Name() string    { return f.name }
func (f *fakeProvider) IsEnabled() bool { return f.enabled }
func (f *fakeProvider) Configure(config map[string]interface{}) error {
	f.enabled = true
	return nil
}
func (f *fakeProvider) GetBookmarks(ctx context.Context) ([]Bookmark, error) {
	return f.marks, f.err
}

func TestRegistryRegisterDuplicate(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(&fakeProvider{name: "a"}))
	err := registry.Register(&fakeProvider{name: "a"})
	assert.Error(t, err, "duplicate registration should fail")
}

func TestRegistryGetEnabledOrder(t *testing.T) {
	registry := NewRegistry()

	first := &fakeProvider{name: "first", enabled: true}
	second := &fakeProvider{name: "second", enabled: false}
	third := &fakeProvider{name: "third", enabled: true}

	require.NoError(t, registry.Register(first))
	require.NoError(t, registry.Register(second))
	require.NoError(t, registry.Register(third))

	enabled := registry.GetEnabled()
	require.Len(t, enabled, 2)
	assert.Equal(t, "first", enabled[0].Name())
	assert.Equal(t, "third", enabled[1].Name())

	assert.Equal(t, []string{"first", "second", "third"}, registry.List())
}

func TestRegistryConfigureUnknown(t *testing.T) {
	registry := NewRegistry()

	err := registry.Configure("missing", ProviderConfig{Name: "missing"})
	assert.Error(t, err)
}

func TestRegistryCollect(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(&fakeProvider{
		name:    "one",
		enabled: true,
		marks:   []Bookmark{{Title: "a", URL: "https://a.example"}},
	}))
	require.NoError(t, registry.Register(&fakeProvider{
		name:    "two",
		enabled: true,
		marks:   []Bookmark{{Title: "b", URL: "https://b.example"}},
	}))

	marks, err := registry.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, marks, 2)
	assert.Equal(t, "a", marks[0].Title, "provider order should be preserved")
	assert.Equal(t, "b", marks[1].Title)
}

func TestRegistryCollectEmpty(t *testing.T) {
	registry := NewRegistry()

	marks, err := registry.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, marks, "no providers should yield an empty set, not an error")
}

func TestRegistryCollectProviderError(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(&fakeProvider{
		name:    "broken",
		enabled: true,
		err:     errors.New("backing store unavailable"),
	}))

	_, err := registry.Collect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
