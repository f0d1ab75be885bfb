package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miroslava-go/miroslava/core/handler"
	"github.com/miroslava-go/miroslava/core/router"
)

func okView(ctx *handler.Context) any { return "ok" }

func TestRegisterDefaults(t *testing.T) {
	t.Parallel()

	table := router.NewTable()
	rule, err := table.Register("/hello", okView)
	require.NoError(t, err)

	assert.Equal(t, "/hello", rule.Pattern)
	assert.Equal(t, "/hello", rule.Endpoint)
	assert.True(t, rule.AllowsMethod("GET"))
	assert.True(t, rule.AllowsMethod("get"))
	assert.False(t, rule.AllowsMethod("POST"))
	assert.False(t, rule.IsDynamic())
}

func TestRegisterMethods(t *testing.T) {
	t.Parallel()

	table := router.NewTable()
	rule, err := table.Register("/submit", okView, router.WithMethods("post", "PUT"))
	require.NoError(t, err)

	assert.True(t, rule.AllowsMethod("POST"))
	assert.True(t, rule.AllowsMethod("PUT"))
	assert.False(t, rule.AllowsMethod("GET"))
}

func TestRegisterRejectsBadPattern(t *testing.T) {
	t.Parallel()

	table := router.NewTable()
	_, err := table.Register("no-slash", okView)
	require.ErrorIs(t, err, router.ErrInvalidPattern)
}

func TestRegisterDynamic(t *testing.T) {
	t.Parallel()

	table := router.NewTable()
	rule, err := table.Register("/item/<int:id>/tag/<name>", okView)
	require.NoError(t, err)
	assert.True(t, rule.IsDynamic())
}

func TestRegisterRejectsDuplicateParam(t *testing.T) {
	t.Parallel()

	table := router.NewTable()
	_, err := table.Register("/pair/<a>/<a>", okView)
	require.ErrorIs(t, err, router.ErrDuplicateParam)
}

func TestRegisterAliasStacking(t *testing.T) {
	t.Parallel()

	table := router.NewTable()
	_, err := table.Register("/wish", okView, router.WithEndpoint("wish"))
	require.NoError(t, err)

	// A nil view reuses the endpoint's existing one.
	_, err = table.Register("/wish/<to>", nil, router.WithEndpoint("wish"))
	require.NoError(t, err)

	view, ok := table.View("wish")
	require.True(t, ok)
	assert.NotNil(t, view)
	assert.Len(t, table.Rules(), 2)
}

func TestRegisterNilViewUnknownEndpoint(t *testing.T) {
	t.Parallel()

	table := router.NewTable()
	_, err := table.Register("/orphan", nil)
	require.ErrorIs(t, err, router.ErrNilView)
}

func TestRegisterLaterViewReplacesEndpoint(t *testing.T) {
	t.Parallel()

	table := router.NewTable()
	_, err := table.Register("/a", func(ctx *handler.Context) any { return "first" },
		router.WithEndpoint("shared"))
	require.NoError(t, err)
	_, err = table.Register("/b", func(ctx *handler.Context) any { return "second" },
		router.WithEndpoint("shared"))
	require.NoError(t, err)

	view, ok := table.View("shared")
	require.True(t, ok)
	assert.Equal(t, "second", view(handler.NewContext(nil, nil)))
}
