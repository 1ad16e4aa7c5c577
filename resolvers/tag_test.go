package resolvers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMyTopTagsScopedToCaller(t *testing.T) {
	r := newTestResolver(t)
	alice := createUser(t, r.DB, "alice")
	bob := createUser(t, r.DB, "bob")

	aliceCard := publicCardInput("a card of alice")
	aliceCard.Tags = []string{"math"}
	createCard(t, r, alice, aliceCard)

	bobCard := publicCardInput("a card of bob")
	bobCard.Tags = []string{"history"}
	createCard(t, r, bob, bobCard)

	tags, err := r.MyTopTags(authCtx(alice))
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "math", tags[0].Name)
}

func TestTopTagsRequiresAuth(t *testing.T) {
	r := newTestResolver(t)

	_, err := r.TopTags(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSearchTags(t *testing.T) {
	r := newTestResolver(t)
	alice := createUser(t, r.DB, "alice")

	card := publicCardInput("a card about rome")
	card.Tags = []string{"history", "geography"}
	createCard(t, r, alice, card)

	tags, err := r.SearchTags(authCtx(alice), "histo")
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "history", tags[0].Name)
}

func TestSearchTagsRejectsNonWordTerms(t *testing.T) {
	r := newTestResolver(t)
	alice := createUser(t, r.DB, "alice")

	card := publicCardInput("a card about rome")
	card.Tags = []string{"history"}
	createCard(t, r, alice, card)

	for _, term := range []string{"hist%", "", "a b", "'; DROP TABLE tags;--"} {
		tags, err := r.SearchTags(authCtx(alice), term)
		require.NoError(t, err)
		assert.Empty(t, tags)
	}
}
