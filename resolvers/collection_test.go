package resolvers

import (
	"testing"

	"github.com/cardbin/cardbin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCollection(t *testing.T) {
	r := newTestResolver(t)
	alice := createUser(t, r.DB, "alice")

	first := createCard(t, r, alice, publicCardInput("the first card"))
	second := createCard(t, r, alice, publicCardInput("the second card"))

	description := "cards for the final"
	resp, err := r.CreateCollection(authCtx(alice), CreateCollectionInput{
		Name:        "exam prep",
		Description: &description,
		Flashcards:  []uint{first.ID, second.ID},
		Tags:        []string{"Math"},
		IsPublic:    true,
	})
	require.NoError(t, err)
	require.Empty(t, resp.Errors)
	require.NotNil(t, resp.Collection)

	assert.Equal(t, "exam prep", resp.Collection.Name)
	assert.Equal(t, description, resp.Collection.Description)
	assert.Len(t, resp.Collection.Flashcards, 2)
	require.Len(t, resp.Collection.Tags, 1)
	assert.Equal(t, "math", resp.Collection.Tags[0].Name)
}

func TestCreateCollectionPublicNeedsPublicCards(t *testing.T) {
	r := newTestResolver(t)
	alice := createUser(t, r.DB, "alice")

	public := createCard(t, r, alice, publicCardInput("a public card"))
	privateInput := publicCardInput("a private card")
	privateInput.IsPublic = false
	private := createCard(t, r, alice, privateInput)

	resp, err := r.CreateCollection(authCtx(alice), CreateCollectionInput{
		Name:       "mixed bag",
		Flashcards: []uint{public.ID, private.ID},
		Tags:       []string{"misc"},
		IsPublic:   true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "flashcards", resp.Errors[0].Field)
	assert.Equal(t, "Public collection must have all public flashcards!", resp.Errors[0].Message)
	assert.Nil(t, resp.Collection)

	var count int64
	require.NoError(t, r.DB.Model(&models.Collection{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateCollectionPrivateAllowsPrivateCards(t *testing.T) {
	r := newTestResolver(t)
	alice := createUser(t, r.DB, "alice")

	privateInput := publicCardInput("a private card")
	privateInput.IsPublic = false
	private := createCard(t, r, alice, privateInput)

	resp, err := r.CreateCollection(authCtx(alice), CreateCollectionInput{
		Name:       "just mine",
		Flashcards: []uint{private.ID},
		Tags:       []string{"misc"},
	})
	require.NoError(t, err)
	require.Empty(t, resp.Errors)
	require.NotNil(t, resp.Collection)
	assert.False(t, resp.Collection.IsPublic)
}

func TestCreateCollectionValidation(t *testing.T) {
	r := newTestResolver(t)
	alice := createUser(t, r.DB, "alice")

	resp, err := r.CreateCollection(authCtx(alice), CreateCollectionInput{
		Name: "no cards",
		Tags: []string{"misc"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "flashcards", resp.Errors[0].Field)
}
