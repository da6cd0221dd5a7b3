package service

import (
	"context"
	"testing"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/repository"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/store"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessageFixture(t *testing.T) (context.Context, MessageService) {
	t.Helper()
	repo := repository.NewMessageRepository(store.NewMemoryStore())
	return context.Background(), NewMessageService(repo)
}

func validMessage() *transfer.MessageCreation {
	return &transfer.MessageCreation{
		Content:     "Your home's exterior deserves a second life.",
		Subject:     string(models.SubjectExteriorHome),
		Tone:        string(models.ToneFriendly),
		CTA:         string(models.CTABookNow),
		Platform:    string(models.PlatformFacebook),
		ContentType: "promo",
		Hashtags:    []string{"#exteriorpainting"},
	}
}

func TestMessageCreateAndList(t *testing.T) {
	ctx, svc := newMessageFixture(t)

	id, err := svc.Create(ctx, "lumepaint", validMessage())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	msgs, err := svc.List(ctx, "lumepaint")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, models.SubjectExteriorHome, msgs[0].Subject)
	assert.Nil(t, msgs[0].LastUsed)

	msgs, err = svc.List(ctx, "npp")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestMessageCreate_Validation(t *testing.T) {
	ctx, svc := newMessageFixture(t)

	mc := validMessage()
	mc.Tone = "sarcastic"
	_, err := svc.Create(ctx, "npp", mc)
	assert.ErrorIs(t, err, ErrInvalidTag)

	mc = validMessage()
	mc.Content = ""
	_, err = svc.Create(ctx, "npp", mc)
	assert.Error(t, err)
}

func TestMessageUpdate_BrandScoped(t *testing.T) {
	ctx, svc := newMessageFixture(t)

	id, err := svc.Create(ctx, "npp", validMessage())
	require.NoError(t, err)

	content := "New season, new colors."
	found, err := svc.Update(ctx, "npp", id, &transfer.MessageUpdate{Content: &content})
	require.NoError(t, err)
	require.True(t, found)

	msgs, err := svc.List(ctx, "npp")
	require.NoError(t, err)
	assert.Equal(t, "New season, new colors.", msgs[0].Content)

	found, err = svc.Update(ctx, "lumepaint", id, &transfer.MessageUpdate{Content: &content})
	require.NoError(t, err)
	assert.False(t, found)

	found, err = svc.Remove(ctx, "lumepaint", id)
	require.NoError(t, err)
	assert.False(t, found)
}
