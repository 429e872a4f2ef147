package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

func TestServer_handleAnimate(t *testing.T) {
	ctx := context.Background()

	t.Run("saves merge and reports", func(t *testing.T) {
		model := &mockModelService{
			result: &domain.MergeResult{
				Data:      []byte("glTF-merged"),
				Path:      "/out/abc.glb",
				Animation: domain.RemoteRef("https://example.com/walk.glb"),
				Report: domain.MergeReport{
					ChannelsMatched: 3,
					ChannelsSkipped: 2,
					Unmatched: []domain.UnmatchedJoint{
						{Animation: "walk", Joint: "Tail"},
						{Animation: "walk", Joint: "Tail"},
					},
				},
			},
		}
		server, err := NewServer(&Ports{Model: model})
		require.NoError(t, err)

		input := AnimateInput{Avatar: "https://example.com/me.glb"}
		_, output, err := server.handleAnimate(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "/out/abc.glb", output.Path)
		assert.Equal(t, "https://example.com/walk.glb", output.Animation)
		assert.Equal(t, len("glTF-merged"), output.ByteLength)
		assert.Equal(t, 3, output.ChannelsMatched)
		assert.Equal(t, 2, output.ChannelsSkipped)
		assert.Equal(t, []string{"Tail"}, output.Unmatched)

		assert.Equal(t, domain.RemoteRef("https://example.com/me.glb"), model.lastRequest.Avatar)
		assert.True(t, model.lastRequest.Animation.IsZero())
	})

	t.Run("local refs are parsed", func(t *testing.T) {
		model := &mockModelService{result: &domain.MergeResult{}}
		server, err := NewServer(&Ports{Model: model})
		require.NoError(t, err)

		_, _, err = server.handleAnimate(ctx, nil, AnimateInput{Avatar: "me.glb", Animation: "file:///clips/walk.glb"})
		require.NoError(t, err)

		assert.Equal(t, domain.LocalRef("me.glb"), model.lastRequest.Avatar)
		assert.Equal(t, domain.LocalRef("/clips/walk.glb"), model.lastRequest.Animation)
	})

	t.Run("missing avatar", func(t *testing.T) {
		server, err := NewServer(&Ports{Model: &mockModelService{}})
		require.NoError(t, err)

		_, _, err = server.handleAnimate(ctx, nil, AnimateInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "avatar is required")
	})

	t.Run("returns classified error", func(t *testing.T) {
		server, err := NewServer(&Ports{Model: &mockModelService{err: domain.ErrNoSkin}})
		require.NoError(t, err)

		_, _, err = server.handleAnimate(ctx, nil, AnimateInput{Avatar: "me.glb"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNoSkin)
		assert.Contains(t, err.Error(), domain.ErrorKind(domain.ErrNoSkin))
	})
}

func TestServer_handleInspect(t *testing.T) {
	ctx := context.Background()

	t.Run("returns summary", func(t *testing.T) {
		model := &mockModelService{
			summary: &domain.AssetSummary{
				Version:    "2.0",
				ByteLength: 1024,
				Nodes:      4,
				Skins:      1,
				Joints:     []string{"Hips", "Spine"},
				Animations: []domain.AnimationSummary{{Name: "walk", Channels: 6, Samplers: 6}},
			},
		}
		server, err := NewServer(&Ports{Model: model})
		require.NoError(t, err)

		_, output, err := server.handleInspect(ctx, nil, InspectInput{Ref: "https://example.com/me.glb"})

		require.NoError(t, err)
		assert.Equal(t, "2.0", output.Version)
		assert.Equal(t, 1024, output.ByteLength)
		assert.Equal(t, []string{"Hips", "Spine"}, output.Joints)
		require.Len(t, output.Animations, 1)
		assert.Equal(t, AnimationOutput{Name: "walk", Channels: 6}, output.Animations[0])
		assert.Equal(t, domain.RemoteRef("https://example.com/me.glb"), model.lastRef)
	})

	t.Run("missing ref", func(t *testing.T) {
		server, err := NewServer(&Ports{Model: &mockModelService{}})
		require.NoError(t, err)

		_, _, err = server.handleInspect(ctx, nil, InspectInput{})
		require.Error(t, err)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		server, err := NewServer(&Ports{Model: &mockModelService{err: domain.ErrFormat}})
		require.NoError(t, err)

		_, _, err = server.handleInspect(ctx, nil, InspectInput{Ref: "bad.glb"})
		assert.ErrorIs(t, err, domain.ErrFormat)
	})
}
