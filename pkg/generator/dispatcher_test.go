package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shouni/canon-forge-kit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDispatcher(t *testing.T) {
	_, err := NewDispatcher(nil)
	assert.Error(t, err)

	d, err := NewDispatcher(&mockProvider{})
	require.NoError(t, err)
	assert.Equal(t, "mock", d.ProviderName())
}

func TestDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("シードとサイズを正規化して1回だけ呼び出す", func(t *testing.T) {
		p := &mockProvider{}
		d, _ := NewDispatcher(p)

		res, err := d.Dispatch(ctx, "a prompt", -42, "3:4")

		require.NoError(t, err)
		require.Len(t, p.calls, 1)
		assert.Equal(t, int32(42), p.calls[0].Seed)
		assert.Equal(t, "3:4", p.calls[0].AspectRatio)
		assert.Equal(t, 768, p.calls[0].Width)
		assert.Equal(t, 1024, p.calls[0].Height)
		assert.Equal(t, "a prompt", res.Prompt)
	})

	t.Run("未知の比率は 16:9 になる", func(t *testing.T) {
		p := &mockProvider{}
		d, _ := NewDispatcher(p)

		_, err := d.Dispatch(ctx, "x", 1, "5:4")

		require.NoError(t, err)
		assert.Equal(t, "16:9", p.calls[0].AspectRatio)
		assert.Equal(t, 1024, p.calls[0].Width)
		assert.Equal(t, 576, p.calls[0].Height)
	})

	t.Run("分類済みエラーはそのまま返し、リトライしない", func(t *testing.T) {
		blocked := NewError(KindSafetyBlocked, "blocked", nil)
		p := &mockProvider{generateFunc: func(ctx context.Context, req ProviderRequest) (*domain.GenerationResult, error) {
			return nil, blocked
		}}
		d, _ := NewDispatcher(p)

		res, err := d.Dispatch(ctx, "x", 1, "16:9")

		assert.Nil(t, res)
		assert.Same(t, blocked, err)
		assert.Len(t, p.calls, 1)
	})

	t.Run("未分類エラーは TRANSPORT になる", func(t *testing.T) {
		p := &mockProvider{generateFunc: func(ctx context.Context, req ProviderRequest) (*domain.GenerationResult, error) {
			return nil, errors.New("dial tcp: refused")
		}}
		d, _ := NewDispatcher(p)

		_, err := d.Dispatch(ctx, "x", 1, "16:9")

		assert.ErrorIs(t, err, ErrTransport)
		assert.Len(t, p.calls, 1)
	})

	t.Run("空の結果は NO_RESULT", func(t *testing.T) {
		p := &mockProvider{generateFunc: func(ctx context.Context, req ProviderRequest) (*domain.GenerationResult, error) {
			return &domain.GenerationResult{}, nil
		}}
		d, _ := NewDispatcher(p)

		_, err := d.Dispatch(ctx, "x", 1, "16:9")

		assert.ErrorIs(t, err, ErrNoResult)
	})

	t.Run("呼び出し側の期限切れは TRANSPORT として扱う", func(t *testing.T) {
		p := &mockProvider{generateFunc: func(ctx context.Context, req ProviderRequest) (*domain.GenerationResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}}
		d, _ := NewDispatcher(p)
		tctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()

		_, err := d.Dispatch(tctx, "x", 1, "16:9")

		assert.ErrorIs(t, err, ErrTransport)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("結果のプロンプトは送信したものになる", func(t *testing.T) {
		p := &mockProvider{generateFunc: func(ctx context.Context, req ProviderRequest) (*domain.GenerationResult, error) {
			return &domain.GenerationResult{URL: "https://x/y.png"}, nil
		}}
		d, _ := NewDispatcher(p)

		res, err := d.Dispatch(ctx, "exact text", 1, "16:9")

		require.NoError(t, err)
		assert.Equal(t, "exact text", res.Prompt)
		assert.Equal(t, "https://x/y.png", res.URL)
	})
}
