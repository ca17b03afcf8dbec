package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/canon-forge-kit/pkg/domain"
	"github.com/shouni/canon-forge-kit/pkg/generator"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// SheetResult はカテゴリ1件分の生成結果です。Err が nil なら Image が入ります。
type SheetResult struct {
	Category domain.Category
	Image    domain.ReferenceImage
	Err      error
}

// SheetRunner はプロファイルの全カテゴリを並列に生成するランナーです。
// 失敗したカテゴリは結果に記録し、ほかのカテゴリは続行します。リトライはしないのだ。
type SheetRunner struct {
	generator   generator.ImageGenerator
	interval    time.Duration
	concurrency int
	now         func() time.Time
}

// NewSheetRunner は SheetRunner を初期化します。interval が 0 ならレート制限なしです。
func NewSheetRunner(gen generator.ImageGenerator, interval time.Duration, concurrency int) (*SheetRunner, error) {
	if gen == nil {
		return nil, fmt.Errorf("generator is required")
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &SheetRunner{
		generator:   gen,
		interval:    interval,
		concurrency: concurrency,
		now:         time.Now,
	}, nil
}

// RunCharacterSheet はキャラクターの指定カテゴリ (空なら全カテゴリ) を生成します。
func (r *SheetRunner) RunCharacterSheet(ctx context.Context, p domain.CharacterProfile, categories []domain.Category) ([]SheetResult, error) {
	if len(categories) == 0 {
		categories = domain.CharacterCategories
	}
	for _, c := range categories {
		if !c.IsCharacter() {
			return nil, fmt.Errorf("unknown character category: %s", c)
		}
	}
	return r.run(ctx, categories, func(ctx context.Context, c domain.Category) (*domain.GenerationResult, error) {
		return r.generator.GenerateCharacterImage(ctx, p, c)
	})
}

// RunSetSheet はセットの指定カテゴリ (空なら全カテゴリ) を生成します。
func (r *SheetRunner) RunSetSheet(ctx context.Context, p domain.SetProfile, categories []domain.Category) ([]SheetResult, error) {
	if len(categories) == 0 {
		categories = domain.SetCategories
	}
	for _, c := range categories {
		if !c.IsSet() {
			return nil, fmt.Errorf("unknown set category: %s", c)
		}
	}
	return r.run(ctx, categories, func(ctx context.Context, c domain.Category) (*domain.GenerationResult, error) {
		return r.generator.GenerateSetImage(ctx, p, c)
	})
}

// run は結果を入力カテゴリ順で返します。AUTH_REQUIRED が出たら残りを中断してエラーを返すのだ。
func (r *SheetRunner) run(ctx context.Context, categories []domain.Category, gen func(context.Context, domain.Category) (*domain.GenerationResult, error)) ([]SheetResult, error) {
	results := make([]SheetResult, len(categories))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.concurrency)

	var limiter *rate.Limiter
	if r.interval > 0 {
		limiter = rate.NewLimiter(rate.Every(r.interval), 2)
	}

	for i, c := range categories {
		eg.Go(func() error {
			results[i].Category = c
			if limiter != nil {
				if err := limiter.Wait(egCtx); err != nil {
					results[i].Err = generator.NewError(generator.KindTransport, "rate limiter wait aborted", err)
					return nil
				}
			}

			res, err := gen(egCtx, c)
			if err != nil {
				results[i].Err = err
				slog.WarnContext(egCtx, "カテゴリの生成に失敗しました", "category", c, "kind", generator.KindOf(err), "error", err)
				if errors.Is(err, generator.ErrAuthRequired) {
					return err
				}
				return nil
			}

			results[i].Image = domain.NewReferenceImage(c, *res, r.now())
			slog.InfoContext(egCtx, "カテゴリの生成が完了しました", "category", c)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// NewestFirst は成功した画像を新しい順 (後に完了したカテゴリが先頭) で返します。
func NewestFirst(results []SheetResult) []domain.ReferenceImage {
	var images []domain.ReferenceImage
	for _, res := range results {
		if res.Err == nil {
			images = domain.PrependImage(images, res.Image)
		}
	}
	return images
}
