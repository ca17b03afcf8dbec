package builder

import (
	"context"
	"fmt"

	"github.com/shouni/canon-forge-kit/internal/config"
	"github.com/shouni/canon-forge-kit/pkg/generator"
	"github.com/shouni/canon-forge-kit/pkg/runner"
	"github.com/shouni/canon-forge-kit/pkg/store"
	"github.com/shouni/canon-forge-kit/pkg/workspace"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-http-kit/pkg/httpkit"
)

// AppContext はアプリケーションの依存関係を保持します。
// CLI とサーバーの両方がここから必要なコンポーネントを取り出すのだ。
type AppContext struct {
	Config      *config.Config
	IO          *RoutedIO
	Dispatcher  *generator.Dispatcher
	Generator   generator.ImageGenerator
	Store       *store.ProfileStore
	Workspace   *workspace.Workspace
	SheetRunner *runner.SheetRunner
	Exporter    *runner.Exporter
	Resolver    *generator.Resolver
}

// BuildAppContext は設定からプロバイダーと I/O を選び、依存関係を組み立てます。
// プロバイダーの選択はプロセス起動時の一度だけなのだ。
func BuildAppContext(ctx context.Context, cfg *config.Config) (*AppContext, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 1. プロバイダーとディスパッチャー
	provider, err := BuildProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	dispatcher, err := generator.NewDispatcher(provider)
	if err != nil {
		return nil, fmt.Errorf("ディスパッチャーの初期化に失敗しました: %w", err)
	}
	canon, err := generator.NewCanonGenerator(dispatcher)
	if err != nil {
		return nil, fmt.Errorf("ジェネレーターの初期化に失敗しました: %w", err)
	}
	// リクエスト期限は呼び出し境界で付与する
	gen := generator.WithTimeout(canon, cfg.RequestTimeout)

	// 2. I/O インフラ (ローカル or GCS)
	rio, err := BuildIO(ctx, cfg.StoreDir, cfg.OutputDir)
	if err != nil {
		return nil, err
	}

	// 3. 保存済みコレクションと作業状態
	profiles, err := store.NewProfileStore(rio, rio, cfg.StoreDir)
	if err != nil {
		return nil, fmt.Errorf("プロファイルストアの初期化に失敗しました: %w", err)
	}
	ws, err := workspace.New(gen, profiles)
	if err != nil {
		return nil, fmt.Errorf("ワークスペースの初期化に失敗しました: %w", err)
	}
	ws.Refresh(ctx)

	// 4. 参照シートと書き出し
	sheet, err := runner.NewSheetRunner(gen, cfg.RateInterval, cfg.Concurrency)
	if err != nil {
		return nil, fmt.Errorf("SheetRunner の初期化に失敗しました: %w", err)
	}
	resolver, err := BuildResolver(cfg, rio)
	if err != nil {
		return nil, err
	}
	exporter, err := runner.NewExporter(resolver, rio)
	if err != nil {
		return nil, fmt.Errorf("Exporter の初期化に失敗しました: %w", err)
	}

	return &AppContext{
		Config:      cfg,
		IO:          rio,
		Dispatcher:  dispatcher,
		Generator:   gen,
		Store:       profiles,
		Workspace:   ws,
		SheetRunner: sheet,
		Exporter:    exporter,
		Resolver:    resolver,
	}, nil
}

// BuildResolver は生成結果のロケーターを解決する Resolver を構築します。
func BuildResolver(cfg *config.Config, reader generator.RemoteReader) (*generator.Resolver, error) {
	httpClient := httpkit.New(cfg.HTTPTimeout)
	imgCache := cache.New(cfg.CacheTTL, cfg.CacheTTL*2)

	resolver, err := generator.NewResolver(httpClient, reader, imgCache, cfg.CacheTTL)
	if err != nil {
		return nil, fmt.Errorf("Resolver の初期化に失敗しました: %w", err)
	}
	return resolver, nil
}
