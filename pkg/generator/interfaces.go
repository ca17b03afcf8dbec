package generator

import (
	"context"
	"io"
	"time"

	"github.com/shouni/canon-forge-kit/pkg/domain"
)

// Provider は画像生成サービスとの契約です。認証付き、キー不要のどちらも同じ形で差し替えられます。
type Provider interface {
	// Name はログやエラー表示に使う識別名を返します。
	Name() string
	// Generate は1回だけリクエストを送り、結果か分類付きエラーを返します。
	Generate(ctx context.Context, req ProviderRequest) (*domain.GenerationResult, error)
}

// RequestDispatcher はコンパイル済みプロンプトをプロバイダーへ送る窓口です。
type RequestDispatcher interface {
	Dispatch(ctx context.Context, prompt string, seed int64, aspectRatio string) (*domain.GenerationResult, error)
}

// ImageGenerator はビジネスロジック層が利用する統合窓口です。
type ImageGenerator interface {
	GenerateCharacterImage(ctx context.Context, profile domain.CharacterProfile, category domain.Category) (*domain.GenerationResult, error)
	GenerateSetImage(ctx context.Context, profile domain.SetProfile, category domain.Category) (*domain.GenerationResult, error)
	GenerateCompositeImage(ctx context.Context, character domain.CharacterProfile, set domain.SetProfile, cfg domain.CompositeConfig) (*domain.GenerationResult, error)
}

// ImageCacher は、画像をキャッシュするためのインターフェースです。
type ImageCacher interface {
	// Get は、指定されたキーに紐づくアイテムを取得します。
	Get(key string) (any, bool)
	// Set は、指定されたキーと値、有効期限でアイテムを保存します。
	Set(key string, value any, d time.Duration)
}

// HTTPClient は、HTTPリクエストを実行し、URLからデータを取得するためのインターフェースです。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// RemoteReader は gs:// などのリモートストレージを開くためのインターフェースです。
type RemoteReader interface {
	Open(ctx context.Context, uri string) (io.ReadCloser, error)
}
