package generator

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Resolver は生成結果のロケーター (data URI, http(s), gs://) を画像データに解決します。
// 生成処理そのものはロケーターを解決しないので、失敗を確かめたい呼び出し側だけが使うのだ。
type Resolver struct {
	httpClient HTTPClient
	reader     RemoteReader
	cache      ImageCacher
	expiration time.Duration
}

// NewResolver は依存関係を注入して Resolver を初期化します。
func NewResolver(httpClient HTTPClient, reader RemoteReader, cache ImageCacher, cacheTTL time.Duration) (*Resolver, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	// reader と cache は nil を許容（gs:// 非対応、キャッシュなし動作）
	return &Resolver{
		httpClient: httpClient,
		reader:     reader,
		cache:      cache,
		expiration: cacheTTL,
	}, nil
}

// Resolve はロケーターを画像データに変換します。
// 取得失敗は TRANSPORT、画像でないデータは NO_RESULT として返します。
func (r *Resolver) Resolve(ctx context.Context, locator string) (*ResolvedImage, error) {
	if strings.HasPrefix(locator, "data:") {
		return decodeDataURI(locator)
	}

	data, err := r.fetch(ctx, locator)
	if err != nil {
		return nil, err
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, NewError(KindNoResult, fmt.Sprintf("locator did not return an image (detected %s)", mimeType), nil)
	}
	return &ResolvedImage{Data: data, MimeType: mimeType}, nil
}

func (r *Resolver) fetch(ctx context.Context, locator string) ([]byte, error) {
	key := cacheKeyResolved + locator
	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			if data, ok := cached.([]byte); ok {
				return data, nil
			}
			slog.WarnContext(ctx, "キャッシュデータが不正な型です", "locator", locator, "type", fmt.Sprintf("%T", cached))
		}
	}

	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(locator, "gs://") {
		data, err = r.readRemote(ctx, locator)
	} else {
		if safe, serr := IsSafeURL(locator); serr != nil || !safe {
			return nil, NewError(KindTransport, "安全ではないURLが指定されました", serr)
		}
		data, err = r.httpClient.FetchBytes(ctx, locator)
	}
	if err != nil {
		return nil, NewError(KindTransport, "画像の取得に失敗しました", err)
	}

	if r.cache != nil {
		r.cache.Set(key, data, r.expiration)
	}
	return data, nil
}

func (r *Resolver) readRemote(ctx context.Context, uri string) ([]byte, error) {
	if r.reader == nil {
		return nil, fmt.Errorf("remote reader is not configured for %s", uri)
	}
	rc, err := r.reader.Open(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// decodeDataURI は data:<mime>;base64,<payload> 形式を復号します。
func decodeDataURI(uri string) (*ResolvedImage, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return nil, NewError(KindNoResult, "malformed data URI", nil)
	}
	mimeType, isBase64 := strings.CutSuffix(header, ";base64")
	if !isBase64 {
		return nil, NewError(KindNoResult, "data URI is not base64 encoded", nil)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, NewError(KindNoResult, "data URI payload is not valid base64", err)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, NewError(KindNoResult, fmt.Sprintf("data URI is not an image (%s)", mimeType), nil)
	}
	return &ResolvedImage{Data: data, MimeType: mimeType}, nil
}
