package generator

import "github.com/shouni/canon-forge-kit/pkg/domain"

const cacheKeyResolved = "resolved:"

// Dimensions はプロバイダーに渡す出力サイズです。
type Dimensions struct {
	Width  int
	Height int
}

var aspectDimensions = map[string]Dimensions{
	domain.AspectSquare:    {Width: 1024, Height: 1024},
	domain.AspectPortrait:  {Width: 768, Height: 1024},
	domain.AspectLandscape: {Width: 1024, Height: 768},
	domain.AspectTall:      {Width: 576, Height: 1024},
	domain.AspectWide:      {Width: 1024, Height: 576},
}

// ResolveDimensions はアスペクト比を出力サイズに変換します。
// 未知の比率は 16:9 として扱い、失敗にはしないのだ。
func ResolveDimensions(aspectRatio string) (string, Dimensions) {
	if d, ok := aspectDimensions[aspectRatio]; ok {
		return aspectRatio, d
	}
	return domain.AspectWide, aspectDimensions[domain.AspectWide]
}

// ProviderRequest は正規化済みの生成リクエストです。
type ProviderRequest struct {
	Prompt      string
	Seed        int32
	AspectRatio string
	Width       int
	Height      int
}

// ResolvedImage は参照先から取り出した画像データです。
type ResolvedImage struct {
	Data     []byte
	MimeType string
}
