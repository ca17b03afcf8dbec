package domain

import "time"

// GenerationResult はプロバイダーが返す正規化済みの成功結果です。
// Prompt には実際に送信したプロンプトがそのまま入ります。
type GenerationResult struct {
	URL    string `json:"url"`
	Prompt string `json:"prompt"`
}

// ReferenceImage は生成に成功した画像の記録です。作成後は変更しません。
type ReferenceImage struct {
	ID        string    `json:"id"`
	Category  Category  `json:"category"`
	URL       string    `json:"url"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"timestamp"`
}

// NewReferenceImage は生成結果から参照画像を作成するのだ。
func NewReferenceImage(category Category, result GenerationResult, now time.Time) ReferenceImage {
	return ReferenceImage{
		ID:        NewID(),
		Category:  category,
		URL:       result.URL,
		Prompt:    result.Prompt,
		CreatedAt: now,
	}
}

// PrependImage は新しい画像を先頭に追加した新しいスライスを返します。
// 元のスライスは変更しません。
func PrependImage(images []ReferenceImage, img ReferenceImage) []ReferenceImage {
	out := make([]ReferenceImage, 0, len(images)+1)
	out = append(out, img)
	return append(out, images...)
}

// 生成リクエストで扱うアスペクト比です。
const (
	AspectSquare    = "1:1"
	AspectPortrait  = "3:4"
	AspectLandscape = "4:3"
	AspectTall      = "9:16"
	AspectWide      = "16:9"
)
