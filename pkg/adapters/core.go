package adapters

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shouni/canon-forge-kit/pkg/generator"
	"google.golang.org/genai"
)

// authNotFoundMessage は認証情報に紐づくエンティティが見つからない場合のメッセージです。
// 再認証フローに誘導するため、他の失敗とは区別するのだ。
const authNotFoundMessage = "Requested entity was not found"

var safetyFinishReasons = map[genai.FinishReason]bool{
	genai.FinishReasonSafety:                 true,
	genai.FinishReasonImageSafety:            true,
	genai.FinishReasonProhibitedContent:      true,
	genai.FinishReasonImageProhibitedContent: true,
	genai.FinishReasonBlocklist:              true,
	genai.FinishReasonSPII:                   true,
}

// ParseToDataURI は Gemini のレスポンスを解析して data URI に変換します。
// 安全フィルターによるブロックは SAFETY_BLOCKED、画像がなければ NO_RESULT を返します。
func ParseToDataURI(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", generator.NewError(generator.KindNoResult, "Model produced no result.", nil)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" &&
		resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
		return "", generator.NewError(generator.KindSafetyBlocked,
			fmt.Sprintf("prompt blocked (BlockReason: %s)", resp.PromptFeedback.BlockReason), nil)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", generator.NewError(generator.KindNoResult, "Model produced no result.", nil)
	}

	// 現在の仕様では、Geminiからの最初の候補 (Candidate) のみを利用する。
	candidate := resp.Candidates[0]
	if safetyFinishReasons[candidate.FinishReason] {
		return "", generator.NewError(generator.KindSafetyBlocked,
			fmt.Sprintf("画像生成が安全フィルターで停止しました (FinishReason: %s)", candidate.FinishReason), nil)
	}

	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mimeType := part.InlineData.MIMEType
			if mimeType == "" {
				mimeType = http.DetectContentType(part.InlineData.Data)
			}
			return ToDataURI(mimeType, part.InlineData.Data), nil
		}
	}

	return "", generator.NewError(generator.KindNoResult,
		fmt.Sprintf("No image data found (FinishReason: %s)", candidate.FinishReason), nil)
}

// ToDataURI はバイト列を data:<mime>;base64,<payload> 形式に変換します。
func ToDataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// classifyGeminiError は SDK のエラーを分類付きエラーに変換します。
func classifyGeminiError(err error) error {
	if isAuthError(err) {
		return generator.NewError(generator.KindAuthRequired, "Gemini API の再認証が必要です", err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return generator.NewError(generator.KindTransport, "Gemini API の呼び出しが中断されました", err)
	}
	return generator.NewError(generator.KindTransport, "Gemini API の呼び出しに失敗しました", err)
}

func isAuthError(err error) bool {
	if strings.Contains(err.Error(), authNotFoundMessage) {
		return true
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusUnauthorized ||
			apiErr.Status == "UNAUTHENTICATED" ||
			strings.Contains(apiErr.Message, authNotFoundMessage)
	}
	return false
}
