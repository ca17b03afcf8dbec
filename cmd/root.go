package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shouni/canon-forge-kit/internal/builder"
	"github.com/shouni/canon-forge-kit/internal/config"
	"github.com/shouni/canon-forge-kit/internal/logging"

	"github.com/spf13/cobra"
)

// rootOptions は全サブコマンド共通のフラグです。空の値は環境変数の設定を使うのだ。
type rootOptions struct {
	Provider   string
	ImageModel string
	StoreDir   string
	OutputDir  string
	LogLevel   string
}

// config は環境変数の設定にフラグの指定を上書きして返します。
func (o *rootOptions) config() *config.Config {
	cfg := config.LoadConfig()
	if o.Provider != "" {
		cfg.Provider = o.Provider
	}
	if o.ImageModel != "" {
		cfg.GeminiImageModel = o.ImageModel
	}
	if o.StoreDir != "" {
		cfg.StoreDir = o.StoreDir
	}
	if o.OutputDir != "" {
		cfg.OutputDir = o.OutputDir
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	return cfg
}

func (o *rootOptions) buildApp(ctx context.Context) (*builder.AppContext, error) {
	return builder.BuildAppContext(ctx, o.config())
}

// newRootCmd はサブコマンドをすべて登録したルートコマンドを返します。
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "canon-forge",
		Short: "キャラクターとセットの同一性を保ったまま参照画像を生成するのだ。",
		Long: `シード値と外見記述を固定したプロンプトで、キャラクターやセットの参照画像を作り続けるツールなのだ。
プロバイダーは CANON_PROVIDER (gemini | pollinations) か --provider で起動時に選ぶのだ。`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.config()
			slog.SetDefault(logging.New(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel), cfg.LogNoTime))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.Provider, "provider", "", "画像生成プロバイダー (gemini | pollinations) なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", "", "使用する Gemini 画像モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.StoreDir, "store-dir", "", "保存済みプロファイルの置き場所（ローカル or gs://...）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", "", "書き出す画像の保存先（ローカル or gs://...）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "ログレベル (debug | info | warn | error) なのだ。")

	rootCmd.AddCommand(
		newCharacterCmd(opts),
		newSetCmd(opts),
		newCompositeCmd(opts),
		newSheetCmd(opts),
		newRandomizeCmd(opts),
		newProfilesCmd(opts),
		newServeCmd(opts),
	)
	return rootCmd
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
