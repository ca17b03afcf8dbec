package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/canon-forge-kit/internal/builder"
	"github.com/shouni/canon-forge-kit/pkg/domain"
	"github.com/shouni/canon-forge-kit/pkg/generator"
	"github.com/shouni/canon-forge-kit/pkg/runner"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// sheetEntry はカテゴリ1件分の出力です。
type sheetEntry struct {
	Category     domain.Category `json:"category"`
	URL          string          `json:"url,omitempty"`
	Prompt       string          `json:"prompt,omitempty"`
	Kind         string          `json:"kind,omitempty"`
	Error        string          `json:"error,omitempty"`
	ExportedPath string          `json:"exportedPath,omitempty"`
}

type sheetFlags struct {
	Categories []string
	Export     bool
}

func newSheetCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "保存済みプロファイルの全カテゴリをまとめて生成するのだ。",
	}
	cmd.AddCommand(newSheetCharacterCmd(opts), newSheetSetCmd(opts))
	return cmd
}

func newSheetCharacterCmd(opts *rootOptions) *cobra.Command {
	var flags sheetFlags
	cmd := &cobra.Command{
		Use:   "character <id>",
		Short: "キャラクターの参照シートを生成するのだ。",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := opts.buildApp(ctx)
			if err != nil {
				return err
			}
			p, ok := app.Store.FindCharacter(ctx, args[0])
			if !ok {
				return fmt.Errorf("キャラクターが見つかりません: %s", args[0])
			}

			results, runErr := app.SheetRunner.RunCharacterSheet(ctx, p, parseCategories(flags.Categories))
			return reportSheet(ctx, cmd, app, flags.Export, p.Name, results, runErr)
		},
	}
	bindSheetFlags(cmd, &flags)
	return cmd
}

func newSheetSetCmd(opts *rootOptions) *cobra.Command {
	var flags sheetFlags
	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "セットの参照シートを生成するのだ。",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := opts.buildApp(ctx)
			if err != nil {
				return err
			}
			p, ok := app.Store.FindSet(ctx, args[0])
			if !ok {
				return fmt.Errorf("セットが見つかりません: %s", args[0])
			}

			results, runErr := app.SheetRunner.RunSetSheet(ctx, p, parseCategories(flags.Categories))
			return reportSheet(ctx, cmd, app, flags.Export, p.Name, results, runErr)
		},
	}
	bindSheetFlags(cmd, &flags)
	return cmd
}

func bindSheetFlags(cmd *cobra.Command, flags *sheetFlags) {
	cmd.Flags().StringSliceVarP(&flags.Categories, "categories", "c", nil, "生成するカテゴリー（省略時は全カテゴリ）なのだ。")
	cmd.Flags().BoolVar(&flags.Export, "export", false, "成功した画像を --output-dir に書き出すのだ。")
}

func parseCategories(values []string) []domain.Category {
	return lo.Map(values, func(v string, _ int) domain.Category {
		return domain.Category(strings.ToUpper(strings.TrimSpace(v)))
	})
}

// reportSheet は結果を出力します。書き出しの失敗はそのカテゴリのエラーとして記録するのだ。
func reportSheet(ctx context.Context, cmd *cobra.Command, app *builder.AppContext, export bool, prefix string, results []runner.SheetResult, runErr error) error {
	if results == nil && runErr != nil {
		return runErr
	}

	entries := make([]sheetEntry, 0, len(results))
	for _, res := range results {
		entry := sheetEntry{Category: res.Category}
		if res.Err != nil {
			entry.Kind = string(generator.KindOf(res.Err))
			entry.Error = res.Err.Error()
			entries = append(entries, entry)
			continue
		}
		entry.URL = res.Image.URL
		entry.Prompt = res.Image.Prompt
		if export {
			path, err := app.Exporter.Export(ctx, app.Config.OutputDir, prefix, res.Image)
			if err != nil {
				slog.WarnContext(ctx, "画像の書き出しに失敗しました", "category", res.Category, "error", err)
				entry.Kind = string(generator.KindOf(err))
				entry.Error = err.Error()
			}
			entry.ExportedPath = path
		}
		entries = append(entries, entry)
	}

	if err := printJSON(cmd.OutOrStdout(), entries); err != nil {
		return err
	}
	return runErr
}
