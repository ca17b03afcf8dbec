package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/shouni/canon-forge-kit/internal/builder"
	"github.com/shouni/canon-forge-kit/pkg/domain"

	"github.com/spf13/cobra"
)

// generateOutput は生成系コマンドの出力です。
type generateOutput struct {
	Profile      any                   `json:"profile"`
	Image        domain.ReferenceImage `json:"image"`
	ExportedPath string                `json:"exportedPath,omitempty"`
}

// generateFlags は生成系コマンドで共通のフラグです。
type generateFlags struct {
	ID       string
	Random   bool
	Category string
	Save     bool
	Export   bool
}

func (f *generateFlags) bind(cmd *cobra.Command, defaultCategory domain.Category) {
	cmd.Flags().StringVar(&f.ID, "id", "", "保存済みプロファイルの ID なのだ。")
	cmd.Flags().BoolVarP(&f.Random, "random", "r", false, "プロファイルをランダムに作るのだ。")
	cmd.Flags().StringVarP(&f.Category, "category", "c", string(defaultCategory), "生成するカテゴリーなのだ。")
	cmd.Flags().BoolVar(&f.Save, "save", false, "生成後にプロファイルを保存するのだ。")
	cmd.Flags().BoolVar(&f.Export, "export", false, "生成した画像を --output-dir に書き出すのだ。")
}

func (f *generateFlags) category() domain.Category {
	return domain.Category(strings.ToUpper(f.Category))
}

func newCharacterCmd(opts *rootOptions) *cobra.Command {
	var (
		flags   generateFlags
		profile domain.CharacterProfile
	)

	cmd := &cobra.Command{
		Use:   "character",
		Short: "キャラクターの参照画像を1枚生成するのだ。",
		Long: `保存済みのキャラクター (--id)、ランダム (--random)、またはフラグで指定した外見から参照画像を生成するのだ。
カテゴリー: HEADSHOT, BODY_REVERSE, WARDROBE, ACTION, EXPRESSION, NEUTRAL_SHEET`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := opts.buildApp(ctx)
			if err != nil {
				return err
			}
			ws := app.Workspace

			switch {
			case flags.ID != "":
				if _, err := ws.SelectCharacter(ctx, flags.ID); err != nil {
					return err
				}
			case flags.Random:
				ws.RandomizeCharacter()
			default:
				ws.UpdateCharacter(profile)
			}

			img, err := ws.GenerateCharacterImage(ctx, flags.category())
			if err != nil {
				return err
			}
			current := ws.Snapshot().Character
			if flags.Save && !ws.SaveCharacter(ctx) {
				return fmt.Errorf("キャラクターの保存に失敗しました: %s", current.ID)
			}
			return finishGenerate(ctx, cmd, app, flags.Export, current, current.Name, img)
		},
	}

	flags.bind(cmd, domain.CategoryHeadshot)
	f := cmd.Flags()
	f.StringVar(&profile.Name, "name", "", "名前")
	f.StringVar(&profile.Age, "age", "", "年齢")
	f.StringVar(&profile.Gender, "gender", domain.DefaultGender, "性別")
	f.StringVar(&profile.Build, "build", "", "体格")
	f.StringVar(&profile.Eyes, "eyes", "", "目")
	f.StringVar(&profile.Hair, "hair", "", "髪")
	f.StringVar(&profile.SkinTone, "skin", "", "肌の色")
	f.StringVar(&profile.DistinctiveFeatures, "features", "", "特徴")
	f.StringVar(&profile.Personality, "personality", "", "性格")
	f.StringVar(&profile.Backstory, "backstory", "", "背景")
	f.StringVar(&profile.Aesthetic, "aesthetic", domain.DefaultAesthetic, "美術様式")
	cmd.MarkFlagsMutuallyExclusive("id", "random")
	return cmd
}

func newSetCmd(opts *rootOptions) *cobra.Command {
	var (
		flags    generateFlags
		profile  domain.SetProfile
		location string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "セット（舞台）の参照画像を1枚生成するのだ。",
		Long: `保存済みのセット (--id)、ランダム (--random)、またはフラグで指定した環境から参照画像を生成するのだ。
カテゴリー: WIDE, MEDIUM, POV, DETAIL, PLAN, LIGHTING`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := opts.buildApp(ctx)
			if err != nil {
				return err
			}
			ws := app.Workspace

			switch {
			case flags.ID != "":
				if _, err := ws.SelectSet(ctx, flags.ID); err != nil {
					return err
				}
			case flags.Random:
				ws.RandomizeSet()
			default:
				profile.LocationType = domain.LocationType(location)
				ws.UpdateSet(profile)
			}

			img, err := ws.GenerateSetImage(ctx, flags.category())
			if err != nil {
				return err
			}
			current := ws.Snapshot().Set
			if flags.Save && !ws.SaveSet(ctx) {
				return fmt.Errorf("セットの保存に失敗しました: %s", current.ID)
			}
			return finishGenerate(ctx, cmd, app, flags.Export, current, current.Name, img)
		},
	}

	flags.bind(cmd, domain.CategoryWide)
	f := cmd.Flags()
	f.StringVar(&profile.Name, "name", "", "セット名")
	f.StringVar(&location, "location", string(domain.LocationIndoor), "Indoor | Outdoor")
	f.StringVar(&profile.Lighting, "lighting", "", "照明")
	f.StringVar(&profile.Ambiance, "ambiance", "", "雰囲気")
	f.StringVar(&profile.Style, "style", "", "美術様式")
	f.StringVar(&profile.Details, "details", "", "詳細")
	cmd.MarkFlagsMutuallyExclusive("id", "random")
	return cmd
}

func newCompositeCmd(opts *rootOptions) *cobra.Command {
	var (
		characterID string
		setID       string
		cfg         domain.CompositeConfig
		random      bool
		export      bool
	)

	cmd := &cobra.Command{
		Use:   "composite",
		Short: "保存済みのキャラクターをセットに配置した画像を生成するのだ。",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := opts.buildApp(ctx)
			if err != nil {
				return err
			}
			ws := app.Workspace

			if _, err := ws.SelectCharacter(ctx, characterID); err != nil {
				return err
			}
			if _, err := ws.SelectSet(ctx, setID); err != nil {
				return err
			}
			if random {
				ws.RandomizeComposite()
			} else {
				ws.UpdateComposite(cfg)
			}

			img, err := ws.GenerateCompositeImage(ctx)
			if err != nil {
				return err
			}
			state := ws.Snapshot()
			return finishGenerate(ctx, cmd, app, export, state.Composite, state.Character.Name, img)
		},
	}

	f := cmd.Flags()
	f.StringVar(&characterID, "character-id", "", "保存済みキャラクターの ID なのだ。")
	f.StringVar(&setID, "set-id", "", "保存済みセットの ID なのだ。")
	f.StringVar(&cfg.Action, "action", "", "キャラクターの動作")
	f.StringVar(&cfg.ExtraActors, "extras", "", "ほかの登場人物")
	f.StringVar(&cfg.CompositionStyle, "style", domain.DefaultCompositionStyle, "構図")
	f.BoolVarP(&random, "random", "r", false, "動作と登場人物をランダムに選ぶのだ。")
	f.BoolVar(&export, "export", false, "生成した画像を --output-dir に書き出すのだ。")
	_ = cmd.MarkFlagRequired("character-id")
	_ = cmd.MarkFlagRequired("set-id")
	return cmd
}

// finishGenerate は必要なら画像を書き出し、結果を JSON で出力します。
func finishGenerate(ctx context.Context, cmd *cobra.Command, app *builder.AppContext, export bool, profile any, prefix string, img domain.ReferenceImage) error {
	out := generateOutput{Profile: profile, Image: img}
	if export {
		path, err := app.Exporter.Export(ctx, app.Config.OutputDir, prefix, img)
		if err != nil {
			return fmt.Errorf("画像の書き出しに失敗しました: %w", err)
		}
		out.ExportedPath = path
	}
	return printJSON(cmd.OutOrStdout(), out)
}
