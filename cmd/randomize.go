package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRandomizeCmd(opts *rootOptions) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:       "randomize <character|set|composite>",
		Short:     "プロファイルをランダムに作って表示するのだ。",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"character", "set", "composite"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := opts.buildApp(ctx)
			if err != nil {
				return err
			}
			ws := app.Workspace
			out := cmd.OutOrStdout()

			switch args[0] {
			case "character":
				p := ws.RandomizeCharacter()
				if save && !ws.SaveCharacter(ctx) {
					return fmt.Errorf("キャラクターの保存に失敗しました: %s", p.ID)
				}
				return printJSON(out, p)
			case "set":
				p := ws.RandomizeSet()
				if save && !ws.SaveSet(ctx) {
					return fmt.Errorf("セットの保存に失敗しました: %s", p.ID)
				}
				return printJSON(out, p)
			default:
				return printJSON(out, ws.RandomizeComposite())
			}
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "作ったプロファイルを保存するのだ（composite は対象外）。")
	return cmd
}
