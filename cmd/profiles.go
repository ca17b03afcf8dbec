package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var collectionArgs = []string{"characters", "sets"}

func newProfilesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "保存済みのキャラクターとセットを管理するのだ。",
	}

	listCmd := &cobra.Command{
		Use:       "list <characters|sets>",
		Short:     "保存済みプロファイルを一覧表示するのだ。",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: collectionArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := opts.buildApp(ctx)
			if err != nil {
				return err
			}
			if args[0] == "characters" {
				return printJSON(cmd.OutOrStdout(), app.Store.LoadCharacters(ctx))
			}
			return printJSON(cmd.OutOrStdout(), app.Store.LoadSets(ctx))
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <characters|sets> <id>",
		Short: "保存済みプロファイルを削除するのだ。",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := opts.buildApp(ctx)
			if err != nil {
				return err
			}

			var ok bool
			switch args[0] {
			case "characters":
				ok = app.Store.DeleteCharacter(ctx, args[1])
			case "sets":
				ok = app.Store.DeleteSet(ctx, args[1])
			default:
				return fmt.Errorf("invalid collection %q (want characters or sets)", args[0])
			}
			if !ok {
				return fmt.Errorf("削除内容の保存に失敗しました: %s", args[1])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %s\n", args[0], args[1])
			return nil
		},
	}

	cmd.AddCommand(listCmd, deleteCmd)
	return cmd
}
