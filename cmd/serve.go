package cmd

import (
	"github.com/shouni/canon-forge-kit/internal/server"

	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "編集セッションを JSON API として公開するのだ。",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := opts.buildApp(ctx)
			if err != nil {
				return err
			}
			if port != "" {
				app.Config.Port = port
			}
			return server.Run(ctx, app)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "待ち受けポート（省略時は PORT 環境変数）なのだ。")
	return cmd
}
