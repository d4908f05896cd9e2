package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/api/youtube/v3"

	"deps.me/ytup/internal/uploader"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status VIDEO_ID",
		Short: "Check the processing status of an uploaded video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			svc, err := authService(cmd, cfg, youtube.YoutubeReadonlyScope)
			if err != nil {
				return err
			}
			status, err := uploader.CheckStatus(cmd.Context(), svc, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Video %s status: %s\n", args[0], status)
			return nil
		},
	}
}
