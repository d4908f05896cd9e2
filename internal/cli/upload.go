package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/api/youtube/v3"

	"deps.me/ytup/internal/uploader"
)

func newUploadCmd() *cobra.Command {
	var (
		videoFile    string
		metadataFile string
		progress     string
		deleteAfter  bool
	)

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a video with JSON metadata",
		Long: `Upload performs one resumable video upload. The metadata file is a
JSON object with at least "snippet" and "status" top-level keys and is
passed through verbatim as the request body.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			mode := uploader.Mode(cfg.ResolveProgress(progress))
			if mode != uploader.ModePercent && mode != uploader.ModeBar {
				return fmt.Errorf("invalid progress mode %q: want percent or bar", mode)
			}

			svc, err := authService(cmd, cfg, youtube.YoutubeUploadScope)
			if err != nil {
				return err
			}

			up := uploader.New(uploader.NewAPIService(svc),
				uploader.WithOutput(cmd.OutOrStdout()),
				uploader.WithMode(mode),
				uploader.WithDeleteAfter(deleteAfter),
			)
			return up.Upload(videoFile, metadataFile)
		},
	}

	cmd.Flags().StringVar(&videoFile, "video-file", "", "Path to the video file")
	cmd.Flags().StringVar(&metadataFile, "metadata-file", "", "Path to the JSON metadata file")
	cmd.Flags().StringVar(&progress, "progress", "", "Progress rendering: percent or bar")
	cmd.Flags().BoolVar(&deleteAfter, "delete-after", false, "Remove the video file after a successful upload")
	cmd.MarkFlagRequired("video-file")
	cmd.MarkFlagRequired("metadata-file")
	return cmd
}
