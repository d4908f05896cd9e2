// Package cli wires the cobra command surface for ytup.
package cli

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"deps.me/ytup/internal/auth"
	"deps.me/ytup/internal/config"
	"deps.me/ytup/internal/uploader"
)

const version = "0.1.0"

const authRemediation = `Interactive authorization could not complete.
If this machine cannot open a browser or serve a local callback, rerun
with --manual-auth and enter the authorization code from another device.`

// NewRootCmd builds the ytup command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ytup",
		Short: "Upload videos to YouTube from the command line",
		Long: `ytup authenticates against the YouTube Data API via OAuth2 and
uploads a video file with an accompanying JSON metadata document,
reporting progress along the way.

The OAuth2 client secret path is resolved from --client-secret, the
client_secret key of the config file, or the ` + config.EnvClientSecret + `
environment variable, in that order. Obtained credentials are cached in
the token file between runs.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML config file")
	root.PersistentFlags().String("client-secret", "", "Path to the OAuth2 client secret JSON file (local or gs://)")
	root.PersistentFlags().String("token-file", "", "Path to the cached credential file")
	root.PersistentFlags().Bool("manual-auth", false, "Use the manual-code OAuth flow instead of a local browser callback")

	root.AddCommand(newUploadCmd(), newStatusCmd())
	return root
}

// Execute runs the CLI and terminates the process on failure. Classified
// upload failures and refused authorizations exit with code 1 after their
// remediation text; anything else is fatal with default behavior.
func Execute() {
	err := NewRootCmd().Execute()
	if err == nil {
		return
	}

	var authErr *auth.Error
	var upErr *uploader.Error
	switch {
	case errors.As(err, &authErr):
		fmt.Fprintf(os.Stderr, "%v\n\n%s\n", err, authRemediation)
		os.Exit(1)
	case errors.As(err, &upErr):
		// Banner and remediation were printed by the upload driver.
		os.Exit(1)
	default:
		log.Fatalf("ytup: %v", err)
	}
}
