package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/api/youtube/v3"

	"deps.me/ytup/internal/auth"
	"deps.me/ytup/internal/config"
)

// loadConfig reads the optional config file named by the persistent
// --config flag.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// authService resolves the client secret, builds the credential manager
// for the flags on cmd, and returns an authenticated YouTube service.
// Configuration errors surface here, before any network activity.
func authService(cmd *cobra.Command, cfg config.Config, scopes ...string) (*youtube.Service, error) {
	ctx := cmd.Context()

	flagSecret, _ := cmd.Flags().GetString("client-secret")
	secretPath := cfg.ResolveClientSecret(flagSecret)
	if secretPath == "" {
		return nil, fmt.Errorf("client secret not configured: pass --client-secret, set client_secret in the config file, or set %s", config.EnvClientSecret)
	}
	if !strings.HasPrefix(secretPath, "gs://") {
		if _, err := os.Stat(secretPath); err != nil {
			return nil, fmt.Errorf("client secret file: %w", err)
		}
	}

	secret, err := auth.ReadClientSecret(ctx, secretPath)
	if err != nil {
		return nil, fmt.Errorf("reading client secret: %w", err)
	}
	oauthCfg, err := auth.OAuthConfig(secret, scopes...)
	if err != nil {
		return nil, err
	}

	tokenFlag, _ := cmd.Flags().GetString("token-file")
	store := auth.NewFileStore(cfg.ResolveTokenFile(tokenFlag))

	var authorizer auth.Authorizer = auth.LocalCallback{Out: cmd.OutOrStdout()}
	if manual, _ := cmd.Flags().GetBool("manual-auth"); manual {
		authorizer = auth.ManualCode{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
	}

	mgr := auth.NewManager(oauthCfg, store, authorizer, auth.WithOutput(cmd.OutOrStdout()))
	return mgr.Service(ctx)
}
