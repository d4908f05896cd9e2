package auth

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/youtube/v3"
)

const testClientSecret = `{
  "installed": {
    "client_id": "cid.apps.googleusercontent.com",
    "client_secret": "csecret",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "redirect_uris": ["http://localhost"]
  }
}`

func TestReadClientSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client_secret.json")
	require.NoError(t, os.WriteFile(path, []byte(testClientSecret), 0600))

	b, err := ReadClientSecret(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, testClientSecret, string(b))
}

func TestReadClientSecretMissingFile(t *testing.T) {
	_, err := ReadClientSecret(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadClientSecretBadBucketURL(t *testing.T) {
	_, err := ReadClientSecret(context.Background(), "gs://bucket-without-object")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid bucket URL")
}

func TestOAuthConfig(t *testing.T) {
	cfg, err := OAuthConfig([]byte(testClientSecret), youtube.YoutubeUploadScope)
	require.NoError(t, err)

	assert.Equal(t, "cid.apps.googleusercontent.com", cfg.ClientID)
	assert.Equal(t, []string{youtube.YoutubeUploadScope}, cfg.Scopes)
}

func TestOAuthConfigInvalid(t *testing.T) {
	_, err := OAuthConfig([]byte("not json"), youtube.YoutubeUploadScope)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing client secret")
}
