package auth

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// The URL scheme that represents a Google Storage bucket object.
const gsScheme = "gs://"

// ReadClientSecret reads the OAuth2 client secret document from either a
// local file or, when path carries the gs:// scheme, a Google Storage
// bucket object.
func ReadClientSecret(ctx context.Context, path string) ([]byte, error) {
	if strings.HasPrefix(path, gsScheme) {
		return readBucketObject(ctx, path)
	}
	return os.ReadFile(path)
}

// readBucketObject reads the contents of the Google Storage bucket object
// specified by a gs://<bucket_name>/<object_name> URL.
func readBucketObject(ctx context.Context, url string) ([]byte, error) {
	url = url[len(gsScheme):]
	sep := strings.IndexByte(url, '/')
	if sep == -1 {
		return nil, fmt.Errorf("invalid bucket URL %s%s", gsScheme, url)
	}

	clt, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot create storage client: %w", err)
	}
	r, err := clt.Bucket(url[:sep]).Object(url[sep+1:]).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot read bucket object: %w", err)
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read bucket object: %w", err)
	}
	return b, nil
}

// OAuthConfig parses a client secret document into an oauth2 config
// requesting the given scopes.
func OAuthConfig(secret []byte, scopes ...string) (*oauth2.Config, error) {
	cfg, err := google.ConfigFromJSON(secret, scopes...)
	if err != nil {
		return nil, fmt.Errorf("parsing client secret: %w", err)
	}
	return cfg, nil
}
