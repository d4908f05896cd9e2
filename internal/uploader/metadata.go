package uploader

import (
	"encoding/json"
	"fmt"
	"os"

	"google.golang.org/api/youtube/v3"
)

// LoadMetadata reads a JSON metadata document and maps it onto the video
// resource sent as the insert request body. The document is passed through
// as-is: no local validation happens, the remote service rejects missing
// or invalid fields. Read and parse failures propagate to the caller
// unclassified.
func LoadMetadata(path string) (*youtube.Video, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metadata file: %w", err)
	}
	video := &youtube.Video{}
	if err := json.Unmarshal(b, video); err != nil {
		return nil, fmt.Errorf("parsing metadata file %s: %w", path, err)
	}
	return video, nil
}
