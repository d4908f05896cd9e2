package uploader

import (
	"io"

	"google.golang.org/api/youtube/v3"
)

// Session is one resumable upload in flight. NextChunk blocks until the
// transfer advances and reports either an intermediate progress fraction
// in [0.0, 1.0] (done == nil) or the final response (done != nil, after
// which NextChunk must not be called again).
type Session interface {
	NextChunk() (frac float64, done *youtube.Video, err error)
}

// Service starts resumable uploads.
type Service interface {
	Resumable(video *youtube.Video, media io.Reader) Session
}

// apiService adapts the YouTube Data API service.
type apiService struct {
	svc *youtube.Service
}

// NewAPIService wraps an authenticated YouTube service.
func NewAPIService(svc *youtube.Service) Service {
	return apiService{svc: svc}
}

func (s apiService) Resumable(video *youtube.Video, media io.Reader) Session {
	call := s.svc.Videos.Insert([]string{"snippet", "status"}, video).Media(media)
	return &apiSession{call: call}
}

type sessionEvent struct {
	frac  float64
	video *youtube.Video
	err   error
	final bool
}

// apiSession pulls the transport's push-style progress callbacks through a
// channel so callers see the chunk-by-chunk sequence ending in a single
// final result.
type apiSession struct {
	call   *youtube.VideosInsertCall
	events chan sessionEvent
}

func (s *apiSession) NextChunk() (float64, *youtube.Video, error) {
	if s.events == nil {
		s.events = make(chan sessionEvent, 8)
		s.call.ProgressUpdater(func(current, total int64) {
			if total > 0 {
				s.events <- sessionEvent{frac: float64(current) / float64(total)}
			}
		})
		go func() {
			video, err := s.call.Do()
			s.events <- sessionEvent{video: video, err: err, final: true}
		}()
	}

	ev := <-s.events
	if ev.final {
		if ev.err != nil {
			return 0, nil, ev.err
		}
		return 1, ev.video, nil
	}
	return ev.frac, nil, nil
}
