package services

import (
	"context"

	"github.com/opusregistry/catalog_backend/internal/core/domain"
	portsrepo "github.com/opusregistry/catalog_backend/internal/core/ports/repositories"
	portssvc "github.com/opusregistry/catalog_backend/internal/core/ports/services"
)

const defaultSearchLimit = 20

// searchService implements the SearchSvc interface on top of the
// full-text indexes maintained by the storage layer.
type searchService struct {
	BaseService
	workRepo       portsrepo.WorkReader
	songwriterRepo portsrepo.SongwriterReader
	recordingRepo  portsrepo.RecordingReader
}

// NewSearchService creates a new search service with the provided dependencies
func NewSearchService(workRepo portsrepo.WorkReader, songwriterRepo portsrepo.SongwriterReader, recordingRepo portsrepo.RecordingReader) portssvc.SearchSvc {
	return &searchService{workRepo: workRepo, songwriterRepo: songwriterRepo, recordingRepo: recordingRepo}
}

var _ portssvc.SearchSvc = (*searchService)(nil)

// SearchWorks runs a full-text search over the tenant's works
func (s *searchService) SearchWorks(ctx context.Context, query string, limit int) ([]domain.Work, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	works, err := s.workRepo.SearchWorks(ctx, query, limit)
	if err != nil {
		s.LogError(ctx, err, "Work search failed")
		return nil, err
	}
	if works == nil {
		works = []domain.Work{}
	}
	return works, nil
}

// SearchSongwriters runs a full-text search over the tenant's songwriters
func (s *searchService) SearchSongwriters(ctx context.Context, query string, limit int) ([]domain.Songwriter, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	songwriters, err := s.songwriterRepo.SearchSongwriters(ctx, query, limit)
	if err != nil {
		s.LogError(ctx, err, "Songwriter search failed")
		return nil, err
	}
	if songwriters == nil {
		songwriters = []domain.Songwriter{}
	}
	return songwriters, nil
}

// SearchRecordings matches the tenant's recordings by title and artist name
func (s *searchService) SearchRecordings(ctx context.Context, query string, limit int) ([]domain.Recording, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	recordings, _, err := s.recordingRepo.FindRecordings(ctx, portsrepo.RecordingListFilter{
		Search: query,
		Limit:  limit,
	})
	if err != nil {
		s.LogError(ctx, err, "Recording search failed")
		return nil, err
	}
	if recordings == nil {
		recordings = []domain.Recording{}
	}
	return recordings, nil
}
