package services

import (
	portsrepo "github.com/opusregistry/catalog_backend/internal/core/ports/repositories"
	portssvc "github.com/opusregistry/catalog_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Publisher = NewPublisherService(repos.PublisherRepo)
	container.Songwriter = NewSongwriterService(repos.SongwriterRepo)
	container.Work = NewWorkService(repos.WorkRepo, repos.SongwriterRepo)
	container.Recording = NewRecordingService(repos.RecordingRepo, repos.WorkRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Search = NewSearchService(repos.WorkRepo, repos.SongwriterRepo, repos.RecordingRepo)

	return container
}
