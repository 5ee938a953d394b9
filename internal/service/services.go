package service

import (
	"time"

	"github.com/MKhiriev/travel-journal-api/internal/config"
	"github.com/MKhiriev/travel-journal-api/internal/logger"
	"github.com/MKhiriev/travel-journal-api/internal/store"
	"github.com/MKhiriev/travel-journal-api/internal/validators"
)

// DefaultPostsLimit is the page size used when a listing names none.
const DefaultPostsLimit = 20

type Services struct {
	AuthService AuthService
	PostService PostService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	validator := validators.NewStructValidator()

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, validator, cfg, logger),
		PostService: NewPostService(storages.PostRepository, validator, logger),
	}
}

// now returns the current time at the precision every supported database
// keeps.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
