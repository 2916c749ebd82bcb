package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/mattwebdev/devcamper/internal/app/auth"
	"github.com/mattwebdev/devcamper/internal/app/listquery"
	"github.com/mattwebdev/devcamper/internal/app/models"
	"github.com/mattwebdev/devcamper/internal/app/models/dto"
	"github.com/mattwebdev/devcamper/internal/pkg/apperrors"
	"github.com/mattwebdev/devcamper/internal/pkg/filestorage"
	"github.com/mattwebdev/devcamper/internal/pkg/geocoder"
	"github.com/mattwebdev/devcamper/internal/pkg/helpers"
)

// BootcampStore defines the bootcamp persistence operations the service needs
type BootcampStore interface {
	List(ctx context.Context, q *listquery.Query) ([]*models.Bootcamp, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Bootcamp, error)
	ExistsForUser(ctx context.Context, userID int64) (bool, error)
	Create(ctx context.Context, b *models.Bootcamp) error
	Update(ctx context.Context, b *models.Bootcamp) error
	UpdatePhoto(ctx context.Context, id int64, filename string) error
	Delete(ctx context.Context, id int64) error
	WithinRadius(ctx context.Context, lat, lng, miles float64) ([]*models.Bootcamp, error)
}

// CourseListStore resolves courses for inline expansion on bootcamp listings
type CourseListStore interface {
	ListByBootcampIDs(ctx context.Context, ids []int64) (map[int64][]*models.Course, error)
}

// BootcampService defines the interface for bootcamp operations
type BootcampService interface {
	GetBootcamps(ctx context.Context, q *listquery.Query) ([]*models.Bootcamp, int64, error)
	GetBootcampByID(ctx context.Context, id int64) (*models.Bootcamp, error)
	CreateBootcamp(ctx context.Context, actor auth.Actor, req *dto.CreateBootcampRequest) (*models.Bootcamp, error)
	UpdateBootcamp(ctx context.Context, actor auth.Actor, id int64, req *dto.UpdateBootcampRequest) (*models.Bootcamp, error)
	DeleteBootcamp(ctx context.Context, actor auth.Actor, id int64) error
	UploadPhoto(ctx context.Context, actor auth.Actor, id int64, fileHeader *multipart.FileHeader) (string, error)
	GetBootcampsInRadius(ctx context.Context, zipcode string, miles float64) ([]*models.Bootcamp, error)
}

// bootcampServiceImpl implements BootcampService
type bootcampServiceImpl struct {
	bootcampRepo BootcampStore
	courseRepo   CourseListStore
	geocoder     geocoder.Geocoder
	photoStorage filestorage.PhotoStorage
	maxPhotoSize int64
	logger       zerolog.Logger
}

// NewBootcampService creates a new BootcampService
func NewBootcampService(
	bootcampRepo BootcampStore,
	courseRepo CourseListStore,
	geo geocoder.Geocoder,
	photoStorage filestorage.PhotoStorage,
	maxPhotoSize int64,
	logger zerolog.Logger,
) BootcampService {
	return &bootcampServiceImpl{
		bootcampRepo: bootcampRepo,
		courseRepo:   courseRepo,
		geocoder:     geo,
		photoStorage: photoStorage,
		maxPhotoSize: maxPhotoSize,
		logger:       logger,
	}
}

// GetBootcamps retrieves a page of bootcamps with the filtered total, each
// carrying its courses inline.
func (s *bootcampServiceImpl) GetBootcamps(ctx context.Context, q *listquery.Query) ([]*models.Bootcamp, int64, error) {
	bootcamps, total, err := s.bootcampRepo.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	if len(bootcamps) > 0 {
		ids := make([]int64, 0, len(bootcamps))
		for _, b := range bootcamps {
			ids = append(ids, b.ID)
		}
		courses, err := s.courseRepo.ListByBootcampIDs(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for _, b := range bootcamps {
			b.Courses = courses[b.ID]
		}
	}

	return bootcamps, total, nil
}

// GetBootcampByID retrieves a single bootcamp
func (s *bootcampServiceImpl) GetBootcampByID(ctx context.Context, id int64) (*models.Bootcamp, error) {
	return s.bootcampRepo.GetByID(ctx, id)
}

// CreateBootcamp creates a bootcamp owned by the actor. Publishers may own
// at most one bootcamp; admins are exempt.
func (s *bootcampServiceImpl) CreateBootcamp(ctx context.Context, actor auth.Actor, req *dto.CreateBootcampRequest) (*models.Bootcamp, error) {
	if !actor.IsAdmin() {
		owns, err := s.bootcampRepo.ExistsForUser(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if owns {
			return nil, apperrors.ErrBootcampAlreadyOwned
		}
	}

	bootcamp := &models.Bootcamp{
		Name:        req.Name,
		Slug:        helpers.Slugify(req.Name),
		Description: req.Description,
		Website:     req.Website,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Careers:     req.Careers,
		UserID:      actor.ID,
	}

	s.geocode(ctx, bootcamp)

	if err := s.bootcampRepo.Create(ctx, bootcamp); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("bootcampId", bootcamp.ID).Int64("userId", actor.ID).Msg("Bootcamp created")

	return bootcamp, nil
}

// UpdateBootcamp updates a bootcamp the actor owns
func (s *bootcampServiceImpl) UpdateBootcamp(ctx context.Context, actor auth.Actor, id int64, req *dto.UpdateBootcampRequest) (*models.Bootcamp, error) {
	bootcamp, err := s.bootcampRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !auth.IsOwner(actor, bootcamp.UserID) {
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("User %d is not authorized to update this bootcamp", actor.ID))
	}

	if req.Name != nil {
		bootcamp.Name = *req.Name
		bootcamp.Slug = helpers.Slugify(*req.Name)
	}
	if req.Description != nil {
		bootcamp.Description = *req.Description
	}
	if req.Website != nil {
		bootcamp.Website = req.Website
	}
	if req.Phone != nil {
		bootcamp.Phone = req.Phone
	}
	if req.Email != nil {
		bootcamp.Email = req.Email
	}
	if req.Careers != nil {
		bootcamp.Careers = req.Careers
	}
	if req.Address != nil {
		bootcamp.Address = *req.Address
		s.geocode(ctx, bootcamp)
	}

	if err := s.bootcampRepo.Update(ctx, bootcamp); err != nil {
		return nil, err
	}

	return bootcamp, nil
}

// DeleteBootcamp deletes a bootcamp the actor owns. Courses under it are
// removed by the database cascade.
func (s *bootcampServiceImpl) DeleteBootcamp(ctx context.Context, actor auth.Actor, id int64) error {
	bootcamp, err := s.bootcampRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !auth.IsOwner(actor, bootcamp.UserID) {
		return apperrors.NewForbiddenError(fmt.Sprintf("User %d is not authorized to delete this bootcamp", actor.ID))
	}

	if err := s.bootcampRepo.Delete(ctx, id); err != nil {
		return err
	}

	if bootcamp.Photo != nil {
		if err := s.photoStorage.DeletePhoto(*bootcamp.Photo); err != nil {
			s.logger.Warn().Err(err).Str("photo", *bootcamp.Photo).Msg("Failed to remove bootcamp photo")
		}
	}

	s.logger.Info().Int64("bootcampId", id).Int64("userId", actor.ID).Msg("Bootcamp deleted")

	return nil
}

// UploadPhoto validates and stores a photo for a bootcamp the actor owns,
// returning the stored filename.
func (s *bootcampServiceImpl) UploadPhoto(ctx context.Context, actor auth.Actor, id int64, fileHeader *multipart.FileHeader) (string, error) {
	bootcamp, err := s.bootcampRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if !auth.IsOwner(actor, bootcamp.UserID) {
		return "", apperrors.NewForbiddenError(fmt.Sprintf("User %d is not authorized to update this bootcamp", actor.ID))
	}

	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		return "", apperrors.ErrPhotoNotImage
	}
	if fileHeader.Size > s.maxPhotoSize {
		return "", apperrors.NewStatusError(apperrors.ErrPhotoTooLarge,
			fmt.Sprintf("Please upload an image less than %d bytes", s.maxPhotoSize), 400)
	}

	filename := fmt.Sprintf("photo_%d%s", bootcamp.ID, filepath.Ext(fileHeader.Filename))
	if _, err := s.photoStorage.SavePhoto(fileHeader, filename); err != nil {
		return "", apperrors.ErrUploadFailed
	}

	if err := s.bootcampRepo.UpdatePhoto(ctx, id, filename); err != nil {
		return "", err
	}

	return filename, nil
}

// GetBootcampsInRadius geocodes the zipcode and retrieves bootcamps within
// the given distance in miles.
func (s *bootcampServiceImpl) GetBootcampsInRadius(ctx context.Context, zipcode string, miles float64) ([]*models.Bootcamp, error) {
	loc, err := s.geocoder.Geocode(ctx, zipcode)
	if err != nil {
		if errors.Is(err, geocoder.ErrNoResults) {
			return nil, apperrors.ErrZipcodeNotGeocodable
		}
		return nil, err
	}

	return s.bootcampRepo.WithinRadius(ctx, loc.Latitude, loc.Longitude, miles)
}

// geocode resolves the bootcamp address to coordinates. Geocoding failures
// leave the coordinates unset rather than failing the write.
func (s *bootcampServiceImpl) geocode(ctx context.Context, b *models.Bootcamp) {
	loc, err := s.geocoder.Geocode(ctx, b.Address)
	if err != nil {
		s.logger.Warn().Err(err).Str("address", b.Address).Msg("Failed to geocode bootcamp address")
		b.Latitude = nil
		b.Longitude = nil
		return
	}
	b.Latitude = &loc.Latitude
	b.Longitude = &loc.Longitude
}
