package services

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattwebdev/devcamper/internal/app/auth"
	"github.com/mattwebdev/devcamper/internal/app/models"
	"github.com/mattwebdev/devcamper/internal/app/models/dto"
	"github.com/mattwebdev/devcamper/internal/pkg/apperrors"
	"github.com/mattwebdev/devcamper/internal/pkg/geocoder"
)

func newBootcampServiceForTest(store *fakeBootcampStore, geo geocoder.Geocoder, storage *fakePhotoStorage) BootcampService {
	if geo == nil {
		geo = &fakeGeocoder{loc: geocoder.Location{Latitude: 42.35, Longitude: -71.05}}
	}
	if storage == nil {
		storage = &fakePhotoStorage{}
	}
	return NewBootcampService(store, newFakeCourseStore(), geo, storage, 1<<20, zerolog.Nop())
}

func createRequest() *dto.CreateBootcampRequest {
	return &dto.CreateBootcampRequest{
		Name:        "Devworks Bootcamp",
		Description: "Full stack web development",
		Address:     "233 Bay State Rd Boston MA 02215",
		Careers:     []string{"Web Development", "UI/UX"},
	}
}

func TestCreateBootcampSetsSlugOwnerAndCoordinates(t *testing.T) {
	store := newFakeBootcampStore()
	svc := newBootcampServiceForTest(store, nil, nil)
	actor := auth.Actor{ID: 5, Role: models.RolePublisher}

	b, err := svc.CreateBootcamp(context.Background(), actor, createRequest())
	require.NoError(t, err)

	assert.Equal(t, "devworks-bootcamp", b.Slug)
	assert.Equal(t, int64(5), b.UserID)
	require.NotNil(t, b.Latitude)
	assert.InDelta(t, 42.35, *b.Latitude, 0.001)
}

func TestCreateBootcampSecondForPublisherRejected(t *testing.T) {
	store := newFakeBootcampStore()
	svc := newBootcampServiceForTest(store, nil, nil)
	actor := auth.Actor{ID: 5, Role: models.RolePublisher}

	_, err := svc.CreateBootcamp(context.Background(), actor, createRequest())
	require.NoError(t, err)

	req := createRequest()
	req.Name = "Another Bootcamp"
	_, err = svc.CreateBootcamp(context.Background(), actor, req)
	assert.ErrorIs(t, err, apperrors.ErrBootcampAlreadyOwned)
}

func TestCreateBootcampAdminMayOwnSeveral(t *testing.T) {
	store := newFakeBootcampStore()
	svc := newBootcampServiceForTest(store, nil, nil)
	admin := auth.Actor{ID: 1, Role: models.RoleAdmin}

	_, err := svc.CreateBootcamp(context.Background(), admin, createRequest())
	require.NoError(t, err)

	req := createRequest()
	req.Name = "Second Bootcamp"
	_, err = svc.CreateBootcamp(context.Background(), admin, req)
	assert.NoError(t, err)
}

func TestCreateBootcampGeocodeFailureLeavesCoordinatesUnset(t *testing.T) {
	store := newFakeBootcampStore()
	svc := newBootcampServiceForTest(store, &fakeGeocoder{fail: true}, nil)
	actor := auth.Actor{ID: 5, Role: models.RolePublisher}

	b, err := svc.CreateBootcamp(context.Background(), actor, createRequest())
	require.NoError(t, err)
	assert.Nil(t, b.Latitude)
	assert.Nil(t, b.Longitude)
}

func TestUpdateBootcampOwnershipEnforced(t *testing.T) {
	store := newFakeBootcampStore()
	svc := newBootcampServiceForTest(store, nil, nil)
	owner := auth.Actor{ID: 5, Role: models.RolePublisher}

	b, err := svc.CreateBootcamp(context.Background(), owner, createRequest())
	require.NoError(t, err)

	newName := "Renamed"
	stranger := auth.Actor{ID: 6, Role: models.RolePublisher}
	_, err = svc.UpdateBootcamp(context.Background(), stranger, b.ID, &dto.UpdateBootcampRequest{Name: &newName})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.UpdateBootcamp(context.Background(), owner, b.ID, &dto.UpdateBootcampRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "renamed", updated.Slug)
}

func TestUpdateBootcampAdminBypassesOwnership(t *testing.T) {
	store := newFakeBootcampStore()
	svc := newBootcampServiceForTest(store, nil, nil)

	b, err := svc.CreateBootcamp(context.Background(), auth.Actor{ID: 5, Role: models.RolePublisher}, createRequest())
	require.NoError(t, err)

	newName := "Admin Rename"
	_, err = svc.UpdateBootcamp(context.Background(), auth.Actor{ID: 1, Role: models.RoleAdmin}, b.ID, &dto.UpdateBootcampRequest{Name: &newName})
	assert.NoError(t, err)
}

func TestDeleteBootcampOwnershipEnforced(t *testing.T) {
	store := newFakeBootcampStore()
	svc := newBootcampServiceForTest(store, nil, nil)
	owner := auth.Actor{ID: 5, Role: models.RolePublisher}

	b, err := svc.CreateBootcamp(context.Background(), owner, createRequest())
	require.NoError(t, err)

	err = svc.DeleteBootcamp(context.Background(), auth.Actor{ID: 9, Role: models.RolePublisher}, b.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.DeleteBootcamp(context.Background(), owner, b.ID))

	_, err = svc.GetBootcampByID(context.Background(), b.ID)
	assert.ErrorIs(t, err, apperrors.ErrBootcampNotFound)
}

func TestUploadPhotoValidation(t *testing.T) {
	store := newFakeBootcampStore()
	storage := &fakePhotoStorage{}
	svc := newBootcampServiceForTest(store, nil, storage)
	owner := auth.Actor{ID: 5, Role: models.RolePublisher}

	b, err := svc.CreateBootcamp(context.Background(), owner, createRequest())
	require.NoError(t, err)

	fileHeader := func(contentType string, size int64) *multipart.FileHeader {
		return &multipart.FileHeader{
			Filename: "photo.jpg",
			Size:     size,
			Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
		}
	}

	_, err = svc.UploadPhoto(context.Background(), owner, b.ID, fileHeader("text/plain", 100))
	assert.ErrorIs(t, err, apperrors.ErrPhotoNotImage)

	_, err = svc.UploadPhoto(context.Background(), owner, b.ID, fileHeader("image/jpeg", 2<<20))
	assert.ErrorIs(t, err, apperrors.ErrPhotoTooLarge)

	filename, err := svc.UploadPhoto(context.Background(), owner, b.ID, fileHeader("image/jpeg", 100))
	require.NoError(t, err)
	assert.Equal(t, "photo_1.jpg", filename)
	assert.Equal(t, []string{"photo_1.jpg"}, storage.saved)
}

func TestUploadPhotoOwnershipEnforced(t *testing.T) {
	store := newFakeBootcampStore()
	svc := newBootcampServiceForTest(store, nil, nil)

	b, err := svc.CreateBootcamp(context.Background(), auth.Actor{ID: 5, Role: models.RolePublisher}, createRequest())
	require.NoError(t, err)

	fh := &multipart.FileHeader{
		Filename: "photo.jpg",
		Size:     100,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
	}
	_, err = svc.UploadPhoto(context.Background(), auth.Actor{ID: 6, Role: models.RolePublisher}, b.ID, fh)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestGetBootcampsExpandsCourses(t *testing.T) {
	store := newFakeBootcampStore()
	courses := newFakeCourseStore()
	svc := NewBootcampService(store, courses, &fakeGeocoder{loc: geocoder.Location{Latitude: 42.35, Longitude: -71.05}}, &fakePhotoStorage{}, 1<<20, zerolog.Nop())

	actor := auth.Actor{ID: 5, Role: models.RolePublisher}
	b, err := svc.CreateBootcamp(context.Background(), actor, createRequest())
	require.NoError(t, err)

	require.NoError(t, courses.Create(context.Background(), &models.Course{Title: "Full Stack", Tuition: 8000, BootcampID: b.ID}))

	got, total, err := svc.GetBootcamps(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	require.Len(t, got[0].Courses, 1)
	assert.Equal(t, "Full Stack", got[0].Courses[0].Title)
}

func TestGetBootcampsInRadiusBadZipcode(t *testing.T) {
	store := newFakeBootcampStore()
	svc := newBootcampServiceForTest(store, &fakeGeocoder{fail: true}, nil)

	_, err := svc.GetBootcampsInRadius(context.Background(), "00000", 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrZipcodeNotGeocodable))
}
