package services

import (
	"context"
	"mime/multipart"

	"github.com/mattwebdev/devcamper/internal/app/listquery"
	"github.com/mattwebdev/devcamper/internal/app/models"
	"github.com/mattwebdev/devcamper/internal/pkg/apperrors"
	"github.com/mattwebdev/devcamper/internal/pkg/geocoder"
)

// fakeBootcampStore is an in-memory BootcampStore and BootcampRefStore
type fakeBootcampStore struct {
	bootcamps map[int64]*models.Bootcamp
	nextID    int64
}

func newFakeBootcampStore() *fakeBootcampStore {
	return &fakeBootcampStore{bootcamps: map[int64]*models.Bootcamp{}, nextID: 1}
}

func (f *fakeBootcampStore) List(ctx context.Context, q *listquery.Query) ([]*models.Bootcamp, int64, error) {
	var out []*models.Bootcamp
	for _, b := range f.bootcamps {
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (f *fakeBootcampStore) GetByID(ctx context.Context, id int64) (*models.Bootcamp, error) {
	b, ok := f.bootcamps[id]
	if !ok {
		return nil, apperrors.ErrBootcampNotFound
	}
	return b, nil
}

func (f *fakeBootcampStore) ExistsForUser(ctx context.Context, userID int64) (bool, error) {
	for _, b := range f.bootcamps {
		if b.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBootcampStore) Create(ctx context.Context, b *models.Bootcamp) error {
	b.ID = f.nextID
	f.nextID++
	f.bootcamps[b.ID] = b
	return nil
}

func (f *fakeBootcampStore) Update(ctx context.Context, b *models.Bootcamp) error {
	if _, ok := f.bootcamps[b.ID]; !ok {
		return apperrors.ErrBootcampNotFound
	}
	f.bootcamps[b.ID] = b
	return nil
}

func (f *fakeBootcampStore) UpdatePhoto(ctx context.Context, id int64, filename string) error {
	b, ok := f.bootcamps[id]
	if !ok {
		return apperrors.ErrBootcampNotFound
	}
	b.Photo = &filename
	return nil
}

func (f *fakeBootcampStore) UpdateAverageCost(ctx context.Context, id int64, averageCost *int) error {
	b, ok := f.bootcamps[id]
	if !ok {
		return apperrors.ErrBootcampNotFound
	}
	b.AverageCost = averageCost
	return nil
}

func (f *fakeBootcampStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.bootcamps[id]; !ok {
		return apperrors.ErrBootcampNotFound
	}
	delete(f.bootcamps, id)
	return nil
}

func (f *fakeBootcampStore) WithinRadius(ctx context.Context, lat, lng, miles float64) ([]*models.Bootcamp, error) {
	var out []*models.Bootcamp
	for _, b := range f.bootcamps {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBootcampStore) GetRefsByIDs(ctx context.Context, ids []int64) (map[int64]*models.BootcampRef, error) {
	refs := map[int64]*models.BootcampRef{}
	for _, id := range ids {
		if b, ok := f.bootcamps[id]; ok {
			refs[id] = &models.BootcampRef{ID: b.ID, Name: b.Name, Description: b.Description}
		}
	}
	return refs, nil
}

// fakeCourseStore is an in-memory CourseStore
type fakeCourseStore struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: map[int64]*models.Course{}, nextID: 1}
}

func (f *fakeCourseStore) List(ctx context.Context, q *listquery.Query) ([]*models.Course, int64, error) {
	var out []*models.Course
	for _, c := range f.courses {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCourseStore) ListByBootcamp(ctx context.Context, q *listquery.Query, bootcampID int64) ([]*models.Course, int64, error) {
	var out []*models.Course
	for _, c := range f.courses {
		if c.BootcampID == bootcampID {
			out = append(out, c)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeCourseStore) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return c, nil
}

func (f *fakeCourseStore) Create(ctx context.Context, c *models.Course) error {
	c.ID = f.nextID
	f.nextID++
	f.courses[c.ID] = c
	return nil
}

func (f *fakeCourseStore) Update(ctx context.Context, c *models.Course) error {
	if _, ok := f.courses[c.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	f.courses[c.ID] = c
	return nil
}

func (f *fakeCourseStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseStore) ListByBootcampIDs(ctx context.Context, ids []int64) (map[int64][]*models.Course, error) {
	grouped := make(map[int64][]*models.Course, len(ids))
	for _, id := range ids {
		for _, c := range f.courses {
			if c.BootcampID == id {
				grouped[id] = append(grouped[id], c)
			}
		}
	}
	return grouped, nil
}

func (f *fakeCourseStore) AverageTuition(ctx context.Context, bootcampID int64) (*float64, error) {
	var sum, n float64
	for _, c := range f.courses {
		if c.BootcampID == bootcampID {
			sum += float64(c.Tuition)
			n++
		}
	}
	if n == 0 {
		return nil, nil
	}
	avg := sum / n
	return &avg, nil
}

// fakeUserStore is an in-memory UserStore
type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(ctx context.Context, u *models.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

// fakeGeocoder resolves every location to a fixed point, or fails
type fakeGeocoder struct {
	loc  geocoder.Location
	fail bool
}

func (f *fakeGeocoder) Geocode(ctx context.Context, location string) (*geocoder.Location, error) {
	if f.fail {
		return nil, geocoder.ErrNoResults
	}
	loc := f.loc
	return &loc, nil
}

// fakePhotoStorage records saved filenames without touching the filesystem
type fakePhotoStorage struct {
	saved   []string
	deleted []string
}

func (f *fakePhotoStorage) SavePhoto(fileHeader *multipart.FileHeader, filename string) (string, error) {
	f.saved = append(f.saved, filename)
	return filename, nil
}

func (f *fakePhotoStorage) DeletePhoto(filename string) error {
	f.deleted = append(f.deleted, filename)
	return nil
}
