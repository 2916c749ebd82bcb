package services

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/mattwebdev/devcamper/internal/app/auth"
	"github.com/mattwebdev/devcamper/internal/app/listquery"
	"github.com/mattwebdev/devcamper/internal/app/models"
	"github.com/mattwebdev/devcamper/internal/app/models/dto"
	"github.com/mattwebdev/devcamper/internal/pkg/apperrors"
)

// CourseStore defines the course persistence operations the service needs
type CourseStore interface {
	List(ctx context.Context, q *listquery.Query) ([]*models.Course, int64, error)
	ListByBootcamp(ctx context.Context, q *listquery.Query, bootcampID int64) ([]*models.Course, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, c *models.Course) error
	Update(ctx context.Context, c *models.Course) error
	Delete(ctx context.Context, id int64) error
	AverageTuition(ctx context.Context, bootcampID int64) (*float64, error)
}

// BootcampRefStore resolves bootcamps for course ownership checks and
// inline expansion on course lists.
type BootcampRefStore interface {
	GetByID(ctx context.Context, id int64) (*models.Bootcamp, error)
	GetRefsByIDs(ctx context.Context, ids []int64) (map[int64]*models.BootcampRef, error)
	UpdateAverageCost(ctx context.Context, id int64, averageCost *int) error
}

// CourseService defines the interface for course operations
type CourseService interface {
	GetCourses(ctx context.Context, q *listquery.Query) ([]*models.Course, int64, error)
	GetCoursesByBootcamp(ctx context.Context, q *listquery.Query, bootcampID int64) ([]*models.Course, int64, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	CreateCourse(ctx context.Context, actor auth.Actor, bootcampID int64, req *dto.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, actor auth.Actor, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, actor auth.Actor, id int64) error
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo   CourseStore
	bootcampRepo BootcampRefStore
	logger       zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo CourseStore, bootcampRepo BootcampRefStore, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo:   courseRepo,
		bootcampRepo: bootcampRepo,
		logger:       logger,
	}
}

// GetCourses retrieves a page of courses across all bootcamps, each carrying
// the restricted bootcamp reference.
func (s *courseServiceImpl) GetCourses(ctx context.Context, q *listquery.Query) ([]*models.Course, int64, error) {
	courses, total, err := s.courseRepo.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	if err := s.expandBootcamps(ctx, courses); err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// GetCoursesByBootcamp retrieves courses under one bootcamp. The bootcamp
// must exist; no inline expansion is applied on the nested listing.
func (s *courseServiceImpl) GetCoursesByBootcamp(ctx context.Context, q *listquery.Query, bootcampID int64) ([]*models.Course, int64, error) {
	if _, err := s.bootcampRepo.GetByID(ctx, bootcampID); err != nil {
		return nil, 0, err
	}
	return s.courseRepo.ListByBootcamp(ctx, q, bootcampID)
}

// GetCourseByID retrieves a single course with its bootcamp reference
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.expandBootcamps(ctx, []*models.Course{course}); err != nil {
		return nil, err
	}

	return course, nil
}

// CreateCourse creates a course under a bootcamp the actor owns and
// recomputes the bootcamp's average cost.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, actor auth.Actor, bootcampID int64, req *dto.CreateCourseRequest) (*models.Course, error) {
	bootcamp, err := s.bootcampRepo.GetByID(ctx, bootcampID)
	if err != nil {
		return nil, err
	}

	if !auth.IsOwner(actor, bootcamp.UserID) {
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("User %d is not authorized to add a course to bootcamp %d", actor.ID, bootcampID))
	}

	course := &models.Course{
		Title:                 req.Title,
		Description:           req.Description,
		Weeks:                 req.Weeks,
		Tuition:               req.Tuition,
		MinimumSkill:          models.MinimumSkill(req.MinimumSkill),
		ScholarshipsAvailable: req.ScholarshipsAvailable,
		BootcampID:            bootcampID,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.recomputeAverageCost(ctx, bootcampID)

	s.logger.Info().Int64("courseId", course.ID).Int64("bootcampId", bootcampID).Msg("Course created")

	return course, nil
}

// UpdateCourse updates a course under a bootcamp the actor owns
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, actor auth.Actor, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bootcamp, err := s.bootcampRepo.GetByID(ctx, course.BootcampID)
	if err != nil {
		return nil, err
	}

	if !auth.IsOwner(actor, bootcamp.UserID) {
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("User %d is not authorized to update course %d", actor.ID, id))
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Weeks != nil {
		course.Weeks = *req.Weeks
	}
	if req.Tuition != nil {
		course.Tuition = *req.Tuition
	}
	if req.MinimumSkill != nil {
		course.MinimumSkill = models.MinimumSkill(*req.MinimumSkill)
	}
	if req.ScholarshipsAvailable != nil {
		course.ScholarshipsAvailable = *req.ScholarshipsAvailable
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	s.recomputeAverageCost(ctx, course.BootcampID)

	return course, nil
}

// DeleteCourse deletes a course under a bootcamp the actor owns
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, actor auth.Actor, id int64) error {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	bootcamp, err := s.bootcampRepo.GetByID(ctx, course.BootcampID)
	if err != nil {
		return err
	}

	if !auth.IsOwner(actor, bootcamp.UserID) {
		return apperrors.NewForbiddenError(fmt.Sprintf("User %d is not authorized to delete course %d", actor.ID, id))
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recomputeAverageCost(ctx, course.BootcampID)

	s.logger.Info().Int64("courseId", id).Int64("bootcampId", course.BootcampID).Msg("Course deleted")

	return nil
}

// RoundAverageCost rounds a mean tuition up to the nearest ten dollars
func RoundAverageCost(avg float64) int {
	return int(math.Ceil(avg/10) * 10)
}

// recomputeAverageCost refreshes the bootcamp's derived average cost after a
// course write. Failures are logged, not surfaced, so the course operation
// itself still succeeds.
func (s *courseServiceImpl) recomputeAverageCost(ctx context.Context, bootcampID int64) {
	avg, err := s.courseRepo.AverageTuition(ctx, bootcampID)
	if err != nil {
		s.logger.Error().Err(err).Int64("bootcampId", bootcampID).Msg("Failed to compute average tuition")
		return
	}

	var cost *int
	if avg != nil {
		rounded := RoundAverageCost(*avg)
		cost = &rounded
	}

	if err := s.bootcampRepo.UpdateAverageCost(ctx, bootcampID, cost); err != nil {
		s.logger.Error().Err(err).Int64("bootcampId", bootcampID).Msg("Failed to update average cost")
	}
}

func (s *courseServiceImpl) expandBootcamps(ctx context.Context, courses []*models.Course) error {
	if len(courses) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(courses))
	ids := make([]int64, 0, len(courses))
	for _, c := range courses {
		if _, ok := seen[c.BootcampID]; !ok {
			seen[c.BootcampID] = struct{}{}
			ids = append(ids, c.BootcampID)
		}
	}

	refs, err := s.bootcampRepo.GetRefsByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, c := range courses {
		c.Bootcamp = refs[c.BootcampID]
	}

	return nil
}
