package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mattwebdev/devcamper/internal/app/listquery"
	"github.com/mattwebdev/devcamper/internal/app/models"
	"github.com/mattwebdev/devcamper/internal/pkg/apperrors"
	"github.com/mattwebdev/devcamper/internal/pkg/dberrors"
)

// CourseResource describes the queryable surface of the courses collection
var CourseResource = listquery.Resource{
	Table: "courses",
	Columns: map[string]string{
		"id":                    "id",
		"title":                 "title",
		"description":           "description",
		"weeks":                 "weeks",
		"tuition":               "tuition",
		"minimumSkill":          "minimum_skill",
		"scholarshipsAvailable": "scholarships_available",
		"bootcamp":              "bootcamp_id",
		"createdAt":             "created_at",
	},
	DefaultSort: "created_at",
}

const courseColumns = "id, title, description, weeks, tuition, minimum_skill, scholarships_available, bootcamp_id, created_at"

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Weeks,
		&c.Tuition,
		&c.MinimumSkill,
		&c.ScholarshipsAvailable,
		&c.BootcampID,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepository) list(ctx context.Context, q *listquery.Query, bootcampID *int64) ([]*models.Course, int64, error) {
	countBuilder := q.ApplyFilters(
		squirrel.Select("COUNT(*)").From("courses").PlaceholderFormat(squirrel.Dollar),
	)
	pageBuilder := q.Apply(
		squirrel.Select(courseColumns).From("courses").PlaceholderFormat(squirrel.Dollar),
	)
	if bootcampID != nil {
		countBuilder = countBuilder.Where(squirrel.Eq{"bootcamp_id": *bootcampID})
		pageBuilder = pageBuilder.Where(squirrel.Eq{"bootcamp_id": *bootcampID})
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building count SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	pageSQL, pageArgs, err := pageBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// List retrieves a page of courses across all bootcamps
func (r *CourseRepository) List(ctx context.Context, q *listquery.Query) ([]*models.Course, int64, error) {
	return r.list(ctx, q, nil)
}

// ListByBootcamp retrieves a page of courses belonging to one bootcamp
func (r *CourseRepository) ListByBootcamp(ctx context.Context, q *listquery.Query, bootcampID int64) ([]*models.Course, int64, error) {
	return r.list(ctx, q, &bootcampID)
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM courses WHERE id = $1", courseColumns)

	c, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return c, nil
}

// Create creates a new course under a bootcamp
func (r *CourseRepository) Create(ctx context.Context, c *models.Course) error {
	query := `
		INSERT INTO courses (title, description, weeks, tuition, minimum_skill, scholarships_available, bootcamp_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		c.Title, c.Description, c.Weeks, c.Tuition,
		c.MinimumSkill, c.ScholarshipsAvailable, c.BootcampID,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrBootcampNotFound
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, c *models.Course) error {
	query := `
		UPDATE courses
		SET title = $1, description = $2, weeks = $3, tuition = $4,
		    minimum_skill = $5, scholarships_available = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		c.Title, c.Description, c.Weeks, c.Tuition,
		c.MinimumSkill, c.ScholarshipsAvailable, c.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// ListByBootcampIDs retrieves the courses of a set of bootcamps, grouped by
// bootcamp ID. Used for inline expansion on bootcamp listings.
func (r *CourseRepository) ListByBootcampIDs(ctx context.Context, ids []int64) (map[int64][]*models.Course, error) {
	grouped := make(map[int64][]*models.Course, len(ids))
	if len(ids) == 0 {
		return grouped, nil
	}

	query := fmt.Sprintf("SELECT %s FROM courses WHERE bootcamp_id = ANY($1) ORDER BY created_at DESC", courseColumns)

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("error listing courses by bootcamp: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		grouped[c.BootcampID] = append(grouped[c.BootcampID], c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grouped, nil
}

// AverageTuition computes the mean tuition over a bootcamp's courses.
// Returns nil when the bootcamp has no courses.
func (r *CourseRepository) AverageTuition(ctx context.Context, bootcampID int64) (*float64, error) {
	var avg *float64
	err := r.db.QueryRow(ctx,
		`SELECT AVG(tuition) FROM courses WHERE bootcamp_id = $1`, bootcampID).Scan(&avg)
	if err != nil {
		return nil, fmt.Errorf("error computing average tuition: %w", err)
	}
	return avg, nil
}
