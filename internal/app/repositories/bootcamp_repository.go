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

// BootcampResource describes the queryable surface of the bootcamps collection
var BootcampResource = listquery.Resource{
	Table: "bootcamps",
	Columns: map[string]string{
		"id":          "id",
		"name":        "name",
		"slug":        "slug",
		"description": "description",
		"address":     "address",
		"careers":     "careers",
		"averageCost": "average_cost",
		"createdAt":   "created_at",
		"user":        "user_id",
	},
	Arrays:      map[string]bool{"careers": true},
	DefaultSort: "created_at",
}

const bootcampColumns = "id, name, slug, description, website, phone, email, address, latitude, longitude, careers, average_cost, photo, user_id, created_at"

// BootcampRepository handles database operations for bootcamps
type BootcampRepository struct {
	db *pgxpool.Pool
}

// NewBootcampRepository creates a new bootcamp repository
func NewBootcampRepository(db *pgxpool.Pool) *BootcampRepository {
	return &BootcampRepository{db: db}
}

func scanBootcamp(row pgx.Row) (*models.Bootcamp, error) {
	var b models.Bootcamp
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Slug,
		&b.Description,
		&b.Website,
		&b.Phone,
		&b.Email,
		&b.Address,
		&b.Latitude,
		&b.Longitude,
		&b.Careers,
		&b.AverageCost,
		&b.Photo,
		&b.UserID,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List retrieves a page of bootcamps according to the query plan, together
// with the total count of the filtered set.
func (r *BootcampRepository) List(ctx context.Context, q *listquery.Query) ([]*models.Bootcamp, int64, error) {
	countSQL, countArgs, err := q.ApplyFilters(
		squirrel.Select("COUNT(*)").From("bootcamps").PlaceholderFormat(squirrel.Dollar),
	).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building count SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting bootcamps: %w", err)
	}

	pageSQL, pageArgs, err := q.Apply(
		squirrel.Select(bootcampColumns).From("bootcamps").PlaceholderFormat(squirrel.Dollar),
	).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing bootcamps: %w", err)
	}
	defer rows.Close()

	var bootcamps []*models.Bootcamp
	for rows.Next() {
		b, err := scanBootcamp(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning bootcamp: %w", err)
		}
		bootcamps = append(bootcamps, b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return bootcamps, total, nil
}

// GetByID retrieves a bootcamp by ID
func (r *BootcampRepository) GetByID(ctx context.Context, id int64) (*models.Bootcamp, error) {
	query := fmt.Sprintf("SELECT %s FROM bootcamps WHERE id = $1", bootcampColumns)

	b, err := scanBootcamp(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBootcampNotFound
		}
		return nil, fmt.Errorf("error retrieving bootcamp: %w", err)
	}

	return b, nil
}

// ExistsForUser checks whether the user already owns a bootcamp
func (r *BootcampRepository) ExistsForUser(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM bootcamps WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking bootcamp ownership: %w", err)
	}
	return exists, nil
}

// Create creates a new bootcamp
func (r *BootcampRepository) Create(ctx context.Context, b *models.Bootcamp) error {
	query := `
		INSERT INTO bootcamps (name, slug, description, website, phone, email, address, latitude, longitude, careers, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		b.Name, b.Slug, b.Description, b.Website, b.Phone, b.Email,
		b.Address, b.Latitude, b.Longitude, b.Careers, b.UserID,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateField
		}
		return fmt.Errorf("error creating bootcamp: %w", err)
	}

	return nil
}

// Update updates an existing bootcamp
func (r *BootcampRepository) Update(ctx context.Context, b *models.Bootcamp) error {
	query := `
		UPDATE bootcamps
		SET name = $1, slug = $2, description = $3, website = $4, phone = $5,
		    email = $6, address = $7, latitude = $8, longitude = $9, careers = $10
		WHERE id = $11
	`

	cmdTag, err := r.db.Exec(ctx, query,
		b.Name, b.Slug, b.Description, b.Website, b.Phone, b.Email,
		b.Address, b.Latitude, b.Longitude, b.Careers, b.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateField
		}
		return fmt.Errorf("error updating bootcamp: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBootcampNotFound
	}

	return nil
}

// UpdatePhoto stores the uploaded photo filename on the bootcamp
func (r *BootcampRepository) UpdatePhoto(ctx context.Context, id int64, filename string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE bootcamps SET photo = $1 WHERE id = $2`, filename, id)
	if err != nil {
		return fmt.Errorf("error updating bootcamp photo: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBootcampNotFound
	}
	return nil
}

// UpdateAverageCost persists the derived average course cost. A nil value
// clears the average (no courses remain).
func (r *BootcampRepository) UpdateAverageCost(ctx context.Context, id int64, averageCost *int) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE bootcamps SET average_cost = $1 WHERE id = $2`, averageCost, id)
	if err != nil {
		return fmt.Errorf("error updating average cost: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBootcampNotFound
	}
	return nil
}

// Delete deletes a bootcamp by ID
func (r *BootcampRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM bootcamps WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting bootcamp: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBootcampNotFound
	}
	return nil
}

// WithinRadius retrieves bootcamps within the given distance (miles) of a
// point, using a great-circle distance predicate.
func (r *BootcampRepository) WithinRadius(ctx context.Context, lat, lng, miles float64) ([]*models.Bootcamp, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bootcamps
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
		  AND 3963 * acos(
		      LEAST(1.0,
		          cos(radians($1)) * cos(radians(latitude)) * cos(radians(longitude) - radians($2))
		        + sin(radians($1)) * sin(radians(latitude))
		      )
		  ) <= $3
		ORDER BY created_at DESC
	`, bootcampColumns)

	rows, err := r.db.Query(ctx, query, lat, lng, miles)
	if err != nil {
		return nil, fmt.Errorf("error searching bootcamps by radius: %w", err)
	}
	defer rows.Close()

	var bootcamps []*models.Bootcamp
	for rows.Next() {
		b, err := scanBootcamp(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning bootcamp: %w", err)
		}
		bootcamps = append(bootcamps, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bootcamps, nil
}

// GetRefsByIDs retrieves the restricted {id, name, description} subset for a
// set of bootcamps, keyed by ID. Used for inline expansion on course lists.
func (r *BootcampRepository) GetRefsByIDs(ctx context.Context, ids []int64) (map[int64]*models.BootcampRef, error) {
	refs := make(map[int64]*models.BootcampRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name, description FROM bootcamps WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving bootcamp refs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ref models.BootcampRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Description); err != nil {
			return nil, fmt.Errorf("error scanning bootcamp ref: %w", err)
		}
		refs[ref.ID] = &ref
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}
