package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	Bootcamps *BootcampRepository
	Courses   *CourseRepository
	Users     *UserRepository
}

// NewRepositories creates all repositories backed by the given pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Bootcamps: NewBootcampRepository(db),
		Courses:   NewCourseRepository(db),
		Users:     NewUserRepository(db),
	}
}
