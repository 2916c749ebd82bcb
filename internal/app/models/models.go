package models

// Role defines the user role type
type Role string

const (
	RoleUser      Role = "user"
	RolePublisher Role = "publisher"
	RoleAdmin     Role = "admin" // provisioned by the seeder, never via register
)

// MinimumSkill is the skill level required by a course
type MinimumSkill string

const (
	SkillBeginner     MinimumSkill = "beginner"
	SkillIntermediate MinimumSkill = "intermediate"
	SkillAdvance      MinimumSkill = "advance"
)
