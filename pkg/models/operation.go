package models

import (
	"time"
)

// CollisionPolicy defines what happens when a destination file already exists
type CollisionPolicy string

const (
	// CollisionOverwrite lets the rename replace the existing file.
	// This silently loses the previous destination file.
	CollisionOverwrite CollisionPolicy = "overwrite"
	// CollisionFail aborts the run with a MoveError instead of replacing
	CollisionFail CollisionPolicy = "fail"
)

// Valid reports whether the policy is known
func (p CollisionPolicy) Valid() bool {
	return p == CollisionOverwrite || p == CollisionFail
}

// OrganizeOperation represents one organize run
type OrganizeOperation struct {
	ID              string
	Directory       string
	Verbose         bool
	OnCollision     CollisionPolicy
	ExcludePatterns []string
	CreatedAt       time.Time
	StartedAt       *time.Time
	CompletedAt     *time.Time
}

// Validate checks if the operation configuration is valid
func (op *OrganizeOperation) Validate() error {
	if op.Directory == "" {
		return &ValidationError{Field: "Directory", Message: "directory is required"}
	}
	if !op.OnCollision.Valid() {
		return &ValidationError{Field: "OnCollision", Message: "must be 'overwrite' or 'fail'"}
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
