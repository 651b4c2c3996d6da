package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrGeneratorUnavailable indicates no generation provider is
	// configured. AI-assisted features are disabled without one.
	ErrGeneratorUnavailable = errors.New("generation service unavailable")

	// ErrGenerationFailed indicates the generation gateway call errored
	// or returned nothing. Workspace state is left unchanged.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrPersistence indicates durable storage could not be written.
	// The in-memory session continues; the failure is reported, not fatal.
	ErrPersistence = errors.New("persistence failed")
)
