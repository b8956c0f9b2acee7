package service

import "errors"

// Business errors surfaced to the HTTP boundary. The message texts are part
// of the wire contract and match the responses clients already depend on.
var (
	// ErrMissingCredentials covers an empty username or password on
	// register and login.
	ErrMissingCredentials = errors.New("Username and password required")

	// ErrUsernameTaken is returned when registering an already existing
	// username, whether caught by the pre-check or by the unique index.
	ErrUsernameTaken = errors.New("Username already taken")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("Invalid username or password")

	// ErrMissingFields covers any empty reservation field on create and
	// update, including the username.
	ErrMissingFields = errors.New("Missing fields (including username)")

	// ErrUsernameRequired is returned when a delete request carries no
	// username.
	ErrUsernameRequired = errors.New("Username is required to delete a reservation")

	// ErrNotAllowedEdit and ErrNotAllowedDelete are the collapsed
	// not-found/not-owner outcomes of update and delete. A caller cannot
	// tell whether the reservation exists.
	ErrNotAllowedEdit   = errors.New("Not allowed to edit this reservation")
	ErrNotAllowedDelete = errors.New("Not allowed to delete this reservation")

	// ErrInternalServer hides storage failures from the client.
	ErrInternalServer = errors.New("Database error")
)
