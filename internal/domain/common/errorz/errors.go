package errorz

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrClubNotFound        = errors.New("club not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrProfileNotFound     = errors.New("student profile not found")

	// ErrAlreadyMember - the applicant already holds a membership in the club.
	ErrAlreadyMember = errors.New("user is already a member of this club")
	// ErrDuplicateApplication - a pending application for the same (user, club) exists.
	ErrDuplicateApplication = errors.New("a pending application for this club already exists")
	// ErrAppNotProcessable - the application is missing or already decided.
	// Approve/reject deliberately do not distinguish the two cases.
	ErrAppNotProcessable = errors.New("application not found or already processed")
	// ErrNotApplicant - only the applicant may cancel their own pending application.
	ErrNotApplicant = errors.New("application does not belong to the requesting user")

	ErrEmailTaken         = errors.New("email is already registered")
	ErrStudentNumberTaken = errors.New("student number is already registered")
	ErrClubNameTaken      = errors.New("club name is already taken")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("operation is not allowed for this role")
)
