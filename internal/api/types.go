package api

import "time"

// --- Faculty types ---

// CreateFacultyRequest is the request body for POST /api/v1/faculties.
type CreateFacultyRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=10000"`
}

// UpdateFacultyRequest is the request body for PUT /api/v1/faculties/{id}.
// Nil fields preserve the current value.
type UpdateFacultyRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
}

// FacultyResponse is the JSON representation of a faculty.
type FacultyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FacultyListResponse is the response for faculty list endpoints.
type FacultyListResponse struct {
	Faculties []*FacultyResponse `json:"faculties"`
}

// --- Module types ---

// CreateModuleRequest is the request body for POST /api/v1/modules.
type CreateModuleRequest struct {
	FacultyID string `json:"faculty_id" validate:"required,uuid4"`
	Name      string `json:"name" validate:"required,max=255"`
	Year      int    `json:"year" validate:"required,min=1,max=10"`
}

// UpdateModuleRequest is the request body for PUT /api/v1/modules/{id}.
// Nil fields preserve the current value. The owning faculty is immutable.
type UpdateModuleRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=255"`
	Year *int    `json:"year" validate:"omitempty,min=1,max=10"`
}

// ModuleResponse is the JSON representation of a module.
type ModuleResponse struct {
	ID        string    `json:"id"`
	FacultyID string    `json:"faculty_id"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ModuleListResponse is the response for module list endpoints.
type ModuleListResponse struct {
	Modules []*ModuleResponse `json:"modules"`
}

// --- Subject types ---

// CreateSubjectRequest is the request body for POST /api/v1/modules/{id}/subjects.
type CreateSubjectRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=10000"`
}

// UpdateSubjectRequest is the request body for PUT /api/v1/subjects/{id}.
// Nil fields preserve the current value. The owning module is immutable.
type UpdateSubjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
}

// SubjectResponse is the JSON representation of a subject.
type SubjectResponse struct {
	ID          string    `json:"id"`
	ModuleID    string    `json:"module_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SubjectListResponse is the response for subject list endpoints.
type SubjectListResponse struct {
	Subjects []*SubjectResponse `json:"subjects"`
}

// --- Lecture types ---

// CreateLectureRequest is the request body for POST /api/v1/subjects/{id}/lectures.
type CreateLectureRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description" validate:"max=10000"`
	Lecturer    string     `json:"lecturer" validate:"max=255"`
	DeliveredAt *time.Time `json:"delivered_at"`
}

// UpdateLectureRequest is the request body for PUT /api/v1/lectures/{id}.
// Nil fields preserve the current value. The owning subject is immutable.
type UpdateLectureRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description" validate:"omitempty,max=10000"`
	Lecturer    *string    `json:"lecturer" validate:"omitempty,max=255"`
	DeliveredAt *time.Time `json:"delivered_at"`
}

// LectureResponse is the JSON representation of a lecture.
type LectureResponse struct {
	ID          string     `json:"id"`
	SubjectID   string     `json:"subject_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Lecturer    string     `json:"lecturer"`
	DeliveredAt *time.Time `json:"delivered_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// LectureListResponse is the response for lecture list endpoints.
type LectureListResponse struct {
	Lectures []*LectureResponse `json:"lectures"`
}

// --- Lecture link types ---

// CreateLinkRequest is the request body for POST /api/v1/lectures/{id}/links.
type CreateLinkRequest struct {
	Label string `json:"label" validate:"required,max=255"`
	URL   string `json:"url" validate:"required,url"`
	Kind  string `json:"kind" validate:"omitempty,oneof=video slides notes other"`
}

// UpdateLinkRequest is the request body for PUT /api/v1/links/{id}.
// Nil fields preserve the current value. The owning lecture is immutable.
type UpdateLinkRequest struct {
	Label *string `json:"label" validate:"omitempty,min=1,max=255"`
	URL   *string `json:"url" validate:"omitempty,url"`
	Kind  *string `json:"kind" validate:"omitempty,oneof=video slides notes other"`
}

// LinkResponse is the JSON representation of a lecture link.
type LinkResponse struct {
	ID        string    `json:"id"`
	LectureID string    `json:"lecture_id"`
	Label     string    `json:"label"`
	URL       string    `json:"url"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LinkListResponse is the response for link list endpoints.
type LinkListResponse struct {
	Links []*LinkResponse `json:"links"`
}

// --- User types ---

// UserResponse is the JSON representation of a user.
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Year        int       `json:"year"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserListResponse is the response for user list endpoints.
type UserListResponse struct {
	Users []*UserResponse `json:"users"`
}

// UpdateRoleRequest is the request body for PUT /api/v1/admin/users/{id}/role.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin student"`
}

// UpdateYearRequest is the request body for PUT /api/v1/admin/users/{id}/year.
// Year 0 returns the user to the unassigned state.
type UpdateYearRequest struct {
	Year *int `json:"year" validate:"required,min=0,max=10"`
}

// --- Token types ---

// CreateTokenRequest is the request body for POST /api/v1/tokens.
type CreateTokenRequest struct {
	Name      string     `json:"name" validate:"required,max=255"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// TokenResponse is the JSON representation of an API token.
// Token is only populated on creation.
type TokenResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Token      string     `json:"token,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at"`
	ExpiresAt  *time.Time `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at"`
}

// TokenListResponse is the response for token list endpoints.
type TokenListResponse struct {
	Tokens []*TokenResponse `json:"tokens"`
}
