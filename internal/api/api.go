// Package api defines the request and response types of the HTTP surface.
package api

// CreateUserRequest is the request body for POST /users.
// Field-level validation beyond presence happens in the usecase, because the
// error ordering (password strength before email before uniqueness) and the
// error payload shape are business rules, not transport rules.
type CreateUserRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	BirthDate string `json:"birthDate" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// UserResponse carries the public fields of a user. Password hash and salt
// never appear here.
type UserResponse struct {
	ID        uint              `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	BirthDate string            `json:"birthDate"`
	Addresses []AddressResponse `json:"addresses,omitempty"`
}

// AddressResponse carries one address sub-record of a user.
type AddressResponse struct {
	ID           uint   `json:"id"`
	PostalCode   int    `json:"postalCode"`
	Street       string `json:"street"`
	StreetNumber int    `json:"streetNumber"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// LoginResponse is the success body for POST /login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// PaginationResponse describes the window returned by GET /users.
type PaginationResponse struct {
	TotalQuantity   int64 `json:"totalQuantity"`
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// ListUsersResponse is the success body for GET /users.
type ListUsersResponse struct {
	Users      []UserResponse     `json:"users"`
	Pagination PaginationResponse `json:"pagination"`
}

// ErrorResponse is the wire shape of every domain failure.
type ErrorResponse struct {
	Message        string `json:"message"`
	Code           int    `json:"code"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}
