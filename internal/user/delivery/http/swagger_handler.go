package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Login godoc
// @Summary User login
// @Description Authenticate a user and get an API token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{username=string,password=string} true "Login credentials"
// @Success 200 {object} object{key=string,user=object}
// @Failure 400 {object} object{non_field_errors=[]string}
// @Router /login [post]
func (h *UserHandler) LoginDoc() {}

// Register godoc
// @Summary Register a new user
// @Description Create a new user account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body object{username=string,email=string,first_name=string,last_name=string,password=string} true "User registration data"
// @Success 201 {object} object{id=int,username=string,email=string,first_name=string,last_name=string,is_active=bool,is_staff=bool}
// @Failure 400 {object} object{username=[]string,password=[]string}
// @Router /users [post]
func (h *UserHandler) RegisterDoc() {}

// ListUsers godoc
// @Summary List users
// @Description List users with filtering, search and ordering
// @Tags Users
// @Security TokenAuth
// @Produce json
// @Param id query int false "Exact ID filter"
// @Param username query string false "Case-insensitive username substring"
// @Param email query string false "Exact email filter"
// @Param is_staff query bool false "Staff flag filter"
// @Param search query string false "Search over username, first and last name"
// @Param ordering query string false "Ordering: pk, -pk or username"
// @Success 200 {array} object{id=int,username=string,email=string}
// @Failure 400 {object} object{id=[]string}
// @Failure 401 {object} object{error=string}
// @Router /users [get]
func (h *UserHandler) ListUsersDoc() {}

// GetUser godoc
// @Summary Get user by ID
// @Tags Users
// @Security TokenAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{id=int,username=string,email=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /users/{id} [get]
func (h *UserHandler) GetUserDoc() {}

// UpdateUser godoc
// @Summary Update a user
// @Tags Users
// @Security TokenAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body object{username=string,email=string,first_name=string,last_name=string,password=string} true "Replacement data"
// @Success 200 {object} object{id=int,username=string,email=string}
// @Failure 400 {object} object{username=[]string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUserDoc() {}

// DeleteUser godoc
// @Summary Delete a user
// @Tags Users
// @Security TokenAuth
// @Param id path int true "User ID"
// @Success 200 {object} object{message=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUserDoc() {}

// ChangePassword godoc
// @Summary Change a user's password
// @Description Verify the current credentials and set a new password
// @Tags Users
// @Security TokenAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body object{username=string,current_password=string,new_password=string} true "Password change data"
// @Success 200 {object} object{id=int,username=string,email=string}
// @Failure 400 {object} object{username=[]string,current_password=[]string,new_password=[]string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /users/{id}/change-password [put]
func (h *UserHandler) ChangePasswordDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string,error=string}
// @Router /health [get]
func (h *UserHandler) HealthCheckDoc() {}
