package users

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"usersignup/internal/domain"
	"usersignup/internal/pkg/validator"
)

var violationMessages = map[string]string{
	"fullname.firstname": "First name must be at least 3 characters long",
	"email":              "Invalid Email",
	"password":           "Password must be at least 6 characters long",
}

// Handler answers the registration endpoint in the shape the signup
// client consumes.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	userGroup := r.Group("/users")
	{
		userGroup.POST("/register", h.Register)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if violations := validator.Check(req); len(violations) > 0 {
		errs := make([]FieldError, 0, len(violations))
		for _, v := range violations {
			msg, ok := violationMessages[v.Field]
			if !ok {
				msg = "Invalid value"
			}
			errs = append(errs, FieldError{Msg: msg, Path: v.Field, Location: "body"})
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"message": "User already exist"})
			return
		}
		_ = c.Error(err)
		log.Printf("mockapi register_failed error=%q", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  toPublic(user),
		"token": token,
	})
}

func toPublic(u *domain.MockUser) UserPublic {
	return UserPublic{
		ID:       u.ID,
		FullName: FullName{FirstName: u.FirstName, LastName: u.LastName},
		Email:    u.Email,
	}
}
