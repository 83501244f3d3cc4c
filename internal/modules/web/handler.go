package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"usersignup/internal/domain"
	"usersignup/internal/modules/signup"
	"usersignup/internal/pkg/jwt"
	"usersignup/internal/pkg/response"
	"usersignup/internal/repository"
)

//go:embed templates/*.html
var templatesFS embed.FS

// TokenReader reads durable client storage.
type TokenReader interface {
	Get(ctx context.Context, key string) (string, error)
}

// Handler serves the signup and home views.
type Handler struct {
	form      *signup.Form
	navigator *Navigator
	sessions  signup.SessionStore
	tokens    TokenReader
}

func NewHandler(form *signup.Form, navigator *Navigator, sessions signup.SessionStore, tokens TokenReader) *Handler {
	return &Handler{
		form:      form,
		navigator: navigator,
		sessions:  sessions,
		tokens:    tokens,
	}
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/signup") })
	r.GET("/signup", h.ShowSignup)
	r.POST("/signup", h.SubmitSignup)
	r.GET(signup.HomePath, h.Home)
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	api := r.Group("/api")
	{
		api.GET("/session", h.GetSession)
	}
}

// ShowSignup mounts a fresh form.
func (h *Handler) ShowSignup(c *gin.Context) {
	h.form.Reset()
	h.renderSignup(c, http.StatusOK)
}

func (h *Handler) SubmitSignup(c *gin.Context) {
	var req SignupFormRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(err)
		h.renderSignup(c, http.StatusBadRequest)
		return
	}

	h.form.SetFirstName(req.FirstName)
	h.form.SetLastName(req.LastName)
	h.form.SetEmail(req.Email)
	h.form.SetPassword(req.Password)

	state := h.form.Submit(c.Request.Context())
	switch state {
	case signup.StateNavigating:
		target := h.navigator.Take()
		if target == "" {
			target = signup.HomePath
		}
		c.Redirect(http.StatusSeeOther, target)
	case signup.StateError:
		h.renderSignup(c, http.StatusUnprocessableEntity)
	case signup.StateSubmitting:
		h.renderSignup(c, http.StatusConflict)
	default:
		h.renderSignup(c, http.StatusOK)
	}
}

func (h *Handler) renderSignup(c *gin.Context, status int) {
	c.HTML(status, "signup.html", signupPage{
		Draft:      h.form.Draft(),
		Error:      h.form.ErrorMessage(),
		Submitting: h.form.IsSubmitting(),
	})
}

func (h *Handler) Home(c *gin.Context) {
	user := h.sessions.GetUser()
	if user == nil {
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	page := homePage{Name: user.DisplayName()}
	token, err := h.storedToken(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
	}
	if token != "" {
		page.HasToken = true
		if claims, err := jwt.Inspect(token); err == nil {
			if left := claims.ExpiresIn(time.Now()); left > 0 {
				page.ExpiresIn = left.Round(time.Minute).String()
			}
		}
	}

	c.HTML(http.StatusOK, "home.html", page)
}

func (h *Handler) GetSession(c *gin.Context) {
	token, err := h.storedToken(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to read client storage")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":      h.sessions.GetUser(),
		"has_token": token != "",
	})
}

func (h *Handler) storedToken(ctx context.Context) (string, error) {
	token, err := h.tokens.Get(ctx, domain.TokenStorageKey)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		log.Printf("web storage_read_failed error=%q", err.Error())
		return "", err
	}
	return token, nil
}
