package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MediBookLabs/clinic-scheduler/internal/audit"
	"github.com/MediBookLabs/clinic-scheduler/internal/auth"
	"github.com/MediBookLabs/clinic-scheduler/internal/config"
	"github.com/MediBookLabs/clinic-scheduler/internal/httperr"
	"github.com/MediBookLabs/clinic-scheduler/internal/middleware"
	"github.com/MediBookLabs/clinic-scheduler/internal/models"
	"github.com/MediBookLabs/clinic-scheduler/internal/validators"
)

type UserHandler struct {
	db     *gorm.DB
	config *config.Config
	roles  middleware.RoleLookup
	audit  *audit.Dispatcher

	// overridable so tests don't hit DNS
	validateEmailDomain func(string) bool
}

func NewUserHandler(
	db *gorm.DB,
	cfg *config.Config,
	roles middleware.RoleLookup,
	auditor *audit.Dispatcher,
) *UserHandler {
	return &UserHandler{
		db:                  db,
		config:              cfg,
		roles:               roles,
		audit:               auditor,
		validateEmailDomain: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type UpsertUserRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Education string `json:"education"`
	District  string `json:"district"`
}

// --------- Handlers ---------

// List returns every registered user. Bearer-gated.
func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed to list users")
		return
	}

	c.JSON(http.StatusOK, users)
}

// IsAdmin reports whether the given email belongs to an admin.
// A missing user record answers admin:false rather than faulting.
func (h *UserHandler) IsAdmin(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"admin": false})
			return
		}
		httperr.Internal(c, "failed to look up user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
}

// UpsertOrPromote dispatches the two PUT /user shapes that share a
// prefix: /user/admin/:email (guarded role elevation) and /user/:email
// (open upsert + token issue). gin's tree cannot hold a static child
// next to the email wildcard, so the split happens here, with the auth
// guards composed left to right.
func (h *UserHandler) UpsertOrPromote(c *gin.Context) {
	rest := strings.Trim(c.Param("rest"), "/")

	if target, found := strings.CutPrefix(rest, "admin/"); found {
		actor, ok := middleware.Authenticate(c, h.config)
		if !ok {
			return
		}
		if !middleware.AuthorizeAdmin(c, h.roles, actor) {
			return
		}
		h.promoteToAdmin(c, actor, target)
		return
	}

	h.upsert(c, rest)
}

// promoteToAdmin sets the target user's role to admin. The guards have
// already verified the caller.
func (h *UserHandler) promoteToAdmin(c *gin.Context, actor, targetEmail string) {
	email := strings.ToLower(strings.TrimSpace(targetEmail))

	res := h.db.Model(&models.User{}).
		Where("email = ?", email).
		Update("role", models.RoleAdmin)
	if res.Error != nil {
		httperr.Internal(c, "failed to update user role")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actor,
		Action:     "user_promoted",
		Entity:     "user",
		Metadata:   gin.H{"target": email},
	})

	c.JSON(http.StatusOK, gin.H{
		"matchedCount":  res.RowsAffected,
		"modifiedCount": res.RowsAffected,
	})
}

// upsert creates or updates the user record keyed by email and hands
// back a fresh access token. This is how a login session starts; there
// is no password flow.
func (h *UserHandler) upsert(c *gin.Context, rawEmail string) {
	email := strings.ToLower(strings.TrimSpace(rawEmail))
	if email == "" {
		httperr.BadRequest(c, "email is required")
		return
	}

	var req UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	if !h.validateEmailDomain(email) {
		httperr.BadRequest(c, "email domain does not resolve")
		return
	}

	user := models.User{
		Email:     email,
		Name:      req.Name,
		Phone:     req.Phone,
		Education: req.Education,
		District:  req.District,
	}

	if err := h.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns(
			[]string{"name", "phone", "education", "district", "updated_at"},
		),
	}).Create(&user).Error; err != nil {
		httperr.Internal(c, "failed to upsert user")
		return
	}

	token, err := auth.IssueToken(email, h.config.JWTSecret, h.config.TokenTTL)
	if err != nil {
		httperr.Internal(c, "failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{"acknowledged": true, "email": user.Email},
		"token":  token,
	})
}
