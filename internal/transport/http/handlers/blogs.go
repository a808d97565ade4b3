package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arklim/social-platform-blog/internal/core/domain"
	"github.com/arklim/social-platform-blog/internal/core/port"
	"github.com/arklim/social-platform-blog/internal/transport/http/middleware"
	"github.com/arklim/social-platform-blog/internal/usecase"
)

// Policy actions evaluated against the "blog" resource kind.
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// BlogHandler orchestrates the per-endpoint contract: extract identity,
// authorize, validate ownership where required, invoke the service, and
// shape the response. All policy decisions live here.
type BlogHandler struct {
	blogs  *usecase.BlogService
	authz  port.Authorizer
	logger *zap.Logger
}

// NewBlogHandler constructs a BlogHandler.
func NewBlogHandler(blogs *usecase.BlogService, authz port.Authorizer, log *zap.Logger) *BlogHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &BlogHandler{blogs: blogs, authz: authz, logger: log}
}

// RegisterRoutes attaches the blog endpoints to the provided group.
func (h *BlogHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/blogs", h.ListBlogs)
	r.GET("/blogs/:id", h.GetBlog)
	r.POST("/blogs", h.CreateBlog)
	r.PUT("/blogs/:id", h.UpdateBlog)
	r.DELETE("/blogs/:id", h.DeleteBlog)
}

// authorize asks the policy oracle whether the caller's roles permit the
// action. It writes the response on deny or on oracle failure; an oracle
// failure is never treated as an allow or a deny.
func (h *BlogHandler) authorize(c *gin.Context, action string, identity domain.Identity) bool {
	allowed, err := h.authz.IsAllowed(c.Request.Context(), action, identity.Roles())
	if err != nil {
		h.logger.Error("permission check unavailable",
			zap.String("action", action),
			zap.String("user", identity.UserID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "permission check failed"))
		return false
	}

	if !allowed {
		h.logger.Warn("permission denied",
			zap.String("action", action),
			zap.String("user", identity.UserID),
			zap.String("role", identity.Role),
		)
		c.JSON(http.StatusForbidden, NewErrorResponse(c, "Permission denied"))
		return false
	}

	return true
}

func (h *BlogHandler) identity(c *gin.Context) (domain.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse(c, "missing user details in headers"))
		return domain.Identity{}, false
	}
	return identity, true
}

func blogIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid blog id"))
		return 0, false
	}
	return id, true
}

// ListBlogs godoc
// @Summary List blog posts
// @Description Returns blog posts with offset/limit pagination.
// @Tags Blogs
// @Produce json
// @Param X-User header string true "User identifier"
// @Param X-Role header string true "User role"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Limit" default(100)
// @Success 200 {array} BlogResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/blogs [get]
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	skip, ok := intQuery(c, "skip", defaultSkip)
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit", defaultLimit)
	if !ok {
		return
	}

	h.logger.Info("listing blogs", zap.String("user", identity.UserID))

	if !h.authorize(c, ActionView, identity) {
		return
	}

	blogs, err := h.blogs.ListBlogs(c.Request.Context(), skip, limit)
	if err != nil {
		h.logger.Error("list blogs failed", zap.String("user", identity.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to list blogs"))
		return
	}

	responses := make([]BlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		responses = append(responses, NewBlogResponse(blog))
	}

	c.JSON(http.StatusOK, responses)
}

// GetBlog godoc
// @Summary Get a blog post
// @Description Returns a single blog post by id. Non-existence is reported
// @Description before the permission check.
// @Tags Blogs
// @Produce json
// @Param X-User header string true "User identifier"
// @Param X-Role header string true "User role"
// @Param id path int true "Blog id"
// @Success 200 {object} BlogResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/blogs/{id} [get]
func (h *BlogHandler) GetBlog(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	id, ok := blogIDParam(c)
	if !ok {
		return
	}

	// Not-found is checked before the permission check. The ordering is
	// deliberate and matches the documented endpoint contract.
	blog, err := h.blogs.GetBlog(c.Request.Context(), id)
	if err != nil {
		h.respondLookupError(c, identity, id, err)
		return
	}

	if !h.authorize(c, ActionView, identity) {
		return
	}

	c.JSON(http.StatusOK, NewBlogResponse(*blog))
}

// CreateBlog godoc
// @Summary Create a blog post
// @Description Creates a blog post owned by the authenticated caller.
// @Tags Blogs
// @Accept json
// @Produce json
// @Param X-User header string true "User identifier"
// @Param X-Role header string true "User role"
// @Param request body BlogCreateRequest true "Blog create request"
// @Success 201 {object} BlogCreateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/blogs [post]
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	var req BlogCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid blog payload"))
		return
	}

	if !h.authorize(c, ActionCreate, identity) {
		return
	}

	blog, err := h.blogs.CreateBlog(c.Request.Context(), identity.UserID, usecase.CreateBlogInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrInvalidTitle, Status: http.StatusBadRequest, Message: "title is required"},
			{Err: usecase.ErrInvalidContent, Status: http.StatusBadRequest, Message: "content is required"},
		}, http.StatusInternalServerError, "failed to create blog")
		h.logger.Error("create blog failed", zap.String("user", identity.UserID), zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, BlogCreateResponse{
		ID:      blog.ID,
		Message: "Blog created successfully",
	})
}

// UpdateBlog godoc
// @Summary Update a blog post
// @Description Applies a partial update. Only the owner may update, and the
// @Description ownership check runs before the role-permission check.
// @Tags Blogs
// @Accept json
// @Produce json
// @Param X-User header string true "User identifier"
// @Param X-Role header string true "User role"
// @Param id path int true "Blog id"
// @Param request body BlogUpdateRequest true "Partial update"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/blogs/{id} [put]
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	id, ok := blogIDParam(c)
	if !ok {
		return
	}

	var req BlogUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid blog payload"))
		return
	}

	// Ordering contract: not-found first, then ownership, then the
	// role-permission check.
	blog, err := h.blogs.GetBlog(c.Request.Context(), id)
	if err != nil {
		h.respondLookupError(c, identity, id, err)
		return
	}

	if blog.UserID != identity.UserID {
		h.logger.Warn("update attempt on blog owned by another user",
			zap.String("user", identity.UserID),
			zap.Int64("blog_id", id),
		)
		c.JSON(http.StatusForbidden, NewErrorResponse(c, "You can only update your own blogs"))
		return
	}

	if !h.authorize(c, ActionUpdate, identity) {
		return
	}

	patch := domain.BlogPatch{Title: req.Title, Content: req.Content}
	if _, err := h.blogs.UpdateBlog(c.Request.Context(), identity.UserID, id, patch); err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrBlogNotFound, Status: http.StatusNotFound, Message: "Blog not found"},
		}, http.StatusInternalServerError, "failed to update blog")
		h.logger.Error("update blog failed", zap.Int64("blog_id", id), zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Blog updated successfully"})
}

// DeleteBlog godoc
// @Summary Delete a blog post
// @Description Permanently removes a blog post. Non-existence is reported
// @Description before the permission check.
// @Tags Blogs
// @Produce json
// @Param X-User header string true "User identifier"
// @Param X-Role header string true "User role"
// @Param id path int true "Blog id"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/blogs/{id} [delete]
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	id, ok := blogIDParam(c)
	if !ok {
		return
	}

	if _, err := h.blogs.GetBlog(c.Request.Context(), id); err != nil {
		h.respondLookupError(c, identity, id, err)
		return
	}

	if !h.authorize(c, ActionDelete, identity) {
		return
	}

	if err := h.blogs.DeleteBlog(c.Request.Context(), identity.UserID, id); err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrBlogNotFound, Status: http.StatusNotFound, Message: "Blog not found"},
		}, http.StatusInternalServerError, "failed to delete blog")
		h.logger.Error("delete blog failed", zap.Int64("blog_id", id), zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Blog deleted successfully"})
}

func (h *BlogHandler) respondLookupError(c *gin.Context, identity domain.Identity, id int64, err error) {
	RespondWithMappedError(c, err, []ErrorCase{
		{Err: usecase.ErrBlogNotFound, Status: http.StatusNotFound, Message: "Blog not found"},
	}, http.StatusInternalServerError, "failed to load blog")
	h.logger.Error("blog lookup failed",
		zap.String("user", identity.UserID),
		zap.Int64("blog_id", id),
		zap.Error(err),
	)
}

func intQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid "+name+" parameter"))
		return 0, false
	}

	return value, true
}
