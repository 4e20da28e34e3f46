package server

import (
	"errors"

	"bloglist/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListBlogs handles GET /api/blogs. No authentication required; each
// blog carries its owner's public fields when an owner exists.
func (s *Server) ListBlogs(c *fiber.Ctx) error {
	blogs, err := s.blogRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(blogs)
}

// CreateBlog handles POST /api/blogs.
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		URL    string `json:"url"`
		Likes  int    `json:"likes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	if req.Title == "" || req.URL == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("title and url are required"))
	}
	if req.Likes < 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("likes must not be negative"))
	}

	blog := &models.Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
		UserID: &userID,
	}

	if err := s.blogRepo.Create(c.Context(), blog); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	// Reload so the response carries the owner's public fields. The blog
	// is already durable at this point; a failed reload falls back to
	// the bare record rather than undoing the create.
	created, err := s.blogRepo.GetByID(c.Context(), blog.ID)
	if err != nil {
		return c.Status(fiber.StatusCreated).JSON(blog)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateBlog handles PUT /api/blogs/:id. Only fields present in the
// request body are replaced.
func (s *Server) UpdateBlog(c *fiber.Ctx) error {
	blogID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Title  *string `json:"title"`
		Author *string `json:"author"`
		URL    *string `json:"url"`
		Likes  *int    `json:"likes"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	if (req.Title != nil && *req.Title == "") || (req.URL != nil && *req.URL == "") {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("title and url must not be empty"))
	}
	if req.Likes != nil && *req.Likes < 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("likes must not be negative"))
	}

	blog, err := s.blogRepo.GetByID(c.Context(), blogID)
	if err != nil {
		return s.respondRepoError(c, err)
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Author != nil {
		blog.Author = *req.Author
	}
	if req.URL != nil {
		blog.URL = *req.URL
	}
	if req.Likes != nil {
		blog.Likes = *req.Likes
	}

	if err := s.blogRepo.Update(c.Context(), blog); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(blog)
}

// DeleteBlog handles DELETE /api/blogs/:id. Only the owner may delete;
// an unknown id is reported as 400 just like a malformed one.
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	blogID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	blog, err := s.blogRepo.GetByID(c.Context(), blogID)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if !blog.OwnedBy(userID) {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("user not authorized"))
	}

	if err := s.blogRepo.Delete(c.Context(), blogID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// respondRepoError maps repository AppErrors onto their HTTP status.
func (s *Server) respondRepoError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		case "VALIDATION_ERROR":
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}
