package handlers

import (
	"net/http"
	"strconv"

	"hostel-directory-backend/internal/database/models"
	"hostel-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for projects
type ProjectHandler struct {
	service service.ProjectServiceInterface
	tags    entityTagHandler
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projects service.ProjectServiceInterface, tags service.TagServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		service: projects,
		tags:    entityTagHandler{kind: models.EntityTypeProject, tags: tags},
	}
}

// ListProjects handles GET /api/v1/projects
// @Summary List projects
// @Description List active projects with members and tags, newest first, optionally filtered by tags
// @Tags projects
// @Produce json
// @Param filter query []string false "Category:Option filter" collectionFormat(multi)
// @Success 200 {array} service.ProjectResponse "Projects"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	filters, ok := filtersFromQuery(c)
	if !ok {
		return
	}

	projects, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		handleServiceError(c, err, "list projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /api/v1/projects/:id
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectResponse "Project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := uuidParam(c, "id", "project")
	if !ok {
		return
	}

	project, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "get project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject handles POST /api/v1/projects
// @Summary Create a project
// @Description Create a project with team members and tags in one step
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} service.ProjectResponse "Created project"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "create project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject handles PUT /api/v1/projects/:id
// @Summary Update a project
// @Description Replace a project's fields. Members and tags are replaced only when present.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param project body service.UpdateProjectRequest true "Project data"
// @Success 200 {object} service.ProjectResponse "Updated project"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := uuidParam(c, "id", "project")
	if !ok {
		return
	}
	var req service.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err, "update project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /api/v1/projects/:id
// @Summary Delete a project
// @Description Hide a project. With purge=true the project row, its members and its tag links are removed for good.
// @Tags projects
// @Param id path string true "Project ID (UUID)"
// @Param purge query bool false "Hard delete"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := uuidParam(c, "id", "project")
	if !ok {
		return
	}

	purge := false
	if raw := c.Query("purge"); raw != "" {
		var err error
		if purge, err = strconv.ParseBool(raw); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "purge must be true or false"})
			return
		}
	}

	var err error
	if purge {
		err = h.service.Purge(c.Request.Context(), id)
	} else {
		err = h.service.Delete(c.Request.Context(), id)
	}
	if err != nil {
		handleServiceError(c, err, "delete project")
		return
	}
	c.Status(http.StatusNoContent)
}

// SetProjectTags handles PUT /api/v1/projects/:id/tags
// @Summary Replace a project's tags
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param tags body service.SetTagsRequest true "Tag mappings"
// @Success 200 {object} service.TagSetResponse "Resulting tag set"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/tags [put]
func (h *ProjectHandler) SetProjectTags(c *gin.Context) {
	h.tags.setTags(c)
}

// LinkProjectTag handles POST /api/v1/projects/:id/tag-links
// @Summary Link one option to a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param link body service.LinkTagRequest true "Category and option IDs"
// @Success 200 {object} service.TagSetResponse "Resulting tag set"
// @Failure 400 {object} ErrorResponse "Option does not belong to the category"
// @Failure 404 {object} ErrorResponse "Project, category or option not found"
// @Security BearerAuth
// @Router /projects/{id}/tag-links [post]
func (h *ProjectHandler) LinkProjectTag(c *gin.Context) {
	h.tags.linkTag(c)
}
