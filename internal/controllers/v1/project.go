package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngo-ledger/backend/internal/httputil"
	"github.com/ngo-ledger/backend/internal/models"
)

// RegisterProjectRoutes registers the routes for projects with
// the RouterGroup that is passed.
func RegisterProjectRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsProjects)
		r.GET("", GetProjects)
		r.POST("", CreateProjects)
	}

	// Project with ID
	{
		r.OPTIONS("/:id", OptionsProjectDetail)
		r.GET("/:id", GetProject)
		r.PATCH("/:id", UpdateProject)
		r.DELETE("/:id", DeleteProject)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Router			/v1/projects [options]
func OptionsProjects(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/projects/{id} [options]
func OptionsProjectDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Project{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Get project
// @Description	Returns a specific project
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectResponse
// @Failure		400	{object}	ProjectResponse
// @Failure		404	{object}	ProjectResponse
// @Failure		500	{object}	ProjectResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/projects/{id} [get]
func GetProject(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	var project models.Project
	err = models.DB.First(&project, "id = ?", uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	data := newProject(c, project)
	c.JSON(http.StatusOK, ProjectResponse{Data: &data})
}

// @Summary		Get projects
// @Description	Returns a list of projects
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectListResponse
// @Failure		400	{object}	ProjectListResponse
// @Failure		500	{object}	ProjectListResponse
// @Router			/v1/projects [get]
// @Param			name	query	string	false	"Glob pattern for the name. Case insensitive"
// @Param			offset	query	uint	false	"The offset of the first Project returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Projects to return. Defaults to 50."
func GetProjects(c *gin.Context) {
	var filter ProjectQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ProjectListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var projects []models.Project
	err := models.DB.Order("name ASC").Find(&projects).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Project, 0)
	for _, project := range projects {
		if filter.Name != "" && !matches(filter.Name, project.Name) {
			continue
		}
		data = append(data, newProject(c, project))
	}

	total := len(data)
	limit := pageLimit(setFields, filter.Limit)
	data = paginate(data, filter.Offset, limit)

	c.JSON(http.StatusOK, ProjectListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  int64(total),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create projects
// @Description	Creates projects from the list of submitted project data. Projects with a positive budget get an initial budget allocation. The response code is the highest response code number that a single project creation would have caused. If it is not equal to 201, at least one project has an error.
// @Tags			Projects
// @Produce		json
// @Success		201			{object}	ProjectCreateResponse
// @Failure		400			{object}	ProjectCreateResponse
// @Failure		500			{object}	ProjectCreateResponse
// @Param			projects	body		[]ProjectEditable	true	"Projects"
// @Router			/v1/projects [post]
func CreateProjects(c *gin.Context) {
	var editables []ProjectEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ProjectCreateResponse{}

	for _, editable := range editables {
		project := editable.model()
		err := models.DB.Create(&project).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newProject(c, project)
		r.Data = append(r.Data, ProjectResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update project
// @Description	Updates an existing project. Only values to be updated need to be specified. The budget cannot be changed, adjust the budget allocations instead.
// @Tags			Projects
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProjectResponse
// @Failure		400		{object}	ProjectResponse
// @Failure		404		{object}	ProjectResponse
// @Failure		500		{object}	ProjectResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			project	body		ProjectEditable	true	"Project"
// @Router			/v1/projects/{id} [patch]
func UpdateProject(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	var project models.Project
	err = models.DB.First(&project, "id = ?", uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	// Fields not contained in the body keep their current value
	update := newProject(c, project).ProjectEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	project.Name = update.Name
	project.Note = update.Note
	err = models.DB.Save(&project).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	data := newProject(c, project)
	c.JSON(http.StatusOK, ProjectResponse{Data: &data})
}

// @Summary		Delete project
// @Description	Deletes a project. Projects that are referenced by budget allocations or transactions cannot be deleted.
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	var project models.Project
	err = models.DB.First(&project, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	err = models.DB.Delete(&project).Error
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
