package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/brickprod/callsheet-api/internal/storage"
)

// RegisterRoutes mounts the REST surface onto the router. The storage facade
// is an explicit dependency: constructed once in main, injected here.
func RegisterRoutes(r *gin.Engine, store *storage.Storage, log zerolog.Logger) {
	useJSONFieldNames()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Call sheet API is running",
		})
	})

	api := r.Group("/api")
	{
		callSheetHandler := NewCallSheetHandler(store, log)
		callSheets := api.Group("/call-sheets")
		{
			callSheets.GET("", callSheetHandler.ListCallSheets)
			callSheets.GET("/:id", callSheetHandler.GetCallSheet)
			callSheets.POST("", callSheetHandler.CreateCallSheet)
			callSheets.PUT("/:id", callSheetHandler.UpdateCallSheet)
			callSheets.DELETE("/:id", callSheetHandler.DeleteCallSheet)
		}

		templateHandler := NewTemplateHandler(store, log)
		templates := api.Group("/templates")
		{
			templates.GET("", templateHandler.ListTemplates)
			// Registered before /:id so "defaults" is not captured as an id.
			templates.GET("/defaults", templateHandler.ListDefaultTemplates)
			templates.GET("/:id", templateHandler.GetTemplate)
			templates.POST("", templateHandler.CreateTemplate)
			templates.PUT("/:id", templateHandler.UpdateTemplate)
			templates.DELETE("/:id", templateHandler.DeleteTemplate)
		}

		projectHandler := NewProjectHandler(store, log)
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("", projectHandler.CreateProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		teamMemberHandler := NewTeamMemberHandler(store, log)
		teamMembers := api.Group("/team-members")
		{
			teamMembers.GET("", teamMemberHandler.ListTeamMembers)
			teamMembers.GET("/:id", teamMemberHandler.GetTeamMember)
			teamMembers.POST("", teamMemberHandler.CreateTeamMember)
			teamMembers.PUT("/:id", teamMemberHandler.UpdateTeamMember)
			teamMembers.DELETE("/:id", teamMemberHandler.DeleteTeamMember)
		}
	}
}
