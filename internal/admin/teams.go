package admin

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	teamModel "github.com/clubhq/membership/internal/team/model"
)

// TeamsList handles GET /admin/teams.
func (h *Handler) TeamsList(c *gin.Context) {
	teams, err := h.teamRepo.List(c.Request.Context(), nil)
	if err != nil {
		h.errorPage(c, "error listing teams", err)
		return
	}

	c.HTML(http.StatusOK, "teams_list.html", gin.H{
		"Title": "Teams",
		"Flash": takeFlash(c),
		"Teams": teams,
	})
}

// TeamView handles GET /admin/teams/:id.
func (h *Handler) TeamView(c *gin.Context) {
	id, ok := h.pathID(c, "team")
	if !ok {
		return
	}

	team, err := h.teams.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			h.notFoundPage(c, fmt.Sprintf("Team %d does not exist.", id))
			return
		}
		h.errorPage(c, "error viewing team", err)
		return
	}

	c.HTML(http.StatusOK, "team_view.html", gin.H{
		"Title": team.Name,
		"Flash": takeFlash(c),
		"Team":  team,
	})
}

// TeamAddForm handles GET /admin/teams/add.
func (h *Handler) TeamAddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "team_form.html", gin.H{
		"Title":  "Add team",
		"Action": "/admin/teams/add",
		"Team":   &teamModel.TeamResponse{},
	})
}

// TeamAdd handles POST /admin/teams/add.
func (h *Handler) TeamAdd(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	req.Name, _ = formString(c, "name")
	req.Description, _ = formString(c, "description")
	req.Notes, _ = formString(c, "notes")

	team, err := h.teams.Create(c.Request.Context(), &req)
	if err != nil {
		h.teamFormError(c, "Add team", "/admin/teams/add", &req, err)
		return
	}

	setFlash(c, fmt.Sprintf("Team %s created.", team.Name))
	redirect(c, "/admin/teams")
}

// TeamEditForm handles GET /admin/teams/:id/edit.
func (h *Handler) TeamEditForm(c *gin.Context) {
	id, ok := h.pathID(c, "team")
	if !ok {
		return
	}

	team, err := h.teams.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			h.notFoundPage(c, fmt.Sprintf("Team %d does not exist.", id))
			return
		}
		h.errorPage(c, "error loading team for edit", err)
		return
	}

	c.HTML(http.StatusOK, "team_form.html", gin.H{
		"Title":  "Edit team",
		"Action": fmt.Sprintf("/admin/teams/%d/edit", id),
		"Team":   team,
	})
}

// TeamEdit handles POST /admin/teams/:id/edit.
func (h *Handler) TeamEdit(c *gin.Context) {
	id, ok := h.pathID(c, "team")
	if !ok {
		return
	}

	name, _ := formString(c, "name")
	description := c.PostForm("description")
	notes := c.PostForm("notes")

	req := teamModel.UpdateTeamRequest{
		Name:        &name,
		Description: &description,
		Notes:       &notes,
	}

	team, err := h.teams.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			h.notFoundPage(c, fmt.Sprintf("Team %d does not exist.", id))
			return
		}
		if errors.Is(err, teamModel.ErrInvalidTeam) || errors.Is(err, teamModel.ErrTeamExists) {
			message := "Name is required."
			if errors.Is(err, teamModel.ErrTeamExists) {
				message = "A team with this name already exists."
			}
			c.HTML(http.StatusOK, "team_form.html", gin.H{
				"Title":  "Edit team",
				"Action": fmt.Sprintf("/admin/teams/%d/edit", id),
				"Error":  message,
				"Team": &teamModel.TeamResponse{
					ID: id, Name: name, Description: description, Notes: notes,
				},
			})
			return
		}
		h.errorPage(c, "error updating team", err)
		return
	}

	setFlash(c, fmt.Sprintf("Team %s updated.", team.Name))
	redirect(c, "/admin/teams")
}

// TeamDeleteForm handles GET /admin/teams/:id/delete.
func (h *Handler) TeamDeleteForm(c *gin.Context) {
	id, ok := h.pathID(c, "team")
	if !ok {
		return
	}

	team, err := h.teams.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			h.notFoundPage(c, fmt.Sprintf("Team %d does not exist.", id))
			return
		}
		h.errorPage(c, "error loading team for delete", err)
		return
	}

	c.HTML(http.StatusOK, "team_delete.html", gin.H{
		"Title": "Delete team",
		"Team":  team,
	})
}

// TeamDelete handles POST /admin/teams/:id/delete.
func (h *Handler) TeamDelete(c *gin.Context) {
	id, ok := h.pathID(c, "team")
	if !ok {
		return
	}

	team, err := h.teams.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			h.notFoundPage(c, fmt.Sprintf("Team %d does not exist.", id))
			return
		}
		h.errorPage(c, "error deleting team", err)
		return
	}

	setFlash(c, fmt.Sprintf("Team %s deleted.", team.Name))
	redirect(c, "/admin/teams")
}

func (h *Handler) teamFormError(c *gin.Context, title, action string, req *teamModel.CreateTeamRequest, err error) {
	message := "An unexpected error occurred."
	switch {
	case errors.Is(err, teamModel.ErrInvalidTeam):
		message = "Name is required."
	case errors.Is(err, teamModel.ErrTeamExists):
		message = "A team with this name already exists."
	default:
		h.logger.Errorw("error creating team", "error", err)
	}

	c.HTML(http.StatusOK, "team_form.html", gin.H{
		"Title":  title,
		"Action": action,
		"Error":  message,
		"Team": &teamModel.TeamResponse{
			Name: req.Name, Description: req.Description, Notes: req.Notes,
		},
	})
}
