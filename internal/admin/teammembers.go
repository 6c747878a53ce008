package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	tmModel "github.com/clubhq/membership/internal/teammember/model"
)

// TeamMembersList handles GET /admin/team-members.
func (h *Handler) TeamMembersList(c *gin.Context) {
	memberships, err := h.tmRepo.List(c.Request.Context(), nil)
	if err != nil {
		h.errorPage(c, "error listing team memberships", err)
		return
	}

	c.HTML(http.StatusOK, "team_members_list.html", gin.H{
		"Title":       "Team members",
		"Flash":       takeFlash(c),
		"Memberships": memberships,
	})
}

// TeamMemberAddForm handles GET /admin/team-members/add. Members and teams
// populate the form's select boxes.
func (h *Handler) TeamMemberAddForm(c *gin.Context) {
	members, err := h.memberRepo.List(c.Request.Context(), nil)
	if err != nil {
		h.errorPage(c, "error loading members for membership form", err)
		return
	}
	teams, err := h.teamRepo.List(c.Request.Context(), nil)
	if err != nil {
		h.errorPage(c, "error loading teams for membership form", err)
		return
	}

	c.HTML(http.StatusOK, "team_member_form.html", gin.H{
		"Title":   "Add member to team",
		"Members": members,
		"Teams":   teams,
	})
}

// TeamMemberAdd handles POST /admin/team-members/add.
func (h *Handler) TeamMemberAdd(c *gin.Context) {
	memberID, _ := strconv.ParseInt(c.PostForm("member_id"), 10, 64)
	teamID, _ := strconv.ParseInt(c.PostForm("team_id"), 10, 64)

	_, err := h.memberships.Create(c.Request.Context(), &tmModel.CreateMembershipRequest{
		MemberID: memberID,
		TeamID:   teamID,
	})
	if err != nil {
		switch {
		case errors.Is(err, tmModel.ErrInvalidMembership):
			setFlash(c, "Pick both a member and a team.")
		case errors.Is(err, tmModel.ErrMembershipExists):
			setFlash(c, "That member is already on the team.")
		default:
			h.errorPage(c, "error creating team membership", err)
			return
		}
		redirect(c, "/admin/team-members/add")
		return
	}

	setFlash(c, fmt.Sprintf("Member %d added to team %d.", memberID, teamID))
	redirect(c, "/admin/team-members")
}

// TeamMemberDelete handles POST /admin/team-members/:member_id/:team_id/delete.
func (h *Handler) TeamMemberDelete(c *gin.Context) {
	memberID, memberErr := strconv.ParseInt(c.Param("member_id"), 10, 64)
	teamID, teamErr := strconv.ParseInt(c.Param("team_id"), 10, 64)
	if memberErr != nil || teamErr != nil {
		h.notFoundPage(c, "No such team membership.")
		return
	}

	_, err := h.memberships.Delete(c.Request.Context(), memberID, teamID)
	if err != nil {
		if errors.Is(err, tmModel.ErrMembershipNotFound) {
			h.notFoundPage(c, fmt.Sprintf("Member %d is not on team %d.", memberID, teamID))
			return
		}
		h.errorPage(c, "error deleting team membership", err)
		return
	}

	setFlash(c, fmt.Sprintf("Member %d removed from team %d.", memberID, teamID))
	redirect(c, "/admin/team-members")
}
