package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	memberModel "github.com/clubhq/membership/internal/member/model"
	"github.com/clubhq/membership/pkg/boolcast"
)

// MembersList handles GET /admin/members.
func (h *Handler) MembersList(c *gin.Context) {
	members, err := h.memberRepo.List(c.Request.Context(), nil)
	if err != nil {
		h.errorPage(c, "error listing members", err)
		return
	}

	c.HTML(http.StatusOK, "members_list.html", gin.H{
		"Title":   "Members",
		"Flash":   takeFlash(c),
		"Members": members,
	})
}

// MemberView handles GET /admin/members/:id.
func (h *Handler) MemberView(c *gin.Context) {
	id, ok := h.pathID(c, "member")
	if !ok {
		return
	}

	member, err := h.members.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, memberModel.ErrMemberNotFound) {
			h.notFoundPage(c, fmt.Sprintf("Member %d does not exist.", id))
			return
		}
		h.errorPage(c, "error viewing member", err)
		return
	}

	c.HTML(http.StatusOK, "member_view.html", gin.H{
		"Title":  member.FirstName + " " + member.LastName,
		"Flash":  takeFlash(c),
		"Member": member,
	})
}

// MemberAddForm handles GET /admin/members/add.
func (h *Handler) MemberAddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "member_form.html", gin.H{
		"Title":  "Add member",
		"Action": "/admin/members/add",
		"Member": &memberModel.MemberResponse{Active: true},
	})
}

// MemberAdd handles POST /admin/members/add.
func (h *Handler) MemberAdd(c *gin.Context) {
	req := memberModel.CreateMemberRequest{
		Active:     formFlag(c, "active"),
		Newsletter: formFlag(c, "newsletter"),
		Volunteer:  formFlag(c, "volunteer"),
	}
	req.FirstName, _ = formString(c, "first_name")
	req.LastName, _ = formString(c, "last_name")
	req.Email, _ = formString(c, "email")
	req.Phone, _ = formString(c, "phone")

	member, err := h.members.Create(c.Request.Context(), &req)
	if err != nil {
		h.memberFormError(c, "Add member", "/admin/members/add", &req, err)
		return
	}

	setFlash(c, fmt.Sprintf("Member %s %s created.", member.FirstName, member.LastName))
	redirect(c, "/admin/members")
}

// MemberEditForm handles GET /admin/members/:id/edit.
func (h *Handler) MemberEditForm(c *gin.Context) {
	id, ok := h.pathID(c, "member")
	if !ok {
		return
	}

	member, err := h.members.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, memberModel.ErrMemberNotFound) {
			h.notFoundPage(c, fmt.Sprintf("Member %d does not exist.", id))
			return
		}
		h.errorPage(c, "error loading member for edit", err)
		return
	}

	c.HTML(http.StatusOK, "member_form.html", gin.H{
		"Title":  "Edit member",
		"Action": fmt.Sprintf("/admin/members/%d/edit", id),
		"Member": member,
	})
}

// MemberEdit handles POST /admin/members/:id/edit. The edit form submits
// every field, so unchecked checkboxes mean false, not absent.
func (h *Handler) MemberEdit(c *gin.Context) {
	id, ok := h.pathID(c, "member")
	if !ok {
		return
	}

	firstName, _ := formString(c, "first_name")
	lastName, _ := formString(c, "last_name")
	email, _ := formString(c, "email")
	phone := c.PostForm("phone")

	req := memberModel.UpdateMemberRequest{
		FirstName:  &firstName,
		LastName:   &lastName,
		Email:      &email,
		Phone:      &phone,
		Active:     boolcast.FlagOf(formCheckbox(c, "active")),
		Newsletter: boolcast.FlagOf(formCheckbox(c, "newsletter")),
		Volunteer:  boolcast.FlagOf(formCheckbox(c, "volunteer")),
	}

	member, err := h.members.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, memberModel.ErrMemberNotFound) {
			h.notFoundPage(c, fmt.Sprintf("Member %d does not exist.", id))
			return
		}
		if errors.Is(err, memberModel.ErrMemberExists) {
			c.HTML(http.StatusOK, "member_form.html", gin.H{
				"Title":  "Edit member",
				"Action": fmt.Sprintf("/admin/members/%d/edit", id),
				"Error":  "A member with this email already exists.",
				"Member": &memberModel.MemberResponse{
					ID: id, FirstName: firstName, LastName: lastName,
					Email: email, Phone: phone,
					Active:     req.Active.Value,
					Newsletter: req.Newsletter.Value,
					Volunteer:  req.Volunteer.Value,
				},
			})
			return
		}
		h.errorPage(c, "error updating member", err)
		return
	}

	setFlash(c, fmt.Sprintf("Member %s %s updated.", member.FirstName, member.LastName))
	redirect(c, "/admin/members")
}

// MemberDeleteForm handles GET /admin/members/:id/delete.
func (h *Handler) MemberDeleteForm(c *gin.Context) {
	id, ok := h.pathID(c, "member")
	if !ok {
		return
	}

	member, err := h.members.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, memberModel.ErrMemberNotFound) {
			h.notFoundPage(c, fmt.Sprintf("Member %d does not exist.", id))
			return
		}
		h.errorPage(c, "error loading member for delete", err)
		return
	}

	c.HTML(http.StatusOK, "member_delete.html", gin.H{
		"Title":  "Delete member",
		"Member": member,
	})
}

// MemberDelete handles POST /admin/members/:id/delete.
func (h *Handler) MemberDelete(c *gin.Context) {
	id, ok := h.pathID(c, "member")
	if !ok {
		return
	}

	member, err := h.members.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, memberModel.ErrMemberNotFound) {
			h.notFoundPage(c, fmt.Sprintf("Member %d does not exist.", id))
			return
		}
		h.errorPage(c, "error deleting member", err)
		return
	}

	setFlash(c, fmt.Sprintf("Member %s %s deleted.", member.FirstName, member.LastName))
	redirect(c, "/admin/members")
}

func (h *Handler) memberFormError(c *gin.Context, title, action string, req *memberModel.CreateMemberRequest, err error) {
	message := "An unexpected error occurred."
	switch {
	case errors.Is(err, memberModel.ErrInvalidMember):
		message = "First name, last name, and email are required."
	case errors.Is(err, memberModel.ErrMemberExists):
		message = "A member with this email already exists."
	default:
		h.logger.Errorw("error creating member", "error", err)
	}

	c.HTML(http.StatusOK, "member_form.html", gin.H{
		"Title":  title,
		"Action": action,
		"Error":  message,
		"Member": &memberModel.MemberResponse{
			FirstName: req.FirstName, LastName: req.LastName,
			Email: req.Email, Phone: req.Phone,
			Active:     req.Active.Or(true),
			Newsletter: req.Newsletter.Or(false),
			Volunteer:  req.Volunteer.Or(false),
		},
	})
}

// pathID parses the :id parameter, rendering a 404 page on garbage.
func (h *Handler) pathID(c *gin.Context, entity string) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.notFoundPage(c, fmt.Sprintf("No %s named %q.", entity, raw))
		return 0, false
	}
	return id, true
}
