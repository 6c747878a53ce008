package admin

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clubhq/membership/pkg/boolcast"
)

// formString returns the trimmed form value and whether it was submitted
// non-empty. Empty after trimming counts as absent.
func formString(c *gin.Context, field string) (string, bool) {
	value := strings.TrimSpace(c.PostForm(field))
	return value, value != ""
}

// formCheckbox reads a checkbox as a plain boolean. Unchecked boxes are
// omitted from the form body, which counts as false.
func formCheckbox(c *gin.Context, field string) bool {
	raw, ok := c.GetPostForm(field)
	if !ok {
		return false
	}
	if raw == "on" {
		return true
	}
	b, _ := boolcast.ParseBool(raw)
	return b
}

// formFlag reads a checkbox or select value into a tri-state flag. Browsers
// omit unchecked checkboxes, so absence is a valid state the caller decides
// on; "on" is the default checkbox value.
func formFlag(c *gin.Context, field string) boolcast.Flag {
	raw, ok := c.GetPostForm(field)
	if !ok {
		return boolcast.Flag{}
	}
	if raw == "on" {
		return boolcast.FlagOf(true)
	}
	if b, recognized := boolcast.ParseBool(raw); recognized {
		return boolcast.FlagOf(b)
	}
	return boolcast.Flag{}
}
