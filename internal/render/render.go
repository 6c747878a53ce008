// Package render shapes API responses: named-root envelopes, the error
// envelope, and content negotiation across JSON, XML, YAML and plain text.
package render

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	mimeYAML    = "application/yaml"
	mimeYAMLAlt = "application/x-yaml"
)

// ErrorResponse is the error envelope shared by every API endpoint.
type ErrorResponse struct {
	XMLName xml.Name    `json:"-" xml:"error" yaml:"-"`
	Error   ErrorDetail `json:"error" xml:",any" yaml:"error"`
}

// ErrorDetail carries the machine-readable code and human message.
type ErrorDetail struct {
	Code    string `json:"code" xml:"code" yaml:"code"`
	Message string `json:"message" xml:"message" yaml:"message"`
}

// negotiated picks the response format from the Accept header, defaulting
// to JSON.
func negotiated(c *gin.Context) string {
	format := c.NegotiateFormat(gin.MIMEJSON, gin.MIMEXML, mimeYAML, mimeYAMLAlt, gin.MIMEPlain)
	if format == "" {
		return gin.MIMEJSON
	}
	return format
}

// Entity writes a single object wrapped in a named root. For XML the
// object's own XMLName supplies the root element.
func Entity(c *gin.Context, status int, name string, obj interface{}) {
	switch negotiated(c) {
	case gin.MIMEXML:
		c.XML(status, obj)
	case mimeYAML, mimeYAMLAlt:
		c.YAML(status, map[string]interface{}{name: obj})
	case gin.MIMEPlain:
		c.String(status, "%s: %+v", name, obj)
	default:
		c.JSON(status, map[string]interface{}{name: obj})
	}
}

// Collection writes a list wrapped in a named root collection; item names
// apply to the XML rendering only.
func Collection(c *gin.Context, status int, root, item string, items interface{}) {
	switch negotiated(c) {
	case gin.MIMEXML:
		c.XML(status, xmlCollection{root: root, item: item, items: items})
	case mimeYAML, mimeYAMLAlt:
		c.YAML(status, map[string]interface{}{root: items})
	case gin.MIMEPlain:
		c.String(status, "%s: %+v", root, items)
	default:
		c.JSON(status, map[string]interface{}{root: items})
	}
}

// Error writes the error envelope in the negotiated format.
func Error(c *gin.Context, status int, code, message string) {
	resp := ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}

	switch negotiated(c) {
	case gin.MIMEXML:
		c.XML(status, resp)
	case mimeYAML, mimeYAMLAlt:
		c.YAML(status, resp)
	case gin.MIMEPlain:
		c.String(status, "%s: %s", code, message)
	default:
		c.JSON(status, resp)
	}
}

// NotFound writes a 404 error envelope.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, "NOT_FOUND", message)
}

// NotFoundID writes a 404 error envelope naming the requested id.
func NotFoundID(c *gin.Context, entity string, id int64) {
	NotFound(c, fmt.Sprintf("%s %d not found", entity, id))
}

// xmlCollection renders a slice under a configurable root element with a
// configurable per-item element name.
type xmlCollection struct {
	root  string
	item  string
	items interface{}
}

func (x xmlCollection) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	root := xml.StartElement{Name: xml.Name{Local: x.root}}
	if err := e.EncodeToken(root); err != nil {
		return err
	}
	if err := e.EncodeElement(x.items, xml.StartElement{Name: xml.Name{Local: x.item}}); err != nil {
		return err
	}
	return e.EncodeToken(root.End())
}
