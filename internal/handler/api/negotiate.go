package api

import (
	"net/http"

	"agora-exchange/internal/handler/httperr"
	"agora-exchange/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	errNotAcceptable = errs.New("no acceptable representation")

	// first entry is the default when the client states no preference
	offeredFormats = []string{binding.MIMEJSON, binding.MIMEXML, binding.MIMEXML2}
)

// bindBody decodes the request body by Content-Type, JSON unless XML is declared.
// An empty body decodes to the zero representation.
func bindBody(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return binding.Validator.ValidateStruct(obj)
	}
	switch c.ContentType() {
	case binding.MIMEXML, binding.MIMEXML2:
		return c.ShouldBindWith(obj, binding.XML)
	default:
		return c.ShouldBindWith(obj, binding.JSON)
	}
}

// negotiate picks the response format from Accept before any work is done,
// aborting with 406 when nothing offered is acceptable.
func negotiate(c *gin.Context) (string, bool) {
	format := c.NegotiateFormat(offeredFormats...)
	if format == "" {
		httperr.AbortWithError(c, http.StatusNotAcceptable, errNotAcceptable, "Not acceptable", offeredFormats)
		return "", false
	}
	return format, true
}

func render(c *gin.Context, status int, format string, body any) {
	switch format {
	case binding.MIMEXML, binding.MIMEXML2:
		c.XML(status, body)
	default:
		c.JSON(status, body)
	}
}
