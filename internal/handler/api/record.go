package api

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"agora-exchange/internal/domain/record"
	"agora-exchange/internal/handler/httperr"
	"agora-exchange/internal/pkg/errs"
	"agora-exchange/internal/usecase/records"
	"agora-exchange/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// RecordCodec translates between a record type and its wire representation.
type RecordCodec[R record.Record] interface {
	Decode(c *gin.Context) (R, error)
	Encode(rec R) any
}

// RecordHandler serves POST/GET/PUT/DELETE for one record collection.
type RecordHandler[R record.Record] struct {
	useCase    records.UseCase[R]
	codec      RecordCodec[R]
	collection string
}

func NewRecordHandler[R record.Record](useCase records.UseCase[R], codec RecordCodec[R], collection string) *RecordHandler[R] {
	return &RecordHandler[R]{
		useCase:    useCase,
		codec:      codec,
		collection: "/" + strings.Trim(collection, "/"),
	}
}

func (h *RecordHandler[R]) Post(c *gin.Context) {
	format, ok := negotiate(c)
	if !ok {
		return
	}
	body, err := h.codec.Decode(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.useCase.CreateOrUpdate(c.Request.Context(), body)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	status := http.StatusCreated
	if res.Outcome == shared.OutcomeSeeOther {
		status = http.StatusSeeOther
	}
	c.Header("Location", h.Location(res.Record.ID()))
	h.respond(c, status, format, res)
}

func (h *RecordHandler[R]) Get(c *gin.Context) {
	format, ok := negotiate(c)
	if !ok {
		return
	}
	res, err := h.useCase.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, format, res)
}

func (h *RecordHandler[R]) Put(c *gin.Context) {
	format, ok := negotiate(c)
	if !ok {
		return
	}
	body, err := h.codec.Decode(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.useCase.Replace(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	status := http.StatusOK
	if res.Outcome == shared.OutcomeCreated {
		status = http.StatusCreated
		c.Header("Location", h.Location(res.Record.ID()))
	}
	h.respond(c, status, format, res)
}

func (h *RecordHandler[R]) Delete(c *gin.Context) {
	format, ok := negotiate(c)
	if !ok {
		return
	}
	res, err := h.useCase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, format, res)
}

// Location is the canonical URI of the record with the given id.
func (h *RecordHandler[R]) Location(id string) string {
	return h.collection + "/" + url.PathEscape(id)
}

func (h *RecordHandler[R]) respond(c *gin.Context, status int, format string, res *records.Result[R]) {
	setLastModified(c, res.LastModified)
	render(c, status, format, h.codec.Encode(res.Record))
}

func setLastModified(c *gin.Context, t time.Time) {
	if t.IsZero() {
		return
	}
	c.Header("Last-Modified", t.UTC().Format(http.TimeFormat))
}

func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, records.ErrRecordNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, records.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
