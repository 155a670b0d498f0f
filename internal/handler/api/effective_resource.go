package api

import (
	"net/http"

	"agora-exchange/internal/domain/effectiveresource"
	reqdto "agora-exchange/internal/handler/dto/request"
	resdto "agora-exchange/internal/handler/dto/response"
	"agora-exchange/internal/handler/httperr"
	"agora-exchange/internal/usecase/supply"

	"github.com/gin-gonic/gin"
)

const EffectiveResourceCollection = "resources"

type EffectiveResourceHandler struct {
	records *RecordHandler[*effectiveresource.EffectiveResource]
	useCase supply.EffectiveResourceUseCase
}

func NewEffectiveResourceHandler(useCase supply.EffectiveResourceUseCase) *EffectiveResourceHandler {
	return &EffectiveResourceHandler{
		records: NewRecordHandler(useCase, effectiveResourceCodec{}, EffectiveResourceCollection),
		useCase: useCase,
	}
}

// @Summary Create or update effective resource
// @Description Creates a resource, generating an id when none is given. An existing id is updated and answered with 303.
// @Tags resources
// @Accept json,xml
// @Produce json,xml
// @Param request body reqdto.EffectiveResourceRequest true "Effective resource"
// @Success 201 {object} resdto.EffectiveResourceResponse
// @Success 303 {object} resdto.EffectiveResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /resources [post]
func (h *EffectiveResourceHandler) Create(c *gin.Context) {
	h.records.Post(c)
}

// @Summary Get effective resource
// @Tags resources
// @Produce json,xml
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.EffectiveResourceResponse
// @Failure 404 {object} httperr.Response
// @Router /resources/{id} [get]
func (h *EffectiveResourceHandler) Get(c *gin.Context) {
	h.records.Get(c)
}

// @Summary Replace effective resource
// @Description Replaces the resource with the given id, creating it when absent.
// @Tags resources
// @Accept json,xml
// @Produce json,xml
// @Param id path string true "Resource ID"
// @Param request body reqdto.EffectiveResourceRequest true "Effective resource"
// @Success 200 {object} resdto.EffectiveResourceResponse
// @Success 201 {object} resdto.EffectiveResourceResponse
// @Failure 400 {object} httperr.Response
// @Router /resources/{id} [put]
func (h *EffectiveResourceHandler) Replace(c *gin.Context) {
	h.records.Put(c)
}

// @Summary Delete effective resource
// @Tags resources
// @Produce json,xml
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.EffectiveResourceResponse
// @Failure 404 {object} httperr.Response
// @Router /resources/{id} [delete]
func (h *EffectiveResourceHandler) Delete(c *gin.Context) {
	h.records.Delete(c)
}

// @Summary List effective resources by reservation
// @Tags resources
// @Produce json,xml
// @Param reservation query string true "Reservation ID"
// @Success 200 {object} resdto.EffectiveResourceListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources [get]
func (h *EffectiveResourceHandler) List(c *gin.Context) {
	format, ok := negotiate(c)
	if !ok {
		return
	}
	reservationID, ok := c.GetQuery("reservation")
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, supply.ErrReservationIDRequired, "Invalid request", "reservation query parameter is required")
		return
	}
	res, err := h.useCase.FindByReservation(c.Request.Context(), reservationID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	setLastModified(c, res.LastModified)
	render(c, http.StatusOK, format, resdto.FromEffectiveResourceList(res.Records))
}

type effectiveResourceCodec struct{}

func (effectiveResourceCodec) Decode(c *gin.Context) (*effectiveresource.EffectiveResource, error) {
	var req reqdto.EffectiveResourceRequest
	if err := bindBody(c, &req); err != nil {
		return nil, err
	}
	return req.ToDomain()
}

func (effectiveResourceCodec) Encode(rec *effectiveresource.EffectiveResource) any {
	return resdto.FromEffectiveResource(rec)
}
