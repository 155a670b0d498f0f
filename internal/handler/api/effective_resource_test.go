//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"agora-exchange/internal/domain/effectiveresource"
	"agora-exchange/internal/handler/api"
	resdto "agora-exchange/internal/handler/dto/response"
	"agora-exchange/internal/pkg/errs"
	"agora-exchange/internal/usecase/records"
	"agora-exchange/internal/usecase/shared"
	"agora-exchange/internal/usecase/supply"
	"agora-exchange/tests/common/builder"
	"agora-exchange/tests/common/httptest"
	"agora-exchange/tests/common/testutil"
	supplymock "agora-exchange/tests/mock/supply"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EffectiveResourceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *supplymock.MockEffectiveResourceUseCase
	handler     *api.EffectiveResourceHandler
}

func (s *EffectiveResourceHandlerTestSuite) SetupSuite() {
	binding.EnableDecoderDisallowUnknownFields = true
}

func (s *EffectiveResourceHandlerTestSuite) TearDownSuite() {
	binding.EnableDecoderDisallowUnknownFields = false
}

func (s *EffectiveResourceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = supplymock.NewMockEffectiveResourceUseCase(s.mockCtrl)
	s.handler = api.NewEffectiveResourceHandler(s.mockUseCase)

	s.router.POST("/resources", s.handler.Create)
	s.router.GET("/resources", s.handler.List)
	s.router.GET("/resources/:id", s.handler.Get)
	s.router.PUT("/resources/:id", s.handler.Replace)
	s.router.DELETE("/resources/:id", s.handler.Delete)
}

func (s *EffectiveResourceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEffectiveResourceHandlerSuite(t *testing.T) {
	suite.Run(t, new(EffectiveResourceHandlerTestSuite))
}

type testCaseResource struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

var stored = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func result(rec *effectiveresource.EffectiveResource, outcome shared.Outcome) *records.Result[*effectiveresource.EffectiveResource] {
	return &records.Result[*effectiveresource.EffectiveResource]{Record: rec, Outcome: outcome, LastModified: rec.Updated()}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *EffectiveResourceHandlerTestSuite) TestCreate() {
	url := "/resources"

	s.Run("success: new record returns 201 with Location", func() {
		b := builder.NewEffectiveResourceBuilder().WithUpdated(stored)
		saved := b.BuildDomain()

		s.mockUseCase.EXPECT().CreateOrUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, body *effectiveresource.EffectiveResource) (*records.Result[*effectiveresource.EffectiveResource], error) {
				s.Empty(body.ID())
				s.True(body.Updated().IsZero())
				s.Equal(b.Name, body.Name)
				return result(saved, shared.OutcomeCreated), nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), b.BuildRequestDTO(), testutil.Field("id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		var got resdto.EffectiveResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(saved.ID(), got.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Location":      "/resources/" + saved.ID(),
			"Last-Modified": stored.Format(http.TimeFormat),
		})
	})

	s.Run("success: existing id returns 303 with Location", func() {
		saved := builder.NewEffectiveResourceBuilder().WithUpdated(stored).BuildDomain()
		s.mockUseCase.EXPECT().CreateOrUpdate(gomock.Any(), gomock.Any()).
			Return(result(saved, shared.OutcomeSeeOther), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			builder.NewEffectiveResourceBuilder().WithID(saved.ID()).BuildRequestDTO())

		s.Equal(http.StatusSeeOther, rec.Code)
		s.Equal("/resources/"+saved.ID(), rec.Header().Get("Location"))
	})

	s.Run("success: empty body is a zero representation", func() {
		saved := builder.NewEffectiveResourceBuilder().With(func(b *builder.EffectiveResourceBuilder) {
			b.ReservationID, b.ResourceRef, b.Name, b.Quantity, b.Unit = "", "", "", 0, ""
		}).BuildDomain()
		s.mockUseCase.EXPECT().CreateOrUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, body *effectiveresource.EffectiveResource) (*records.Result[*effectiveresource.EffectiveResource], error) {
				s.Zero(body.Quantity)
				s.Empty(body.Name)
				return result(saved, shared.OutcomeCreated), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("success: client timestamp is accepted and ignored", func() {
		saved := builder.NewEffectiveResourceBuilder().WithUpdated(stored).BuildDomain()
		s.mockUseCase.EXPECT().CreateOrUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, body *effectiveresource.EffectiveResource) (*records.Result[*effectiveresource.EffectiveResource], error) {
				s.True(body.Updated().IsZero())
				return result(saved, shared.OutcomeCreated), nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), builder.NewEffectiveResourceBuilder().BuildRequestDTO(),
			testutil.Field("updated", "1999-01-01T00:00:00Z"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		s.Equal(http.StatusCreated, rec.Code)
	})

	validation := []testCaseResource{
		{name: "quantity boundary OK (0)", mutate: testutil.Field("quantity", 0), expectCode: http.StatusCreated},
		{name: "quantity invalid (-1)", mutate: testutil.Field("quantity", -1), expectCode: http.StatusBadRequest},
		{name: "name length OK (255 chars)", mutate: testutil.Field("name", strings.Repeat("a", 255)), expectCode: http.StatusCreated},
		{name: "name length invalid (256 chars)", mutate: testutil.Field("name", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest},
		{name: "unit length invalid (33 chars)", mutate: testutil.Field("unit", strings.Repeat("u", 33)), expectCode: http.StatusBadRequest},
		{name: "quantity of wrong type", mutate: testutil.Field("quantity", "two"), expectCode: http.StatusBadRequest},
		{name: "unknown field", mutate: testutil.Field("colour", "blue"), expectCode: http.StatusBadRequest},
	}

	for _, tc := range validation {
		s.Run(tc.name, func() {
			if tc.expectCode == http.StatusCreated {
				s.mockUseCase.EXPECT().CreateOrUpdate(gomock.Any(), gomock.Any()).
					Return(result(builder.NewEffectiveResourceBuilder().BuildDomain(), shared.OutcomeCreated), nil).Times(1)
			}

			body := testutil.DtoMap(s.T(), builder.NewEffectiveResourceBuilder().WithoutID().BuildRequestDTO(), tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

			if tc.expectCode == http.StatusBadRequest {
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				return
			}
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("error: malformed json returns 400", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, []byte(`{"name":`),
			map[string]string{"Content-Type": "application/json"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: domain validation returns 400 with detail", func() {
		s.mockUseCase.EXPECT().CreateOrUpdate(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("unit is required when quantity is set"), records.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, builder.NewEffectiveResourceBuilder().BuildRequestDTO())

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		s.Contains(rec.Body.String(), "unit is required when quantity is set")
	})

	s.Run("error: exhausted identity generation returns 500", func() {
		s.mockUseCase.EXPECT().CreateOrUpdate(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(records.ErrIdentityGenerationExhausted, "create")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "collisions")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *EffectiveResourceHandlerTestSuite) TestGet() {
	saved := builder.NewEffectiveResourceBuilder().WithUpdated(stored).WithNote("late arrival").BuildDomain()

	s.Run("success: returns 200 with Last-Modified", func() {
		s.mockUseCase.EXPECT().Read(gomock.Any(), saved.ID()).
			Return(result(saved, shared.OutcomeOK), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/"+saved.ID(), nil)

		var got resdto.EffectiveResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(*resdto.FromEffectiveResource(saved), got)
		s.True(stored.Equal(httptest.LastModified(s.T(), rec)))
		s.Empty(rec.Header().Get("Location"))
	})

	s.Run("success: XML when the client prefers it", func() {
		s.mockUseCase.EXPECT().Read(gomock.Any(), saved.ID()).
			Return(result(saved, shared.OutcomeOK), nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodGet, "/resources/"+saved.ID(), nil,
			map[string]string{"Accept": "application/xml"})

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "application/xml")
		s.Contains(rec.Body.String(), "<effectiveResource>")
		s.Contains(rec.Body.String(), "<note>late arrival</note>")
	})

	s.Run("error: unsupported Accept returns 406", func() {
		s.mockUseCase.EXPECT().Read(gomock.Any(), gomock.Any()).Times(0)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodGet, "/resources/"+saved.ID(), nil,
			map[string]string{"Accept": "text/csv"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotAcceptable, "Not acceptable")
	})

	s.Run("error: unknown id returns 404", func() {
		s.mockUseCase.EXPECT().Read(gomock.Any(), "missing").
			Return(nil, errs.Wrap(records.ErrRecordNotFound, "read")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/missing", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: store failure returns 500", func() {
		s.mockUseCase.EXPECT().Read(gomock.Any(), saved.ID()).
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/"+saved.ID(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "connection refused")
	})
}

// ================================================================================
// TestReplace
// ================================================================================

func (s *EffectiveResourceHandlerTestSuite) TestReplace() {
	s.Run("success: upsert of unknown id returns 201 with escaped Location", func() {
		saved := builder.NewEffectiveResourceBuilder().WithID("room 12").WithUpdated(stored).BuildDomain()
		s.mockUseCase.EXPECT().Replace(gomock.Any(), "room 12", gomock.Any()).
			Return(result(saved, shared.OutcomeCreated), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/resources/room%2012",
			builder.NewEffectiveResourceBuilder().WithoutID().BuildRequestDTO())

		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
		s.Equal("/resources/room%2012", rec.Header().Get("Location"))
	})

	s.Run("success: existing record returns 200 without Location", func() {
		saved := builder.NewEffectiveResourceBuilder().WithUpdated(stored).BuildDomain()
		s.mockUseCase.EXPECT().Replace(gomock.Any(), saved.ID(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, body *effectiveresource.EffectiveResource) (*records.Result[*effectiveresource.EffectiveResource], error) {
				s.Equal(int64(7), body.Quantity)
				return result(saved, shared.OutcomeOK), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/resources/"+saved.ID(),
			builder.NewEffectiveResourceBuilder().WithQuantity(7).BuildRequestDTO())

		var got resdto.EffectiveResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(saved.ID(), got.ID)
		s.Empty(rec.Header().Get("Location"))
	})

	s.Run("success: XML body", func() {
		saved := builder.NewEffectiveResourceBuilder().WithUpdated(stored).BuildDomain()
		s.mockUseCase.EXPECT().Replace(gomock.Any(), saved.ID(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, body *effectiveresource.EffectiveResource) (*records.Result[*effectiveresource.EffectiveResource], error) {
				s.Equal("rsv-xml", body.ReservationID)
				s.Equal(int64(3), body.Quantity)
				return result(saved, shared.OutcomeOK), nil
			}).Times(1)

		body := []byte(`<effectiveResource><reservationId>rsv-xml</reservationId><quantity>3</quantity></effectiveResource>`)
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPut, "/resources/"+saved.ID(), body,
			map[string]string{"Content-Type": "application/xml"})

		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.Contains(rec.Header().Get("Content-Type"), "application/json")
	})

	s.Run("error: validation returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/resources/x",
			testutil.DtoMap(s.T(), builder.NewEffectiveResourceBuilder().BuildRequestDTO(), testutil.Field("quantity", -5)))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *EffectiveResourceHandlerTestSuite) TestDelete() {
	s.Run("success: returns the removed record", func() {
		saved := builder.NewEffectiveResourceBuilder().WithUpdated(stored).BuildDomain()
		s.mockUseCase.EXPECT().Delete(gomock.Any(), saved.ID()).
			Return(result(saved, shared.OutcomeOK), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/resources/"+saved.ID(), nil)

		var got resdto.EffectiveResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(saved.ID(), got.ID)
	})

	s.Run("error: unknown id returns 404", func() {
		s.mockUseCase.EXPECT().Delete(gomock.Any(), "gone").
			Return(nil, errs.Wrap(records.ErrRecordNotFound, "delete")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/resources/gone", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *EffectiveResourceHandlerTestSuite) TestList() {
	s.Run("success: returns items with the newest timestamp", func() {
		first := builder.NewEffectiveResourceBuilder().WithID("a").WithReservationID("rsv-1").WithUpdated(stored.Add(-time.Hour)).BuildDomain()
		second := builder.NewEffectiveResourceBuilder().WithID("b").WithReservationID("rsv-1").WithUpdated(stored).BuildDomain()
		s.mockUseCase.EXPECT().FindByReservation(gomock.Any(), "rsv-1").
			Return(&supply.ListResult{Records: []*effectiveresource.EffectiveResource{first, second}, LastModified: stored}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources?reservation=rsv-1", nil)

		var got resdto.EffectiveResourceListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Require().Len(got.Items, 2)
		s.Equal("a", got.Items[0].ID)
		s.Equal("b", got.Items[1].ID)
		s.True(stored.Equal(httptest.LastModified(s.T(), rec)))
	})

	s.Run("error: missing reservation parameter returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: blank reservation parameter returns 400", func() {
		s.mockUseCase.EXPECT().FindByReservation(gomock.Any(), "").
			Return(nil, supply.ErrReservationIDRequired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources?reservation=", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: no match returns 404", func() {
		s.mockUseCase.EXPECT().FindByReservation(gomock.Any(), "rsv-none").
			Return(nil, errs.Wrap(records.ErrRecordNotFound, "list")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources?reservation=rsv-none", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestNotAcceptable
// ================================================================================

func (s *EffectiveResourceHandlerTestSuite) TestNotAcceptable() {
	accept := map[string]string{"Accept": "text/plain", "Content-Type": "application/json"}
	body := []byte(`{"name":"x"}`)

	testCases := []struct {
		name   string
		method string
		path   string
		body   []byte
		expect func()
	}{
		{
			name:   "POST writes nothing",
			method: http.MethodPost,
			path:   "/resources",
			body:   body,
			expect: func() { s.mockUseCase.EXPECT().CreateOrUpdate(gomock.Any(), gomock.Any()).Times(0) },
		},
		{
			name:   "PUT writes nothing",
			method: http.MethodPut,
			path:   "/resources/r1",
			body:   body,
			expect: func() { s.mockUseCase.EXPECT().Replace(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) },
		},
		{
			name:   "DELETE removes nothing",
			method: http.MethodDelete,
			path:   "/resources/r1",
			expect: func() { s.mockUseCase.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0) },
		},
		{
			name:   "list is not queried",
			method: http.MethodGet,
			path:   "/resources?reservation=rsv-1",
			expect: func() { s.mockUseCase.EXPECT().FindByReservation(gomock.Any(), gomock.Any()).Times(0) },
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.expect()

			rec := httptest.PerformRawRequest(s.T(), s.router, tc.method, tc.path, tc.body, accept)

			httptest.AssertErrorResponse(s.T(), rec, http.StatusNotAcceptable, "Not acceptable")
			s.Empty(rec.Header().Get("Location"))
			s.Empty(rec.Header().Get("Last-Modified"))
		})
	}
}
