//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"rental-admin-api/internal/handler/api"
	resdto "rental-admin-api/internal/handler/dto/response"
	"rental-admin-api/internal/pkg/clock"
	"rental-admin-api/internal/usecase"
	"rental-admin-api/internal/usecase/readmodel"
	"rental-admin-api/tests/common/httptest"
	usecasemock "rental-admin-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// Exercises the real contact use case behind the handler so the email
// validation path is covered end to end.
type ContactHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockStore *usecasemock.MockContactStore
	handler   *api.ContactHandler
}

func (s *ContactHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = usecasemock.NewMockContactStore(s.mockCtrl)

	fixed := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	contactUseCase := usecase.NewContactUseCase(s.mockStore, clock.NewMockClock(fixed))
	s.handler = api.NewContactHandler(contactUseCase)

	s.router.GET("/api/contacts", s.handler.List)
	s.router.POST("/api/contacts", s.handler.Submit)
}

func (s *ContactHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestContactHandlerSuite(t *testing.T) {
	suite.Run(t, new(ContactHandlerTestSuite))
}

func validContactBody() map[string]any {
	return map[string]any{
		"firstname": "Ana",
		"lastname":  "Garcia",
		"email":     "ana@example.com",
		"message":   "Do you rent in October?",
	}
}

func (s *ContactHandlerTestSuite) TestSubmit() {
	url := "/api/contacts"

	s.Run("success: stores the submission and returns its id", func() {
		s.mockStore.EXPECT().Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, c readmodel.Contact) (string, error) {
				s.Equal("Ana", c.Firstname)
				s.Nil(c.Country)
				s.Equal("2024-07-01T12:00:00Z", c.CreatedAt)
				return "contact-id", nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validContactBody())

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.OK)
		s.Equal("contact-id", response.ID)
	})

	s.Run("error: 400 on malformed email", func() {
		body := validContactBody()
		body["email"] = "not-an-email"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid email format")
	})

	s.Run("error: 400 on each missing required field", func() {
		for _, field := range []string{"firstname", "lastname", "email", "message"} {
			body := validContactBody()
			delete(body, field)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, field+" is required")
		}
	})
}

func (s *ContactHandlerTestSuite) TestList() {
	country := "Spain"
	s.mockStore.EXPECT().ListAll(gomock.Any()).
		Return([]readmodel.Contact{
			{ID: "c1", Firstname: "Ana", Email: "ana@example.com", CreatedAt: "2024-07-01T10:00:00Z"},
			{ID: "c2", Firstname: "Marc", Country: &country, Email: "marc@example.com", CreatedAt: "2024-07-02T10:00:00Z"},
		}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/contacts", nil)

	var response []resdto.ContactResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 2)
	// Newest first.
	s.Equal("c2", response[0].ID)
	s.Equal("Spain", *response[0].Country)
}
