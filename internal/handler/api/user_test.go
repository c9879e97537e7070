//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"residencial-admin/internal/domain/user"
	"residencial-admin/internal/handler/api"
	resdto "residencial-admin/internal/handler/dto/response"
	"residencial-admin/internal/pkg/errs"
	"residencial-admin/tests/common/builder"
	"residencial-admin/tests/common/httptest"
	"residencial-admin/tests/common/testutil"
	commandsmock "residencial-admin/tests/mock/commands"
	queriesmock "residencial-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	h := api.NewUserHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/users", h.Search)
	s.router.POST("/users", h.Create)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestSearch() {
	s.Run("success: passes the query through", func() {
		laura, err := builder.NewUserBuilder().BuildDomain()
		s.Require().NoError(err)
		debtor := *laura
		debtor.Name = "Pedro Martínez"
		debtor.Status = user.StatusInactive
		debtor.Balance = "$2,400,000"
		s.mockQueries.EXPECT().Search(gomock.Any(), "torre").Return([]user.User{*laura, debtor}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users?q=torre", nil, "")

		var got []resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Require().Len(got, 2)
		s.Equal("Activo", got[0].Status)
		s.False(got[0].HasDebt)
		s.Equal("Inactivo", got[1].Status)
		s.True(got[1].HasDebt)
	})

	s.Run("success: empty directory renders an empty array", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "").Return([]user.User{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "").Return(nil, errs.New("store closed"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list users")
	})
}

func (s *UserHandlerTestSuite) TestCreate() {
	reqBody := builder.NewUserBuilder().BuildRequest()

	s.Run("success: 201 with an active resident", func() {
		created, err := builder.NewUserBuilder().BuildDomain()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", reqBody, "")

		var got resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal("Laura Gómez", got.Name)
		s.Equal("Activo", got.Status)
		s.Equal("$0", got.Balance)
	})

	s.Run("error: 400 on missing fields", func() {
		for _, key := range []string{"name", "apartment", "email"} {
			s.Run(key, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Without(key))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 400 on invalid email", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("invalid email format"), errs.ErrDomainValidation))

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", "laura"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}
