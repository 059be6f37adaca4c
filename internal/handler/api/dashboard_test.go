//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"invoice-dashboard/internal/handler/api"
	resdto "invoice-dashboard/internal/handler/dto/response"
	"invoice-dashboard/internal/handler/middleware"
	"invoice-dashboard/internal/usecase/queries"
	"invoice-dashboard/tests/common/httptest"
	queriesmock "invoice-dashboard/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockDashboardQueries
	mockUsers   *queriesmock.MockUserQueries
	userID      uuid.UUID
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockDashboardQueries(s.mockCtrl)
	s.mockUsers = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.userID = uuid.New()
	handler := api.NewDashboardHandler(s.mockQueries, s.mockUsers)

	s.router.GET("/dashboard", func(c *gin.Context) {
		// stands in for the session middleware
		c.Set("user_id", s.userID)
		handler.Summary(c)
	})
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (s *DashboardHandlerTestSuite) TestSummary() {
	user := &queries.AuthorizedUserView{ID: s.userID, Name: "User", Email: "user@nextmail.com"}

	s.Run("基本成功ケース：カード・最新請求書・ログインユーザー", func() {
		s.mockUsers.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(user, nil).Times(1)
		s.mockQueries.EXPECT().Summary(gomock.Any()).Return(&queries.DashboardView{
			Cards: queries.CardsView{NumberOfInvoices: 13, NumberOfCustomers: 6, TotalPaid: "$1,234.56", TotalPending: "$49.99"},
			LatestInvoices: []*queries.LatestInvoiceView{
				{ID: "i1", Name: "Lee Robinson", Amount: "$203.48"},
			},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil)

		var response resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("$1,234.56", response.Cards.TotalPaid)
		s.Equal(int64(6), response.Cards.NumberOfCustomers)
		s.Require().Len(response.LatestInvoices, 1)
		s.Require().NotNil(response.User)
		s.Equal("user@nextmail.com", response.User.Email)
	})

	s.Run("削除済みユーザーのセッションはログインへ戻す", func() {
		s.mockUsers.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil)

		httptest.AssertRedirect(s.T(), rec, "/login")
	})

	s.Run("読み取り失敗は500", func() {
		s.mockUsers.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(user, nil).Times(1)
		s.mockQueries.EXPECT().Summary(gomock.Any()).Return(nil, errors.New("timeout")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to fetch card data.")
	})
}
