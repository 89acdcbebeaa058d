//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"couponbid/internal/handler/api"
	resdto "couponbid/internal/handler/dto/response"
	"couponbid/internal/usecase/commands"
	"couponbid/internal/usecase/queries"
	"couponbid/tests/common/httptest"
	commandsmock "couponbid/tests/mock/commands"
	queriesmock "couponbid/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockAuction *commandsmock.MockAuctionCommands
	mockBids    *commandsmock.MockBidCommands
	mockQueries *queriesmock.MockCouponQueries
	handler     *api.CouponHandler
	userID      uuid.UUID
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuction = commandsmock.NewMockAuctionCommands(s.mockCtrl)
	s.mockBids = commandsmock.NewMockBidCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockAuction, s.mockBids, s.mockQueries)
	s.userID = uuid.New()

	// Mock middleware behavior: any bearer token maps to the fixed user.
	authed := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
	}

	s.router.GET("/coupons", s.handler.ListCoupons)
	s.router.GET("/coupons/:id", authed, s.handler.GetCoupon)
	s.router.GET("/coupons/:id/bids", s.handler.ListBids)
	s.router.POST("/coupons", authed, s.handler.CreateCoupon)
	s.router.POST("/coupons/:id/bids", authed, s.handler.PlaceBid)
	s.router.POST("/coupons/:id/winner", authed, s.handler.SelectWinner)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) validCreateBody() map[string]any {
	return map[string]any{
		"title":       "50% off pizza",
		"description": "valid at any branch",
		"category":    "food",
		"base_price":  100,
		"expiry_date": time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339),
		"secret_code": "PIZZA-50",
	}
}

func (s *CouponHandlerTestSuite) TestCreateCoupon() {
	url := "/coupons"

	s.Run("success: returns 201 with the new coupon id", func() {
		couponID := uuid.New()
		s.mockAuction.EXPECT().CreateCoupon(gomock.Any(), gomock.Any(), s.userID).
			Return(&commands.CreateCouponResult{CouponID: couponID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validCreateBody(), "token")

		var response resdto.CreateCouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(couponID, response.CouponID)
	})

	s.Run("error: 400 on missing fields", func() {
		for _, field := range []string{"title", "description", "category", "base_price", "expiry_date", "secret_code"} {
			s.Run("missing "+field, func() {
				body := s.validCreateBody()
				delete(body, field)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 on domain validation failure", func() {
		s.mockAuction.EXPECT().CreateCoupon(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrDomainValidation).Times(1)

		body := s.validCreateBody()
		body["expiry_date"] = time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid coupon data")
	})

	s.Run("error: 500 when user missing from context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validCreateBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CouponHandlerTestSuite) TestGetCoupon() {
	couponID := uuid.New()
	url := "/coupons/" + couponID.String()

	s.Run("success: anonymous viewer gets no secret code", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), couponID, nil).
			Return(&queries.CouponView{ID: couponID, Title: "50% off pizza", Status: "active"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(couponID, response.ID)
		s.Nil(response.SecretCode)
	})

	s.Run("success: authenticated viewer id is forwarded", func() {
		code := "PIZZA-50"
		s.mockQueries.EXPECT().GetByID(gomock.Any(), couponID, &s.userID).
			Return(&queries.CouponView{ID: couponID, SecretCode: &code, Status: "sold"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.SecretCode)
		s.Equal(code, *response.SecretCode)
	})

	s.Run("error: 404 for unknown coupon", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), couponID, nil).
			Return(nil, queries.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid coupon ID")
	})
}

func (s *CouponHandlerTestSuite) TestPlaceBid() {
	couponID := uuid.New()
	url := "/coupons/" + couponID.String() + "/bids"
	body := map[string]any{"amount": 150}

	s.Run("success: returns 201 with the bid id", func() {
		bidID := uuid.New()
		s.mockBids.EXPECT().PlaceBid(gomock.Any(), couponID, s.userID, int64(150)).
			Return(&commands.PlaceBidResult{BidID: bidID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		var response resdto.PlaceBidResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(bidID, response.BidID)
	})

	s.Run("error: 400 on non-positive amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": 0}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "coupon not found",
				commandsError:  commands.ErrCouponNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Coupon not found",
			},
			{
				name:           "coupon not active",
				commandsError:  commands.ErrCouponNotActive,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not open for bidding",
			},
			{
				name:           "seller cannot bid",
				commandsError:  commands.ErrSellerCannotBid,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Sellers cannot bid",
			},
			{
				name:           "bid too low",
				commandsError:  commands.ErrBidTooLow,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "at least the base price",
			},
			{
				name:           "insufficient balance",
				commandsError:  commands.ErrInsufficientBalance,
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "Insufficient balance",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBids.EXPECT().PlaceBid(gomock.Any(), couponID, s.userID, int64(150)).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CouponHandlerTestSuite) TestSelectWinner() {
	couponID := uuid.New()
	bidderID := uuid.New()
	url := "/coupons/" + couponID.String() + "/winner"
	body := map[string]any{"bidder_id": bidderID.String()}

	s.Run("success: returns the winner and amount", func() {
		s.mockAuction.EXPECT().SelectWinner(gomock.Any(), couponID, bidderID, s.userID).
			Return(&commands.SelectWinnerResult{WinnerID: bidderID, WinningAmount: 200}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		var response resdto.SelectWinnerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bidderID, response.WinnerID)
		s.Equal(int64(200), response.WinningAmount)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not the seller",
				commandsError:  commands.ErrNotCouponSeller,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Only the seller",
			},
			{
				name:           "already resolved",
				commandsError:  commands.ErrCouponNotActive,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already resolved",
			},
			{
				name:           "no pending bid",
				commandsError:  commands.ErrBidNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "No pending bid",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAuction.EXPECT().SelectWinner(gomock.Any(), couponID, bidderID, s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CouponHandlerTestSuite) TestListCoupons() {
	s.Run("success: forwards the filter and returns items", func() {
		highest := int64(300)
		s.mockQueries.EXPECT().List(gomock.Any(), queries.CouponFilter{Status: "active", Category: "food"}).
			Return([]*queries.CouponListItem{
				{ID: uuid.New(), Title: "50% off pizza", Status: "active", CurrentHighestBid: &highest, BidCount: 3},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons?status=active&category=food", nil, "")

		var response []*resdto.CouponListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(int32(3), response[0].BidCount)
	})
}
