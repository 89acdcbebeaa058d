//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

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

type WalletHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockExchange *commandsmock.MockExchangeCommands
	mockQueries  *queriesmock.MockWalletQueries
	handler      *api.WalletHandler
	userID       uuid.UUID
}

func (s *WalletHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockExchange = commandsmock.NewMockExchangeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockWalletQueries(s.mockCtrl)
	s.handler = api.NewWalletHandler(s.mockExchange, s.mockQueries)
	s.userID = uuid.New()

	authed := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
	}

	s.router.GET("/wallet", authed, s.handler.GetWallet)
	s.router.POST("/wallet/purchase", authed, s.handler.PurchasePoints)
	s.router.POST("/wallet/redeem", authed, s.handler.RedeemPoints)
	s.router.POST("/wallet/daily-reward", authed, s.handler.ClaimDailyReward)
}

func (s *WalletHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWalletHandlerSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}

func (s *WalletHandlerTestSuite) TestGetWallet() {
	url := "/wallet"

	s.Run("success: returns balance, history and the package catalog", func() {
		s.mockQueries.EXPECT().Wallet(gomock.Any(), s.userID).
			Return(&queries.WalletView{
				UserID:  s.userID,
				Balance: 750,
				Transactions: []*queries.TransactionView{
					{ID: uuid.New(), UserID: s.userID, Kind: "bid_hold", Amount: -250},
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.WalletResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(750), response.Balance)
		s.Len(response.Transactions, 1)
		s.Equal(int64(-250), response.Transactions[0].Amount)
		s.Len(response.Packages, 4)
	})

	s.Run("error: 404 when the wallet is unknown", func() {
		s.mockQueries.EXPECT().Wallet(gomock.Any(), s.userID).
			Return(nil, queries.ErrWalletNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Wallet not found")
	})

	s.Run("error: 500 when user missing from context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *WalletHandlerTestSuite) TestPurchasePoints() {
	url := "/wallet/purchase"

	s.Run("success: credits the chosen package", func() {
		s.mockExchange.EXPECT().PurchasePoints(gomock.Any(), s.userID, 2).
			Return(&commands.PurchaseResult{Points: 1100, Price: 30}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"package_id": 2}, "token")

		var response resdto.PurchasePointsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(1100), response.Points)
		s.Equal(int64(30), response.Price)
	})

	s.Run("error: 400 for an unknown package", func() {
		s.mockExchange.EXPECT().PurchasePoints(gomock.Any(), s.userID, 9).
			Return(nil, commands.ErrUnknownPackage).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"package_id": 9}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown points package")
	})

	s.Run("error: 400 on missing package id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *WalletHandlerTestSuite) TestRedeemPoints() {
	url := "/wallet/redeem"

	s.Run("success: returns the payout", func() {
		s.mockExchange.EXPECT().RedeemPoints(gomock.Any(), s.userID, int64(250)).
			Return(&commands.RedeemResult{Points: 250, Payout: 5}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"points": 250}, "token")

		var response resdto.RedeemPointsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(5), response.Payout)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid redemption",
				commandsError:  commands.ErrInvalidRedemption,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "multiple of 50",
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
				s.mockExchange.EXPECT().RedeemPoints(gomock.Any(), s.userID, int64(250)).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"points": 250}, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *WalletHandlerTestSuite) TestClaimDailyReward() {
	url := "/wallet/daily-reward"

	s.Run("success: grants the daily bonus", func() {
		s.mockExchange.EXPECT().ClaimDailyReward(gomock.Any(), s.userID).
			Return(int64(100), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var response resdto.DailyRewardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(100), response.Points)
	})

	s.Run("error: 409 when already claimed today", func() {
		s.mockExchange.EXPECT().ClaimDailyReward(gomock.Any(), s.userID).
			Return(int64(0), commands.ErrRewardAlreadyClaimed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already claimed")
	})
}
