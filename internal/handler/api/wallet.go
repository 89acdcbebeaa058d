package api

import (
	"errors"
	"net/http"

	reqdto "couponbid/internal/handler/dto/request"
	resdto "couponbid/internal/handler/dto/response"
	"couponbid/internal/handler/httperr"
	"couponbid/internal/handler/middleware"
	"couponbid/internal/usecase/commands"
	"couponbid/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	exchangeCommands commands.ExchangeCommands
	walletQueries    queries.WalletQueries
}

func NewWalletHandler(exchangeCommands commands.ExchangeCommands, walletQueries queries.WalletQueries) *WalletHandler {
	return &WalletHandler{
		exchangeCommands: exchangeCommands,
		walletQueries:    walletQueries,
	}
}

// @Summary Get wallet
// @Description Get the current balance, transaction history and points packages
// @Tags wallet
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.WalletResponse
// @Failure 401 {object} httperr.Response
// @Router /wallet [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortMissingAuth(c)
		return
	}

	view, err := h.walletQueries.Wallet(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrWalletNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Wallet not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWalletView(view))
}

// @Summary Purchase points
// @Description Credit a fixed points package to the wallet
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PurchasePointsRequest true "Package selection"
// @Success 200 {object} resdto.PurchasePointsResponse
// @Failure 400 {object} httperr.Response
// @Router /wallet/purchase [post]
func (h *WalletHandler) PurchasePoints(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortMissingAuth(c)
		return
	}

	var req reqdto.PurchasePointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.exchangeCommands.PurchasePoints(c.Request.Context(), userID, req.PackageID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUnknownPackage):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown points package", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.PurchasePointsResponse{
		Points: result.Points,
		Price:  result.Price,
	})
}

// @Summary Redeem points
// @Description Convert points back to currency at the fixed rate
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemPointsRequest true "Redemption request"
// @Success 200 {object} resdto.RedeemPointsResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Router /wallet/redeem [post]
func (h *WalletHandler) RedeemPoints(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortMissingAuth(c)
		return
	}

	var req reqdto.RedeemPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.exchangeCommands.RedeemPoints(c.Request.Context(), userID, req.Points)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRedemption):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				"Redemption must be at least 50 points and a multiple of 50", nil)
		case errors.Is(err, commands.ErrInsufficientBalance):
			httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Insufficient balance", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.RedeemPointsResponse{
		Points: result.Points,
		Payout: result.Payout,
	})
}

// @Summary Claim daily reward
// @Description Claim the once-per-day points bonus
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DailyRewardResponse
// @Failure 409 {object} httperr.Response
// @Router /wallet/daily-reward [post]
func (h *WalletHandler) ClaimDailyReward(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortMissingAuth(c)
		return
	}

	points, err := h.exchangeCommands.ClaimDailyReward(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRewardAlreadyClaimed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Daily reward already claimed today", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.DailyRewardResponse{Points: points})
}
