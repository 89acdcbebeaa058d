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
	"github.com/google/uuid"
)

type CouponHandler struct {
	auctionCommands commands.AuctionCommands
	bidCommands     commands.BidCommands
	couponQueries   queries.CouponQueries
}

func NewCouponHandler(
	auctionCommands commands.AuctionCommands,
	bidCommands commands.BidCommands,
	couponQueries queries.CouponQueries,
) *CouponHandler {
	return &CouponHandler{
		auctionCommands: auctionCommands,
		bidCommands:     bidCommands,
		couponQueries:   couponQueries,
	}
}

// @Summary Create coupon listing
// @Description List a coupon for auction
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon listing request"
// @Success 201 {object} resdto.CreateCouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /coupons [post]
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortMissingAuth(c)
		return
	}

	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.auctionCommands.CreateCoupon(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateCouponResponse{CouponID: result.CouponID})
}

// @Summary List coupons
// @Description List coupon auctions, optionally filtered by status and category
// @Tags coupons
// @Produce json
// @Param status query string false "Coupon status filter"
// @Param category query string false "Category filter"
// @Success 200 {array} resdto.CouponListResponse
// @Router /coupons [get]
func (h *CouponHandler) ListCoupons(c *gin.Context) {
	filter := queries.CouponFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}

	items, err := h.couponQueries.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponListItems(items))
}

// @Summary Get coupon
// @Description Get one coupon auction. The secret code appears only for the seller or the winner.
// @Tags coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id} [get]
func (h *CouponHandler) GetCoupon(c *gin.Context) {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon ID", nil)
		return
	}

	var viewerID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		viewerID = &id
	}

	view, err := h.couponQueries.GetByID(c.Request.Context(), couponID, viewerID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary List bids
// @Description List the bids placed on a coupon
// @Tags coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {array} resdto.BidResponse
// @Router /coupons/{id}/bids [get]
func (h *CouponHandler) ListBids(c *gin.Context) {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon ID", nil)
		return
	}

	views, err := h.couponQueries.ListBids(c.Request.Context(), couponID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBidViews(views))
}

// @Summary Place bid
// @Description Bid on a coupon, holding the bid amount from the bidder's balance
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.PlaceBidRequest true "Bid request"
// @Success 201 {object} resdto.PlaceBidResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons/{id}/bids [post]
func (h *CouponHandler) PlaceBid(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortMissingAuth(c)
		return
	}

	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon ID", nil)
		return
	}

	var req reqdto.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bidCommands.PlaceBid(c.Request.Context(), couponID, userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		case errors.Is(err, commands.ErrCouponNotActive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Coupon is not open for bidding", nil)
		case errors.Is(err, commands.ErrSellerCannotBid):
			httperr.AbortWithError(c, http.StatusConflict, err, "Sellers cannot bid on their own coupons", nil)
		case errors.Is(err, commands.ErrBidTooLow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Bid must be at least the base price", nil)
		case errors.Is(err, commands.ErrInsufficientBalance):
			httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Insufficient balance", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.PlaceBidResponse{BidID: result.BidID})
}

// @Summary Select winner
// @Description Settle the auction by choosing a bidder; only the seller may call this
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.SelectWinnerRequest true "Winner selection"
// @Success 200 {object} resdto.SelectWinnerResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons/{id}/winner [post]
func (h *CouponHandler) SelectWinner(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortMissingAuth(c)
		return
	}

	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon ID", nil)
		return
	}

	var req reqdto.SelectWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.auctionCommands.SelectWinner(c.Request.Context(), couponID, req.BidderID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		case errors.Is(err, commands.ErrNotCouponSeller):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the seller can select a winner", nil)
		case errors.Is(err, commands.ErrCouponNotActive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Auction already resolved", nil)
		case errors.Is(err, commands.ErrBidNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No pending bid from that bidder", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SelectWinnerResponse{
		WinnerID:      result.WinnerID,
		WinningAmount: result.WinningAmount,
	})
}
