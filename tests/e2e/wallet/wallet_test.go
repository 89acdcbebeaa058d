//go:build e2e

package wallet_test

import (
	"net/http"
	"sync"
	"testing"

	resdto "couponbid/internal/handler/dto/response"
	"couponbid/tests/common/httptest"
	"couponbid/tests/e2e"
	"couponbid/tests/e2e/common/helper"

	"github.com/stretchr/testify/suite"
)

const walletURL = "/api/wallet"

type walletSuite struct {
	e2e.SharedSuite
	auth *helper.AuthTestHelper
}

func TestWalletSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(walletSuite))
}

func (s *walletSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.auth = helper.NewAuthTestHelper(s.DB)
}

func (s *walletSuite) getWallet(token string) *resdto.WalletResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, walletURL, nil, token)

	var wallet resdto.WalletResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &wallet)
	return &wallet
}

func (s *walletSuite) TestWalletFlows() {
	s.Run("purchase credits the package and records it", func() {
		_, token := s.auth.CreateAndLogin(s.T(), s.Router, "buyer@example.com", "buyer", 0)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			walletURL+"/purchase", map[string]any{"package_id": 1}, token)
		var purchased resdto.PurchasePointsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &purchased)
		s.Equal(int64(500), purchased.Points)

		wallet := s.getWallet(token)
		s.Equal(int64(500), wallet.Balance)
		s.Len(wallet.Transactions, 1)
		s.Equal("purchase", wallet.Transactions[0].Kind)
		s.Len(wallet.Packages, 4)
	})

	s.Run("redeem debits at the fixed rate", func() {
		_, token := s.auth.CreateAndLogin(s.T(), s.Router, "redeemer@example.com", "redeemer", 300)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			walletURL+"/redeem", map[string]any{"points": 250}, token)
		var redeemed resdto.RedeemPointsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &redeemed)
		s.Equal(int64(5), redeemed.Payout)

		s.Equal(int64(50), s.getWallet(token).Balance)

		// Odd amounts are rejected before touching the balance.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			walletURL+"/redeem", map[string]any{"points": 30}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "at least 50")
		s.Equal(int64(50), s.getWallet(token).Balance)
	})

	s.Run("concurrent redemptions never overdraw", func() {
		_, token := s.auth.CreateAndLogin(s.T(), s.Router, "racer@example.com", "racer", 120)

		// Six simultaneous redemptions of 50 against a balance of 120. The
		// row lock admits exactly two; the rest see the depleted balance.
		results := make(chan int, 6)
		var wg sync.WaitGroup
		for i := 0; i < 6; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
					walletURL+"/redeem", map[string]any{"points": 50}, token)
				results <- w.Code
			}()
		}
		wg.Wait()
		close(results)

		succeeded := 0
		for code := range results {
			if code == http.StatusOK {
				succeeded++
			} else {
				s.Equal(http.StatusPaymentRequired, code)
			}
		}
		s.Equal(2, succeeded)

		wallet := s.getWallet(token)
		s.Equal(int64(20), wallet.Balance)
		s.GreaterOrEqual(wallet.Balance, int64(0))

		var ledgerSum int64
		for _, tx := range wallet.Transactions {
			ledgerSum += tx.Amount
		}
		s.Equal(wallet.Balance, ledgerSum)
	})

	s.Run("daily reward grants once per day", func() {
		_, token := s.auth.CreateAndLogin(s.T(), s.Router, "daily@example.com", "daily", 0)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			walletURL+"/daily-reward", nil, token)
		var reward resdto.DailyRewardResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &reward)
		s.Equal(int64(100), reward.Points)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			walletURL+"/daily-reward", nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already claimed")

		s.Equal(int64(100), s.getWallet(token).Balance)
	})
}
