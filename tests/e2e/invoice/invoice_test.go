//go:build e2e

package invoice_test

import (
	"net/http"
	"net/url"
	"testing"

	resdto "invoice-dashboard/internal/handler/dto/response"
	"invoice-dashboard/internal/handler/middleware"
	"invoice-dashboard/tests/common/authtest"
	"invoice-dashboard/tests/common/dbtest"
	"invoice-dashboard/tests/common/httptest"
	"invoice-dashboard/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	dashboardURL = "/dashboard"
	invoicesURL  = "/dashboard/invoices"
)

type invoiceSuite struct {
	e2e.SharedSuite
	session *http.Cookie
}

func TestInvoiceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(invoiceSuite))
}

func (s *invoiceSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.session = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "User", "user@nextmail.com")
}

func invoiceForm(customerID, amount, status string) url.Values {
	return url.Values{
		"customerId": {customerID},
		"amount":     {amount},
		"status":     {status},
	}
}

func (s *invoiceSuite) getDashboard() (resdto.DashboardResponse, string) {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, dashboardURL, nil, s.session)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.DashboardResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res, w.Header().Get(middleware.ViewCacheHeader)
}

func (s *invoiceSuite) TestCreate() {
	s.Run("正常な作成", func() {
		t := s.T()

		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, invoicesURL,
			invoiceForm(dbtest.CustomerEvilRabbit.String(), "49.99", "paid"), s.session)

		httptest.AssertRedirect(t, w, invoicesURL)
		require.Equal(t, int64(1), dbtest.CountInvoices(t, s.DB))

		var amount int64
		var status, date string
		err := s.DB.QueryRow(t.Context(), "SELECT amount, status, date::text FROM invoices LIMIT 1").Scan(&amount, &status, &date)
		require.NoError(t, err)
		require.Equal(t, int64(4999), amount, "金額はセント単位で保存されるべき")
		require.Equal(t, "paid", status)
		require.NotEmpty(t, date)
	})

	s.Run("入力不備はフィールドエラーを返す", func() {
		t := s.T()

		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, invoicesURL,
			invoiceForm("", "0", ""), s.session)

		httptest.AssertActionState(t, w, http.StatusUnprocessableEntity, "Missing Fields. Failed to Create Invoice.", map[string][]string{
			"customerId": {"Please select a customer."},
			"amount":     {"Please enter an amount greater than $0."},
			"status":     {"Please select an invoice status."},
		})
		require.Zero(t, dbtest.CountInvoices(t, s.DB), "検証エラー時は保存されないこと")
	})

	s.Run("存在しない顧客はデータベースエラー", func() {
		t := s.T()

		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, invoicesURL,
			invoiceForm(uuid.NewString(), "10", "pending"), s.session)

		httptest.AssertActionState(t, w, http.StatusInternalServerError, "Database Error: Failed to Create Invoice.", nil)
		require.Zero(t, dbtest.CountInvoices(t, s.DB))
	})

	s.Run("未ログインはログイン画面へ", func() {
		t := s.T()

		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, invoicesURL,
			invoiceForm(dbtest.CustomerEvilRabbit.String(), "10", "paid"))

		httptest.AssertRedirect(t, w, "/login")
		require.Zero(t, dbtest.CountInvoices(t, s.DB))
	})
}

func (s *invoiceSuite) TestUpdate() {
	s.Run("編集可能なフィールドのみ更新", func() {
		t := s.T()
		id := dbtest.CreateTestInvoice(t, s.DB, dbtest.CustomerEvilRabbit, 4999, "pending", "2024-06-15")

		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, invoicesURL+"/"+id.String(),
			invoiceForm(dbtest.CustomerDelbaOliv.String(), "120.5", "paid"), s.session)

		httptest.AssertRedirect(t, w, invoicesURL)
		row, ok := dbtest.FindInvoice(t, s.DB, id)
		require.True(t, ok)
		require.Equal(t, dbtest.InvoiceRow{
			CustomerID:  dbtest.CustomerDelbaOliv,
			AmountCents: 12050,
			Status:      "paid",
			Date:        "2024-06-15",
		}, row, "日付は変更されないこと")
	})

	s.Run("存在しない請求書は何もせずリダイレクト", func() {
		t := s.T()

		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, invoicesURL+"/"+uuid.NewString(),
			invoiceForm(dbtest.CustomerEvilRabbit.String(), "10", "paid"), s.session)

		httptest.AssertRedirect(t, w, invoicesURL)
		require.Zero(t, dbtest.CountInvoices(t, s.DB))
	})

	s.Run("入力不備は更新メッセージで返す", func() {
		t := s.T()
		id := dbtest.CreateTestInvoice(t, s.DB, dbtest.CustomerEvilRabbit, 4999, "pending", "2024-06-15")

		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, invoicesURL+"/"+id.String(),
			invoiceForm(dbtest.CustomerEvilRabbit.String(), "-1", "paid"), s.session)

		httptest.AssertActionState(t, w, http.StatusUnprocessableEntity, "Missing Fields. Failed to Update Invoice.", map[string][]string{
			"amount": {"Please enter an amount greater than $0."},
		})
		row, _ := dbtest.FindInvoice(t, s.DB, id)
		require.Equal(t, int64(4999), row.AmountCents)
	})
}

func (s *invoiceSuite) TestDelete() {
	s.Run("正常な削除", func() {
		t := s.T()
		id := dbtest.CreateTestInvoice(t, s.DB, dbtest.CustomerEvilRabbit, 4999, "paid", "2024-06-15")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL+"/"+id.String()+"/delete", nil, s.session)

		httptest.AssertRedirect(t, w, invoicesURL)
		_, ok := dbtest.FindInvoice(t, s.DB, id)
		require.False(t, ok, "請求書が削除されていない")
	})

	s.Run("不正なIDは500", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL+"/not-a-uuid/delete", nil, s.session)

		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Failed to delete invoice.")
	})
}

func (s *invoiceSuite) TestEditForm() {
	s.Run("金額はドル表記", func() {
		t := s.T()
		id := dbtest.CreateTestInvoice(t, s.DB, dbtest.CustomerEvilRabbit, 4999, "pending", "2024-06-15")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, invoicesURL+"/"+id.String()+"/edit", nil, s.session)

		var res resdto.EditInvoiceFormResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "49.99", res.Invoice.Amount)
		require.Equal(t, dbtest.CustomerEvilRabbit.String(), res.Invoice.CustomerID)
		require.Len(t, res.Customers, 2)
	})

	s.Run("存在しない請求書は404", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, invoicesURL+"/"+uuid.NewString()+"/edit", nil, s.session)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Invoice not found")
	})

	s.Run("読み込み中の表示", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, invoicesURL+"/"+uuid.NewString()+"/edit/loading", nil, s.session)
		require.Equal(s.T(), http.StatusOK, w.Code)
		httptest.AssertHeaders(s.T(), w, map[string]string{"Content-Type": "text/html; charset=utf-8"})
		require.Contains(s.T(), w.Body.String(), `class="spinner"`)
	})
}

func (s *invoiceSuite) TestList() {
	s.Run("検索とページング", func() {
		t := s.T()
		for range 7 {
			dbtest.CreateTestInvoice(t, s.DB, dbtest.CustomerEvilRabbit, 1000, "pending", "2024-06-15")
		}
		dbtest.CreateTestInvoice(t, s.DB, dbtest.CustomerDelbaOliv, 2000, "paid", "2024-06-16")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, invoicesURL+"?query=rabbit&page=2", nil, s.session)

		var res resdto.InvoicePageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, 2, res.Page)
		require.Equal(t, 2, res.TotalPages)
		require.Len(t, res.Invoices, 1)
		require.Equal(t, "Evil Rabbit", res.Invoices[0].Name)
	})
}

func (s *invoiceSuite) TestViewInvalidation() {
	s.Run("変更後はダッシュボードを再描画", func() {
		t := s.T()
		dbtest.CreateTestInvoice(t, s.DB, dbtest.CustomerEvilRabbit, 4999, "paid", "2024-06-15")

		first, state := s.getDashboard()
		require.Equal(t, "MISS", state)
		require.Equal(t, int64(1), first.Cards.NumberOfInvoices)

		_, state = s.getDashboard()
		require.Equal(t, "HIT", state, "二回目はキャッシュから返るべき")

		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, invoicesURL,
			invoiceForm(dbtest.CustomerDelbaOliv.String(), "10", "pending"), s.session)
		httptest.AssertRedirect(t, w, invoicesURL)

		after, state := s.getDashboard()
		require.Equal(t, "MISS", state, "作成後はキャッシュが破棄されるべき")
		require.Equal(t, int64(2), after.Cards.NumberOfInvoices)
		require.Equal(t, "$10.00", after.Cards.TotalPending)
	})

	s.Run("削除失敗でもキャッシュは破棄", func() {
		t := s.T()

		_, state := s.getDashboard()
		require.Equal(t, "MISS", state)
		_, state = s.getDashboard()
		require.Equal(t, "HIT", state)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL+"/not-a-uuid/delete", nil, s.session)
		require.Equal(t, http.StatusInternalServerError, w.Code)

		_, state = s.getDashboard()
		require.Equal(t, "MISS", state)
	})
}
