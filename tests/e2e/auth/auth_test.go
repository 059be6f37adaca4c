//go:build e2e

package auth_test

import (
	"net/http"
	"net/url"
	"testing"

	"invoice-dashboard/internal/pkg/cookie"
	"invoice-dashboard/tests/common/authtest"
	"invoice-dashboard/tests/common/dbtest"
	"invoice-dashboard/tests/common/httptest"
	"invoice-dashboard/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL     = "/login"
	logoutURL    = "/logout"
	dashboardURL = "/dashboard"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.Auth)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "User", "user@nextmail.com")
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name            string
		email           string
		password        string
		expectedStatus  int
		expectedMessage string
		description     string
	}{
		{
			name:           "正常なログイン",
			email:          "user@nextmail.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusSeeOther,
			description:    "有効な認証情報でダッシュボードへリダイレクトされること",
		},
		{
			name:            "存在しないユーザー",
			email:           "nonexistent@example.com",
			password:        dbtest.DefaultPassword,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid credentials.",
			description:     "存在しないユーザーでログインできないこと",
		},
		{
			name:            "間違ったパスワード",
			email:           "user@nextmail.com",
			password:        "wrongpassword",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid credentials.",
			description:     "間違ったパスワードでログインできないこと",
		},
		{
			name:            "不正なメールアドレス",
			email:           "not-an-email",
			password:        dbtest.DefaultPassword,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid credentials.",
			description:     "形式不正のメールアドレスは認証失敗として扱われること",
		},
		{
			name:            "短すぎるパスワード",
			email:           "user@nextmail.com",
			password:        "123",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid credentials.",
			description:     "6文字未満のパスワードは認証失敗として扱われること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, loginURL,
				url.Values{"email": {tt.email}, "password": {tt.password}})
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
			if tt.expectedStatus == http.StatusSeeOther {
				require.Equal(t, dashboardURL, w.Header().Get("Location"))
				require.NotNil(t, sessionCookie, "セッションCookieが設定されていない")
				require.True(t, sessionCookie.HttpOnly, "セッションCookieはHttpOnlyであるべき")
				return
			}
			require.Nil(t, sessionCookie, "失敗時にセッションCookieが設定された")
			httptest.AssertActionState(t, w, tt.expectedStatus, tt.expectedMessage, nil)
		})
	}
}

func (s *authSuite) TestLoginPage() {
	s.Run("未ログインならフォームを返す", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, loginURL, nil)
		require.Equal(s.T(), http.StatusOK, w.Code)
		require.Contains(s.T(), w.Body.String(), `"action":"/login"`)
	})

	s.Run("ログイン済みならダッシュボードへ", func() {
		session := authtest.LoginUser(s.T(), s.Router, "user@nextmail.com", dbtest.DefaultPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, loginURL, nil, session)
		httptest.AssertRedirect(s.T(), w, dashboardURL)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("正常なログアウト", func() {
		t := s.T()
		session := authtest.LoginUser(t, s.Router, "user@nextmail.com", dbtest.DefaultPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, session)
		httptest.AssertRedirect(t, w, loginURL)

		require.Len(t, httptest.ExtractCookies(w), 1)
		cleared := httptest.ExtractCookie(w, cookie.SessionCookieName)
		require.NotNil(t, cleared, "セッションCookieが削除されていない")
		require.Empty(t, cleared.Value)
		require.Negative(t, cleared.MaxAge)
	})

	s.Run("未ログインでもログイン画面へ", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil)
		httptest.AssertRedirect(s.T(), w, loginURL)
	})
}

func (s *authSuite) TestDashboardAccess() {
	tests := []struct {
		name        string
		session     func() *http.Cookie
		wantStatus  int
		description string
	}{
		{
			name: "ログイン済み",
			session: func() *http.Cookie {
				return authtest.LoginUser(s.T(), s.Router, "user@nextmail.com", dbtest.DefaultPassword)
			},
			wantStatus:  http.StatusOK,
			description: "ログイン済みならダッシュボードが見られること",
		},
		{
			name:        "Cookieなし",
			session:     func() *http.Cookie { return nil },
			wantStatus:  http.StatusSeeOther,
			description: "Cookieなしはログイン画面へリダイレクトされること",
		},
		{
			name: "無効なトークン",
			session: func() *http.Cookie {
				return authtest.SessionCookie("invalid-token")
			},
			wantStatus:  http.StatusSeeOther,
			description: "無効なトークンはログイン画面へリダイレクトされること",
		},
		{
			name: "期限切れトークン",
			session: func() *http.Cookie {
				return authtest.SessionCookie(s.jwtHelper.CreateExpiredToken(s.T(), uuid.New(), "user@nextmail.com"))
			},
			wantStatus:  http.StatusSeeOther,
			description: "期限切れトークンはログイン画面へリダイレクトされること",
		},
		{
			name: "削除済みユーザー",
			session: func() *http.Cookie {
				return authtest.SessionCookie(s.jwtHelper.GenerateToken(s.T(), uuid.New(), "ghost@nextmail.com"))
			},
			wantStatus:  http.StatusSeeOther,
			description: "存在しないユーザーのセッションはログイン画面へリダイレクトされること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			var cookies []*http.Cookie
			if c := tt.session(); c != nil {
				cookies = append(cookies, c)
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, dashboardURL, nil, cookies...)
			require.Equal(t, tt.wantStatus, w.Code, tt.description)

			if tt.wantStatus == http.StatusSeeOther {
				require.Equal(t, loginURL, w.Header().Get("Location"))
				return
			}
			require.Contains(t, w.Body.String(), "user@nextmail.com")
			require.NotContains(t, w.Body.String(), "password", "レスポンスにパスワード情報が含まれている")
		})
	}
}
