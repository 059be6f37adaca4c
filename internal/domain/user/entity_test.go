//go:build unit

package user_test

import (
	"testing"

	"invoice-dashboard/internal/domain/user"
	"invoice-dashboard/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser(t *testing.T) {
	t.Run("新規ユーザーはIDを採番", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, "User", u.Name())
		assert.Equal(t, "user@nextmail.com", u.Email().Value())
		assert.Equal(t, builder.DefaultPasswordHash, u.PasswordHash())
	})

	t.Run("保存済みユーザーはIDを保持", func(t *testing.T) {
		b := builder.NewUserBuilder().WithEmail("Amy@Burns.com")

		u, err := b.BuildStored()

		require.NoError(t, err)
		assert.Equal(t, b.ID, u.ID())
		assert.Equal(t, "amy@burns.com", u.Email().Value())
	})
}

func TestEmail(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  string
		errIs error
	}{
		{name: "有効なメールアドレスOK", in: "valid@example.com", want: "valid@example.com"},
		{name: "大文字は小文字に正規化", in: "User@NextMail.com", want: "user@nextmail.com"},
		{name: "前後の空白は除去", in: "  user@nextmail.com ", want: "user@nextmail.com"},
		{name: "空のメールアドレスNG", in: "", errIs: user.ErrInvalidEmail},
		{name: "無効な形式NG", in: "invalid-email", errIs: user.ErrInvalidEmail},
		{name: "@なしNG", in: "invalidemail.com", errIs: user.ErrInvalidEmail},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			email, err := user.NewEmail(c.in)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, email.Value())
		})
	}
}

func TestPassword(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		errIs error
	}{
		{name: "6文字OK", in: "123456"},
		{name: "長いパスワードOK", in: "correct horse battery staple"},
		{name: "5文字NG", in: "12345", errIs: user.ErrPasswordTooWeak},
		{name: "空NG", in: "", errIs: user.ErrPasswordTooWeak},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := user.NewPassword(c.in)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.in, p.Value())
		})
	}
}
