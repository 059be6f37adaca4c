//go:build unit

package invoice_test

import (
	"testing"

	"invoice-dashboard/internal/domain/invoice"
	"invoice-dashboard/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type schemaCase struct {
	name       string
	mutate     func(*builder.InvoiceBuilder)
	wantFields map[string][]string
}

func TestCreateInvoiceSchema(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		res := invoice.CreateInvoice.SafeParse(builder.NewInvoiceBuilder().BuildFormInput())

		require.True(t, res.Success)
		require.Nil(t, res.Error)
		assert.Equal(t, "3958dc9e-712f-4377-85e9-fec4b6a6442a", res.Data.CustomerID)
		assert.Equal(t, invoice.StatusPaid, res.Data.Status)
		assert.Equal(t, int64(4999), res.Data.Amount.Cents())
		// id and date are server-assigned
		assert.Empty(t, res.Data.ID)
		assert.Empty(t, res.Data.Date)
	})

	t.Run("全フィールド不正", func(t *testing.T) {
		in := builder.NewInvoiceBuilder().With(func(b *builder.InvoiceBuilder) {
			b.WithCustomerID("").WithAmount("0").WithStatus("bogus")
		}).BuildFormInput()

		res := invoice.CreateInvoice.SafeParse(in)

		require.False(t, res.Success)
		require.NotNil(t, res.Error)
		assert.Equal(t, map[string][]string{
			invoice.FieldCustomerID: {invoice.MsgSelectCustomer},
			invoice.FieldAmount:     {invoice.MsgAmountPositive},
			invoice.FieldStatus:     {invoice.MsgSelectStatus},
		}, res.Error.Fields)
		assert.Contains(t, res.Error.Error(), "amount")
	})

	t.Run("顧客ID検証", func(t *testing.T) {
		runSchemaCases(t, invoice.CreateInvoice, []schemaCase{
			{name: "任意の顧客IDOK", mutate: func(b *builder.InvoiceBuilder) { b.WithCustomerID("c1") }},
			{
				name:       "空の顧客IDNG",
				mutate:     func(b *builder.InvoiceBuilder) { b.WithCustomerID("") },
				wantFields: map[string][]string{invoice.FieldCustomerID: {invoice.MsgSelectCustomer}},
			},
			{
				name:       "空白のみNG",
				mutate:     func(b *builder.InvoiceBuilder) { b.WithCustomerID("   ") },
				wantFields: map[string][]string{invoice.FieldCustomerID: {invoice.MsgSelectCustomer}},
			},
		})
	})

	t.Run("金額検証", func(t *testing.T) {
		amountErr := map[string][]string{invoice.FieldAmount: {invoice.MsgAmountPositive}}
		runSchemaCases(t, invoice.CreateInvoice, []schemaCase{
			{name: "小数金額OK", mutate: func(b *builder.InvoiceBuilder) { b.WithAmount("0.01") }},
			{name: "整数金額OK", mutate: func(b *builder.InvoiceBuilder) { b.WithAmount("1200") }},
			{name: "前後空白OK", mutate: func(b *builder.InvoiceBuilder) { b.WithAmount(" 15.5 ") }},
			{name: "ゼロNG", mutate: func(b *builder.InvoiceBuilder) { b.WithAmount("0") }, wantFields: amountErr},
			{name: "負数NG", mutate: func(b *builder.InvoiceBuilder) { b.WithAmount("-3.50") }, wantFields: amountErr},
			{name: "空文字NG", mutate: func(b *builder.InvoiceBuilder) { b.WithAmount("") }, wantFields: amountErr},
			{name: "数値以外NG", mutate: func(b *builder.InvoiceBuilder) { b.WithAmount("abc") }, wantFields: amountErr},
			{name: "半セントは切り上げOK", mutate: func(b *builder.InvoiceBuilder) { b.WithAmount("0.005") }},
			{name: "列の上限OK", mutate: func(b *builder.InvoiceBuilder) { b.WithAmount("21474836.47") }},
			{name: "1セント未満NG", mutate: func(b *builder.InvoiceBuilder) { b.WithAmount("0.001") }, wantFields: amountErr},
			{name: "列の上限超過NG", mutate: func(b *builder.InvoiceBuilder) { b.WithAmount("21474836.48") }, wantFields: amountErr},
			{name: "int64を超える金額NG", mutate: func(b *builder.InvoiceBuilder) { b.WithAmount("184467440737095515.16") }, wantFields: amountErr},
			{name: "指数表記の巨大値NG", mutate: func(b *builder.InvoiceBuilder) { b.WithAmount("1e20") }, wantFields: amountErr},
		})
	})

	t.Run("ステータス検証", func(t *testing.T) {
		statusErr := map[string][]string{invoice.FieldStatus: {invoice.MsgSelectStatus}}
		runSchemaCases(t, invoice.CreateInvoice, []schemaCase{
			{name: "pending OK", mutate: func(b *builder.InvoiceBuilder) { b.WithStatus("pending") }},
			{name: "paid OK", mutate: func(b *builder.InvoiceBuilder) { b.WithStatus("paid") }},
			{name: "未選択NG", mutate: func(b *builder.InvoiceBuilder) { b.WithStatus("") }, wantFields: statusErr},
			{name: "大文字NG", mutate: func(b *builder.InvoiceBuilder) { b.WithStatus("PAID") }, wantFields: statusErr},
			{name: "未知の値NG", mutate: func(b *builder.InvoiceBuilder) { b.WithStatus("overdue") }, wantFields: statusErr},
		})
	})
}

func TestFormSchema(t *testing.T) {
	t.Run("完全スキーマはIDと日付を要求", func(t *testing.T) {
		in := builder.NewInvoiceBuilder().With(func(b *builder.InvoiceBuilder) {
			b.ID = ""
			b.Date = ""
		}).BuildFormInput()

		res := invoice.FormSchema.SafeParse(in)

		require.False(t, res.Success)
		assert.Contains(t, res.Error.Fields, invoice.FieldID)
		assert.Contains(t, res.Error.Fields, invoice.FieldDate)
	})

	t.Run("完全スキーマはIDと日付を保持", func(t *testing.T) {
		b := builder.NewInvoiceBuilder()

		res := invoice.FormSchema.SafeParse(b.BuildFormInput())

		require.True(t, res.Success)
		assert.Equal(t, b.ID, res.Data.ID)
		assert.Equal(t, b.Date, res.Data.Date)
	})

	t.Run("更新スキーマもIDと日付を除外", func(t *testing.T) {
		assert.True(t, invoice.UpdateInvoice.Omits(invoice.FieldID))
		assert.True(t, invoice.UpdateInvoice.Omits(invoice.FieldDate))
		assert.False(t, invoice.UpdateInvoice.Omits(invoice.FieldAmount))
		assert.False(t, invoice.FormSchema.Omits(invoice.FieldID))
	})

	t.Run("未知のフィールド除外はpanic", func(t *testing.T) {
		assert.Panics(t, func() { invoice.FormSchema.Omit("nope") })
	})
}

func runSchemaCases(t *testing.T, schema invoice.Schema, cases []schemaCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := builder.NewInvoiceBuilder().With(c.mutate).BuildFormInput()

			res := schema.SafeParse(in)

			if c.wantFields == nil {
				require.True(t, res.Success)
				require.Nil(t, res.Error)
			} else {
				require.False(t, res.Success)
				require.NotNil(t, res.Error)
				assert.Equal(t, c.wantFields, res.Error.Fields)
			}
		})
	}
}
