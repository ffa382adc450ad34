package orderapi_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Gunvolt24/wb_order_viewer/internal/orderapi"
	"github.com/Gunvolt24/wb_order_viewer/internal/testutil"
	"github.com/stretchr/testify/require"
)

// sampleWithout — эталонный заказ без поля по пути вида "payment.amount".
func sampleWithout(t *testing.T, path string) []byte {
	t.Helper()

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(testutil.SampleOrderJSON), &doc))

	keys := strings.Split(path, ".")
	node := doc
	for _, k := range keys[:len(keys)-1] {
		switch next := node[k].(type) {
		case map[string]any:
			node = next
		case []any:
			node = next[0].(map[string]any)
		default:
			t.Fatalf("bad path %q", path)
		}
	}
	delete(node, keys[len(keys)-1])

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func TestDecodeOrder_Sample(t *testing.T) {
	got, err := orderapi.DecodeOrder([]byte(testutil.SampleOrderJSON))
	require.NoError(t, err)

	want := testutil.MakeOrder()
	require.Equal(t, want.OrderUID, got.OrderUID)
	require.Equal(t, want.DateCreated, got.DateCreated)
	require.Equal(t, want.ShardKey, got.ShardKey)
	require.Equal(t, want.Items[0].RID, got.Items[0].RID)
	require.True(t, want.Payment.GoodsTotal.Equal(got.Payment.GoodsTotal))
}

func TestDecodeOrder_MissingRequiredField(t *testing.T) {
	paths := []string{
		"order_uid",
		"date_created",
		"delivery",
		"delivery.email",
		"payment",
		"payment.amount",
		"payment.payment_dt",
		"items",
		"items.sale",
		"items.total_price",
	}

	for _, path := range paths {
		path := path
		t.Run(path, func(t *testing.T) {
			_, err := orderapi.DecodeOrder(sampleWithout(t, path))

			var decErr *orderapi.DecodeError
			require.ErrorAs(t, err, &decErr)
		})
	}
}

func TestDecodeOrder_OptionalFieldsMayBeAbsent(t *testing.T) {
	for _, path := range []string{"locale", "sm_id", "payment.custom_fee", "items.rid", "items.chrt_id"} {
		path := path
		t.Run(path, func(t *testing.T) {
			_, err := orderapi.DecodeOrder(sampleWithout(t, path))
			require.NoError(t, err)
		})
	}
}

func TestDecodeOrder_ZeroItemsAndFractions(t *testing.T) {
	raw := `{"order_uid":"u","track_number":"t","entry":"e","customer_id":"c","delivery_service":"d","date_created":"dc",
		"delivery":{"name":"","phone":"","zip":"","city":"","address":"","region":"","email":""},
		"payment":{"transaction":"tx","currency":"RUB","provider":"p","amount":18.5,"payment_dt":0,"bank":"b","delivery_cost":0,"goods_total":18.5},
		"items":[],"unknown_field":true}`

	got, err := orderapi.DecodeOrder([]byte(raw))
	require.NoError(t, err)
	require.Empty(t, got.Items)
	require.Equal(t, "18.5", got.Payment.Amount.String())
	require.Equal(t, "0", got.Payment.DeliveryCost.String())
}

func TestDecodeOrder_NullObject(t *testing.T) {
	raw := strings.Replace(testutil.SampleOrderJSON, `"delivery": {`, `"delivery": null, "x": {`, 1)
	_, err := orderapi.DecodeOrder([]byte(raw))

	var decErr *orderapi.DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Contains(t, err.Error(), "delivery")
}

func TestDecodeOrder_QuotedNumbersRejected(t *testing.T) {
	replacements := map[string][2]string{
		"amount":      {`"amount": 1817`, `"amount": "1817"`},
		"goods_total": {`"goods_total": 317`, `"goods_total": "317"`},
		"price":       {`"price": 453`, `"price": "453"`},
		"custom_fee":  {`"custom_fee": 0`, `"custom_fee": "0"`},
		"sale":        {`"sale": 30`, `"sale": "30"`},
		"payment_dt":  {`"payment_dt": 1637907727`, `"payment_dt": "1637907727"`},
	}

	for name, r := range replacements {
		r := r
		t.Run(name, func(t *testing.T) {
			raw := strings.Replace(testutil.SampleOrderJSON, r[0], r[1], 1)
			require.NotEqual(t, testutil.SampleOrderJSON, raw)

			_, err := orderapi.DecodeOrder([]byte(raw))
			var decErr *orderapi.DecodeError
			require.ErrorAs(t, err, &decErr)
		})
	}
}

func TestDecodeOrder_IntegralFloatsAccepted(t *testing.T) {
	raw := strings.NewReplacer(
		`"sale": 30`, `"sale": 30.0`,
		`"status": 202`, `"status": 2.02e2`,
		`"payment_dt": 1637907727`, `"payment_dt": 1637907727.0`,
		`"sm_id": 99`, `"sm_id": 99.00`,
	).Replace(testutil.SampleOrderJSON)

	got, err := orderapi.DecodeOrder([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, 30, got.Items[0].Sale)
	require.Equal(t, 202, got.Items[0].Status)
	require.Equal(t, int64(1637907727), got.Payment.PaymentDT)
	require.Equal(t, 99, got.SmID)
}

func TestDecodeOrder_FractionalIntegerRejected(t *testing.T) {
	for _, field := range [][2]string{
		{`"sale": 30`, `"sale": 30.5`},
		{`"status": 202`, `"status": 202.1`},
		{`"payment_dt": 1637907727`, `"payment_dt": 1e30`},
	} {
		raw := strings.Replace(testutil.SampleOrderJSON, field[0], field[1], 1)

		_, err := orderapi.DecodeOrder([]byte(raw))
		var decErr *orderapi.DecodeError
		require.ErrorAs(t, err, &decErr, field[1])
	}
}
