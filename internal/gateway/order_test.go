package gateway

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minimart_back_end/internal/models"
)

func TestBuildOrderComputesTotal(t *testing.T) {
	order := BuildOrder([]models.OrderItem{
		{Name: "Mì tôm Hảo Hảo ly", Quantity: 2, Price: 5000},
		{Name: "Coca Cola lon", Quantity: 1, Price: 10000},
	})

	assert.Equal(t, int64(20000), order.Amount)
	assert.Len(t, order.Items, 2)
}

func TestBuildOrderClampsToMinimumAmount(t *testing.T) {
	// 1500 is under the provider floor; the order goes through at 2000
	// instead of being rejected.
	order := BuildOrder([]models.OrderItem{{Name: "Kẹo lẻ", Quantity: 3, Price: 500}})

	assert.Equal(t, MinAmount, order.Amount)
}

func TestBuildOrderEmptyItemsStillMeetFloor(t *testing.T) {
	order := BuildOrder(nil)

	assert.Equal(t, MinAmount, order.Amount)
}

func TestDescribeJoinsShortLists(t *testing.T) {
	desc := Describe([]models.OrderItem{{Name: "Pepsi lon", Quantity: 2, Price: 10000}})

	assert.Equal(t, "Pepsi lon x2", desc)
}

func TestDescribeFallsBackToGenericSummary(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Mì tôm Hảo Hảo ly", Quantity: 1, Price: 5000},
		{Name: "Phở bò ăn liền", Quantity: 1, Price: 8000},
		{Name: "Coca Cola lon", Quantity: 2, Price: 10000},
		{Name: "Bánh mì sandwich", Quantity: 1, Price: 15000},
		{Name: "Trà sữa trân châu", Quantity: 3, Price: 25000},
	}

	// The joined list is far past the cap; the description must be the
	// generic count form, never a mid-name truncation.
	assert.Equal(t, "Thanh toan 5 san pham", Describe(items))
}

func TestNewOrderCodeStaysInDigitWidth(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := NewOrderCode()
		assert.GreaterOrEqual(t, code, orderCodeMin)
		assert.Less(t, code, orderCodeMin+orderCodeSpan)
	}
}

func TestNewOrderCodeVaries(t *testing.T) {
	seen := map[int64]bool{}
	for i := 0; i < 50; i++ {
		seen[NewOrderCode()] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestDecodeItemsArrayForm(t *testing.T) {
	items, err := DecodeItems([]byte(`[{"name":"Coca Cola lon","quantity":2,"price":10000}]`))

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.OrderItem{Name: "Coca Cola lon", Quantity: 2, Price: 10000}, items[0])
}

func TestDecodeItemsStringForm(t *testing.T) {
	// Form clients may post the array pre-encoded as a JSON string.
	inner := `[{"name":"Pepsi lon","quantity":1,"price":10000}]`
	items, err := DecodeItems([]byte(fmt.Sprintf("%q", inner)))

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Pepsi lon", items[0].Name)
}

func TestDecodeItemsMalformed(t *testing.T) {
	_, err := DecodeItems([]byte(`{not json`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
}

func TestFallbackItems(t *testing.T) {
	items := FallbackItems()

	require.Len(t, items, 1)
	assert.Equal(t, "Sản phẩm demo", items[0].Name)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, int64(2000), items[0].Price)
}
