package bambora

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGatewayURL = "https://www.beanstream.com/scripts/payment/payment.asp"

func TestBuildRedirect_KnownVector(t *testing.T) {
	req := RedirectRequest{
		MerchantID: "M1",
		OrderID:    100,
		OrderTotal: decimal.RequireFromString("19.99"),
	}

	got := BuildRedirect(req, "hashkey", testGatewayURL)

	assert.Equal(t, "merchant_id=M1&trnOrderNumber=100&trnAmount=19.99", got.Query)
	// md5 hex of "merchant_id=M1&trnOrderNumber=100&trnAmount=19.99hashkey"
	assert.Equal(t, "434cdb746be70e2b8826c9025a59d02f", got.HashValue)
	assert.Equal(t, testGatewayURL+"?merchant_id=M1&trnOrderNumber=100&trnAmount=19.99&hashValue=434cdb746be70e2b8826c9025a59d02f", got.URL())
}

func TestBuildRedirect_Deterministic(t *testing.T) {
	req := RedirectRequest{
		MerchantID: "M1",
		OrderID:    100,
		OrderTotal: decimal.RequireFromString("19.99"),
		Billing: &BillingDetails{
			FirstName: "John",
			LastName:  "Smith",
			Email:     "john.smith@example.com",
		},
	}

	first := BuildRedirect(req, "hashkey", testGatewayURL)
	second := BuildRedirect(req, "hashkey", testGatewayURL)
	require.Equal(t, first, second)

	// any single field change must change the hash
	changed := req
	changed.OrderID = 101
	assert.NotEqual(t, first.HashValue, BuildRedirect(changed, "hashkey", testGatewayURL).HashValue)

	changed = req
	changed.Billing = nil
	assert.NotEqual(t, first.HashValue, BuildRedirect(changed, "hashkey", testGatewayURL).HashValue)

	assert.NotEqual(t, first.HashValue, BuildRedirect(req, "otherkey", testGatewayURL).HashValue)
}

func TestBuildRedirect_FieldOrderWithBilling(t *testing.T) {
	req := RedirectRequest{
		MerchantID: "M1",
		OrderID:    42,
		OrderTotal: decimal.NewFromInt(50),
		Billing: &BillingDetails{
			FirstName:    "John",
			LastName:     "Smith",
			Email:        "john.smith@example.com",
			PhoneNumber:  "555-0100",
			Address1:     "100 Main St",
			Address2:     "",
			City:         "Victoria",
			ProvinceCode: "BC",
			CountryCode:  "CA",
			PostalCode:   "V8V 1A1",
		},
	}

	got := BuildRedirect(req, "hashkey", testGatewayURL)

	want := "merchant_id=M1&trnOrderNumber=42&trnAmount=50.00" +
		"&ordName=John+Smith" +
		"&ordEmailAddress=john.smith%40example.com" +
		"&ordPhoneNumber=555-0100" +
		"&ordAddress1=100+Main+St" +
		"&ordAddress2=" +
		"&ordCity=Victoria" +
		"&ordProvince=BC" +
		"&ordCountry=CA" +
		"&ordPostalCode=V8V+1A1"
	assert.Equal(t, want, got.Query)
}

func TestBuildRedirect_OmitsAddressBlockWithoutBilling(t *testing.T) {
	req := RedirectRequest{
		MerchantID: "M1",
		OrderID:    7,
		OrderTotal: decimal.NewFromInt(10),
	}

	got := BuildRedirect(req, "hashkey", testGatewayURL)

	// optional fields are omitted, not sent as empty placeholders
	assert.NotContains(t, got.Query, "ordName")
	assert.NotContains(t, got.Query, "ordCountry")
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"19.99", "19.99"},
		{"19.999", "20.00"},
		{"19.994", "19.99"},
		{"2.005", "2.00"}, // banker's rounding, half to even
		{"2.015", "2.02"},
		{"1", "1.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatAmount(decimal.RequireFromString(tc.in)), "input %s", tc.in)
	}
}
