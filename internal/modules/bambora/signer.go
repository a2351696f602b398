package bambora

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// RedirectRequest carries everything that goes into the signed payment URL.
type RedirectRequest struct {
	MerchantID string
	OrderID    int64
	OrderTotal decimal.Decimal
	Billing    *BillingDetails
}

// BillingDetails is the optional address block of the outbound request.
// ProvinceCode and CountryCode are resolved upstream and stay empty when the
// lookup misses.
type BillingDetails struct {
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	Address1     string
	Address2     string
	City         string
	ProvinceCode string
	CountryCode  string
	PostalCode   string
}

// SignedRedirect is the deterministic result of BuildRedirect.
type SignedRedirect struct {
	BaseURL   string
	Query     string
	HashValue string
}

func (r SignedRedirect) URL() string {
	return r.BaseURL + "?" + r.Query + "&hashValue=" + r.HashValue
}

// BuildRedirect serializes the request into the gateway's fixed field order
// and signs it. The field order is part of the signed bytes: the hash covers
// the query string exactly as sent, with the shared key appended, so the
// query must never be rebuilt or reordered afterwards. When Billing is nil
// the address fields are omitted entirely and the hash covers the shorter
// string; the gateway expects that asymmetry.
func BuildRedirect(req RedirectRequest, hashKey, gatewayURL string) SignedRedirect {
	var b strings.Builder

	fmt.Fprintf(&b, "merchant_id=%s", url.QueryEscape(req.MerchantID))
	fmt.Fprintf(&b, "&trnOrderNumber=%d", req.OrderID)
	fmt.Fprintf(&b, "&trnAmount=%s", FormatAmount(req.OrderTotal))

	if bd := req.Billing; bd != nil {
		fmt.Fprintf(&b, "&ordName=%s", url.QueryEscape(bd.FirstName+" "+bd.LastName))
		fmt.Fprintf(&b, "&ordEmailAddress=%s", url.QueryEscape(bd.Email))
		fmt.Fprintf(&b, "&ordPhoneNumber=%s", url.QueryEscape(bd.PhoneNumber))
		fmt.Fprintf(&b, "&ordAddress1=%s", url.QueryEscape(bd.Address1))
		fmt.Fprintf(&b, "&ordAddress2=%s", url.QueryEscape(bd.Address2))
		fmt.Fprintf(&b, "&ordCity=%s", url.QueryEscape(bd.City))
		fmt.Fprintf(&b, "&ordProvince=%s", url.QueryEscape(bd.ProvinceCode))
		fmt.Fprintf(&b, "&ordCountry=%s", url.QueryEscape(bd.CountryCode))
		fmt.Fprintf(&b, "&ordPostalCode=%s", url.QueryEscape(bd.PostalCode))
	}

	query := b.String()
	return SignedRedirect{
		BaseURL:   gatewayURL,
		Query:     query,
		HashValue: md5Hex(query + hashKey),
	}
}

// FormatAmount renders an amount the way the gateway expects it: two
// decimals, banker's rounding, invariant formatting.
func FormatAmount(d decimal.Decimal) string {
	return d.RoundBank(2).StringFixed(2)
}

func md5Hex(s string) string {
	h := md5.Sum([]byte(s))
	return hex.EncodeToString(h[:])
}
