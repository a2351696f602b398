package bambora

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// notificationFields is the full set of parameters the gateway sends back,
// in the order they appear in order notes.
var notificationFields = []string{
	"trnApproved",
	"trnId",
	"messageId",
	"messageText",
	"authCode",
	"responseType",
	"trnAmount",
	"trnDate",
	"trnOrderNumber",
	"trnLanguage",
	"trnCustomerName",
	"trnEmailAddress",
	"trnPhoneNumber",
	"avsProcessed",
	"avsId",
	"avsResult",
	"avsPostalMatch",
	"avsMessage",
	"cvdId",
	"cardType",
	"trnType",
	"paymentMethod",
}

// Notification is one inbound callback payload. Fields absent from the
// transport default to the empty string.
type Notification struct {
	params map[string]string
}

// ParseNotification extracts the gateway field set; form values win, query
// values fill in keys the form did not carry.
func ParseNotification(form, query url.Values) Notification {
	params := make(map[string]string, len(notificationFields))
	for _, key := range notificationFields {
		if vs, ok := form[key]; ok && len(vs) > 0 {
			params[key] = vs[0]
			continue
		}
		params[key] = query.Get(key)
	}
	return Notification{params: params}
}

func (n Notification) Get(key string) string {
	return n.params[key]
}

func (n Notification) Approved() bool {
	return n.params["trnApproved"] == "1"
}

func (n Notification) TransactionID() string {
	return n.params["trnId"]
}

func (n Notification) MessageText() string {
	return n.params["messageText"]
}

func (n Notification) OrderNumber() (int64, error) {
	return strconv.ParseInt(n.params["trnOrderNumber"], 10, 64)
}

func (n Notification) Amount() (decimal.Decimal, error) {
	return decimal.NewFromString(n.params["trnAmount"])
}

// Dump renders the full field set one per line under a title, for order
// notes and error context.
func (n Notification) Dump(title string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	for _, key := range notificationFields {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(n.params[key])
		b.WriteString("\n")
	}
	return b.String()
}
