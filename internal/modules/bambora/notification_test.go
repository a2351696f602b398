package bambora

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotification_FormWinsOverQuery(t *testing.T) {
	form := url.Values{"trnAmount": {"19.99"}, "trnOrderNumber": {"100"}}
	query := url.Values{"trnAmount": {"1.00"}, "trnApproved": {"1"}}

	n := ParseNotification(form, query)

	assert.Equal(t, "19.99", n.Get("trnAmount"))
	// keys missing from the form fall back to the query
	assert.Equal(t, "1", n.Get("trnApproved"))
	assert.True(t, n.Approved())
}

func TestParseNotification_MissingFieldsDefaultToEmpty(t *testing.T) {
	n := ParseNotification(url.Values{"trnOrderNumber": {"100"}}, nil)

	assert.Equal(t, "", n.Get("avsMessage"))
	assert.Equal(t, "", n.Get("cardType"))
	assert.False(t, n.Approved())

	id, err := n.OrderNumber()
	require.NoError(t, err)
	assert.Equal(t, int64(100), id)
}

func TestNotification_OrderNumberUnparseable(t *testing.T) {
	n := ParseNotification(url.Values{"trnOrderNumber": {"abc"}}, nil)
	_, err := n.OrderNumber()
	assert.Error(t, err)

	n = ParseNotification(nil, nil)
	_, err = n.OrderNumber()
	assert.Error(t, err)
}

func TestNotification_AmountUnparseable(t *testing.T) {
	n := ParseNotification(url.Values{"trnAmount": {"12,50"}}, nil)
	_, err := n.Amount()
	assert.Error(t, err)
}

func TestNotification_DumpListsEveryFieldInOrder(t *testing.T) {
	n := ParseNotification(url.Values{
		"trnApproved":    {"1"},
		"trnId":          {"T-1"},
		"trnOrderNumber": {"100"},
	}, nil)

	dump := n.Dump("Bambora response notification:")
	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")

	require.Equal(t, 1+len(notificationFields), len(lines))
	assert.Equal(t, "Bambora response notification:", lines[0])
	assert.Equal(t, "trnApproved: 1", lines[1])
	assert.Equal(t, "trnId: T-1", lines[2])
	// absent fields still get a line, with an empty value
	assert.Contains(t, lines, "avsMessage: ")
	assert.Equal(t, "paymentMethod: ", lines[len(lines)-1])
}
