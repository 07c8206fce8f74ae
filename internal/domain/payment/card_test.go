package payment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	expire := time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)

	card, err := NewCard("5555444433332222", "Client Name", expire, "123", 1)
	require.NoError(t, err)
	assert.Equal(t, "2222", card.Last4())
	assert.Equal(t, "5555444433332222", card.Number())
	assert.Zero(t, card.ID())

	_, err = NewCard("", "Client Name", expire, "123", 1)
	assert.Error(t, err)

	_, err = NewCard("5555444433332222", "", expire, "123", 1)
	assert.Error(t, err)

	_, err = NewCard("5555444433332222", "Client Name", expire, "123", 0)
	assert.Error(t, err)
}

func TestNewTransactionValidation(t *testing.T) {
	price := decimal.RequireFromString("49.90")

	txn, err := NewTransaction(3, 10, true, price)
	require.NoError(t, err)
	assert.True(t, txn.Approved())
	assert.Equal(t, uint(3), txn.CardID())
	assert.Equal(t, uint(10), txn.SubscriptionID())

	_, err = NewTransaction(0, 10, true, price)
	assert.Error(t, err)

	_, err = NewTransaction(3, 0, true, price)
	assert.Error(t, err)
}
