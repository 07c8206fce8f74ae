// Package dto defines the data transfer objects returned by checkout use cases.
package dto

import (
	"time"

	"github.com/caixa-inc/caixa/internal/domain/coupon"
	"github.com/caixa-inc/caixa/internal/domain/payment"
	"github.com/caixa-inc/caixa/internal/domain/subscription"
)

// PlanDTO is the API representation of a plan.
type PlanDTO struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           string `json:"price"`
	PeriodicityDays int    `json:"periodicity"`
	Active          bool   `json:"active"`
}

// ToPlanDTO converts a plan entity.
func ToPlanDTO(p *subscription.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:              p.ID(),
		Name:            p.Name(),
		Description:     p.Description(),
		Price:           p.Price().StringFixed(2),
		PeriodicityDays: p.PeriodicityDays(),
		Active:          p.IsActive(),
	}
}

// ToPlanDTOs converts a slice of plan entities.
func ToPlanDTOs(plans []*subscription.Plan) []*PlanDTO {
	dtos := make([]*PlanDTO, 0, len(plans))
	for _, p := range plans {
		dtos = append(dtos, ToPlanDTO(p))
	}
	return dtos
}

// CouponDTO is the API representation of a coupon.
type CouponDTO struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	PlanID         *uint      `json:"plan_id"`
	ExpirationDays *int       `json:"expiration_days"`
	AmountOfUses   *int       `json:"amount_of_uses"`
	UsedCount      int        `json:"used_count"`
	DiscountType   string     `json:"discount_type"`
	DiscountValue  string     `json:"discount_value"`
	ExpiresAt      *time.Time `json:"expires_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ToCouponDTO converts a coupon entity.
func ToCouponDTO(c *coupon.Coupon) *CouponDTO {
	if c == nil {
		return nil
	}
	return &CouponDTO{
		ID:             c.ID(),
		Name:           c.Name(),
		PlanID:         c.PlanID(),
		ExpirationDays: c.ExpirationDays(),
		AmountOfUses:   c.AmountOfUses(),
		UsedCount:      c.UsedCount(),
		DiscountType:   string(c.Discount().Kind()),
		DiscountValue:  c.Discount().Value().StringFixed(2),
		ExpiresAt:      c.ExpiresAt(),
		CreatedAt:      c.CreatedAt(),
	}
}

// ToCouponDTOs converts a slice of coupon entities.
func ToCouponDTOs(coupons []*coupon.Coupon) []*CouponDTO {
	dtos := make([]*CouponDTO, 0, len(coupons))
	for _, c := range coupons {
		dtos = append(dtos, ToCouponDTO(c))
	}
	return dtos
}

// CardFlagDTO is the API representation of a card brand.
type CardFlagDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ToCardFlagDTO converts a card flag entity.
func ToCardFlagDTO(f *payment.CardFlag) *CardFlagDTO {
	if f == nil {
		return nil
	}
	return &CardFlagDTO{ID: f.ID(), Name: f.Name()}
}

// ToCardFlagDTOs converts a slice of card flag entities.
func ToCardFlagDTOs(flags []*payment.CardFlag) []*CardFlagDTO {
	dtos := make([]*CardFlagDTO, 0, len(flags))
	for _, f := range flags {
		dtos = append(dtos, ToCardFlagDTO(f))
	}
	return dtos
}

// CardDTO is the API representation of a card. The full number and CVC are
// never exposed; only the last four digits leave the system.
type CardDTO struct {
	ID         uint      `json:"id"`
	Last4      string    `json:"last_4_digits"`
	ClientName string    `json:"client_name"`
	CardFlagID uint      `json:"card_flag_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToCardDTO converts a card entity.
func ToCardDTO(c *payment.Card) *CardDTO {
	if c == nil {
		return nil
	}
	return &CardDTO{
		ID:         c.ID(),
		Last4:      c.Last4(),
		ClientName: c.ClientName(),
		CardFlagID: c.CardFlagID(),
		CreatedAt:  c.CreatedAt(),
	}
}

// TransactionDTO is the API representation of a payment attempt.
type TransactionDTO struct {
	ID             uint      `json:"id"`
	CardID         uint      `json:"card_id"`
	SubscriptionID uint      `json:"subscription_id"`
	Status         bool      `json:"status"`
	PricePaid      string    `json:"price_paid"`
	CreatedAt      time.Time `json:"created_at"`
	Card           *CardDTO  `json:"card,omitempty"`
}

// ToTransactionDTO converts a transaction entity.
func ToTransactionDTO(t *payment.Transaction) *TransactionDTO {
	if t == nil {
		return nil
	}
	return &TransactionDTO{
		ID:             t.ID(),
		CardID:         t.CardID(),
		SubscriptionID: t.SubscriptionID(),
		Status:         t.Approved(),
		PricePaid:      t.PricePaid().StringFixed(2),
		CreatedAt:      t.CreatedAt(),
	}
}

// SubscriptionDTO is the API representation of a subscription.
type SubscriptionDTO struct {
	ID        uint      `json:"id"`
	PlanID    uint      `json:"plan_id"`
	CouponID  *uint     `json:"coupon_id"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	PricePaid string    `json:"price_paid"`
	CreatedAt time.Time `json:"created_at"`
}

// ToSubscriptionDTO converts a subscription entity.
func ToSubscriptionDTO(s *subscription.Subscription) *SubscriptionDTO {
	if s == nil {
		return nil
	}
	return &SubscriptionDTO{
		ID:        s.ID(),
		PlanID:    s.PlanID(),
		CouponID:  s.CouponID(),
		Email:     s.Email(),
		Active:    s.IsActive(),
		PricePaid: s.PricePaid().StringFixed(2),
		CreatedAt: s.CreatedAt(),
	}
}

// SubscriptionDetailDTO is a subscription with its plan, coupon and latest
// payment attempt preloaded.
type SubscriptionDetailDTO struct {
	SubscriptionDTO
	Plan        *PlanDTO        `json:"plan,omitempty"`
	Coupon      *CouponDTO      `json:"coupon,omitempty"`
	Transaction *TransactionDTO `json:"transaction,omitempty"`
}
