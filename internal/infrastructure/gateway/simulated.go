// Package gateway provides the simulated card acquirer used in place of a
// real processor integration.
package gateway

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/caixa-inc/caixa/internal/domain/payment"
	"github.com/caixa-inc/caixa/internal/shared/config"
	"github.com/caixa-inc/caixa/internal/shared/logger"
	"github.com/caixa-inc/caixa/internal/shared/utils"
)

// SimulatedGateway decides payment outcomes from the card number's first
// digit: '5' always approves, '4' always declines, '3' approves with the
// configured probability, anything else declines. The randomized branch
// draws from an injected seeded source so tests are reproducible.
type SimulatedGateway struct {
	mu           sync.Mutex
	rng          *rand.Rand
	approvalRate float64
	logger       logger.Interface
}

// NewSimulatedGateway creates a gateway from configuration. A zero seed
// falls back to the clock.
func NewSimulatedGateway(cfg *config.GatewayConfig, log logger.Interface) *SimulatedGateway {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rate := cfg.ApprovalRate
	if rate <= 0 || rate > 1 {
		rate = 0.7
	}

	return &SimulatedGateway{
		rng:          rand.New(rand.NewSource(seed)),
		approvalRate: rate,
		logger:       log,
	}
}

// Charge returns the acquirer's decision for the card. A context error is
// reported as an ambiguous outcome: the charge may or may not have gone
// through on the other side, so the caller must not record a result.
func (g *SimulatedGateway) Charge(ctx context.Context, cardNumber string) (payment.Decision, error) {
	if err := ctx.Err(); err != nil {
		return payment.Decision{}, payment.ErrAmbiguousOutcome
	}

	decision := g.decide(cardNumber)

	g.logger.Debugw("gateway decision",
		"card_number", utils.MaskCardNumber(cardNumber),
		"approved", decision.Approved,
	)

	return decision, nil
}

func (g *SimulatedGateway) decide(cardNumber string) payment.Decision {
	if cardNumber == "" {
		return payment.Decision{Approved: false, Message: "Payment declined."}
	}

	switch cardNumber[0] {
	case '5':
		return payment.Decision{Approved: true, Message: "Payment approved."}
	case '4':
		return payment.Decision{Approved: false, Message: "Payment declined."}
	case '3':
		g.mu.Lock()
		roll := g.rng.Float64()
		g.mu.Unlock()
		if roll < g.approvalRate {
			return payment.Decision{Approved: true, Message: "Payment approved."}
		}
		return payment.Decision{Approved: false, Message: "Payment declined."}
	default:
		return payment.Decision{Approved: false, Message: "Payment declined."}
	}
}
