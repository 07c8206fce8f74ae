package subscription

import "errors"

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrAlreadyActive        = errors.New("subscription is already active")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrPlanInactive         = errors.New("plan is not active")
	ErrEmailTaken           = errors.New("email already has a subscription")
)
