package models

import (
	"time"
)

const (
	TierBronze = "Bronze"
	TierSilver = "Silver"
	TierGold   = "Gold"

	// PointsPerCurrency is the spend required to earn one point.
	PointsPerCurrency = 10000
	// DiscountPerPoint is the discount value of a single redeemed point.
	DiscountPerPoint = 1000

	goldThreshold   = 500
	silverThreshold = 200
)

type LoyaltyAccount struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"not null;uniqueIndex"`
	Points     int       `json:"points" gorm:"not null;default:0"`
	Tier       string    `json:"tier" gorm:"not null;default:'Bronze'"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AddPoints accrues points for a charged amount and recomputes the tier.
// Returns the number of points added.
func (a *LoyaltyAccount) AddPoints(chargedAmount float64) int {
	added := int(chargedAmount) / PointsPerCurrency
	a.Points += added
	a.RecalculateTier()
	return added
}

// Redeem deducts points and recomputes the tier. Returns the discount value.
// The caller must have verified the balance; Redeem does not.
func (a *LoyaltyAccount) Redeem(points int) float64 {
	a.Points -= points
	a.RecalculateTier()
	return float64(points * DiscountPerPoint)
}

// RecalculateTier derives the tier from the point balance. The tier is never
// stored independently of the points that justify it.
func (a *LoyaltyAccount) RecalculateTier() {
	switch {
	case a.Points >= goldThreshold:
		a.Tier = TierGold
	case a.Points >= silverThreshold:
		a.Tier = TierSilver
	default:
		a.Tier = TierBronze
	}
}

// LoyaltyBalance is the customer-facing view of an account.
type LoyaltyBalance struct {
	CustomerID    uint    `json:"customer_id"`
	Points        int     `json:"points"`
	Tier          string  `json:"tier"`
	DiscountValue float64 `json:"discount_value"`
}

// LoyaltyResult reports the outcome of an accrual or redemption.
type LoyaltyResult struct {
	PointsAdded    int     `json:"points_added,omitempty"`
	PointsRedeemed int     `json:"points_redeemed,omitempty"`
	DiscountAmount float64 `json:"discount_amount,omitempty"`
	NewBalance     int     `json:"new_balance"`
	Tier           string  `json:"tier"`
}
