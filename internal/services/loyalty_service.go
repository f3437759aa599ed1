package services

import (
	"errors"

	"pos_manager/internal/models"
	"pos_manager/internal/repository"
)

type LoyaltyService interface {
	GetOrCreateAccount(customerID uint) (*models.LoyaltyAccount, error)
	AddPoints(customerID uint, chargedAmount float64) (*models.LoyaltyResult, error)
	RedeemPoints(customerID uint, points int) (*models.LoyaltyResult, error)
	CheckBalance(customerID uint) (*models.LoyaltyBalance, error)
	GetAllAccounts() ([]models.LoyaltyAccount, error)
	GetTopMembers(limit int) ([]models.LoyaltyAccount, error)
}

type loyaltyService struct {
	loyaltyRepo repository.LoyaltyRepository
}

func NewLoyaltyService(loyaltyRepo repository.LoyaltyRepository) LoyaltyService {
	return &loyaltyService{loyaltyRepo: loyaltyRepo}
}

// GetOrCreateAccount lazily creates a zero-balance Bronze account on first
// access.
func (s *loyaltyService) GetOrCreateAccount(customerID uint) (*models.LoyaltyAccount, error) {
	account, err := s.loyaltyRepo.GetByCustomer(customerID)
	if err == nil {
		return account, nil
	}
	var notFound *models.NotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}

	account = &models.LoyaltyAccount{CustomerID: customerID, Points: 0, Tier: models.TierBronze}
	if err := s.loyaltyRepo.Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

// AddPoints accrues points on the amount actually charged, not the
// pre-discount subtotal.
func (s *loyaltyService) AddPoints(customerID uint, chargedAmount float64) (*models.LoyaltyResult, error) {
	account, err := s.GetOrCreateAccount(customerID)
	if err != nil {
		return nil, err
	}

	added := account.AddPoints(chargedAmount)
	if err := s.loyaltyRepo.Save(account); err != nil {
		return nil, err
	}

	return &models.LoyaltyResult{
		PointsAdded: added,
		NewBalance:  account.Points,
		Tier:        account.Tier,
	}, nil
}

// RedeemPoints commits the redemption immediately. It is not transactional
// with the rest of an order: a later payment failure does not restore the
// points.
func (s *loyaltyService) RedeemPoints(customerID uint, points int) (*models.LoyaltyResult, error) {
	account, err := s.GetOrCreateAccount(customerID)
	if err != nil {
		return nil, err
	}

	if points > account.Points {
		return nil, &models.InsufficientPointsError{Available: account.Points, Requested: points}
	}

	discount := account.Redeem(points)
	if err := s.loyaltyRepo.Save(account); err != nil {
		return nil, err
	}

	return &models.LoyaltyResult{
		PointsRedeemed: points,
		DiscountAmount: discount,
		NewBalance:     account.Points,
		Tier:           account.Tier,
	}, nil
}

func (s *loyaltyService) CheckBalance(customerID uint) (*models.LoyaltyBalance, error) {
	account, err := s.GetOrCreateAccount(customerID)
	if err != nil {
		return nil, err
	}
	return &models.LoyaltyBalance{
		CustomerID:    customerID,
		Points:        account.Points,
		Tier:          account.Tier,
		DiscountValue: float64(account.Points * models.DiscountPerPoint),
	}, nil
}

func (s *loyaltyService) GetAllAccounts() ([]models.LoyaltyAccount, error) {
	return s.loyaltyRepo.GetAll()
}

func (s *loyaltyService) GetTopMembers(limit int) ([]models.LoyaltyAccount, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.loyaltyRepo.GetTop(limit)
}
