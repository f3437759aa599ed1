package services

import (
	"pos_manager/internal/models"
	"pos_manager/internal/repository"
)

type BranchService interface {
	GetBranch(id uint) (*models.Branch, error)
	GetAllBranches() ([]models.Branch, error)
	CreateBranch(branch *models.Branch) error
}

type branchService struct {
	branchRepo repository.BranchRepository
}

func NewBranchService(branchRepo repository.BranchRepository) BranchService {
	return &branchService{branchRepo: branchRepo}
}

func (s *branchService) GetBranch(id uint) (*models.Branch, error) {
	return s.branchRepo.GetByID(id)
}

func (s *branchService) GetAllBranches() ([]models.Branch, error) {
	return s.branchRepo.GetAll()
}

func (s *branchService) CreateBranch(branch *models.Branch) error {
	if branch.Name == "" {
		return models.NewValidationError("branch name is required")
	}
	return s.branchRepo.Create(branch)
}

type CustomerService interface {
	GetCustomer(id uint) (*models.Customer, error)
	GetAllCustomers() ([]models.Customer, error)
	CreateCustomer(customer *models.Customer) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) GetCustomer(id uint) (*models.Customer, error) {
	return s.customerRepo.GetByID(id)
}

func (s *customerService) GetAllCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

func (s *customerService) CreateCustomer(customer *models.Customer) error {
	if customer.Name == "" {
		return models.NewValidationError("customer name is required")
	}
	return s.customerRepo.Create(customer)
}
