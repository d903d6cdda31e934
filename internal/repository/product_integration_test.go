//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"shegamart/internal/apperr"
	"shegamart/internal/domain"
	"shegamart/internal/repository"
)

type ProductRepositorySuite struct {
	suite.Suite
	repo     *repository.ProductRepo
	accounts *repository.AccountRepo
}

func (s *ProductRepositorySuite) SetupSuite() {
	s.repo = repository.NewProductRepo(tcPool)
	s.accounts = repository.NewAccountRepo(tcPool)
}

func (s *ProductRepositorySuite) SetupTest() {
	truncateAll(s.T())
}

func (s *ProductRepositorySuite) seller() int64 {
	a := &domain.Account{Email: "seller@shega.et", FirstName: "Selam", LastName: "Ayele", Role: domain.RoleBuyer}
	s.Require().NoError(s.accounts.Create(context.Background(), a))
	return a.ID
}

func (s *ProductRepositorySuite) TestCreateAndListNewestFirst() {
	ctx := context.Background()
	seller := s.seller()

	first := &domain.Product{SellerID: seller, Title: "Teff", Category: "grain", Price: 120.5, ImageURL: domain.PlaceholderImage}
	second := &domain.Product{SellerID: seller, Title: "Coffee", Category: "drinks", Price: 300, Description: "Yirgacheffe"}
	s.Require().NoError(s.repo.Create(ctx, first))
	s.Require().NoError(s.repo.Create(ctx, second))
	s.NotZero(first.ID)
	s.False(first.CreatedAt.IsZero())

	list, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(second.ID, list[0].ID)
	s.Equal("Yirgacheffe", list[0].Description)
	s.Equal(first.ID, list[1].ID)
	s.InDelta(120.5, list[1].Price, 1e-9)
}

func (s *ProductRepositorySuite) TestCreate_UnknownSeller() {
	err := s.repo.Create(context.Background(), &domain.Product{SellerID: 9999, Title: "x", Category: "y"})
	s.Require().ErrorIs(err, apperr.ErrNotFound)
}

func (s *ProductRepositorySuite) TestList_Empty() {
	list, err := s.repo.List(context.Background())
	s.Require().NoError(err)
	s.NotNil(list)
	s.Empty(list)
}

func TestProductRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProductRepositorySuite))
}
