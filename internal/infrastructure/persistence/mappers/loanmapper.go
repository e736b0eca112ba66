package mappers

import (
	"fmt"

	"athenaeum/internal/domain/loan"
	"athenaeum/internal/infrastructure/persistence/models"
)

// LoanMapper handles the conversion between the lending aggregate (loans,
// detail lines, cart lines) and persistence models.
type LoanMapper interface {
	ToModel(l *loan.Loan) *models.LoanModel
	ToDomain(model *models.LoanModel) (*loan.Loan, error)
	ToDomainList(loanModels []*models.LoanModel) ([]*loan.Loan, error)

	CartItemToModel(item *loan.CartItem) *models.LoanDetailTempModel
	CartItemToDomain(model *models.LoanDetailTempModel) (*loan.CartItem, error)
}

type LoanMapperImpl struct {
	bookMapper BookMapper
	userMapper UserMapper
}

func NewLoanMapper() LoanMapper {
	return &LoanMapperImpl{
		bookMapper: NewBookMapper(),
		userMapper: NewUserMapper(),
	}
}

// ToModel converts a loan and its detail lines. Detail rows ride along as
// association children so a single Create persists the whole aggregate.
func (m *LoanMapperImpl) ToModel(l *loan.Loan) *models.LoanModel {
	items := make([]models.LoanDetailModel, 0, len(l.Items()))
	for _, item := range l.Items() {
		items = append(items, models.LoanDetailModel{
			ID:         item.ID(),
			LoanID:     item.LoanID(),
			UserID:     item.UserID(),
			BookID:     item.BookID(),
			Quantity:   item.Quantity(),
			WasDeleted: item.WasDeleted(),
		})
	}

	return &models.LoanModel{
		ID:           l.ID(),
		UserID:       l.UserID(),
		LoanDate:     l.LoanDate(),
		DueDate:      l.DueDate(),
		DeliveryDate: l.DeliveryDate(),
		WasDeleted:   l.WasDeleted(),
		Items:        items,
	}
}

func (m *LoanMapperImpl) ToDomain(model *models.LoanModel) (*loan.Loan, error) {
	items := make([]*loan.LoanDetail, 0, len(model.Items))
	for i := range model.Items {
		itemModel := &model.Items[i]
		detail, err := loan.ReconstructLoanDetail(
			itemModel.ID,
			itemModel.LoanID,
			itemModel.UserID,
			itemModel.BookID,
			itemModel.Quantity,
			itemModel.WasDeleted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to map loan detail (id=%d): %w", itemModel.ID, err)
		}
		if itemModel.Book != nil {
			bookEntity, err := m.bookMapper.ToDomain(itemModel.Book)
			if err != nil {
				return nil, fmt.Errorf("failed to map loan detail book (id=%d): %w", itemModel.BookID, err)
			}
			detail.AttachBook(bookEntity)
		}
		items = append(items, detail)
	}

	entity, err := loan.ReconstructLoan(
		model.ID,
		model.UserID,
		model.LoanDate.UTC(),
		model.DueDate.UTC(),
		model.DeliveryDate,
		model.WasDeleted,
		items,
	)
	if err != nil {
		return nil, err
	}

	if model.User != nil {
		owner, err := m.userMapper.ToDomain(model.User)
		if err != nil {
			return nil, fmt.Errorf("failed to map loan user (id=%d): %w", model.UserID, err)
		}
		entity.AttachUser(owner)
	}

	return entity, nil
}

func (m *LoanMapperImpl) ToDomainList(loanModels []*models.LoanModel) ([]*loan.Loan, error) {
	loans := make([]*loan.Loan, 0, len(loanModels))
	for _, model := range loanModels {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		loans = append(loans, entity)
	}
	return loans, nil
}

func (m *LoanMapperImpl) CartItemToModel(item *loan.CartItem) *models.LoanDetailTempModel {
	return &models.LoanDetailTempModel{
		ID:         item.ID(),
		UserID:     item.UserID(),
		BookID:     item.BookID(),
		Quantity:   item.Quantity(),
		WasDeleted: item.WasDeleted(),
	}
}

func (m *LoanMapperImpl) CartItemToDomain(model *models.LoanDetailTempModel) (*loan.CartItem, error) {
	item, err := loan.ReconstructCartItem(
		model.ID,
		model.UserID,
		model.BookID,
		model.Quantity,
		model.WasDeleted,
	)
	if err != nil {
		return nil, err
	}

	if model.Book != nil {
		bookEntity, err := m.bookMapper.ToDomain(model.Book)
		if err != nil {
			return nil, fmt.Errorf("failed to map cart item book (id=%d): %w", model.BookID, err)
		}
		item.AttachBook(bookEntity)
	}

	return item, nil
}
