package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"athenaeum/internal/domain/loan"
	"athenaeum/internal/domain/user"
	"athenaeum/internal/infrastructure/persistence/mappers"
	"athenaeum/internal/infrastructure/persistence/models"
	"athenaeum/internal/shared/clock"
	sharedb "athenaeum/internal/shared/db"
	apperrors "athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

// LoanRepository is the storage side of the lending core. Cart lines are
// keyed (user, book) by a unique index, so the add path can upsert with a
// plain atomic increment, and confirmation drains the cart into a loan
// inside a single transaction.
type LoanRepository struct {
	db              *gorm.DB
	mapper          mappers.LoanMapper
	users           user.Resolver
	clock           clock.Clock
	gracePeriodDays int
	logger          logger.Interface
}

func NewLoanRepository(
	db *gorm.DB,
	mapper mappers.LoanMapper,
	users user.Resolver,
	clk clock.Clock,
	gracePeriodDays int,
	log logger.Interface,
) *LoanRepository {
	if gracePeriodDays <= 0 {
		gracePeriodDays = loan.DefaultGracePeriodDays
	}
	return &LoanRepository{
		db:              db,
		mapper:          mapper,
		users:           users,
		clock:           clk,
		gracePeriodDays: gracePeriodDays,
		logger:          log.Named("loan_repository"),
	}
}

// AddItemToCart stages copies of a book in the user's cart. An unknown
// username or book is a silent no-op. The increment runs as a single
// UPDATE so concurrent adds for the same (user, book) pair never lose a
// count; when no row exists yet the insert races are settled by the
// unique index, with one retry falling back to the increment.
func (r *LoanRepository) AddItemToCart(ctx context.Context, username string, bookID uint, quantity int) error {
	u, err := r.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if u == nil {
		r.logger.Debugw("add to cart skipped, unknown user", "username", username)
		return nil
	}

	var bookCount int64
	err = r.db.WithContext(ctx).Model(&models.BookModel{}).
		Scopes(sharedb.NotDeleted()).
		Where("id = ?", bookID).
		Count(&bookCount).Error
	if err != nil {
		r.logger.Errorw("failed to check book", "book_id", bookID, "error", err)
		return apperrors.NewInternalError("failed to check book")
	}
	if bookCount == 0 {
		r.logger.Debugw("add to cart skipped, unknown book", "book_id", bookID)
		return nil
	}

	if err := r.incrementCartLine(ctx, u.ID(), bookID, quantity); err != nil {
		return err
	}
	return nil
}

func (r *LoanRepository) incrementCartLine(ctx context.Context, userID, bookID uint, quantity int) error {
	result := r.db.WithContext(ctx).Model(&models.LoanDetailTempModel{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity))
	if result.Error != nil {
		r.logger.Errorw("failed to increment cart line", "user_id", userID, "book_id", bookID, "error", result.Error)
		return apperrors.NewInternalError("failed to add item to cart")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	model := &models.LoanDetailTempModel{
		UserID:   userID,
		BookID:   bookID,
		Quantity: quantity,
	}
	err := r.db.WithContext(ctx).Create(model).Error
	if err == nil {
		return nil
	}
	if !apperrors.IsDuplicateError(err) {
		r.logger.Errorw("failed to create cart line", "user_id", userID, "book_id", bookID, "error", err)
		return apperrors.NewInternalError("failed to add item to cart")
	}

	// Lost the insert race: another request created the line between the
	// UPDATE and the Create. The increment must hit a row now.
	result = r.db.WithContext(ctx).Model(&models.LoanDetailTempModel{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity))
	if result.Error != nil {
		r.logger.Errorw("failed to increment cart line after insert race", "user_id", userID, "book_id", bookID, "error", result.Error)
		return apperrors.NewInternalError("failed to add item to cart")
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConcurrencyError("cart line changed concurrently, retry the operation")
	}
	return nil
}

// UpdateCartQuantity applies a signed delta to one cart line. The guard in
// the WHERE clause keeps the quantity strictly positive: a delta that would
// land at zero or below matches no row and leaves the line untouched.
func (r *LoanRepository) UpdateCartQuantity(ctx context.Context, cartItemID uint, delta int) error {
	result := r.db.WithContext(ctx).Model(&models.LoanDetailTempModel{}).
		Where("id = ? AND quantity + ? > 0", cartItemID, delta).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		r.logger.Errorw("failed to update cart quantity", "cart_item_id", cartItemID, "error", result.Error)
		return apperrors.NewInternalError("failed to update cart quantity")
	}
	if result.RowsAffected == 0 {
		r.logger.Debugw("cart quantity update skipped", "cart_item_id", cartItemID, "delta", delta)
	}
	return nil
}

// RemoveCartItem physically deletes a cart line; staged lines carry no
// history worth keeping. Missing lines are a no-op.
func (r *LoanRepository) RemoveCartItem(ctx context.Context, cartItemID uint) error {
	err := r.db.WithContext(ctx).
		Delete(&models.LoanDetailTempModel{}, cartItemID).Error
	if err != nil {
		r.logger.Errorw("failed to remove cart item", "cart_item_id", cartItemID, "error", err)
		return apperrors.NewInternalError("failed to remove cart item")
	}
	return nil
}

// GetCart returns the user's live staged lines with their books joined,
// ordered by book title descending. An unknown user is a not-found error,
// distinct from a known user with an empty cart.
func (r *LoanRepository) GetCart(ctx context.Context, username string) ([]*loan.CartItem, error) {
	u, err := r.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	var lineModels []*models.LoanDetailTempModel
	err = r.db.WithContext(ctx).
		Joins("JOIN books ON books.id = loan_details_temp.book_id").
		Scopes(sharedb.NotDeletedWithAlias("loan_details_temp")).
		Where("loan_details_temp.user_id = ?", u.ID()).
		Order("books.title DESC").
		Preload("Book").
		Find(&lineModels).Error
	if err != nil {
		r.logger.Errorw("failed to get cart", "username", username, "error", err)
		return nil, apperrors.NewInternalError("failed to get cart")
	}

	items := make([]*loan.CartItem, 0, len(lineModels))
	for _, model := range lineModels {
		item, err := r.mapper.CartItemToDomain(model)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ConfirmLoan drains the user's cart into one new loan. The whole exchange
// runs in a single transaction with the cart rows locked, so either the
// loan exists and the cart is empty, or neither happened. Returns false
// without error when the user is unknown or the cart is empty.
func (r *LoanRepository) ConfirmLoan(ctx context.Context, username string) (bool, error) {
	u, err := r.users.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if u == nil {
		r.logger.Debugw("loan confirmation skipped, unknown user", "username", username)
		return false, nil
	}

	confirmed := false
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Scopes(sharedb.NotDeleted()).Where("user_id = ?", u.ID())
		// SQLite serializes writers at the database level and rejects the
		// FOR UPDATE syntax, so row locks only apply on MySQL.
		if tx.Dialector.Name() == "mysql" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var lineModels []*models.LoanDetailTempModel
		if err := query.Find(&lineModels).Error; err != nil {
			return apperrors.NewInternalError("failed to read cart")
		}
		if len(lineModels) == 0 {
			return nil
		}

		details := make([]*loan.LoanDetail, 0, len(lineModels))
		lineIDs := make([]uint, 0, len(lineModels))
		for _, line := range lineModels {
			detail, err := loan.NewLoanDetail(u.ID(), line.BookID, line.Quantity)
			if err != nil {
				return apperrors.NewValidationError(err.Error())
			}
			details = append(details, detail)
			lineIDs = append(lineIDs, line.ID)
		}

		entity, err := loan.NewLoan(u.ID(), details, r.clock.Now(), r.gracePeriodDays)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}

		model := r.mapper.ToModel(entity)
		if err := tx.Create(model).Error; err != nil {
			return apperrors.NewInternalError("failed to create loan")
		}

		if err := tx.Delete(&models.LoanDetailTempModel{}, lineIDs).Error; err != nil {
			return apperrors.NewInternalError("failed to clear cart")
		}

		confirmed = true
		return nil
	})
	if err != nil {
		r.logger.Errorw("loan confirmation failed", "username", username, "error", err)
		return false, err
	}
	if confirmed {
		r.logger.Infow("loan confirmed", "username", username)
	}
	return confirmed, nil
}

// ListLoans returns the loans visible to the user, with items and their
// books joined: employees see every loan with its owner, everyone else
// sees only their own non-deleted loans. Newest first.
func (r *LoanRepository) ListLoans(ctx context.Context, username string) ([]*loan.Loan, error) {
	u, err := r.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	isEmployee, err := r.users.HasRole(ctx, u, user.RoleEmployee)
	if err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Model(&models.LoanModel{}).
		Preload("Items.Book").
		Order("loan_date DESC")
	if isEmployee {
		query = query.Preload("User")
	} else {
		query = query.Scopes(sharedb.NotDeleted()).Where("user_id = ?", u.ID())
	}

	var loanModels []*models.LoanModel
	if err := query.Find(&loanModels).Error; err != nil {
		r.logger.Errorw("failed to list loans", "username", username, "error", err)
		return nil, apperrors.NewInternalError("failed to list loans")
	}

	return r.mapper.ToDomainList(loanModels)
}

// GetByID looks a loan up by primary key with items, books and owner
// joined. Soft-deleted loans resolve too; detail lookups serve history.
func (r *LoanRepository) GetByID(ctx context.Context, id uint) (*loan.Loan, error) {
	var model models.LoanModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Book").
		Preload("User").
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get loan", "id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to get loan")
	}
	return r.mapper.ToDomain(&model)
}

// RecordDelivery stamps the delivery date on a loan, overwriting any
// previous value. Missing or soft-deleted loans are a no-op.
func (r *LoanRepository) RecordDelivery(ctx context.Context, loanID uint, deliveryDate time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.LoanModel{}).
		Where("id = ? AND was_deleted = ?", loanID, false).
		Update("delivery_date", deliveryDate.UTC())
	if result.Error != nil {
		r.logger.Errorw("failed to record delivery", "loan_id", loanID, "error", result.Error)
		return apperrors.NewInternalError("failed to record delivery")
	}
	if result.RowsAffected == 0 {
		r.logger.Debugw("delivery recording skipped, loan not found", "loan_id", loanID)
	}
	return nil
}
