package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"athenaeum/internal/domain/book"
	"athenaeum/internal/domain/loan"
	"athenaeum/internal/domain/user"
	"athenaeum/internal/infrastructure/persistence/mappers"
	"athenaeum/internal/infrastructure/persistence/models"
	"athenaeum/internal/shared/clock"
	apperrors "athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.BookModel{},
		&models.LoanModel{},
		&models.LoanDetailModel{},
		&models.LoanDetailTempModel{},
	)
	require.NoError(t, err)

	return db
}

func newTestRepos(t *testing.T, db *gorm.DB) (*LoanRepository, *UserRepository, *BookRepository) {
	log := logger.NewLogger()
	users := NewUserRepository(db, mappers.NewUserMapper(), log)
	books := NewBookRepository(db, mappers.NewBookMapper(), log)
	loans := NewLoanRepository(db, mappers.NewLoanMapper(), users, clock.Fixed(testNow), loan.DefaultGracePeriodDays, log)
	return loans, users, books
}

func seedUser(t *testing.T, users *UserRepository, username string, role user.Role) *user.User {
	u, err := user.NewUser(username, username+"@example.com", "Test", "User", "", role)
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func seedBook(t *testing.T, books *BookRepository, title string, catalogedByID uint) *book.Book {
	b, err := book.NewBook(title, "Some Author", "Some Press", nil, 3, 0, "", true, catalogedByID)
	require.NoError(t, err)
	require.NoError(t, books.Create(context.Background(), b))
	return b
}

func cartRowCount(t *testing.T, db *gorm.DB) int64 {
	var count int64
	require.NoError(t, db.Model(&models.LoanDetailTempModel{}).Count(&count).Error)
	return count
}

func TestLoanRepository_AddItemToCart(t *testing.T) {
	db := setupTestDB(t)
	loans, users, books := newTestRepos(t, db)
	ctx := context.Background()

	librarian := seedUser(t, users, "librarian", user.RoleEmployee)
	reader := seedUser(t, users, "alice", user.RoleReader)
	b := seedBook(t, books, "The Go Programming Language", librarian.ID())

	t.Run("creates a new line on first add", func(t *testing.T) {
		err := loans.AddItemToCart(ctx, "alice", b.ID(), 2)
		require.NoError(t, err)

		items, err := loans.GetCart(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, b.ID(), items[0].BookID())
		assert.Equal(t, reader.ID(), items[0].UserID())
		assert.Equal(t, 2, items[0].Quantity())
	})

	t.Run("increments the existing line instead of duplicating", func(t *testing.T) {
		err := loans.AddItemToCart(ctx, "alice", b.ID(), 3)
		require.NoError(t, err)

		items, err := loans.GetCart(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity())
		assert.Equal(t, int64(1), cartRowCount(t, db))
	})

	t.Run("unknown user is a silent no-op", func(t *testing.T) {
		before := cartRowCount(t, db)
		err := loans.AddItemToCart(ctx, "nobody", b.ID(), 1)
		require.NoError(t, err)
		assert.Equal(t, before, cartRowCount(t, db))
	})

	t.Run("unknown book is a silent no-op", func(t *testing.T) {
		before := cartRowCount(t, db)
		err := loans.AddItemToCart(ctx, "alice", 9999, 1)
		require.NoError(t, err)
		assert.Equal(t, before, cartRowCount(t, db))
	})
}

func TestLoanRepository_UpdateCartQuantity(t *testing.T) {
	db := setupTestDB(t)
	loans, users, books := newTestRepos(t, db)
	ctx := context.Background()

	librarian := seedUser(t, users, "librarian", user.RoleEmployee)
	seedUser(t, users, "alice", user.RoleReader)
	b := seedBook(t, books, "Clean Architecture", librarian.ID())

	require.NoError(t, loans.AddItemToCart(ctx, "alice", b.ID(), 3))
	items, err := loans.GetCart(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	lineID := items[0].ID()

	t.Run("positive delta increments", func(t *testing.T) {
		require.NoError(t, loans.UpdateCartQuantity(ctx, lineID, 2))
		items, err := loans.GetCart(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 5, items[0].Quantity())
	})

	t.Run("negative delta decrements while result stays positive", func(t *testing.T) {
		require.NoError(t, loans.UpdateCartQuantity(ctx, lineID, -4))
		items, err := loans.GetCart(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 1, items[0].Quantity())
	})

	t.Run("delta reaching zero leaves the line unchanged", func(t *testing.T) {
		require.NoError(t, loans.UpdateCartQuantity(ctx, lineID, -1))
		items, err := loans.GetCart(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity())
	})

	t.Run("missing line is a no-op", func(t *testing.T) {
		assert.NoError(t, loans.UpdateCartQuantity(ctx, 9999, 1))
	})
}

func TestLoanRepository_RemoveCartItem(t *testing.T) {
	db := setupTestDB(t)
	loans, users, books := newTestRepos(t, db)
	ctx := context.Background()

	librarian := seedUser(t, users, "librarian", user.RoleEmployee)
	seedUser(t, users, "alice", user.RoleReader)
	b := seedBook(t, books, "Domain-Driven Design", librarian.ID())

	require.NoError(t, loans.AddItemToCart(ctx, "alice", b.ID(), 1))
	items, err := loans.GetCart(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, loans.RemoveCartItem(ctx, items[0].ID()))
	items, err = loans.GetCart(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.NoError(t, loans.RemoveCartItem(ctx, 9999))
}

func TestLoanRepository_GetCart(t *testing.T) {
	db := setupTestDB(t)
	loans, users, books := newTestRepos(t, db)
	ctx := context.Background()

	librarian := seedUser(t, users, "librarian", user.RoleEmployee)
	seedUser(t, users, "alice", user.RoleReader)

	t.Run("unknown user is not found", func(t *testing.T) {
		_, err := loans.GetCart(ctx, "nobody")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("known user with empty cart yields empty list", func(t *testing.T) {
		items, err := loans.GetCart(ctx, "alice")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("lines come back ordered by book title descending with books joined", func(t *testing.T) {
		alpha := seedBook(t, books, "Alpha", librarian.ID())
		zulu := seedBook(t, books, "Zulu", librarian.ID())
		mango := seedBook(t, books, "Mango", librarian.ID())

		require.NoError(t, loans.AddItemToCart(ctx, "alice", alpha.ID(), 1))
		require.NoError(t, loans.AddItemToCart(ctx, "alice", zulu.ID(), 1))
		require.NoError(t, loans.AddItemToCart(ctx, "alice", mango.ID(), 1))

		items, err := loans.GetCart(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, items, 3)

		titles := make([]string, 0, len(items))
		for _, item := range items {
			require.NotNil(t, item.Book())
			titles = append(titles, item.Book().Title())
		}
		assert.Equal(t, []string{"Zulu", "Mango", "Alpha"}, titles)
	})

	t.Run("soft-deleted lines stay hidden", func(t *testing.T) {
		seedUser(t, users, "carol", user.RoleReader)
		kept := seedBook(t, books, "Kept", librarian.ID())
		dropped := seedBook(t, books, "Dropped", librarian.ID())

		require.NoError(t, loans.AddItemToCart(ctx, "carol", kept.ID(), 1))
		require.NoError(t, loans.AddItemToCart(ctx, "carol", dropped.ID(), 1))
		require.NoError(t, db.Model(&models.LoanDetailTempModel{}).
			Where("book_id = ?", dropped.ID()).
			Update("was_deleted", true).Error)

		items, err := loans.GetCart(ctx, "carol")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Kept", items[0].Book().Title())
	})
}

func TestLoanRepository_ConfirmLoan(t *testing.T) {
	db := setupTestDB(t)
	loans, users, books := newTestRepos(t, db)
	ctx := context.Background()

	librarian := seedUser(t, users, "librarian", user.RoleEmployee)
	reader := seedUser(t, users, "alice", user.RoleReader)
	first := seedBook(t, books, "First Book", librarian.ID())
	second := seedBook(t, books, "Second Book", librarian.ID())

	t.Run("unknown user confirms nothing", func(t *testing.T) {
		confirmed, err := loans.ConfirmLoan(ctx, "nobody")
		require.NoError(t, err)
		assert.False(t, confirmed)
	})

	t.Run("empty cart confirms nothing", func(t *testing.T) {
		confirmed, err := loans.ConfirmLoan(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, confirmed)
	})

	t.Run("staged lines become one loan and the cart drains", func(t *testing.T) {
		require.NoError(t, loans.AddItemToCart(ctx, "alice", first.ID(), 2))
		require.NoError(t, loans.AddItemToCart(ctx, "alice", second.ID(), 1))

		confirmed, err := loans.ConfirmLoan(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, confirmed)

		items, err := loans.GetCart(ctx, "alice")
		require.NoError(t, err)
		assert.Empty(t, items)

		all, err := loans.ListLoans(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, all, 1)

		created := all[0]
		assert.Equal(t, reader.ID(), created.UserID())
		assert.True(t, created.LoanDate().Equal(testNow))
		assert.True(t, created.DueDate().Equal(testNow.AddDate(0, 0, loan.DefaultGracePeriodDays)))
		assert.Nil(t, created.DeliveryDate())
		assert.Equal(t, 3, created.Quantity())

		for _, item := range created.Items() {
			assert.Equal(t, reader.ID(), item.UserID())
		}
	})

	t.Run("second confirmation finds nothing to convert", func(t *testing.T) {
		confirmed, err := loans.ConfirmLoan(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, confirmed)

		all, err := loans.ListLoans(ctx, "alice")
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("soft-deleted lines do not confirm", func(t *testing.T) {
		require.NoError(t, loans.AddItemToCart(ctx, "alice", first.ID(), 1))
		require.NoError(t, db.Model(&models.LoanDetailTempModel{}).
			Where("user_id = ? AND book_id = ?", reader.ID(), first.ID()).
			Update("was_deleted", true).Error)

		confirmed, err := loans.ConfirmLoan(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, confirmed)

		all, err := loans.ListLoans(ctx, "alice")
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestLoanRepository_ListLoans(t *testing.T) {
	db := setupTestDB(t)
	loans, users, books := newTestRepos(t, db)
	ctx := context.Background()

	librarian := seedUser(t, users, "librarian", user.RoleEmployee)
	alice := seedUser(t, users, "alice", user.RoleReader)
	seedUser(t, users, "bob", user.RoleReader)
	b := seedBook(t, books, "Shared Book", librarian.ID())

	require.NoError(t, loans.AddItemToCart(ctx, "alice", b.ID(), 1))
	confirmed, err := loans.ConfirmLoan(ctx, "alice")
	require.NoError(t, err)
	require.True(t, confirmed)

	require.NoError(t, loans.AddItemToCart(ctx, "bob", b.ID(), 1))
	confirmed, err = loans.ConfirmLoan(ctx, "bob")
	require.NoError(t, err)
	require.True(t, confirmed)

	// Soft-delete bob's loan directly; only employees should still see it.
	bobLoans, err := loans.ListLoans(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobLoans, 1)
	require.NoError(t, db.Model(&models.LoanModel{}).
		Where("id = ?", bobLoans[0].ID()).
		Update("was_deleted", true).Error)

	t.Run("readers see only their own live loans", func(t *testing.T) {
		visible, err := loans.ListLoans(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, visible, 1)
		assert.Equal(t, alice.ID(), visible[0].UserID())

		visible, err = loans.ListLoans(ctx, "bob")
		require.NoError(t, err)
		assert.Empty(t, visible)
	})

	t.Run("listed items carry their book", func(t *testing.T) {
		visible, err := loans.ListLoans(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, visible, 1)
		require.Len(t, visible[0].Items(), 1)

		item := visible[0].Items()[0]
		require.NotNil(t, item.Book())
		assert.Equal(t, "Shared Book", item.Book().Title())
	})

	t.Run("employees see every loan with owners joined", func(t *testing.T) {
		visible, err := loans.ListLoans(ctx, "librarian")
		require.NoError(t, err)
		require.Len(t, visible, 2)
		for _, l := range visible {
			require.NotNil(t, l.User())
			assert.NotEmpty(t, l.User().Username())
		}
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		_, err := loans.ListLoans(ctx, "nobody")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestLoanRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	loans, users, books := newTestRepos(t, db)
	ctx := context.Background()

	librarian := seedUser(t, users, "librarian", user.RoleEmployee)
	seedUser(t, users, "alice", user.RoleReader)
	b := seedBook(t, books, "Looked Up Book", librarian.ID())

	require.NoError(t, loans.AddItemToCart(ctx, "alice", b.ID(), 2))
	confirmed, err := loans.ConfirmLoan(ctx, "alice")
	require.NoError(t, err)
	require.True(t, confirmed)

	listed, err := loans.ListLoans(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	loanID := listed[0].ID()

	t.Run("resolves with items, books and owner joined", func(t *testing.T) {
		found, err := loans.GetByID(ctx, loanID)
		require.NoError(t, err)
		require.NotNil(t, found)
		require.NotNil(t, found.User())
		assert.Equal(t, "alice", found.User().Username())
		require.Len(t, found.Items(), 1)
		require.NotNil(t, found.Items()[0].Book())
		assert.Equal(t, "Looked Up Book", found.Items()[0].Book().Title())
	})

	t.Run("soft-deleted loans still resolve", func(t *testing.T) {
		require.NoError(t, db.Model(&models.LoanModel{}).
			Where("id = ?", loanID).
			Update("was_deleted", true).Error)

		found, err := loans.GetByID(ctx, loanID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, found.WasDeleted())
	})

	t.Run("missing loan yields nil", func(t *testing.T) {
		found, err := loans.GetByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestLoanRepository_RecordDelivery(t *testing.T) {
	db := setupTestDB(t)
	loans, users, books := newTestRepos(t, db)
	ctx := context.Background()

	librarian := seedUser(t, users, "librarian", user.RoleEmployee)
	seedUser(t, users, "alice", user.RoleReader)
	b := seedBook(t, books, "Returned Book", librarian.ID())

	require.NoError(t, loans.AddItemToCart(ctx, "alice", b.ID(), 1))
	confirmed, err := loans.ConfirmLoan(ctx, "alice")
	require.NoError(t, err)
	require.True(t, confirmed)

	listed, err := loans.ListLoans(ctx, "alice")
	require.NoError(t, err)
	loanID := listed[0].ID()

	t.Run("sets the delivery date", func(t *testing.T) {
		delivered := testNow.AddDate(0, 0, 7)
		require.NoError(t, loans.RecordDelivery(ctx, loanID, delivered))

		found, err := loans.GetByID(ctx, loanID)
		require.NoError(t, err)
		require.NotNil(t, found.DeliveryDate())
		assert.True(t, found.DeliveryDate().Equal(delivered))
	})

	t.Run("recording again overwrites the previous date", func(t *testing.T) {
		later := testNow.AddDate(0, 0, 9)
		require.NoError(t, loans.RecordDelivery(ctx, loanID, later))

		found, err := loans.GetByID(ctx, loanID)
		require.NoError(t, err)
		require.NotNil(t, found.DeliveryDate())
		assert.True(t, found.DeliveryDate().Equal(later))
	})

	t.Run("missing loan is a no-op", func(t *testing.T) {
		assert.NoError(t, loans.RecordDelivery(ctx, 9999, testNow))
	})

	t.Run("soft-deleted loan is a no-op", func(t *testing.T) {
		require.NoError(t, db.Model(&models.LoanModel{}).
			Where("id = ?", loanID).
			Update("was_deleted", true).Error)

		earlier := testNow.AddDate(0, 0, 1)
		require.NoError(t, loans.RecordDelivery(ctx, loanID, earlier))

		found, err := loans.GetByID(ctx, loanID)
		require.NoError(t, err)
		require.NotNil(t, found.DeliveryDate())
		assert.True(t, found.DeliveryDate().Equal(testNow.AddDate(0, 0, 9)))
	})
}
