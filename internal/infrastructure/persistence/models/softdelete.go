package models

// SoftDeletable is the capability contract every persisted record
// implements: a numeric identity plus a boolean deletion flag. Soft
// deletion is the only deletion mechanism for durable records; physical
// removal is reserved for cart lines.
type SoftDeletable interface {
	GetID() uint
	IsDeleted() bool
	SetDeleted(deleted bool)
}

func (m *UserModel) GetID() uint             { return m.ID }
func (m *UserModel) IsDeleted() bool         { return m.WasDeleted }
func (m *UserModel) SetDeleted(deleted bool) { m.WasDeleted = deleted }

func (m *BookModel) GetID() uint             { return m.ID }
func (m *BookModel) IsDeleted() bool         { return m.WasDeleted }
func (m *BookModel) SetDeleted(deleted bool) { m.WasDeleted = deleted }

func (m *LoanModel) GetID() uint             { return m.ID }
func (m *LoanModel) IsDeleted() bool         { return m.WasDeleted }
func (m *LoanModel) SetDeleted(deleted bool) { m.WasDeleted = deleted }

func (m *LoanDetailModel) GetID() uint             { return m.ID }
func (m *LoanDetailModel) IsDeleted() bool         { return m.WasDeleted }
func (m *LoanDetailModel) SetDeleted(deleted bool) { m.WasDeleted = deleted }

func (m *LoanDetailTempModel) GetID() uint             { return m.ID }
func (m *LoanDetailTempModel) IsDeleted() bool         { return m.WasDeleted }
func (m *LoanDetailTempModel) SetDeleted(deleted bool) { m.WasDeleted = deleted }
