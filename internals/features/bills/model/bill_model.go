package model

import (
	"time"

	"github.com/google/uuid"

	bankModel "contaspagar_backend/internals/features/banks/model"
	supplierModel "contaspagar_backend/internals/features/suppliers/model"
)

// Status de uma conta. "paid" é terminal.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

// Formas de pagamento aceitas.
const (
	PaymentConta  = "conta"
	PaymentCheque = "cheque"
	PaymentBoleto = "boleto"
)

// BillModel é uma conta a pagar. Linhas geradas em lote apontam para o
// batch via InstallmentBatchID e carregam InstallmentNumber (base 1).
// Exclusão é definitiva (hard delete), sem soft delete.
type BillModel struct {
	BillID      uuid.UUID `gorm:"column:bill_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bill_id"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;index;not null" json:"user_id"`
	Description string    `gorm:"column:description;type:varchar(300);not null" json:"description"`
	Amount      float64   `gorm:"column:amount;type:numeric(14,2);not null" json:"amount"`
	DueDate     time.Time `gorm:"column:due_date;type:date;index;not null" json:"due_date"`
	EntryDate   time.Time `gorm:"column:entry_date;type:date;not null" json:"entry_date"`
	Status      string    `gorm:"column:status;type:varchar(10);default:pending;index;not null" json:"status"`
	PaymentType string    `gorm:"column:payment_type;type:varchar(10);not null" json:"payment_type"`

	SupplierID *uuid.UUID `gorm:"column:supplier_id;type:uuid;index" json:"supplier_id,omitempty"`
	BankID     *uuid.UUID `gorm:"column:bank_id;type:uuid" json:"bank_id,omitempty"`

	// Campos de cheque
	CheckNumber   *string `gorm:"column:check_number;type:varchar(50)" json:"check_number,omitempty"`
	AccountHolder *string `gorm:"column:account_holder;type:varchar(200)" json:"account_holder,omitempty"`
	AccountNumber *string `gorm:"column:account_number;type:varchar(50)" json:"account_number,omitempty"`
	AccountName   *string `gorm:"column:account_name;type:varchar(200)" json:"account_name,omitempty"`

	InstallmentBatchID *uuid.UUID `gorm:"column:installment_batch_id;type:uuid;index" json:"installment_batch_id,omitempty"`
	InstallmentNumber  *int       `gorm:"column:installment_number" json:"installment_number,omitempty"`

	AttachmentURL   *string `gorm:"column:attachment_url;type:text" json:"attachment_url,omitempty"`
	PaymentProofURL *string `gorm:"column:payment_proof_url;type:text" json:"payment_proof_url,omitempty"`

	Supplier *supplierModel.SupplierModel `gorm:"foreignKey:SupplierID;references:SupplierID" json:"supplier,omitempty"`
	Bank     *bankModel.BankModel         `gorm:"foreignKey:BankID;references:BankID" json:"bank,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BillModel) TableName() string {
	return "bills"
}

// InstallmentBatchModel agrega as parcelas geradas de uma vez só.
type InstallmentBatchModel struct {
	InstallmentBatchID uuid.UUID `gorm:"column:installment_batch_id;type:uuid;default:gen_random_uuid();primaryKey" json:"installment_batch_id"`
	UserID             uuid.UUID `gorm:"column:user_id;type:uuid;index;not null" json:"user_id"`
	Description        string    `gorm:"column:description;type:varchar(300);not null" json:"description"`
	TotalAmount        float64   `gorm:"column:total_amount;type:numeric(14,2);not null" json:"total_amount"`
	InstallmentCount   int       `gorm:"column:installment_count;not null" json:"installment_count"`
	PaymentType        string    `gorm:"column:payment_type;type:varchar(10);not null" json:"payment_type"`
	FirstDueDate       time.Time `gorm:"column:first_due_date;type:date;not null" json:"first_due_date"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Bills []BillModel `gorm:"foreignKey:InstallmentBatchID;references:InstallmentBatchID" json:"bills,omitempty"`
}

func (InstallmentBatchModel) TableName() string {
	return "installment_batches"
}

// BillInstallmentAttachmentModel liga um arquivo no storage a uma
// parcela (número base 1). PreviewPath aponta para a miniatura WebP
// quando o anexo é imagem.
type BillInstallmentAttachmentModel struct {
	AttachmentID      uuid.UUID `gorm:"column:attachment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attachment_id"`
	BillID            uuid.UUID `gorm:"column:bill_id;type:uuid;index;not null" json:"bill_id"`
	UserID            uuid.UUID `gorm:"column:user_id;type:uuid;index;not null" json:"user_id"`
	InstallmentNumber int       `gorm:"column:installment_number;not null" json:"installment_number"`
	FileName          string    `gorm:"column:file_name;type:varchar(255);not null" json:"file_name"`
	FilePath          string    `gorm:"column:file_path;type:text;not null" json:"file_path"`
	ContentType       string    `gorm:"column:content_type;type:varchar(100);not null" json:"content_type"`
	PreviewPath       *string   `gorm:"column:preview_path;type:text" json:"preview_path,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (BillInstallmentAttachmentModel) TableName() string {
	return "bill_installment_attachments"
}
