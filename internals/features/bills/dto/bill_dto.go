package dto

import (
	"errors"

	billModel "contaspagar_backend/internals/features/bills/model"
)

// Datas chegam como "2006-01-02".
type CreateBillRequest struct {
	Description string  `json:"description" validate:"required,min=2,max=300"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	DueDate     string  `json:"due_date" validate:"required,datetime=2006-01-02"`
	EntryDate   string  `json:"entry_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentType string  `json:"payment_type" validate:"required,oneof=conta cheque boleto"`

	SupplierID string `json:"supplier_id" validate:"omitempty,uuid"`
	BankID     string `json:"bank_id" validate:"omitempty,uuid"`

	CheckNumber   string `json:"check_number" validate:"omitempty,max=50"`
	AccountHolder string `json:"account_holder" validate:"omitempty,max=200"`
	AccountNumber string `json:"account_number" validate:"omitempty,max=50"`
	AccountName   string `json:"account_name" validate:"omitempty,max=200"`

	// count >= 2 em cheque/boleto gera um lote de parcelas
	InstallmentCount int `json:"installment_count" validate:"omitempty,min=1,max=120"`

	AttachmentURL string `json:"attachment_url" validate:"omitempty,max=500"`
}

// ValidatePaymentFields aplica as exigências específicas da forma de
// pagamento (união discriminada por payment_type).
func (r *CreateBillRequest) ValidatePaymentFields() error {
	switch r.PaymentType {
	case billModel.PaymentCheque:
		if r.BankID == "" {
			return errors.New("Banco é obrigatório para pagamento em cheque")
		}
		if r.CheckNumber == "" {
			return errors.New("Número do cheque é obrigatório")
		}
		if r.AccountHolder == "" {
			return errors.New("Titular da conta é obrigatório para cheque")
		}
	case billModel.PaymentConta:
		if r.InstallmentCount > 1 {
			return errors.New("Parcelamento só está disponível para cheque e boleto")
		}
	}
	return nil
}

type UpdateBillRequest struct {
	Description string  `json:"description" validate:"required,min=2,max=300"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	DueDate     string  `json:"due_date" validate:"required,datetime=2006-01-02"`
	EntryDate   string  `json:"entry_date" validate:"omitempty,datetime=2006-01-02"`

	SupplierID string `json:"supplier_id" validate:"omitempty,uuid"`
	BankID     string `json:"bank_id" validate:"omitempty,uuid"`

	CheckNumber   string `json:"check_number" validate:"omitempty,max=50"`
	AccountHolder string `json:"account_holder" validate:"omitempty,max=200"`
	AccountNumber string `json:"account_number" validate:"omitempty,max=50"`
	AccountName   string `json:"account_name" validate:"omitempty,max=200"`

	AttachmentURL   string `json:"attachment_url" validate:"omitempty,max=500"`
	PaymentProofURL string `json:"payment_proof_url" validate:"omitempty,max=500"`
}

type UpdateBillStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid overdue"`
}
