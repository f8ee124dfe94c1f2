package dto

// CNPJ chega formatado ou não; é validado e guardado junto ao endereço
// no formato "CNPJ: 00.000.000/0000-00".
type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Address string `json:"address" validate:"omitempty,max=500"`
	CNPJ    string `json:"cnpj" validate:"omitempty,max=18"`
	TypeID  string `json:"type_id" validate:"omitempty,uuid"`
}

type UpdateSupplierRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Address string `json:"address" validate:"omitempty,max=500"`
	CNPJ    string `json:"cnpj" validate:"omitempty,max=18"`
	TypeID  string `json:"type_id" validate:"omitempty,uuid"`
}

type CreateSupplierTypeRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type UpdateSupplierTypeRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}
