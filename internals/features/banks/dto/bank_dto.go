package dto

type CreateBankRequest struct {
	Name string `json:"name" validate:"required,min=2,max=150"`
}

type UpdateBankRequest struct {
	Name string `json:"name" validate:"required,min=2,max=150"`
}
