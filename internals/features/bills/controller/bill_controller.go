package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "contaspagar_backend/internals/features/audit/service"
	billDTO "contaspagar_backend/internals/features/bills/dto"
	billModel "contaspagar_backend/internals/features/bills/model"
	billService "contaspagar_backend/internals/features/bills/service"
	"contaspagar_backend/internals/features/users/auth/security"
	helpers "contaspagar_backend/internals/helpers"
	"contaspagar_backend/internals/helpers/errmsg"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

type BillController struct {
	DB      *gorm.DB
	Audit   auditService.Recorder
	Updater *billService.StatusUpdater
}

func NewBillController(db *gorm.DB, audit auditService.Recorder) *BillController {
	return &BillController{
		DB:      db,
		Audit:   audit,
		Updater: billService.NewStatusUpdater(billService.NewGormBillStore(db), audit),
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func uuidOrNil(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &parsed
}

func strOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// withDisplayStatus aplica o status derivado (overdue por vencimento)
// apenas na resposta, sem persistir.
func (bc *BillController) withDisplayStatus(bills []billModel.BillModel) []billModel.BillModel {
	now := time.Now()
	for i := range bills {
		bills[i].Status = billService.DeriveDisplayStatus(bills[i].Status, bills[i].DueDate, now)
	}
	return bills
}

// Create cadastra uma conta única ou, com installment_count >= 2 em
// cheque/boleto, um lote de parcelas geradas de uma vez.
func (bc *BillController) Create(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var input billDTO.CreateBillRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	if err := input.ValidatePaymentFields(); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	dueDate, err := parseDate(input.DueDate)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Data de vencimento inválida")
	}
	entryDate := time.Now().Truncate(24 * time.Hour)
	if input.EntryDate != "" {
		if entryDate, err = parseDate(input.EntryDate); err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Data de lançamento inválida")
		}
	}

	base := billModel.BillModel{
		UserID:        userID,
		Description:   strings.TrimSpace(input.Description),
		Amount:        input.Amount,
		DueDate:       dueDate,
		EntryDate:     entryDate,
		Status:        billModel.StatusPending,
		PaymentType:   input.PaymentType,
		SupplierID:    uuidOrNil(input.SupplierID),
		BankID:        uuidOrNil(input.BankID),
		CheckNumber:   strOrNil(input.CheckNumber),
		AccountHolder: strOrNil(input.AccountHolder),
		AccountNumber: strOrNil(input.AccountNumber),
		AccountName:   strOrNil(input.AccountName),
		AttachmentURL: strOrNil(input.AttachmentURL),
	}

	// Conta única
	if input.InstallmentCount < 2 {
		if err := bc.DB.Create(&base).Error; err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
		}
		bc.Audit.Record(c.Context(), userID, "bills", base.BillID.String(), auditService.ActionCreate, nil, base)
		return helpers.JsonCreated(c, "Conta cadastrada com sucesso", base)
	}

	// Lote de parcelas
	installments, err := billService.GenerateInstallments(input.Amount, input.InstallmentCount, dueDate)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	batch := billModel.InstallmentBatchModel{
		UserID:           userID,
		Description:      base.Description,
		TotalAmount:      input.Amount,
		InstallmentCount: input.InstallmentCount,
		PaymentType:      input.PaymentType,
		FirstDueDate:     dueDate,
	}

	var bills []billModel.BillModel
	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&batch).Error; err != nil {
			return err
		}
		bills = make([]billModel.BillModel, len(installments))
		for i, inst := range installments {
			row := base
			row.Description = fmt.Sprintf("%s (%d/%d)", base.Description, inst.Number, len(installments))
			row.Amount = inst.Amount
			row.DueDate = inst.DueDate
			row.InstallmentBatchID = &batch.InstallmentBatchID
			num := inst.Number
			row.InstallmentNumber = &num
			bills[i] = row
		}
		return tx.Create(&bills).Error
	})
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	bc.Audit.Record(c.Context(), userID, "installment_batches", batch.InstallmentBatchID.String(), auditService.ActionCreate, nil, batch)
	batch.Bills = bills
	return helpers.JsonCreated(c,
		fmt.Sprintf("Conta parcelada em %d vezes cadastrada com sucesso", len(bills)), batch)
}

// GetAll lista as contas do usuário com filtros opcionais de status,
// fornecedor e mês/ano.
func (bc *BillController) GetAll(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helpers.ResolvePaging(c, 50, 200)
	query := bc.DB.Model(&billModel.BillModel{}).Where("user_id = ?", userID)

	if status := c.Query("status"); status != "" {
		if status == billModel.StatusOverdue {
			// overdue inclui pending vencidas ainda não persistidas
			query = query.Where("(status = ? OR (status = ? AND due_date < CURRENT_DATE))",
				billModel.StatusOverdue, billModel.StatusPending)
		} else if status == billModel.StatusPending {
			query = query.Where("status = ? AND due_date >= CURRENT_DATE", billModel.StatusPending)
		} else {
			query = query.Where("status = ?", status)
		}
	}
	if supplierID := c.Query("supplier_id"); supplierID != "" {
		query = query.Where("supplier_id = ?", supplierID)
	}
	if month, year := c.QueryInt("month"), c.QueryInt("year"); month >= 1 && month <= 12 && year > 0 {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("due_date >= ? AND due_date < ?", start, start.AddDate(0, 1, 0))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	var bills []billModel.BillModel
	if err := query.
		Preload("Supplier").
		Preload("Bank").
		Order("due_date ASC, created_at ASC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&bills).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	pagination := helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helpers.JsonList(c, "Contas encontradas", bc.withDisplayStatus(bills), &pagination)
}

// GetByID devolve uma conta com fornecedor e banco carregados.
func (bc *BillController) GetByID(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	billID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de conta inválido")
	}

	var bill billModel.BillModel
	if err := bc.DB.Preload("Supplier").Preload("Bank").
		Where("bill_id = ? AND user_id = ?", billID, userID).
		First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Conta não encontrada")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	bill.Status = billService.DeriveDisplayStatus(bill.Status, bill.DueDate, time.Now())
	return helpers.JsonOK(c, "Conta encontrada", bill)
}

// Update sobrescreve os campos editáveis de uma conta, inclusive valor
// e vencimento de parcela individual. Status não muda por aqui.
func (bc *BillController) Update(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	billID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de conta inválido")
	}

	var input billDTO.UpdateBillRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var bill billModel.BillModel
	if err := bc.DB.Where("bill_id = ? AND user_id = ?", billID, userID).
		First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Conta não encontrada")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	dueDate, err := parseDate(input.DueDate)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Data de vencimento inválida")
	}

	old := bill
	bill.Description = strings.TrimSpace(input.Description)
	bill.Amount = input.Amount
	bill.DueDate = dueDate
	if input.EntryDate != "" {
		if bill.EntryDate, err = parseDate(input.EntryDate); err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Data de lançamento inválida")
		}
	}
	bill.SupplierID = uuidOrNil(input.SupplierID)
	bill.BankID = uuidOrNil(input.BankID)
	bill.CheckNumber = strOrNil(input.CheckNumber)
	bill.AccountHolder = strOrNil(input.AccountHolder)
	bill.AccountNumber = strOrNil(input.AccountNumber)
	bill.AccountName = strOrNil(input.AccountName)
	bill.AttachmentURL = strOrNil(input.AttachmentURL)
	bill.PaymentProofURL = strOrNil(input.PaymentProofURL)

	if err := bc.DB.Save(&bill).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	bc.Audit.Record(c.Context(), userID, "bills", bill.BillID.String(), auditService.ActionUpdate, old, bill)
	return helpers.JsonUpdated(c, "Conta atualizada com sucesso", bill)
}

// Delete remove a conta em definitivo, junto com os registros de anexos.
func (bc *BillController) Delete(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	billID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de conta inválido")
	}

	var bill billModel.BillModel
	if err := bc.DB.Where("bill_id = ? AND user_id = ?", billID, userID).
		First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Conta não encontrada")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", billID).
			Delete(&billModel.BillInstallmentAttachmentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&bill).Error
	})
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	bc.Audit.Record(c.Context(), userID, "bills", bill.BillID.String(), auditService.ActionDelete, bill, nil)
	return helpers.JsonDeleted(c, "Conta excluída com sucesso", nil)
}

// UpdateStatus troca o status da conta (pending/paid/overdue) passando
// pelo validador de transições.
func (bc *BillController) UpdateStatus(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	billID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de conta inválido")
	}

	if !security.Default.AllowAction(userID.String(), "bill_status_update") {
		return helpers.JsonError(c, fiber.StatusTooManyRequests,
			"Muitas operações em sequência. Aguarde um instante.")
	}

	var input billDTO.UpdateBillStatusRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	bill, err := bc.Updater.UpdateStatus(c.Context(), userID, billID, input.Status)
	if err != nil {
		var denied *billService.DeniedError
		switch {
		case errors.Is(err, billService.ErrUpdateInProgress):
			return helpers.JsonError(c, fiber.StatusConflict, err.Error())
		case errors.As(err, &denied):
			return helpers.JsonError(c, fiber.StatusUnprocessableEntity, denied.Reason)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helpers.JsonError(c, fiber.StatusNotFound, "Conta não encontrada")
		default:
			return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
		}
	}

	return helpers.JsonUpdated(c, "Status atualizado com sucesso", bill)
}

// Calendar devolve as contas do mês pedido com status de exibição.
func (bc *BillController) Calendar(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Parâmetro month inválido (1-12)")
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Parâmetro year inválido")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	var bills []billModel.BillModel
	if err := bc.DB.
		Preload("Supplier").
		Where("user_id = ? AND due_date >= ? AND due_date < ?", userID, start, start.AddDate(0, 1, 0)).
		Order("due_date ASC").
		Find(&bills).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	return helpers.JsonOK(c, "Contas do mês encontradas", bc.withDisplayStatus(bills))
}
