package scheduler

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	notifService "contaspagar_backend/internals/features/notifications/service"
)

// dueBillRow é o resultado do join contas + perfil + fornecedor.
type dueBillRow struct {
	UserID       uuid.UUID `gorm:"column:user_id"`
	UserEmail    string    `gorm:"column:user_email"`
	FirstName    string    `gorm:"column:first_name"`
	Description  string    `gorm:"column:description"`
	Amount       float64   `gorm:"column:amount"`
	DueDate      time.Time `gorm:"column:due_date"`
	SupplierName string    `gorm:"column:supplier_name"`
}

// StartDailyDueBillScheduler varre uma vez por dia as contas pendentes
// que vencem hoje e monta um aviso por usuário. O envio de email está
// desligado; o aviso sai no log.
func StartDailyDueBillScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		runDailyScan(db)
		for range ticker.C {
			runDailyScan(db)
		}
	}()
}

func runDailyScan(db *gorm.DB) {
	today := time.Now()

	var rows []dueBillRow
	err := db.Table("bills").
		Select(`bills.user_id, users.user_email, COALESCE(profiles.first_name, '') AS first_name,
			bills.description, bills.amount, bills.due_date,
			COALESCE(suppliers.supplier_name, '') AS supplier_name`).
		Joins("JOIN users ON users.user_id = bills.user_id").
		Joins("LEFT JOIN profiles ON profiles.user_id = bills.user_id").
		Joins("LEFT JOIN suppliers ON suppliers.supplier_id = bills.supplier_id").
		Where("bills.status = ? AND bills.due_date = CURRENT_DATE", "pending").
		Order("bills.user_id, bills.due_date").
		Scan(&rows).Error
	if err != nil {
		log.Println("[ERROR] Varredura diária de vencimentos falhou:", err)
		return
	}
	if len(rows) == 0 {
		log.Println("[INFO] 📭 Varredura diária: nenhuma conta vencendo hoje")
		return
	}

	// Agrupa por usuário preservando a ordem da query
	type userGroup struct {
		email     string
		firstName string
		bills     []notifService.DueBill
	}
	order := make([]uuid.UUID, 0)
	groups := make(map[uuid.UUID]*userGroup)
	for _, row := range rows {
		g, ok := groups[row.UserID]
		if !ok {
			g = &userGroup{email: row.UserEmail, firstName: row.FirstName}
			groups[row.UserID] = g
			order = append(order, row.UserID)
		}
		g.bills = append(g.bills, notifService.DueBill{
			Description:  row.Description,
			Amount:       row.Amount,
			DueDate:      row.DueDate,
			SupplierName: row.SupplierName,
		})
	}

	for _, userID := range order {
		g := groups[userID]
		body := notifService.BuildDailySummary(g.firstName, g.bills, today)
		// TODO: ligar o envio real quando o provedor de email for contratado
		log.Printf("[INFO] 📧 Aviso de vencimento para %s (%d conta(s)):\n%s", g.email, len(g.bills), body)
	}
	log.Printf("[INFO] ✅ Varredura diária concluída: %d usuário(s) notificados", len(order))
}
