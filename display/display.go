// Package display derives presentation values for the board and dashboard.
// Nothing here is stored; every value is recomputed on read.
package display

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/yeremiapane/lachapa-pdv/models"
)

var statusLabels = map[string]string{
	string(models.StatusEmAnalise):  "Em análise",
	string(models.StatusEmProducao): "Em produção",
	string(models.StatusEmEntrega):  "Foi pra entrega",
	"concluido":                     "Concluído",
	"cancelado":                     "Cancelado",
}

var statusClasses = map[string]string{
	string(models.StatusEmAnalise):  "status-analise",
	string(models.StatusEmProducao): "status-producao",
	string(models.StatusEmEntrega):  "status-entrega",
	"concluido":                     "status-completed",
	"cancelado":                     "status-canceled",
}

var paymentLabels = map[string]string{
	string(models.PaymentCash):   "Dinheiro",
	string(models.PaymentCredit): "Crédito",
	string(models.PaymentDebit):  "Débito",
	string(models.PaymentPix):    "PIX",
	string(models.PaymentCard):   "Cartão",
}

// StatusLabel returns the display name, or the raw value when unknown.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// StatusClass returns the css class of a status badge, "" when unknown.
func StatusClass(status string) string {
	return statusClasses[status]
}

// PaymentLabel returns the display name, or the raw value when unknown.
func PaymentLabel(method string) string {
	if label, ok := paymentLabels[method]; ok {
		return label
	}
	return method
}

// PaymentClass returns the css class of a payment badge, "" when unknown.
func PaymentClass(method string) string {
	if _, ok := paymentLabels[method]; !ok {
		return ""
	}
	return "payment-" + method
}

// WaitTimeMinutes counts whole minutes since an "HH:MM" stamp taken on now's
// calendar day. A stamp later than now gives a negative value; day rollover is
// not corrected. Unparseable stamps give 0.
func WaitTimeMinutes(submittedAt string, now time.Time) int {
	hh, mm, ok := parseClock(submittedAt)
	if !ok {
		return 0
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), hh, mm, 0, 0, now.Location())
	return int(math.Floor(now.Sub(at).Minutes()))
}

func parseClock(s string) (int, int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return 0, 0, false
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, 0, false
	}
	return hh, mm, true
}
