package scoring

import (
	"time"

	"github.com/polkiloo/iscore/internal/domain/model"
)

func Payment(rec model.PaymentRecord) *model.PaymentComponent {
	return &model.PaymentComponent{Record: rec, Score: PaymentScore(rec.OnTime, rec.Total)}
}

func Debt(rec model.DebtRecord) *model.DebtComponent {
	return &model.DebtComponent{
		Record:      rec,
		Utilization: DebtUtilization(rec.UsedCredit, rec.CreditLimit),
		Score:       DebtScore(rec.UsedCredit, rec.CreditLimit),
	}
}

func History(rec model.HistoryRecord, now time.Time, mode AgeMode) *model.HistoryComponent {
	age := AccountAge(rec.AccountStart, now, mode)
	return &model.HistoryComponent{Record: rec, AgeYears: age, Score: HistoryScore(age)}
}

func Mix(rec model.MixRecord) *model.MixComponent {
	return &model.MixComponent{Record: rec, Score: MixScore(rec.TypesUsed, rec.TotalTypes)}
}
