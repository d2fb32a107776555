package entities

import (
	"strconv"
	"strings"
)

// Valuation rules. Both the multiplier and the percentage are snapshotted on
// every write, so a future change of the constant never rewrites old records.
const (
	ConsultoriaMarkup              = 1.30
	ConsultoriaAdicionalPercentual = 30.0
)

// DurationHours computes the wall-clock span between two same-day HH:MM times
// in decimal hours. A span that is zero or inverted yields 0; validation must
// have rejected hora_fim <= hora_inicio before ever valuing a record.
func DurationHours(horaInicio, horaFim string) float64 {
	start, okStart := minutesOfDay(horaInicio)
	end, okEnd := minutesOfDay(horaFim)
	if !okStart || !okEnd || end <= start {
		return 0
	}
	return float64(end-start) / 60
}

// Amount values a service. Only CONSULTORIA work is paid: duration times the
// snapshotted hourly rate times the 30% markup. DEP is always exactly 0, and
// a rate of 0 is legal (volunteer work), not an error.
func Amount(duracaoHoras, valorHoraAula float64, tipo TipoDemanda) float64 {
	if tipo != TipoDemandaConsultoria {
		return 0
	}
	return duracaoHoras * valorHoraAula * ConsultoriaMarkup
}

// AdicionalPercentual returns the markup percentage snapshot for a demand type.
func AdicionalPercentual(tipo TipoDemanda) float64 {
	if tipo == TipoDemandaConsultoria {
		return ConsultoriaAdicionalPercentual
	}
	return 0
}

func minutesOfDay(hhmm string) (int, bool) {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0, false
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}
