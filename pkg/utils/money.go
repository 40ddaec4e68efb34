package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnparsableAmount indica que um valor monetário não pôde ser convertido
// após a limpeza de símbolo, separadores e código de moeda. O chamador
// decide a política: o caminho de ingestão loga e degrada a célula para zero.
var ErrUnparsableAmount = errors.New("valor monetário não parseável")

// nullMarkers são os marcadores de célula vazia aceitos nos exports.
var nullMarkers = map[string]bool{
	"":     true,
	"-":    true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
}

// ParseMoney converte texto monetário formatado ("₹1,180.00", "INR 500")
// em um valor numérico. Marcadores de vazio retornam 0 sem erro.
func ParseMoney(value string) (float64, error) {
	if nullMarkers[strings.ToLower(strings.TrimSpace(value))] {
		return 0, nil
	}

	cleaned := strings.NewReplacer(
		"₹", "",
		",", "",
		"INR", "",
	).Replace(value)
	cleaned = strings.TrimSpace(cleaned)

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparsableAmount, value)
	}

	amount, _ := d.Float64()
	return amount, nil
}
