package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// Options controla o carregamento: qual aba ler (XLSX; vazio = primeira) e
// quantas linhas descartar antes do cabeçalho.
type Options struct {
	Sheet      string
	HeaderSkip int
}

// Load carrega a origem em uma Table com cabeçalhos normalizados.
// A fronteira tolera arquivo/aba ausente ou ilegível devolvendo tabela
// vazia: "sem dados" nunca vira erro para quem chama.
func Load(src Source, opts Options) *Table {
	data, name, err := readAll(src)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logrus.WithError(err).WithField("source", name).Warn("Erro ao carregar arquivo tabular")
		}
		return Empty()
	}

	var raw [][]string

	switch formatOf(name) {
	case "csv":
		raw, err = readCSV(data)
	case "xlsx":
		raw, err = readXLSX(data, opts.Sheet)
	default:
		logrus.WithField("source", name).Warn("Formato de arquivo não suportado")
		return Empty()
	}

	if err != nil {
		logrus.WithError(err).WithField("source", name).Warn("Erro ao interpretar arquivo tabular")
		return Empty()
	}

	if len(raw) <= opts.HeaderSkip {
		return Empty()
	}

	raw = raw[opts.HeaderSkip:]
	if len(raw) < 2 {
		// Só cabeçalho, nenhuma linha de dados.
		return Empty()
	}

	return NewTable(raw[0], raw[1:])
}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}

	return rows, nil
}

func readXLSX(data []byte, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	return f.GetRows(sheet)
}
