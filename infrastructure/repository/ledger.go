package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/nexlev/sales-ledger-api/infrastructure/database/postgres"
	"github.com/nexlev/sales-ledger-api/internal/domain"
)

const (
	ledgerTable = "ledger l"
)

// LedgerRepository persiste as linhas canônicas de venda. Conflitos na
// chave natural (date, account, asin) sobrescrevem gross/net: reprocessar
// um dia com os mesmos arquivos é idempotente.
type LedgerRepository interface {
	EnsureSchema() error
	ReadAll() ([]domain.SalesRecord, error)
	UpsertBatch(records []domain.SalesRecord) error
	ReplaceDay(date time.Time, accounts []string, records []domain.SalesRecord) error
}

type ledgerRepository struct {
	conn *postgres.Connection
}

func NewLedgerRepository(conn *postgres.Connection) LedgerRepository {
	return &ledgerRepository{
		conn: conn,
	}
}

// EnsureSchema cria a tabela do ledger na primeira subida do serviço.
func (r *ledgerRepository) EnsureSchema() error {
	_, err := r.conn.Exec(`
		CREATE TABLE IF NOT EXISTS ledger (
			id SERIAL PRIMARY KEY,
			date DATE NOT NULL,
			account TEXT NOT NULL,
			asin TEXT NOT NULL,
			gross_sales NUMERIC NOT NULL,
			net_sales NUMERIC NOT NULL,
			UNIQUE(date, account, asin)
		)
	`)
	if err != nil {
		return fmt.Errorf("erro ao criar schema do ledger: %w", err)
	}

	return nil
}

func (r *ledgerRepository) ReadAll() ([]domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select("l.id, l.date, l.account, l.asin, l.gross_sales, l.net_sales").
		From(ledgerTable).
		OrderBy("l.date ASC", "l.account ASC", "l.asin ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		var record domain.SalesRecord
		if err := rows.Scan(
			&record.ID,
			&record.Date,
			&record.Account,
			&record.ASIN,
			&record.GrossSales,
			&record.NetSales,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha do ledger: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *ledgerRepository) UpsertBatch(records []domain.SalesRecord) error {
	return upsertBatch(r.conn, records)
}

// ReplaceDay apaga a data em todas as contas informadas e regrava o lote,
// tudo dentro de uma única transação: um upsert que falha no meio não pode
// deixar o dia das contas sem arquivo apagado para sempre.
func (r *ledgerRepository) ReplaceDay(date time.Time, accounts []string, records []domain.SalesRecord) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, account := range accounts {
			if err := deleteByDateAndAccount(tx, date, account); err != nil {
				return err
			}
		}

		return upsertBatch(tx, records)
	})
}

func upsertBatch(q postgres.Queryer, records []domain.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}

	for _, record := range records {
		query := squirrel.StatementBuilder.
			Insert("ledger").
			Columns("date", "account", "asin", "gross_sales", "net_sales").
			Values(
				record.Date.Format(time.DateOnly),
				record.Account,
				record.ASIN,
				record.GrossSales,
				record.NetSales,
			).
			Suffix(`
				ON CONFLICT (date, account, asin) DO UPDATE SET
					gross_sales = EXCLUDED.gross_sales,
					net_sales = EXCLUDED.net_sales
			`).
			PlaceholderFormat(squirrel.Dollar)

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err = q.Exec(sqlQuery, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao executar a query: %w", err)
		}
	}

	return nil
}

func deleteByDateAndAccount(q postgres.Queryer, date time.Time, account string) error {
	query, args, err := squirrel.
		Delete("ledger").
		Where(squirrel.Eq{"date": date.Format(time.DateOnly), "account": account}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = q.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
