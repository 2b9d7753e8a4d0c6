package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type RecordType string

const (
	TypeRevenue RecordType = "receita"
	TypeExpense RecordType = "despesa"
)

type Nature string

const (
	NatureRevenue Nature = "RECEITA"
	NatureCost    Nature = "CUSTO"
)

const (
	DefaultCategory = "Não especificado"
	ReportActual    = "Realizado"
)

type Record struct {
	BatchID      string          `csv:"upload_batch_id"   db:"upload_batch_id"   json:"upload_batch_id"`
	FileName     string          `csv:"file_name"         db:"file_name"         json:"file_name"`
	Type         RecordType      `csv:"tipo"              db:"tipo"              json:"tipo"`
	Nature       Nature          `csv:"natureza"          db:"natureza"          json:"natureza"`
	Description  string          `csv:"descricao"         db:"descricao"         json:"descricao"`
	Amount       decimal.Decimal `csv:"valor"             db:"valor"             json:"valor"`
	Period       string          `csv:"periodo"           db:"periodo"           json:"periodo"`
	Category     string          `csv:"categoria"         db:"categoria"         json:"categoria"`
	Project      string          `csv:"projeto"           db:"projeto"           json:"projeto"`
	BusinessLine string          `csv:"linha_negocio"     db:"linha_negocio"     json:"linha_negocio"`
	AccountCode  string          `csv:"conta_resumo"      db:"conta_resumo"      json:"conta_resumo"`
	AccountName  string          `csv:"denominacao_conta" db:"denominacao_conta" json:"denominacao_conta"`
	Report       string          `csv:"relatorio"         db:"relatorio"         json:"relatorio"`
	RawData      RawData         `csv:"-"                 db:"raw_data"          json:"raw_data"`
}

type RawData struct {
	AccountSituation *string `json:"accountSituation"`
	AccountGrouping  *string `json:"accountGrouping"`
	AccountCode      string  `json:"accountCode"`
	AccountName      string  `json:"accountName"`
	MonthName        string  `json:"monthName"`
	OriginalAmount   string  `json:"originalAmount"`
	ProjectReference string  `json:"projectReference"`
	Year             int     `json:"year"`
	RowIndex         int     `json:"rowIndex"`
	ColIndex         int     `json:"colIndex"`
}

// NewRecord builds a record for one month cell. The sign of amount decides type and nature.
func NewRecord(run Run, raw RawData, month int, amount decimal.Decimal) *Record {
	recordType, nature := TypeRevenue, NatureRevenue
	if amount.IsNegative() {
		recordType, nature = TypeExpense, NatureCost
	}

	category := DefaultCategory
	if raw.AccountGrouping != nil && *raw.AccountGrouping != "" {
		category = *raw.AccountGrouping
	}

	description := fmt.Sprintf("%s - %s", ProjectReference, raw.AccountName)

	return &Record{
		BatchID:      run.BatchID,
		FileName:     run.FileName,
		Type:         recordType,
		Nature:       nature,
		Description:  description,
		Amount:       amount,
		Period:       fmt.Sprintf("%d/%d", month, run.Year),
		Category:     category,
		Project:      description,
		BusinessLine: category,
		AccountCode:  raw.AccountCode,
		AccountName:  raw.AccountName,
		Report:       ReportActual,
		RawData:      raw,
	}
}

func (r *Record) Validate() error {
	if r.BatchID == "" {
		return errors.New("batch id is required")
	}

	if r.Amount.IsZero() {
		return errors.New("amount must not be zero")
	}

	if r.AccountCode == "" || r.AccountName == "" {
		return errors.New("account code and name are required")
	}

	if r.Amount.IsNegative() != (r.Type == TypeExpense) {
		return fmt.Errorf("type %q does not match amount %s", r.Type, r.Amount)
	}

	return nil
}
