// Package export flattens an assembled ledger into CSV for spreadsheet
// consumption. The merger leaves record order unspecified, so rows are
// sorted here by booking date, then transaction id.
package export

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gocarina/gocsv"

	"fjacquet/bank-ledger/internal/models"
)

// Row is one exported transaction line.
type Row struct {
	AccountID     string `csv:"AccountId"`
	AccountName   string `csv:"AccountName"`
	Mask          string `csv:"Mask"`
	TransactionID string `csv:"TransactionId"`
	BookingDate   string `csv:"BookingDate"`
	Amount        string `csv:"Amount"`
	Currency      string `csv:"Currency"`
	Counterparty  string `csv:"Counterparty"`
	Description   string `csv:"Description"`
}

// Rows flattens the accounts into sorted export rows.
func Rows(accounts []models.Account) []Row {
	var rows []Row
	for _, acct := range accounts {
		for _, tx := range acct.Transactions {
			rows = append(rows, Row{
				AccountID:     acct.AccountID,
				AccountName:   acct.Name,
				Mask:          acct.Mask,
				TransactionID: tx.TransactionID,
				BookingDate:   tx.BookingDate,
				Amount:        tx.Amount.StringFixed(2),
				Currency:      tx.CurrencyCode,
				Counterparty:  tx.CounterpartyName,
				Description:   tx.RemittanceInformation,
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].BookingDate != rows[j].BookingDate {
			return rows[i].BookingDate < rows[j].BookingDate
		}
		return rows[i].TransactionID < rows[j].TransactionID
	})
	return rows
}

// WriteLedger writes the ledger's transactions as CSV to w.
func WriteLedger(accounts []models.Account, w io.Writer) error {
	rows := Rows(accounts)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}

// WriteLedgerFile writes the ledger's transactions as CSV to the given path.
func WriteLedgerFile(accounts []models.Account, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return WriteLedger(accounts, f)
}
