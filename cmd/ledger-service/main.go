package main

import "bank-ledger-system/internal/bootstrap/ledger"

// @title Bank Ledger System API
// @version 1.0
// @description Журнал транзакций и движок переводов между счетами
// @host localhost:8080
// @BasePath /api/v1
func main() { ledger.StartLedgerService() }
