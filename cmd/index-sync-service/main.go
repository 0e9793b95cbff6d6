package main

import "bank-ledger-system/internal/bootstrap/indexsync"

func main() { indexsync.StartIndexSyncService() }
