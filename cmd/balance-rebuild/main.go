// balance-rebuild recomputes counterparty balances from the document
// and payment log, repairing drift left by deletes and balance-skipping
// edits. Run with no flags to rebuild everything.
package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/aurumsoft/jewelbooks_backend/config"
	"github.com/aurumsoft/jewelbooks_backend/models"
	"github.com/aurumsoft/jewelbooks_backend/workflow"
)

func main() {
	partyTypeFlag := flag.String("party-type", "", "CUSTOMER or VENDOR (empty = both)")
	idFlag := flag.Int("id", 0, "party id (0 = all)")
	flag.Parse()

	logger := config.GetLogger()

	db, err := config.OpenDatabase(config.DatabasePath())
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	ctx := context.Background()

	if *idFlag > 0 {
		partyType := models.PartyType(strings.ToUpper(*partyTypeFlag))
		balance, err := workflow.RebuildPartyBalance(ctx, db, logger, partyType, *idFlag)
		if err != nil {
			log.Fatalf("rebuild %s %d: %v", partyType, *idFlag, err)
		}
		log.Printf("rebuilt %s %d, balance = %s", partyType, *idFlag, balance.String())
		return
	}

	if err := workflow.RebuildAllBalances(ctx, db, logger); err != nil {
		log.Fatalf("rebuild all: %v", err)
	}
	log.Println("rebuilt all counterparty balances")
}
