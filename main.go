package main

import (
	"fmt"
	"os"

	"velvet-cone/config"
	"velvet-cone/services"
	"velvet-cone/store"
	"velvet-cone/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// Check for seed subcommand (writes the default menu file).
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		runSeed(cfg)
		return
	}

	menu := store.NewMenuStore(cfg.Files.MenuFile)
	if err := menu.Load(); err != nil {
		// The store has already fallen back to a default entry;
		// report and carry on so the shop can still take orders.
		fmt.Fprintln(os.Stderr, "menu:", err)
	}

	orders := store.NewOrderLog(cfg.Files.OrdersFile)
	if err := orders.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "orders:", err)
	}

	intake := services.NewIntake(menu, orders)
	receipts := services.NewReceiptWriter(cfg.Shop.Name, cfg.Shop.Currency, cfg.Files.ReceiptDir)

	ui.New(cfg, menu, intake, receipts, os.Stdin, os.Stdout).Run()
}
