package main

import (
	"fmt"
	"os"

	"velvet-cone/config"
	"velvet-cone/models"
	"velvet-cone/store"
)

// defaultMenu is the shop's stock flavor list, written by `seed`.
var defaultMenu = []models.MenuEntry{
	{Flavor: "Vanilla Bean", Price: 150},
	{Flavor: "Chocolate Fudge", Price: 170},
	{Flavor: "Strawberry Swirl", Price: 160},
	{Flavor: "Mint Chocolate Chip", Price: 180},
	{Flavor: "Salted Caramel", Price: 190},
	{Flavor: "Cookies and Cream", Price: 175},
	{Flavor: "Pistachio Delight", Price: 200},
	{Flavor: "Coffee Espresso", Price: 180},
	{Flavor: "Mango Sorbet", Price: 165},
	{Flavor: "Butter Pecan", Price: 190},
	{Flavor: "Lemon Cheesecake", Price: 185},
	{Flavor: "Black Cherry", Price: 170},
	{Flavor: "Peanut Butter Cup", Price: 195},
	{Flavor: "Coconut Dream", Price: 175},
	{Flavor: "Raspberry Ripple", Price: 180},
	{Flavor: "Tiramisu", Price: 195},
	{Flavor: "Honeycomb Crunch", Price: 185},
	{Flavor: "Blueberry Muffin", Price: 170},
	{Flavor: "Matcha Green Tea", Price: 200},
	{Flavor: "Birthday Cake", Price: 190},
}

func runSeed(cfg *config.Config) {
	if err := store.WriteMenuFile(cfg.Files.MenuFile, defaultMenu); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
	fmt.Printf("%s created!\n", cfg.Files.MenuFile)
}
