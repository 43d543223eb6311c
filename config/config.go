package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Shop  ShopConfig
	Files FilesConfig
}

type ShopConfig struct {
	Name     string
	Currency string // prefix used on printed amounts, e.g. "Rs."
}

type FilesConfig struct {
	MenuFile   string
	OrdersFile string
	ReceiptDir string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Shop: ShopConfig{
			Name:     getEnv("SHOP_NAME", "Velvet Cone"),
			Currency: getEnv("CURRENCY", "Rs."),
		},
		Files: FilesConfig{
			MenuFile:   getEnv("MENU_FILE", "menu.txt"),
			OrdersFile: getEnv("ORDERS_FILE", "all_orders.txt"),
			ReceiptDir: getEnv("RECEIPT_DIR", "."),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
