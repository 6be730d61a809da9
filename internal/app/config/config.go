package config

import "os"

// Config is constructed once at startup and passed down explicitly; no
// package carries ambient globals.
type Config struct {
	HTTPAddr        string
	CORSAllowOrigin string

	// DataFile is the JSON quotation list. DatabaseURL, when set,
	// switches persistence to Postgres instead.
	DataFile    string
	DatabaseURL string

	PublicDir        string
	LogoPath         string
	PaymentQRPath    string
	PaymentReference string

	CompanyName    string
	CompanyTagline string
	CompanyPhone   string
	CompanyEmail   string
	CompanyWebsite string
}

func Load() Config {
	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":3000"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),

		DataFile:    env("DATA_FILE", "data/quotations.json"),
		DatabaseURL: env("DATABASE_URL", ""),

		PublicDir:        env("PUBLIC_DIR", "public"),
		LogoPath:         env("LOGO_PATH", "public/logo.png"),
		PaymentQRPath:    env("PAYMENT_QR_PATH", "public/payment-qr.png"),
		PaymentReference: env("PAYMENT_REFERENCE", ""),

		CompanyName:    env("COMPANY_NAME", "Elcorp Namibia"),
		CompanyTagline: env("COMPANY_TAGLINE", "Professional Business Solutions"),
		CompanyPhone:   env("COMPANY_PHONE", "+264 81 7244041"),
		CompanyEmail:   env("COMPANY_EMAIL", "elcorpnamibia@gmail.com"),
		CompanyWebsite: env("COMPANY_WEBSITE", "https://elli-portfolio.vercel.app/"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
