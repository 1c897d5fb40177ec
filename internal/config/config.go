package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/alwaha/restaurant-backend/internal/hash"
	"github.com/alwaha/restaurant-backend/internal/models"
	"github.com/alwaha/restaurant-backend/pkg/db"
)

type Config struct {
	DB_HOST        string
	DB_PORT        string
	DB_USER        string
	DB_PASSWORD    string
	DB_NAME        string
	ES_URL         string
	ES_USER        string
	ES_PASSWORD    string
	KAFKA_ADDRESS  string
	JWT_SECRET     string
	ADMIN_USERNAME string
	ADMIN_PASSWORD string
	LOG_LEVEL      string
	HTTP_ADDR      string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		DB_HOST:        os.Getenv("DB_HOST"),
		DB_PORT:        os.Getenv("DB_PORT"),
		DB_USER:        os.Getenv("DB_USER"),
		DB_PASSWORD:    os.Getenv("DB_PASSWORD"),
		DB_NAME:        os.Getenv("DB_NAME"),
		ES_URL:         os.Getenv("ES_URL"),
		ES_USER:        os.Getenv("ES_USER"),
		ES_PASSWORD:    os.Getenv("ES_PASSWORD"),
		KAFKA_ADDRESS:  os.Getenv("KAFKA_ADDRESS"),
		JWT_SECRET:     os.Getenv("JWT_SECRET"),
		ADMIN_USERNAME: os.Getenv("ADMIN_USERNAME"),
		ADMIN_PASSWORD: os.Getenv("ADMIN_PASSWORD"),
		LOG_LEVEL:      os.Getenv("LOG_LEVEL"),
		HTTP_ADDR:      os.Getenv("HTTP_ADDR"),
	}
	if config.HTTP_ADDR == "" {
		config.HTTP_ADDR = ":8080"
	}

	return config, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DB_USER, c.DB_PASSWORD, c.DB_HOST, c.DB_PORT, c.DB_NAME,
	)
}

func InitDB(c *Config) (*gorm.DB, error) {
	gdb, err := db.Open(c.DSN())
	if err != nil {
		return nil, err
	}
	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	if err := SeedSiteSettings(gdb); err != nil {
		return nil, err
	}
	if c.ADMIN_USERNAME != "" && c.ADMIN_PASSWORD != "" {
		if err := EnsureAdmin(gdb, c.ADMIN_USERNAME, c.ADMIN_PASSWORD); err != nil {
			return nil, err
		}
	}
	return gdb, nil
}

func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
		&models.SiteSetting{},
		&models.AdminUser{},
	); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// EnsureAdmin creates the admin account on first boot so the panel is
// usable without manual SQL. The password never changes an existing row.
func EnsureAdmin(gdb *gorm.DB, username, password string) error {
	var existing models.AdminUser
	err := gdb.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return err
	}
	return gdb.Create(&models.AdminUser{Username: username, PasswordHash: pwHash}).Error
}

// SeedSiteSettings inserts default settings rows for keys that do not
// exist yet, so the public site endpoints always have data.
func SeedSiteSettings(gdb *gorm.DB) error {
	defaults := []models.SiteSetting{
		{Key: "restaurant_name_en", ValueEn: "Al Waha Restaurant", ValueAr: "مطعم الواحة"},
		{Key: "restaurant_name_ar", ValueEn: "Al Waha Restaurant", ValueAr: "مطعم الواحة"},
		{Key: "description_en", ValueEn: "Fresh ingredients and authentic flavors.", Type: "textarea"},
		{Key: "description_ar", ValueAr: "مكونات طازجة ونكهات أصيلة.", Type: "textarea"},
		{Key: "phone", ValueEn: "+1 (555) 123-4567", Type: "phone"},
		{Key: "email", ValueEn: "info@alwaha.example", Type: "email"},
		{Key: "address_en", ValueEn: "123 Main Street, Downtown", Type: "textarea"},
		{Key: "address_ar", ValueAr: "123 الشارع الرئيسي، وسط المدينة", Type: "textarea"},
		{Key: "google_maps_url", ValueEn: "https://maps.google.com/?q=123+Main+Street"},
		{Key: "opening_hours_en", ValueEn: "Mon - Sun: 11:00 AM - 11:00 PM", Type: "textarea"},
		{Key: "opening_hours_ar", ValueAr: "الاثنين - الأحد: 11:00 صباحاً - 11:00 مساءً", Type: "textarea"},
		{Key: "facebook_url"},
		{Key: "instagram_url"},
		{Key: "twitter_url"},
		{Key: "youtube_url"},
		{Key: "logo", ValueEn: "/images/logo.png", Type: "image"},
		{Key: "hero_image", ValueEn: "/images/hero.jpg", Type: "image"},
	}

	for _, s := range defaults {
		if s.Type == "" {
			s.Type = "text"
		}
		if err := gdb.Where(models.SiteSetting{Key: s.Key}).FirstOrCreate(&s).Error; err != nil {
			return fmt.Errorf("seeding site settings: %w", err)
		}
	}
	return nil
}
