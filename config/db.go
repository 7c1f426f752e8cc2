package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"halachi-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// openDialector picks MySQL when any MySQL env is configured, otherwise the
// embedded SQLite file. The default deployment is a single small property,
// so the file-backed store is the normal case.
func openDialector() (gorm.Dialector, string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			dsn, err := mysqlDSNFromURL(raw)
			if err != nil {
				return nil, "", err
			}
			return mysql.Open(dsn), "mysql", nil
		}
		return mysql.Open(raw), "mysql", nil
	}

	if strings.TrimSpace(os.Getenv("DB_HOST")) != "" {
		user := envOrDefault("DB_USER", "root")
		pass := envOrDefault("DB_PASS", "")
		host := envOrDefault("DB_HOST", "127.0.0.1")
		port := envOrDefault("DB_PORT", "3306")
		dbName := envOrDefault("DB_NAME", "halachi_db")

		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, pass, host, port, dbName,
		)
		return mysql.Open(dsn), "mysql", nil
	}

	path := envOrDefault("SQLITE_PATH", filepath.Join("data", "halachi.db"))
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, "", err
		}
	}
	return sqlite.Open(path), "sqlite", nil
}

func ConnectDatabase() error {
	dialector, driver, err := openDialector()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}
	log.Printf("✅ Database connected (%s)", driver)

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	return SeedDatabase(DB)
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.HotelProfile{},
		&models.Room{},
		&models.Tour{},
		&models.Category{},
		&models.Review{},
		&models.BookingRequest{},
		&models.GuestStay{},
		&models.Note{},
		&models.DailyStat{},
	)
}

// SeedDatabase ensures the single hotel profile row exists with a hashed
// admin password. The plaintext comes from ADMIN_PASSWORD and is never
// stored.
func SeedDatabase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.HotelProfile{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := envOrDefault("ADMIN_PASSWORD", "admin123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	hotel := models.HotelProfile{
		ID:                "halachi",
		Name:              "Халачи",
		Phone:             "+7 (928) 123-45-67",
		Email:             "info@halachi-hotel.ru",
		Address:           "ул. Тахо-Годи, д. 4А, Дербент",
		Description:       "Комфорт и гостеприимство в сердце Дербента",
		VisitorCount:      500,
		AdminPasswordHash: string(hash),
	}
	if err := db.Create(&hotel).Error; err != nil {
		return err
	}
	log.Println("✅ Default hotel profile seeded")
	return nil
}
